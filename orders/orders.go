// Package orders wraps the Orders API section (2013-09-01).
package orders

import (
	"context"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

const subsys = "orders"

// GetServiceStatusService returns the operational status of the section.
type GetServiceStatusService struct {
	client *mws.Client
	raw    bool
}

func NewGetServiceStatusService(client *mws.Client) *GetServiceStatusService {
	return &GetServiceStatusService{client: client}
}

func (s *GetServiceStatusService) RawOutput(raw bool) *GetServiceStatusService {
	s.raw = raw
	return s
}

func (s *GetServiceStatusService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionOrders, "GetServiceStatus")
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetServiceStatusService.Do", nil, req)
}

// ListOrdersByNextTokenService fetches the next page of ListOrders.
type ListOrdersByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewListOrdersByNextTokenService(client *mws.Client) *ListOrdersByNextTokenService {
	return &ListOrdersByNextTokenService{client: client}
}

func (s *ListOrdersByNextTokenService) NextToken(token string) *ListOrdersByNextTokenService {
	s.nextToken = token
	return s
}

func (s *ListOrdersByNextTokenService) RawOutput(raw bool) *ListOrdersByNextTokenService {
	s.raw = raw
	return s
}

func (s *ListOrdersByNextTokenService) Validate() error {
	return svc.ValidationError(subsys, "ListOrdersByNextTokenService.Validate", s.validate())
}

func (s *ListOrdersByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionOrders, "ListOrdersByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListOrdersByNextTokenService.Do", s.validate(), req)
}

func (s *ListOrdersByNextTokenService) validate() []string {
	if s.nextToken == "" {
		return []string{"nextToken is required"}
	}
	return nil
}

// GetOrderService returns up to 50 orders by Amazon order id.
type GetOrderService struct {
	client   *mws.Client
	orderIDs []string
	raw      bool
}

func NewGetOrderService(client *mws.Client) *GetOrderService {
	return &GetOrderService{client: client}
}

func (s *GetOrderService) AmazonOrderIDs(ids ...string) *GetOrderService {
	s.orderIDs = ids
	return s
}

func (s *GetOrderService) RawOutput(raw bool) *GetOrderService {
	s.raw = raw
	return s
}

func (s *GetOrderService) Validate() error {
	return svc.ValidationError(subsys, "GetOrderService.Validate", s.validate())
}

func (s *GetOrderService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionOrders, "GetOrder")
	req.Params.SetList("AmazonOrderId.Id", s.orderIDs...)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetOrderService.Do", s.validate(), req)
}

func (s *GetOrderService) validate() []string {
	return svc.CheckCount(nil, "amazonOrderIds", len(s.orderIDs), 1, 50)
}

// ListOrderItemsService returns the items of one order.
type ListOrderItemsService struct {
	client  *mws.Client
	orderID string
	raw     bool
}

func NewListOrderItemsService(client *mws.Client) *ListOrderItemsService {
	return &ListOrderItemsService{client: client}
}

func (s *ListOrderItemsService) AmazonOrderID(id string) *ListOrderItemsService {
	s.orderID = id
	return s
}

func (s *ListOrderItemsService) RawOutput(raw bool) *ListOrderItemsService {
	s.raw = raw
	return s
}

func (s *ListOrderItemsService) Validate() error {
	return svc.ValidationError(subsys, "ListOrderItemsService.Validate", s.validate())
}

func (s *ListOrderItemsService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionOrders, "ListOrderItems")
	req.Params.Set("AmazonOrderId", s.orderID)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListOrderItemsService.Do", s.validate(), req)
}

func (s *ListOrderItemsService) validate() []string {
	if s.orderID == "" {
		return []string{"amazonOrderId is required"}
	}
	return nil
}

// ListOrderItemsByNextTokenService fetches the next page of ListOrderItems.
type ListOrderItemsByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewListOrderItemsByNextTokenService(client *mws.Client) *ListOrderItemsByNextTokenService {
	return &ListOrderItemsByNextTokenService{client: client}
}

func (s *ListOrderItemsByNextTokenService) NextToken(token string) *ListOrderItemsByNextTokenService {
	s.nextToken = token
	return s
}

func (s *ListOrderItemsByNextTokenService) RawOutput(raw bool) *ListOrderItemsByNextTokenService {
	s.raw = raw
	return s
}

func (s *ListOrderItemsByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	var errs []string
	if s.nextToken == "" {
		errs = append(errs, "nextToken is required")
	}
	req := mws.NewRequest(mws.SectionOrders, "ListOrderItemsByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListOrderItemsByNextTokenService.Do", errs, req)
}
