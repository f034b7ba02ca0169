// Package fbainventory wraps the Fulfillment Inventory API section
// (2010-10-01).
package fbainventory

import (
	"context"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

const (
	subsys = "fbainventory"

	maxSellerSKUs = 50
)

// ResponseGroup selects how much supply detail is returned.
type ResponseGroup string

const (
	ResponseGroupBasic    ResponseGroup = "Basic"
	ResponseGroupDetailed ResponseGroup = "Detailed"
)

var ResponseGroups = []ResponseGroup{ResponseGroupBasic, ResponseGroupDetailed}

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
	req := mws.NewRequest(mws.SectionFulfillmentInventory, "GetServiceStatus")
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetServiceStatusService.Do", nil, req)
}

// ListInventorySupplyService returns the availability of FBA inventory.
// Either a SKU list or a query start time selects the items, never both.
type ListInventorySupplyService struct {
	client        *mws.Client
	sellerSKUs    []string
	queryStart    *time.Time
	responseGroup *ResponseGroup
	marketplaceID string
	raw           bool
}

func NewListInventorySupplyService(client *mws.Client) *ListInventorySupplyService {
	return &ListInventorySupplyService{client: client}
}

func (s *ListInventorySupplyService) SellerSKUs(skus ...string) *ListInventorySupplyService {
	s.sellerSKUs = skus
	return s
}

// QueryStartDateTime asks for items whose availability changed at or after t.
func (s *ListInventorySupplyService) QueryStartDateTime(t time.Time) *ListInventorySupplyService {
	s.queryStart = &t
	return s
}

func (s *ListInventorySupplyService) ResponseGroup(g ResponseGroup) *ListInventorySupplyService {
	s.responseGroup = &g
	return s
}

func (s *ListInventorySupplyService) MarketplaceID(id string) *ListInventorySupplyService {
	s.marketplaceID = id
	return s
}

func (s *ListInventorySupplyService) RawOutput(raw bool) *ListInventorySupplyService {
	s.raw = raw
	return s
}

func (s *ListInventorySupplyService) Validate() error {
	return svc.ValidationError(subsys, "ListInventorySupplyService.Validate", s.validate())
}

func (s *ListInventorySupplyService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionFulfillmentInventory, "ListInventorySupply")
	req.Params.SetList("SellerSkus.member", s.sellerSKUs...)
	if s.queryStart != nil {
		req.Params.SetTime("QueryStartDateTime", *s.queryStart)
	}
	if s.responseGroup != nil {
		req.Params.Set("ResponseGroup", string(*s.responseGroup))
	}
	if s.marketplaceID != "" {
		req.Params.Set("MarketplaceId", s.marketplaceID)
	}
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListInventorySupplyService.Do", s.validate(), req)
}

func (s *ListInventorySupplyService) validate() []string {
	var errs []string
	switch {
	case len(s.sellerSKUs) == 0 && s.queryStart == nil:
		errs = append(errs, "sellerSkus or queryStartDateTime is required")
	case len(s.sellerSKUs) > 0 && s.queryStart != nil:
		errs = append(errs, "sellerSkus and queryStartDateTime are mutually exclusive")
	}
	errs = svc.CheckCount(errs, "sellerSkus", len(s.sellerSKUs), 0, maxSellerSKUs)
	if s.responseGroup != nil {
		errs = svc.CheckEnum(errs, "responseGroup", ResponseGroups, *s.responseGroup)
	}
	return errs
}

// ListInventorySupplyByNextTokenService fetches the next page of
// ListInventorySupply.
type ListInventorySupplyByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewListInventorySupplyByNextTokenService(client *mws.Client) *ListInventorySupplyByNextTokenService {
	return &ListInventorySupplyByNextTokenService{client: client}
}

func (s *ListInventorySupplyByNextTokenService) NextToken(token string) *ListInventorySupplyByNextTokenService {
	s.nextToken = token
	return s
}

func (s *ListInventorySupplyByNextTokenService) RawOutput(raw bool) *ListInventorySupplyByNextTokenService {
	s.raw = raw
	return s
}

func (s *ListInventorySupplyByNextTokenService) Validate() error {
	return svc.ValidationError(subsys, "ListInventorySupplyByNextTokenService.Validate", s.validate())
}

func (s *ListInventorySupplyByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionFulfillmentInventory, "ListInventorySupplyByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListInventorySupplyByNextTokenService.Do", s.validate(), req)
}

func (s *ListInventorySupplyByNextTokenService) validate() []string {
	if s.nextToken == "" {
		return []string{"nextToken is required"}
	}
	return nil
}
