package orders

import (
	"context"
	"slices"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

// ListOrdersService returns orders created or updated during a time frame.
type ListOrdersService struct {
	client *mws.Client

	marketplaceIDs      []string
	createdAfter        *time.Time
	createdBefore       *time.Time
	lastUpdatedAfter    *time.Time
	lastUpdatedBefore   *time.Time
	statuses            []OrderStatus
	fulfillmentChannels []FulfillmentChannel
	paymentMethods      []PaymentMethod
	tfmStatuses         []TFMShipmentStatus
	sellerOrderID       *string
	buyerEmail          *string
	maxResultsPerPage   *int
	raw                 bool
}

func NewListOrdersService(client *mws.Client) *ListOrdersService {
	return &ListOrdersService{client: client}
}

// MarketplaceIDs sets the marketplaces to search. At least one is required.
func (s *ListOrdersService) MarketplaceIDs(ids ...string) *ListOrdersService {
	s.marketplaceIDs = ids
	return s
}

func (s *ListOrdersService) CreatedAfter(t time.Time) *ListOrdersService {
	s.createdAfter = &t
	return s
}

func (s *ListOrdersService) CreatedBefore(t time.Time) *ListOrdersService {
	s.createdBefore = &t
	return s
}

func (s *ListOrdersService) LastUpdatedAfter(t time.Time) *ListOrdersService {
	s.lastUpdatedAfter = &t
	return s
}

func (s *ListOrdersService) LastUpdatedBefore(t time.Time) *ListOrdersService {
	s.lastUpdatedBefore = &t
	return s
}

func (s *ListOrdersService) OrderStatuses(statuses ...OrderStatus) *ListOrdersService {
	s.statuses = statuses
	return s
}

func (s *ListOrdersService) FulfillmentChannels(channels ...FulfillmentChannel) *ListOrdersService {
	s.fulfillmentChannels = channels
	return s
}

func (s *ListOrdersService) PaymentMethods(methods ...PaymentMethod) *ListOrdersService {
	s.paymentMethods = methods
	return s
}

func (s *ListOrdersService) TFMShipmentStatuses(statuses ...TFMShipmentStatus) *ListOrdersService {
	s.tfmStatuses = statuses
	return s
}

func (s *ListOrdersService) SellerOrderID(id string) *ListOrdersService {
	s.sellerOrderID = &id
	return s
}

func (s *ListOrdersService) BuyerEmail(email string) *ListOrdersService {
	s.buyerEmail = &email
	return s
}

func (s *ListOrdersService) MaxResultsPerPage(n int) *ListOrdersService {
	s.maxResultsPerPage = &n
	return s
}

func (s *ListOrdersService) RawOutput(raw bool) *ListOrdersService {
	s.raw = raw
	return s
}

// Validate validates the service parameters.
func (s *ListOrdersService) Validate() error {
	return svc.ValidationError(subsys, "ListOrdersService.Validate", s.validate())
}

func (s *ListOrdersService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionOrders, "ListOrders")
	s.buildParams(req.Params)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListOrdersService.Do", s.validate(), req)
}

func (s *ListOrdersService) validate() []string {
	var errs []string

	errs = svc.CheckCount(errs, "marketplaceIds", len(s.marketplaceIDs), 1, 50)

	created := s.createdAfter != nil || s.createdBefore != nil
	updated := s.lastUpdatedAfter != nil || s.lastUpdatedBefore != nil
	switch {
	case created && updated:
		errs = append(errs, "created and lastUpdated windows cannot be combined")
	case s.createdAfter == nil && s.lastUpdatedAfter == nil:
		errs = append(errs, "createdAfter or lastUpdatedAfter is required")
	}
	if s.createdAfter != nil && s.createdBefore != nil && !s.createdAfter.Before(*s.createdBefore) {
		errs = append(errs, "createdAfter must be before createdBefore")
	}
	if s.lastUpdatedAfter != nil && s.lastUpdatedBefore != nil && !s.lastUpdatedAfter.Before(*s.lastUpdatedBefore) {
		errs = append(errs, "lastUpdatedAfter must be before lastUpdatedBefore")
	}

	if s.buyerEmail != nil || s.sellerOrderID != nil {
		if len(s.statuses) > 0 || len(s.fulfillmentChannels) > 0 || len(s.paymentMethods) > 0 || s.lastUpdatedBefore != nil || s.createdBefore != nil {
			errs = append(errs, "buyerEmail and sellerOrderId cannot be combined with status, channel, payment method or before filters")
		}
	}

	errs = svc.CheckEnum(errs, "orderStatus", OrderStatuses, s.statuses...)
	if slices.Contains(s.statuses, OrderStatusUnshipped) != slices.Contains(s.statuses, OrderStatusPartiallyShipped) {
		errs = append(errs, "orderStatus Unshipped and PartiallyShipped must be used together")
	}
	errs = svc.CheckEnum(errs, "fulfillmentChannel", FulfillmentChannels, s.fulfillmentChannels...)
	errs = svc.CheckEnum(errs, "paymentMethod", PaymentMethods, s.paymentMethods...)
	errs = svc.CheckEnum(errs, "tfmShipmentStatus", TFMShipmentStatuses, s.tfmStatuses...)

	if s.maxResultsPerPage != nil && (*s.maxResultsPerPage < 1 || *s.maxResultsPerPage > 100) {
		errs = append(errs, "maxResultsPerPage must be between 1 and 100")
	}
	return errs
}

func (s *ListOrdersService) buildParams(p mws.Params) {
	p.SetList("MarketplaceId.Id", s.marketplaceIDs...)

	if s.createdAfter != nil {
		p.SetTime("CreatedAfter", *s.createdAfter)
	}
	if s.createdBefore != nil {
		p.SetTime("CreatedBefore", *s.createdBefore)
	}
	if s.lastUpdatedAfter != nil {
		p.SetTime("LastUpdatedAfter", *s.lastUpdatedAfter)
	}
	if s.lastUpdatedBefore != nil {
		p.SetTime("LastUpdatedBefore", *s.lastUpdatedBefore)
	}
	p.SetList("OrderStatus.Status", svc.Strings(s.statuses)...)
	p.SetList("FulfillmentChannel.Channel", svc.Strings(s.fulfillmentChannels)...)
	p.SetList("PaymentMethod.Method", svc.Strings(s.paymentMethods)...)
	p.SetList("TFMShipmentStatus.Status", svc.Strings(s.tfmStatuses)...)
	if s.sellerOrderID != nil {
		p.Set("SellerOrderId", *s.sellerOrderID)
	}
	if s.buyerEmail != nil {
		p.Set("BuyerEmail", *s.buyerEmail)
	}
	if s.maxResultsPerPage != nil {
		p.SetInt("MaxResultsPerPage", int64(*s.maxResultsPerPage))
	}
}
