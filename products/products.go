// Package products wraps the Products API section (2011-10-01).
package products

import (
	"context"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

const subsys = "products"

const (
	maxMatchingASINs = 10
	maxIDs           = 5
	maxPricingItems  = 20
)

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
	req := mws.NewRequest(mws.SectionProducts, "GetServiceStatus")
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetServiceStatusService.Do", nil, req)
}

// ListMatchingProductsService searches the catalog by free text.
type ListMatchingProductsService struct {
	client         *mws.Client
	marketplaceID  string
	query          string
	queryContextID *string
	raw            bool
}

func NewListMatchingProductsService(client *mws.Client) *ListMatchingProductsService {
	return &ListMatchingProductsService{client: client}
}

func (s *ListMatchingProductsService) MarketplaceID(id string) *ListMatchingProductsService {
	s.marketplaceID = id
	return s
}

// Query sets the search text. It is sent as is; the signer takes care of
// encoding quotes, parentheses and asterisks.
func (s *ListMatchingProductsService) Query(q string) *ListMatchingProductsService {
	s.query = q
	return s
}

// QueryContextID narrows the search to a product category, e.g. "Music".
func (s *ListMatchingProductsService) QueryContextID(id string) *ListMatchingProductsService {
	s.queryContextID = &id
	return s
}

func (s *ListMatchingProductsService) RawOutput(raw bool) *ListMatchingProductsService {
	s.raw = raw
	return s
}

func (s *ListMatchingProductsService) Validate() error {
	return svc.ValidationError(subsys, "ListMatchingProductsService.Validate", s.validate())
}

func (s *ListMatchingProductsService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionProducts, "ListMatchingProducts")
	req.Params.Set("MarketplaceId", s.marketplaceID).Set("Query", s.query)
	if s.queryContextID != nil {
		req.Params.Set("QueryContextId", *s.queryContextID)
	}
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListMatchingProductsService.Do", s.validate(), req)
}

func (s *ListMatchingProductsService) validate() []string {
	var errs []string
	if s.marketplaceID == "" {
		errs = append(errs, "marketplaceId is required")
	}
	if s.query == "" {
		errs = append(errs, "query is required")
	}
	if s.queryContextID != nil && *s.queryContextID == "" {
		errs = append(errs, "queryContextId must not be empty")
	}
	return errs
}

// GetMatchingProductService returns products for up to ten ASINs.
type GetMatchingProductService struct {
	client        *mws.Client
	marketplaceID string
	asins         []string
	raw           bool
}

func NewGetMatchingProductService(client *mws.Client) *GetMatchingProductService {
	return &GetMatchingProductService{client: client}
}

func (s *GetMatchingProductService) MarketplaceID(id string) *GetMatchingProductService {
	s.marketplaceID = id
	return s
}

func (s *GetMatchingProductService) ASINs(asins ...string) *GetMatchingProductService {
	s.asins = asins
	return s
}

func (s *GetMatchingProductService) RawOutput(raw bool) *GetMatchingProductService {
	s.raw = raw
	return s
}

func (s *GetMatchingProductService) Validate() error {
	return svc.ValidationError(subsys, "GetMatchingProductService.Validate", s.validate())
}

func (s *GetMatchingProductService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionProducts, "GetMatchingProduct")
	req.Params.Set("MarketplaceId", s.marketplaceID).SetList("ASINList.ASIN", s.asins...)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetMatchingProductService.Do", s.validate(), req)
}

func (s *GetMatchingProductService) validate() []string {
	errs := requireMarketplace(nil, s.marketplaceID)
	return svc.CheckCount(errs, "asins", len(s.asins), 1, maxMatchingASINs)
}

// GetMatchingProductForIDService looks products up by ASIN, GCID, SellerSKU,
// UPC, EAN, ISBN or JAN.
type GetMatchingProductForIDService struct {
	client        *mws.Client
	marketplaceID string
	idType        IDType
	ids           []string
	raw           bool
}

func NewGetMatchingProductForIDService(client *mws.Client) *GetMatchingProductForIDService {
	return &GetMatchingProductForIDService{client: client}
}

func (s *GetMatchingProductForIDService) MarketplaceID(id string) *GetMatchingProductForIDService {
	s.marketplaceID = id
	return s
}

func (s *GetMatchingProductForIDService) IDType(t IDType) *GetMatchingProductForIDService {
	s.idType = t
	return s
}

func (s *GetMatchingProductForIDService) IDs(ids ...string) *GetMatchingProductForIDService {
	s.ids = ids
	return s
}

func (s *GetMatchingProductForIDService) RawOutput(raw bool) *GetMatchingProductForIDService {
	s.raw = raw
	return s
}

func (s *GetMatchingProductForIDService) Validate() error {
	return svc.ValidationError(subsys, "GetMatchingProductForIDService.Validate", s.validate())
}

func (s *GetMatchingProductForIDService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionProducts, "GetMatchingProductForId")
	req.Params.
		Set("MarketplaceId", s.marketplaceID).
		Set("IdType", string(s.idType)).
		SetList("IdList.Id", s.ids...)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetMatchingProductForIDService.Do", s.validate(), req)
}

func (s *GetMatchingProductForIDService) validate() []string {
	errs := requireMarketplace(nil, s.marketplaceID)
	if s.idType == "" {
		errs = append(errs, "idType is required")
	} else {
		errs = svc.CheckEnum(errs, "idType", IDTypes, s.idType)
	}
	return svc.CheckCount(errs, "ids", len(s.ids), 1, maxIDs)
}

// GetCompetitivePricingForASINService returns the current competitive price
// of up to twenty ASINs.
type GetCompetitivePricingForASINService struct {
	asinPricing
}

func NewGetCompetitivePricingForASINService(client *mws.Client) *GetCompetitivePricingForASINService {
	return &GetCompetitivePricingForASINService{asinPricing{client: client, action: "GetCompetitivePricingForASIN"}}
}

func (s *GetCompetitivePricingForASINService) MarketplaceID(id string) *GetCompetitivePricingForASINService {
	s.marketplaceID = id
	return s
}

func (s *GetCompetitivePricingForASINService) ASINs(asins ...string) *GetCompetitivePricingForASINService {
	s.asins = asins
	return s
}

func (s *GetCompetitivePricingForASINService) RawOutput(raw bool) *GetCompetitivePricingForASINService {
	s.raw = raw
	return s
}

// GetMyPriceForASINService returns the seller's own offer price for up to
// twenty ASINs.
type GetMyPriceForASINService struct {
	asinPricing
}

func NewGetMyPriceForASINService(client *mws.Client) *GetMyPriceForASINService {
	return &GetMyPriceForASINService{asinPricing{client: client, action: "GetMyPriceForASIN"}}
}

func (s *GetMyPriceForASINService) MarketplaceID(id string) *GetMyPriceForASINService {
	s.marketplaceID = id
	return s
}

func (s *GetMyPriceForASINService) ASINs(asins ...string) *GetMyPriceForASINService {
	s.asins = asins
	return s
}

func (s *GetMyPriceForASINService) RawOutput(raw bool) *GetMyPriceForASINService {
	s.raw = raw
	return s
}

// asinPricing carries what the ASIN-list pricing operations share.
type asinPricing struct {
	client        *mws.Client
	action        string
	marketplaceID string
	asins         []string
	raw           bool
}

func (s *asinPricing) Validate() error {
	return svc.ValidationError(subsys, s.action+".Validate", s.validate())
}

func (s *asinPricing) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionProducts, s.action)
	req.Params.Set("MarketplaceId", s.marketplaceID).SetList("ASINList.ASIN", s.asins...)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, s.action+".Do", s.validate(), req)
}

func (s *asinPricing) validate() []string {
	errs := requireMarketplace(nil, s.marketplaceID)
	return svc.CheckCount(errs, "asins", len(s.asins), 1, maxPricingItems)
}

// GetCompetitivePricingForSKUService returns the competitive price of up to
// twenty of the seller's SKUs.
type GetCompetitivePricingForSKUService struct {
	client        *mws.Client
	marketplaceID string
	skus          []string
	raw           bool
}

func NewGetCompetitivePricingForSKUService(client *mws.Client) *GetCompetitivePricingForSKUService {
	return &GetCompetitivePricingForSKUService{client: client}
}

func (s *GetCompetitivePricingForSKUService) MarketplaceID(id string) *GetCompetitivePricingForSKUService {
	s.marketplaceID = id
	return s
}

func (s *GetCompetitivePricingForSKUService) SellerSKUs(skus ...string) *GetCompetitivePricingForSKUService {
	s.skus = skus
	return s
}

func (s *GetCompetitivePricingForSKUService) RawOutput(raw bool) *GetCompetitivePricingForSKUService {
	s.raw = raw
	return s
}

func (s *GetCompetitivePricingForSKUService) Validate() error {
	return svc.ValidationError(subsys, "GetCompetitivePricingForSKUService.Validate", s.validate())
}

func (s *GetCompetitivePricingForSKUService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionProducts, "GetCompetitivePricingForSKU")
	req.Params.Set("MarketplaceId", s.marketplaceID).SetList("SellerSKUList.SellerSKU", s.skus...)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetCompetitivePricingForSKUService.Do", s.validate(), req)
}

func (s *GetCompetitivePricingForSKUService) validate() []string {
	errs := requireMarketplace(nil, s.marketplaceID)
	return svc.CheckCount(errs, "sellerSkus", len(s.skus), 1, maxPricingItems)
}

// GetLowestPricedOffersForASINService returns the lowest priced offers for
// one ASIN in one condition.
type GetLowestPricedOffersForASINService struct {
	client        *mws.Client
	marketplaceID string
	asin          string
	condition     ItemCondition
	raw           bool
}

func NewGetLowestPricedOffersForASINService(client *mws.Client) *GetLowestPricedOffersForASINService {
	return &GetLowestPricedOffersForASINService{client: client}
}

func (s *GetLowestPricedOffersForASINService) MarketplaceID(id string) *GetLowestPricedOffersForASINService {
	s.marketplaceID = id
	return s
}

func (s *GetLowestPricedOffersForASINService) ASIN(asin string) *GetLowestPricedOffersForASINService {
	s.asin = asin
	return s
}

func (s *GetLowestPricedOffersForASINService) ItemCondition(c ItemCondition) *GetLowestPricedOffersForASINService {
	s.condition = c
	return s
}

func (s *GetLowestPricedOffersForASINService) RawOutput(raw bool) *GetLowestPricedOffersForASINService {
	s.raw = raw
	return s
}

func (s *GetLowestPricedOffersForASINService) Validate() error {
	return svc.ValidationError(subsys, "GetLowestPricedOffersForASINService.Validate", s.validate())
}

func (s *GetLowestPricedOffersForASINService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionProducts, "GetLowestPricedOffersForASIN")
	req.Params.
		Set("MarketplaceId", s.marketplaceID).
		Set("ASIN", s.asin).
		Set("ItemCondition", string(s.condition))
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetLowestPricedOffersForASINService.Do", s.validate(), req)
}

func (s *GetLowestPricedOffersForASINService) validate() []string {
	errs := requireMarketplace(nil, s.marketplaceID)
	if s.asin == "" {
		errs = append(errs, "asin is required")
	}
	if s.condition == "" {
		errs = append(errs, "itemCondition is required")
	} else {
		errs = svc.CheckEnum(errs, "itemCondition", ItemConditions, s.condition)
	}
	return errs
}

func requireMarketplace(errs []string, id string) []string {
	if id == "" {
		return append(errs, "marketplaceId is required")
	}
	return errs
}
