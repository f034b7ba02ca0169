// Package recommendations wraps the Recommendations API section
// (2013-04-01).
package recommendations

import (
	"context"
	"strings"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

const subsys = "recommendations"

// Category groups recommendations.
type Category string

const (
	CategoryInventory      Category = "Inventory"
	CategorySelection      Category = "Selection"
	CategoryPricing        Category = "Pricing"
	CategoryFulfillment    Category = "Fulfillment"
	CategoryListingQuality Category = "ListingQuality"
	CategoryGlobalSelling  Category = "GlobalSelling"
	CategoryAdvertising    Category = "Advertising"
)

var Categories = []Category{
	CategoryInventory, CategorySelection, CategoryPricing, CategoryFulfillment,
	CategoryListingQuality, CategoryGlobalSelling, CategoryAdvertising,
}

// Recommendation is one member of a category list.
type Recommendation struct {
	Category         Category
	RecommendationID string
	Reason           string
	ASIN             string
	SellerSKU        string
	LastUpdated      time.Time
}

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
	req := mws.NewRequest(mws.SectionRecommendations, "GetServiceStatus")
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetServiceStatusService.Do", nil, req)
}

// ListRecommendationsService returns the current recommendations, for one
// category or all of them.
type ListRecommendationsService struct {
	client        *mws.Client
	marketplaceID string
	category      *Category
	raw           bool
}

func NewListRecommendationsService(client *mws.Client) *ListRecommendationsService {
	return &ListRecommendationsService{client: client}
}

func (s *ListRecommendationsService) MarketplaceID(id string) *ListRecommendationsService {
	s.marketplaceID = id
	return s
}

func (s *ListRecommendationsService) Category(c Category) *ListRecommendationsService {
	s.category = &c
	return s
}

func (s *ListRecommendationsService) RawOutput(raw bool) *ListRecommendationsService {
	s.raw = raw
	return s
}

func (s *ListRecommendationsService) Validate() error {
	return svc.ValidationError(subsys, "ListRecommendationsService.Validate", s.validate())
}

func (s *ListRecommendationsService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionRecommendations, "ListRecommendations")
	req.Params.Set("MarketplaceId", s.marketplaceID)
	if s.category != nil {
		req.Params.Set("RecommendationCategory", string(*s.category))
	}
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListRecommendationsService.Do", s.validate(), req)
}

func (s *ListRecommendationsService) validate() []string {
	var errs []string
	if s.marketplaceID == "" {
		errs = append(errs, "marketplaceId is required")
	}
	if s.category != nil {
		errs = svc.CheckEnum(errs, "recommendationCategory", Categories, *s.category)
	}
	return errs
}

// ListRecommendationsByNextTokenService fetches the next page of
// ListRecommendations.
type ListRecommendationsByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewListRecommendationsByNextTokenService(client *mws.Client) *ListRecommendationsByNextTokenService {
	return &ListRecommendationsByNextTokenService{client: client}
}

func (s *ListRecommendationsByNextTokenService) NextToken(token string) *ListRecommendationsByNextTokenService {
	s.nextToken = token
	return s
}

func (s *ListRecommendationsByNextTokenService) RawOutput(raw bool) *ListRecommendationsByNextTokenService {
	s.raw = raw
	return s
}

func (s *ListRecommendationsByNextTokenService) Validate() error {
	return svc.ValidationError(subsys, "ListRecommendationsByNextTokenService.Validate", s.validate())
}

func (s *ListRecommendationsByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionRecommendations, "ListRecommendationsByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListRecommendationsByNextTokenService.Do", s.validate(), req)
}

func (s *ListRecommendationsByNextTokenService) validate() []string {
	if s.nextToken == "" {
		return []string{"nextToken is required"}
	}
	return nil
}

// GetLastUpdatedTimeForRecommendationsService tells when each category was
// last refreshed.
type GetLastUpdatedTimeForRecommendationsService struct {
	client        *mws.Client
	marketplaceID string
	raw           bool
}

func NewGetLastUpdatedTimeForRecommendationsService(client *mws.Client) *GetLastUpdatedTimeForRecommendationsService {
	return &GetLastUpdatedTimeForRecommendationsService{client: client}
}

func (s *GetLastUpdatedTimeForRecommendationsService) MarketplaceID(id string) *GetLastUpdatedTimeForRecommendationsService {
	s.marketplaceID = id
	return s
}

func (s *GetLastUpdatedTimeForRecommendationsService) RawOutput(raw bool) *GetLastUpdatedTimeForRecommendationsService {
	s.raw = raw
	return s
}

func (s *GetLastUpdatedTimeForRecommendationsService) Validate() error {
	return svc.ValidationError(subsys, "GetLastUpdatedTimeForRecommendationsService.Validate", s.validate())
}

func (s *GetLastUpdatedTimeForRecommendationsService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionRecommendations, "GetLastUpdatedTimeForRecommendations")
	req.Params.Set("MarketplaceId", s.marketplaceID)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetLastUpdatedTimeForRecommendationsService.Do", s.validate(), req)
}

func (s *GetLastUpdatedTimeForRecommendationsService) validate() []string {
	if s.marketplaceID == "" {
		return []string{"marketplaceId is required"}
	}
	return nil
}

// ParseRecommendations flattens every <Category>Recommendations list of a
// ListRecommendations result. The returned token is empty on the last page.
// A malformed LastUpdated is an ErrDecodeError.
func ParseRecommendations(res *mws.Result) ([]Recommendation, string, error) {
	if res == nil || res.Tree == nil {
		return nil, "", nil
	}
	result := res.Tree.Child("ListRecommendationsResult")
	if result == nil {
		result = res.Tree.Child("ListRecommendationsByNextTokenResult")
	}
	if result == nil {
		return nil, "", nil
	}

	var f svc.Fields
	var out []Recommendation
	for _, list := range result.Children {
		name, ok := strings.CutSuffix(list.Name, "Recommendations")
		if !ok {
			continue
		}
		for _, m := range list.ChildrenNamed("member") {
			out = append(out, Recommendation{
				Category:         Category(name),
				RecommendationID: m.Child("RecommendationId").Text(),
				Reason:           m.Child("RecommendationReason").Text(),
				ASIN:             m.Find("ItemIdentifier", "Asin").Text(),
				SellerSKU:        m.Find("ItemIdentifier", "Sku").Text(),
				LastUpdated:      f.Time(m.Child("LastUpdated")),
			})
		}
	}
	if err := f.Err(subsys, "ParseRecommendations", res.Raw); err != nil {
		return nil, "", err
	}
	return out, result.Child("NextToken").Text(), nil
}

// ParseLastUpdated maps each category to its last refresh time. Categories
// without recommendations are absent. A malformed time is an ErrDecodeError.
func ParseLastUpdated(res *mws.Result) (map[Category]time.Time, error) {
	out := make(map[Category]time.Time)
	if res == nil || res.Tree == nil {
		return out, nil
	}
	result := res.Tree.FindFirst("GetLastUpdatedTimeForRecommendationsResult")
	if result == nil {
		return out, nil
	}
	var f svc.Fields
	for _, n := range result.Children {
		name, ok := strings.CutSuffix(n.Name, "RecommendationsLastUpdated")
		if !ok || n.Text() == "" {
			continue
		}
		out[Category(name)] = f.Time(n)
	}
	if err := f.Err(subsys, "ParseLastUpdated", res.Raw); err != nil {
		return nil, err
	}
	return out, nil
}
