// Package sellers wraps the Sellers API section.
package sellers

import (
	"context"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

const subsys = "sellers"

// Marketplace is one entry of ListMarketplaceParticipations.
type Marketplace struct {
	MarketplaceID       string
	Name                string
	DefaultCountryCode  string
	DefaultCurrencyCode string
	DefaultLanguageCode string
	DomainName          string
}

// Participation links the seller to a marketplace.
type Participation struct {
	MarketplaceID              string
	SellerID                   string
	HasSellerSuspendedListings bool
}

// Participations is the decoded ListMarketplaceParticipations result.
type Participations struct {
	Marketplaces   []Marketplace
	Participations []Participation
	NextToken      string
}

// GetServiceStatusService returns the operational status of the section.
type GetServiceStatusService struct {
	client *mws.Client
	raw    bool
}

func NewGetServiceStatusService(client *mws.Client) *GetServiceStatusService {
	return &GetServiceStatusService{client: client}
}

// RawOutput returns the body unparsed.
func (s *GetServiceStatusService) RawOutput(raw bool) *GetServiceStatusService {
	s.raw = raw
	return s
}

func (s *GetServiceStatusService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionSellers, "GetServiceStatus")
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "GetServiceStatusService.Do", nil, req)
}

// ListMarketplaceParticipationsService lists the marketplaces the seller
// can sell in.
type ListMarketplaceParticipationsService struct {
	client *mws.Client
	raw    bool
}

func NewListMarketplaceParticipationsService(client *mws.Client) *ListMarketplaceParticipationsService {
	return &ListMarketplaceParticipationsService{client: client}
}

func (s *ListMarketplaceParticipationsService) RawOutput(raw bool) *ListMarketplaceParticipationsService {
	s.raw = raw
	return s
}

func (s *ListMarketplaceParticipationsService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionSellers, "ListMarketplaceParticipations")
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListMarketplaceParticipationsService.Do", nil, req)
}

// ListMarketplaceParticipationsByNextTokenService fetches the next page.
type ListMarketplaceParticipationsByNextTokenService struct {
	client    *mws.Client
	nextToken string
	raw       bool
}

func NewListMarketplaceParticipationsByNextTokenService(client *mws.Client) *ListMarketplaceParticipationsByNextTokenService {
	return &ListMarketplaceParticipationsByNextTokenService{client: client}
}

func (s *ListMarketplaceParticipationsByNextTokenService) NextToken(token string) *ListMarketplaceParticipationsByNextTokenService {
	s.nextToken = token
	return s
}

func (s *ListMarketplaceParticipationsByNextTokenService) RawOutput(raw bool) *ListMarketplaceParticipationsByNextTokenService {
	s.raw = raw
	return s
}

// Validate validates the service parameters.
func (s *ListMarketplaceParticipationsByNextTokenService) Validate() error {
	return svc.ValidationError(subsys, "ListMarketplaceParticipationsByNextTokenService.Validate", s.validate())
}

func (s *ListMarketplaceParticipationsByNextTokenService) Do(ctx context.Context) (*mws.Result, error) {
	req := mws.NewRequest(mws.SectionSellers, "ListMarketplaceParticipationsByNextToken")
	req.Params.Set("NextToken", s.nextToken)
	req.RawOutput = s.raw
	return svc.Do(ctx, s.client, subsys, "ListMarketplaceParticipationsByNextTokenService.Do", s.validate(), req)
}

func (s *ListMarketplaceParticipationsByNextTokenService) validate() []string {
	if s.nextToken == "" {
		return []string{"nextToken is required"}
	}
	return nil
}

// ParseParticipations decodes a ListMarketplaceParticipations or
// ListMarketplaceParticipationsByNextToken result.
func ParseParticipations(res *mws.Result) *Participations {
	out := &Participations{}
	if res == nil || res.Tree == nil {
		return out
	}
	out.NextToken = res.Tree.FindFirst("NextToken").Text()

	for _, m := range res.Tree.FindAll("Marketplace") {
		out.Marketplaces = append(out.Marketplaces, Marketplace{
			MarketplaceID:       m.Child("MarketplaceId").Text(),
			Name:                m.Child("Name").Text(),
			DefaultCountryCode:  m.Child("DefaultCountryCode").Text(),
			DefaultCurrencyCode: m.Child("DefaultCurrencyCode").Text(),
			DefaultLanguageCode: m.Child("DefaultLanguageCode").Text(),
			DomainName:          m.Child("DomainName").Text(),
		})
	}
	for _, p := range res.Tree.FindAll("Participation") {
		out.Participations = append(out.Participations, Participation{
			MarketplaceID:              p.Child("MarketplaceId").Text(),
			SellerID:                   p.Child("SellerId").Text(),
			HasSellerSuspendedListings: p.Child("HasSellerSuspendedListings").Text() == "Yes",
		})
	}
	return out
}
