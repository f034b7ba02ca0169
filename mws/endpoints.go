package mws

import (
	"slices"

	"github.com/IvanTurko/mws-sdk-go/sdkerr"
)

const subsys = "mws"

// DefaultAPIVersion is sent as Version for sections that have no
// versioned path of their own.
const DefaultAPIVersion = "2009-01-01"

// Merchant identifier parameter names.
const (
	MerchantKeySellerID = "SellerId"
	MerchantKeyMerchant = "Merchant"
)

// Section names an MWS API section.
type Section string

const (
	SectionProducts             Section = "Products"
	SectionSellers              Section = "Sellers"
	SectionOrders               Section = "Orders"
	SectionRecommendations      Section = "Recommendations"
	SectionFulfillmentInventory Section = "FulfillmentInventory"
	SectionFeeds                Section = "Feeds"
	SectionReports              Section = "Reports"
)

// Endpoint describes where a section lives and how it identifies the merchant.
type Endpoint struct {
	Section     Section
	PathSegment string
	APIVersion  string
	MerchantKey string
}

// CanonicalPath is the request path: /<PathSegment>/<APIVersion>, or /
// for sections served from the root.
func (e Endpoint) CanonicalPath() string {
	switch {
	case e.PathSegment == "":
		return "/"
	case e.APIVersion == "":
		return "/" + e.PathSegment
	default:
		return "/" + e.PathSegment + "/" + e.APIVersion
	}
}

// VersionParam is the value of the Version parameter.
func (e Endpoint) VersionParam() string {
	if e.APIVersion == "" {
		return DefaultAPIVersion
	}
	return e.APIVersion
}

func (e Endpoint) merchantKey() string {
	if e.MerchantKey == "" {
		return MerchantKeySellerID
	}
	return e.MerchantKey
}

// Registry maps sections to endpoints. It is read-only after construction.
type Registry struct {
	endpoints map[Section]Endpoint
}

// NewRegistry builds a registry from the given endpoints. A later entry for
// the same section replaces an earlier one.
func NewRegistry(endpoints ...Endpoint) *Registry {
	r := &Registry{endpoints: make(map[Section]Endpoint, len(endpoints))}
	for _, e := range endpoints {
		r.endpoints[e.Section] = e
	}
	return r
}

// DefaultRegistry returns the production endpoint table.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Endpoint{Section: SectionProducts, PathSegment: "Products", APIVersion: "2011-10-01", MerchantKey: MerchantKeySellerID},
		Endpoint{Section: SectionSellers, PathSegment: "Sellers", APIVersion: "2011-07-01", MerchantKey: MerchantKeySellerID},
		Endpoint{Section: SectionOrders, PathSegment: "Orders", APIVersion: "2013-09-01", MerchantKey: MerchantKeySellerID},
		Endpoint{Section: SectionRecommendations, PathSegment: "Recommendations", APIVersion: "2013-04-01", MerchantKey: MerchantKeySellerID},
		Endpoint{Section: SectionFulfillmentInventory, PathSegment: "FulfillmentInventory", APIVersion: "2010-10-01", MerchantKey: MerchantKeySellerID},
		Endpoint{Section: SectionFeeds, MerchantKey: MerchantKeyMerchant},
		Endpoint{Section: SectionReports, MerchantKey: MerchantKeyMerchant},
	)
}

// Lookup returns the endpoint for section.
func (r *Registry) Lookup(section Section) (Endpoint, error) {
	e, ok := r.endpoints[section]
	if !ok {
		return Endpoint{}, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("Registry.Lookup").
			WithKind(sdkerr.ErrUnknownSection).
			WithMessage("section " + string(section) + " is not registered")
	}
	return e, nil
}

// Sections lists the registered sections in name order.
func (r *Registry) Sections() []Section {
	out := make([]Section, 0, len(r.endpoints))
	for s := range r.endpoints {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
