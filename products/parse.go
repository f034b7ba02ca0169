package products

import (
	"strings"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

// ItemResult is one per-identifier entry of a batch lookup such as
// GetMatchingProduct or GetMyPriceForASIN. A failed entry carries Err and
// does not fail the whole call.
type ItemResult struct {
	// ID is the ASIN, SellerSKU or Id attribute the entry answers for.
	ID       string
	Status   string
	Err      *mws.APIError
	Products []*xmltree.Node
}

// OK reports whether the entry succeeded.
func (r ItemResult) OK() bool {
	return r.Err == nil && (r.Status == "" || r.Status == "Success")
}

// Price groups the three amounts MWS reports for an offer.
type Price struct {
	LandedPrice  *mws.Money
	ListingPrice *mws.Money
	Shipping     *mws.Money
}

// CompetitivePrice is one entry of Product/CompetitivePricing.
type CompetitivePrice struct {
	CompetitivePriceID string
	Condition          string
	Subcondition       string
	BelongsToRequester bool
	Price
}

// Offer is one of the seller's own offers from GetMyPriceForASIN.
type Offer struct {
	SellerSKU          string
	ItemCondition      string
	FulfillmentChannel string
	BuyingPrice        Price
	RegularPrice       *mws.Money
}

// LowestPrice is one Summary/LowestPrices entry of
// GetLowestPricedOffersForASIN.
type LowestPrice struct {
	Condition          string
	FulfillmentChannel string
	Price
}

// ParseItemResults splits a batch response into its per-identifier entries.
func ParseItemResults(res *mws.Result) []ItemResult {
	if res == nil || res.Tree == nil {
		return nil
	}
	var out []ItemResult
	for _, n := range res.Tree.Children {
		if !strings.HasSuffix(n.Name, "Result") {
			continue
		}
		r := ItemResult{
			ID:       itemID(n),
			Status:   n.Attr("status"),
			Products: n.FindAll("Product"),
		}
		if e := n.Child("Error"); e != nil {
			r.Err = &mws.APIError{
				Type:       e.Child("Type").Text(),
				Code:       e.Child("Code").Text(),
				Message:    e.Child("Message").Text(),
				RequestID:  res.RequestID,
				StatusCode: res.StatusCode,
			}
		}
		out = append(out, r)
	}
	return out
}

func itemID(n *xmltree.Node) string {
	for _, attr := range []string{"ASIN", "SellerSKU", "Id"} {
		if v := n.Attr(attr); v != "" {
			return v
		}
	}
	return ""
}

// ParseCompetitivePrices reads the competitive prices of one Product node.
// A malformed amount is an ErrDecodeError.
func ParseCompetitivePrices(product *xmltree.Node) ([]CompetitivePrice, error) {
	var f svc.Fields
	var out []CompetitivePrice
	for _, n := range product.FindAll("CompetitivePrice") {
		out = append(out, CompetitivePrice{
			CompetitivePriceID: n.Child("CompetitivePriceId").Text(),
			Condition:          n.Attr("condition"),
			Subcondition:       n.Attr("subcondition"),
			BelongsToRequester: n.Attr("belongsToRequester") == "true",
			Price:              parsePrice(&f, n.Child("Price")),
		})
	}
	if err := f.Err(subsys, "ParseCompetitivePrices", nil); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseOffers reads the seller's offers of one Product node.
func ParseOffers(product *xmltree.Node) ([]Offer, error) {
	var f svc.Fields
	var out []Offer
	for _, n := range product.FindAll("Offer") {
		out = append(out, Offer{
			SellerSKU:          n.Child("SellerSKU").Text(),
			ItemCondition:      n.Child("ItemCondition").Text(),
			FulfillmentChannel: n.Child("FulfillmentChannel").Text(),
			BuyingPrice:        parsePrice(&f, n.Child("BuyingPrice")),
			RegularPrice:       f.Money(n.Child("RegularPrice")),
		})
	}
	if err := f.Err(subsys, "ParseOffers", nil); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseLowestPrices reads the summary of GetLowestPricedOffersForASIN.
func ParseLowestPrices(res *mws.Result) ([]LowestPrice, error) {
	if res == nil || res.Tree == nil {
		return nil, nil
	}
	var f svc.Fields
	var out []LowestPrice
	for _, n := range res.Tree.FindAll("LowestPrice") {
		out = append(out, LowestPrice{
			Condition:          n.Attr("condition"),
			FulfillmentChannel: n.Attr("fulfillmentChannel"),
			Price:              parsePrice(&f, n),
		})
	}
	if err := f.Err(subsys, "ParseLowestPrices", res.Raw); err != nil {
		return nil, err
	}
	return out, nil
}

func parsePrice(f *svc.Fields, n *xmltree.Node) Price {
	return Price{
		LandedPrice:  f.Money(n.Child("LandedPrice")),
		ListingPrice: f.Money(n.Child("ListingPrice")),
		Shipping:     f.Money(n.Child("Shipping")),
	}
}
