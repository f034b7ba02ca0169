package fbainventory

import (
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

// Availability tells when stock becomes available. Type is Immediately,
// DateTime or Unknown; Date is set only for DateTime.
type Availability struct {
	Type string
	Date time.Time
}

// SupplyDetail is one line of a Detailed response.
type SupplyDetail struct {
	Quantity   int64
	SupplyType string
	Earliest   Availability
	Latest     Availability
}

// Supply is the availability of one seller SKU.
type Supply struct {
	SellerSKU             string
	FNSKU                 string
	ASIN                  string
	Condition             string
	TotalSupplyQuantity   int64
	InStockSupplyQuantity int64
	EarliestAvailability  Availability
	Details               []SupplyDetail
}

// SupplyList is one page of ListInventorySupply.
type SupplyList struct {
	Supplies  []Supply
	NextToken string
}

// ParseInventorySupply decodes ListInventorySupply and its ByNextToken
// sibling. Absent quantities read as zero. A malformed quantity or date is
// an ErrDecodeError.
func ParseInventorySupply(res *mws.Result) (SupplyList, error) {
	var out SupplyList
	if res == nil || res.Tree == nil {
		return out, nil
	}
	result := res.Tree.Child("ListInventorySupplyResult")
	if result == nil {
		result = res.Tree.Child("ListInventorySupplyByNextTokenResult")
	}
	if result == nil {
		return out, nil
	}

	var f svc.Fields
	out.NextToken = result.Child("NextToken").Text()
	for _, m := range result.Find("InventorySupplyList").ChildrenNamed("member") {
		s := Supply{
			SellerSKU:             m.Child("SellerSKU").Text(),
			FNSKU:                 m.Child("FNSKU").Text(),
			ASIN:                  m.Child("ASIN").Text(),
			Condition:             m.Child("Condition").Text(),
			TotalSupplyQuantity:   f.Int(m.Child("TotalSupplyQuantity")),
			InStockSupplyQuantity: f.Int(m.Child("InStockSupplyQuantity")),
			EarliestAvailability:  parseAvailability(&f, m.Child("EarliestAvailability")),
		}
		for _, d := range m.Find("SupplyDetail").ChildrenNamed("member") {
			s.Details = append(s.Details, SupplyDetail{
				Quantity:   f.Int(d.Child("Quantity")),
				SupplyType: d.Child("SupplyType").Text(),
				Earliest:   parseAvailability(&f, d.Child("EarliestAvailableToPick")),
				Latest:     parseAvailability(&f, d.Child("LatestAvailableToPick")),
			})
		}
		out.Supplies = append(out.Supplies, s)
	}
	if err := f.Err(subsys, "ParseInventorySupply", res.Raw); err != nil {
		return SupplyList{}, err
	}
	return out, nil
}

func parseAvailability(f *svc.Fields, n *xmltree.Node) Availability {
	return Availability{
		Type: n.Child("TimepointType").Text(),
		Date: f.Time(n.Child("DateTime")),
	}
}
