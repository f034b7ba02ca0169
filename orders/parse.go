package orders

import (
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/svc"
	"github.com/IvanTurko/mws-sdk-go/mws"
)

// Order is the subset of order fields callers commonly need.
type Order struct {
	AmazonOrderID          string
	SellerOrderID          string
	PurchaseDate           time.Time
	LastUpdateDate         time.Time
	OrderStatus            OrderStatus
	FulfillmentChannel     FulfillmentChannel
	SalesChannel           string
	MarketplaceID          string
	OrderTotal             *mws.Money
	NumberOfItemsShipped   int64
	NumberOfItemsUnshipped int64
	IsPrime                bool
}

// OrderItem is one line of ListOrderItems.
type OrderItem struct {
	OrderItemID     string
	ASIN            string
	SellerSKU       string
	Title           string
	QuantityOrdered int64
	QuantityShipped int64
	ItemPrice       *mws.Money
	ItemTax         *mws.Money
	ShippingPrice   *mws.Money
}

// ParseOrders decodes ListOrders, ListOrdersByNextToken and GetOrder
// results. The returned token is empty on the last page. A malformed date,
// count or amount is an ErrDecodeError.
func ParseOrders(res *mws.Result) ([]Order, string, error) {
	if res == nil || res.Tree == nil {
		return nil, "", nil
	}
	var f svc.Fields
	var out []Order
	for _, n := range res.Tree.FindAll("Order") {
		o := Order{
			AmazonOrderID:          n.Child("AmazonOrderId").Text(),
			SellerOrderID:          n.Child("SellerOrderId").Text(),
			OrderStatus:            OrderStatus(n.Child("OrderStatus").Text()),
			FulfillmentChannel:     FulfillmentChannel(n.Child("FulfillmentChannel").Text()),
			SalesChannel:           n.Child("SalesChannel").Text(),
			MarketplaceID:          n.Child("MarketplaceId").Text(),
			PurchaseDate:           f.Time(n.Child("PurchaseDate")),
			LastUpdateDate:         f.Time(n.Child("LastUpdateDate")),
			OrderTotal:             f.Money(n.Child("OrderTotal")),
			NumberOfItemsShipped:   f.Int(n.Child("NumberOfItemsShipped")),
			NumberOfItemsUnshipped: f.Int(n.Child("NumberOfItemsUnshipped")),
			IsPrime:                n.Child("IsPrime").Text() == "true",
		}
		out = append(out, o)
	}
	if err := f.Err(subsys, "ParseOrders", res.Raw); err != nil {
		return nil, "", err
	}
	return out, res.Tree.FindFirst("NextToken").Text(), nil
}

// ParseOrderItems decodes ListOrderItems and ListOrderItemsByNextToken
// results.
func ParseOrderItems(res *mws.Result) ([]OrderItem, string, error) {
	if res == nil || res.Tree == nil {
		return nil, "", nil
	}
	var f svc.Fields
	var out []OrderItem
	for _, n := range res.Tree.FindAll("OrderItem") {
		it := OrderItem{
			OrderItemID:     n.Child("OrderItemId").Text(),
			ASIN:            n.Child("ASIN").Text(),
			SellerSKU:       n.Child("SellerSKU").Text(),
			Title:           n.Child("Title").Text(),
			QuantityOrdered: f.Int(n.Child("QuantityOrdered")),
			QuantityShipped: f.Int(n.Child("QuantityShipped")),
			ItemPrice:       f.Money(n.Child("ItemPrice")),
			ItemTax:         f.Money(n.Child("ItemTax")),
			ShippingPrice:   f.Money(n.Child("ShippingPrice")),
		}
		out = append(out, it)
	}
	if err := f.Err(subsys, "ParseOrderItems", res.Raw); err != nil {
		return nil, "", err
	}
	return out, res.Tree.FindFirst("NextToken").Text(), nil
}
