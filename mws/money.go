package mws

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

// Money is an amount in a currency, as found in OrderTotal, ItemPrice,
// LandedPrice and similar elements.
type Money struct {
	CurrencyCode string
	Amount       decimal.Decimal
}

// ParseMoney reads an element holding CurrencyCode and Amount children.
// A nil n or an empty Amount yields nil. A non-numeric Amount is an error.
func ParseMoney(n *xmltree.Node) (*Money, error) {
	amount := n.Child("Amount")
	if amount.Text() == "" {
		return nil, nil
	}
	v, err := amount.Decimal()
	if err != nil {
		return nil, fmt.Errorf("Amount: %w", err)
	}
	return &Money{CurrencyCode: n.Child("CurrencyCode").Text(), Amount: v}, nil
}

// String renders the amount followed by the currency, e.g. "25.99 USD".
func (m *Money) String() string {
	if m == nil {
		return ""
	}
	if m.CurrencyCode == "" {
		return m.Amount.String()
	}
	return m.Amount.String() + " " + m.CurrencyCode
}
