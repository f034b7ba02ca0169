package xmltree

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const priceDoc = `<?xml version="1.0"?>
<GetMyPriceForASINResponse xmlns="http://mws.amazonservices.com/schema/Products/2011-10-01">
  <GetMyPriceForASINResult ASIN="B00MHNX4WO" status="Success">
    <Product>
      <Offers>
        <Offer>
          <BuyingPrice>
            <LandedPrice><CurrencyCode>USD</CurrencyCode><Amount>19.99</Amount></LandedPrice>
          </BuyingPrice>
        </Offer>
        <Offer>
          <BuyingPrice>
            <LandedPrice><CurrencyCode>USD</CurrencyCode><Amount>21.50</Amount></LandedPrice>
          </BuyingPrice>
        </Offer>
      </Offers>
    </Product>
  </GetMyPriceForASINResult>
  <ResponseMetadata><RequestId>abc-123</RequestId></ResponseMetadata>
</GetMyPriceForASINResponse>`

func TestParse_PreservesOrder(t *testing.T) {
	root, err := Parse([]byte(priceDoc))
	require.NoError(t, err)

	assert.Equal(t, "GetMyPriceForASINResponse", root.Name)

	result := root.Child("GetMyPriceForASINResult")
	require.NotNil(t, result)
	assert.Equal(t, "B00MHNX4WO", result.Attr("ASIN"))
	assert.Equal(t, "Success", result.Attr("status"))

	offers := result.Find("Product", "Offers").ChildrenNamed("Offer")
	require.Len(t, offers, 2)

	amounts := root.FindAll("Amount")
	require.Len(t, amounts, 2)
	first, err := amounts[0].Decimal()
	require.NoError(t, err)
	assert.True(t, first.Equal(decimal.RequireFromString("19.99")))
	second, err := amounts[1].Decimal()
	require.NoError(t, err)
	assert.True(t, second.Equal(decimal.RequireFromString("21.5")))

	assert.Equal(t, "abc-123", root.Find("ResponseMetadata", "RequestId").Text())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"truncated", `<ErrorResponse><Error><Code>X</Code>`},
		{"mismatched", `<a><b></a></b>`},
		{"not xml", `Date	Amount
2020-01-01	1.00`},
		{"empty", ``},
		{"two roots", `<a/><b/>`},
		{"text after root", `<GetServiceStatusResponse><Status>GREEN</Status></GetServiceStatusResponse>garbage after root`},
		{"text before root", `junk<a/>`},
		{"doctype after root", `<a/><!DOCTYPE a>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := Parse([]byte(tc.data))
			assert.Error(t, err)
			assert.Nil(t, root)
		})
	}
}

func TestNode_NilSafe(t *testing.T) {
	var n *Node
	assert.Equal(t, "", n.Text())
	assert.Equal(t, "", n.Attr("x"))
	assert.Nil(t, n.Child("x"))
	assert.Nil(t, n.Find("x", "y"))
	assert.Nil(t, n.FindAll("x"))
	assert.Nil(t, n.FindFirst("x"))
	assert.Nil(t, n.Map())
}

func TestNode_Scalars(t *testing.T) {
	root, err := Parse([]byte(`<r><n> 42 </n><b>true</b><t>2014-10-08T14:36:48.812Z</t></r>`))
	require.NoError(t, err)

	n, err := root.Child("n").Int()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	b, err := root.Child("b").Bool()
	require.NoError(t, err)
	assert.True(t, b)

	ts, err := root.Child("t").Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2014, 10, 8, 14, 36, 48, 812_000_000, time.UTC), ts)

	_, err = root.Child("b").Int()
	assert.Error(t, err)
}

func TestNode_Map(t *testing.T) {
	root, err := Parse([]byte(`<Status><Id>1</Id><Id>2</Id><Id>3</Id><Name>GREEN</Name></Status>`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"Status": map[string]any{
			"Id":   []any{"1", "2", "3"},
			"Name": "GREEN",
		},
	}, root.Map())
}

func TestParse_AroundRoot(t *testing.T) {
	doc := "<?xml version=\"1.0\"?>\n<!-- generated -->\n<a>x</a>\n<!-- end --><?pi data?>\n\t"

	root, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "x", root.Text())
}

func TestNode_MapAttributesAndMixedText(t *testing.T) {
	root, err := Parse([]byte(`<Product xmlns="urn:x"><Identifier ASIN="B00">note<Rank>3</Rank></Identifier><Price currency="USD">9.99</Price><Empty id="e"/></Product>`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"Product": map[string]any{
			AttrKey: map[string]any{"xmlns": "urn:x"},
			"Identifier": map[string]any{
				AttrKey: map[string]any{"ASIN": "B00"},
				TextKey: "note",
				"Rank":  "3",
			},
			"Price": map[string]any{
				AttrKey: map[string]any{"currency": "USD"},
				TextKey: "9.99",
			},
			"Empty": map[string]any{
				AttrKey: map[string]any{"id": "e"},
			},
		},
	}, root.Map())
}

func TestParse_Latin1(t *testing.T) {
	doc := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><Title>Caf`), 0xE9, '<', '/', 'T', 'i', 't', 'l', 'e', '>')

	root, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "Café", root.Text())

	_, err = Parse([]byte(`<?xml version="1.0" encoding="x-made-up"?><a/>`))
	assert.Error(t, err)
}
