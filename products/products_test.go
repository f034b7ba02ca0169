package products

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanTurko/mws-sdk-go/internal/testutil"
	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
	"github.com/IvanTurko/mws-sdk-go/transport"
	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

const marketplace = "ATVPDKIKX0DER"

const myPriceBody = `<?xml version="1.0"?>
<GetMyPriceForASINResponse xmlns="http://mws.amazonservices.com/schema/Products/2011-10-01">
  <GetMyPriceForASINResult ASIN="B00005TNG7" status="Success">
    <Product>
      <Identifiers><MarketplaceASIN><MarketplaceId>ATVPDKIKX0DER</MarketplaceId><ASIN>B00005TNG7</ASIN></MarketplaceASIN></Identifiers>
      <Offers>
        <Offer>
          <BuyingPrice>
            <LandedPrice><CurrencyCode>USD</CurrencyCode><Amount>303.99</Amount></LandedPrice>
            <ListingPrice><CurrencyCode>USD</CurrencyCode><Amount>300.00</Amount></ListingPrice>
            <Shipping><CurrencyCode>USD</CurrencyCode><Amount>3.99</Amount></Shipping>
          </BuyingPrice>
          <RegularPrice><CurrencyCode>USD</CurrencyCode><Amount>300.00</Amount></RegularPrice>
          <FulfillmentChannel>MERCHANT</FulfillmentChannel>
          <ItemCondition>New</ItemCondition>
          <SellerSKU>SKU2468</SellerSKU>
        </Offer>
      </Offers>
    </Product>
  </GetMyPriceForASINResult>
  <GetMyPriceForASINResult ASIN="1933890517" status="ClientError">
    <Error>
      <Type>Sender</Type>
      <Code>InvalidParameterValue</Code>
      <Message>ASIN 1933890517 is not valid for marketplace ATVPDKIKX0DER</Message>
    </Error>
  </GetMyPriceForASINResult>
  <ResponseMetadata><RequestId>a3381684-c7ab-4d6c-8ea8-8a3bd1f6fa39</RequestId></ResponseMetadata>
</GetMyPriceForASINResponse>`

const competitiveBody = `<GetCompetitivePricingForSKUResponse>
  <GetCompetitivePricingForSKUResult SellerSKU="SKU1" status="Success">
    <Product>
      <CompetitivePricing>
        <CompetitivePrices>
          <CompetitivePrice belongsToRequester="false" condition="New" subcondition="New">
            <CompetitivePriceId>1</CompetitivePriceId>
            <Price>
              <LandedPrice><CurrencyCode>USD</CurrencyCode><Amount>11.25</Amount></LandedPrice>
              <ListingPrice><CurrencyCode>USD</CurrencyCode><Amount>9.26</Amount></ListingPrice>
              <Shipping><CurrencyCode>USD</CurrencyCode><Amount>1.99</Amount></Shipping>
            </Price>
          </CompetitivePrice>
          <CompetitivePrice belongsToRequester="true" condition="Used" subcondition="Good">
            <CompetitivePriceId>2</CompetitivePriceId>
            <Price>
              <ListingPrice><CurrencyCode>USD</CurrencyCode><Amount>7.00</Amount></ListingPrice>
            </Price>
          </CompetitivePrice>
        </CompetitivePrices>
      </CompetitivePricing>
    </Product>
  </GetCompetitivePricingForSKUResult>
</GetCompetitivePricingForSKUResponse>`

const lowestOffersBody = `<GetLowestPricedOffersForASINResponse>
  <GetLowestPricedOffersForASINResult MarketplaceID="ATVPDKIKX0DER" ItemCondition="New" status="Success">
    <Identifier><ASIN>B00EXAMPLE</ASIN></Identifier>
    <Summary>
      <TotalOfferCount>2</TotalOfferCount>
      <LowestPrices>
        <LowestPrice condition="new" fulfillmentChannel="Amazon">
          <LandedPrice><CurrencyCode>USD</CurrencyCode><Amount>32.99</Amount></LandedPrice>
          <ListingPrice><CurrencyCode>USD</CurrencyCode><Amount>32.99</Amount></ListingPrice>
          <Shipping><CurrencyCode>USD</CurrencyCode><Amount>0.00</Amount></Shipping>
        </LowestPrice>
      </LowestPrices>
    </Summary>
  </GetLowestPricedOffersForASINResult>
</GetLowestPricedOffersForASINResponse>`

func newClient(t *testing.T, h transport.HTTPClient) *mws.Client {
	t.Helper()
	c, err := mws.NewClient(
		mws.Credentials{AccessKeyID: "AK1", SecretKey: "secret", SellerID: "SELLER1"},
		mws.WithHTTPClient(h),
		mws.WithNowFunc(func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }),
	)
	require.NoError(t, err)
	return c
}

func asins(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "B000000000"
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		svc     interface{ Validate() error }
		wantErr string
	}{
		{
			name: "list matching ok",
			svc:  NewListMatchingProductsService(nil).MarketplaceID(marketplace).Query("ipod"),
		},
		{
			name:    "list matching without query",
			svc:     NewListMatchingProductsService(nil).MarketplaceID(marketplace),
			wantErr: "query is required",
		},
		{
			name:    "list matching without marketplace",
			svc:     NewListMatchingProductsService(nil).Query("ipod"),
			wantErr: "marketplaceId is required",
		},
		{
			name:    "matching product too many asins",
			svc:     NewGetMatchingProductService(nil).MarketplaceID(marketplace).ASINs(asins(11)...),
			wantErr: "asins must contain between 1 and 10 values",
		},
		{
			name: "matching product ten asins",
			svc:  NewGetMatchingProductService(nil).MarketplaceID(marketplace).ASINs(asins(10)...),
		},
		{
			name:    "for id without type",
			svc:     NewGetMatchingProductForIDService(nil).MarketplaceID(marketplace).IDs("1"),
			wantErr: "idType is required",
		},
		{
			name:    "for id bad type",
			svc:     NewGetMatchingProductForIDService(nil).MarketplaceID(marketplace).IDType("SKU").IDs("1"),
			wantErr: `idType "SKU" is invalid`,
		},
		{
			name:    "for id too many ids",
			svc:     NewGetMatchingProductForIDService(nil).MarketplaceID(marketplace).IDType(IDTypeUPC).IDs("1", "2", "3", "4", "5", "6"),
			wantErr: "ids must contain between 1 and 5 values",
		},
		{
			name: "competitive pricing twenty asins",
			svc:  NewGetCompetitivePricingForASINService(nil).MarketplaceID(marketplace).ASINs(asins(20)...),
		},
		{
			name:    "my price twenty one asins",
			svc:     NewGetMyPriceForASINService(nil).MarketplaceID(marketplace).ASINs(asins(21)...),
			wantErr: "asins must contain between 1 and 20 values",
		},
		{
			name:    "sku pricing empty",
			svc:     NewGetCompetitivePricingForSKUService(nil).MarketplaceID(marketplace),
			wantErr: "sellerSkus must contain between 1 and 20 values",
		},
		{
			name:    "lowest offers bad condition",
			svc:     NewGetLowestPricedOffersForASINService(nil).MarketplaceID(marketplace).ASIN("B1").ItemCondition("Mint"),
			wantErr: `itemCondition "Mint" is invalid`,
		},
		{
			name:    "lowest offers missing condition",
			svc:     NewGetLowestPricedOffersForASINService(nil).MarketplaceID(marketplace).ASIN("B1"),
			wantErr: "itemCondition is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.svc.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, sdkerr.ErrValidation)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestListMatchingProductsService_SignedBody(t *testing.T) {
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, `<ListMatchingProductsResponse/>`)}

	_, err := NewListMatchingProductsService(newClient(t, rec)).
		MarketplaceID(marketplace).
		Query("Ed Sheeran's (live)*").
		QueryContextID("Music").
		Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://mws.amazonservices.com/Products/2011-10-01", rec.Last.FullURL)
	assert.Equal(t,
		"AWSAccessKeyId=AK1&Action=ListMatchingProducts&MarketplaceId=ATVPDKIKX0DER"+
			"&Query=Ed%20Sheeran%27s%20%28live%29%2A&QueryContextId=Music&SellerId=SELLER1"+
			"&SignatureMethod=HmacSHA256&SignatureVersion=2&Timestamp=2020-01-01T00%3A00%3A00Z"+
			"&Version=2011-10-01&Signature=JPcRDlw5avzh8Rz2QvN%2BQinZ7GpM8dVXxTPHMw9gubA%3D",
		string(rec.Body))
	assert.Equal(t, "Ed Sheeran's (live)*", rec.Form(t).Get("Query"))
}

func TestGetMatchingProductForIDService_Params(t *testing.T) {
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, `<GetMatchingProductForIdResponse/>`)}

	_, err := NewGetMatchingProductForIDService(newClient(t, rec)).
		MarketplaceID(marketplace).
		IDType(IDTypeEAN).
		IDs("9781933988665", "0786936735505").
		Do(context.Background())
	require.NoError(t, err)

	form := rec.Form(t)
	assert.Equal(t, "GetMatchingProductForId", form.Get("Action"))
	assert.Equal(t, "EAN", form.Get("IdType"))
	assert.Equal(t, "9781933988665", form.Get("IdList.Id.1"))
	assert.Equal(t, "0786936735505", form.Get("IdList.Id.2"))
}

func TestGetMyPriceForASINService_PerItemErrors(t *testing.T) {
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, myPriceBody)}

	res, err := NewGetMyPriceForASINService(newClient(t, rec)).
		MarketplaceID(marketplace).
		ASINs("B00005TNG7", "1933890517").
		Do(context.Background())
	require.NoError(t, err, "a failed entry must not fail the call")

	form := rec.Form(t)
	assert.Equal(t, "GetMyPriceForASIN", form.Get("Action"))
	assert.Equal(t, "1933890517", form.Get("ASINList.ASIN.2"))

	items := ParseItemResults(res)
	require.Len(t, items, 2)

	assert.True(t, items[0].OK())
	assert.Equal(t, "B00005TNG7", items[0].ID)
	require.Len(t, items[0].Products, 1)
	offers, err := ParseOffers(items[0].Products[0])
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "SKU2468", offers[0].SellerSKU)
	assert.Equal(t, "303.99 USD", offers[0].BuyingPrice.LandedPrice.String())
	assert.Equal(t, "3.99", offers[0].BuyingPrice.Shipping.Amount.String())
	assert.Equal(t, "300", offers[0].RegularPrice.Amount.String())

	assert.False(t, items[1].OK())
	require.NotNil(t, items[1].Err)
	assert.Equal(t, "InvalidParameterValue", items[1].Err.Code)
	assert.True(t, items[1].Err.ErrorCode().IsParameterError())
	assert.Equal(t, "a3381684-c7ab-4d6c-8ea8-8a3bd1f6fa39", items[1].Err.RequestID)
	assert.Empty(t, items[1].Products)
}

func TestGetCompetitivePricingForSKUService(t *testing.T) {
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, competitiveBody)}

	res, err := NewGetCompetitivePricingForSKUService(newClient(t, rec)).
		MarketplaceID(marketplace).
		SellerSKUs("SKU1").
		Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SKU1", rec.Form(t).Get("SellerSKUList.SellerSKU.1"))

	items := ParseItemResults(res)
	require.Len(t, items, 1)
	assert.Equal(t, "SKU1", items[0].ID)

	prices, err := ParseCompetitivePrices(items[0].Products[0])
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, "1", prices[0].CompetitivePriceID)
	assert.Equal(t, "New", prices[0].Condition)
	assert.False(t, prices[0].BelongsToRequester)
	assert.Equal(t, "11.25", prices[0].LandedPrice.Amount.String())
	assert.True(t, prices[1].BelongsToRequester)
	assert.Equal(t, "Good", prices[1].Subcondition)
	assert.Nil(t, prices[1].LandedPrice)
	assert.Equal(t, "7", prices[1].ListingPrice.Amount.String())
}

func TestGetLowestPricedOffersForASINService(t *testing.T) {
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, lowestOffersBody)}

	res, err := NewGetLowestPricedOffersForASINService(newClient(t, rec)).
		MarketplaceID(marketplace).
		ASIN("B00EXAMPLE").
		ItemCondition(ItemConditionNew).
		Do(context.Background())
	require.NoError(t, err)

	form := rec.Form(t)
	assert.Equal(t, "B00EXAMPLE", form.Get("ASIN"))
	assert.Equal(t, "New", form.Get("ItemCondition"))

	lowest, err := ParseLowestPrices(res)
	require.NoError(t, err)
	require.Len(t, lowest, 1)
	assert.Equal(t, "Amazon", lowest[0].FulfillmentChannel)
	assert.Equal(t, "32.99 USD", lowest[0].LandedPrice.String())
	assert.True(t, lowest[0].Shipping.Amount.IsZero())
}

func TestPriceParsers_MalformedAmount(t *testing.T) {
	product, err := xmltree.Parse([]byte(`<Product>
<CompetitivePrice><Price><LandedPrice><Amount>cheap</Amount></LandedPrice></Price></CompetitivePrice>
<Offer><BuyingPrice/><RegularPrice><Amount>1,99</Amount></RegularPrice></Offer>
</Product>`))
	require.NoError(t, err)

	prices, err := ParseCompetitivePrices(product)
	assert.ErrorIs(t, err, sdkerr.ErrDecodeError)
	assert.ErrorContains(t, err, "LandedPrice")
	assert.Nil(t, prices)

	offers, err := ParseOffers(product)
	assert.ErrorIs(t, err, sdkerr.ErrDecodeError)
	assert.ErrorContains(t, err, "RegularPrice")
	assert.Nil(t, offers)

	body := `<GetLowestPricedOffersForASINResponse><GetLowestPricedOffersForASINResult><Summary><LowestPrices>
<LowestPrice condition="new" fulfillmentChannel="Merchant"><Shipping><Amount>free</Amount></Shipping></LowestPrice>
</LowestPrices></Summary></GetLowestPricedOffersForASINResult></GetLowestPricedOffersForASINResponse>`
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, body)}
	res, err := NewGetLowestPricedOffersForASINService(newClient(t, rec)).
		MarketplaceID(marketplace).
		ASIN("B00EXAMPLE").
		ItemCondition(ItemConditionNew).
		Do(context.Background())
	require.NoError(t, err)

	lowest, err := ParseLowestPrices(res)
	assert.ErrorIs(t, err, sdkerr.ErrDecodeError)
	assert.ErrorContains(t, err, "Shipping")
	assert.Nil(t, lowest)
}

func TestGetServiceStatusService_Throttled(t *testing.T) {
	h := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return testutil.XMLResponse(503, `<ErrorResponse><Error><Type>Sender</Type><Code>RequestThrottled</Code><Message>Request is throttled</Message></Error><RequestID>r1</RequestID></ErrorResponse>`), nil
		},
	}

	_, err := NewGetServiceStatusService(newClient(t, h)).Do(context.Background())
	assert.ErrorIs(t, err, sdkerr.ErrAPIError)

	var apiErr *mws.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
	assert.True(t, apiErr.ErrorCode().IsThrottleError())
	assert.Equal(t, "r1", apiErr.RequestID)
}

func TestServices_RequireClient(t *testing.T) {
	_, err := NewGetMatchingProductService(nil).MarketplaceID(marketplace).ASINs("B1").Do(context.Background())
	assert.ErrorIs(t, err, sdkerr.ErrValidation)
	assert.ErrorContains(t, err, "client is required")
}
