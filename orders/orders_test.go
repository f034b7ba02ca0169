package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanTurko/mws-sdk-go/internal/testutil"
	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
	"github.com/IvanTurko/mws-sdk-go/transport"
)

const listOrdersBody = `<?xml version="1.0"?>
<ListOrdersResponse xmlns="https://mws.amazonservices.com/Orders/2013-09-01">
  <ListOrdersResult>
    <NextToken>2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=</NextToken>
    <LastUpdatedBefore>2017-02-25T18:10:21.687Z</LastUpdatedBefore>
    <Orders>
      <Order>
        <AmazonOrderId>902-3159896-1390916</AmazonOrderId>
        <PurchaseDate>2017-02-20T19:49:35Z</PurchaseDate>
        <LastUpdateDate>2017-02-20T19:49:35Z</LastUpdateDate>
        <OrderStatus>Pending</OrderStatus>
        <FulfillmentChannel>MFN</FulfillmentChannel>
        <SalesChannel>Amazon.com</SalesChannel>
        <OrderTotal><CurrencyCode>USD</CurrencyCode><Amount>25.00</Amount></OrderTotal>
        <NumberOfItemsShipped>0</NumberOfItemsShipped>
        <NumberOfItemsUnshipped>2</NumberOfItemsUnshipped>
        <MarketplaceId>ATVPDKIKX0DER</MarketplaceId>
        <IsPrime>false</IsPrime>
      </Order>
      <Order>
        <AmazonOrderId>483-3488972-0896720</AmazonOrderId>
        <PurchaseDate>2017-02-20T19:49:35Z</PurchaseDate>
        <OrderStatus>Canceled</OrderStatus>
        <FulfillmentChannel>AFN</FulfillmentChannel>
        <IsPrime>true</IsPrime>
      </Order>
    </Orders>
  </ListOrdersResult>
  <ResponseMetadata><RequestId>88faca76-b600-46d2-b53c-0c8c4533e43a</RequestId></ResponseMetadata>
</ListOrdersResponse>`

const orderItemsBody = `<ListOrderItemsResponse><ListOrderItemsResult>
  <AmazonOrderId>058-1233752-8214740</AmazonOrderId>
  <OrderItems>
    <OrderItem>
      <ASIN>BT0093TELA</ASIN>
      <OrderItemId>68828574383266</OrderItemId>
      <SellerSKU>CBA_OTF_1</SellerSKU>
      <Title>Example item name</Title>
      <QuantityOrdered>1</QuantityOrdered>
      <QuantityShipped>1</QuantityShipped>
      <ItemPrice><CurrencyCode>USD</CurrencyCode><Amount>25.99</Amount></ItemPrice>
      <ShippingPrice><CurrencyCode>USD</CurrencyCode><Amount>1.26</Amount></ShippingPrice>
    </OrderItem>
  </OrderItems>
</ListOrderItemsResult></ListOrderItemsResponse>`

var (
	since = time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)
	until = time.Date(2017, 2, 10, 0, 0, 0, 0, time.UTC)
)

func newClient(t *testing.T, h transport.HTTPClient) *mws.Client {
	t.Helper()
	c, err := mws.NewClient(
		mws.Credentials{AccessKeyID: "AK1", SecretKey: "secret", SellerID: "SELLER1"},
		mws.WithHTTPClient(h),
	)
	require.NoError(t, err)
	return c
}

func TestListOrdersService_validate(t *testing.T) {
	tests := []struct {
		name    string
		svc     *ListOrdersService
		wantErr string
	}{
		{
			name: "valid created window",
			svc:  NewListOrdersService(nil).MarketplaceIDs("ATVPDKIKX0DER").CreatedAfter(since).CreatedBefore(until),
		},
		{
			name: "valid updated window with filters",
			svc: NewListOrdersService(nil).MarketplaceIDs("ATVPDKIKX0DER").
				LastUpdatedAfter(since).
				OrderStatuses(OrderStatusUnshipped, OrderStatusPartiallyShipped).
				FulfillmentChannels(FulfillmentChannelMFN).
				MaxResultsPerPage(100),
		},
		{
			name:    "missing marketplace",
			svc:     NewListOrdersService(nil).CreatedAfter(since),
			wantErr: "marketplaceIds must contain between 1 and 50 values",
		},
		{
			name:    "missing window",
			svc:     NewListOrdersService(nil).MarketplaceIDs("A"),
			wantErr: "createdAfter or lastUpdatedAfter is required",
		},
		{
			name:    "combined windows",
			svc:     NewListOrdersService(nil).MarketplaceIDs("A").CreatedAfter(since).LastUpdatedAfter(since),
			wantErr: "created and lastUpdated windows cannot be combined",
		},
		{
			name:    "inverted window",
			svc:     NewListOrdersService(nil).MarketplaceIDs("A").CreatedAfter(until).CreatedBefore(since),
			wantErr: "createdAfter must be before createdBefore",
		},
		{
			name:    "unshipped alone",
			svc:     NewListOrdersService(nil).MarketplaceIDs("A").CreatedAfter(since).OrderStatuses(OrderStatusUnshipped),
			wantErr: "Unshipped and PartiallyShipped must be used together",
		},
		{
			name:    "invalid status",
			svc:     NewListOrdersService(nil).MarketplaceIDs("A").CreatedAfter(since).OrderStatuses("Lost"),
			wantErr: `orderStatus "Lost" is invalid`,
		},
		{
			name:    "invalid channel",
			svc:     NewListOrdersService(nil).MarketplaceIDs("A").CreatedAfter(since).FulfillmentChannels("XYZ"),
			wantErr: `fulfillmentChannel "XYZ" is invalid`,
		},
		{
			name:    "buyer email with status",
			svc:     NewListOrdersService(nil).MarketplaceIDs("A").CreatedAfter(since).BuyerEmail("a@b.c").OrderStatuses(OrderStatusShipped),
			wantErr: "buyerEmail and sellerOrderId cannot be combined",
		},
		{
			name:    "page size too large",
			svc:     NewListOrdersService(nil).MarketplaceIDs("A").CreatedAfter(since).MaxResultsPerPage(101),
			wantErr: "maxResultsPerPage must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.svc.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, sdkerr.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestListOrdersService_Do(t *testing.T) {
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, listOrdersBody)}

	res, err := NewListOrdersService(newClient(t, rec)).
		MarketplaceIDs("ATVPDKIKX0DER", "A2EUQ1WTGCTBG2").
		CreatedAfter(since).
		OrderStatuses(OrderStatusUnshipped, OrderStatusPartiallyShipped).
		FulfillmentChannels(FulfillmentChannelMFN).
		MaxResultsPerPage(50).
		Do(context.Background())
	require.NoError(t, err)

	form := rec.Form(t)
	assert.Equal(t, "ListOrders", form.Get("Action"))
	assert.Equal(t, "ATVPDKIKX0DER", form.Get("MarketplaceId.Id.1"))
	assert.Equal(t, "A2EUQ1WTGCTBG2", form.Get("MarketplaceId.Id.2"))
	assert.Equal(t, "2017-02-01T00:00:00Z", form.Get("CreatedAfter"))
	assert.Equal(t, "Unshipped", form.Get("OrderStatus.Status.1"))
	assert.Equal(t, "PartiallyShipped", form.Get("OrderStatus.Status.2"))
	assert.Equal(t, "MFN", form.Get("FulfillmentChannel.Channel.1"))
	assert.Equal(t, "50", form.Get("MaxResultsPerPage"))
	assert.False(t, form.Has("CreatedBefore"))
	assert.Contains(t, string(rec.Body), "CreatedAfter=2017-02-01T00%3A00%3A00Z")

	orders, next, err := ParseOrders(res)
	require.NoError(t, err)
	assert.Equal(t, "2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=", next)
	require.Len(t, orders, 2)
	assert.Equal(t, "902-3159896-1390916", orders[0].AmazonOrderID)
	assert.Equal(t, OrderStatusPending, orders[0].OrderStatus)
	require.NotNil(t, orders[0].OrderTotal)
	assert.True(t, decimal.RequireFromString("25").Equal(orders[0].OrderTotal.Amount))
	assert.Equal(t, int64(2), orders[0].NumberOfItemsUnshipped)
	assert.Equal(t, time.Date(2017, 2, 20, 19, 49, 35, 0, time.UTC), orders[0].PurchaseDate)
	assert.Nil(t, orders[1].OrderTotal)
	assert.True(t, orders[1].IsPrime)
}

func TestListOrdersService_ValidationSkipsNetwork(t *testing.T) {
	called := false
	h := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			called = true
			return nil, errors.New("unreachable")
		},
	}
	_, err := NewListOrdersService(newClient(t, h)).Do(context.Background())
	assert.ErrorIs(t, err, sdkerr.ErrValidation)
	assert.False(t, called)
}

func TestGetOrderService(t *testing.T) {
	ids := make([]string, 51)
	for i := range ids {
		ids[i] = "id"
	}
	assert.Error(t, NewGetOrderService(nil).Validate())
	assert.Error(t, NewGetOrderService(nil).AmazonOrderIDs(ids...).Validate())

	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, listOrdersBody)}
	_, err := NewGetOrderService(newClient(t, rec)).AmazonOrderIDs("902-3159896-1390916", "483-3488972-0896720").Do(context.Background())
	require.NoError(t, err)
	form := rec.Form(t)
	assert.Equal(t, "GetOrder", form.Get("Action"))
	assert.Equal(t, "483-3488972-0896720", form.Get("AmazonOrderId.Id.2"))
}

func TestListOrderItemsService(t *testing.T) {
	assert.ErrorIs(t, NewListOrderItemsService(nil).Validate(), sdkerr.ErrValidation)

	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, orderItemsBody)}
	res, err := NewListOrderItemsService(newClient(t, rec)).AmazonOrderID("058-1233752-8214740").Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "058-1233752-8214740", rec.Form(t).Get("AmazonOrderId"))

	items, next, err := ParseOrderItems(res)
	require.NoError(t, err)
	assert.Empty(t, next)
	require.Len(t, items, 1)
	assert.Equal(t, "CBA_OTF_1", items[0].SellerSKU)
	assert.Equal(t, "25.99", items[0].ItemPrice.Amount.StringFixed(2))
	assert.Equal(t, "1.26", items[0].ShippingPrice.Amount.String())
	assert.Nil(t, items[0].ItemTax)
}

func TestNextTokenServices(t *testing.T) {
	assert.ErrorIs(t, NewListOrdersByNextTokenService(nil).Validate(), sdkerr.ErrValidation)

	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, listOrdersBody)}
	_, err := NewListOrdersByNextTokenService(newClient(t, rec)).NextToken("tok").Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ListOrdersByNextToken", rec.Form(t).Get("Action"))

	_, err = NewListOrderItemsByNextTokenService(newClient(t, rec)).Do(context.Background())
	assert.ErrorIs(t, err, sdkerr.ErrValidation)
}

func TestGetServiceStatusService(t *testing.T) {
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, `<GetServiceStatusResponse><GetServiceStatusResult><Status>GREEN_I</Status></GetServiceStatusResult></GetServiceStatusResponse>`)}
	res, err := NewGetServiceStatusService(newClient(t, rec)).Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://mws.amazonservices.com/Orders/2013-09-01", rec.Last.FullURL)

	st, err := mws.ParseServiceStatus(res)
	require.NoError(t, err)
	assert.Equal(t, "GREEN_I", st.Status)
}

func TestParseOrders_MalformedField(t *testing.T) {
	body := `<ListOrdersResponse><ListOrdersResult><Orders><Order>
<AmazonOrderId>1</AmazonOrderId>
<PurchaseDate>not-a-date</PurchaseDate>
<NumberOfItemsShipped>x</NumberOfItemsShipped>
</Order></Orders></ListOrdersResult></ListOrdersResponse>`
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, body)}
	res, err := NewListOrdersByNextTokenService(newClient(t, rec)).NextToken("tok").Do(context.Background())
	require.NoError(t, err)

	orders, next, err := ParseOrders(res)
	assert.ErrorIs(t, err, sdkerr.ErrDecodeError)
	assert.ErrorContains(t, err, "PurchaseDate")
	assert.Nil(t, orders)
	assert.Empty(t, next)
}

func TestParseOrderItems_MalformedField(t *testing.T) {
	body := `<ListOrderItemsResponse><ListOrderItemsResult><OrderItems><OrderItem>
<OrderItemId>1</OrderItemId>
<QuantityOrdered>1</QuantityOrdered>
<ItemPrice><CurrencyCode>USD</CurrencyCode><Amount>lots</Amount></ItemPrice>
</OrderItem></OrderItems></ListOrderItemsResult></ListOrderItemsResponse>`
	rec := &testutil.RecordingHTTPClient{Resp: testutil.XMLResponse(200, body)}
	res, err := NewListOrderItemsService(newClient(t, rec)).AmazonOrderID("1").Do(context.Background())
	require.NoError(t, err)

	_, _, err = ParseOrderItems(res)
	assert.ErrorIs(t, err, sdkerr.ErrDecodeError)
	assert.ErrorContains(t, err, "ItemPrice")
}
