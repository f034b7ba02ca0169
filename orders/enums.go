package orders

// OrderStatus filters ListOrders.
type OrderStatus string

const (
	OrderStatusPendingAvailability OrderStatus = "PendingAvailability"
	OrderStatusPending             OrderStatus = "Pending"
	OrderStatusUnshipped           OrderStatus = "Unshipped"
	OrderStatusPartiallyShipped    OrderStatus = "PartiallyShipped"
	OrderStatusShipped             OrderStatus = "Shipped"
	OrderStatusInvoiceUnconfirmed  OrderStatus = "InvoiceUnconfirmed"
	OrderStatusCanceled            OrderStatus = "Canceled"
	OrderStatusUnfulfillable       OrderStatus = "Unfulfillable"
)

// OrderStatuses lists every OrderStatus.
var OrderStatuses = []OrderStatus{
	OrderStatusPendingAvailability, OrderStatusPending, OrderStatusUnshipped,
	OrderStatusPartiallyShipped, OrderStatusShipped, OrderStatusInvoiceUnconfirmed,
	OrderStatusCanceled, OrderStatusUnfulfillable,
}

// FulfillmentChannel is AFN (fulfilled by Amazon) or MFN (by the seller).
type FulfillmentChannel string

const (
	FulfillmentChannelAFN FulfillmentChannel = "AFN"
	FulfillmentChannelMFN FulfillmentChannel = "MFN"
)

var FulfillmentChannels = []FulfillmentChannel{FulfillmentChannelAFN, FulfillmentChannelMFN}

// PaymentMethod filters ListOrders in marketplaces that support COD and CVS.
type PaymentMethod string

const (
	PaymentMethodCOD   PaymentMethod = "COD"
	PaymentMethodCVS   PaymentMethod = "CVS"
	PaymentMethodOther PaymentMethod = "Other"
)

var PaymentMethods = []PaymentMethod{PaymentMethodCOD, PaymentMethodCVS, PaymentMethodOther}

// TFMShipmentStatus applies to Amazon China only.
type TFMShipmentStatus string

const (
	TFMPendingPickUp    TFMShipmentStatus = "PendingPickUp"
	TFMLabelCanceled    TFMShipmentStatus = "LabelCanceled"
	TFMPickedUp         TFMShipmentStatus = "PickedUp"
	TFMAtDestinationFC  TFMShipmentStatus = "AtDestinationFC"
	TFMDelivered        TFMShipmentStatus = "Delivered"
	TFMRejectedByBuyer  TFMShipmentStatus = "RejectedByBuyer"
	TFMUndeliverable    TFMShipmentStatus = "Undeliverable"
	TFMReturnedToSeller TFMShipmentStatus = "ReturnedToSeller"
	TFMLost             TFMShipmentStatus = "Lost"
	TFMOutForDelivery   TFMShipmentStatus = "OutForDelivery"
	TFMDamaged          TFMShipmentStatus = "Damaged"
)

var TFMShipmentStatuses = []TFMShipmentStatus{
	TFMPendingPickUp, TFMLabelCanceled, TFMPickedUp, TFMAtDestinationFC, TFMDelivered,
	TFMRejectedByBuyer, TFMUndeliverable, TFMReturnedToSeller, TFMLost, TFMOutForDelivery,
	TFMDamaged,
}
