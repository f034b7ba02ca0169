package feeds

// FeedType names the kind of data a feed carries.
type FeedType string

const (
	FeedProductData                      FeedType = "_POST_PRODUCT_DATA_"
	FeedProductRelationshipData          FeedType = "_POST_PRODUCT_RELATIONSHIP_DATA_"
	FeedItemData                         FeedType = "_POST_ITEM_DATA_"
	FeedProductOverridesData             FeedType = "_POST_PRODUCT_OVERRIDES_DATA_"
	FeedProductImageData                 FeedType = "_POST_PRODUCT_IMAGE_DATA_"
	FeedProductPricingData               FeedType = "_POST_PRODUCT_PRICING_DATA_"
	FeedInventoryAvailabilityData        FeedType = "_POST_INVENTORY_AVAILABILITY_DATA_"
	FeedOrderAcknowledgementData         FeedType = "_POST_ORDER_ACKNOWLEDGEMENT_DATA_"
	FeedOrderFulfillmentData             FeedType = "_POST_ORDER_FULFILLMENT_DATA_"
	FeedFulfillmentOrderRequestData      FeedType = "_POST_FULFILLMENT_ORDER_REQUEST_DATA_"
	FeedFulfillmentOrderCancellation     FeedType = "_POST_FULFILLMENT_ORDER_CANCELLATION"
	FeedPaymentAdjustmentData            FeedType = "_POST_PAYMENT_ADJUSTMENT_DATA_"
	FeedInvoiceConfirmationData          FeedType = "_POST_INVOICE_CONFIRMATION_DATA_"
	FeedFlatFileListingsData             FeedType = "_POST_FLAT_FILE_LISTINGS_DATA_"
	FeedFlatFileOrderAcknowledgementData FeedType = "_POST_FLAT_FILE_ORDER_ACKNOWLEDGEMENT_DATA_"
	FeedFlatFileFulfillmentData          FeedType = "_POST_FLAT_FILE_FULFILLMENT_DATA_"
	FeedFlatFileFBACreateInboundShipment FeedType = "_POST_FLAT_FILE_FBA_CREATE_INBOUND_SHIPMENT_"
	FeedFlatFileFBAUpdateInboundShipment FeedType = "_POST_FLAT_FILE_FBA_UPDATE_INBOUND_SHIPMENT_"
	FeedFlatFilePaymentAdjustmentData    FeedType = "_POST_FLAT_FILE_PAYMENT_ADJUSTMENT_DATA_"
	FeedFlatFileInvoiceConfirmationData  FeedType = "_POST_FLAT_FILE_INVOICE_CONFIRMATION_DATA_"
	FeedFlatFileInvLoaderData            FeedType = "_POST_FLAT_FILE_INVLOADER_DATA_"
	FeedFlatFileConvergenceListingsData  FeedType = "_POST_FLAT_FILE_CONVERGENCE_LISTINGS_DATA_"
	FeedFlatFileBookLoaderData           FeedType = "_POST_FLAT_FILE_BOOKLOADER_DATA_"
	FeedFlatFilePriceAndQuantityOnly     FeedType = "_POST_FLAT_FILE_PRICEANDQUANTITYONLY"
	FeedUIEEBookLoaderData               FeedType = "_POST_UIEE_BOOKLOADER_DATA_"
)

// FeedTypes lists every FeedType SubmitFeed accepts.
var FeedTypes = []FeedType{
	FeedProductData, FeedProductRelationshipData, FeedItemData, FeedProductOverridesData,
	FeedProductImageData, FeedProductPricingData, FeedInventoryAvailabilityData,
	FeedOrderAcknowledgementData, FeedOrderFulfillmentData, FeedFulfillmentOrderRequestData,
	FeedFulfillmentOrderCancellation, FeedPaymentAdjustmentData, FeedInvoiceConfirmationData,
	FeedFlatFileListingsData, FeedFlatFileOrderAcknowledgementData, FeedFlatFileFulfillmentData,
	FeedFlatFileFBACreateInboundShipment, FeedFlatFileFBAUpdateInboundShipment,
	FeedFlatFilePaymentAdjustmentData, FeedFlatFileInvoiceConfirmationData,
	FeedFlatFileInvLoaderData, FeedFlatFileConvergenceListingsData, FeedFlatFileBookLoaderData,
	FeedFlatFilePriceAndQuantityOnly, FeedUIEEBookLoaderData,
}

// ProcessingStatus is the state of a submitted feed.
type ProcessingStatus string

const (
	StatusAwaitingAsynchronousReply ProcessingStatus = "_AWAITING_ASYNCHRONOUS_REPLY_"
	StatusCancelled                 ProcessingStatus = "_CANCELLED_"
	StatusDone                      ProcessingStatus = "_DONE_"
	StatusInProgress                ProcessingStatus = "_IN_PROGRESS_"
	StatusInSafetyNet               ProcessingStatus = "_IN_SAFETY_NET_"
	StatusSubmitted                 ProcessingStatus = "_SUBMITTED_"
	StatusUnconfirmed               ProcessingStatus = "_UNCONFIRMED_"
)

var ProcessingStatuses = []ProcessingStatus{
	StatusAwaitingAsynchronousReply, StatusCancelled, StatusDone, StatusInProgress,
	StatusInSafetyNet, StatusSubmitted, StatusUnconfirmed,
}
