package reports

// ReportType names a report.
type ReportType string

// Report types used by name in this package and its callers.
const (
	ReportMerchantListings         ReportType = "_GET_MERCHANT_LISTINGS_DATA_"
	ReportFlatFileOpenListings     ReportType = "_GET_FLAT_FILE_OPEN_LISTINGS_DATA_"
	ReportFlatFileOrders           ReportType = "_GET_FLAT_FILE_ORDERS_DATA_"
	ReportFlatFileAllOrdersByDate  ReportType = "_GET_FLAT_FILE_ALL_ORDERS_DATA_BY_ORDER_DATE_"
	ReportXMLAllOrdersByLastUpdate ReportType = "_GET_XML_ALL_ORDERS_DATA_BY_LAST_UPDATE_"
	ReportSettlementFlatFile       ReportType = "_GET_V2_SETTLEMENT_REPORT_DATA_FLAT_FILE_"
	ReportAFNInventory             ReportType = "_GET_AFN_INVENTORY_DATA_"
	ReportFBAMyiAllInventory       ReportType = "_GET_FBA_MYI_ALL_INVENTORY_DATA_"
)

// ReportTypes lists the report types the list, count and schedule
// operations accept as filters.
var ReportTypes = []ReportType{
	"_GET_FLAT_FILE_OPEN_LISTINGS_DATA_",
	"_GET_MERCHANT_LISTINGS_DATA_",
	"_GET_MERCHANT_LISTINGS_DATA_BACK_COMPAT_",
	"_GET_MERCHANT_LISTINGS_DATA_LITE_",
	"_GET_MERCHANT_LISTINGS_DATA_LITER_",
	"_GET_MERCHANT_CANCELLED_LISTINGS_DATA_",
	"_GET_CONVERGED_FLAT_FILE_SOLD_LISTINGS_DATA_",
	"_GET_ORDERS_DATA_",
	"_GET_MERCHANT_LISTINGS_DEFECT_DATA_",
	"_GET_FLAT_FILE_ORDERS_DATA_",
	"_GET_FLAT_FILE_ACTIONABLE_ORDER_DATA_",
	"_GET_CONVERGED_FLAT_FILE_ORDER_REPORT_DATA_",
	"_GET_FLAT_FILE_ALL_ORDERS_DATA_BY_LAST_UPDATE_",
	"_GET_FLAT_FILE_ALL_ORDERS_DATA_BY_ORDER_DATE_",
	"_GET_XML_ALL_ORDERS_DATA_BY_LAST_UPDATE_",
	"_GET_XML_ALL_ORDERS_DATA_BY_ORDER_DATE_",
	"_GET_PENDING_ORDERS_DATA_",
	"_GET_FLAT_FILE_PENDING_ORDERS_DATA_",
	"_GET_CONVERGED_FLAT_FILE_PENDING_ORDERS_DATA_",
	"_GET_SELLER_FEEDBACK_DATA_",
	"_GET_V2_SETTLEMENT_REPORT_DATA_FLAT_FILE_",
	"_GET_V2_SETTLEMENT_REPORT_DATA_XML_",
	"_GET_V2_SETTLEMENT_REPORT_DATA_FLAT_FILE_V2_",
	"_GET_AMAZON_FULFILLED_SHIPMENTS_DATA_",
	"_GET_FBA_FULFILLMENT_CUSTOMER_SHIPMENT_SALES_DATA_",
	"_GET_FBA_FULFILLMENT_CUSTOMER_SHIPMENT_PROMOTION_DATA_",
	"_GET_FBA_FULFILLMENT_CUSTOMER_TAXES_DATA_",
	"_GET_AFN_INVENTORY_DATA_",
	"_GET_AFN_INVENTORY_DATA_BY_COUNTRY_",
	"_GET_FBA_FULFILLMENT_CURRENT_INVENTORY_DATA_",
	"_GET_FBA_FULFILLMENT_MONTHLY_INVENTORY_DATA_",
	"_GET_FBA_FULFILLMENT_INVENTORY_RECEIPTS_DATA_",
	"_GET_RESERVED_INVENTORY_DATA_",
	"_GET_FBA_FULFILLMENT_INVENTORY_SUMMARY_DATA_",
	"_GET_FBA_FULFILLMENT_INVENTORY_ADJUSTMENTS_DATA_",
	"_GET_FBA_FULFILLMENT_INVENTORY_HEALTH_DATA_",
	"_GET_FBA_MYI_UNSUPPRESSED_INVENTORY_DATA_",
	"_GET_FBA_MYI_ALL_INVENTORY_DATA_",
	"_GET_FBA_FULFILLMENT_CROSS_BORDER_INVENTORY_MOVEMENT_DATA_",
	"_GET_FBA_FULFILLMENT_INBOUND_NONCOMPLIANCE_DATA_",
	"_GET_FBA_HAZMAT_STATUS_CHANGE_DATA_",
	"_GET_FBA_ESTIMATED_FBA_FEES_TXT_DATA_",
	"_GET_FBA_REIMBURSEMENTS_DATA_",
	"_GET_FBA_FULFILLMENT_CUSTOMER_RETURNS_DATA_",
	"_GET_FBA_FULFILLMENT_CUSTOMER_SHIPMENT_REPLACEMENT_DATA_",
	"_GET_FBA_RECOMMENDED_REMOVAL_DATA_",
	"_GET_FBA_FULFILLMENT_REMOVAL_ORDER_DETAIL_DATA_",
	"_GET_FBA_FULFILLMENT_REMOVAL_SHIPMENT_DETAIL_DATA_",
	"_GET_NEMO_MERCHANT_LISTINGS_DATA_",
	"_GET_PADS_PRODUCT_PERFORMANCE_OVER_TIME_DAILY_DATA_TSV_",
	"_GET_PADS_PRODUCT_PERFORMANCE_OVER_TIME_DAILY_DATA_XML_",
	"_GET_PADS_PRODUCT_PERFORMANCE_OVER_TIME_WEEKLY_DATA_TSV_",
	"_GET_PADS_PRODUCT_PERFORMANCE_OVER_TIME_WEEKLY_DATA_XML_",
	"_GET_PADS_PRODUCT_PERFORMANCE_OVER_TIME_MONTHLY_DATA_TSV_",
	"_GET_PADS_PRODUCT_PERFORMANCE_OVER_TIME_MONTHLY_DATA_XML_",
	"_GET_FLAT_FILE_SALES_TAX_DATA_",
	"_GET_WEBSTORE_PRODUCT_CATALOG_",
	"_GET_XML_BROWSE_TREE_DATA_",
}

// Schedule is how often a scheduled report is requested. ScheduleNever
// deletes an existing schedule.
type Schedule string

const (
	Schedule15Minutes Schedule = "_15_MINUTES_"
	Schedule30Minutes Schedule = "_30_MINUTES_"
	Schedule1Hour     Schedule = "_1_HOUR_"
	Schedule2Hours    Schedule = "_2_HOURS_"
	Schedule4Hours    Schedule = "_4_HOURS_"
	Schedule8Hours    Schedule = "_8_HOURS_"
	Schedule12Hours   Schedule = "_12_HOURS_"
	Schedule72Hours   Schedule = "_72_HOURS_"
	Schedule1Day      Schedule = "_1_DAY_"
	Schedule2Days     Schedule = "_2_DAYS_"
	Schedule7Days     Schedule = "_7_DAYS_"
	Schedule14Days    Schedule = "_14_DAYS_"
	Schedule15Days    Schedule = "_15_DAYS_"
	Schedule30Days    Schedule = "_30_DAYS_"
	ScheduleNever     Schedule = "_NEVER_"
)

var Schedules = []Schedule{
	Schedule15Minutes, Schedule30Minutes, Schedule1Hour, Schedule2Hours, Schedule4Hours,
	Schedule8Hours, Schedule12Hours, Schedule72Hours, Schedule1Day, Schedule2Days,
	Schedule7Days, Schedule14Days, Schedule15Days, Schedule30Days, ScheduleNever,
}

// ProcessingStatus is the state of a report request.
type ProcessingStatus string

const (
	StatusSubmitted  ProcessingStatus = "_SUBMITTED_"
	StatusInProgress ProcessingStatus = "_IN_PROGRESS_"
	StatusCancelled  ProcessingStatus = "_CANCELLED_"
	StatusDone       ProcessingStatus = "_DONE_"
	StatusDoneNoData ProcessingStatus = "_DONE_NO_DATA_"
)

var ProcessingStatuses = []ProcessingStatus{
	StatusSubmitted, StatusInProgress, StatusCancelled, StatusDone, StatusDoneNoData,
}
