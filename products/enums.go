package products

// IDType names the identifier kind used by GetMatchingProductForId.
type IDType string

const (
	IDTypeASIN      IDType = "ASIN"
	IDTypeGCID      IDType = "GCID"
	IDTypeSellerSKU IDType = "SellerSKU"
	IDTypeUPC       IDType = "UPC"
	IDTypeEAN       IDType = "EAN"
	IDTypeISBN      IDType = "ISBN"
	IDTypeJAN       IDType = "JAN"
)

var IDTypes = []IDType{
	IDTypeASIN, IDTypeGCID, IDTypeSellerSKU, IDTypeUPC, IDTypeEAN, IDTypeISBN, IDTypeJAN,
}

// ItemCondition filters offer listings.
type ItemCondition string

const (
	ItemConditionNew         ItemCondition = "New"
	ItemConditionUsed        ItemCondition = "Used"
	ItemConditionCollectible ItemCondition = "Collectible"
	ItemConditionRefurbished ItemCondition = "Refurbished"
	ItemConditionClub        ItemCondition = "Club"
)

var ItemConditions = []ItemCondition{
	ItemConditionNew, ItemConditionUsed, ItemConditionCollectible,
	ItemConditionRefurbished, ItemConditionClub,
}
