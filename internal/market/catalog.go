package market

// AssetType distinguishes individual stocks from mutual funds.
type AssetType string

const (
	AssetTypeStock      AssetType = "Stock"
	AssetTypeMutualFund AssetType = "Mutual Fund"
)

// Asset describes a tradeable symbol in the simulator.
type Asset struct {
	Symbol   string    `json:"symbol"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Type     AssetType `json:"type"`
}

// DefaultCatalog is the set of assets offered in the trading screen.
func DefaultCatalog() []Asset {
	return []Asset{
		{Symbol: "TECH", Name: "Tech Corp", Category: "Technology", Type: AssetTypeStock},
		{Symbol: "FIN", Name: "Finance Ltd", Category: "Finance", Type: AssetTypeStock},
		{Symbol: "HEALTH", Name: "Health Inc", Category: "Healthcare", Type: AssetTypeStock},
		{Symbol: "ENERGY", Name: "Energy Co", Category: "Energy", Type: AssetTypeStock},
		{Symbol: "CONS", Name: "Consumer Goods", Category: "Consumer", Type: AssetTypeStock},
		{Symbol: "BALANCED", Name: "Balanced Fund", Category: "Mutual Fund", Type: AssetTypeMutualFund},
		{Symbol: "GROWTH", Name: "Growth Fund", Category: "Mutual Fund", Type: AssetTypeMutualFund},
		{Symbol: "DEBT", Name: "Debt Fund", Category: "Mutual Fund", Type: AssetTypeMutualFund},
	}
}
