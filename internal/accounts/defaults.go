package accounts

import "github.com/cleared-dev/ledgerform/internal/model"

// DefaultChart returns the built-in account list for a form locale.
func DefaultChart(locale string) []model.Account {
	switch locale {
	case "ja":
		return japaneseChart()
	default:
		return englishChart()
	}
}

func englishChart() []model.Account {
	return []model.Account{
		{Name: "sales", Description: "Revenue from sales"},
		{Name: "purchases", Description: "Goods bought for resale"},
		{Name: "utilities", Description: "Water, power and gas"},
		{Name: "travel", Description: "Travel and transportation"},
		{Name: "communication", Description: "Phone, internet and postage"},
		{Name: "entertainment", Description: "Client entertainment"},
		{Name: "repairs", Description: "Repairs and maintenance"},
		{Name: "supplies", Description: "Consumables and office supplies"},
		{Name: "fees", Description: "Bank and payment fees"},
		{Name: "vehicle", Description: "Vehicle running costs"},
		{Name: "lease", Description: "Lease and rental payments"},
	}
}

func japaneseChart() []model.Account {
	return []model.Account{
		{Name: "売上"},
		{Name: "仕入"},
		{Name: "水道光熱費"},
		{Name: "旅費交通費"},
		{Name: "通信費"},
		{Name: "接待交際費"},
		{Name: "修繕費"},
		{Name: "消耗品費"},
		{Name: "支払手数料"},
		{Name: "車両費"},
		{Name: "リース料"},
	}
}
