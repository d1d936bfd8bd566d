package model

// Default dataset for a fresh install: the four Semarang outlets and
// the fried-chicken catalog, with hub-only starting stock.

func DefaultOutlets() []Outlet {
	return []Outlet{
		{Code: "outlet_1", Name: "Cabang UNNES Sekaran"},
		{Code: "outlet_2", Name: "Cabang Banaran"},
		{Code: "outlet_3", Name: "Cabang Patemon"},
		{Code: "outlet_4", Name: "Cabang Sampangan"},
	}
}

func DefaultProducts() []Product {
	return []Product{
		{SKU: "dada", Name: "Ayam Dada", Price: 10000, LowStockThreshold: DefaultLowStockThreshold},
		{SKU: "paha_atas", Name: "Paha Atas", Price: 10000, LowStockThreshold: DefaultLowStockThreshold},
		{SKU: "sayap", Name: "Sayap", Price: 8000, LowStockThreshold: DefaultLowStockThreshold},
		{SKU: "paha_bawah", Name: "Paha Bawah", Price: 8000, LowStockThreshold: DefaultLowStockThreshold},
		{SKU: "nasi_putih", Name: "Nasi Putih", Price: 4000, LowStockThreshold: DefaultLowStockThreshold},
		{SKU: "es_teh", Name: "Es Teh", Price: 3000, LowStockThreshold: DefaultLowStockThreshold},
	}
}

// DefaultHubStock is the hub's opening inventory. Outlets deliberately
// start empty: a successful transfer is the only way stock reaches
// them.
func DefaultHubStock() map[string]int {
	return map[string]int{
		"dada":       400,
		"paha_atas":  400,
		"sayap":      300,
		"paha_bawah": 300,
		"nasi_putih": 600,
		"es_teh":     600,
	}
}
