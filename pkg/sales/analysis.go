package sales

import "sort"

// Analysis aggregates a loaded dataset. All methods are pure reads over the
// same in-memory slice.
type Analysis struct {
	data []Transaction
}

func NewAnalysis(data []Transaction) *Analysis {
	return &Analysis{data: data}
}

// FromFile loads a CSV and wraps it in an Analysis.
func FromFile(path string) (*Analysis, error) {
	data, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewAnalysis(data), nil
}

func (a *Analysis) Transactions() []Transaction {
	return a.data
}

func (a *Analysis) TotalRevenue() float64 {
	return Reduce(a.data, 0.0, func(acc float64, t Transaction) float64 {
		return acc + t.TotalSales
	})
}

func (a *Analysis) RevenueByCategory() map[string]float64 {
	return a.revenueBy(func(t Transaction) string { return t.Category })
}

func (a *Analysis) RevenueByRegion() map[string]float64 {
	return a.revenueBy(func(t Transaction) string { return t.Region })
}

func (a *Analysis) revenueBy(key func(Transaction) string) map[string]float64 {
	grouped := GroupBy(a.data, key)

	out := make(map[string]float64, len(grouped))
	for k, records := range grouped {
		out[k] = Reduce(records, 0.0, func(acc float64, t Transaction) float64 {
			return acc + t.TotalSales
		})
	}
	return out
}

type ProductRevenue struct {
	Product string
	Revenue float64
}

// TopProductsByRevenue returns the n highest-grossing products, revenue
// descending, product name ascending on equal revenue.
func (a *Analysis) TopProductsByRevenue(n int) []ProductRevenue {
	byProduct := a.revenueBy(func(t Transaction) string { return t.Product })

	ranked := make([]ProductRevenue, 0, len(byProduct))
	for product, revenue := range byProduct {
		ranked = append(ranked, ProductRevenue{Product: product, Revenue: revenue})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Product < ranked[j].Product
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func (a *Analysis) AverageTransactionValue() float64 {
	if len(a.data) == 0 {
		return 0
	}
	return a.TotalRevenue() / float64(len(a.data))
}

// MonthlyRevenueTrend sums revenue per YYYY-MM month of the date field.
func (a *Analysis) MonthlyRevenueTrend() map[string]float64 {
	return a.revenueBy(Transaction.Month)
}

type QuantityStats struct {
	Min     float64
	Max     float64
	Average float64
}

func (a *Analysis) QuantityStatistics() QuantityStats {
	quantities := Map(a.data, func(t Transaction) float64 { return t.Quantity })
	if len(quantities) == 0 {
		return QuantityStats{}
	}

	stats := QuantityStats{Min: quantities[0], Max: quantities[0]}
	sum := 0.0
	for _, q := range quantities {
		if q < stats.Min {
			stats.Min = q
		}
		if q > stats.Max {
			stats.Max = q
		}
		sum += q
	}
	stats.Average = sum / float64(len(quantities))
	return stats
}

// HighValueTransactions returns transactions with total sales at or above
// the threshold.
func (a *Analysis) HighValueTransactions(threshold float64) []Transaction {
	return Filter(a.data, func(t Transaction) bool {
		return t.TotalSales >= threshold
	})
}

// ProductsByRegion lists the unique products sold per region, sorted by
// name.
func (a *Analysis) ProductsByRegion() map[string][]string {
	grouped := GroupBy(a.data, func(t Transaction) string { return t.Region })

	out := make(map[string][]string, len(grouped))
	for region, records := range grouped {
		seen := make(map[string]bool)
		products := make([]string, 0)
		for _, name := range Map(records, func(t Transaction) string { return t.Product }) {
			if !seen[name] {
				seen[name] = true
				products = append(products, name)
			}
		}
		sort.Strings(products)
		out[region] = products
	}
	return out
}
