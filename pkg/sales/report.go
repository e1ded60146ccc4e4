package sales

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// FormatCurrency renders an amount as "$1,234.50".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return sign + "$" + b.String() + "." + fracPart
}

// ReportOptions tunes the report output. Zero values fall back to the
// defaults of the exercise: top 5 products, $5,000 high-value threshold,
// at most 6 months of trend.
type ReportOptions struct {
	TopProducts        int
	HighValueThreshold float64
	TrendMonths        int
}

func (o ReportOptions) withDefaults() ReportOptions {
	if o.TopProducts == 0 {
		o.TopProducts = 5
	}
	if o.HighValueThreshold == 0 {
		o.HighValueThreshold = 5000
	}
	if o.TrendMonths == 0 {
		o.TrendMonths = 6
	}
	return o
}

// WriteReport writes the full nine-section analysis summary.
func WriteReport(w io.Writer, a *Analysis, opts ReportOptions) error {
	opts = opts.withDefaults()

	var b strings.Builder
	b.WriteString("=== Sales Data Analysis ===\n\n")

	fmt.Fprintf(&b, "1. Total Revenue: %s\n\n", FormatCurrency(a.TotalRevenue()))

	b.WriteString("2. Revenue by Category:\n")
	writeRevenueLines(&b, a.RevenueByCategory())
	b.WriteByte('\n')

	b.WriteString("3. Revenue by Region:\n")
	writeRevenueLines(&b, a.RevenueByRegion())
	b.WriteByte('\n')

	fmt.Fprintf(&b, "4. Top %d Products by Revenue:\n", opts.TopProducts)
	for i, p := range a.TopProductsByRevenue(opts.TopProducts) {
		fmt.Fprintf(&b, "   %d. %s: %s\n", i+1, p.Product, FormatCurrency(p.Revenue))
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "5. Average Transaction Value: %s\n\n", FormatCurrency(a.AverageTransactionValue()))

	b.WriteString("6. Monthly Revenue Trend:\n")
	monthly := a.MonthlyRevenueTrend()
	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	shown := months
	if len(shown) > opts.TrendMonths {
		shown = shown[:opts.TrendMonths]
	}
	for _, m := range shown {
		fmt.Fprintf(&b, "   %s: %s\n", m, FormatCurrency(monthly[m]))
	}
	if rest := len(months) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "   ... (%d more months)\n", rest)
	}
	b.WriteByte('\n')

	stats := a.QuantityStatistics()
	b.WriteString("7. Quantity Statistics:\n")
	fmt.Fprintf(&b, "   Minimum: %.0f\n", stats.Min)
	fmt.Fprintf(&b, "   Maximum: %.0f\n", stats.Max)
	fmt.Fprintf(&b, "   Average: %.2f\n\n", stats.Average)

	highValue := a.HighValueTransactions(opts.HighValueThreshold)
	fmt.Fprintf(&b, "8. High Value Transactions (>= %s): %d transactions\n\n",
		FormatCurrency(opts.HighValueThreshold), len(highValue))

	b.WriteString("9. Products by Region:\n")
	byRegion := a.ProductsByRegion()
	regions := make([]string, 0, len(byRegion))
	for r := range byRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	for _, r := range regions {
		fmt.Fprintf(&b, "   %s: %d unique products\n", r, len(byRegion[r]))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// descending by revenue, name ascending on ties
func writeRevenueLines(b *strings.Builder, revenue map[string]float64) {
	keys := make([]string, 0, len(revenue))
	for k := range revenue {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if revenue[keys[i]] != revenue[keys[j]] {
			return revenue[keys[i]] > revenue[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		fmt.Fprintf(b, "   %s: %s\n", k, FormatCurrency(revenue[k]))
	}
}
