package sales

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Transaction is one row of the sales CSV. Numeric fields that fail to
// parse are loaded as 0 rather than failing the whole file.
type Transaction struct {
	TransactionID string
	Date          string
	Product       string
	Category      string
	Region        string
	Quantity      float64
	UnitPrice     float64
	TotalSales    float64
}

// Month returns the YYYY-MM prefix of the transaction date.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// Load decodes transactions from CSV. The first record is the header and
// drives the column mapping; unknown columns are ignored, missing ones load
// as zero values. An empty input yields an empty slice.
func Load(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return []Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sales: reading header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	data := make([]Transaction, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sales: reading record %d: %w", len(data)+1, err)
		}

		data = append(data, Transaction{
			TransactionID: field(record, "transaction_id"),
			Date:          field(record, "date"),
			Product:       field(record, "product"),
			Category:      field(record, "category"),
			Region:        field(record, "region"),
			Quantity:      toNumeric(field(record, "quantity")),
			UnitPrice:     toNumeric(field(record, "unit_price")),
			TotalSales:    toNumeric(field(record, "total_sales")),
		})
	}

	return data, nil
}

// LoadFile is Load over a file path.
func LoadFile(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sales: opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

func toNumeric(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
