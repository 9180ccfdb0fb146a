package invoice

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is the invoice produced for one request. It is created from the
// model output, validated once, normalized once, serialized and discarded.
type Record struct {
	Vendor        *string `json:"vendor"`
	InvoiceNumber *string `json:"invoice_number"`
	InvoiceDate   *string `json:"invoice_date"`
	DueDate       *string `json:"due_date"`
	TotalAmount   Amount  `json:"total_amount"`
	Currency      *string `json:"currency"`
	Valid         bool    `json:"valid"`
}

// Amount accepts a JSON string or number and remembers which it was.
// The normalizer resolves the numeric branch to a canonical string.
type Amount struct {
	str   string
	num   float64
	isNum bool
}

func StringAmount(s string) Amount  { return Amount{str: s} }
func NumberAmount(f float64) Amount { return Amount{num: f, isNum: true} }

func (a Amount) IsNumber() bool { return a.isNum }

// String returns the string branch, or the shortest representation of the
// numeric branch.
func (a Amount) String() string {
	if a.isNum {
		return strconv.FormatFloat(a.num, 'f', -1, 64)
	}
	return a.str
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*a = Amount{str: t}
	case float64:
		*a = Amount{num: t, isNum: true}
	default:
		return fmt.Errorf("total_amount must be a string or a number, got %T", v)
	}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.isNum {
		return json.Marshal(a.num)
	}
	return json.Marshal(a.str)
}

// Decode parses the model's raw JSON output into a Record. It applies the
// schema defaults: currency falls back to "USD" and valid to true when the
// model omits them. An explicit null still clears the currency. Callers
// must schema-validate the payload first; Decode itself only rejects JSON
// that cannot be shaped into the record at all.
func Decode(data []byte) (Record, error) {
	usd := "USD"
	rec := Record{Currency: &usd, Valid: true}
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode invoice record: %w", err)
	}
	return rec, nil
}
