package invoice

import "fmt"

// Normalize resolves a numeric total_amount to a fixed two-decimal string.
// A string amount passes through unchanged, so the transform is idempotent.
// No other field is touched.
func Normalize(rec Record) Record {
	if rec.TotalAmount.IsNumber() {
		rec.TotalAmount = StringAmount(fmt.Sprintf("%.2f", rec.TotalAmount.num))
	}
	return rec
}
