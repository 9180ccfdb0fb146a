package llm

// BuildInvoiceJSONSchema returns the invoice record schema as a generic map
// (JSON-Schema draft 2020-12 subset). The model output is validated against
// it before any field is trusted.
//
// total_amount is the only required field and may arrive as a string or a
// number; the string branch must be non-empty. All other fields may be null
// or absent. Unknown extra fields from the model are ignored.
func BuildInvoiceJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vendor":         nullableString(),
			"invoice_number": nullableString(),
			"invoice_date":   nullableString(),
			"due_date":       nullableString(),
			"total_amount": map[string]any{
				"oneOf": []any{
					map[string]any{"type": "string", "minLength": 1},
					map[string]any{"type": "number"},
				},
			},
			"currency": nullableString(),
			"valid":    map[string]any{"type": "boolean"},
		},
		"required": []string{"total_amount"},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}
