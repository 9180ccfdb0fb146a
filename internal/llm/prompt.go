package llm

import "encoding/base64"

// System prompts for the two call shapes.
const (
	SystemPromptText  = "You extract invoice data from text."
	SystemPromptImage = "You extract invoice data from images."
)

// ExtractionPrompt is the fixed instruction set shared by both call shapes.
// It is the primary correctness lever of the whole pipeline, so its wording
// is deliberately frozen.
const ExtractionPrompt = `
You are an AI system specialized in parsing invoices and receipts from BOTH
IMAGES and PDF DOCUMENTS.

Your task:
Carefully read ALL visible or extracted text, including:
- Company / Store / Seller name
- Logo text
- Header text at the top of the document
- Footer text
- Invoice metadata blocks
- Total and payment sections

VENDOR EXTRACTION (VERY IMPORTANT):
- The vendor is the STORE / COMPANY / SELLER issuing the invoice.
- It is usually the MOST PROMINENT business name.
- It is often located at the TOP of the image or the FIRST lines of the PDF text.
- If text such as "Seller", "Store", "Ltd", or similar appears,
  that MUST be returned as the vendor.
- Ignore customer names, delivery names, and payment gateways.

Extract and return ONLY valid JSON with the following fields:
- vendor (string or null)
- invoice_number (string or null)
- invoice_date (string or null, format YYYY-MM-DD if possible)
- due_date (string or null, format YYYY-MM-DD if possible)
- total_amount (string or number)
- currency (ISO 4217 code like USD, BDT, EUR if visible; otherwise null)
- valid (true or false)

Rules:
- Use null if a field is missing or not clearly visible.
- Do NOT guess values.
- Do NOT hallucinate.
- If critical fields like vendor or total_amount are missing,
  set valid to false.
- Do NOT include explanations or extra text.
- Output MUST be valid JSON ONLY.


`

// BuildTextMessages builds the text-only message set for the PDF path,
// appending the extracted invoice text to the user message.
func BuildTextMessages(extractedText string) []Message {
	return []Message{
		TextMessage("system", SystemPromptText),
		TextMessage("user", ExtractionPrompt+"\n\nINVOICE TEXT:\n"+extractedText),
	}
}

// BuildImageMessages builds the multimodal message set for the image path.
// The raw bytes are embedded as a base64 data URI built from the upload's
// content type.
func BuildImageMessages(contentType string, data []byte) []Message {
	encoded := base64.StdEncoding.EncodeToString(data)
	dataURL := "data:" + contentType + ";base64," + encoded
	return []Message{
		TextMessage("system", SystemPromptImage),
		{
			Role: "user",
			Parts: []ContentPart{
				TextPart(ExtractionPrompt),
				ImagePart(dataURL),
			},
		},
	}
}
