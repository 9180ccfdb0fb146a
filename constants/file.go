package constants

import "strings"

// Formats for the dispatch step.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedContentTypes holds the upload content types the analyzer accepts.
var AllowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
}

// MapContentTypeToFormat maps an upload content type to a format.
// Returns "" for anything outside the allowed set.
func MapContentTypeToFormat(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "application/pdf":
		return PDF
	case "image/png", "image/jpeg":
		return IMAGE
	default:
		return ""
	}
}

// MapExtToContentType resolves a filename extension to an upload content
// type for local-file runs. Returns "" for unsupported extensions.
func MapExtToContentType(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "application/pdf"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	default:
		return ""
	}
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
