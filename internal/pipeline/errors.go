package pipeline

import "errors"

// Client-tier failures. The HTTP layer surfaces these as 400 with the
// message unchanged; everything else collapses to a 500.
var (
	ErrUnsupportedContentType = errors.New("Unsupported file type")
	ErrNoExtractableText      = errors.New("No readable text found in PDF (possibly scanned)")
)

// IsClientError reports whether err belongs to the client tier.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnsupportedContentType) || errors.Is(err, ErrNoExtractableText)
}
