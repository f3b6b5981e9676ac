package analysis

import "errors"

var (
	// ErrNotImage indicates the declared content type is missing or not image/*.
	ErrNotImage = errors.New("uploaded file is not an image")

	// ErrEmptyUpload indicates the multipart file carried no bytes.
	ErrEmptyUpload = errors.New("uploaded file is empty")

	// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
	ErrQuotaExceeded = errors.New("ai quota exceeded")
)
