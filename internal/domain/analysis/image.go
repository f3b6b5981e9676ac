package analysis

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Upload is the raw multipart file as received: bytes plus the content type
// the client declared for them. It lives only for the duration of one request.
type Upload struct {
	ContentType string
	Data        []byte
}

// Validate rejects non-image and empty uploads. Bytes are never touched.
func (u Upload) Validate() error {
	if u.ContentType == "" || !strings.HasPrefix(u.ContentType, "image/") {
		return ErrNotImage
	}
	if len(u.Data) == 0 {
		return ErrEmptyUpload
	}
	return nil
}

// EncodedImage value object: standard base64 text plus the mime type it was
// derived from. Used once to build a data URI for the completion payload.
type EncodedImage struct {
	MimeType string
	Base64   string
}

// Encode validates the upload and base64-encodes its bytes (standard
// alphabet, no line wrapping).
func Encode(u Upload) (EncodedImage, error) {
	if err := u.Validate(); err != nil {
		return EncodedImage{}, err
	}
	return EncodedImage{
		MimeType: u.ContentType,
		Base64:   base64.StdEncoding.EncodeToString(u.Data),
	}, nil
}

// DataURI renders the image inline as data:<mime>;base64,<payload>.
func (e EncodedImage) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", e.MimeType, e.Base64)
}
