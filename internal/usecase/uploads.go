package usecase

import (
	"bytes"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxUploadBytes     int64 = 10 << 20
	MaxCustomerUploads       = 5
)

var (
	pdfOnly        = []string{"application/pdf"}
	proofMIMETypes = []string{"application/pdf", "image/jpeg", "image/png"}
)

// FileUpload is an incoming file as read from a multipart request.
type FileUpload struct {
	OriginalName string
	Size         int64
	Content      io.Reader
}

// sniffUpload checks size and detected content type, and returns a reader
// that still yields the full content. Rejections are reported as invalid.
func sniffUpload(up FileUpload, maxBytes int64, allowed []string, invalid error) (io.Reader, error) {
	if up.Content == nil || up.Size <= 0 {
		return nil, ErrNoFileUploaded
	}
	if up.Size > maxBytes {
		return nil, invalid
	}

	head := make([]byte, 3072)
	n, err := io.ReadFull(up.Content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !mimetype.EqualsAny(mt.String(), allowed...) {
		return nil, invalid
	}
	return io.MultiReader(bytes.NewReader(head), up.Content), nil
}
