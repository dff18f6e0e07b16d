package usecase

import (
	"bytes"
	"time"
)

var fixedTime = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

func pdfBytes() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
}

func pdfUpload(name string) FileUpload {
	b := pdfBytes()
	return FileUpload{OriginalName: name, Size: int64(len(b)), Content: bytes.NewReader(b)}
}
