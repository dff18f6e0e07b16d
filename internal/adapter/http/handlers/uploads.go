package handlers

import (
	"errors"
	"io"
	"mime/multipart"

	"ecertidoes/internal/usecase"
)

type openedUploads struct {
	uploads []usecase.FileUpload
	closers []io.Closer
}

func (o *openedUploads) Close() {
	for _, c := range o.closers {
		_ = c.Close()
	}
}

// openUploads opens multipart files. The caller must Close the result.
func openUploads(headers []*multipart.FileHeader) (*openedUploads, error) {
	out := &openedUploads{}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			out.Close()
			return nil, errors.Join(usecase.ErrNoFileUploaded, err)
		}
		out.closers = append(out.closers, f)
		out.uploads = append(out.uploads, usecase.FileUpload{
			OriginalName: fh.Filename,
			Size:         fh.Size,
			Content:      f,
		})
	}
	return out, nil
}
