package entities

import "time"

type FileKind string

const (
	FileKindCertidao    FileKind = "certidao"
	FileKindComprovante FileKind = "comprovante"
	FileKindOutro       FileKind = "outro"
)

func (k FileKind) Valid() bool {
	switch k {
	case FileKindCertidao, FileKindComprovante, FileKindOutro:
		return true
	}
	return false
}

// AttachedFile references a stored blob. Path is relative to the storage root.
type AttachedFile struct {
	ID           uint64    `json:"id"`
	OrderID      uint64    `json:"pedidoId"`
	OriginalName string    `json:"nomeOriginal"`
	Path         string    `json:"-"`
	Kind         FileKind  `json:"tipo"`
	CreatedAt    time.Time `json:"createdAt"`
}
