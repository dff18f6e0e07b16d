package request

import (
	"bytes"
	"encoding/json"

	"ecertidoes/internal/domain/entities"
)

// NullableString tracks whether a JSON field was present, so an explicit
// null can clear a column while an absent field leaves it untouched.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

type AdminUpdateOrderRequest struct {
	Status           *string        `json:"status"`
	CodigoRastreio   NullableString `json:"codigoRastreio"`
	ObservacoesAdmin NullableString `json:"observacoesAdmin"`
}

// ToUpdate does not validate the status; the use case rejects unknown values.
func (r AdminUpdateOrderRequest) ToUpdate() entities.OrderAdminUpdate {
	var upd entities.OrderAdminUpdate
	if r.Status != nil {
		s := entities.OrderStatus(*r.Status)
		upd.Status = &s
	}
	upd.CodigoRastreio = entities.OptionalText{Set: r.CodigoRastreio.Set, Value: r.CodigoRastreio.Value}
	upd.ObservacoesAdmin = entities.OptionalText{Set: r.ObservacoesAdmin.Set, Value: r.ObservacoesAdmin.Value}
	return upd
}

// FormFieldCertificate is the multipart field of the admin certificate upload.
const FormFieldCertificate = "arquivoCertidao"
