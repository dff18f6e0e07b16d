package entities

// OptionalText distinguishes an absent field from an explicit null.
// Set == false leaves the column untouched; Set with a nil Value clears it.
type OptionalText struct {
	Set   bool
	Value *string
}

// OrderAdminUpdate is a partial administrative update of an order.
type OrderAdminUpdate struct {
	Status           *OrderStatus
	CodigoRastreio   OptionalText
	ObservacoesAdmin OptionalText
}

// IsEmpty reports whether no field was provided.
func (u OrderAdminUpdate) IsEmpty() bool {
	return u.Status == nil && !u.CodigoRastreio.Set && !u.ObservacoesAdmin.Set
}

// Apply copies the provided fields onto the order.
func (u OrderAdminUpdate) Apply(o *Order) {
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.CodigoRastreio.Set {
		o.CodigoRastreio = u.CodigoRastreio.Value
	}
	if u.ObservacoesAdmin.Set {
		o.ObservacoesAdmin = u.ObservacoesAdmin.Value
	}
}
