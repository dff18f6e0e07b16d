package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

type orderRecord struct {
	ID               uint64          `gorm:"primaryKey"`
	Protocolo        *string         `gorm:"uniqueIndex"`
	UserID           *uint64         `gorm:"index"`
	DadosCliente     string          `gorm:"type:jsonb;not null"`
	ValorTotal       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status           string          `gorm:"not null"`
	CodigoRastreio   *string
	ObservacoesAdmin *string
	CartorioID       *uint64
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items   []lineItemRecord `gorm:"foreignKey:PedidoID"`
	Files   []fileRecord     `gorm:"foreignKey:PedidoID"`
	Payment *paymentRecord   `gorm:"foreignKey:PedidoID"`
	User    *userRecord      `gorm:"foreignKey:UserID"`
}

func (orderRecord) TableName() string { return "pedidos" }

type lineItemRecord struct {
	ID              uint64          `gorm:"primaryKey"`
	PedidoID        uint64          `gorm:"index;not null"`
	NomeProduto     string          `gorm:"not null"`
	SlugProduto     string
	Preco           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DadosFormulario *string         `gorm:"type:jsonb"`
	CreatedAt       time.Time
}

func (lineItemRecord) TableName() string { return "itens_pedido" }

type fileRecord struct {
	ID           uint64 `gorm:"primaryKey"`
	PedidoID     uint64 `gorm:"index;not null"`
	NomeOriginal string `gorm:"not null"`
	Path         string `gorm:"not null"`
	Tipo         string `gorm:"not null"`
	CreatedAt    time.Time
}

func (fileRecord) TableName() string { return "arquivos_pedido" }

type paymentRecord struct {
	ID           uint64          `gorm:"primaryKey"`
	PedidoID     uint64          `gorm:"uniqueIndex;not null"`
	GatewayID    string
	PreferenceID string
	CheckoutURL  string
	Status       string          `gorm:"not null"`
	Metodo       string          `gorm:"not null"`
	Valor        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (paymentRecord) TableName() string { return "pagamentos" }

type userRecord struct {
	ID        uint64 `gorm:"primaryKey"`
	Nome      string `gorm:"not null"`
	Sobrenome string
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

// translateError maps driver errors onto repository sentinels. It relies on
// gorm.Config.TranslateError being enabled.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(interfaces.ErrDuplicateKey, err)
	}
	return err
}

func toOrderRecord(o entities.Order) (orderRecord, error) {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return orderRecord{}, err
	}
	rec := orderRecord{
		ID:               o.ID,
		UserID:           o.UserID,
		DadosCliente:     string(customer),
		ValorTotal:       o.Total,
		Status:           string(o.Status),
		CodigoRastreio:   o.CodigoRastreio,
		ObservacoesAdmin: o.ObservacoesAdmin,
		CartorioID:       o.CartorioID,
	}
	if o.Protocolo != "" {
		rec.Protocolo = &o.Protocolo
	}
	for _, it := range o.Items {
		item, err := toLineItemRecord(it)
		if err != nil {
			return orderRecord{}, err
		}
		rec.Items = append(rec.Items, item)
	}
	for _, f := range o.Files {
		rec.Files = append(rec.Files, toFileRecord(f))
	}
	return rec, nil
}

func fromOrderRecord(rec orderRecord) (entities.Order, error) {
	o := entities.Order{
		ID:               rec.ID,
		UserID:           rec.UserID,
		Total:            rec.ValorTotal,
		Status:           entities.OrderStatus(rec.Status),
		CodigoRastreio:   rec.CodigoRastreio,
		ObservacoesAdmin: rec.ObservacoesAdmin,
		CartorioID:       rec.CartorioID,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	if rec.Protocolo != nil {
		o.Protocolo = *rec.Protocolo
	}
	if rec.DadosCliente != "" {
		if err := json.Unmarshal([]byte(rec.DadosCliente), &o.Customer); err != nil {
			return entities.Order{}, err
		}
	}
	for _, it := range rec.Items {
		item, err := fromLineItemRecord(it)
		if err != nil {
			return entities.Order{}, err
		}
		o.Items = append(o.Items, item)
	}
	for _, f := range rec.Files {
		o.Files = append(o.Files, fromFileRecord(f))
	}
	if rec.Payment != nil {
		p := fromPaymentRecord(*rec.Payment)
		o.Payment = &p
	}
	if rec.User != nil {
		u := fromUserRecord(*rec.User)
		u.PasswordHash = ""
		o.User = &u
	}
	return o, nil
}

func toLineItemRecord(it entities.LineItem) (lineItemRecord, error) {
	rec := lineItemRecord{
		ID:          it.ID,
		PedidoID:    it.OrderID,
		NomeProduto: it.Name,
		SlugProduto: it.Slug,
		Preco:       it.Price,
	}
	if len(it.FormData) > 0 {
		b, err := json.Marshal(it.FormData)
		if err != nil {
			return lineItemRecord{}, err
		}
		s := string(b)
		rec.DadosFormulario = &s
	}
	return rec, nil
}

func fromLineItemRecord(rec lineItemRecord) (entities.LineItem, error) {
	it := entities.LineItem{
		ID:        rec.ID,
		OrderID:   rec.PedidoID,
		Name:      rec.NomeProduto,
		Slug:      rec.SlugProduto,
		Price:     rec.Preco,
		CreatedAt: rec.CreatedAt,
	}
	if rec.DadosFormulario != nil && *rec.DadosFormulario != "" {
		if err := json.Unmarshal([]byte(*rec.DadosFormulario), &it.FormData); err != nil {
			return entities.LineItem{}, err
		}
	}
	return it, nil
}

func toFileRecord(f entities.AttachedFile) fileRecord {
	return fileRecord{
		ID:           f.ID,
		PedidoID:     f.OrderID,
		NomeOriginal: f.OriginalName,
		Path:         f.Path,
		Tipo:         string(f.Kind),
	}
}

func fromFileRecord(rec fileRecord) entities.AttachedFile {
	return entities.AttachedFile{
		ID:           rec.ID,
		OrderID:      rec.PedidoID,
		OriginalName: rec.NomeOriginal,
		Path:         rec.Path,
		Kind:         entities.FileKind(rec.Tipo),
		CreatedAt:    rec.CreatedAt,
	}
}

func toPaymentRecord(p entities.Payment) paymentRecord {
	return paymentRecord{
		ID:           p.ID,
		PedidoID:     p.OrderID,
		GatewayID:    p.GatewayID,
		PreferenceID: p.PreferenceID,
		CheckoutURL:  p.CheckoutURL,
		Status:       string(p.Status),
		Metodo:       string(p.Method),
		Valor:        p.Amount,
	}
}

func fromPaymentRecord(rec paymentRecord) entities.Payment {
	return entities.Payment{
		ID:           rec.ID,
		OrderID:      rec.PedidoID,
		GatewayID:    rec.GatewayID,
		PreferenceID: rec.PreferenceID,
		CheckoutURL:  rec.CheckoutURL,
		Status:       entities.PaymentStatus(rec.Status),
		Method:       entities.PaymentMethod(rec.Metodo),
		Amount:       rec.Valor,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func toUserRecord(u entities.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Nome:      u.Nome,
		Sobrenome: u.Sobrenome,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Role:      string(u.Role),
	}
}

func fromUserRecord(rec userRecord) entities.User {
	return entities.User{
		ID:           rec.ID,
		Nome:         rec.Nome,
		Sobrenome:    rec.Sobrenome,
		Email:        rec.Email,
		PasswordHash: rec.Password,
		Role:         entities.UserRole(rec.Role),
		CreatedAt:    rec.CreatedAt,
	}
}
