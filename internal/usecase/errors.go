package usecase

import (
	"errors"
)

// ErrorKind classifies use case failures for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindGateway
	KindUnauthorized
	KindForbidden
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindGateway:
		return "gateway"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindInternal:
		return "internal"
	}
	return "internal"
}

// Error is a classified use case failure. Message is safe to show to users.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// wrap keeps the sentinel identity reachable through errors.Is while carrying the cause.
func wrap(sentinel *Error, cause error) error {
	return &wrappedError{sentinel: sentinel, cause: cause}
}

type wrappedError struct {
	sentinel *Error
	cause    error
}

func (w *wrappedError) Error() string {
	return w.sentinel.Message + ": " + w.cause.Error()
}

func (w *wrappedError) Unwrap() []error {
	return []error{w.sentinel, w.cause}
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) ErrorKind {
	var ucErr *Error
	if errors.As(err, &ucErr) {
		return ucErr.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message of the first classified error in err's chain.
func MessageOf(err error) string {
	var ucErr *Error
	if errors.As(err, &ucErr) {
		return ucErr.Message
	}
	return ""
}

var errGatewayNotConfigured = errors.New("payment gateway not configured")

var (
	ErrInvalidOrderID        = newError(KindValidation, "ID do pedido é obrigatório.")
	ErrEmptyOrderItems       = newError(KindValidation, "O pedido deve conter pelo menos um item.")
	ErrMissingCustomerData   = newError(KindValidation, "Nome, email e CPF do cliente são obrigatórios.")
	ErrInvalidOrderItem      = newError(KindValidation, "Cada item deve ter nome e preço válidos.")
	ErrOrderNotFound         = newError(KindNotFound, "Pedido não encontrado ou não pertence ao usuário.")
	ErrAdminOrderNotFound    = newError(KindNotFound, "Pedido não encontrado.")
	ErrOrderAlreadyProcessed = newError(KindConflict, "Este pedido já foi processado ou pago.")
	ErrCheckoutGateway       = newError(KindGateway, "Falha ao criar o checkout no gateway de pagamento.")
	ErrFileNotFound          = newError(KindNotFound, "Arquivo não encontrado.")
	ErrFileMissingInStorage  = newError(KindInternal, "Arquivo não encontrado no servidor.")
	ErrInvalidFile           = newError(KindValidation, "Apenas arquivos PDF de até 10MB são permitidos.")
	ErrInvalidAttachment     = newError(KindValidation, "Apenas arquivos PDF, JPEG ou PNG de até 10MB são permitidos.")
	ErrTooManyAttachments    = newError(KindValidation, "São permitidos no máximo 5 anexos por pedido.")
	ErrNoFileUploaded        = newError(KindValidation, "Nenhum arquivo foi enviado.")
	ErrInvalidStatus         = newError(KindValidation, "Status inválido.")
	ErrPaymentNotRefundable  = newError(KindValidation, "Pagamento não encontrado ou não processado pelo gateway.")
	ErrPaymentNotApproved    = newError(KindValidation, "Apenas pagamentos aprovados podem ser estornados.")
	ErrRefundGateway         = newError(KindGateway, "Falha ao processar o estorno no gateway de pagamento. Verifique o painel do Mercado Pago.")

	ErrInvalidRegistration = newError(KindValidation, "Nome, email e senha são obrigatórios.")
	ErrEmailAlreadyUsed    = newError(KindConflict, "Este email já está em uso.")
	ErrInvalidCredentials  = newError(KindUnauthorized, "Email ou senha inválidos.")

	ErrInvalidUF          = newError(KindValidation, "UF inválida.")
	ErrMissingLookupInput = newError(KindValidation, "Estado e cidade são obrigatórios.")
	ErrLookupGateway      = newError(KindGateway, "Falha ao consultar o serviço externo.")
	ErrMissingShipping    = newError(KindValidation, "CEP de destino e valor total são obrigatórios.")
)
