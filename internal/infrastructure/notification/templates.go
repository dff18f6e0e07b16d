package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"ecertidoes/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type message struct {
	Subject string
	HTML    string
}

type emailData struct {
	FirstName      string
	Protocolo      string
	Status         string
	Observacoes    string
	CodigoRastreio string
	DownloadURL    string
	FileName       string
	Valor          string
}

func baseData(o entities.Order) emailData {
	d := emailData{
		FirstName: o.Customer.FirstName(),
		Protocolo: o.Protocolo,
		Status:    string(o.Status),
		Valor:     strings.Replace(o.Total.StringFixed(2), ".", ",", 1),
	}
	if strings.TrimSpace(o.Customer.Nome) == "" && o.User != nil && o.User.Nome != "" {
		d.FirstName = o.User.Nome
	}
	if o.ObservacoesAdmin != nil {
		d.Observacoes = *o.ObservacoesAdmin
	}
	if o.CodigoRastreio != nil {
		d.CodigoRastreio = *o.CodigoRastreio
	}
	return d
}

func render(name, subject string, data emailData) (message, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return message{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	return message{Subject: subject, HTML: buf.String()}, nil
}

func orderConfirmation(o entities.Order) (message, error) {
	return render("order_confirmation.html", "✅ Pedido Confirmado: Protocolo #"+o.Protocolo, baseData(o))
}

func statusUpdate(o entities.Order) (message, error) {
	return render("status_update.html", "🔔 Atualização do Pedido: Protocolo #"+o.Protocolo, baseData(o))
}

func documentAvailable(o entities.Order, f entities.AttachedFile, backendURL string) (message, error) {
	d := baseData(o)
	d.FileName = f.OriginalName
	d.DownloadURL = fmt.Sprintf("%s/api/pedidos/%d/arquivos/%d/download", strings.TrimRight(backendURL, "/"), o.ID, f.ID)
	return render("document_available.html", "📄 Documento Disponível: Protocolo #"+o.Protocolo, d)
}

func refundConfirmation(o entities.Order) (message, error) {
	return render("refund_confirmation.html", "↩️ Estorno Realizado: Protocolo #"+o.Protocolo, baseData(o))
}
