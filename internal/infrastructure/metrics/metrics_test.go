package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPaymentMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPaymentMetrics(reg)

	m.CheckoutOutcome("created")
	m.CheckoutOutcome("created")
	m.WebhookOutcome("reconciled")
	m.RefundOutcome("")
	m.GatewayCall("get_payment", 10*time.Millisecond, errors.New("boom"))
	m.WebhookDropped()

	if got := testutil.ToFloat64(m.checkouts.WithLabelValues("created")); got != 2 {
		t.Fatalf("expected 2 checkouts, got %v", got)
	}
	if got := testutil.ToFloat64(m.refunds.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty outcome to be normalized, got %v", got)
	}
	if got := testutil.ToFloat64(m.dropped); got != 1 {
		t.Fatalf("expected 1 dropped, got %v", got)
	}
}

func TestPaymentMetrics_NilSafe(t *testing.T) {
	var m *PaymentMetrics
	m.CheckoutOutcome("created")
	NewPaymentMetrics(nil).WebhookOutcome("ignored")
}

func TestHTTPMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := NewRegistry()
	hm := NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(hm.Middleware())
	r.GET("/api/pedidos/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(Handler(reg)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/42", nil))

	if got := testutil.ToFloat64(hm.requests.WithLabelValues("/api/pedidos/:id", "GET", "204")); got != 1 {
		t.Fatalf("expected 1 request, got %v", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ecertidoes_http_requests_total") {
		t.Fatalf("unexpected metrics response: %d", w.Code)
	}
}
