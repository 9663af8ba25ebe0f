package billing

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeo-service/internal/app/models"
	"homeo-service/internal/app/services/shared/httpclient"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBillingServices(t *testing.T) {
	var paymentBody string
	r := chi.NewRouter()
	r.Post("/invoices/{id}/payments", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		paymentBody = string(body)
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"pay-1","invoiceId":"`+chi.URLParam(r, "id")+`","amount":150,"method":"cash"}`)
	})
	r.Get("/invoices/{id}/payments", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		io.WriteString(w, `[{"id":"pay-1","amount":150},{"id":"pay-2","amount":50}]`)
	})
	r.Post("/payment-terms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		io.WriteString(w, `{"id":"pt-1","name":"Net 30","dueInDays":30}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	client, err := httpclient.NewAPIClient(httpclient.DefaultConfig(), zap.NewNop(), httpclient.WithBaseURL(server.URL))
	require.NoError(t, err)
	invoices := NewInvoiceService(client, zap.NewNop())
	terms := NewPaymentTermsService(client, zap.NewNop())
	ctx := context.Background()

	payment, err := invoices.RecordPayment(ctx, "inv-1", &requests.RecordPayment{Amount: 150, Method: "cash"})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", payment.InvoiceID)
	assert.JSONEq(t, `{"amount":150,"method":"cash"}`, paymentBody)

	_, err = invoices.RecordPayment(ctx, "inv-1", &requests.RecordPayment{Amount: -5, Method: "cash"})
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))

	payments, err := invoices.ListPayments(ctx, "inv-1")
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	created, err := terms.Create(ctx, &models.PaymentTerms{Name: "Net 30", DueInDays: 30})
	require.NoError(t, err)
	assert.Equal(t, "pt-1", created.ID)
}
