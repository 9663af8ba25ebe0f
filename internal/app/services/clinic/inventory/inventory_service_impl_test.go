package inventory

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeo-service/internal/app/services/shared/httpclient"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInventoryService(t *testing.T) {
	var adjustBody, lowStockQuery string
	r := chi.NewRouter()
	r.Get("/inventory/low-stock", func(w http.ResponseWriter, r *http.Request) {
		lowStockQuery = r.URL.RawQuery
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		io.WriteString(w, `[{"id":"i-1","name":"Belladonna 200C","quantity":2,"reorderLevel":5}]`)
	})
	r.Post("/inventory/{id}/adjust-stock", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		adjustBody = string(body)
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		io.WriteString(w, `{"id":"i-1","name":"Belladonna 200C","quantity":12}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	client, err := httpclient.NewAPIClient(httpclient.DefaultConfig(), zap.NewNop(), httpclient.WithBaseURL(server.URL))
	require.NoError(t, err)
	service := NewInventoryService(client, zap.NewNop())
	ctx := context.Background()

	items, err := service.ListLowStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "threshold=5", lowStockQuery)

	_, err = service.ListLowStock(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, lowStockQuery)

	item, err := service.AdjustStock(ctx, "i-1", &requests.AdjustStock{Delta: 10, Reason: "restock"})
	require.NoError(t, err)
	assert.Equal(t, 12, item.Quantity)
	assert.JSONEq(t, `{"delta":10,"reason":"restock"}`, adjustBody)

	_, err = service.AdjustStock(ctx, "i-1", &requests.AdjustStock{Delta: 0})
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
}
