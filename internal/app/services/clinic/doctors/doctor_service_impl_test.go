package doctors

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeo-service/internal/app/services/shared/httpclient"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDoctorService_ListAvailability(t *testing.T) {
	var gotQuery string
	r := chi.NewRouter()
	r.Get("/doctors/{id}/availability", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		io.WriteString(w, `{"slots":["09:00","09:30"]}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	client, err := httpclient.NewAPIClient(httpclient.DefaultConfig(), zap.NewNop(), httpclient.WithBaseURL(server.URL))
	require.NoError(t, err)
	service := NewDoctorService(client, zap.NewNop())

	availability, err := service.ListAvailability(context.Background(), "d-1", "2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, "date=2024-05-02", gotQuery)
	assert.Equal(t, "d-1", availability.DoctorID)
	assert.Equal(t, "2024-05-02", availability.Date)
	assert.Equal(t, []string{"09:00", "09:30"}, availability.Slots)

	_, err = service.ListAvailability(context.Background(), "d-1", "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)

	_, err = service.ListAvailability(context.Background(), "d-1", "tomorrow")
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))

	_, err = service.ListAvailability(context.Background(), "", "2024-05-02")
	assert.Error(t, err)
}
