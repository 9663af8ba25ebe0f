package prescriptions

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homeo-service/internal/app/services/shared/httpclient"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPrescriptionService(t *testing.T) {
	var uploadedName, uploadedNote, listQuery string
	r := chi.NewRouter()
	r.Post("/prescriptions/{id}/attachments", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		if _, header, err := r.FormFile("file"); assert.NoError(t, err) {
			uploadedName = header.Filename
		}
		uploadedNote = r.FormValue("note")
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		io.WriteString(w, `{"id":"rx-1","patientId":"p-1","doctorId":"d-1","attachments":["scan.pdf"]}`)
	})
	r.Get("/prescriptions", func(w http.ResponseWriter, r *http.Request) {
		listQuery = r.URL.RawQuery
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		io.WriteString(w, `{"data":[{"id":"rx-1","medications":[{"name":"Arnica","potency":"30C"}]}]}`)
	})
	server := httptest.NewServer(r)
	defer server.Close()

	client, err := httpclient.NewAPIClient(httpclient.DefaultConfig(), zap.NewNop(), httpclient.WithBaseURL(server.URL))
	require.NoError(t, err)
	service := NewPrescriptionService(client, zap.NewNop())
	ctx := context.Background()

	prescription, err := service.UploadAttachment(ctx, "rx-1", requests.FileUpload{
		FileName:    "scan.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.7"),
	}, map[string]any{"note": "lab report"})
	require.NoError(t, err)
	assert.Equal(t, []string{"scan.pdf"}, prescription.Attachments)
	assert.Equal(t, "scan.pdf", uploadedName)
	assert.Equal(t, "lab report", uploadedNote)

	list, err := service.ListByPatient(ctx, "p-1", nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "30C", list[0].Medications[0].Potency)
	assert.Equal(t, "patientId=p-1", listQuery)
}
