package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"homeo-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method        string
	path          string
	query         string
	authorization string
	contentType   string
	body          string
}

type fakeClinic struct {
	server   *httptest.Server
	token    string
	requests []recordedRequest
}

func newFakeClinic(t *testing.T) *fakeClinic {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "doc-1",
		"role": constvars.ClinicRoleDoctor,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	clinic := &fakeClinic{token: token}
	writeJSON := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(status)
		io.WriteString(w, body)
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
			clinic.requests = append(clinic.requests, recordedRequest{
				method:        r.Method,
				path:          r.URL.Path,
				query:         r.URL.RawQuery,
				authorization: r.Header.Get(constvars.HeaderAuthorization),
				contentType:   r.Header.Get(constvars.HeaderContentType),
				body:          string(body),
			})
			next.ServeHTTP(w, r)
		})
	})
	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"token":%q,"role":"doctor","user":{"id":"doc-1"}}`, token))
	})
	r.Get("/api/patients", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[{"id":"p-1","firstName":"Asha","lastName":"Rao"}]}`)
	})
	r.Delete("/api/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/api/appointments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"a-1","patientId":"p-1","doctorId":"doc-1","date":"2024-05-02","time":"10:30"}]`)
	})
	r.Post("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":"n-1"}`)
	})
	r.Post("/api/uploads", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, `{"message":"bad form"}`)
			return
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, `{"message":"file missing"}`)
			return
		}
		writeJSON(w, http.StatusCreated, fmt.Sprintf(`{"name":%q,"kind":%q}`, header.Filename, r.FormValue("kind")))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"Resource not found"}`)
	})

	clinic.server = httptest.NewServer(r)
	t.Cleanup(clinic.server.Close)
	return clinic
}

func (c *fakeClinic) last() recordedRequest {
	return c.requests[len(c.requests)-1]
}

func writeConfig(t *testing.T, baseURL string) (configPath, storagePath string) {
	t.Helper()
	dir := t.TempDir()
	storagePath = filepath.Join(dir, "storage.json")
	configPath = filepath.Join(dir, "clinicctl.yaml")
	content := fmt.Sprintf(`
app:
  env: test
api:
  base_url: %s/api
  retry_attempts: 0
credentials:
  driver: file
  file_path: %s
logger:
  level: error
`, baseURL, storagePath)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath, storagePath
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func run(configPath string, args ...string) runResult {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), NewDependencies, append([]string{"--config", configPath}, args...), &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestClinicctl_Session(t *testing.T) {
	clinic := newFakeClinic(t)
	configPath, storagePath := writeConfig(t, clinic.server.URL)

	login := run(configPath, "login", "--email", "doc@clinic.test", "--password", "secret")
	require.Equal(t, 0, login.code, login.stderr)
	assert.Contains(t, login.stderr, `token stored under "token"`)
	assert.Empty(t, clinic.last().authorization)

	stored, err := os.ReadFile(storagePath)
	require.NoError(t, err)
	var entries map[string]string
	require.NoError(t, json.Unmarshal(stored, &entries))
	assert.Equal(t, clinic.token, entries["token"])

	get := run(configPath, "get", "/patients", "-p", "search=asha")
	require.Equal(t, 0, get.code, get.stderr)
	assert.Equal(t, "Bearer "+clinic.token, clinic.last().authorization)
	assert.Equal(t, "search=asha", clinic.last().query)
	assert.JSONEq(t, `{"data":[{"id":"p-1","firstName":"Asha","lastName":"Rao"}]}`, get.stdout)

	show := run(configPath, "token", "show", "-o", "json")
	require.Equal(t, 0, show.code, show.stderr)
	var claims map[string]any
	require.NoError(t, json.Unmarshal([]byte(show.stdout), &claims))
	assert.Equal(t, "doc-1", claims["subject"])
	assert.Equal(t, "doctor", claims["role"])
	assert.Equal(t, false, claims["expired"])

	logout := run(configPath, "logout")
	require.Equal(t, 0, logout.code, logout.stderr)

	afterLogout := run(configPath, "token", "show")
	assert.Equal(t, 1, afterLogout.code)
	assert.Contains(t, afterLogout.stderr, "no token stored")

	run(configPath, "get", "/patients")
	assert.Empty(t, clinic.last().authorization)
}

func TestClinicctl_Requests(t *testing.T) {
	clinic := newFakeClinic(t)
	configPath, _ := writeConfig(t, clinic.server.URL)

	t.Run("post json", func(t *testing.T) {
		res := run(configPath, "post", "/notes", "-d", `{"text":"follow up in 2 weeks"}`)
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, constvars.MIMEApplicationJSON, clinic.last().contentType)
		assert.JSONEq(t, `{"text":"follow up in 2 weeks"}`, clinic.last().body)
		assert.JSONEq(t, `{"id":"n-1"}`, res.stdout)
	})

	t.Run("post raw text", func(t *testing.T) {
		res := run(configPath, "post", "/notes", "-d", "plain note", "--content-type", constvars.MIMETextPlain)
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, constvars.MIMETextPlain, clinic.last().contentType)
		assert.Equal(t, "plain note", clinic.last().body)
	})

	t.Run("post without content type", func(t *testing.T) {
		res := run(configPath, "post", "/notes", "-d", "raw", "--content-type", "")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Empty(t, clinic.last().contentType)
	})

	t.Run("delete no content", func(t *testing.T) {
		res := run(configPath, "delete", "/patients/p-1")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, http.MethodDelete, clinic.last().method)
		assert.Equal(t, "null\n", res.stdout)
	})

	t.Run("upload", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "scan.pdf")
		require.NoError(t, os.WriteFile(file, []byte("%PDF-1.7"), 0o600))

		res := run(configPath, "upload", "/uploads", file, "-F", "kind=lab")
		require.Equal(t, 0, res.code, res.stderr)
		assert.True(t, strings.HasPrefix(clinic.last().contentType, "multipart/form-data; boundary="))
		assert.JSONEq(t, `{"name":"scan.pdf","kind":"lab"}`, res.stdout)
	})

	t.Run("upload from storage without minio", func(t *testing.T) {
		res := run(configPath, "upload", "/uploads", "--object", "scans/1.pdf")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "object storage is not configured")
	})

	t.Run("backend error", func(t *testing.T) {
		res := run(configPath, "get", "/missing")
		assert.Equal(t, 1, res.code)
		assert.Equal(t, "Error: Resource not found\n", res.stderr)
	})

	t.Run("invalid json", func(t *testing.T) {
		requestCount := len(clinic.requests)
		res := run(configPath, "post", "/notes", "-d", "{oops")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "--data is not valid JSON")
		assert.Len(t, clinic.requests, requestCount)
	})
}

func TestClinicctl_ResourceCommands(t *testing.T) {
	clinic := newFakeClinic(t)
	configPath, _ := writeConfig(t, clinic.server.URL)

	patients := run(configPath, "patients", "list", "--search", "asha", "--page-size", "20", "-o", "table")
	require.Equal(t, 0, patients.code, patients.stderr)
	assert.Equal(t, "pageSize=20&search=asha", clinic.last().query)
	lines := strings.Split(strings.TrimSpace(patients.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"ID", "FIRSTNAME", "LASTNAME"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"p-1", "Asha", "Rao"}, strings.Fields(lines[1]))

	appointments := run(configPath, "appointments", "list", "--patient", "p-1", "-o", "yaml")
	require.Equal(t, 0, appointments.code, appointments.stderr)
	assert.Equal(t, "patientId=p-1", clinic.last().query)
	assert.Contains(t, appointments.stdout, "patientId: p-1")

	both := run(configPath, "appointments", "list", "--patient", "p-1", "--doctor", "doc-1")
	assert.Equal(t, 1, both.code)
}

func TestClinicctl_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	setup := func(ctx context.Context, configPath string) (*Dependencies, error) {
		t.Fatal("version must not load dependencies")
		return nil, nil
	}

	code := Run(context.Background(), setup, []string{"version"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "gitVersion:")

	stdout.Reset()
	code = Run(context.Background(), setup, []string{"version", "-o", "json"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	var info map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &info))
	assert.Contains(t, info, "goVersion")
}

func TestParseKeyValues(t *testing.T) {
	values, err := parseKeyValues([]string{"status=scheduled", "status=completed", "page=2", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"status": []string{"scheduled", "completed"},
		"page":   "2",
		"note":   "a=b",
	}, values)

	_, err = parseKeyValues([]string{"novalue"})
	assert.Error(t, err)
}
