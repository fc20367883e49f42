package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wardview/internal/core"
	httpserver "wardview/internal/http"
	"wardview/internal/notes"
	"wardview/internal/store"
	"wardview/pkg"
)

type fakeCompleter struct {
	answer string
	err    error
	calls  int
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(context.Context, string) (string, error) {
	f.calls++
	return f.answer, f.err
}

func newTestServer(fake *fakeCompleter) *httpserver.Server {
	patients := store.NewMemoryStore(store.SeedPatients())
	assist := core.NewAssistService(patients, fake, zap.NewNop())
	return httpserver.NewServer(patients, notes.NewMemoryStore(), assist, nil, zap.NewNop())
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestAssistAggregateAnswer(t *testing.T) {
	fake := &fakeCompleter{answer: "unused"}
	srv := newTestServer(fake)

	rec := doJSON(t, srv, http.MethodPost, "/api/assist",
		pkg.AssistRequest{Question: "how many diabetes patients"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pkg.AssistResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// The built-in seed carries two diabetes patients.
	require.Equal(t, "There are 2 patients with diabetes.", resp.Answer)
	require.Zero(t, fake.calls)
}

func TestAssistPatientQuestion(t *testing.T) {
	fake := &fakeCompleter{answer: "Alex is doing well."}
	srv := newTestServer(fake)

	rec := doJSON(t, srv, http.MethodPost, "/api/assist",
		pkg.AssistRequest{Question: "how is Alex today?", PatientID: "P001"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pkg.AssistResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Alex is doing well.", resp.Answer)
	require.Equal(t, 1, fake.calls)
}

func TestAssistRequiresQuestion(t *testing.T) {
	srv := newTestServer(&fakeCompleter{})
	rec := doJSON(t, srv, http.MethodPost, "/api/assist", pkg.AssistRequest{Question: "  "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAndGetPatients(t *testing.T) {
	srv := newTestServer(&fakeCompleter{})

	rec := doJSON(t, srv, http.MethodGet, "/api/patients", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []pkg.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 5)

	rec = doJSON(t, srv, http.MethodGet, "/api/patients/P001", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/patients/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddPatient(t *testing.T) {
	srv := newTestServer(&fakeCompleter{})

	rec := doJSON(t, srv, http.MethodPost, "/api/patients", pkg.Patient{Name: "New Person"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created pkg.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, srv, http.MethodGet, "/api/patients/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/patients", pkg.Patient{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotesRoundtrip(t *testing.T) {
	srv := newTestServer(&fakeCompleter{})

	rec := doJSON(t, srv, http.MethodPost, "/api/patients/P001/notes",
		pkg.NoteRequest{Text: "reviewed labs"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/patients/P001/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []pkg.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "reviewed labs", list[0].Text)

	rec = doJSON(t, srv, http.MethodPost, "/api/patients/missing/notes",
		pkg.NoteRequest{Text: "x"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
