package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/catalog"
	"github.com/gomtb/validator/engine"
	"github.com/gomtb/validator/mtb"
)

// recordingForwarder captures downstream calls.
type recordingForwarder struct {
	forwarded []string
	deleted   []string
}

func (f *recordingForwarder) Forward(_ context.Context, file *mtb.File) error {
	f.forwarded = append(f.forwarded, file.Patient.ID)
	return nil
}

func (f *recordingForwarder) Delete(_ context.Context, patientID string) error {
	f.deleted = append(f.deleted, patientID)
	return nil
}

func newTestServer(t *testing.T) (*Server, *recordingForwarder) {
	t.Helper()
	checker := engine.New(catalog.NewInMemory())
	forwarder := &recordingForwarder{}
	server := NewServer(checker, newTestStore(t), forwarder, zerolog.Nop())
	return server, forwarder
}

func datePtr(year int, month time.Month, day int) *mtb.Date {
	d := mtb.NewDate(year, month, day)
	return &d
}

func strPtr(s string) *string { return &s }

// rejectedConsentFile builds a file with rejected consent and an empty
// body: the smallest file that passes every check.
func rejectedConsentFile() *mtb.File {
	return &mtb.File{
		Patient: &mtb.Patient{
			ID:          "P1",
			Gender:      mtb.GenderFemale,
			BirthDate:   datePtr(1970, time.January, 1),
			Insurance:   strPtr("AOK-123456"),
			DateOfDeath: datePtr(2020, time.June, 1),
		},
		Consent: &mtb.Consent{ID: "C1", Patient: "P1", Status: mtb.ConsentRejected},
		Episode: &mtb.Episode{
			ID:      "E1",
			Patient: "P1",
			Period:  mtb.Period{Start: datePtr(2019, time.March, 1)},
		},
	}
}

func upload(t *testing.T, server *Server, file *mtb.File) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(file)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/mtbfile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestUpload_ValidFileIsAcceptedAndForwarded(t *testing.T) {
	server, forwarder := newTestServer(t)

	rec := upload(t, server, rejectedConsentFile())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"P1"}, forwarder.forwarded)

	// No report was produced, so none is retrievable
	req := httptest.NewRequest(http.MethodGet, "/mtbfile/P1/report", nil)
	getRec := httptest.NewRecorder()
	server.Handler().ServeHTTP(getRec, req)
	assert.Equal(t, http.StatusNotFound, getRec.Code)
}

func TestUpload_InfoOnlyIsAcceptedWithoutStoredReport(t *testing.T) {
	server, forwarder := newTestServer(t)

	file := rejectedConsentFile()
	file.Patient.DateOfDeath = nil // missing date of death is informational

	rec := upload(t, server, file)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"P1"}, forwarder.forwarded)

	report := &mv.DataQualityReport{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), report))
	assert.True(t, report.HasOnlyInfos())

	req := httptest.NewRequest(http.MethodGet, "/mtbfile/P1/report", nil)
	getRec := httptest.NewRecorder()
	server.Handler().ServeHTTP(getRec, req)
	assert.Equal(t, http.StatusNotFound, getRec.Code)
}

func TestUpload_WarningsAreStoredAndForwarded(t *testing.T) {
	server, forwarder := newTestServer(t)

	file := rejectedConsentFile()
	file.Patient.Insurance = nil // missing insurance is a warning

	rec := upload(t, server, file)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"P1"}, forwarder.forwarded, "warning-only files are still forwarded")

	req := httptest.NewRequest(http.MethodGet, "/mtbfile/P1/report", nil)
	getRec := httptest.NewRecorder()
	server.Handler().ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)

	report := &mv.DataQualityReport{}
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), report))
	assert.Equal(t, "P1", report.PatientID)
	assert.False(t, report.HasErrors())
}

func TestUpload_ErrorsAreStoredButNotForwarded(t *testing.T) {
	server, forwarder := newTestServer(t)

	file := rejectedConsentFile()
	file.Patient.BirthDate = nil // missing birth date is an error

	rec := upload(t, server, file)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, forwarder.forwarded, "files with errors must not be forwarded")
}

func TestUpload_FatalIsRejected(t *testing.T) {
	server, forwarder := newTestServer(t)

	file := rejectedConsentFile()
	// Body data despite rejected consent is fatal
	file.Diagnoses = []mtb.Diagnosis{{ID: "D1", Patient: "P1"}}

	rec := upload(t, server, file)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, forwarder.forwarded)

	report := &mv.DataQualityReport{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), report))
	assert.True(t, report.HasFatal())

	// Nothing was stored for the rejected upload
	req := httptest.NewRequest(http.MethodGet, "/mtbfile/P1/report", nil)
	getRec := httptest.NewRecorder()
	server.Handler().ServeHTTP(getRec, req)
	assert.Equal(t, http.StatusNotFound, getRec.Code)
}

func TestUpload_InvalidPayload(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/mtbfile", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_RemovesDataAndPropagates(t *testing.T) {
	server, forwarder := newTestServer(t)

	file := rejectedConsentFile()
	file.Patient.Insurance = nil
	upload(t, server, file)

	req := httptest.NewRequest(http.MethodDelete, "/mtbfile/P1", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"P1"}, forwarder.deleted)

	getReq := httptest.NewRequest(http.MethodGet, "/mtbfile/P1/report", nil)
	getRec := httptest.NewRecorder()
	server.Handler().ServeHTTP(getRec, getReq)
	assert.Equal(t, http.StatusNotFound, getRec.Code)
}

func TestHealthz(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
