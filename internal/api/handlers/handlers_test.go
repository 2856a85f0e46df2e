package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/selamstaff/backend/internal/api/handlers"
	"github.com/selamstaff/backend/internal/api/routes"
	"github.com/selamstaff/backend/internal/models"
	pgrepo "github.com/selamstaff/backend/internal/repositories/postgres"
	"github.com/selamstaff/backend/internal/services"
	"github.com/selamstaff/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const maxUpload = 5 << 20

type apiFixture struct {
	router     *gin.Engine
	db         *gorm.DB
	uploadRoot string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Candidate{}, &models.Employer{}, &models.Agency{}))

	root := t.TempDir()
	store := storage.NewDiskStore(root)

	candidateRepo := pgrepo.NewRecordRepo[models.Candidate](db)
	employerRepo := pgrepo.NewRecordRepo[models.Employer](db)
	agencyRepo := pgrepo.NewRecordRepo[models.Agency](db)

	candidateSvc := services.NewCandidateService(candidateRepo, store)
	employerSvc := services.NewEmployerService(employerRepo, store)
	agencySvc := services.NewAgencyService(agencyRepo, store)
	statsSvc := services.NewStatsService(candidateRepo, employerRepo, agencyRepo, nil, time.Minute)
	exportSvc := services.NewExportService(candidateRepo, employerRepo, agencyRepo)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Candidates: handlers.NewCandidateHandler(candidateSvc, maxUpload),
		Employers:  handlers.NewEmployerHandler(employerSvc, maxUpload),
		Agencies:   handlers.NewAgencyHandler(agencySvc, maxUpload),
		Dashboard:  handlers.NewDashboardHandler(statsSvc),
		Export:     handlers.NewExportHandler(exportSvc),
	})

	return &apiFixture{router: r, db: db, uploadRoot: root}
}

func (f *apiFixture) do(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) doJSON(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	return f.do(t, method, path, body, "application/json")
}

type multipartBuilder struct {
	buf *bytes.Buffer
	w   *multipart.Writer
}

func newMultipart() *multipartBuilder {
	buf := &bytes.Buffer{}
	return &multipartBuilder{buf: buf, w: multipart.NewWriter(buf)}
}

func (m *multipartBuilder) field(name, value string) *multipartBuilder {
	_ = m.w.WriteField(name, value)
	return m
}

func (m *multipartBuilder) file(field, filename string, content []byte) *multipartBuilder {
	fw, _ := m.w.CreateFormFile(field, filename)
	_, _ = fw.Write(content)
	return m
}

func (m *multipartBuilder) done() (io.Reader, string) {
	_ = m.w.Close()
	return m.buf, m.w.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterCandidate_WithPhoto(t *testing.T) {
	f := newAPIFixture(t)

	body, ct := newMultipart().
		field("firstName", "Abel").
		field("lastName", "Tesfaye").
		field("gender", "male").
		field("dateOfBirth", "1995-02-16").
		field("phone", "+251911000000").
		field("email", "abel@example.com").
		field("preferredCountry", "UAE").
		field("preferredJob", "driver").
		field("skillDriving", "true").
		file("photo", "abel.jpg", []byte("jpeg bytes")).
		done()

	w := f.do(t, http.MethodPost, "/api/register/candidate", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, ok := decodeBody(t, w)["candidateId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	got := f.doJSON(t, http.MethodGet, "/api/candidates/"+id, nil)
	require.Equal(t, http.StatusOK, got.Code)

	rec := decodeBody(t, got)
	assert.Equal(t, "pending", rec["status"])
	assert.Equal(t, "Abel", rec["firstName"])
	assert.Equal(t, true, rec["skillDriving"])

	photoPath, ok := rec["photoPath"].(string)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^uploads/candidates/[0-9a-f-]{36}\.jpg$`), photoPath)
}

func TestRegisterCandidate_OversizedFileRejected(t *testing.T) {
	f := newAPIFixture(t)

	big := bytes.Repeat([]byte("x"), maxUpload+1)
	body, ct := newMultipart().
		field("firstName", "Abel").
		file("photo", "huge.jpg", big).
		done()

	w := f.do(t, http.MethodPost, "/api/register/candidate", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// no record was created
	list := f.doJSON(t, http.MethodGet, "/api/candidates", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Equal(t, "[]", strings.TrimSpace(list.Body.String()))
}

func TestApproveAgency_NotFound(t *testing.T) {
	f := newAPIFixture(t)

	w := f.doJSON(t, http.MethodPatch, "/api/agencies/"+uuid.NewString()+"/approve", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Agency not found", decodeBody(t, w)["message"])
}

func TestCandidateStatusUpdate_EquivalentToApprove(t *testing.T) {
	f := newAPIFixture(t)

	body, ct := newMultipart().field("firstName", "Sara").done()
	w := f.do(t, http.MethodPost, "/api/register/candidate", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["candidateId"].(string)

	upd := f.doJSON(t, http.MethodPatch, "/api/candidates/"+id, map[string]any{"status": "approved"})
	require.Equal(t, http.StatusOK, upd.Code)
	assert.Equal(t, "approved", decodeBody(t, upd)["status"])

	got := f.doJSON(t, http.MethodGet, "/api/candidates/"+id, nil)
	assert.Equal(t, "approved", decodeBody(t, got)["status"])
}

func TestUpdateCandidate_RejectsInvalidStatus(t *testing.T) {
	f := newAPIFixture(t)

	body, ct := newMultipart().field("firstName", "Sara").done()
	w := f.do(t, http.MethodPost, "/api/register/candidate", body, ct)
	id := decodeBody(t, w)["candidateId"].(string)

	upd := f.doJSON(t, http.MethodPatch, "/api/candidates/"+id, map[string]any{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, upd.Code)
}

func TestRegisterEmployer_MissingRequiredFields(t *testing.T) {
	f := newAPIFixture(t)

	body, ct := newMultipart().field("companyName", "Gulf Homes").done()
	w := f.do(t, http.MethodPost, "/api/register/employer", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAgency_RemovesRecordButKeepsFile(t *testing.T) {
	f := newAPIFixture(t)

	body, ct := newMultipart().
		field("agencyName", "Selam Overseas").
		field("licenseNumber", "ETH-2024-0042").
		field("email", "info@selamoverseas.example").
		field("phone", "+251115550000").
		field("directorName", "Mekdes Alemu").
		file("license", "license.pdf", []byte("license scan")).
		done()

	w := f.do(t, http.MethodPost, "/api/register/agency", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["agencyId"].(string)

	got := f.doJSON(t, http.MethodGet, "/api/agencies/"+id, nil)
	licensePath := decodeBody(t, got)["licensePath"].(string)
	onDisk := filepath.Join(f.uploadRoot, strings.TrimPrefix(licensePath, "uploads/"))

	del := f.doJSON(t, http.MethodDelete, "/api/agencies/"+id, nil)
	require.Equal(t, http.StatusOK, del.Code)
	assert.Equal(t, true, decodeBody(t, del)["deleted"])

	// gone from the list
	list := f.doJSON(t, http.MethodGet, "/api/agencies", nil)
	assert.Equal(t, "[]", strings.TrimSpace(list.Body.String()))

	// second delete is a 404
	again := f.doJSON(t, http.MethodDelete, "/api/agencies/"+id, nil)
	require.Equal(t, http.StatusNotFound, again.Code)

	// the uploaded file survives the hard delete
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "license scan", string(data))
}

func TestVerifyEmployer(t *testing.T) {
	f := newAPIFixture(t)

	body, ct := newMultipart().
		field("companyName", "Gulf Homes").
		field("companyEmail", "hr@gulfhomes.example").
		field("companyPhone", "+97140000000").
		field("country", "UAE").
		field("contactName", "Omar Haddad").
		field("contactPhone", "+97150000000").
		field("sector", "domestic staffing").
		done()

	w := f.do(t, http.MethodPost, "/api/register/employer", body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["employerId"].(string)

	v := f.doJSON(t, http.MethodPatch, "/api/employers/"+id+"/verify", nil)
	require.Equal(t, http.StatusOK, v.Code)
	rec := decodeBody(t, v)
	assert.Equal(t, true, rec["verified"])
	assert.Equal(t, "pending", rec["status"])
}

func TestStatsAndActivityEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	body, ct := newMultipart().field("firstName", "Abel").field("lastName", "Tesfaye").done()
	w := f.do(t, http.MethodPost, "/api/register/candidate", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)

	stats := f.doJSON(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, stats.Code)
	out := decodeBody(t, stats)
	candidates, ok := out["candidates"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), candidates["total"])
	assert.Equal(t, float64(1), candidates["pending"])

	activity := f.doJSON(t, http.MethodGet, "/api/activity?limit=5", nil)
	require.Equal(t, http.StatusOK, activity.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(activity.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "candidate", items[0]["role"])
	assert.Equal(t, "Abel Tesfaye", items[0]["name"])
}

func TestExportEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	body, ct := newMultipart().field("firstName", "Abel").done()
	w := f.do(t, http.MethodPost, "/api/register/candidate", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)

	xlsx := f.doJSON(t, http.MethodGet, "/api/export/candidates?format=xlsx", nil)
	require.Equal(t, http.StatusOK, xlsx.Code)
	assert.Contains(t, xlsx.Header().Get("Content-Disposition"), "candidates.xlsx")
	assert.NotEmpty(t, xlsx.Body.Bytes())

	pdf := f.doJSON(t, http.MethodGet, "/api/export/candidates?format=pdf", nil)
	require.Equal(t, http.StatusOK, pdf.Code)
	assert.Equal(t, "%PDF", string(pdf.Body.Bytes()[:4]))

	bad := f.doJSON(t, http.MethodGet, "/api/export/candidates?format=docx", nil)
	require.Equal(t, http.StatusBadRequest, bad.Code)

	unknown := f.doJSON(t, http.MethodGet, "/api/export/vendors", nil)
	require.Equal(t, http.StatusBadRequest, unknown.Code)
}
