package server

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizforge/internal/common/config"
	"bizforge/internal/common/errors"
	"bizforge/internal/common/logger"
	"bizforge/internal/common/observability"
	"bizforge/internal/models"
)

// ==========================
// Mock Implementations
// ==========================

type MockDeployer struct {
	DeployFunc func(ctx context.Context, biz models.BusinessInfo, files models.FileMap) models.DeployResult
}

func (m *MockDeployer) Deploy(ctx context.Context, biz models.BusinessInfo, files models.FileMap) models.DeployResult {
	return m.DeployFunc(ctx, biz, files)
}

type MockNotifier struct {
	DeployFinishedFunc func(ctx context.Context, biz models.BusinessInfo, result models.DeployResult) error
	calls              int
}

func (m *MockNotifier) DeployFinished(ctx context.Context, biz models.BusinessInfo, result models.DeployResult) error {
	m.calls++
	if m.DeployFinishedFunc != nil {
		return m.DeployFinishedFunc(ctx, biz, result)
	}
	return nil
}

type memProfileStore struct {
	profiles map[string]models.SavedProfile
	nextID   int
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[string]models.SavedProfile)}
}

func (m *memProfileStore) Create(_ context.Context, biz models.BusinessInfo) (models.SavedProfile, error) {
	m.nextID++
	saved := models.SavedProfile{ID: fmt.Sprintf("prof-%d", m.nextID), Business: biz}
	m.profiles[saved.ID] = saved
	return saved, nil
}

func (m *memProfileStore) Get(_ context.Context, id string) (models.SavedProfile, error) {
	saved, ok := m.profiles[id]
	if !ok {
		return models.SavedProfile{}, errors.NewProfileNotFoundError(id)
	}
	return saved, nil
}

func (m *memProfileStore) Patch(_ context.Context, id string, patch json.RawMessage) (models.SavedProfile, error) {
	saved, ok := m.profiles[id]
	if !ok {
		return models.SavedProfile{}, errors.NewProfileNotFoundError(id)
	}

	base, _ := json.Marshal(saved.Business)
	var baseMap map[string]json.RawMessage
	json.Unmarshal(base, &baseMap)

	var patchMap map[string]json.RawMessage
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return models.SavedProfile{}, errors.NewProfileValidationFailedError(err.Error())
	}
	for k, v := range patchMap {
		baseMap[k] = v
	}

	merged, _ := json.Marshal(baseMap)
	json.Unmarshal(merged, &saved.Business)
	m.profiles[id] = saved
	return saved, nil
}

type memStatusStore struct {
	records map[string]models.DeployRecord
}

func newMemStatusStore() *memStatusStore {
	return &memStatusStore{records: make(map[string]models.DeployRecord)}
}

func (m *memStatusStore) Put(_ context.Context, record models.DeployRecord) error {
	m.records[record.ID] = record
	return nil
}

func (m *memStatusStore) Get(_ context.Context, id string) (models.DeployRecord, bool, error) {
	record, ok := m.records[id]
	return record, ok, nil
}

// ==========================
// Test Helper Functions
// ==========================

type testFixture struct {
	server   *Server
	deployer *MockDeployer
	notifier *MockNotifier
	profiles *memProfileStore
	statuses *memStatusStore
}

func newTestServer(t *testing.T) *testFixture {
	t.Helper()

	cfg := config.Config{}
	cfg.Server.RequestTimeout = 60000
	cfg.Generator.DefaultBaseURL = "https://example.netlify.app"

	f := &testFixture{
		deployer: &MockDeployer{
			DeployFunc: func(ctx context.Context, biz models.BusinessInfo, files models.FileMap) models.DeployResult {
				return models.DeployResult{Success: true, NetlifyURL: "https://live.netlify.app"}
			},
		},
		notifier: &MockNotifier{},
		profiles: newMemProfileStore(),
		statuses: newMemStatusStore(),
	}

	f.server = New(cfg, logger.NewNoOpLogger(), &observability.Observability{},
		f.deployer, f.notifier, f.profiles, f.statuses,
		map[string]Pinger{"postgres": func(context.Context) error { return nil }})
	return f
}

func bizBody() string {
	return `{"name": "Joe's Plumbing", "businessType": "plumber", "description": "Honest plumbing.",
		"city": "Austin", "state": "TX", "phone": "5125551234", "services": ["Drain Cleaning"]}`
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ==========================
// Tests
// ==========================

func TestHealthHealthy(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeBody(t, rec)["status"])
}

func TestHealthUnhealthyDependency(t *testing.T) {
	f := newTestServer(t)
	f.server.pingers = map[string]Pinger{
		"redis": func(context.Context) error { return fmt.Errorf("connection refused") },
	}

	rec := doRequest(t, f.server, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGenerateReturnsFileMap(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/generate", bizBody())
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "nextjs", body["target"])

	files := body["files"].(map[string]interface{})
	assert.Contains(t, files, "package.json")
	assert.Contains(t, files, "app/page.tsx")
}

func TestGenerateStaticTarget(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/generate/static", bizBody())
	require.Equal(t, http.StatusOK, rec.Code)

	files := decodeBody(t, rec)["files"].(map[string]interface{})
	assert.Contains(t, files, "index.html")
	assert.Contains(t, files, "css/styles.css")
	assert.NotContains(t, files, "package.json")
}

func TestGenerateRejectsInvalidBusiness(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/generate", `{"businessType": "plumber"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(errors.ErrCodeProfileValidationFailed), decodeBody(t, rec)["code"])
}

func TestGenerateArchiveContainsAllFiles(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/generate/archive?target=static", bizBody())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)

	names := make(map[string]bool, len(zr.File))
	for _, zf := range zr.File {
		names[zf.Name] = true
	}
	for _, want := range []string{"index.html", "about.html", "css/styles.css", "js/main.js", "robots.txt", "sitemap.xml"} {
		assert.True(t, names[want], "archive missing %s", want)
	}
}

func TestGenerateArchiveRejectsUnknownTarget(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/generate/archive?target=wordpress", bizBody())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeployHappyPath(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/deploy", bizBody())
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "https://live.netlify.app", body["netlifyUrl"])
	assert.Equal(t, 1, f.notifier.calls)

	deployID := body["deployId"].(string)
	record, ok, err := f.statuses.Get(context.Background(), deployID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.DeployStateReady, record.State)
}

func TestDeployTimeoutRecordedAsTimedOut(t *testing.T) {
	f := newTestServer(t)
	f.deployer.DeployFunc = func(ctx context.Context, biz models.BusinessInfo, files models.FileMap) models.DeployResult {
		return models.DeployResult{Success: false, Error: "Deploy timed out"}
	}

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/deploy", bizBody())
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])

	record, _, _ := f.statuses.Get(context.Background(), body["deployId"].(string))
	assert.Equal(t, models.DeployStateTimedOut, record.State)
}

func TestDeployStatusLookup(t *testing.T) {
	f := newTestServer(t)
	f.statuses.Put(context.Background(), models.DeployRecord{ID: "dep-9", State: models.DeployStateProcessing})

	rec := doRequest(t, f.server, http.MethodGet, "/api/v1/deploys/dep-9", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.DeployStateProcessing, decodeBody(t, rec)["state"])

	rec = doRequest(t, f.server, http.MethodGet, "/api/v1/deploys/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarketingCopy(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/marketing/copy?platform=instagram", bizBody())
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "plumbing", body["industry"])
	assert.Equal(t, "instagram", body["platform"])

	adCopy := body["copy"].(map[string]interface{})
	assert.NotEmpty(t, adCopy["headline"])
	assert.NotEmpty(t, adCopy["body"])
}

func TestMarketingPrompts(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/marketing/prompts", bizBody())
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body["imagePrompt"], "Joe's Plumbing")
	assert.Contains(t, body["videoScript"], "HOOK")
}

func TestProfileLifecycle(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodPost, "/api/v1/profiles", bizBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	rec = doRequest(t, f.server, http.MethodGet, "/api/v1/profiles/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, f.server, http.MethodPatch, "/api/v1/profiles/"+id, `{"city": "Dallas"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	business := decodeBody(t, rec)["business"].(map[string]interface{})
	assert.Equal(t, "Dallas", business["city"])
	assert.Equal(t, "Joe's Plumbing", business["name"])
}

func TestProfileNotFound(t *testing.T) {
	f := newTestServer(t)

	rec := doRequest(t, f.server, http.MethodGet, "/api/v1/profiles/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuildArchiveRoundTrip(t *testing.T) {
	files := models.FileMap{
		"index.html": "<html></html>",
		"css/app.css": "body {}",
	}

	archive, err := BuildArchive(files)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(rc)
	require.NoError(t, err)
	assert.Equal(t, files[zr.File[0].Name], buf.String())
}
