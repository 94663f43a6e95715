// test/e2e/e2e_test.go
//
// Exercises the full request path: HTTP API -> generators -> deploy client
// -> (fake) Netlify -> status cache. Only the AWS notifier and the profile
// database are faked in process; the deploy client speaks real HTTP to an
// httptest Netlify.
package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizforge/internal/common/config"
	"bizforge/internal/common/database"
	"bizforge/internal/common/errors"
	"bizforge/internal/common/logger"
	"bizforge/internal/common/observability"
	"bizforge/internal/deploy"
	"bizforge/internal/models"
	"bizforge/internal/server"
)

type memProfiles struct {
	byID map[string]models.SavedProfile
}

func (m *memProfiles) Create(_ context.Context, biz models.BusinessInfo) (models.SavedProfile, error) {
	saved := models.SavedProfile{ID: "prof-e2e", Business: biz, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.byID[saved.ID] = saved
	return saved, nil
}

func (m *memProfiles) Get(_ context.Context, id string) (models.SavedProfile, error) {
	saved, ok := m.byID[id]
	if !ok {
		return models.SavedProfile{}, errors.NewProfileNotFoundError(id)
	}
	return saved, nil
}

func (m *memProfiles) Patch(_ context.Context, id string, _ json.RawMessage) (models.SavedProfile, error) {
	return m.Get(context.Background(), id)
}

type noopNotifier struct{ notified int }

func (n *noopNotifier) DeployFinished(context.Context, models.BusinessInfo, models.DeployResult) error {
	n.notified++
	return nil
}

// fakeNetlify implements just enough of the hosting API for one deploy.
func fakeNetlify(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/sites":
			json.NewEncoder(w).Encode(map[string]string{
				"id":      "site-e2e",
				"ssl_url": "https://joes-plumbing-e2e.netlify.app",
			})
		case r.Method == http.MethodPost && r.URL.Path == "/sites/site-e2e/deploys":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id":       "deploy-e2e",
				"required": []string{},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/deploys/deploy-e2e":
			json.NewEncoder(w).Encode(map[string]string{"id": "deploy-e2e", "state": "ready"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newStack(t *testing.T) (*server.Server, *noopNotifier) {
	t.Helper()

	netlify := fakeNetlify(t)
	t.Cleanup(netlify.Close)

	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()})}
	statuses := deploy.NewStatusCache(redisClient, time.Hour)

	deployCfg := config.DeployConfig{
		APIBaseURL:      netlify.URL,
		Token:           "e2e-token",
		PollInterval:    1,
		MaxPollAttempts: 60,
		RequestTimeout:  5000,
		SuffixLength:    6,
	}
	deployer := deploy.NewClient(deployCfg, logger.NewNoOpLogger())

	cfg := config.Config{}
	cfg.Server.RequestTimeout = 60000
	cfg.Generator.DefaultBaseURL = "https://example.netlify.app"

	notifier := &noopNotifier{}
	srv := server.New(cfg, logger.NewNoOpLogger(), &observability.Observability{},
		deployer, notifier,
		&memProfiles{byID: make(map[string]models.SavedProfile)},
		statuses,
		map[string]server.Pinger{"redis": redisClient.Ping})
	return srv, notifier
}

const businessJSON = `{
	"name": "Joe's Plumbing",
	"businessType": "plumber",
	"description": "Honest plumbing for Austin homes.",
	"city": "Austin",
	"state": "TX",
	"phone": "5125551234",
	"services": ["Drain Cleaning", "Water Heaters"]
}`

func TestGenerateThenDeployThenPollStatus(t *testing.T) {
	srv, notifier := newStack(t)

	// 1. Generate and sanity-check the file map.
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(businessJSON)))
	require.Equal(t, http.StatusOK, rec.Code)

	var genBody struct {
		Files map[string]string `json:"files"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genBody))
	assert.Contains(t, genBody.Files, "app/page.tsx")
	assert.Contains(t, genBody.Files["components/Hero.tsx"], `Joe\'s Plumbing`)

	// 2. Deploy through the fake Netlify.
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/deploy?target=static", strings.NewReader(businessJSON)))
	require.Equal(t, http.StatusOK, rec.Code)

	var deployBody struct {
		DeployID   string `json:"deployId"`
		Success    bool   `json:"success"`
		NetlifyURL string `json:"netlifyUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deployBody))
	assert.True(t, deployBody.Success)
	assert.Equal(t, "https://joes-plumbing-e2e.netlify.app", deployBody.NetlifyURL)
	assert.Equal(t, 1, notifier.notified)

	// 3. Poll the cached deploy record.
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/deploys/"+deployBody.DeployID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var record models.DeployRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, models.DeployStateReady, record.State)
	assert.Equal(t, "https://joes-plumbing-e2e.netlify.app", record.URL)
}

func TestStaticAndFrameworkTargetsShareSEOStrings(t *testing.T) {
	srv, _ := newStack(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/generate/static", strings.NewReader(businessJSON)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Files map[string]string `json:"files"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Both targets embed the same structured data type for a plumber.
	assert.Contains(t, body.Files["index.html"], `"@type": "Plumber"`)
	assert.Contains(t, body.Files["robots.txt"], "Sitemap:")
}
