package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkaneko/skills-chatbot/internal/chatbot"
	"github.com/mkaneko/skills-chatbot/internal/config"
	"github.com/mkaneko/skills-chatbot/internal/features"
	"github.com/mkaneko/skills-chatbot/internal/ingest"
	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/search"
	"github.com/mkaneko/skills-chatbot/internal/server/ratelimit"
)

const testAdminPassword = "correct horse battery staple"

// stubClient is a canned text-generation client for handler tests.
type stubClient struct {
	mu         sync.Mutex
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (c *stubClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.lastPrompt = prompt
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *stubClient) Close() error { return nil }

func (c *stubClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type testEnv struct {
	server *Server
	client *stubClient
	store  *knowledge.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// The limiter reads its config from the environment; a high burst keeps
	// multi-request tests from tripping it.
	t.Setenv("RATE_LIMIT_BURST", "1000")

	dir := t.TempDir()
	store := knowledge.NewStore(filepath.Join(dir, "knowledge-base.json"))
	require.NoError(t, store.Load())

	engine := search.NewEngine(store)
	client := &stubClient{response: "Here is what I know."}
	svc := chatbot.NewService(chatbot.Config{
		Store:             store,
		Engine:            engine,
		Client:            client,
		ProfilesPath:      filepath.Join(dir, "skills-data.json"),
		TrainingStepDelay: time.Millisecond,
	})

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	srv, err := New(Config{
		Port:      0,
		UploadDir: filepath.Join(dir, "uploads"),
		Service:   svc,
		Ingestor:  ingest.New(features.NewExtractor(features.DefaultConfig()), store),
		Engine:    engine,
		Store:     store,
		JWT:       &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1},
		Admin:     &config.AdminConfig{PasswordHash: string(hash)},
	})
	require.NoError(t, err)
	t.Cleanup(func() { srv.rateLimiter.Stop() })

	return &testEnv{server: srv, client: client, store: store}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.RemoteAddr = "192.0.2.1:12345"
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest(http.MethodOptions, "/api/chat", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_Returns429WhenExhausted(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("RATE_LIMIT_BURST", "2")
	env.server.rateLimiter.Stop()
	env.server.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	defer env.server.rateLimiter.Stop()

	for i := 0; i < 2; i++ {
		rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimit_HealthIsExempt(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("RATE_LIMIT_BURST", "1")
	env.server.rateLimiter.Stop()
	env.server.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	defer env.server.rateLimiter.Stop()

	for i := 0; i < 5; i++ {
		rec := env.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
