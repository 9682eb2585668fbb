package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/streama/internal/config"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/service"
	"github.com/MKhiriev/streama/internal/validators"
	"github.com/MKhiriev/streama/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case; unset fields answer with zero values.
type fakeAuthService struct {
	signUpFn              func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	validateCredentialsFn func(ctx context.Context, email, password string) (models.Identity, error)
	issueTokenFn          func(ctx context.Context, identity models.Identity) (models.Token, error)
	validateTokenFn       func(ctx context.Context, tokenString string) (models.Identity, error)
	changePasswordFn      func(ctx context.Context, id string, req models.ChangePasswordRequest) (models.User, error)
	changeEmailFn         func(ctx context.Context, id string, req models.ChangeEmailRequest) (models.User, error)
	assignRoleFn          func(ctx context.Context, id string, role models.Role) (models.User, error)
}

func (f *fakeAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if f.signUpFn == nil {
		return models.User{}, nil
	}
	return f.signUpFn(ctx, req)
}

func (f *fakeAuthService) ValidateCredentials(ctx context.Context, email, password string) (models.Identity, error) {
	if f.validateCredentialsFn == nil {
		return models.Identity{}, nil
	}
	return f.validateCredentialsFn(ctx, email, password)
}

func (f *fakeAuthService) IssueToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	if f.issueTokenFn == nil {
		return models.Token{}, nil
	}
	return f.issueTokenFn(ctx, identity)
}

func (f *fakeAuthService) ValidateToken(ctx context.Context, tokenString string) (models.Identity, error) {
	if f.validateTokenFn == nil {
		return models.Identity{}, service.ErrInvalidToken
	}
	return f.validateTokenFn(ctx, tokenString)
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) (models.User, error) {
	if f.changePasswordFn == nil {
		return models.User{}, nil
	}
	return f.changePasswordFn(ctx, id, req)
}

func (f *fakeAuthService) ChangeEmail(ctx context.Context, id string, req models.ChangeEmailRequest) (models.User, error) {
	if f.changeEmailFn == nil {
		return models.User{}, nil
	}
	return f.changeEmailFn(ctx, id, req)
}

func (f *fakeAuthService) AssignRole(ctx context.Context, id string, role models.Role) (models.User, error) {
	if f.assignRoleFn == nil {
		return models.User{}, nil
	}
	return f.assignRoleFn(ctx, id, role)
}

// fakeUserService implements service.UserService.
type fakeUserService struct {
	createFn  func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	findAllFn func(ctx context.Context) ([]models.User, error)
	findOneFn func(ctx context.Context, id string, caller models.Identity) (models.User, error)
	updateFn  func(ctx context.Context, id string, caller models.Identity, patch models.UserPatch) (models.User, error)
	removeFn  func(ctx context.Context, id string, soft bool, caller models.Identity) error
	recoverFn func(ctx context.Context, email, password string) (models.User, error)
}

func (f *fakeUserService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if f.createFn == nil {
		return models.User{}, nil
	}
	return f.createFn(ctx, req)
}

func (f *fakeUserService) FindAll(ctx context.Context) ([]models.User, error) {
	if f.findAllFn == nil {
		return []models.User{}, nil
	}
	return f.findAllFn(ctx)
}

func (f *fakeUserService) FindOne(ctx context.Context, id string, caller models.Identity) (models.User, error) {
	if f.findOneFn == nil {
		return models.User{}, nil
	}
	return f.findOneFn(ctx, id, caller)
}

func (f *fakeUserService) Update(ctx context.Context, id string, caller models.Identity, patch models.UserPatch) (models.User, error) {
	if f.updateFn == nil {
		return models.User{}, nil
	}
	return f.updateFn(ctx, id, caller, patch)
}

func (f *fakeUserService) Remove(ctx context.Context, id string, soft bool, caller models.Identity) error {
	if f.removeFn == nil {
		return nil
	}
	return f.removeFn(ctx, id, soft, caller)
}

func (f *fakeUserService) Recover(ctx context.Context, email, password string) (models.User, error) {
	if f.recoverFn == nil {
		return models.User{}, nil
	}
	return f.recoverFn(ctx, email, password)
}

// fakeCatalogService implements service.CatalogService.
type fakeCatalogService struct {
	listFn    func(ctx context.Context, query models.CatalogQuery) (models.Page, error)
	detailsFn func(ctx context.Context, query models.CatalogQuery) (models.Details, error)
	searchFn  func(ctx context.Context, query models.CatalogQuery) (models.Page, error)
}

func (f *fakeCatalogService) List(ctx context.Context, query models.CatalogQuery) (models.Page, error) {
	if f.listFn == nil {
		return models.Page{Page: 1, Results: []json.RawMessage{}}, nil
	}
	return f.listFn(ctx, query)
}

func (f *fakeCatalogService) Details(ctx context.Context, query models.CatalogQuery) (models.Details, error) {
	if f.detailsFn == nil {
		return models.Details(`{}`), nil
	}
	return f.detailsFn(ctx, query)
}

func (f *fakeCatalogService) Search(ctx context.Context, query models.CatalogQuery) (models.Page, error) {
	if f.searchFn == nil {
		return models.Page{Page: 1, Results: []json.RawMessage{}}, nil
	}
	return f.searchFn(ctx, query)
}

type fakeHealthService struct {
	resp models.HealthResponse
}

func (f *fakeHealthService) Health(context.Context) models.HealthResponse {
	return f.resp
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testUser  = models.Identity{ID: "user-1", Role: models.RoleUser}
	testAdmin = models.Identity{ID: "admin-1", Role: models.RoleAdmin}
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Env:       config.EnvDevelopment,
			Name:      "streama",
			APIPrefix: "/api/v1",
		},
		Auth: config.Auth{
			CookieName:     "token",
			CookieMaxAge:   24 * time.Hour,
			CookieSameSite: "strict",
		},
		RateLimit: config.RateLimit{Window: time.Minute, Limit: 1000},
		Server:    config.Server{CORSOrigins: []string{"http://localhost:5173"}},
	}
}

// knownTokens resolves userToken and adminToken, rejecting anything else.
func knownTokens(_ context.Context, tokenString string) (models.Identity, error) {
	switch tokenString {
	case userToken:
		return testUser, nil
	case adminToken:
		return testAdmin, nil
	default:
		return models.Identity{}, service.ErrInvalidToken
	}
}

// newTestServices returns fakes for every service with token validation
// wired to knownTokens.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &fakeAuthService{validateTokenFn: knownTokens},
		UserService:    &fakeUserService{},
		CatalogService: &fakeCatalogService{},
		HealthService:  &fakeHealthService{resp: models.HealthResponse{Status: "ok", Service: "streama", Version: "1.0.0"}},
	}
}

func newTestHandler(t *testing.T, svcs *service.Services, cfg *config.StructuredConfig) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = newTestServices()
	}
	if cfg == nil {
		cfg = testConfig()
	}
	return NewHandler(svcs, validators.NewRequestValidator(), cfg, logger.Nop())
}

// serve sends one request through the full router. token, when set, is
// passed as a bearer header.
func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := newTestServices()
	log := logger.Nop()
	h := NewHandler(svcs, validators.NewRequestValidator(), testConfig(), log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.limiter)
}

func TestNewSettings(t *testing.T) {
	cfg := testConfig()
	cfg.App.APIPrefix = "/api/v2/"
	cfg.App.Env = config.EnvProduction
	cfg.Auth.CookieSameSite = "Lax"

	s := newSettings(cfg)

	assert.Equal(t, "/api/v2", s.apiPrefix)
	assert.True(t, s.production)
	assert.Equal(t, http.SameSiteLaxMode, s.cookieSameSite)
	assert.Equal(t, "token", s.cookieName)
}

func TestParseSameSite(t *testing.T) {
	tests := map[string]http.SameSite{
		"strict":  http.SameSiteStrictMode,
		"lax":     http.SameSiteLaxMode,
		"none":    http.SameSiteNoneMode,
		"":        http.SameSiteStrictMode,
		"unknown": http.SameSiteStrictMode,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseSameSite(in), in)
	}
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
	token  string
}

// expectedRoutes lists every route Init must register. Guarded routes are
// called with an admin token, so any 404 or 405 means a missing route.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/api/v1/health", ""},
	{http.MethodPost, "/api/v1/auth/signup", ""},
	{http.MethodPost, "/api/v1/auth/signin", ""},
	{http.MethodPost, "/api/v1/auth/signout", adminToken},
	{http.MethodPatch, "/api/v1/auth/change-password", adminToken},
	{http.MethodPatch, "/api/v1/auth/change-email", adminToken},
	{http.MethodPatch, "/api/v1/auth/user-2", adminToken},
	{http.MethodPost, "/api/v1/users", adminToken},
	{http.MethodGet, "/api/v1/users", adminToken},
	{http.MethodPatch, "/api/v1/users/recover", ""},
	{http.MethodGet, "/api/v1/users/user-2", adminToken},
	{http.MethodPatch, "/api/v1/users/user-2", adminToken},
	{http.MethodDelete, "/api/v1/users/user-2", adminToken},
	{http.MethodGet, "/api/v1/movies/trending", ""},
	{http.MethodGet, "/api/v1/movies/top-rated", ""},
	{http.MethodGet, "/api/v1/movies/new", ""},
	{http.MethodGet, "/api/v1/movies/details?id=1", ""},
	{http.MethodGet, "/api/v1/movies/search?query=alien", ""},
	{http.MethodGet, "/api/v1/tv/airing", ""},
	{http.MethodGet, "/api/v1/tv/details?id=1", ""},
	{http.MethodGet, "/api/v1/tv/search?query=office", ""},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, "", tc.token)

			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404Envelope(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := serve(router, http.MethodGet, "/api/v1/nonexistent", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, models.StatusFail, resp.Status)
	assert.Equal(t, ErrRouteNotFound.Error(), resp.Message)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := serve(router, http.MethodPost, "/api/v1/health", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_RoutesOutsidePrefixAreNotFound(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := serve(router, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := serve(router, http.MethodGet, "/api/v1/health", "", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/auth/signin", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestInit_CORSUnknownOrigin(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// ─────────────────────────────────────────────
// health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := serve(router, http.MethodGet, "/api/v1/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "streama", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
}
