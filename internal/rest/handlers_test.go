package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/daniilsolovey/content-admin/docs"
	"github.com/daniilsolovey/content-admin/internal/cache"
	"github.com/daniilsolovey/content-admin/internal/content"
	"github.com/daniilsolovey/content-admin/internal/memdb"
	"github.com/daniilsolovey/content-admin/internal/settings"
)

const testSecret = "test-secret"

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clock() time.Time { return testNow }

func newTestHandler() *Handler {
	logger := noOpLogger()
	repo := memdb.New().WithClock(clock)
	c := cache.NewMemory(time.Minute)

	engine := content.NewEngine(repo, c, logger).WithClock(clock)
	return NewHandler(
		engine,
		content.NewSessions(engine, 16),
		content.NewCoordinator(repo, c, logger),
		settings.NewService(settings.NewMemoryStore(), logger).WithClock(clock),
		logger,
	)
}

func do(t *testing.T, e *echo.Echo, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func ptr[T any](v T) *T { return &v }

func bannerInput(title string) ContentInput {
	return ContentInput{
		Status:      ptr("active"),
		Title:       ptr(title),
		Description: ptr("Spring sale on lodging"),
		Type:        ptr("main"),
		Position:    ptr("top"),
		ImagePath:   ptr("/images/spring.png"),
		Priority:    ptr(1),
		StartDate:   ptr(testNow.AddDate(0, 0, -1)),
		EndDate:     ptr(testNow.AddDate(0, 0, 10)),
	}
}

func TestHandler_ContentLifecycle(t *testing.T) {
	e := newTestHandler().RegisterRoutes(nil)
	admin := map[string]string{AdminHeader: "alice"}

	rec := do(t, e, http.MethodPost, "/api/banners", bannerInput("Spring sale"), admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[Content](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.CreatedBy)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, "active", created.EffectiveStatus)
	assert.Equal(t, "Active", created.StatusLabel)
	require.NotNil(t, created.Title)
	assert.Equal(t, "Spring sale", *created.Title)
	assert.Nil(t, created.Question)

	rec = do(t, e, http.MethodGet, "/api/banners?search=spring", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	list := decode[ListResponse](t, rec)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 0, list.Page)
	assert.Equal(t, content.DefaultPageSize, list.PerPage)
	assert.Equal(t, 1, list.TotalPages)
	require.Len(t, list.Items, 1)
	assert.Equal(t, created.ID, list.Items[0].ID)

	rec = do(t, e, http.MethodPut, "/api/banners/"+created.ID, ContentInput{Title: ptr("Summer sale")}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[Content](t, rec)
	assert.Equal(t, "Summer sale", *updated.Title)
	assert.Equal(t, "alice", updated.CreatedBy)
	assert.Equal(t, "Spring sale on lodging", *updated.Description)

	rec = do(t, e, http.MethodGet, "/api/banners/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Summer sale", *decode[Content](t, rec).Title)

	rec = do(t, e, http.MethodDelete, "/api/banners/"+created.ID, nil, admin)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/banners/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/banners", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[ListResponse](t, rec).Total)
}

func TestHandler_CreateWithoutActor(t *testing.T) {
	e := newTestHandler().RegisterRoutes(nil)

	rec := do(t, e, http.MethodPost, "/api/faqs", ContentInput{
		Question: ptr("How do I pay?"),
		Answer:   ptr("By card."),
		Category: ptr("payment"),
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[Content](t, rec)
	assert.Equal(t, content.SystemActor, created.CreatedBy)
	assert.Equal(t, "draft", created.Status)
	assert.Equal(t, "draft", created.EffectiveStatus)
	require.NotNil(t, created.CategoryLabel)
	assert.Equal(t, "Payment", *created.CategoryLabel)
}

func TestHandler_Errors(t *testing.T) {
	e := newTestHandler().RegisterRoutes(nil)

	tests := []struct {
		name       string
		method     string
		target     string
		body       any
		wantStatus int
		wantFields []string
	}{
		{
			name:       "unknown content type",
			method:     http.MethodGet,
			target:     "/api/coupons",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown item",
			method:     http.MethodGet,
			target:     "/api/notices/missing",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "page size over limit",
			method:     http.MethodGet,
			target:     "/api/faqs?limit=101",
			wantStatus: http.StatusUnprocessableEntity,
			wantFields: []string{"pageSize"},
		},
		{
			name:       "filter of another type",
			method:     http.MethodGet,
			target:     "/api/faqs?position=top",
			wantStatus: http.StatusUnprocessableEntity,
			wantFields: []string{content.FilterPosition},
		},
		{
			name:       "unknown status",
			method:     http.MethodGet,
			target:     "/api/terms?status=scheduled",
			wantStatus: http.StatusUnprocessableEntity,
			wantFields: []string{content.FilterStatus},
		},
		{
			name:       "malformed page",
			method:     http.MethodGet,
			target:     "/api/banners?page=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid banner",
			method:     http.MethodPost,
			target:     "/api/banners",
			body:       ContentInput{Title: ptr("No image")},
			wantStatus: http.StatusUnprocessableEntity,
			wantFields: []string{"description", "image", "startDate", "endDate"},
		},
		{
			name:       "invalid term version",
			method:     http.MethodPost,
			target:     "/api/terms",
			body:       ContentInput{Title: ptr("Terms"), Content: ptr("text"), Version: ptr("v1"), EffectiveDate: ptr(testNow)},
			wantStatus: http.StatusUnprocessableEntity,
			wantFields: []string{"version"},
		},
		{
			name:       "update of missing item",
			method:     http.MethodPut,
			target:     "/api/faqs/missing",
			body:       ContentInput{Question: ptr("q")},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "delete of missing item",
			method:     http.MethodDelete,
			target:     "/api/faqs/missing",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.target, tt.body, nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			resp := decode[ErrorResponse](t, rec)
			assert.NotEmpty(t, resp.Error)
			for _, f := range tt.wantFields {
				assert.Contains(t, resp.Fields, f)
			}
		})
	}
}

func TestHandler_ListFilters(t *testing.T) {
	e := newTestHandler().RegisterRoutes(nil)

	scheduled := bannerInput("Autumn sale")
	scheduled.Priority = ptr(2)
	scheduled.StartDate = ptr(testNow.AddDate(0, 1, 0))
	scheduled.EndDate = ptr(testNow.AddDate(0, 2, 0))
	ended := bannerInput("Winter sale")
	ended.Priority = ptr(3)
	ended.StartDate = ptr(testNow.AddDate(0, -2, 0))
	ended.EndDate = ptr(testNow.AddDate(0, -1, 0))

	for _, in := range []ContentInput{bannerInput("Spring sale"), scheduled, ended} {
		rec := do(t, e, http.MethodPost, "/api/banners", in, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	tests := []struct {
		query      string
		wantTitles []string
	}{
		{query: "effectiveStatus=scheduled", wantTitles: []string{"Autumn sale"}},
		{query: "effectiveStatus=ended", wantTitles: []string{"Winter sale"}},
		{query: "status=active&search=SALE&limit=1&page=2", wantTitles: []string{"Winter sale"}},
		{query: "search=nothing", wantTitles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := do(t, e, http.MethodGet, "/api/banners?"+tt.query, nil, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			titles := []string{}
			for _, it := range decode[ListResponse](t, rec).Items {
				titles = append(titles, *it.Title)
			}
			assert.ElementsMatch(t, tt.wantTitles, titles)
		})
	}
}

func TestHandler_SummaryMetaPreview(t *testing.T) {
	e := newTestHandler().RegisterRoutes(nil)

	rec := do(t, e, http.MethodPost, "/api/terms", ContentInput{
		Status:        ptr("active"),
		Title:         ptr("Terms of service"),
		Content:       ptr("Article 1\nPurpose <b>bold</b>"),
		Category:      ptr("service"),
		Version:       ptr("1.0"),
		EffectiveDate: ptr(testNow),
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	term := decode[Content](t, rec)

	rec = do(t, e, http.MethodGet, "/api/terms/summary", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sum := decode[Summary](t, rec)
	assert.Equal(t, "terms", sum.Type)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.ByStatus["active"])

	rec = do(t, e, http.MethodGet, "/api/banners/meta", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	meta := decode[Meta](t, rec)
	assert.Equal(t, "Banner", meta.Label)
	assert.Contains(t, meta.Filters, content.FilterEffectiveStatus)
	assert.NotEmpty(t, meta.Positions)
	assert.Empty(t, meta.Categories)

	rec = do(t, e, http.MethodGet, "/api/terms/"+term.ID+"/preview", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	preview := decode[TermPreview](t, rec)
	assert.Equal(t, "1.0", preview.Version)
	assert.Contains(t, preview.HTML, "<br")
	assert.NotContains(t, preview.HTML, "<b>")

	rec = do(t, e, http.MethodGet, "/api/terms/missing/preview", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Auth(t *testing.T) {
	e := newTestHandler().WithAuthSecret(testSecret).RegisterRoutes(nil)

	sign := func(secret string, claims Claims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return "Bearer " + s
	}
	valid := Claims{
		Name:             "alice",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	expired := Claims{
		Name:             "alice",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
	}
	subjectOnly := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "bob"}}

	body := ContentInput{Question: ptr("q"), Answer: ptr("a")}

	tests := []struct {
		name        string
		headers     map[string]string
		wantStatus  int
		wantCreator string
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "admin header ignored", headers: map[string]string{AdminHeader: "mallory"}, wantStatus: http.StatusUnauthorized},
		{name: "not a bearer token", headers: map[string]string{echo.HeaderAuthorization: "Basic abc"}, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", headers: map[string]string{echo.HeaderAuthorization: sign("other", valid)}, wantStatus: http.StatusUnauthorized},
		{name: "expired", headers: map[string]string{echo.HeaderAuthorization: sign(testSecret, expired)}, wantStatus: http.StatusUnauthorized},
		{name: "valid", headers: map[string]string{echo.HeaderAuthorization: sign(testSecret, valid)}, wantStatus: http.StatusCreated, wantCreator: "alice"},
		{name: "subject claim", headers: map[string]string{echo.HeaderAuthorization: sign(testSecret, subjectOnly)}, wantStatus: http.StatusCreated, wantCreator: "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/api/faqs", body, tt.headers)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCreator != "" {
				assert.Equal(t, tt.wantCreator, decode[Content](t, rec).CreatedBy)
			}
		})
	}

	t.Run("reads stay public", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/faqs", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_Settings(t *testing.T) {
	e := newTestHandler().RegisterRoutes(nil)

	rec := do(t, e, http.MethodGet, "/api/settings/site", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "KRW", decode[Site](t, rec).DefaultCurrency)

	rec = do(t, e, http.MethodPut, "/api/settings/site", SiteInput{ContactEmail: ptr("not-an-email")}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	assert.Contains(t, decode[ErrorResponse](t, rec).Fields, "contactEmail")

	rec = do(t, e, http.MethodPut, "/api/settings/site", SiteInput{SiteName: ptr("Stay Admin"), DefaultCurrency: ptr("usd")}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	site := decode[Site](t, rec)
	assert.Equal(t, "Stay Admin", site.SiteName)
	assert.Equal(t, "USD", site.DefaultCurrency)

	rec = do(t, e, http.MethodGet, "/api/settings/payments", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]Gateway](t, rec), 4)

	rec = do(t, e, http.MethodPut, "/api/settings/payments/paypal", GatewayInput{Enabled: ptr(true)}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPut, "/api/settings/payments/card", GatewayInput{Enabled: ptr(true)}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodPut, "/api/settings/payments/card", GatewayInput{
		Enabled:    ptr(true),
		MerchantID: ptr("M-100"),
		APIKey:     ptr("sk_live_12345678"),
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	g := decode[Gateway](t, rec)
	assert.True(t, g.Enabled)
	assert.Equal(t, "****5678", g.APIKey)
}

func TestHandler_Ops(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		e := newTestHandler().RegisterRoutes(nil)
		rec := do(t, e, http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health with failing ping", func(t *testing.T) {
		h := newTestHandler().WithHealthCheck(func(context.Context) error { return errors.New("connection refused") })
		rec := do(t, h.RegisterRoutes(nil), http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("swagger doc", func(t *testing.T) {
		e := newTestHandler().RegisterRoutes(nil)
		rec := do(t, e, http.MethodGet, "/swagger/doc.json", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"/api/{type}"`)
	})

	t.Run("swagger doc covers every api route", func(t *testing.T) {
		e := newTestHandler().RegisterRoutes(nil)
		rec := do(t, e, http.MethodGet, "/swagger/doc.json", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var doc struct {
			Paths map[string]map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

		documented := 0
		for _, r := range e.Routes() {
			if strings.Contains(r.Path, "*") || (!strings.HasPrefix(r.Path, apiPrefix) && r.Path != healthPath) {
				continue
			}
			switch r.Method {
			case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
			default:
				continue
			}

			_, ok := doc.Paths[swaggerRoute(r.Path)][strings.ToLower(r.Method)]
			assert.True(t, ok, "%s %s is not documented", r.Method, r.Path)
			documented++
		}
		assert.Equal(t, 13, documented)
	})

	t.Run("rpc mount", func(t *testing.T) {
		rpc := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name, _ := content.ActorFrom(r.Context())
			_, _ = io.WriteString(w, name)
		})
		e := newTestHandler().RegisterRoutes(rpc)
		rec := do(t, e, http.MethodPost, "/v1/rpc", map[string]string{}, map[string]string{AdminHeader: "carol"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "carol", rec.Body.String())
	})
}

func TestRespondError(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: &content.ValidationError{Fields: map[string]string{"title": "is required"}}, wantStatus: http.StatusUnprocessableEntity},
		{err: &content.NotFoundError{Type: content.TypeFAQ, ID: "x"}, wantStatus: http.StatusNotFound},
		{err: content.ErrSuperseded, wantStatus: http.StatusConflict},
		{err: content.ErrConflict, wantStatus: http.StatusConflict},
		{err: &content.RepositoryError{Op: "list", Err: content.ErrTimeout}, wantStatus: http.StatusGatewayTimeout},
		{err: &content.RepositoryError{Op: "list", Err: errors.New("connection reset")}, wantStatus: http.StatusBadGateway},
		{err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, h.respondError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

var routeParam = regexp.MustCompile(`:(\w+)`)

// swaggerRoute turns an echo path like /api/:type/:id into /api/{type}/{id}.
func swaggerRoute(path string) string {
	return routeParam.ReplaceAllString(path, "{$1}")
}
