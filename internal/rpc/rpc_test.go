package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"

	"github.com/daniilsolovey/content-admin/internal/cache"
	"github.com/daniilsolovey/content-admin/internal/content"
	"github.com/daniilsolovey/content-admin/internal/memdb"
	"github.com/daniilsolovey/content-admin/internal/settings"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	} `json:"error"`
}

func newTestServer() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memdb.New().WithClock(clock)
	c := cache.NewMemory(time.Minute)
	engine := content.NewEngine(repo, c, logger).WithClock(clock)

	return New(
		logger,
		engine,
		content.NewSessions(engine, 8),
		content.NewCoordinator(repo, c, logger),
		settings.NewService(settings.NewMemoryStore(), logger).WithClock(clock),
	)
}

func call(t *testing.T, srv http.Handler, ctx context.Context, method string, params any) rpcResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/rpc", bytes.NewReader(body)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func result[T any](t *testing.T, resp rpcResponse) T {
	t.Helper()
	require.Nil(t, resp.Error, "unexpected rpc error")

	var v T
	require.NoError(t, json.Unmarshal(resp.Result, &v))
	return v
}

func ptr[T any](v T) *T { return &v }

func TestContentService(t *testing.T) {
	srv := newTestServer()
	ctx := content.WithActor(context.Background(), "alice")

	notice := ContentInput{
		Status:      ptr("published"),
		Title:       ptr("Maintenance on Sunday"),
		Content:     ptr("<p>Reservations pause <script>x()</script>at 2am</p>"),
		Category:    ptr("maintenance"),
		IsImportant: ptr(true),
		StartDate:   ptr(testNow.AddDate(0, 0, -1)),
		EndDate:     ptr(testNow.AddDate(0, 0, 1)),
	}

	created := result[Content](t, call(t, srv, ctx, "content.create", map[string]any{
		"contentType": "notices",
		"item":        notice,
	}))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.CreatedBy)
	assert.Equal(t, "active", created.EffectiveStatus)
	assert.NotContains(t, created.Content, "<script>")

	page := result[Page](t, call(t, srv, ctx, "content.list", map[string]any{
		"req": ListRequest{Type: "notices", Filters: map[string]string{"isImportant": "true"}},
	}))
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, created.ID, page.Items[0].ID)

	got := result[Content](t, call(t, srv, ctx, "content.get", []any{"notices", created.ID}))
	assert.Equal(t, "Maintenance on Sunday", got.Title)

	updated := result[Content](t, call(t, srv, ctx, "content.update", map[string]any{
		"contentType": "notices",
		"id":          created.ID,
		"item":        ContentInput{Title: ptr("Maintenance on Monday")},
	}))
	assert.Equal(t, "Maintenance on Monday", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	sum := result[Summary](t, call(t, srv, ctx, "content.summary", map[string]any{"contentType": "notices"}))
	assert.Equal(t, 1, sum.ByStatus["active"])

	deleted := result[bool](t, call(t, srv, ctx, "content.delete", map[string]any{"contentType": "notices", "id": created.ID}))
	assert.True(t, deleted)

	resp := call(t, srv, ctx, "content.get", map[string]any{"contentType": "notices", "id": created.ID})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)
}

func TestContentService_Errors(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	tests := []struct {
		name       string
		method     string
		params     any
		wantCode   int
		wantFields []string
	}{
		{
			name:     "unknown type",
			method:   "content.list",
			params:   map[string]any{"req": ListRequest{Type: "coupons"}},
			wantCode: 400,
		},
		{
			name:       "page size over limit",
			method:     "content.list",
			params:     map[string]any{"req": ListRequest{Type: "faqs", PageSize: 500}},
			wantCode:   422,
			wantFields: []string{"pageSize"},
		},
		{
			name:   "invalid faq",
			method: "content.create",
			params: map[string]any{
				"contentType": "faqs",
				"item":        ContentInput{Question: ptr("q"), Order: ptr(-1)},
			},
			wantCode:   422,
			wantFields: []string{"answer", "order"},
		},
		{
			name:     "missing item",
			method:   "content.delete",
			params:   map[string]any{"contentType": "terms", "id": "missing"},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, srv, ctx, tt.method, tt.params)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			for _, f := range tt.wantFields {
				assert.Contains(t, resp.Error.Data, f)
			}
		})
	}
}

func TestSettingsService(t *testing.T) {
	srv := newTestServer()
	ctx := context.Background()

	site := result[Site](t, call(t, srv, ctx, "settings.site", nil))
	assert.Equal(t, "KRW", site.DefaultCurrency)

	site = result[Site](t, call(t, srv, ctx, "settings.updateSite", map[string]any{
		"site": SiteInput{MaintenanceMode: ptr(true)},
	}))
	assert.True(t, site.MaintenanceMode)
	assert.Equal(t, testNow, site.UpdatedAt.UTC())

	gateways := result[[]Gateway](t, call(t, srv, ctx, "settings.gateways", nil))
	assert.Len(t, gateways, 4)

	g := result[Gateway](t, call(t, srv, ctx, "settings.updateGateway", map[string]any{
		"id":      settings.GatewayTossPay,
		"gateway": GatewayInput{APIKey: ptr("toss_secret_9999")},
	}))
	assert.Equal(t, "****9999", g.APIKey)

	resp := call(t, srv, ctx, "settings.updateGateway", map[string]any{
		"id":      "paypal",
		"gateway": GatewayInput{Enabled: ptr(true)},
	})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)
}

func TestServices_DescribeEveryMethod(t *testing.T) {
	srv := newTestServer()

	services := map[string]interface {
		SMD() smd.ServiceInfo
	}{
		"content":  ContentService{},
		"settings": SettingsService{},
	}

	for namespace, svc := range services {
		t.Run(namespace, func(t *testing.T) {
			described := svc.SMD().Methods

			typ := reflect.TypeOf(svc)
			for i := 0; i < typ.NumMethod(); i++ {
				name := typ.Method(i).Name
				if name == "SMD" || name == "Invoke" {
					continue
				}
				assert.Contains(t, described, name, "method %s is not described", name)
			}
			assert.Len(t, described, typ.NumMethod()-2)

			for name := range described {
				body, err := json.Marshal(map[string]any{
					"jsonrpc": "2.0",
					"id":      1,
					"method":  namespace + "." + strings.ToLower(name),
					"params":  map[string]any{},
				})
				require.NoError(t, err)

				req := httptest.NewRequest(http.MethodPost, "/v1/rpc", bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				rec := httptest.NewRecorder()
				srv.ServeHTTP(rec, req)

				var resp struct {
					Error *struct {
						Code int `json:"code"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
				if resp.Error != nil {
					assert.NotEqual(t, zenrpc.MethodNotFound, resp.Error.Code, "%s is not dispatched", name)
				}
			}
		})
	}
}
