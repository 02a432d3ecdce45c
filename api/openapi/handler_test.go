package openapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/voltmarket/api/openapi"
	"github.com/donaldgifford/voltmarket/internal/api/handlers"
	"github.com/donaldgifford/voltmarket/pkg/suggest"
)

func newServer() *echo.Echo {
	e := echo.New()
	cfg := huma.DefaultConfig("VoltMarket API", "test")
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	api := humaecho.New(e, cfg)
	openapi.RegisterRoutes(e, api)
	// Registered after the docs routes on purpose.
	handlers.RegisterSuggestRoutes(api, handlers.NewSuggestHandler(suggest.NewHeuristicSuggester(), nil))
	return e
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := newServer()

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantType     string
		wantContains string
	}{
		{
			name:         "json document",
			path:         "/swagger/openapi.json",
			wantStatus:   http.StatusOK,
			wantType:     "application/json",
			wantContains: `"/api/v1/price-suggestion"`,
		},
		{
			name:         "yaml document",
			path:         "/swagger/openapi.yaml",
			wantStatus:   http.StatusOK,
			wantType:     "application/yaml",
			wantContains: "title: VoltMarket API",
		},
		{
			name:         "swagger ui",
			path:         "/swagger/index.html",
			wantStatus:   http.StatusOK,
			wantType:     "text/html",
			wantContains: "SwaggerUIBundle",
		},
		{
			name:       "redirect",
			path:       "/swagger",
			wantStatus: http.StatusMovedPermanently,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tt.wantType)
			}
			if tt.wantContains != "" {
				assert.Contains(t, rec.Body.String(), tt.wantContains)
			}
		})
	}
}
