package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/voltmarket/internal/api/handlers"
	"github.com/donaldgifford/voltmarket/pkg/logger"
	"github.com/donaldgifford/voltmarket/pkg/suggest"
	suggestMocks "github.com/donaldgifford/voltmarket/pkg/suggest/mocks"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func TestSuggestHandler_Suggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		answer     any
		err        error
		call       bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "chat answer with grouped digits",
			body:       map[string]any{"kind": "vehicle", "title": "VinFast VF8", "mileage": 12000},
			answer:     map[string]any{"content": "About 12.500.000 VND", "model": "mistral"},
			call:       true,
			wantStatus: http.StatusOK,
			wantBody:   `"suggested_price":12500000`,
		},
		{
			name:       "answer without a price",
			body:       map[string]any{"kind": "battery", "title": "CATL LFP75"},
			answer:     map[string]any{"content": "I cannot tell."},
			call:       true,
			wantStatus: http.StatusOK,
			wantBody:   `"suggested_price":null`,
		},
		{
			name:       "suggester failure",
			body:       map[string]any{"kind": "battery", "title": "CATL LFP75"},
			err:        assert.AnError,
			call:       true,
			wantStatus: http.StatusBadGateway,
			wantBody:   "price suggestion failed",
		},
		{
			name:       "unknown kind is rejected before calling",
			body:       map[string]any{"kind": "charger", "title": "Wallbox"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "empty title is rejected",
			body:       map[string]any{"kind": "battery", "title": ""},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := suggestMocks.NewMockSuggester(t)
			if tt.call {
				s.EXPECT().Name().Return("ollama")
				s.EXPECT().Suggest(mock.Anything, mock.MatchedBy(func(r suggest.Request) bool {
					return r.Title == tt.body["title"]
				})).Return(tt.answer, tt.err).Once()
			}

			_, api := humatest.New(t)
			handlers.RegisterSuggestRoutes(api, handlers.NewSuggestHandler(s, logger.Discard()))

			resp := api.Post("/api/v1/price-suggestion", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSuggestHandler_Heuristic(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterSuggestRoutes(api, handlers.NewSuggestHandler(suggest.NewHeuristicSuggester(), logger.Discard()))

	resp := api.Post("/api/v1/price-suggestion", map[string]any{
		"kind":  "battery",
		"title": "CATL LFP75",
		"specs": []domain.Spec{{Field: domain.SpecHealth, Value: 95.0, Unit: "%"}},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"suggested_price":27000`)
	assert.Contains(t, resp.Body.String(), `"backend":"heuristic"`)
}
