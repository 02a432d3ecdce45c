package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/voltmarket/internal/aggregate"
	aggMocks "github.com/donaldgifford/voltmarket/internal/aggregate/mocks"
	"github.com/donaldgifford/voltmarket/internal/api/handlers"
	"github.com/donaldgifford/voltmarket/pkg/logger"
)

func newAgg(f aggregate.Fetcher) *aggregate.Aggregator {
	return aggregate.New(f, aggregate.WithLogger(logger.Discard()))
}

func batteriesBody() any {
	return map[string]any{"isSuccess": true, "result": []any{
		map[string]any{"id": "b1", "brand": "CATL", "model": "LFP75", "price": 300.0, "capacity": 75.0},
		map[string]any{"id": "b2", "brand": "BYD", "model": "Blade", "price": 100.0, "capacity": 60.0},
	}}
}

func vehiclesBody() any {
	return map[string]any{"data": []any{
		map[string]any{"id": "v1", "brand": "VinFast", "model": "VF8", "price": 200.0},
	}}
}

type feedBody struct {
	Items []struct {
		ID   string `json:"id"`
		Kind string `json:"kind"`
	} `json:"items"`
	Total  int                     `json:"total"`
	Errors []aggregate.SourceError `json:"errors"`
}

func (b feedBody) ids() []string {
	out := make([]string, 0, len(b.Items))
	for _, it := range b.Items {
		out = append(out, it.ID)
	}
	return out
}

func TestFeedHandler_Feed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		fetch      bool
		vehErr     error
		wantStatus int
		wantIDs    []string
		wantErrs   int
	}{
		{
			name:       "no params returns everything",
			fetch:      true,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"b1", "b2", "v1"},
		},
		{
			name:       "kind filter",
			query:      "?kind=vehicle",
			fetch:      true,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"v1"},
		},
		{
			name:       "text search",
			query:      "?q=catl",
			fetch:      true,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"b1"},
		},
		{
			name:       "price ascending",
			query:      "?sort=price_asc",
			fetch:      true,
			wantStatus: http.StatusOK,
			wantIDs:    []string{"b2", "v1", "b1"},
		},
		{
			name:       "failed source is reported",
			fetch:      true,
			vehErr:     errors.New("connection reset"),
			wantStatus: http.StatusOK,
			wantIDs:    []string{"b1", "b2"},
			wantErrs:   1,
		},
		{
			name:       "unknown sort is rejected",
			query:      "?sort=cheapest",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := aggMocks.NewMockFetcher(t)
			if tt.fetch {
				f.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)
				if tt.vehErr != nil {
					f.EXPECT().FetchVehicles(mock.Anything).Return(nil, tt.vehErr)
				} else {
					f.EXPECT().FetchVehicles(mock.Anything).Return(vehiclesBody(), nil)
				}
			}

			_, api := humatest.New(t)
			handlers.RegisterFeedRoutes(api, handlers.NewFeedHandler(newAgg(f)))

			resp := api.Get("/api/v1/feed" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body feedBody
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.wantIDs, body.ids())
			assert.Equal(t, len(tt.wantIDs), body.Total)
			assert.Len(t, body.Errors, tt.wantErrs)
		})
	}
}

func TestFeedHandler_Entities(t *testing.T) {
	t.Parallel()

	f := aggMocks.NewMockFetcher(t)
	f.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)

	_, api := humatest.New(t)
	handlers.RegisterFeedRoutes(api, handlers.NewFeedHandler(newAgg(f)))

	resp := api.Get("/api/v1/entities/battery")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"title":"CATL LFP75"`)
	assert.NotContains(t, resp.Body.String(), `"error"`)

	resp = api.Get("/api/v1/entities/charger")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
