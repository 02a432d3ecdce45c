package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	aggMocks "github.com/donaldgifford/voltmarket/internal/aggregate/mocks"
	"github.com/donaldgifford/voltmarket/internal/api/handlers"
	"github.com/donaldgifford/voltmarket/pkg/feed"
)

func TestCompareHandler_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*aggMocks.MockFetcher)
		wantStatus int
		wantBody   string
	}{
		{
			name: "batteries by kind",
			body: map[string]any{"kind": "battery", "ids": []string{"b2", "b1"}},
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "single selection is rejected",
			body: map[string]any{"kind": "battery", "ids": []string{"b1"}},
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "insufficient selection",
		},
		{
			name: "mixed kinds from the feed are rejected",
			body: map[string]any{"ids": []string{"b1", "v1"}},
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)
				m.EXPECT().FetchVehicles(mock.Anything).Return(vehiclesBody(), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "mixes entity kinds",
		},
		{
			name: "unknown id",
			body: map[string]any{"kind": "battery", "ids": []string{"b1", "b9"}},
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "entity not found",
		},
		{
			name: "id shared by a battery and a vehicle needs a kind",
			body: map[string]any{"ids": []string{"b1", "b2"}},
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)
				m.EXPECT().FetchVehicles(mock.Anything).
					Return([]any{map[string]any{"id": "b1", "brand": "Kia", "model": "EV6"}}, nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "more than one kind",
		},
		{
			name: "failed source",
			body: map[string]any{"kind": "battery", "ids": []string{"b1", "b2"}},
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).
					Return(map[string]any{"isSuccess": false, "errorMessage": "maintenance"}, nil)
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "maintenance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := aggMocks.NewMockFetcher(t)
			tt.setupMock(f)

			_, api := humatest.New(t)
			handlers.RegisterCompareRoutes(api, handlers.NewCompareHandler(newAgg(f)))

			resp := api.Post("/api/v1/compare", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestCompareHandler_Table(t *testing.T) {
	t.Parallel()

	f := aggMocks.NewMockFetcher(t)
	f.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)

	_, api := humatest.New(t)
	handlers.RegisterCompareRoutes(api, handlers.NewCompareHandler(newAgg(f)))

	resp := api.Post("/api/v1/compare", map[string]any{"kind": "battery", "ids": []string{"b2", "b1"}})
	require.Equal(t, http.StatusOK, resp.Code)

	var table feed.Table
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &table))
	require.Len(t, table.Columns, 2)
	assert.Equal(t, "b2", table.Columns[0].ID)
	assert.Equal(t, "b1", table.Columns[1].ID)

	rows := map[string][]string{}
	for _, r := range table.Rows {
		rows[r.Key] = r.Cells
	}
	assert.Equal(t, []string{"BYD", "CATL"}, rows["brand"])
}
