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

	aggMocks "github.com/donaldgifford/voltmarket/internal/aggregate/mocks"
	"github.com/donaldgifford/voltmarket/internal/api/handlers"
	"github.com/donaldgifford/voltmarket/internal/marketplace"
)

func TestListingsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
		wantBody   []string
	}{
		{
			name: "returns normalized listings",
			body: []any{
				map[string]any{
					"id": "l1", "title": "Pack for sale", "itemType": "Battery",
					"listingBatteries": []any{map[string]any{"batteryId": "b1", "price": 900.0}},
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":1`, `"title":"Pack for sale"`, `"battery_count":1`},
		},
		{
			name:       "backend failure is reported, not raised",
			err:        errors.New("timeout"),
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":0`, `"message":"timeout"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := aggMocks.NewMockFetcher(t)
			f.EXPECT().FetchListings(mock.Anything).Return(tt.body, tt.err)

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(newAgg(f)))

			resp := api.Get("/api/v1/listings")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestListingsHandler_List_QueryAndSort(t *testing.T) {
	t.Parallel()

	body := []any{
		map[string]any{
			"id": "l1", "title": "Small pack", "itemType": "Battery",
			"listingBatteries": []any{map[string]any{"batteryId": "b1", "price": 900.0}},
		},
		map[string]any{
			"id": "l2", "title": "VF8 and pack", "itemType": "FullSet", "description": "Garage kept",
			"listingBatteries": []any{map[string]any{"batteryId": "b2", "price": 4000.0}},
			"listingVehicles":  []any{map[string]any{"vehicleId": "v1", "price": 20000.0}},
		},
		map[string]any{
			"id": "l3", "title": "Big pack", "itemType": "Battery",
			"listingBatteries": []any{map[string]any{"batteryId": "b3", "price": 1500.0}},
		},
	}

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []string
	}{
		{name: "unfiltered", wantStatus: http.StatusOK, wantIDs: []string{"l1", "l2", "l3"}},
		{name: "query on title", query: "?q=PACK&sort=price_desc", wantStatus: http.StatusOK, wantIDs: []string{"l2", "l3", "l1"}},
		{name: "query on description", query: "?q=garage", wantStatus: http.StatusOK, wantIDs: []string{"l2"}},
		{name: "query on item count", query: "?q=1+vehicle", wantStatus: http.StatusOK, wantIDs: []string{"l2"}},
		{name: "cheapest first", query: "?sort=price_asc", wantStatus: http.StatusOK, wantIDs: []string{"l1", "l3", "l2"}},
		{name: "unknown sort", query: "?sort=newest", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := aggMocks.NewMockFetcher(t)
			f.EXPECT().FetchListings(mock.Anything).Return(body, nil).Maybe()

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(newAgg(f)))

			resp := api.Get("/api/v1/listings" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantIDs == nil {
				return
			}

			var got struct {
				Listings []struct {
					ID string `json:"id"`
				} `json:"listings"`
				Total int `json:"total"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			ids := make([]string, 0, len(got.Listings))
			for _, l := range got.Listings {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), got.Total)
		})
	}
}

func TestListingsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*aggMocks.MockFetcher)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "resolves line items",
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchEntityByID(mock.Anything, marketplace.ResourceListing, "l1").
					Return(map[string]any{"result": map[string]any{
						"id": "l1", "title": "Scooter and pack", "itemType": "FullSet",
						"listingBatteries": []any{map[string]any{"batteryId": "b1"}},
						"listingVehicles":  []any{map[string]any{"vehicleId": "v1"}},
					}}, nil)
				m.EXPECT().FetchEntityByID(mock.Anything, marketplace.ResourceBattery, "b1").
					Return(map[string]any{"id": "b1", "brand": "CATL"}, nil)
				m.EXPECT().FetchEntityByID(mock.Anything, marketplace.ResourceVehicle, "v1").
					Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"title":"Scooter and pack"`,
				`"id":"b1"`,
				`"vehicles":[]`,
				`"source":"vehicle:v1"`,
			},
		},
		{
			name: "failure envelope is not found",
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchEntityByID(mock.Anything, marketplace.ResourceListing, "l1").
					Return(map[string]any{"isSuccess": false, "errorMessage": "listing does not exist"}, nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   []string{"listing does not exist"},
		},
		{
			name: "transport error is a bad gateway",
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchEntityByID(mock.Anything, marketplace.ResourceListing, "l1").
					Return(nil, errors.New("dial tcp: i/o timeout"))
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{"fetching listing l1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := aggMocks.NewMockFetcher(t)
			tt.setupMock(f)

			_, api := humatest.New(t)
			handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(newAgg(f)))

			resp := api.Get("/api/v1/listings/l1")
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
