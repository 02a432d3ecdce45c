package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	aggMocks "github.com/donaldgifford/voltmarket/internal/aggregate/mocks"
	"github.com/donaldgifford/voltmarket/internal/api/handlers"
	handlerMocks "github.com/donaldgifford/voltmarket/internal/api/handlers/mocks"
	"github.com/donaldgifford/voltmarket/internal/marketplace"
	"github.com/donaldgifford/voltmarket/pkg/compose"
	"github.com/donaldgifford/voltmarket/pkg/logger"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func batteryForm(batteryID string) map[string]any {
	return map[string]any{
		"title":    "  Used LFP pack ",
		"itemType": "Battery",
		"listingBatteries": []any{
			map[string]any{"batteryId": batteryID, "health": 92, "price": "1500", "imgs": "a.jpg,b.jpg"},
		},
	}
}

func newComposeAPI(t *testing.T, f *aggMocks.MockFetcher, w *handlerMocks.MockListingWriter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterComposeRoutes(api, handlers.NewComposeHandler(newAgg(f), w, logger.Discard()))
	return api
}

func TestComposeHandler_Compose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*aggMocks.MockFetcher)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "valid battery listing",
			body: batteryForm("b1"),
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"title":"Used LFP pack"`,
				`"itemType":"Battery"`,
				`"batteryId":"b1"`,
				`"price":1500`,
				`"imgs":"a.jpg,b.jpg"`,
				`"listingVehicles":[]`,
			},
		},
		{
			name:       "missing title",
			body:       map[string]any{"itemType": "Vehicle"},
			setupMock:  func(*aggMocks.MockFetcher) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"title is required"},
		},
		{
			name: "battery not in the available list",
			body: batteryForm("b9"),
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"listingBatteries[0]", "not in the available list"},
		},
		{
			name: "vehicle line item on a battery listing",
			body: map[string]any{
				"title":           "Pack",
				"itemType":        "Battery",
				"listingVehicles": []any{map[string]any{"vehicleId": "v1", "odometer": 10, "batteryHealth": 90}},
			},
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchVehicles(mock.Anything).Return(vehiclesBody(), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"cannot hold vehicle line items"},
		},
		{
			name:       "unknown item type",
			body:       map[string]any{"title": "Pack", "itemType": "Charger"},
			setupMock:  func(*aggMocks.MockFetcher) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"unknown item type"},
		},
		{
			name: "available list unavailable",
			body: batteryForm("b1"),
			setupMock: func(m *aggMocks.MockFetcher) {
				m.EXPECT().FetchBatteries(mock.Anything).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{"loading available battery entities"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := aggMocks.NewMockFetcher(t)
			tt.setupMock(f)
			api := newComposeAPI(t, f, handlerMocks.NewMockListingWriter(t))

			resp := api.Post("/api/v1/listings/compose", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestComposeHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		result     any
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			result:     map[string]any{"isSuccess": true, "result": map[string]any{"id": "l42"}},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"l42"`,
		},
		{
			name:       "failure envelope on 200",
			result:     map[string]any{"isSuccess": false, "errorMessage": "duplicate listing"},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "duplicate listing",
		},
		{
			name:       "backend rejects with 400",
			result:     map[string]any{"isSuccess": false, "errorMessage": "seller not verified"},
			err:        &marketplace.APIError{Status: http.StatusBadRequest},
			wantStatus: http.StatusBadRequest,
			wantBody:   "seller not verified",
		},
		{
			name:       "backend down",
			err:        assert.AnError,
			wantStatus: http.StatusBadGateway,
			wantBody:   assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := aggMocks.NewMockFetcher(t)
			f.EXPECT().FetchBatteries(mock.Anything).Return(batteriesBody(), nil)

			w := handlerMocks.NewMockListingWriter(t)
			w.EXPECT().
				SubmitListing(mock.Anything, mock.MatchedBy(func(p any) bool {
					payload, ok := p.([]compose.Payload)
					return ok && len(payload) == 1 &&
						payload[0].ItemType == domain.ItemBattery &&
						len(payload[0].ListingBatteries) == 1 &&
						payload[0].ListingBatteries[0].BatteryID == "b1"
				})).
				Return(tt.result, tt.err).
				Once()

			api := newComposeAPI(t, f, w)

			resp := api.Post("/api/v1/listings", batteryForm("b1"))
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestComposeHandler_Create_InvalidDraftIsNotSubmitted(t *testing.T) {
	t.Parallel()

	api := newComposeAPI(t, aggMocks.NewMockFetcher(t), handlerMocks.NewMockListingWriter(t))

	resp := api.Post("/api/v1/listings", map[string]any{"title": " "})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestComposeHandler_Update(t *testing.T) {
	t.Parallel()

	f := aggMocks.NewMockFetcher(t)
	f.EXPECT().FetchVehicles(mock.Anything).Return(vehiclesBody(), nil)

	w := handlerMocks.NewMockListingWriter(t)
	w.EXPECT().
		UpdateListing(mock.Anything, "l7", mock.MatchedBy(func(p any) bool {
			payload, ok := p.([]compose.Payload)
			return ok && len(payload) == 1 &&
				len(payload[0].ListingVehicles) == 1 &&
				payload[0].ListingVehicles[0].Odometer == 0 &&
				payload[0].ListingVehicles[0].Color == "red"
		})).
		Return(map[string]any{"isSuccess": true}, nil).
		Once()

	api := newComposeAPI(t, f, w)

	resp := api.Put("/api/v1/listings/l7", map[string]any{
		"title":    "VF8",
		"itemType": "Vehicle",
		"listingVehicles": []any{
			map[string]any{"vehicleId": "v1", "odometer": -5, "batteryHealth": 88, "color": "red"},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"vehicleId":"v1"`)
}

func TestComposeHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		result     any
		err        error
		wantStatus int
	}{
		{
			name:       "deleted with empty body",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "not found",
			result:     map[string]any{"isSuccess": false, "errorMessage": "no such listing"},
			err:        &marketplace.APIError{Status: http.StatusNotFound},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := handlerMocks.NewMockListingWriter(t)
			w.EXPECT().DeleteListing(mock.Anything, "l1").Return(tt.result, tt.err).Once()

			api := newComposeAPI(t, aggMocks.NewMockFetcher(t), w)

			resp := api.Delete("/api/v1/listings/l1")
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}
