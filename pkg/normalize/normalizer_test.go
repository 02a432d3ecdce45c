package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/voltmarket/pkg/normalize"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func TestBattery_EndToEnd(t *testing.T) {
	t.Parallel()

	raw := domain.RawRecord{
		"brand":      "CATL",
		"model":      "LFP75",
		"capacityAh": 200.0,
		"imgs":       "a.jpg, b.jpg",
	}

	got := normalize.Battery.Normalize(raw, 0)

	assert.Equal(t, "CATL LFP75", got.Title)
	assert.Equal(t, []domain.Spec{
		{Field: domain.SpecCapacity, Value: 200.0, Unit: normalize.UnitAh},
	}, got.Specs)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, got.ImageURLs)
	assert.Nil(t, got.Price)
	assert.Equal(t, "battery-0", got.ID)
	assert.Equal(t, domain.KindBattery, got.Kind)
	assert.Equal(t, domain.ApprovalPending, got.ApprovalTag)
}

func TestNormalize_Totality(t *testing.T) {
	t.Parallel()

	records := []domain.RawRecord{
		{},
		nil,
		{"brand": nil, "model": ""},
		{"imgs": ",, ,"},
		{"imgs": []any{"", nil, 3.0, "x.png"}},
		{"price": "free"},
		{"capacity": map[string]any{"nested": true}},
	}

	for _, n := range []*normalize.Normalizer{normalize.Battery, normalize.Vehicle} {
		for i, rec := range records {
			var got domain.Entity
			require.NotPanics(t, func() { got = n.Normalize(rec, i) })
			assert.NotEmpty(t, got.Title)
			assert.NotNil(t, got.ImageURLs)
			assert.NotContains(t, got.ImageURLs, "")
			if got.Price != nil {
				assert.GreaterOrEqual(t, *got.Price, 0.0)
			}
		}
	}
}

func TestNormalize_PositionalFallbacks(t *testing.T) {
	t.Parallel()

	b := normalize.Battery.Normalize(domain.RawRecord{}, 2)
	assert.Equal(t, "battery-2", b.ID)
	assert.Equal(t, "Battery 3", b.Title)

	v := normalize.Vehicle.Normalize(domain.RawRecord{}, 0)
	assert.Equal(t, "vehicle-0", v.ID)
	assert.Equal(t, "Vehicle 1", v.Title)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	raw := domain.RawRecord{
		"vehicleId":     17.0,
		"make":          "Tesla",
		"name":          "Model 3",
		"startYear":     2019.0,
		"endYear":       2023.0,
		"rangeKm":       "510",
		"driveType":     "AWD",
		"seatCount":     5.0,
		"imageUrls":     []any{"m3.jpg"},
		"msrp":          "39990",
		"isAproved":     true,
		"batteryModels": []any{"LG M50", ""},
	}

	first := normalize.Vehicle.Normalize(raw, 4)
	second := normalize.Vehicle.Normalize(raw, 4)
	assert.Equal(t, first, second)
}

func TestBattery_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       domain.RawRecord
		wantID    string
		wantTitle string
		wantSpecs []domain.Spec
		wantPrice *float64
		wantTag   string
	}{
		{
			name: "kWh capacity inferred from numeric value",
			raw: domain.RawRecord{
				"batteryId":    "b-9",
				"manufacturer": "LG",
				"batteryModel": "RESU",
				"capacity":     "9.8",
				"voltage":      400.0,
				"soh":          92.0,
				"cycles":       350.0,
				"chemistry":    "NMC",
				"price":        1500.0,
				"isApproved":   true,
			},
			wantID:    "b-9",
			wantTitle: "LG RESU",
			wantSpecs: []domain.Spec{
				{Field: domain.SpecCapacity, Value: 9.8, Unit: normalize.UnitKWh},
				{Field: domain.SpecVoltage, Value: 400.0, Unit: normalize.UnitVolt},
				{Field: domain.SpecHealth, Value: 92.0, Unit: normalize.UnitPercent},
				{Field: domain.SpecCycleCount, Value: 350.0},
				{Field: domain.SpecChemistry, Value: "NMC"},
			},
			wantPrice: ptr(1500.0),
			wantTag:   domain.ApprovalApproved,
		},
		{
			name: "explicit units win",
			raw: domain.RawRecord{
				"id":           1.0,
				"brand":        "BYD",
				"capacityAh":   100.0,
				"capacityUnit": "Wh",
				"voltageV":     "48",
				"voltageUnit":  "VDC",
				"status":       "Rejected",
			},
			wantID:    "1",
			wantTitle: "BYD",
			wantSpecs: []domain.Spec{
				{Field: domain.SpecCapacity, Value: 100.0, Unit: "Wh"},
				{Field: domain.SpecVoltage, Value: 48.0, Unit: "VDC"},
			},
			wantTag: "Rejected",
		},
		{
			name: "non-numeric capacity carries no unit",
			raw: domain.RawRecord{
				"_id":      "abc",
				"model":    "Pack",
				"capacity": "75 kWh",
				"price":    -1.0,
				"approved": false,
			},
			wantID:    "abc",
			wantTitle: "Pack",
			wantSpecs: []domain.Spec{
				{Field: domain.SpecCapacity, Value: "75 kWh"},
			},
			wantTag: domain.ApprovalPending,
		},
		{
			name: "zero price is kept",
			raw: domain.RawRecord{
				"brand":          "Pana",
				"suggestedPrice": 0.0,
			},
			wantID:    "battery-0",
			wantTitle: "Pana",
			wantSpecs: []domain.Spec{},
			wantPrice: ptr(0.0),
			wantTag:   domain.ApprovalPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := normalize.Battery.Normalize(tt.raw, 0)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantSpecs, got.Specs)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantTag, got.ApprovalTag)
		})
	}
}

func TestVehicle_Specs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       domain.RawRecord
		wantSpecs []domain.Spec
	}{
		{
			name: "year span and km range",
			raw: domain.RawRecord{
				"yearStart": 2020.0,
				"yearEnd":   2024.0,
				"rangeKm":   450.0,
				"drive":     "RWD",
				"seats":     5.0,
			},
			wantSpecs: []domain.Spec{
				{Field: domain.SpecYearRange, Value: "2020–2024"},
				{Field: domain.SpecRange, Value: 450.0, Unit: normalize.UnitKm},
				{Field: domain.SpecDrivetrain, Value: "RWD"},
				{Field: domain.SpecSeats, Value: 5.0},
			},
		},
		{
			name: "single year and default miles",
			raw: domain.RawRecord{
				"year":  2022.0,
				"range": 300.0,
			},
			wantSpecs: []domain.Spec{
				{Field: domain.SpecYearRange, Value: "2022"},
				{Field: domain.SpecRange, Value: 300.0, Unit: normalize.UnitMiles},
			},
		},
		{
			name: "compatible batteries from objects",
			raw: domain.RawRecord{
				"compatibleBatteries": []any{
					map[string]any{"brand": "CATL", "model": "LFP75"},
					map[string]any{"manufacturer": "LG"},
					"bogus",
				},
			},
			wantSpecs: []domain.Spec{
				{Field: domain.SpecBattery, Value: "CATL LFP75, LG"},
			},
		},
		{
			name: "battery name fallback",
			raw: domain.RawRecord{
				"batteryModels": []any{},
				"batteryName":   "Blade",
			},
			wantSpecs: []domain.Spec{
				{Field: domain.SpecBattery, Value: "Blade"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := normalize.Vehicle.Normalize(tt.raw, 0)
			assert.Equal(t, tt.wantSpecs, got.Specs)
		})
	}
}

func TestVehicle_Identity(t *testing.T) {
	t.Parallel()

	got := normalize.Vehicle.Normalize(domain.RawRecord{
		"vehicleID":    "v-1",
		"vehicleBrand": "VinFast",
		"vehicleModel": "VF8",
		"rating":       4.5,
	}, 0)

	assert.Equal(t, "v-1", got.ID)
	assert.Equal(t, "VinFast VF8", got.Title)
	assert.Equal(t, "VinFast", got.Brand)
	assert.Equal(t, "VF8", got.Model)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 4.5, *got.Rating, 1e-9)
}

func TestBatteries_Vehicles(t *testing.T) {
	t.Parallel()

	recs := []domain.RawRecord{{"brand": "A"}, {}}
	bs := normalize.Batteries(recs)
	require.Len(t, bs, 2)
	assert.Equal(t, "Battery 2", bs[1].Title)

	vs := normalize.Vehicles(nil)
	assert.Empty(t, vs)
	assert.NotNil(t, vs)
}

func TestForKind(t *testing.T) {
	t.Parallel()

	n, ok := normalize.ForKind(domain.KindVehicle)
	require.True(t, ok)
	assert.Equal(t, domain.KindVehicle, n.Kind())

	_, ok = normalize.ForKind("boat")
	assert.False(t, ok)
}

func TestParseImages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "comma string", in: " a.jpg ,b.jpg,, ", want: []string{"a.jpg", "b.jpg"}},
		{name: "any slice", in: []any{"x", "", nil, 1.0, "y"}, want: []string{"x", "y"}},
		{name: "string slice", in: []string{"", "z"}, want: []string{"z"}},
		{name: "number", in: 12.0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalize.ParseImages(tt.in))
		})
	}
}

func TestJoinImages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.jpg,b.jpg", normalize.JoinImages([]string{"a.jpg", " ", "b.jpg"}))
	assert.Empty(t, normalize.JoinImages(nil))
}

func TestDefaultUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, normalize.UnitKWh, normalize.DefaultUnit(domain.SpecCapacity))
	assert.Equal(t, normalize.UnitMiles, normalize.DefaultUnit(domain.SpecRange))
	assert.Empty(t, normalize.DefaultUnit(domain.SpecSeats))
}

func ptr(f float64) *float64 { return &f }
