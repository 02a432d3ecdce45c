package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/voltmarket/pkg/catalog"
	"github.com/donaldgifford/voltmarket/pkg/compose"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func TestBattery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		form      domain.RawRecord
		want      catalog.BatteryPayload
		wantField string
	}{
		{
			name: "complete form",
			form: domain.RawRecord{
				"brand": " CATL ", "model": "LFP-280", "capacity": "75.5", "voltage": 400,
				"imgs": []any{"a.jpg", " ", "b.jpg"},
			},
			want: catalog.BatteryPayload{
				Brand: "CATL", Model: "LFP-280", Capacity: 75.5, Voltage: "400", Imgs: "a.jpg,b.jpg",
			},
		},
		{
			name: "no images",
			form: domain.RawRecord{"brand": "BYD", "model": "Blade", "capacity": 60.0, "voltage": "350V"},
			want: catalog.BatteryPayload{Brand: "BYD", Model: "Blade", Capacity: 60, Voltage: "350V"},
		},
		{
			name:      "blank brand",
			form:      domain.RawRecord{"brand": "  ", "model": "Blade", "capacity": 60.0, "voltage": "350"},
			wantField: catalog.KeyBrand,
		},
		{
			name:      "missing voltage",
			form:      domain.RawRecord{"brand": "BYD", "model": "Blade", "capacity": 60.0},
			wantField: catalog.KeyVoltage,
		},
		{
			name:      "zero capacity",
			form:      domain.RawRecord{"brand": "BYD", "model": "Blade", "capacity": 0.0, "voltage": "350"},
			wantField: catalog.KeyCapacity,
		},
		{
			name:      "non-numeric capacity",
			form:      domain.RawRecord{"brand": "BYD", "model": "Blade", "capacity": "big", "voltage": "350"},
			wantField: catalog.KeyCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := catalog.Battery(tt.form)
			if tt.wantField != "" {
				var ve *compose.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				assert.ErrorIs(t, err, compose.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVehicle(t *testing.T) {
	t.Parallel()

	batteries := []string{"b1", "b2"}

	tests := []struct {
		name      string
		form      domain.RawRecord
		want      catalog.VehiclePayload
		wantField string
	}{
		{
			name: "complete form",
			form: domain.RawRecord{
				"brand": "Tesla", "model": "Model 3", "startYear": "2019", "endYear": 2023.0,
				"compatibleBatteryIds": []any{"b1", " b2 ", "b1"}, "imgs": "v.jpg",
			},
			want: catalog.VehiclePayload{
				Brand: "Tesla", Model: "Model 3", StartYear: 2019, EndYear: 2023,
				CompatibleBatteryIDs: []string{"b1", "b2"}, Imgs: "v.jpg",
			},
		},
		{
			name: "comma separated ids and a single year",
			form: domain.RawRecord{
				"brand": "Nissan", "model": "Leaf", "startYear": 2020, "endYear": 2020,
				"compatibleBatteryIds": "b2, ,b1",
			},
			want: catalog.VehiclePayload{
				Brand: "Nissan", Model: "Leaf", StartYear: 2020, EndYear: 2020,
				CompatibleBatteryIDs: []string{"b2", "b1"},
			},
		},
		{
			name: "no compatible batteries",
			form: domain.RawRecord{"brand": "Nissan", "model": "Leaf", "startYear": 2020, "endYear": 2021},
			want: catalog.VehiclePayload{
				Brand: "Nissan", Model: "Leaf", StartYear: 2020, EndYear: 2021,
				CompatibleBatteryIDs: []string{},
			},
		},
		{
			name:      "missing model",
			form:      domain.RawRecord{"brand": "Nissan", "startYear": 2020, "endYear": 2021},
			wantField: catalog.KeyModel,
		},
		{
			name:      "fractional start year",
			form:      domain.RawRecord{"brand": "Nissan", "model": "Leaf", "startYear": 2020.5, "endYear": 2021},
			wantField: catalog.KeyStartYear,
		},
		{
			name:      "missing end year",
			form:      domain.RawRecord{"brand": "Nissan", "model": "Leaf", "startYear": 2020},
			wantField: catalog.KeyEndYear,
		},
		{
			name:      "end before start",
			form:      domain.RawRecord{"brand": "Nissan", "model": "Leaf", "startYear": 2022, "endYear": 2020},
			wantField: catalog.KeyEndYear,
		},
		{
			name: "unknown battery",
			form: domain.RawRecord{
				"brand": "Nissan", "model": "Leaf", "startYear": 2020, "endYear": 2021,
				"compatibleBatteryIds": []any{"b1", "b9"},
			},
			wantField: catalog.KeyCompatibleBatteryIDs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := catalog.Vehicle(tt.form, batteries)
			if tt.wantField != "" {
				var ve *compose.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
