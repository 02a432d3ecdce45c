package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/voltmarket/pkg/compose"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		form      compose.Form
		wantErr   string
		wantType  domain.ItemType
		wantBatts int
		wantVehs  int
	}{
		{
			name: "default item type",
			form: compose.Form{
				Title:            "Pack",
				ListingBatteries: []domain.RawRecord{{"batteryId": "b1", "health": 90}},
			},
			wantType:  domain.ItemBattery,
			wantBatts: 1,
		},
		{
			name: "full set form",
			form: compose.Form{
				Title:            "Set",
				ItemType:         "fullset",
				ListingBatteries: []domain.RawRecord{{"batteryId": "b1", "health": 90}},
				ListingVehicles: []domain.RawRecord{
					{"vehicleId": "v1", "odometer": 10, "batteryHealth": 90},
					{"vehicleID": "v2", "odometer": 20, "batteryHealth": 80},
				},
			},
			wantType:  domain.ItemFullSet,
			wantBatts: 1,
			wantVehs:  2,
		},
		{
			name:    "unknown item type",
			form:    compose.Form{Title: "x", ItemType: "boat"},
			wantErr: "itemType: unknown item type \"boat\"",
		},
		{
			name: "line item error is indexed",
			form: compose.Form{
				Title:    "Car",
				ItemType: "Vehicle",
				ListingVehicles: []domain.RawRecord{
					{"vehicleId": "v1", "odometer": 10, "batteryHealth": 90},
					{"vehicleId": "v1", "batteryHealth": 90},
				},
			},
			wantErr: "listingVehicles[1]: odometer: field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDraft(t)
			err := d.Apply(tt.form)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, compose.ErrValidation)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, d.ItemType())
			assert.Len(t, d.BatteryLineItems(), tt.wantBatts)
			assert.Len(t, d.VehicleLineItems(), tt.wantVehs)
		})
	}
}

func TestFromListing(t *testing.T) {
	t.Parallel()

	rec := domain.RawRecord{
		"id":          "L1",
		"title":       " Tesla Model 3 ",
		"description": "garage kept",
		"address":     "Hue",
		"itemType":    "Vehicle",
		"listingBatteries": []any{
			map[string]any{"batteryId": "b1", "health": 80.0},
		},
		"listingVehicles": []any{
			map[string]any{
				"vehicleId":     "v7",
				"odometer":      42000.0,
				"batteryHealth": 91.0,
				"color":         "white",
				"price":         28000.0,
				"imgs":          "front.jpg,back.jpg",
			},
		},
	}

	d := compose.FromListing(rec)

	assert.Equal(t, "Tesla Model 3", d.Title)
	assert.Equal(t, domain.ItemVehicle, d.ItemType())
	assert.Empty(t, d.BatteryLineItems())
	require.Len(t, d.VehicleLineItems(), 1)
	v := d.VehicleLineItems()[0]
	assert.Equal(t, "v7", v.VehicleID)
	assert.InDelta(t, 42000.0, v.Odometer, 1e-9)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, v.ImageURLs)

	assert.True(t, d.IsAvailable(domain.KindVehicle, "v7"))
	assert.True(t, d.IsAvailable(domain.KindBattery, "b1"))

	payload, err := d.ToPayload()
	require.NoError(t, err)
	assert.Equal(t, "front.jpg,back.jpg", payload[0].ListingVehicles[0].Imgs)
}

func TestFromListing_Empty(t *testing.T) {
	t.Parallel()

	d := compose.FromListing(domain.RawRecord{})
	assert.Equal(t, domain.ItemBattery, d.ItemType())

	_, err := d.ToPayload()
	assert.ErrorIs(t, err, compose.ErrValidation)
}
