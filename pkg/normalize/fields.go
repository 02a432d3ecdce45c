package normalize

import domain "github.com/donaldgifford/voltmarket/pkg/types"

// SpecRule describes how one spec field is pulled out of a raw record.
type SpecRule struct {
	Field domain.SpecField
	Keys  []string
	Unit  UnitRule
}

// FieldSet is the static synonym table for one entity kind. Key order is
// precedence order.
type FieldSet struct {
	Kind     domain.Kind
	ID       []string
	Brand    []string
	Model    []string
	Price    []string
	Rating   []string
	Images   []string
	Approved []string
	Status   []string
	Specs    []SpecRule
}

var (
	imageKeys    = []string{"imgs", "images", "imageUrls", "imageUrl", "image"}
	priceKeys    = []string{"price", "suggestedPrice", "marketPrice", "msrp", "basePrice"}
	ratingKeys   = []string{"rating", "averageRating", "stars"}
	approvedKeys = []string{"isApproved", "isAproved", "approved"}
	statusKeys   = []string{"status", "approvalStatus"}
)

// BatteryFields is the synonym table for battery records.
var BatteryFields = FieldSet{
	Kind:     domain.KindBattery,
	ID:       []string{"id", "batteryId", "batteryID", "_id"},
	Brand:    []string{"brand", "manufacturer", "maker"},
	Model:    []string{"model", "batteryModel", "name"},
	Price:    priceKeys,
	Rating:   ratingKeys,
	Images:   imageKeys,
	Approved: approvedKeys,
	Status:   statusKeys,
	Specs: []SpecRule{
		{
			Field: domain.SpecCapacity,
			Keys:  []string{"capacity", "capacityKWh", "capacityAh", "energyCapacity"},
			Unit:  capacityUnit,
		},
		{
			Field: domain.SpecVoltage,
			Keys:  []string{"voltage", "voltageV", "nominalVoltage", "voltageRating"},
			Unit:  voltageUnit,
		},
		{
			Field: domain.SpecHealth,
			Keys:  []string{"health", "stateOfHealth", "soh", "healthPercent"},
			Unit:  healthUnit,
		},
		{
			Field: domain.SpecCycleCount,
			Keys:  []string{"cycleCount", "cycles", "cycle"},
		},
		{
			Field: domain.SpecChemistry,
			Keys:  []string{"chemistry", "type", "chem", "cellChemistry", "chemistryType"},
		},
	},
}

// VehicleFields is the synonym table for vehicle records. The year range and
// compatible battery specs are derived from several keys and are handled by
// the normalizer directly; their Keys list the inputs for documentation and
// lookup by Has.
var VehicleFields = FieldSet{
	Kind:     domain.KindVehicle,
	ID:       []string{"id", "vehicleId", "vehicleID", "_id"},
	Brand:    []string{"brand", "vehicleBrand", "make", "manufacturer"},
	Model:    []string{"model", "vehicleModel", "name", "title"},
	Price:    priceKeys,
	Rating:   ratingKeys,
	Images:   imageKeys,
	Approved: approvedKeys,
	Status:   statusKeys,
	Specs: []SpecRule{
		{Field: domain.SpecYearRange},
		{
			Field: domain.SpecRange,
			Keys:  []string{"range", "estimatedRange", "rangeMi", "rangeKm", "range_miles"},
			Unit:  rangeUnit,
		},
		{
			Field: domain.SpecDrivetrain,
			Keys:  []string{"drivetrain", "drive", "driveType", "driveTrain"},
		},
		{
			Field: domain.SpecSeats,
			Keys:  []string{"seats", "seatCount", "capacity"},
		},
		{Field: domain.SpecBattery},
	},
}

var (
	startYearKeys = []string{"startYear", "yearStart", "year", "beginYear"}
	endYearKeys   = []string{"endYear", "yearEnd", "year", "finishYear"}

	batteryNameKeys = []string{"batteryModel", "batteryName", "battery", "batteryType"}
)

// FieldsFor returns the synonym table for kind.
func FieldsFor(kind domain.Kind) (FieldSet, bool) {
	switch kind {
	case domain.KindBattery:
		return BatteryFields, true
	case domain.KindVehicle:
		return VehicleFields, true
	default:
		return FieldSet{}, false
	}
}
