// Package normalize turns raw battery, vehicle and listing records into the
// canonical shapes used by the feed, compare and listing views.
//
// Field lookup is driven by the static synonym tables in fields.go and unit
// inference by the decision table in units.go. Normalization never fails: a
// record with no recognizable fields still yields a titled entity.
package normalize

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Normalizer maps raw records of one kind to canonical entities.
type Normalizer struct {
	fields FieldSet
}

// New creates a Normalizer for the given synonym table.
func New(fields FieldSet) *Normalizer {
	return &Normalizer{fields: fields}
}

// Battery and Vehicle are the two configured normalizers.
var (
	Battery = New(BatteryFields)
	Vehicle = New(VehicleFields)
)

// ForKind returns the normalizer for kind.
func ForKind(kind domain.Kind) (*Normalizer, bool) {
	switch kind {
	case domain.KindBattery:
		return Battery, true
	case domain.KindVehicle:
		return Vehicle, true
	default:
		return nil, false
	}
}

// Batteries normalizes a battery collection.
func Batteries(recs []domain.RawRecord) []domain.Entity {
	return Battery.All(recs)
}

// Vehicles normalizes a vehicle collection.
func Vehicles(recs []domain.RawRecord) []domain.Entity {
	return Vehicle.All(recs)
}

// Kind returns the entity kind this normalizer produces.
func (n *Normalizer) Kind() domain.Kind {
	return n.fields.Kind
}

// All normalizes recs, using each record's position for placeholders.
func (n *Normalizer) All(recs []domain.RawRecord) []domain.Entity {
	out := make([]domain.Entity, 0, len(recs))
	for i, rec := range recs {
		out = append(out, n.Normalize(rec, i))
	}
	return out
}

// Normalize maps the record at position i to a canonical entity.
func (n *Normalizer) Normalize(rec domain.RawRecord, i int) domain.Entity {
	f := n.fields

	id := strings.TrimSpace(record.String(rec, f.ID...))
	if id == "" {
		id = fmt.Sprintf("%s-%d", f.Kind, i)
	}

	brand := strings.TrimSpace(record.String(rec, f.Brand...))
	model := strings.TrimSpace(record.String(rec, f.Model...))
	title := strings.TrimSpace(brand + " " + model)
	if title == "" {
		title = fmt.Sprintf("%s %d", f.Kind.Label(), i+1)
	}

	return domain.Entity{
		ID:          id,
		Kind:        f.Kind,
		Title:       title,
		Brand:       brand,
		Model:       model,
		Specs:       n.specs(rec),
		ImageURLs:   Images(rec, f.Images...),
		Price:       nonNegative(rec, f.Price),
		Rating:      nonNegative(rec, f.Rating),
		ApprovalTag: approvalTag(rec, f),
	}
}

func (n *Normalizer) specs(rec domain.RawRecord) []domain.Spec {
	out := make([]domain.Spec, 0, len(n.fields.Specs))
	for _, rule := range n.fields.Specs {
		var value any
		switch rule.Field {
		case domain.SpecYearRange:
			value = yearRange(rec)
		case domain.SpecBattery:
			value = compatibleBattery(rec)
		default:
			value = specValue(record.Coalesce(rec, rule.Keys...))
		}
		if value == nil {
			continue
		}
		out = append(out, domain.Spec{
			Field: rule.Field,
			Value: value,
			Unit:  rule.Unit.Resolve(rec, value),
		})
	}
	return out
}

// specValue converts a raw spec value to float64 when numeric and to a
// trimmed string otherwise. Blank and composite values are dropped.
func specValue(v any) any {
	if f, ok := record.ToFloat(v); ok {
		return f
	}
	s := strings.TrimSpace(record.ToString(v))
	if s == "" {
		return nil
	}
	return s
}

func yearRange(rec domain.RawRecord) any {
	start := yearString(record.Coalesce(rec, startYearKeys...))
	end := yearString(record.Coalesce(rec, endYearKeys...))
	switch {
	case start != "" && end != "" && start != end:
		return start + "–" + end
	case start != "":
		return start
	case end != "":
		return end
	default:
		return nil
	}
}

func yearString(v any) string {
	if f, ok := record.ToFloat(v); ok {
		if f == 0 {
			return ""
		}
		return record.ToString(f)
	}
	return strings.TrimSpace(record.ToString(v))
}

func compatibleBattery(rec domain.RawRecord) any {
	if models, ok := record.Slice(rec, "batteryModels"); ok {
		if s := joinNames(models, func(v any) string {
			return strings.TrimSpace(record.ToString(v))
		}); s != "" {
			return s
		}
	}
	if batteries, ok := record.Slice(rec, "compatibleBatteries"); ok {
		if s := joinNames(batteries, func(v any) string {
			b, ok := v.(map[string]any)
			if !ok {
				return ""
			}
			return strings.TrimSpace(
				record.String(b, "brand", "manufacturer") + " " + record.String(b, "model", "name"),
			)
		}); s != "" {
			return s
		}
	}
	return specValue(record.Coalesce(rec, batteryNameKeys...))
}

func joinNames(items []any, name func(any) string) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		if n := name(it); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}

func nonNegative(rec domain.RawRecord, keys []string) *float64 {
	f, ok := record.Float(rec, keys...)
	if !ok || f < 0 {
		return nil
	}
	return &f
}

func approvalTag(rec domain.RawRecord, f FieldSet) string {
	if approved, ok := record.Bool(rec, f.Approved...); ok {
		if approved {
			return domain.ApprovalApproved
		}
		return domain.ApprovalPending
	}
	if status := strings.TrimSpace(record.String(rec, f.Status...)); status != "" {
		return status
	}
	return domain.ApprovalPending
}
