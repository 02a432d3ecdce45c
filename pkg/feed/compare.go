package feed

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Comparison errors.
var (
	ErrInsufficientSelection = errors.New("insufficient selection: compare needs at least two entities")
	ErrMixedKinds            = errors.New("compare selection mixes entity kinds")
	ErrUnknownEntity         = errors.New("entity not found")
	ErrAmbiguousEntity       = errors.New("entity id matches more than one kind")
)

// MinSelection is the smallest selection Compare accepts.
const MinSelection = 2

// Column identifies one compared entity.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Row is one tracked field with a formatted cell per column.
type Row struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// Table is a side-by-side comparison of entities of one kind.
type Table struct {
	Kind    domain.Kind `json:"kind"`
	Columns []Column    `json:"columns"`
	Rows    []Row       `json:"rows"`
}

type rowDef struct {
	key   string
	label string
	cell  func(e *domain.Entity) string
}

var (
	batteryRows = []rowDef{
		{"brand", "Brand", textCell(func(e *domain.Entity) string { return e.Brand })},
		{"model", "Model", textCell(func(e *domain.Entity) string { return e.Model })},
		specRow(domain.SpecChemistry, "Chemistry"),
		specRow(domain.SpecCapacity, "Capacity"),
		specRow(domain.SpecVoltage, "Voltage"),
		specRow(domain.SpecHealth, "Health"),
		specRow(domain.SpecCycleCount, "Cycle Count"),
		{"price", "Price", func(e *domain.Entity) string { return FormatMoney(e.Price) }},
	}
	vehicleRows = []rowDef{
		{"brand", "Brand", textCell(func(e *domain.Entity) string { return e.Brand })},
		{"model", "Model", textCell(func(e *domain.Entity) string { return e.Model })},
		specRow(domain.SpecYearRange, "Year Range"),
		specRow(domain.SpecRange, "Range"),
		specRow(domain.SpecDrivetrain, "Drivetrain"),
		specRow(domain.SpecSeats, "Seats"),
		specRow(domain.SpecBattery, "Battery"),
		{"price", "Price", func(e *domain.Entity) string { return FormatMoney(e.Price) }},
	}
)

func textCell(get func(e *domain.Entity) string) func(e *domain.Entity) string {
	return func(e *domain.Entity) string {
		if s := strings.TrimSpace(get(e)); s != "" {
			return s
		}
		return Missing
	}
}

func specRow(field domain.SpecField, label string) rowDef {
	return rowDef{
		key:   string(field),
		label: label,
		cell: func(e *domain.Entity) string {
			s, ok := e.Spec(field)
			if !ok {
				return Missing
			}
			return FormatSpec(s)
		},
	}
}

// Compare builds the comparison table for selection. It returns
// ErrInsufficientSelection for fewer than two entities and ErrMixedKinds
// when the entities are not all of one kind. Units are inferred at render
// time, so a numeric spec stored without a unit shows the field default.
func Compare(selection []domain.Entity) (Table, error) {
	if len(selection) < MinSelection {
		return Table{}, ErrInsufficientSelection
	}

	kind := selection[0].Kind
	for i := range selection {
		if selection[i].Kind != kind {
			return Table{}, ErrMixedKinds
		}
	}

	var defs []rowDef
	switch kind {
	case domain.KindBattery:
		defs = batteryRows
	case domain.KindVehicle:
		defs = vehicleRows
	default:
		return Table{}, fmt.Errorf("%w: unknown kind %q", ErrMixedKinds, kind)
	}

	t := Table{
		Kind:    kind,
		Columns: make([]Column, 0, len(selection)),
		Rows:    make([]Row, 0, len(defs)),
	}
	for i := range selection {
		t.Columns = append(t.Columns, Column{ID: selection[i].ID, Title: selection[i].Title})
	}
	for _, def := range defs {
		row := Row{Key: def.key, Label: def.label, Cells: make([]string, 0, len(selection))}
		for i := range selection {
			row.Cells = append(row.Cells, def.cell(&selection[i]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Select picks the entities with the given ids, in id order. Repeated ids
// are kept once. An id with no matching entity is an error, and so is an id
// shared by entities of different kinds.
func Select(items []domain.Entity, ids []string) ([]domain.Entity, error) {
	byID := make(map[string]int, len(items))
	ambiguous := map[string]bool{}
	for i := range items {
		j, dup := byID[items[i].ID]
		if !dup {
			byID[items[i].ID] = i
			continue
		}
		if items[j].Kind != items[i].Kind {
			ambiguous[items[i].ID] = true
		}
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]domain.Entity, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if ambiguous[id] {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousEntity, id)
		}
		i, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, id)
		}
		out = append(out, items[i])
	}
	return out, nil
}
