package feed

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/donaldgifford/voltmarket/pkg/normalize"
	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Missing is the cell text for an absent value.
const Missing = "—"

// FormatNumber renders f with English digit grouping.
func FormatNumber(f float64) string {
	return message.NewPrinter(language.English).Sprint(number.Decimal(f))
}

// FormatMoney renders a price as US dollars with two decimals, or Missing.
func FormatMoney(price *float64) string {
	if price == nil {
		return Missing
	}
	return "$" + message.NewPrinter(language.English).Sprint(number.Decimal(*price, number.Scale(2)))
}

// FormatWithUnit renders value followed by unit. Numbers use digit
// grouping; nil and blank strings render as Missing.
func FormatWithUnit(value any, unit string) string {
	var text string
	if f, ok := value.(float64); ok {
		text = FormatNumber(f)
	} else {
		text = strings.TrimSpace(record.ToString(value))
	}
	if text == "" {
		return Missing
	}
	if unit == "" {
		return text
	}
	return text + " " + unit
}

// FormatSpec renders a spec for display. Numeric values without a recorded
// unit get the field's default unit.
func FormatSpec(s domain.Spec) string {
	unit := s.Unit
	if _, numeric := s.Value.(float64); numeric && unit == "" {
		unit = normalize.DefaultUnit(s.Field)
	}
	return FormatWithUnit(s.Value, unit)
}

// specText renders a spec without locale formatting for text search.
func specText(s domain.Spec) string {
	text := record.ToString(s.Value)
	if s.Unit != "" {
		text += " " + s.Unit
	}
	return text
}
