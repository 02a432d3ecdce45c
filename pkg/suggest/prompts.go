package suggest

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

const systemMsg = `You are a pricing assistant for a second-hand electric vehicle and battery marketplace in Vietnam.`

const priceTmpl = `Suggest a fair resale price for this used electric {{.Kind}}.
Respond with only the price followed by the currency, for example "850,000,000 VND".

Item: {{.Title}}
{{- if .Specs}}
Specifications:
{{- range .Specs}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Mileage}}
Odometer: {{.Mileage}} km
{{- end}}
{{- if .Condition}}
Condition: {{.Condition}}
{{- end}}`

var priceTemplate = template.Must(template.New("price").Parse(priceTmpl))

// PromptData holds the values rendered into the price prompt.
type PromptData struct {
	Kind      string
	Title     string
	Specs     []string
	Mileage   string
	Condition string
}

// RenderPricePrompt renders the price suggestion prompt for req.
func RenderPricePrompt(req Request) (string, error) {
	data := PromptData{
		Kind:      strings.ToLower(req.Kind.Label()),
		Title:     strings.TrimSpace(req.Title),
		Condition: strings.TrimSpace(req.Condition),
	}
	if req.Mileage > 0 {
		data.Mileage = record.ToString(req.Mileage)
	}
	for _, s := range req.Specs {
		data.Specs = append(data.Specs, formatSpec(s))
	}

	var buf bytes.Buffer
	if err := priceTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering price prompt: %w", err)
	}
	return buf.String(), nil
}

func formatSpec(s domain.Spec) string {
	line := string(s.Field) + ": " + record.ToString(s.Value)
	if s.Unit != "" {
		line += " " + s.Unit
	}
	return line
}
