// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/voltmarket/tools/dashgen/rules"
)

// histogramSuffixes are the series a histogram exposes besides its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation problems. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether there were no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Expr parses expr and checks the metric names it selects against known.
// where identifies the expression in messages.
func Expr(r *Result, where, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" && !isKnown(vs.Name, known) {
			r.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// panelJSON is the part of a rendered Grafana panel the validator reads.
type panelJSON struct {
	Title   string      `json:"title"`
	Type    string      `json:"type"`
	Panels  []panelJSON `json:"panels"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
}

// Dashboard validates every panel target of a built dashboard. The
// dashboard is inspected in its rendered JSON form.
func Dashboard(dash any, known map[string]bool) Result {
	var r Result

	data, err := json.Marshal(dash)
	if err != nil {
		r.errorf("rendering dashboard: %v", err)
		return r
	}
	var parsed struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		r.errorf("reading rendered dashboard: %v", err)
		return r
	}

	for i := range parsed.Panels {
		panel(&r, &parsed.Panels[i], known)
	}
	return r
}

func panel(r *Result, p *panelJSON, known map[string]bool) {
	if p.Type == "row" {
		if len(p.Panels) == 0 {
			r.warnf("row %q has no panels", p.Title)
		}
		for i := range p.Panels {
			panel(r, &p.Panels[i], known)
		}
		return
	}

	if len(p.Targets) == 0 {
		r.errorf("panel %q has no targets", p.Title)
	}
	for i, t := range p.Targets {
		if t.Expr == "" {
			r.errorf("panel %q target %d has an empty expression", p.Title, i)
			continue
		}
		Expr(r, fmt.Sprintf("panel %q", p.Title), t.Expr, known)
	}
}

// Rules validates the expressions of a PrometheusRule. Recording rules
// defined earlier in the same resource count as known metrics.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var r Result

	local := make(map[string]bool, len(known))
	for k, v := range known {
		local[k] = v
	}

	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			Expr(&r, fmt.Sprintf("rule %s/%s", g.Name, name), rule.Expr, local)
			if rule.Record != "" {
				local[rule.Record] = true
			}
		}
	}
	return r
}
