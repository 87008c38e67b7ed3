// Package validate checks generated dashboards and rule files for PromQL
// syntax errors and references to unknown metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation errors and warnings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// dashboardJSON is the subset of the serialized dashboard needed to walk
// panel queries. Validation runs on the marshaled form so it checks exactly
// what gets committed.
type dashboardJSON struct {
	Panels []struct {
		Title   string      `json:"title"`
		Targets []targetRef `json:"targets"`
		Panels  []struct {
			Title   string      `json:"title"`
			Targets []targetRef `json:"targets"`
		} `json:"panels"`
	} `json:"panels"`
}

type targetRef struct {
	Expr string `json:"expr"`
}

// Dashboard validates every panel query in the dashboard against known.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var result Result

	data, err := json.Marshal(dash)
	if err != nil {
		result.errorf("marshaling dashboard: %v", err)
		return result
	}

	var dj dashboardJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		result.errorf("decoding dashboard: %v", err)
		return result
	}

	for _, row := range dj.Panels {
		for _, t := range row.Targets {
			checkExpr(&result, row.Title, t.Expr, known)
		}
		for _, p := range row.Panels {
			for _, t := range p.Targets {
				checkExpr(&result, p.Title, t.Expr, known)
			}
		}
	}

	return result
}

// Rules validates the expressions of recording and alert rules against known.
// Recording rule names are added to known for later rules in the same pass.
func Rules(exprs map[string]string, known map[string]bool) Result {
	var result Result
	for name, expr := range exprs {
		checkExpr(&result, name, expr, known)
	}
	return result
}

func checkExpr(result *Result, context, expr string, known map[string]bool) {
	if expr == "" {
		result.warnf("%s: empty query expression", context)
		return
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		result.errorf("%s: invalid PromQL %q: %v", context, expr, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := vs.Name
		if name == "" {
			result.warnf("%s: selector without metric name in %q", context, expr)
			return nil
		}
		if !known[baseMetric(name)] {
			result.errorf("%s: unknown metric %q in %q", context, name, expr)
		}
		return nil
	})
}

// baseMetric strips histogram series suffixes so bucket queries resolve to
// the metric they belong to.
func baseMetric(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
