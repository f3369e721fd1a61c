// Package validate checks generated dashboards and rules for PromQL that
// does not parse or references metrics the adapter does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors fail generation; warnings
// flag metric names missing from the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// histogramSuffixes are the series a histogram exports beyond its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses a single PromQL expression and checks every selected metric
// against known. where prefixes each finding.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: parsing %q: %v", where, expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})

	return res
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, s := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, s); ok && known[base] {
			return true
		}
	}
	return false
}

// Exprs validates a named set of expressions, visiting names in order.
func Exprs(exprs map[string]string, known map[string]bool) Result {
	names := make([]string, 0, len(exprs))
	for name := range exprs {
		names = append(names, name)
	}
	sort.Strings(names)

	var res Result
	for _, name := range names {
		res.merge(Expr(name, exprs[name], known))
	}
	return res
}

// Dashboard validates every "expr" field found in the JSON form of dash.
// Findings are labelled with the title of the enclosing panel.
func Dashboard(dash any, known map[string]bool) Result {
	data, err := json.Marshal(dash)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("marshaling dashboard: %v", err)}}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{Errors: []string{fmt.Sprintf("decoding dashboard: %v", err)}}
	}

	var res Result
	walk(doc, "dashboard", func(title, expr string) {
		res.merge(Expr(title, expr, known))
	})
	return res
}

func walk(v any, title string, visit func(title, expr string)) {
	switch node := v.(type) {
	case map[string]any:
		if t, ok := node["title"].(string); ok && t != "" {
			title = t
		}
		if expr, ok := node["expr"].(string); ok && expr != "" {
			visit(title, expr)
		}
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(node[k], title, visit)
		}
	case []any:
		for _, item := range node {
			walk(item, title, visit)
		}
	}
}
