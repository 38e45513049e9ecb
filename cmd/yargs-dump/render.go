package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dzonerzy/go-yargs/yargs"
	"github.com/fatih/color"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

func render(w io.Writer, format string, res *yargs.Result) error {
	ordered := res.Ordered()

	switch format {
	case "json":
		finite(ordered)
		out, err := json.MarshalIndent(ordered, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		finite(ordered)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ordered); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "pretty", "":
		renderPretty(w, ordered, "")
		if len(res.Defaulted) > 0 {
			keys := make([]string, 0, len(res.Defaulted))
			for _, key := range res.Keys() {
				if res.Defaulted[key] {
					keys = append(keys, key)
				}
			}
			if len(keys) > 0 {
				fmt.Fprintf(w, "%s %s\n", dim("defaulted:"), strings.Join(keys, ", "))
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// finite replaces NaN and infinite numbers with nil, walking arrays and
// nested maps in place.
func finite(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
	case []any:
		for i := range t {
			t[i] = finite(t[i])
		}
	case *orderedmap.OrderedMap[string, any]:
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			pair.Value = finite(pair.Value)
		}
	}
	return v
}

// renderPretty prints one key = value line per leaf, dotting nested keys
func renderPretty(w io.Writer, m *orderedmap.OrderedMap[string, any], prefix string) {
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		key := prefix + pair.Key
		if nested, ok := pair.Value.(*orderedmap.OrderedMap[string, any]); ok {
			renderPretty(w, nested, key+".")
			continue
		}
		fmt.Fprintf(w, "%s = %s\n", cyan(key), green(formatValue(pair.Value)))
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "undefined"
	case string:
		return fmt.Sprintf("%q", t)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = formatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *orderedmap.OrderedMap[string, any]:
		out, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(out)
	default:
		return fmt.Sprint(t)
	}
}
