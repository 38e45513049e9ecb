package yargs

import (
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Result is the outcome of a detailed parse
type Result struct {
	// Argv holds every parsed key; positionals are under "_".
	Argv map[string]any
	// Error is the first problem met during the parse, a *ParseError, or nil.
	Error error
	// NewAliases lists the aliases derived from camelCase/dash-case expansion.
	NewAliases map[string]bool
	// Defaulted lists the keys whose value came from Options.Default.
	Defaulted     map[string]bool
	Configuration Configuration
	// Aliases maps every known name to its other names.
	Aliases map[string][]string

	tokens []*token
	hidden map[*token]bool
	root   *branch
}

func (s *state) result() *Result {
	r := &Result{
		Argv:          flatten(s.argv).(map[string]any),
		NewAliases:    s.newAliases,
		Defaulted:     s.defaulted,
		Configuration: s.cfg,
		Aliases:       s.flags.aliases,
		tokens:        s.tokens,
		hidden:        s.hidden,
		root:          s.argv,
	}
	if s.err != nil {
		r.Error = s.err
	}
	return r
}

// Tokens returns the argument list as the parser saw it, without the tokens
// of hidden keys.
func (r *Result) Tokens() []string {
	out := make([]string, 0, len(r.tokens))
	for _, t := range r.tokens {
		if t.dropped || r.hidden[t] {
			continue
		}
		out = append(out, t.text)
	}
	return out
}

// Ordered returns argv with keys in assignment order, nested objects included
func (r *Result) Ordered() *orderedmap.OrderedMap[string, any] {
	return flattenOrdered(r.root).(*orderedmap.OrderedMap[string, any])
}

// Keys returns the top-level keys of argv in assignment order
func (r *Result) Keys() []string {
	return r.root.keys()
}

// Get returns the value at key. A dotted key that is not present as is
// walks nested objects.
func (r *Result) Get(key string) (any, bool) {
	if v, ok := r.Argv[key]; ok {
		return v, true
	}

	var cur any = r.Argv
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// GetString returns the value at key as a string. Numbers and booleans are
// formatted; arrays use their last element.
func (r *Result) GetString(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return scalarString(last(v))
}

// GetBool returns the value at key as a bool
func (r *Result) GetBool(key string) (bool, bool) {
	v, ok := r.Get(key)
	if !ok {
		return false, false
	}
	switch t := last(v).(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		return b, err == nil
	default:
		return false, false
	}
}

// GetNumber returns the value at key as a float64
func (r *Result) GetNumber(key string) (float64, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	switch t := last(v).(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// GetStrings returns the value at key as a list of strings. A scalar value
// becomes a one element list.
func (r *Result) GetStrings(key string) ([]string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return nil, false
	}
	values, isArr := v.([]any)
	if !isArr {
		values = []any{v}
	}

	out := make([]string, 0, len(values))
	for _, e := range values {
		s, ok := scalarString(e)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func last(v any) any {
	if arr, ok := v.([]any); ok && len(arr) > 0 {
		return arr[len(arr)-1]
	}
	return v
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case nil:
		return "", false
	default:
		return fmt.Sprint(t), true
	}
}
