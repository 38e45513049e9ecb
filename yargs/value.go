package yargs

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexRe     = regexp.MustCompile(`(?i)^0x[0-9a-f]+$`)
	decimalRe = regexp.MustCompile(`^[-]?(?:\d+(?:\.\d*)?|\.\d+)(e[-+]?\d+)?$`)
	numberRe  = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)
)

// maxSafeInteger is the largest integer a float64 holds exactly
const maxSafeInteger = 1<<53 - 1

// processValue resolves the final value of tok for key: quote stripping,
// boolean parsing, number coercion, count increments and path normalization.
func (s *state) processValue(key string, tok *token) {
	var val any = tok.text
	if tok.hasValue {
		val = tok.value
	}
	if str, ok := val.(string); ok && len(str) >= 2 && (str[0] == '\'' || str[0] == '"') && str[len(str)-1] == str[0] {
		val = str[1 : len(str)-1]
	}

	isBool, isCount := s.flags.isBool(key), s.flags.isCount(key)
	if isBool || isCount {
		if str, ok := val.(string); ok {
			val = str == "true"
		}
	}

	var value any
	if arr, ok := val.([]any); ok {
		coerced := make([]any, len(arr))
		for i, v := range arr {
			coerced[i] = s.maybeCoerceNumber(key, v)
		}
		value = coerced
	} else {
		value = s.maybeCoerceNumber(key, val)
	}

	if isCount {
		if _, ok := value.(bool); ok || value == nil {
			value = increment
		}
	}

	if s.flags.isNormalize(key) {
		switch v := val.(type) {
		case string:
			value = normalizePath(v)
		case []any:
			if paths, ok := allStrings(v); ok {
				normalized := make([]any, len(paths))
				for i, p := range paths {
					normalized[i] = normalizePath(p)
				}
				value = normalized
			}
		}
	}

	tok.setValue(value)
}

// maybeCoerceNumber turns numeric-looking values into float64 unless key is
// a string or boolean. Declared number keys are always converted.
func (s *state) maybeCoerceNumber(key string, v any) any {
	if s.flags.isString(key) || s.flags.isBool(key) || isSlice(v) {
		return v
	}
	should := isNumeric(v) && s.cfg.ParseNumbers && isSafeInteger(math.Floor(toNumber(v)))
	if should || (v != nil && s.flags.isNumber(key)) {
		return toNumber(v)
	}
	return v
}

// isNumeric reports whether v looks like a number worth converting.
// Decimals with a leading zero are kept as strings.
func isNumeric(v any) bool {
	switch t := v.(type) {
	case float64:
		return true
	case string:
		if hexRe.MatchString(t) {
			return true
		}
		if len(t) > 1 && t[0] == '0' {
			return false
		}
		return decimalRe.MatchString(t)
	default:
		return false
	}
}

// toNumber converts v the way a loosely typed numeric conversion would:
// blank strings are zero, hex/octal/binary prefixes are honored and
// anything unparsable is NaN.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		return parseNumber(t)
	default:
		return math.NaN()
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, ok := new(big.Int).SetString(s[2:], base)
			if !ok {
				return math.NaN()
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f
		}
	}

	if !numberRe.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func isSafeInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger
}

// normalizePath cleans p, keeping a trailing separator
func normalizePath(p string) string {
	if p == "" {
		return "."
	}
	cleaned := filepath.Clean(p)
	if strings.HasSuffix(p, string(filepath.Separator)) && !strings.HasSuffix(cleaned, string(filepath.Separator)) {
		cleaned += string(filepath.Separator)
	}
	return cleaned
}

func allStrings(values []any) ([]string, bool) {
	out := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// normalizeValue converts values from defaults, config files and config
// objects into the parser's value model: float64 numbers, []any arrays and
// map[string]any objects.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = float64(n)
		}
		return out
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeValue(t[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[toKey(k)] = normalizeValue(val)
		}
		return out
	default:
		return v
	}
}

func toKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
