package yargs

import (
	"slices"
)

// flagSet classifies every declared key. One flagSet lives for one parse:
// the alias table grows when dashed dot-notation keys are first assigned.
type flagSet struct {
	aliases   map[string][]string
	arrays    map[string]bool
	bools     map[string]bool
	strings   map[string]bool
	numbers   map[string]bool
	counts    map[string]bool
	normalize map[string]bool
	hide      map[string]bool
	configs   map[string]ConfigLoader
	nargs     map[string]int
	coercions map[string]CoerceFunc

	// Declaration order, used for placeholders and config loading
	keys       []string
	countKeys  []string
	arrayKeys  []string
	configKeys []string
}

func newFlagSet(opts *Options) *flagSet {
	f := &flagSet{
		aliases:   make(map[string][]string),
		arrays:    make(map[string]bool),
		bools:     make(map[string]bool),
		strings:   make(map[string]bool),
		numbers:   make(map[string]bool),
		counts:    make(map[string]bool),
		normalize: make(map[string]bool),
		hide:      make(map[string]bool),
		configs:   make(map[string]ConfigLoader),
		nargs:     make(map[string]int),
		coercions: make(map[string]CoerceFunc),
	}

	f.declare(opts.Array, f.arrays)
	f.arrayKeys = nonEmpty(opts.Array)
	f.declare(opts.Boolean, f.bools)
	f.declare(opts.String, f.strings)
	f.declare(opts.Number, f.numbers)
	f.declare(opts.Count, f.counts)
	f.countKeys = nonEmpty(opts.Count)
	f.declare(opts.Normalize, f.normalize)
	f.declare(opts.Hide, f.hide)

	for _, k := range sortedKeys(opts.Narg) {
		f.nargs[k] = opts.Narg[k]
		f.keys = append(f.keys, k)
	}
	for _, k := range sortedKeys(opts.Coerce) {
		f.coercions[k] = opts.Coerce[k]
		f.keys = append(f.keys, k)
	}
	for _, k := range sortedKeys(opts.Config) {
		if k == "" {
			continue
		}
		f.configs[k] = opts.Config[k]
		f.configKeys = append(f.configKeys, k)
	}

	return f
}

func (f *flagSet) declare(keys []string, bucket map[string]bool) {
	for _, k := range keys {
		if k == "" {
			continue
		}
		bucket[k] = true
		f.keys = append(f.keys, k)
	}
}

// resolve returns key followed by every name that refers to the same option
func (f *flagSet) resolve(key string) []string {
	return append([]string{key}, f.aliases[key]...)
}

// lookup returns the classification of the first name among key and its
// aliases that is present in bucket.
func lookup[V any](f *flagSet, key string, bucket map[string]V) (V, bool) {
	if v, ok := bucket[key]; ok {
		return v, true
	}
	for _, alias := range f.aliases[key] {
		if v, ok := bucket[alias]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func (f *flagSet) is(key string, bucket map[string]bool) bool {
	v, _ := lookup(f, key, bucket)
	return v
}

func (f *flagSet) isArray(key string) bool  { return f.is(key, f.arrays) }
func (f *flagSet) isBool(key string) bool   { return f.is(key, f.bools) }
func (f *flagSet) isString(key string) bool { return f.is(key, f.strings) }
func (f *flagSet) isNumber(key string) bool { return f.is(key, f.numbers) }
func (f *flagSet) isCount(key string) bool  { return f.is(key, f.counts) }
func (f *flagSet) isHidden(key string) bool { return f.is(key, f.hide) }

func (f *flagSet) isNormalize(key string) bool { return f.is(key, f.normalize) }

// narg reports the declared count for key; declared reports presence, so
// that a count of zero can be told apart from no declaration.
func (f *flagSet) narg(key string) (n int, declared bool) {
	return lookup(f, key, f.nargs)
}

// known reports whether key itself is declared in any bucket.
func (f *flagSet) known(key string) bool {
	if _, ok := f.aliases[key]; ok {
		return true
	}
	if f.arrays[key] || f.bools[key] || f.strings[key] || f.numbers[key] ||
		f.counts[key] || f.normalize[key] || f.hide[key] {
		return true
	}
	if _, ok := f.configs[key]; ok {
		return true
	}
	if _, ok := f.coercions[key]; ok {
		return true
	}
	return f.nargs[key] != 0
}

// guessType picks the type used for a value-less option
func (f *flagSet) guessType(key string) ValueType {
	switch {
	case f.isString(key):
		return TypeString
	case f.isNumber(key):
		return TypeNumber
	case f.isBool(key):
		return TypeBoolean
	case f.isArray(key):
		return typeArray
	default:
		return TypeBoolean
	}
}

// typeArray only exists for guessType
const typeArray ValueType = -1

// checkConfiguration returns the first count key that is also an array or narg.
func (f *flagSet) checkConfiguration(format func(string, ...any) string) *ParseError {
	for _, key := range f.countKeys {
		if f.isArray(key) {
			return newParseError(ErrorTypeInvalidConfiguration, key,
				format("Invalid configuration: %s, opts.count excludes opts.array.", key))
		}
		if n, _ := f.narg(key); n != 0 {
			return newParseError(ErrorTypeInvalidConfiguration, key,
				format("Invalid configuration: %s, opts.count excludes opts.narg.", key))
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func nonEmpty(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
