package yargs

import (
	"fmt"
	"log/slog"
	"strconv"
)

// D is a convenient alias for defaults and config objects, similar to bson.D or gin.H
// Usage: yargs.D{"host": "localhost", "port": 8080}
type D = map[string]any

// ValueType is the element type of a typed array declaration
type ValueType int

const (
	TypeAny ValueType = iota
	TypeBoolean
	TypeString
	TypeNumber
)

// String returns the string representation of the value type
func (t ValueType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeAny:
		return "any"
	default:
		return "unknown"
	}
}

// CoerceFunc transforms the final value of a key. Returning an error (or
// panicking) records a coercion error on the result.
type CoerceFunc func(value any) (any, error)

// ConfigLoader loads the config file found at an absolute path.
type ConfigLoader func(path string) (map[string]any, error)

// Configuration toggles parser behavior for one parse.
type Configuration struct {
	ShortOptionGroups       bool
	CamelCaseExpansion      bool
	DotNotation             bool
	ParseNumbers            bool
	BooleanNegation         bool
	NegationPrefix          string
	DuplicateArgumentsArray bool
	FlattenDuplicateArrays  bool
	PopulateDoubleDash      bool
	CombineArrays           bool
	SetPlaceholderKey       bool
	HaltAtNonOption         bool
	StripAliased            bool
	StripDashed             bool
	UnknownOptionsAsArgs    bool
}

// DefaultConfiguration returns the configuration used when Options.Configuration is nil.
func DefaultConfiguration() Configuration {
	return Configuration{
		ShortOptionGroups:       true,
		CamelCaseExpansion:      true,
		DotNotation:             true,
		ParseNumbers:            true,
		BooleanNegation:         true,
		NegationPrefix:          "no-",
		DuplicateArgumentsArray: true,
		FlattenDuplicateArrays:  true,
	}
}

// Set changes a setting by its dashed name, e.g. Set("dot-notation", "false").
func (c *Configuration) Set(name, value string) error {
	if name == "negation-prefix" {
		c.NegationPrefix = value
		return nil
	}

	target := c.boolField(name)
	if target == nil {
		return fmt.Errorf("unknown configuration setting: %s", name)
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", name, err)
	}
	*target = b
	return nil
}

func (c *Configuration) boolField(name string) *bool {
	switch name {
	case "short-option-groups":
		return &c.ShortOptionGroups
	case "camel-case-expansion":
		return &c.CamelCaseExpansion
	case "dot-notation":
		return &c.DotNotation
	case "parse-numbers":
		return &c.ParseNumbers
	case "boolean-negation":
		return &c.BooleanNegation
	case "duplicate-arguments-array":
		return &c.DuplicateArgumentsArray
	case "flatten-duplicate-arrays":
		return &c.FlattenDuplicateArrays
	case "populate--":
		return &c.PopulateDoubleDash
	case "combine-arrays":
		return &c.CombineArrays
	case "set-placeholder-key":
		return &c.SetPlaceholderKey
	case "halt-at-non-option":
		return &c.HaltAtNonOption
	case "strip-aliased":
		return &c.StripAliased
	case "strip-dashed":
		return &c.StripDashed
	case "unknown-options-as-args":
		return &c.UnknownOptionsAsArgs
	default:
		return nil
	}
}

// Options declares the flags of one parse and where values may come from.
type Options struct {
	// Alias maps a key to its alternate names. Overlapping groups are merged.
	Alias map[string][]string

	Array     []string
	Boolean   []string
	String    []string
	Number    []string
	Count     []string
	Normalize []string
	// Hide lists keys whose tokens are dropped from Result.Tokens.
	Hide []string

	// Narg is the number of following tokens a key consumes. Zero is valid.
	Narg   map[string]int
	Coerce map[string]CoerceFunc
	// Config lists keys whose value is a config file path. A nil loader
	// selects the default loader for the file extension.
	Config map[string]ConfigLoader

	Default       map[string]any
	ConfigObjects []map[string]any

	// UseEnv enables environment variables; EnvPrefix filters them by name.
	UseEnv    bool
	EnvPrefix string
	// Environ overrides os.Environ as the source of KEY=value pairs.
	Environ []string

	// Configuration defaults to DefaultConfiguration() when nil.
	Configuration *Configuration

	// Format builds error messages, fmt.Sprintf when nil.
	Format func(format string, args ...any) string
	Logger *slog.Logger
}
