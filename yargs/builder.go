package yargs

import (
	"log/slog"
)

// Builder assembles Options with a fluent API.
//
//	p, err := yargs.NewBuilder().
//		Boolean("verbose").Alias("v").Back().
//		Number("port").Default(8080).Back().
//		Env("APP_").
//		Build()
type Builder struct {
	opts Options
	cfg  Configuration
	err  error
}

// NewBuilder creates a Builder with the default configuration
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfiguration()}
}

// KeyBuilder configures a single key. T is the Go type accepted as default.
type KeyBuilder[T any] struct {
	key    string
	parent *Builder
}

func newKey[T any](b *Builder, key string) *KeyBuilder[T] {
	return &KeyBuilder[T]{key: key, parent: b}
}

// Key declares key without a type
func (b *Builder) Key(key string) *KeyBuilder[any] {
	return newKey[any](b, key)
}

// Boolean declares a boolean key
func (b *Builder) Boolean(key string) *KeyBuilder[bool] {
	b.opts.Boolean = append(b.opts.Boolean, key)
	return newKey[bool](b, key)
}

// String declares a key whose values are never converted to numbers
func (b *Builder) String(key string) *KeyBuilder[string] {
	b.opts.String = append(b.opts.String, key)
	return newKey[string](b, key)
}

// Number declares a key whose values are always converted to numbers
func (b *Builder) Number(key string) *KeyBuilder[float64] {
	b.opts.Number = append(b.opts.Number, key)
	return newKey[float64](b, key)
}

// ArrayOf declares an array key; elem also declares the element type.
func (b *Builder) ArrayOf(key string, elem ValueType) *KeyBuilder[[]any] {
	b.opts.Array = append(b.opts.Array, key)
	switch elem {
	case TypeBoolean:
		b.opts.Boolean = append(b.opts.Boolean, key)
	case TypeString:
		b.opts.String = append(b.opts.String, key)
	case TypeNumber:
		b.opts.Number = append(b.opts.Number, key)
	}
	return newKey[[]any](b, key)
}

// Count declares a key counting its occurrences
func (b *Builder) Count(key string) *KeyBuilder[float64] {
	b.opts.Count = append(b.opts.Count, key)
	return newKey[float64](b, key)
}

// Alias adds alternate names for key
func (b *Builder) Alias(key string, aliases ...string) *Builder {
	if b.opts.Alias == nil {
		b.opts.Alias = make(map[string][]string)
	}
	b.opts.Alias[key] = append(b.opts.Alias[key], aliases...)
	return b
}

// Default sets the value used when key is given nowhere else
func (b *Builder) Default(key string, value any) *Builder {
	if b.opts.Default == nil {
		b.opts.Default = make(map[string]any)
	}
	b.opts.Default[key] = value
	return b
}

// Narg sets how many following tokens key consumes
func (b *Builder) Narg(key string, n int) *Builder {
	if b.opts.Narg == nil {
		b.opts.Narg = make(map[string]int)
	}
	b.opts.Narg[key] = n
	return b
}

// Coerce registers a function applied to the final value of key
func (b *Builder) Coerce(key string, fn CoerceFunc) *Builder {
	if b.opts.Coerce == nil {
		b.opts.Coerce = make(map[string]CoerceFunc)
	}
	b.opts.Coerce[key] = fn
	return b
}

// Config declares key as a config file path. A nil loader picks one by
// file extension.
func (b *Builder) Config(key string, loader ConfigLoader) *Builder {
	if b.opts.Config == nil {
		b.opts.Config = make(map[string]ConfigLoader)
	}
	b.opts.Config[key] = loader
	return b
}

// ConfigObject adds an in-memory config applied below config files
func (b *Builder) ConfigObject(config map[string]any) *Builder {
	b.opts.ConfigObjects = append(b.opts.ConfigObjects, config)
	return b
}

// Env enables environment variables whose names start with prefix.
// An empty prefix matches every variable.
func (b *Builder) Env(prefix string) *Builder {
	b.opts.UseEnv = true
	b.opts.EnvPrefix = prefix
	return b
}

// Environ replaces the process environment as the env source
func (b *Builder) Environ(environ []string) *Builder {
	b.opts.Environ = environ
	return b
}

// Set changes a configuration setting by name. The first invalid setting
// is returned by Build.
func (b *Builder) Set(name, value string) *Builder {
	if err := b.cfg.Set(name, value); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// Configure edits the configuration in place
func (b *Builder) Configure(fn func(*Configuration)) *Builder {
	fn(&b.cfg)
	return b
}

// Format sets the formatter used for error messages
func (b *Builder) Format(fn func(format string, args ...any) string) *Builder {
	b.opts.Format = fn
	return b
}

// Logger sets the debug logger
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// Options returns the assembled Options
func (b *Builder) Options() (Options, error) {
	if b.err != nil {
		return Options{}, b.err
	}
	opts := b.opts
	cfg := b.cfg
	opts.Configuration = &cfg
	return opts, nil
}

// Build returns a Parser for the assembled Options
func (b *Builder) Build() (*Parser, error) {
	opts, err := b.Options()
	if err != nil {
		return nil, err
	}
	return New(opts), nil
}

// Key modifiers

// Alias adds alternate names for the key
func (k *KeyBuilder[T]) Alias(aliases ...string) *KeyBuilder[T] {
	k.parent.Alias(k.key, aliases...)
	return k
}

// Default sets the default value for the key
func (k *KeyBuilder[T]) Default(value T) *KeyBuilder[T] {
	k.parent.Default(k.key, value)
	return k
}

// Narg sets how many following tokens the key consumes
func (k *KeyBuilder[T]) Narg(n int) *KeyBuilder[T] {
	k.parent.Narg(k.key, n)
	return k
}

// Coerce registers a function applied to the final value
func (k *KeyBuilder[T]) Coerce(fn CoerceFunc) *KeyBuilder[T] {
	k.parent.Coerce(k.key, fn)
	return k
}

// Normalize cleans values of the key as file paths
func (k *KeyBuilder[T]) Normalize() *KeyBuilder[T] {
	k.parent.opts.Normalize = append(k.parent.opts.Normalize, k.key)
	return k
}

// Hidden drops the tokens of the key from Result.Tokens
func (k *KeyBuilder[T]) Hidden() *KeyBuilder[T] {
	k.parent.opts.Hide = append(k.parent.opts.Hide, k.key)
	return k
}

// Config marks the key as a config file path
func (k *KeyBuilder[T]) Config(loader ConfigLoader) *KeyBuilder[T] {
	k.parent.Config(k.key, loader)
	return k
}

// Back returns to the parent builder
func (k *KeyBuilder[T]) Back() *Builder {
	return k.parent
}
