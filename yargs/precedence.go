package yargs

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dzonerzy/go-yargs/internal/casing"
)

// applyEnvVars fills unset keys from the environment. NAME__SUB maps to
// name.sub after the prefix is removed. With configOnly set only variables
// naming a config-file key are used, so an env var can point at a config file.
func (s *state) applyEnvVars(configOnly bool) {
	if !s.opts.UseEnv {
		return
	}
	environ := s.opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	prefix := s.opts.EnvPrefix

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}

		keys := strings.Split(name, "__")
		keys[0] = keys[0][len(prefix):]
		for i := range keys {
			keys[i] = casing.CamelCase(keys[i])
		}
		key := strings.Join(keys, ".")
		if key == "" {
			continue
		}

		if configOnly {
			if _, isConfig := s.flags.configs[key]; !isConfig {
				continue
			}
		}
		if s.hasKey(s.argv, keys) {
			continue
		}
		s.log.Debug("env applied", "var", name, "key", key)
		s.setArg(key, valueToken(value)).possiblyHide()
	}
}

// setConfig loads every declared config file whose path is known, from the
// arguments or else from the defaults, and merges it below the arguments.
func (s *state) setConfig() {
	lookup := newBranch()
	s.applyDefaults(lookup, false)

	for _, key := range s.flags.configKeys {
		n, fromArgv := s.argv.get(key), true
		if n == nil {
			n, fromArgv = lookup.get(key), false
		}
		if n == nil || !truthy(n.value) {
			continue
		}

		config, err := s.loadConfig(key, n.value)
		if err != nil {
			var perr *ParseError
			switch {
			case errors.As(err, &perr):
				s.recordError(perr)
			case fromArgv:
				s.recordError(newParseError(ErrorTypeConfigFile, key,
					s.format("Invalid config file: %s", fmt.Sprint(n.value))).WithCause(err))
			default:
				s.log.Debug("config file skipped", "key", key, "error", err)
			}
			continue
		}
		s.setConfigObject(config, "")
	}
}

// loadConfig runs the loader declared for key. Errors from a custom loader
// come back as *ParseError since they are always reported.
func (s *state) loadConfig(key string, value any) (map[string]any, error) {
	path, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("config path for %s is not a string", key)
	}
	resolved, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	loader := s.flags.configs[key]
	if loader == nil {
		s.log.Debug("loading config file", "key", key, "path", resolved)
		return LoadConfigFile(resolved)
	}

	s.log.Debug("loading config file with custom loader", "key", key, "path", resolved)
	config, err := loader(resolved)
	if err != nil {
		return nil, newParseError(ErrorTypeConfigFile, key, err.Error()).WithCause(err)
	}
	return config, nil
}

// setConfigObject merges config below what is already set. With
// dot-notation nested objects are walked as dotted keys; arrays are combined
// with existing values when combine-arrays is on.
func (s *state) setConfigObject(config map[string]any, prev string) {
	for _, key := range sortedKeys(config) {
		value := normalizeValue(config[key])
		fullKey := key
		if prev != "" {
			fullKey = prev + "." + key
		}

		if nested, ok := value.(map[string]any); ok && s.cfg.DotNotation {
			s.setConfigObject(nested, fullKey)
			continue
		}

		if !s.hasKey(s.argv, strings.Split(fullKey, ".")) || (s.flags.isArray(fullKey) && s.cfg.CombineArrays) {
			s.setArg(fullKey, valueToken(value)).possiblyHide()
		}
	}
}

func (s *state) setConfigObjects() {
	for _, config := range s.opts.ConfigObjects {
		s.setConfigObject(config, "")
	}
}

// applyDefaults writes every default (and its aliases) that root lacks.
// Only the pass over the real argv records Defaulted.
func (s *state) applyDefaults(root *branch, record bool) {
	for _, key := range s.defaultKeys {
		path := strings.Split(key, ".")
		if s.hasKey(root, path) {
			continue
		}
		s.setKey(root, path, valueToken(s.defaults[key]))
		if record {
			s.defaulted[key] = true
			s.log.Debug("default applied", "key", key)
		}

		for _, alias := range s.flags.aliases[key] {
			aliasPath := strings.Split(alias, ".")
			if s.hasKey(root, aliasPath) {
				continue
			}
			s.setKey(root, aliasPath, valueToken(s.defaults[key]))
		}
	}
}

// applyCoercions runs each coercion once per alias group and writes the
// result to every name of the group.
func (s *state) applyCoercions() {
	applied := make(map[string]bool)
	for _, key := range s.argv.keys() {
		if applied[key] {
			continue
		}
		coerce, ok := lookup(s.flags, key, s.flags.coercions)
		if !ok || coerce == nil {
			continue
		}

		value, err := runCoercion(coerce, flatten(s.argv.get(key).value))
		if err != nil {
			s.recordError(newParseError(ErrorTypeCoercion, key, err.Error()).WithCause(err))
			continue
		}
		value = s.maybeCoerceNumber(key, normalizeValue(value))

		for _, name := range append(slices.Clone(s.flags.aliases[key]), key) {
			n := s.argv.get(name)
			if n == nil {
				n = &node{}
				s.argv.set(name, n)
			}
			n.value = value
			applied[name] = true
		}
	}
}

// runCoercion calls fn, turning a panic into an error
func runCoercion(fn CoerceFunc, value any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("coercion panicked: %w", e)
				return
			}
			err = fmt.Errorf("coercion panicked: %v", r)
		}
	}()
	return fn(value)
}

// setPlaceholderKeys makes every declared key without a dot present
func (s *state) setPlaceholderKeys() {
	for _, key := range s.flags.keys {
		if strings.Contains(key, ".") || s.argv.get(key) != nil {
			continue
		}
		s.argv.set(key, &node{})
	}
}

// zeroCounts sets unset counts to 0
func (s *state) zeroCounts() {
	for _, key := range s.flags.countKeys {
		if !s.hasKey(s.argv, strings.Split(key, ".")) {
			s.setArg(key, valueToken(float64(0))).possiblyHide()
		}
	}
}

// attachExtras appends the tokens after "--" (or after the first
// positional with halt-at-non-option) to "_", or to "--" with populate--.
func (s *state) attachExtras() {
	target := "_"
	if s.cfg.PopulateDoubleDash {
		target = "--"
		if len(s.notFlags) > 0 {
			s.argv.set(target, &node{value: []any{}})
		}
	}

	for _, t := range s.notFlags {
		n := s.argv.get(target)
		if n == nil {
			n = &node{value: []any{}}
			s.argv.set(target, n)
		}
		arr, _ := n.value.([]any)
		n.value = append(arr, t.text)
		n.refs = append(n.refs, t)
	}
}

func (s *state) strip() {
	if s.cfg.CamelCaseExpansion && s.cfg.StripDashed {
		for _, key := range s.argv.keys() {
			if key != "--" && strings.Contains(key, "-") {
				s.argv.remove(key)
			}
		}
	}

	if s.cfg.StripAliased {
		for _, key := range s.combinedKeys {
			for _, alias := range s.combined[key] {
				if s.cfg.CamelCaseExpansion {
					s.argv.remove(camelPath(alias))
				}
				s.argv.remove(alias)
			}
		}
	}
}

// truthy mirrors the loose truthiness used to decide whether a config path
// was given at all
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}
