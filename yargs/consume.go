package yargs

import (
	"slices"
	"strings"

	"github.com/dzonerzy/go-yargs/internal/casing"
)

// assignment is the set of nodes one setArg call wrote
type assignment struct {
	s     *state
	key   string
	nodes []*node
}

func (a assignment) pushRef(t *token) assignment {
	for _, n := range a.nodes {
		n.refs = append(n.refs, t)
	}
	return a
}

func (a assignment) setRefs(refs []*token) {
	for _, n := range a.nodes {
		n.refs = refs
	}
}

// possiblyHide hides every token behind the written nodes when the key is
// declared hidden
func (a assignment) possiblyHide() assignment {
	if !a.s.flags.isHidden(a.key) {
		return a
	}
	for _, n := range a.nodes {
		for _, t := range n.refs {
			a.s.hide(t)
		}
	}
	return a
}

func (s *state) hide(t *token) {
	if s.hidden[t] {
		return
	}
	s.hidden[t] = true
	for _, g := range t.group {
		s.hide(g)
	}
}

// eatNargs consumes up to the declared number of tokens after i for key.
// Consumption stops at the first option-like token; a shortfall is
// recorded as an error and parsing goes on with what was available.
func (s *state) eatNargs(i int, key string) int {
	toEat, _ := s.flags.narg(key)
	refs := []*token{s.tokens[i]}

	if toEat == 0 {
		a := s.setArg(key, valueToken(s.defaultValue(key)))
		a.setRefs(refs)
		a.possiblyHide()
		return i
	}

	available := 0
	for ii := i + 1; ii < len(s.tokens); ii++ {
		text := s.tokens[ii].text
		if nargsStopRe.MatchString(text) && !isNegative(text) && !s.isUnknownOptionAsArg(text) {
			break
		}
		available++
	}

	if available < toEat {
		s.recordError(newParseError(ErrorTypeNotEnoughArguments, key,
			s.format("Not enough arguments following: %s", key)))
	}

	consumed := min(available, toEat)
	assigned := make([]assignment, 0, consumed)
	for ii := i + 1; ii < i+1+consumed; ii++ {
		refs = append(refs, s.tokens[ii])
		assigned = append(assigned, s.setArg(key, s.tokens[ii]))
	}
	refs = slices.Clip(refs)
	for _, a := range assigned {
		a.setRefs(refs)
	}
	for _, a := range assigned {
		a.possiblyHide()
	}

	s.log.Debug("nargs consumed", "key", key, "want", toEat, "got", consumed)
	return i + consumed
}

// eatArray consumes every token after i up to the next option and assigns
// them to key as one array value held by a single group token.
func (s *state) eatArray(i int, key string) int {
	holder := &token{group: []*token{s.tokens[i]}}
	values := []any{}
	next := s.tokenAt(i + 1)

	switch {
	case s.flags.isBool(key) && (next == nil || !isTrueFalse(next.text)):
		values = append(values, true)
	case next == nil || s.stopsArray(next.text):
		if def, ok := s.defaults[key]; ok {
			if arr, isArr := def.([]any); isArr {
				values = concat(values, arr)
			} else {
				values = append(values, def)
			}
		}
	default:
		for ii := i + 1; ii < len(s.tokens); ii++ {
			next = s.tokens[ii]
			if s.stopsArray(next.text) {
				break
			}
			i = ii
			s.processValue(key, next)
			holder.group = append(holder.group, next)
			values = append(values, next.value)
		}
	}

	holder.setValue(values)
	s.setArg(key, holder).possiblyHide()
	s.log.Debug("array consumed", "key", key, "count", len(values))
	return i
}

func (s *state) stopsArray(text string) bool {
	return strings.HasPrefix(text, "-") && !isNegative(text) && !s.isUnknownOptionAsArg(text)
}

// defaultValue picks the value of an option given without one
func (s *state) defaultValue(key string) any {
	if !s.flags.isBool(key) && !s.flags.isCount(key) {
		if v, ok := s.defaults[key]; ok {
			return v
		}
	}
	switch s.flags.guessType(key) {
	case TypeString:
		return ""
	case TypeNumber:
		return nil
	case typeArray:
		return []any{}
	default:
		return true
	}
}

// setArg runs tok through the value pipeline and writes it to key, to every
// alias of key, and with dot-notation to every alias of the first segment.
func (s *state) setArg(key string, tok *token) assignment {
	if s.cfg.CamelCaseExpansion && strings.Contains(key, "-") {
		s.addNewAlias(key, camelPath(key))
	}

	s.processValue(key, tok)

	path := strings.Split(key, ".")
	a := assignment{s: s, key: key}
	a.nodes = append(a.nodes, s.setKey(s.argv, path, tok))

	for _, alias := range s.flags.aliases[key] {
		a.nodes = append(a.nodes, s.setKey(s.argv, strings.Split(alias, "."), tok))
	}

	if len(path) > 1 && s.cfg.DotNotation {
		for _, alias := range s.flags.aliases[path[0]] {
			expanded := append(strings.Split(alias, "."), path[1:]...)
			a.nodes = append(a.nodes, s.setKey(s.argv, expanded, tok))
		}
	}

	s.log.Debug("set", "key", key, "value", tok.value)
	return a
}

// camelPath camelCases every dot-separated segment of key
func camelPath(key string) string {
	parts := strings.Split(key, ".")
	for i := range parts {
		parts[i] = casing.CamelCase(parts[i])
	}
	return strings.Join(parts, ".")
}
