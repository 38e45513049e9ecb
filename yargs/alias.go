package yargs

import (
	"slices"
	"strings"

	"github.com/dzonerzy/go-yargs/internal/casing"
)

// combineAliases merges declared alias groups that share a member until no
// two groups overlap. The last member of each merged group becomes its key.
func combineAliases(declared map[string][]string) (map[string][]string, []string) {
	groups := make([][]string, 0, len(declared))
	for _, key := range sortedKeys(declared) {
		group := append(nonEmpty(declared[key]), key)
		groups = append(groups, group)
	}

	for change := true; change; {
		change = false
		for i := 0; i < len(groups); i++ {
			for ii := i + 1; ii < len(groups); ii++ {
				if !intersects(groups[i], groups[ii]) {
					continue
				}
				groups[i] = append(groups[i], groups[ii]...)
				groups = slices.Delete(groups, ii, ii+1)
				change = true
				break
			}
		}
	}

	combined := make(map[string][]string, len(groups))
	keys := make([]string, 0, len(groups))
	for _, group := range groups {
		group = dedupe(group)
		key := group[len(group)-1]
		combined[key] = group[:len(group)-1]
		keys = append(keys, key)
	}
	return combined, keys
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}

// dedupe keeps the first occurrence of every name
func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// extendAliases builds the symmetric alias table. Keys are visited in the
// given order and a key that already has an entry is left alone. With
// camel-case expansion every dashed name gains its camelCase form and every
// camelCase name its dashed form.
func (s *state) extendAliases(lists ...[]string) {
	for _, list := range lists {
		for _, key := range list {
			if _, ok := s.flags.aliases[key]; ok {
				continue
			}

			aliases := slices.Clone(s.combined[key])
			if aliases == nil {
				aliases = []string{}
			}
			if s.cfg.CamelCaseExpansion {
				for _, x := range append(slices.Clone(aliases), key) {
					if strings.Contains(x, "-") {
						aliases = s.deriveAlias(key, aliases, casing.CamelCase(x))
					}
				}
				for _, x := range append(slices.Clone(aliases), key) {
					if len(x) > 1 && casing.HasUpper(x) {
						aliases = s.deriveAlias(key, aliases, casing.Decamelize(x, "-"))
					}
				}
			}

			s.flags.aliases[key] = aliases
			for _, x := range aliases {
				others := make([]string, 0, len(aliases))
				others = append(others, key)
				for _, y := range aliases {
					if y != x {
						others = append(others, y)
					}
				}
				s.flags.aliases[x] = others
			}
		}
	}
}

func (s *state) deriveAlias(key string, aliases []string, derived string) []string {
	if derived == key || slices.Contains(aliases, derived) {
		return aliases
	}
	s.newAliases[derived] = true
	return append(aliases, derived)
}

// aliasDefaults copies every default onto the aliases of its key
func (s *state) aliasDefaults() {
	for _, key := range slices.Clone(s.defaultKeys) {
		for _, alias := range s.flags.aliases[key] {
			if _, ok := s.defaults[alias]; !ok {
				s.defaultKeys = append(s.defaultKeys, alias)
			}
			s.defaults[alias] = s.defaults[key]
		}
	}
}

// addNewAlias links key and alias both ways when neither has aliases yet.
// It is used for the camelCase form of dashed keys seen during the parse.
func (s *state) addNewAlias(key, alias string) {
	if alias == "" || alias == key {
		return
	}
	if len(s.flags.aliases[key]) == 0 {
		s.flags.aliases[key] = []string{alias}
		s.newAliases[alias] = true
	}
	if len(s.flags.aliases[alias]) == 0 {
		s.addNewAlias(alias, key)
	}
}
