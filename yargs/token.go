package yargs

import (
	"regexp"
	"strings"
)

// token is one element of the working argument list. Tokens created for
// env vars, config files and defaults carry a value and no text; array
// consumption creates a holder whose group lists the tokens it ate.
type token struct {
	text     string
	value    any
	hasValue bool
	group    []*token
	// dropped marks a token replaced by the pieces spliced after it
	dropped bool
}

func (t *token) setValue(v any) {
	t.value = v
	t.hasValue = true
}

func valueToken(v any) *token {
	return &token{value: v, hasValue: true}
}

var (
	negativeRe     = regexp.MustCompile(`^-([0-9]+(\.[0-9]+)?|\.[0-9]+)$`)
	longEqRe       = regexp.MustCompile(`^--.+=`)
	shortEqRe      = regexp.MustCompile(`^-.+=`)
	eqSplitRe      = regexp.MustCompile(`^--?([^=]+)=([\s\S]*)$`)
	longRe         = regexp.MustCompile(`^--.+`)
	shortRe        = regexp.MustCompile(`^-[^-]+`)
	longKeyRe      = regexp.MustCompile(`^--?(.+)`)
	dotEqRe        = regexp.MustCompile(`^-.\..+=`)
	dotEqSplitRe   = regexp.MustCompile(`^-([^=]+)=([\s\S]*)$`)
	dotRe          = regexp.MustCompile(`^-.\..+`)
	dotKeyRe       = regexp.MustCompile(`^-(.\..+)`)
	clusterNumRe   = regexp.MustCompile(`^-?\d+(\.\d*)?(e-?\d+)?$`)
	nargsStopRe    = regexp.MustCompile(`^-[^0-9]`)
	shortOptionRe  = regexp.MustCompile(`^(-|--)[^-]`)
	wordCharRe     = regexp.MustCompile(`^\w$`)
	alphaRe        = regexp.MustCompile(`^[A-Za-z]$`)
	flagWithEquals = regexp.MustCompile(`^-+([^=]+?)=[\s\S]*$`)
	normalFlag     = regexp.MustCompile(`^-+([^=]+?)$`)
	flagEndHyphen  = regexp.MustCompile(`^-+([^=]+?)-$`)
	flagEndDigits  = regexp.MustCompile(`^-+([^=]+?)\d+$`)
	flagEndNonWord = regexp.MustCompile(`^-+([^=]+?)\W+.*$`)
)

// shape holds the precomputed predicates the dispatcher matches against,
// one per rule, in rule order.
type shape struct {
	unknownAsArg bool // 1
	equals       bool // 2: --key=value
	negated      bool // 3: --no-key
	long         bool // 4: --key
	dotEquals    bool // 5: -a.b=value
	dot          bool // 6: -a.b
	cluster      bool // 7: -abc
	doubleDash   bool // 8: --
}

func (s *state) classify(arg string) shape {
	groups := s.cfg.ShortOptionGroups
	negative := negativeRe.MatchString(arg)
	return shape{
		unknownAsArg: arg != "--" && s.isUnknownOptionAsArg(arg),
		equals:       longEqRe.MatchString(arg) || (!groups && shortEqRe.MatchString(arg)),
		negated:      s.cfg.BooleanNegation && s.negatedRe.MatchString(arg),
		long:         longRe.MatchString(arg) || (!groups && shortRe.MatchString(arg)),
		dotEquals:    dotEqRe.MatchString(arg),
		dot:          dotRe.MatchString(arg) && !negative,
		cluster:      shortRe.MatchString(arg) && !negative,
		doubleDash:   arg == "--",
	}
}

func isNegative(arg string) bool {
	return negativeRe.MatchString(arg)
}

func isTrueFalse(arg string) bool {
	return arg == "true" || arg == "false"
}

// isUnknownOptionAsArg reports whether arg is an option that no declared
// key accounts for while unknown-options-as-args is on.
func (s *state) isUnknownOptionAsArg(arg string) bool {
	return s.cfg.UnknownOptionsAsArgs && strings.HasPrefix(arg, "-") && s.isUnknownOption(arg)
}

func (s *state) isUnknownOption(arg string) bool {
	if isNegative(arg) {
		return false
	}
	if s.hasAllShortFlags(arg) {
		return false
	}
	patterns := []*regexp.Regexp{flagWithEquals, s.negatedRe, normalFlag, flagEndHyphen, flagEndDigits, flagEndNonWord}
	for _, re := range patterns {
		if m := re.FindStringSubmatch(arg); m != nil && s.flags.known(m[1]) {
			return false
		}
	}
	return true
}

// hasAllShortFlags reports whether arg is a short cluster made only of
// declared letters, following the same stop rules as cluster decoding.
func (s *state) hasAllShortFlags(arg string) bool {
	if isNegative(arg) || !shortRe.MatchString(arg) {
		return false
	}
	runes := []rune(arg)
	letters := runes[1:]
	for j := range letters {
		next := string(runes[j+2:])
		letter := string(letters[j])
		if !s.flags.known(letter) {
			return false
		}
		if (j+1 < len(letters) && letters[j+1] == '=') ||
			next == "-" ||
			(alphaRe.MatchString(letter) && clusterNumRe.MatchString(next)) ||
			(j+1 < len(letters) && !wordCharRe.MatchString(string(letters[j+1]))) {
			break
		}
	}
	return true
}
