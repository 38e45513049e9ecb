package yargs

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// Parser parses argument lists against a fixed set of Options.
// A Parser holds no per-parse state and is safe for concurrent use.
type Parser struct {
	opts Options
}

// New creates a Parser for opts
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse returns the flattened argv for args
func (p *Parser) Parse(args []string) map[string]any {
	return p.Detailed(args).Argv
}

// Detailed parses args and returns the argv together with the parse metadata
func (p *Parser) Detailed(args []string) *Result {
	s := newState(&p.opts, args)
	s.run()
	return s.result()
}

// Parse parses args with opts and returns the flattened argv.
func Parse(args []string, opts Options) map[string]any {
	return New(opts).Parse(args)
}

// Detailed parses args with opts and returns the full Result.
func Detailed(args []string, opts Options) *Result {
	return New(opts).Detailed(args)
}

// state is everything one parse owns
type state struct {
	opts   *Options
	cfg    Configuration
	flags  *flagSet
	log    *slog.Logger
	format func(string, ...any) string

	defaults    map[string]any
	defaultKeys []string

	// merged alias groups keyed by their canonical name
	combined     map[string][]string
	combinedKeys []string

	newAliases map[string]bool
	defaulted  map[string]bool
	err        *ParseError

	tokens    []*token
	hidden    map[*token]bool
	argv      *branch
	notFlags  []*token
	negatedRe *regexp.Regexp
}

func newState(opts *Options, args []string) *state {
	s := &state{
		opts:       opts,
		cfg:        DefaultConfiguration(),
		flags:      newFlagSet(opts),
		log:        opts.Logger,
		format:     opts.Format,
		defaults:   make(map[string]any, len(opts.Default)),
		newAliases: make(map[string]bool),
		defaulted:  make(map[string]bool),
		hidden:     make(map[*token]bool),
		argv:       newBranch(),
	}
	if opts.Configuration != nil {
		s.cfg = *opts.Configuration
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.format == nil {
		s.format = fmt.Sprintf
	}
	s.negatedRe = regexp.MustCompile("^--" + regexp.QuoteMeta(s.cfg.NegationPrefix) + "(.+)")

	s.tokens = make([]*token, len(args))
	for i, arg := range args {
		s.tokens[i] = &token{text: arg}
	}
	s.argv.set("_", &node{value: []any{}})

	s.defaultKeys = sortedKeys(opts.Default)
	for _, k := range s.defaultKeys {
		s.defaults[k] = normalizeValue(opts.Default[k])
	}

	s.combined, s.combinedKeys = combineAliases(opts.Alias)
	s.extendAliases(s.combinedKeys, s.defaultKeys, s.flags.arrayKeys)
	s.aliasDefaults()

	if err := s.flags.checkConfiguration(s.format); err != nil {
		s.recordError(err)
	}
	return s
}

// recordError keeps the first error of the parse
func (s *state) recordError(err *ParseError) {
	s.log.Debug("parse error", "type", err.Type, "key", err.Key, "error", err.Message)
	if s.err == nil {
		s.err = err
	}
}

func (s *state) run() {
	s.scan()

	// explicit args > env > config files > config objects > defaults
	s.applyEnvVars(true)
	s.applyEnvVars(false)
	s.setConfig()
	s.setConfigObjects()
	s.applyDefaults(s.argv, true)
	s.applyCoercions()
	if s.cfg.SetPlaceholderKey {
		s.setPlaceholderKeys()
	}
	s.zeroCounts()
	s.attachExtras()
	s.strip()
}

// scan walks the token list once. Consumers may splice tokens in after the
// cursor and return the index of the last token they used.
func (s *state) scan() {
	for i := 0; i < len(s.tokens); i++ {
		tok := s.tokens[i]
		arg := tok.text
		sh := s.classify(arg)

		switch {
		case sh.unknownAsArg:
			s.log.Debug("unknown option kept as positional", "arg", arg)
			s.pushPositional(arg, tok)
		case sh.equals:
			m := eqSplitRe.FindStringSubmatch(arg)
			i = s.assignInline(i, tok, m[1], m[2])
		case sh.negated:
			key := s.negatedRe.FindStringSubmatch(arg)[1]
			if s.flags.isArray(key) {
				tok.setValue([]any{false})
			} else {
				tok.setValue(false)
			}
			s.setArg(key, tok).possiblyHide()
		case sh.long:
			key := longKeyRe.FindStringSubmatch(arg)[1]
			i = s.option(i, tok, key)
		case sh.dotEquals:
			m := dotEqSplitRe.FindStringSubmatch(arg)
			tok.setValue(m[2])
			s.setArg(m[1], tok).possiblyHide()
		case sh.dot:
			key := dotKeyRe.FindStringSubmatch(arg)[1]
			next := s.tokenAt(i + 1)
			if next != nil && !strings.HasPrefix(next.text, "-") && !s.flags.isBool(key) && !s.flags.isCount(key) {
				tok.setValue(next.text)
				s.setArg(key, tok).possiblyHide()
				i++
			} else {
				tok.setValue(s.defaultValue(key))
				s.setArg(key, tok).possiblyHide()
			}
		case sh.cluster:
			i = s.shortCluster(i, tok, arg)
		case sh.doubleDash:
			s.notFlags = slices.Clone(s.tokens[i+1:])
			return
		case s.cfg.HaltAtNonOption:
			s.notFlags = slices.Clone(s.tokens[i:])
			return
		default:
			s.pushPositional(s.maybeCoerceNumber("_", arg), tok)
		}
	}
}

func (s *state) tokenAt(i int) *token {
	if i < 0 || i >= len(s.tokens) {
		return nil
	}
	return s.tokens[i]
}

// splice inserts a token holding text right after index i
func (s *state) splice(i int, text string) {
	s.tokens = slices.Insert(s.tokens, i+1, &token{text: text})
}

func (s *state) pushPositional(v any, tok *token) {
	n := s.argv.get("_")
	if n == nil {
		n = &node{}
		s.argv.set("_", n)
	}
	arr, _ := n.value.([]any)
	n.value = append(arr, v)
	n.refs = append(n.refs, tok)
}

// assignInline handles key=value forms. nargs and array keys re-read the
// value as a token of its own so that "--f=a b" style input keeps working.
func (s *state) assignInline(i int, tok *token, key, value string) int {
	if n, _ := s.flags.narg(key); n != 0 {
		s.splice(i, value)
		return s.eatNargs(i, key)
	}
	if s.flags.isArray(key) {
		s.splice(i, value)
		return s.eatArray(i, key)
	}
	tok.setValue(value)
	s.setArg(key, tok).possiblyHide()
	return i
}

// option handles an option written without a value: nargs and arrays run
// their consumers, everything else looks one token ahead.
func (s *state) option(i int, tok *token, key string) int {
	if _, declared := s.flags.narg(key); declared {
		return s.eatNargs(i, key)
	}
	if s.flags.isArray(key) {
		return s.eatArray(i, key)
	}

	next := s.tokenAt(i + 1)
	switch {
	case next != nil && (!strings.HasPrefix(next.text, "-") || isNegative(next.text)) &&
		!s.flags.isBool(key) && !s.flags.isCount(key):
		return s.takeNext(i, tok, next, key)
	case next != nil && isTrueFalse(next.text):
		return s.takeNext(i, tok, next, key)
	default:
		tok.setValue(s.defaultValue(key))
		s.setArg(key, tok).possiblyHide()
		return i
	}
}

func (s *state) takeNext(i int, tok, next *token, key string) int {
	tok.setValue(next.text)
	s.setArg(key, tok).pushRef(next).possiblyHide()
	next.setValue(tok.value)
	return i + 1
}

// shortCluster decodes -abc letter by letter. A letter stops the walk when
// it is followed by "=", a number, or a non-word character; otherwise the
// last letter may take the next token.
func (s *state) shortCluster(i int, tok *token, arg string) int {
	runes := []rune(arg)
	letters := runes[1 : len(runes)-1]
	broken := false

	for j := 0; j < len(letters); j++ {
		next := string(runes[j+2:])
		key := string(letters[j])

		if j+1 < len(letters) && letters[j+1] == '=' {
			value := string(runes[j+3:])
			n, _ := s.flags.narg(key)
			switch {
			case n != 0:
				tok.dropped = true
				s.splice(i, value)
				i = s.eatNargs(i, key)
			case s.flags.isArray(key):
				tok.dropped = true
				s.splice(i, value)
				i = s.eatArray(i, key)
			default:
				tok.setValue(value)
				s.setArg(key, tok).possiblyHide()
			}
			broken = true
			break
		}

		if next == "-" {
			tok.setValue(next)
			s.setArg(key, tok).possiblyHide()
			continue
		}

		if alphaRe.MatchString(key) && clusterNumRe.MatchString(next) {
			tok.setValue(next)
			s.setArg(key, tok).possiblyHide()
			broken = true
			break
		}

		if j+1 < len(letters) && !wordCharRe.MatchString(string(letters[j+1])) {
			tok.setValue(next)
			s.setArg(key, tok).possiblyHide()
			broken = true
			break
		}
		tok.setValue(s.defaultValue(key))
		s.setArg(key, tok).possiblyHide()
	}

	key := string(runes[len(runes)-1])
	if broken || key == "-" {
		return i
	}

	if _, declared := s.flags.narg(key); declared {
		return s.eatNargs(i, key)
	}
	if s.flags.isArray(key) {
		return s.eatArray(i, key)
	}

	next := s.tokenAt(i + 1)
	switch {
	case next != nil && (!shortOptionRe.MatchString(next.text) || isNegative(next.text)) &&
		!s.flags.isBool(key) && !s.flags.isCount(key):
		tok.setValue(next.text)
		s.setArg(key, tok).pushRef(next).possiblyHide()
		return i + 1
	case next != nil && isTrueFalse(next.text):
		tok.setValue(next.text)
		s.setArg(key, tok).pushRef(next).possiblyHide()
		return i + 1
	default:
		tok.setValue(s.defaultValue(key))
		s.setArg(key, tok).possiblyHide()
		return i
	}
}
