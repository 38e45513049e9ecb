package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-yargs/yargs"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// dumpFlags holds the declarations given on the command line of the tool
type dumpFlags struct {
	aliases   []string
	booleans  []string
	strings   []string
	numbers   []string
	arrays    []string
	counts    []string
	normalize []string
	hide      []string
	nargs     []string
	defaults  []string
	configs   []string
	settings  []string
	envPrefix string
	useEnv    bool

	output  string
	tokens  bool
	strict  bool
	debug   bool
	noColor bool
}

var errUnknownKeys = errors.New("unknown keys")

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &dumpFlags{}

	cmd := &cobra.Command{
		Use:   "yargs-dump [declarations] -- [args...]",
		Short: "Parse arguments with yargs and print the resulting argv",
		Example: `  yargs-dump --boolean verbose --alias verbose=v -- -v --port 8080 build
  yargs-dump --config settings --default settings=app.yaml -o yaml --
  yargs-dump --env APP_ --strict -- --prot 80`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if f.noColor {
				color.NoColor = true
			}
			return run(f, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().SetInterspersed(false)

	fl := cmd.Flags()
	fl.StringArrayVar(&f.aliases, "alias", nil, "alias group as key=a,b")
	fl.StringSliceVar(&f.booleans, "boolean", nil, "boolean keys")
	fl.StringSliceVar(&f.strings, "string", nil, "string keys")
	fl.StringSliceVar(&f.numbers, "number", nil, "number keys")
	fl.StringSliceVar(&f.arrays, "array", nil, "array keys")
	fl.StringSliceVar(&f.counts, "count", nil, "count keys")
	fl.StringSliceVar(&f.normalize, "normalize", nil, "keys holding file paths")
	fl.StringSliceVar(&f.hide, "hide", nil, "keys left out of the token list")
	fl.StringArrayVar(&f.nargs, "narg", nil, "tokens consumed by a key as key=n")
	fl.StringArrayVar(&f.defaults, "default", nil, "default as key=value, the value is read as YAML")
	fl.StringSliceVar(&f.configs, "config", nil, "keys naming a config file")
	fl.StringArrayVar(&f.settings, "set", nil, "parser setting as name=value, e.g. dot-notation=false")
	fl.StringVar(&f.envPrefix, "env", "", "read environment variables with this prefix")
	fl.BoolVar(&f.useEnv, "use-env", false, "read environment variables even without a prefix")

	fl.StringVarP(&f.output, "output", "o", "pretty", "output format: pretty, json or yaml")
	fl.BoolVar(&f.tokens, "tokens", false, "also print the visible token list")
	fl.BoolVar(&f.strict, "strict", false, "fail on keys nobody declared")
	fl.BoolVar(&f.debug, "debug", false, "log parser decisions to stderr")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	return cmd
}

func run(f *dumpFlags, args []string, stdout, stderr io.Writer) error {
	b, err := f.builder(stderr)
	if err != nil {
		return err
	}
	p, err := b.Build()
	if err != nil {
		return err
	}

	res := p.Detailed(args)
	if err := render(stdout, f.output, res); err != nil {
		return err
	}
	if f.tokens {
		fmt.Fprintf(stdout, "%s %s\n", dim("tokens:"), strings.Join(res.Tokens(), " "))
	}

	if f.strict {
		declared := f.declared()
		unknown := unknownKeys(res, declared)
		for _, key := range unknown {
			msg := fmt.Sprintf("unknown key %q", key)
			if s := suggest(key, declared); s != "" {
				msg += fmt.Sprintf(", did you mean %q?", s)
			}
			fmt.Fprintf(stderr, "%s %s\n", yellow("warning:"), msg)
		}
		if len(unknown) > 0 && res.Error == nil {
			return fmt.Errorf("%w: %s", errUnknownKeys, strings.Join(unknown, ", "))
		}
	}

	if res.Error != nil {
		var perr *yargs.ParseError
		if errors.As(res.Error, &perr) {
			return fmt.Errorf("%s: %w", perr.Type, res.Error)
		}
		return res.Error
	}
	return nil
}

// builder turns the tool flags into a yargs builder
func (f *dumpFlags) builder(stderr io.Writer) (*yargs.Builder, error) {
	b := yargs.NewBuilder()

	for _, spec := range f.aliases {
		key, list, ok := strings.Cut(spec, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --alias %q, want key=a,b", spec)
		}
		b.Alias(key, strings.Split(list, ",")...)
	}
	for _, key := range f.booleans {
		b.Boolean(key)
	}
	for _, key := range f.strings {
		b.String(key)
	}
	for _, key := range f.numbers {
		b.Number(key)
	}
	for _, key := range f.arrays {
		b.ArrayOf(key, yargs.TypeAny)
	}
	for _, key := range f.counts {
		b.Count(key)
	}
	for _, key := range f.normalize {
		b.Key(key).Normalize()
	}
	for _, key := range f.hide {
		b.Key(key).Hidden()
	}
	for _, spec := range f.nargs {
		key, raw, ok := strings.Cut(spec, "=")
		n, err := strconv.Atoi(raw)
		if !ok || err != nil || n < 0 {
			return nil, fmt.Errorf("invalid --narg %q, want key=n", spec)
		}
		b.Narg(key, n)
	}
	for _, spec := range f.defaults {
		key, raw, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --default %q, want key=value", spec)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid --default %q: %w", spec, err)
		}
		b.Default(key, value)
	}
	for _, key := range f.configs {
		b.Config(key, nil)
	}
	for _, spec := range f.settings {
		name, value, _ := strings.Cut(spec, "=")
		b.Set(name, value)
	}
	if f.useEnv || f.envPrefix != "" {
		b.Env(f.envPrefix)
	}
	if f.debug {
		b.Logger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	return b, nil
}

// declared lists every key named by a declaration flag
func (f *dumpFlags) declared() []string {
	var keys []string
	for _, spec := range f.aliases {
		key, list, _ := strings.Cut(spec, "=")
		keys = append(keys, key)
		keys = append(keys, strings.Split(list, ",")...)
	}
	for _, list := range [][]string{f.booleans, f.strings, f.numbers, f.arrays, f.counts, f.normalize, f.hide, f.configs} {
		keys = append(keys, list...)
	}
	for _, list := range [][]string{f.nargs, f.defaults} {
		for _, spec := range list {
			key, _, _ := strings.Cut(spec, "=")
			keys = append(keys, key)
		}
	}
	return keys
}
