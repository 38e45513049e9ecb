package yargs_test

import (
	"fmt"
	"testing"

	"github.com/dzonerzy/go-yargs/yargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	p, err := yargs.NewBuilder().
		Boolean("verbose").Alias("v").Back().
		Number("port").Default(8080).Back().
		String("name").Back().
		ArrayOf("tags", yargs.TypeString).Back().
		Count("level").Alias("l").Back().
		Env("APP_").
		Environ([]string{"APP_NAME=env"}).
		Build()
	require.NoError(t, err)

	res := p.Detailed([]string{"-v", "--tags", "1", "2", "-ll"})
	require.NoError(t, res.Error)

	want := yargs.D{
		"_":       []any{},
		"verbose": true,
		"v":       true,
		"tags":    []any{"1", "2"},
		"level":   float64(2),
		"l":       float64(2),
		"name":    "env",
		"port":    float64(8080),
	}
	assert.Equal(t, want, res.Argv)
	assert.Equal(t, map[string]bool{"port": true}, res.Defaulted)
}

func TestBuilderKeyModifiers(t *testing.T) {
	double := func(v any) (any, error) { return v.(float64) * 2, nil }
	loader := func(string) (map[string]any, error) {
		return map[string]any{"fromConfig": true}, nil
	}

	opts, err := yargs.NewBuilder().
		Key("point").Narg(2).Back().
		Number("n").Coerce(double).Back().
		String("dir").Normalize().Back().
		String("secret").Hidden().Back().
		Key("cfg").Config(loader).Back().
		ConfigObject(yargs.D{"obj": "yes"}).
		Options()
	require.NoError(t, err)
	require.NotNil(t, opts.Configuration)

	res := yargs.Detailed([]string{
		"--point", "1", "2", "--n", "4", "--dir", "a/../b", "--secret", "s3", "--cfg", "x.conf",
	}, opts)
	require.NoError(t, res.Error)

	assert.Equal(t, []any{float64(1), float64(2)}, res.Argv["point"])
	assert.Equal(t, float64(8), res.Argv["n"])
	assert.Equal(t, "b", res.Argv["dir"])
	assert.Equal(t, "s3", res.Argv["secret"])
	assert.Equal(t, true, res.Argv["fromConfig"])
	assert.Equal(t, "yes", res.Argv["obj"])
	assert.NotContains(t, res.Tokens(), "--secret")
	assert.NotContains(t, res.Tokens(), "s3")
}

func TestBuilderConfiguration(t *testing.T) {
	t.Run("settings by name", func(t *testing.T) {
		p, err := yargs.NewBuilder().
			Set("dot-notation", "false").
			Set("negation-prefix", "without-").
			Build()
		require.NoError(t, err)

		got := p.Parse([]string{"--a.b", "1", "--without-color"})
		assert.Equal(t, float64(1), got["a.b"])
		assert.Equal(t, false, got["color"])
	})

	t.Run("configure callback", func(t *testing.T) {
		p, err := yargs.NewBuilder().
			Configure(func(c *yargs.Configuration) { c.HaltAtNonOption = true }).
			Build()
		require.NoError(t, err)

		got := p.Parse([]string{"--a", "1", "cmd", "--b"})
		assert.Equal(t, []any{"cmd", "--b"}, got["_"])
		assert.NotContains(t, got, "b")
	})

	t.Run("first invalid setting is returned", func(t *testing.T) {
		p, err := yargs.NewBuilder().
			Set("bogus", "true").
			Set("dot-notation", "maybe").
			Build()
		require.Error(t, err)
		assert.Nil(t, p)
		assert.Equal(t, "unknown configuration setting: bogus", err.Error())
	})

	t.Run("format and alias", func(t *testing.T) {
		p, err := yargs.NewBuilder().
			Alias("file", "f").
			Narg("file", 2).
			Format(func(format string, args ...any) string {
				return "custom: " + fmt.Sprintf(format, args...)
			}).
			Build()
		require.NoError(t, err)

		res := p.Detailed([]string{"-f", "one"})
		require.Error(t, res.Error)
		assert.Equal(t, "custom: Not enough arguments following: f", res.Error.Error())
		assert.Equal(t, "one", res.Argv["file"])
	})
}
