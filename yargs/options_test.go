package yargs_test

import (
	"testing"

	"github.com/dzonerzy/go-yargs/yargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationSet(t *testing.T) {
	cfg := yargs.DefaultConfiguration()

	require.NoError(t, cfg.Set("populate--", "true"))
	require.NoError(t, cfg.Set("camel-case-expansion", "0"))
	require.NoError(t, cfg.Set("negation-prefix", "without-"))
	assert.True(t, cfg.PopulateDoubleDash)
	assert.False(t, cfg.CamelCaseExpansion)
	assert.Equal(t, "without-", cfg.NegationPrefix)

	err := cfg.Set("dot-notation", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value for dot-notation")
	assert.True(t, cfg.DotNotation)

	err = cfg.Set("no-such-setting", "true")
	assert.EqualError(t, err, "unknown configuration setting: no-such-setting")
}

func TestValueTypeString(t *testing.T) {
	assert.Equal(t, "any", yargs.TypeAny.String())
	assert.Equal(t, "boolean", yargs.TypeBoolean.String())
	assert.Equal(t, "string", yargs.TypeString.String())
	assert.Equal(t, "number", yargs.TypeNumber.String())
	assert.Equal(t, "unknown", yargs.ValueType(42).String())
}

func TestResultGetters(t *testing.T) {
	res := yargs.Detailed([]string{
		"--port", "80",
		"--name", "x",
		"--flag",
		"--tags", "a", "--tags", "b",
		"--server.host", "h",
		"--answer", "yes",
	}, yargs.Options{Boolean: []string{"flag"}})
	require.NoError(t, res.Error)

	v, ok := res.Get("server.host")
	require.True(t, ok)
	assert.Equal(t, "h", v)

	_, ok = res.Get("missing")
	assert.False(t, ok)
	_, ok = res.Get("server.port")
	assert.False(t, ok)

	s, ok := res.GetString("port")
	assert.True(t, ok)
	assert.Equal(t, "80", s)

	s, ok = res.GetString("tags")
	assert.True(t, ok)
	assert.Equal(t, "b", s)

	n, ok := res.GetNumber("port")
	assert.True(t, ok)
	assert.Equal(t, float64(80), n)

	_, ok = res.GetNumber("name")
	assert.False(t, ok)

	b, ok := res.GetBool("flag")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = res.GetBool("answer")
	assert.False(t, ok)

	list, ok := res.GetStrings("tags")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, list)

	list, ok = res.GetStrings("port")
	assert.True(t, ok)
	assert.Equal(t, []string{"80"}, list)
}
