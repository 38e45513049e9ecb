package benchmark_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dzonerzy/go-yargs/yargs"
)

// Category: parser

func BenchmarkParserSimple(b *testing.B) {
	p := yargs.New(yargs.Options{Boolean: []string{"verbose"}})
	args := []string{"--port", "8080", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		argv := p.Parse(args)
		if argv["verbose"] != true {
			b.Fatalf("verbose not parsed")
		}
	}
}

func BenchmarkParserLongFlags(b *testing.B) {
	p := yargs.New(yargs.Options{Boolean: []string{"verbose"}, String: []string{"config"}})
	args := []string{"--port=8080", "--verbose=true", "--config=/path/to/config.json"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := p.Detailed(args)
		if res.Error != nil {
			b.Fatal(res.Error)
		}
	}
}

func BenchmarkParserShortFlags(b *testing.B) {
	p := yargs.New(yargs.Options{Boolean: []string{"v", "h"}})
	args := []string{"-vhp", "8080"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		argv := p.Parse(args)
		if argv["p"] != float64(8080) {
			b.Fatalf("p = %v", argv["p"])
		}
	}
}

func BenchmarkParserDotNotation(b *testing.B) {
	p := yargs.New(yargs.Options{Alias: map[string][]string{"server": {"s"}}})
	args := []string{"--server.host", "localhost", "--s.port", "80", "--db.pool.max", "10"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Parse(args)
	}
}

func BenchmarkParserCamelCase(b *testing.B) {
	p := yargs.New(yargs.Options{})
	args := []string{"--dry-run", "--log-level", "debug", "--max-retry-count", "3"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Parse(args)
	}
}

func BenchmarkParserNargs(b *testing.B) {
	p := yargs.New(yargs.Options{Narg: map[string]int{"point": 3}})
	args := []string{"--point", "1", "2", "3", "rest"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Parse(args)
	}
}

func BenchmarkParserString(b *testing.B) {
	opts := yargs.Options{Boolean: []string{"verbose"}}
	input := `--name "John Doe" --port 8080 --verbose build`
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = yargs.ParseString(input, opts)
	}
}

func BenchmarkParserPrecedence(b *testing.B) {
	path := filepath.Join(b.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"host": "file", "port": 80, "db": {"user": "app"}}`), 0o600); err != nil {
		b.Fatal(err)
	}

	p := yargs.New(yargs.Options{
		Config:        map[string]yargs.ConfigLoader{"config": nil},
		ConfigObjects: []map[string]any{{"timeout": 30}},
		Default:       yargs.D{"config": path, "workers": 4},
		UseEnv:        true,
		EnvPrefix:     "BENCH_",
		Environ:       []string{"BENCH_HOST=env", "BENCH_DB__PASSWORD=secret"},
	})
	args := []string{"--port", "9000"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := p.Detailed(args)
		if res.Error != nil {
			b.Fatal(res.Error)
		}
	}
}
