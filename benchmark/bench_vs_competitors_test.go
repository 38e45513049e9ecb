package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/go-yargs/yargs"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"
)

// Benchmark simple CLI with basic flags
// All three parse the same int and bool flags

func BenchmarkSimpleCLI_Yargs(b *testing.B) {
	p := yargs.New(yargs.Options{
		Boolean: []string{"verbose"},
		Number:  []string{"port"},
		Default: yargs.D{"port": 8080},
	})

	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Parse(args)
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().IntP("port", "p", 8080, "Server port")
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark aliases and short flags
// yargs writes every alias; the others resolve the short name on lookup

func BenchmarkAliases_Yargs(b *testing.B) {
	p := yargs.New(yargs.Options{
		Alias:   map[string][]string{"verbose": {"v"}, "port": {"p"}, "host": {"H"}},
		Boolean: []string{"verbose"},
	})

	args := []string{"-v", "-p", "9000", "-H", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Parse(args)
	}
}

func BenchmarkAliases_Cobra(b *testing.B) {
	args := []string{"-v", "-p", "9000", "-H", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose")
		rootCmd.Flags().IntP("port", "p", 8080, "Port")
		rootCmd.Flags().StringP("host", "H", "localhost", "Host")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkAliases_Urfave(b *testing.B) {
	args := []string{"bench", "-v", "-p", "9000", "-H", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080},
				&cli.StringFlag{Name: "host", Aliases: []string{"H"}, Value: "localhost"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark many flags
// Realistic CLI tool scenario with defaults left in place

func BenchmarkManyFlags_Yargs(b *testing.B) {
	p := yargs.New(yargs.Options{
		String:  []string{"flag1", "flag2", "flag3", "flag4", "flag5"},
		Number:  []string{"port"},
		Boolean: []string{"verbose", "debug", "quiet", "force"},
		Default: yargs.D{
			"flag1": "value1",
			"flag2": "value2",
			"flag3": "value3",
			"flag4": "value4",
			"flag5": "value5",
			"port":  8080,
		},
	})

	args := []string{
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Parse(args)
	}
}

func BenchmarkManyFlags_Cobra(b *testing.B) {
	args := []string{
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().String("flag1", "value1", "Flag 1")
		rootCmd.Flags().String("flag2", "value2", "Flag 2")
		rootCmd.Flags().String("flag3", "value3", "Flag 3")
		rootCmd.Flags().String("flag4", "value4", "Flag 4")
		rootCmd.Flags().String("flag5", "value5", "Flag 5")
		rootCmd.Flags().IntP("port", "p", 8080, "Port")
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose")
		rootCmd.Flags().Bool("debug", false, "Debug")
		rootCmd.Flags().Bool("quiet", false, "Quiet")
		rootCmd.Flags().Bool("force", false, "Force")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkManyFlags_Urfave(b *testing.B) {
	args := []string{
		"bench",
		"--flag1", "test1",
		"--flag2", "test2",
		"--flag3", "test3",
		"--port", "9000",
		"--verbose",
		"--debug",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "flag1", Value: "value1", Usage: "Flag 1"},
				&cli.StringFlag{Name: "flag2", Value: "value2", Usage: "Flag 2"},
				&cli.StringFlag{Name: "flag3", Value: "value3", Usage: "Flag 3"},
				&cli.StringFlag{Name: "flag4", Value: "value4", Usage: "Flag 4"},
				&cli.StringFlag{Name: "flag5", Value: "value5", Usage: "Flag 5"},
				&cli.IntFlag{Name: "port", Value: 8080, Usage: "Port"},
				&cli.BoolFlag{Name: "verbose", Usage: "Verbose"},
				&cli.BoolFlag{Name: "debug", Usage: "Debug"},
				&cli.BoolFlag{Name: "quiet", Usage: "Quiet"},
				&cli.BoolFlag{Name: "force", Usage: "Force"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark slice flags
// Repeated and space separated values collected into one list

func BenchmarkSliceFlags_Yargs(b *testing.B) {
	p := yargs.New(yargs.Options{Array: []string{"tag"}, String: []string{"tag"}})

	args := []string{"--tag", "a", "b", "c", "--tag", "d"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Parse(args)
	}
}

func BenchmarkSliceFlags_Cobra(b *testing.B) {
	args := []string{"--tag", "a", "--tag", "b", "--tag", "c", "--tag", "d"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().StringArray("tag", nil, "Tags")
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSliceFlags_Urfave(b *testing.B) {
	args := []string{"bench", "--tag", "a", "--tag", "b", "--tag", "c", "--tag", "d"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:   "bench",
			Flags:  []cli.Flag{&cli.StringSliceFlag{Name: "tag"}},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
