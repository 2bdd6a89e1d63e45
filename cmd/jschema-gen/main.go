// Command jschema-gen generates Go data classes, structural equality
// comparers and a rewriting visitor from a JSON Schema document.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bhaskers-Blu-Org2/jschema"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen"
	"github.com/Bhaskers-Blu-Org2/jschema/compiler/gen/golang"
)

var (
	outputDir string
	pkgPath   string
	rootClass string
	hintsPath string
	tags      []string
	features  []string
	langName  string
	workers   int
	dryRun    bool
	verbose   bool
	watch     bool
)

var rootCmd = &cobra.Command{
	Use:     "jschema-gen [-o <outputDir>] [-p <package>] <schema.json>",
	Short:   "Generate Go data classes, comparers and a rewriting visitor from a JSON Schema document",
	Version: jschema.Version,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if watch {
			return watchLoop(cmd, args[0])
		}
		cfg, err := buildConfig(args[0])
		if err != nil {
			return err
		}
		return run(cmd, cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "./model", "output directory")
	rootCmd.Flags().StringVarP(&pkgPath, "package", "p", "", "package import path of the generated code (defaults to the output directory name)")
	rootCmd.Flags().StringVar(&rootClass, "root", "", "class name of the document root (defaults to the schema title)")
	rootCmd.Flags().StringVar(&hintsPath, "hints", "", "YAML or JSON hints file applied to the schema")
	rootCmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "additional struct tag keys emitted next to the json tag")
	rootCmd.Flags().StringSliceVar(&features, "feature", nil, "features of the run (default comparers,visitor)")
	rootCmd.Flags().StringVar(&langName, "lang", "go", "language target of the generated code")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "parallel file emissions (defaults to GOMAXPROCS)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "render the artifacts without writing them")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report written artifacts and timings")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and regenerate whenever the inputs change")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// buildConfig assembles the generation config from the command line.
// Watch mode calls it once per run, so hint file edits take effect
// without restarting the command.
func buildConfig(schemaPath string) (*gen.Config, error) {
	cfg := gen.DefaultConfig()
	opts := []gen.Option{
		gen.WithSchema(schemaPath),
		gen.WithTarget(outputDir),
		gen.WithLanguage(langName),
	}
	if pkgPath != "" {
		opts = append(opts, gen.WithPackage(pkgPath))
	}
	if rootClass != "" {
		opts = append(opts, gen.WithRootClass(rootClass))
	}
	if hintsPath != "" {
		opts = append(opts, gen.WithHintsFile(hintsPath))
	}
	if len(tags) > 0 {
		opts = append(opts, gen.WithTags(tags...))
	}
	if len(features) > 0 {
		fs, err := featureSet(features)
		if err != nil {
			return nil, err
		}
		cfg.Features = nil
		opts = append(opts, gen.WithFeatures(fs...))
	}
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// featureSet resolves --feature values against the known features.
func featureSet(names []string) ([]gen.Feature, error) {
	known := make([]string, len(gen.AllFeatures))
	for i, f := range gen.AllFeatures {
		known[i] = f.Name
	}
	var fs []gen.Feature
	for _, name := range names {
		idx := -1
		for i, f := range gen.AllFeatures {
			if f.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown feature %q, expected one of: %s", name, strings.Join(known, ", "))
		}
		fs = append(fs, gen.AllFeatures[idx])
	}
	return fs, nil
}

// run executes one generation pass. The pipeline is installed by hand
// instead of through golang.Generate so that the command can reach the
// generator afterwards for the artifact listing and metrics.
func run(cmd *cobra.Command, cfg *gen.Config) error {
	var generator *gen.JenniferGenerator
	cfg.Generator = gen.GenerateFunc(func(g *gen.Graph) error {
		generator = gen.NewJenniferGenerator(g, cfg.Target).
			WithWorkers(workers).
			WithDryRun(dryRun)
		if cfg.Package != "" {
			generator.WithPackage(path.Base(cfg.Package))
		}
		generator.WithTarget(golang.NewTarget(generator))
		return generator.Generate(cmd.Context())
	})
	if err := jschema.Generate(cfg); err != nil {
		return err
	}
	report(cmd, generator)
	return nil
}

// report prints the run summary the output flags asked for.
func report(cmd *cobra.Command, generator *gen.JenniferGenerator) {
	if generator == nil {
		return
	}
	artifacts := generator.Artifacts()
	if dryRun {
		cmd.Printf("dry run: %d artifacts, %d bytes\n", artifacts.Len(), artifacts.Size())
		for _, a := range artifacts.All() {
			cmd.Printf("  %s (%d bytes)\n", a.Name, a.Size)
		}
		return
	}
	if !verbose {
		return
	}
	m := generator.Metrics()
	cmd.Printf("run %s: %d files, %d bytes (render %s, format %s, write %s)\n",
		m.RunID, m.FilesGenerated, m.TotalBytes,
		time.Duration(m.RenderTime), time.Duration(m.FormatTime), time.Duration(m.WriteTime))
	for _, name := range artifacts.Names() {
		cmd.Println("  " + name)
	}
}
