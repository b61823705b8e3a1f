package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/fluid/pkg/config"
	"github.com/dmitrymomot/fluid/pkg/dictionary"
	"github.com/dmitrymomot/fluid/pkg/logger"
	"github.com/dmitrymomot/fluid/pkg/storage"
)

// buildConfig is loaded with the "FLUID_" prefix. Paths are relative to the
// storage base directory (local) or key prefix (s3).
type buildConfig struct {
	Adjectives string         `env:"ADJECTIVES" envDefault:"data/adj.txt"`
	Adverbs    string         `env:"ADVERBS" envDefault:"data/adv.txt"`
	Verbs      string         `env:"VERBS" envDefault:"data/vrb.txt"`
	Nouns      string         `env:"NOUNS" envDefault:"data/n.txt"`
	Exclusion  string         `env:"EXCLUSION" envDefault:"data/filter.txt"`
	Output     string         `env:"OUTPUT" envDefault:"pkg/fluid/dict.bin"`
	Storage    storage.Config `envPrefix:"STORAGE_"`
}

func (c *cli) buildCmd() *cobra.Command {
	var (
		baseDir string
		output  string
		dryRun  bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the raw word lists into the dictionary resource",
		Long: `Reads the adjective, adverb, verb and noun lists and the exclusion list,
filters them, prints the size report and writes the compiled resource.

Inputs and output come from FLUID_* variables and default to
data/{adj,adv,vrb,n,filter}.txt and pkg/fluid/dict.bin. Set
FLUID_STORAGE_DRIVER=s3 to read and write a bucket instead of the local
filesystem.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load[buildConfig](c.configOptions("FLUID_")...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-dir") {
				cfg.Storage.BaseDir = baseDir
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			return c.runBuild(cmd.Context(), cfg, dryRun)
		},
	}
	cmd.Flags().StringVar(&baseDir, "base-dir", ".", "directory the input and output paths are relative to")
	cmd.Flags().StringVarP(&output, "output", "o", "pkg/fluid/dict.bin", "where to write the compiled dictionary")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "build and report without writing the output")
	return cmd
}

func (c *cli) runBuild(ctx context.Context, cfg buildConfig, dryRun bool) error {
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	src, err := readSources(ctx, store, cfg)
	if err != nil {
		return err
	}

	d, err := dictionary.Build(src)
	if err != nil {
		return err
	}
	data, err := d.MarshalBinary()
	if err != nil {
		return err
	}

	for _, cat := range []dictionary.Category{dictionary.Adjective, dictionary.Adverb, dictionary.Verb, dictionary.Noun} {
		c.log.DebugContext(ctx, "category filtered", logger.Category(string(cat)), logger.Count(len(d.Words(cat))))
	}
	if _, err := fmt.Fprintln(c.stdout, d.Stats()); err != nil {
		return err
	}

	if dryRun {
		c.log.InfoContext(ctx, "dry run, dictionary not written", logger.Path(cfg.Output))
		return nil
	}
	if err := store.Write(ctx, cfg.Output, data); err != nil {
		return fmt.Errorf("write dictionary: %w", err)
	}
	c.log.InfoContext(ctx, "dictionary written",
		logger.Path(cfg.Output),
		logger.Count(len(data)),
		logger.Combinations(d.UniqueCombinations()),
	)
	return nil
}

// readSources fetches the five inputs concurrently.
func readSources(ctx context.Context, store storage.Storage, cfg buildConfig) (dictionary.Sources, error) {
	var src dictionary.Sources
	g, ctx := errgroup.WithContext(ctx)
	inputs := []struct {
		path string
		dst  *string
	}{
		{cfg.Adjectives, &src.Adjectives},
		{cfg.Adverbs, &src.Adverbs},
		{cfg.Verbs, &src.Verbs},
		{cfg.Nouns, &src.Nouns},
		{cfg.Exclusion, &src.Exclusion},
	}
	for _, in := range inputs {
		g.Go(func() error {
			data, err := store.Read(ctx, in.path)
			if err != nil {
				return fmt.Errorf("read %s: %w", in.path, err)
			}
			*in.dst = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dictionary.Sources{}, err
	}
	return src, nil
}
