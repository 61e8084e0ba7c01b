package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bnrepo/internal/resource"
	"github.com/matzehuels/bnrepo/pkg/bn"
	"github.com/matzehuels/bnrepo/pkg/catalog"
	bnerrors "github.com/matzehuels/bnrepo/pkg/errors"
)

// packCommand creates the pack command, which rebuilds embedded resources
// from JSON sources.
func (c *CLI) packCommand() *cobra.Command {
	var configPath string
	var flags PackConfig

	cmd := &cobra.Command{
		Use:   "pack [spec...]",
		Short: "Compress network sources into embedded resources",
		Long: `Pack reads <source>/<name>.json for each selected network (all by default),
checks that it is a valid network matching the catalog metadata and writes
<output>/<name>.json.flate as raw DEFLATE.

Settings come from bnrepo.toml in the working directory (or --config) and
may be overridden by flags.`,
		ValidArgsFunction: completeSpecs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := parseSpecs(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("source") {
				cfg.Pack.Source = flags.Source
			}
			if cmd.Flags().Changed("output") {
				cfg.Pack.Output = flags.Output
			}
			if cmd.Flags().Changed("level") {
				cfg.Pack.Level = flags.Level
			}
			if err := cfg.Pack.validate(); err != nil {
				return err
			}
			return runPack(cmd.Context(), c.Out, cfg.Pack, specs)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./"+defaultConfigFile+" if present)")
	cmd.Flags().StringVar(&flags.Source, "source", "", "directory of <name>.json sources")
	cmd.Flags().StringVar(&flags.Output, "output", "", "directory for <name>.json.flate resources")
	cmd.Flags().IntVar(&flags.Level, "level", 0, "DEFLATE level (-2 to 9)")

	return cmd
}

// runPack packs every spec or none: all sources are validated and
// compressed before the first file is written.
func runPack(ctx context.Context, out io.Writer, cfg PackConfig, specs []catalog.Spec) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if !exists(cfg.Source) {
		return bnerrors.New(bnerrors.ErrCodeInvalidConfig, "source directory %s does not exist", cfg.Source)
	}
	printInfo(out, "Packing %d networks from %s", len(specs), cfg.Source)

	packed := make([][]byte, len(specs))
	var raw, compressed int
	for i, s := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, n, err := packOne(cfg, s)
		if err != nil {
			return err
		}
		packed[i] = data
		raw += n
		logger.Debug("compressed", "spec", s.Name(), "level", cfg.Level, "bytes", len(data))
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for i, s := range specs {
		path := filepath.Join(cfg.Output, s.Name()+resource.Suffix)
		if err := os.WriteFile(path, packed[i], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		compressed += len(packed[i])
		printFile(out, path)
	}

	printStats(out, fmt.Sprintf("%d bytes", raw), fmt.Sprintf("%d compressed", compressed))
	prog.done(fmt.Sprintf("Packed %d networks", len(specs)))
	return nil
}

// packOne validates the source for s and returns its compressed form along
// with the source size.
func packOne(cfg PackConfig, s catalog.Spec) ([]byte, int, error) {
	name := s.Name()
	if err := bnerrors.ValidateResourceStem(name); err != nil {
		return nil, 0, err
	}

	path := filepath.Join(cfg.Source, name+".json")
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read source: %w", err)
	}

	n, err := bn.FromJSON(string(text))
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	if n.Name() != name {
		return nil, 0, bnerrors.New(bnerrors.ErrCodeInvalidNetwork, "%s: network is named %q, want %q", path, n.Name(), name)
	}
	if err := s.Verify(n); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := resource.Deflate(&buf, text, cfg.Level); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(text), nil
}
