package cli

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/flate"

	bnerrors "github.com/matzehuels/bnrepo/pkg/errors"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = appName + ".toml"

// Config is the maintainer tool configuration file.
//
//	[pack]
//	source = "networks"
//	output = "internal/resource/networks"
//	level  = 9
type Config struct {
	Pack PackConfig `toml:"pack"`
}

// PackConfig controls the pack command.
type PackConfig struct {
	Source string `toml:"source"` // directory of <name>.json sources
	Output string `toml:"output"` // directory receiving <name>.json.flate
	Level  int    `toml:"level"`  // DEFLATE level, -2 (Huffman only) to 9
}

func defaultConfig() Config {
	return Config{Pack: PackConfig{
		Source: "networks",
		Output: "internal/resource/networks",
		Level:  flate.BestCompression,
	}}
}

// loadConfig reads path over the defaults. An empty path reads
// defaultConfigFile if it exists; a missing explicit path is an error.
// Unknown keys are rejected so that typos don't silently fall back to
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, bnerrors.Wrap(bnerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, bnerrors.New(bnerrors.ErrCodeInvalidConfig, "%s: unknown keys %v", path, keys)
	}
	if err := cfg.Pack.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (p PackConfig) validate() error {
	switch {
	case p.Source == "":
		return bnerrors.New(bnerrors.ErrCodeInvalidConfig, "pack.source must not be empty")
	case p.Output == "":
		return bnerrors.New(bnerrors.ErrCodeInvalidConfig, "pack.output must not be empty")
	case p.Level < flate.HuffmanOnly || p.Level > flate.BestCompression:
		return bnerrors.New(bnerrors.ErrCodeInvalidConfig, "pack.level %d out of range [%d, %d]",
			p.Level, flate.HuffmanOnly, flate.BestCompression)
	}
	return nil
}

// exists reports whether path names an existing file or directory.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
