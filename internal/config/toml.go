package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/textstat/internal/clierr"
	"github.com/verte-zerg/textstat/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Filters FilterConfig `toml:"filters"`
}

// FilterConfig maps filter defaults. Nil fields are unset.
type FilterConfig struct {
	MinLength  *int    `toml:"min-length"`
	StartsWith *string `toml:"starts-with"`
}

// LoadConfig reads a TOML config from the given path. Unlike flag values the
// file must exist once it has been named.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, configError(path, "config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return FileConfig{}, configError(path, "File not found")
		case errors.Is(err, fs.ErrPermission):
			return FileConfig{}, configError(path, "Permission denied")
		default:
			return FileConfig{}, configError(path, fmt.Sprintf("failed to stat config: %v", err))
		}
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, configError(path, fmt.Sprintf("failed to decode config: %v", err))
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return FileConfig{}, configError(path, "unknown keys: "+strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Merge fills filters the command line left unset from the config file.
// File values are validated the same way as their flags.
func Merge(args Args, file FileConfig) (model.Config, error) {
	cfg := args.Config
	if v := file.Filters.MinLength; v != nil && !args.Changed("min-length") {
		if *v < 0 {
			return model.Config{}, clierr.InvalidValue(clierr.InvalidMinLength, strconv.Itoa(*v), clierr.ReasonNotNumber)
		}
		cfg.MinLength = *v
	}
	if v := file.Filters.StartsWith; v != nil && !args.Changed("starts-with") {
		r, err := ParseStartsWith(*v)
		if err != nil {
			return model.Config{}, err
		}
		cfg.StartsWith = r
		cfg.HasStartsWith = true
	}
	return cfg, nil
}

// Resolve parses args and, when --config was given, merges the file defaults.
func Resolve(args []string) (model.Config, error) {
	parsed, err := ParseArgs(args)
	if err != nil {
		return model.Config{}, err
	}
	if !parsed.Changed("config") {
		return parsed.Config, nil
	}
	file, err := LoadConfig(parsed.ConfigPath)
	if err != nil {
		return model.Config{}, err
	}
	return Merge(parsed, file)
}

func configError(path, reason string) *clierr.Error {
	return &clierr.Error{Kind: clierr.InvalidConfigFile, Value: path, Path: path, Reason: reason}
}
