package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/protobuf/encoding/prototext"
)

var configFilePath = flag.String("config_file", "", "Path to an optional .txtpb configuration file.")

// InitFlags parses the command line and then applies the config file given by -config_file, if any.
// Config file values override command line values. A missing or broken config file is logged and skipped, so the
// program still runs with flag values.
func InitFlags() {
	flag.Parse()

	if *configFilePath == "" {
		slog.Debug("Config file not specified. Skipping config initialization.")
		return
	}
	if err := applyConfigFile(*configFilePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("Config file does not exist.", "path", *configFilePath, "error", err)
			return
		}
		slog.Error("Failed to apply config file.", "path", *configFilePath, "error", err)
	}
}

// applyConfigFile reads the .txtpb config at `path` and sets the flags it mentions.
func applyConfigFile(path string) error {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	conf := newConfig()
	if err := prototext.Unmarshal(configBytes, conf); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := setConfigFlags(conf); err != nil {
		return fmt.Errorf("failed to set flags from config file: %w", err)
	}
	return nil
}
