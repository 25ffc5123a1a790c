// Package config loads tool settings from an optional YAML file layered
// under command line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/specslice/specslice/internal/dto"
	"github.com/specslice/specslice/internal/encode"
	"github.com/specslice/specslice/internal/specerr"
)

// DefaultFile is the config file picked up from the working directory when
// no --config flag is given.
const DefaultFile = "specslice.yaml"

type Config struct {
	Spec        string   `koanf:"spec"`
	Tags        []string `koanf:"tags"`
	Format      string   `koanf:"format"`
	Language    string   `koanf:"language"`
	Package     string   `koanf:"package"`
	Output      string   `koanf:"output"`
	ValidateDoc bool     `koanf:"validate"`
}

// BindCommonFlags binds the flags every subcommand shares.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: specslice.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI document path")
	flags.StringSliceP("tags", "t", nil, "Tags to select (default: all)")
	flags.Bool("validate", false, "Validate the document before processing")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Format == "" {
		cfg.Format = encode.FormatJSON
	}
	if cfg.Language == "" {
		cfg.Language = string(dto.LangTypeScript)
	}
	if cfg.Package == "" {
		cfg.Package = "dtos"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getStringSlice("tags"); len(v) > 0 {
		m["tags"] = v
	}
	if v := getString("format"); v != "" {
		m["format"] = v
	}
	if v := getString("language"); v != "" {
		m["language"] = v
	}
	if v := getString("package"); v != "" {
		m["package"] = v
	}
	if v := getString("output"); v != "" {
		m["output"] = v
	}
	if flagChanged("validate") {
		m["validate"] = getBool("validate")
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}

	validFormats := map[string]bool{}
	for _, f := range encode.Formats() {
		validFormats[f] = true
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid output format: %s (valid: %s)", c.Format, strings.Join(encode.Formats(), ", "))
	}

	validLanguages := map[string]bool{}
	for _, l := range dto.Languages() {
		validLanguages[l] = true
	}
	if !validLanguages[c.Language] {
		return fmt.Errorf("invalid language: %s (valid: %s): %w", c.Language, strings.Join(dto.Languages(), ", "), specerr.ErrUnknownLanguage)
	}

	return nil
}
