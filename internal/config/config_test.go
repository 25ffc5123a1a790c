package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/specslice/specslice/internal/specerr"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config",
			config:  Config{Spec: "api.yaml", Format: "json", Language: "go"},
			wantErr: false,
		},
		{
			name:        "missing spec",
			config:      Config{Format: "json", Language: "go"},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name:        "invalid format",
			config:      Config{Spec: "api.yaml", Format: "xml", Language: "go"},
			wantErr:     true,
			errContains: "invalid output format",
		},
		{
			name:    "tabular format",
			config:  Config{Spec: "api.yaml", Format: "tabular", Language: "go"},
			wantErr: false,
		},
		{
			name:    "yaml format",
			config:  Config{Spec: "api.yaml", Format: "yaml", Language: "python"},
			wantErr: false,
		},
		{
			name:        "invalid language",
			config:      Config{Spec: "api.yaml", Format: "json", Language: "rust"},
			wantErr:     true,
			errContains: "invalid language",
		},
		{
			name:    "kotlin language",
			config:  Config{Spec: "api.yaml", Format: "json", Language: "kotlin"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					require.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateUnknownLanguageMatchable(t *testing.T) {
	cfg := Config{Spec: "api.yaml", Format: "json", Language: "rust"}
	require.ErrorIs(t, cfg.Validate(), specerr.ErrUnknownLanguage)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: api.yaml
tags:
  - Pets
  - Store
format: tabular
language: go
package: petstore
`
	configPath := filepath.Join(tmpDir, "specslice.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	// Change to temp dir so specslice.yaml is found
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindOutputFlags(cmd)

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "api.yaml", cfg.Spec)
	require.Equal(t, []string{"Pets", "Store"}, cfg.Tags)
	require.Equal(t, "tabular", cfg.Format)
	require.Equal(t, "go", cfg.Language)
	require.Equal(t, "petstore", cfg.Package)
	require.Empty(t, cfg.Output)
	require.False(t, cfg.ValidateDoc)
}

func TestLoadAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "specslice.yaml")
	err := os.WriteFile(configPath, []byte("spec: api.yaml\n"), 0644)
	require.NoError(t, err)

	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindOutputFlags(cmd)

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "json", cfg.Format)
	require.Equal(t, "typescript", cfg.Language)
	require.Equal(t, "dtos", cfg.Package)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: api.yaml
format: tabular
`
	configPath := filepath.Join(tmpDir, "specslice.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindOutputFlags(cmd)

	// Set flags that should override file config
	cmd.Flags().Set("format", "yaml")
	cmd.PersistentFlags().Set("tags", "Users")

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, []string{"Users"}, cfg.Tags)
	require.Equal(t, "api.yaml", cfg.Spec)
}

func TestLoadWithExplicitConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: custom.yaml
language: java
`
	configPath := filepath.Join(tmpDir, "custom-config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindOutputFlags(cmd)
	cmd.PersistentFlags().Set("config", configPath)

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "custom.yaml", cfg.Spec)
	require.Equal(t, "java", cfg.Language)
}

func TestLoadMissingConfigFile(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindOutputFlags(cmd)
	cmd.PersistentFlags().Set("config", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load(cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}

func TestBuildFlagsMap(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	bindOutputFlags(cmd)

	cmd.PersistentFlags().Set("spec", "test.yaml")
	cmd.PersistentFlags().Set("tags", "Pets,Store")
	cmd.PersistentFlags().Set("validate", "true")
	cmd.Flags().Set("format", "tabular")
	cmd.Flags().Set("language", "csharp")
	cmd.Flags().Set("package", "models")
	cmd.Flags().Set("output", "out.txt")

	m := buildFlagsMap(cmd)

	require.Equal(t, "test.yaml", m["spec"])
	require.Equal(t, []string{"Pets", "Store"}, m["tags"])
	require.Equal(t, true, m["validate"])
	require.Equal(t, "tabular", m["format"])
	require.Equal(t, "csharp", m["language"])
	require.Equal(t, "models", m["package"])
	require.Equal(t, "out.txt", m["output"])
}

func TestBuildFlagsMapSkipsUnset(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)

	m := buildFlagsMap(cmd)
	require.Empty(t, m)
}

// Helper to bind the per-command output flags for testing
func bindOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("format", "f", "", "Output format: json, yaml, tabular")
	flags.StringP("language", "l", "", "DTO target language")
	flags.StringP("package", "p", "", "Package name for generated Go source")
	flags.StringP("output", "o", "", "Output file (default: stdout)")
}
