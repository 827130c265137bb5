package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultInputFile       = "changelog.md"
	defaultOutputFile      = "changelog-output.md"
	defaultBuildToolBinary = "./gradlew"
	defaultBuildToolType   = "gradle"
)

// Settings is the runtime configuration. Every field defaults to the values
// the release pipeline has always used, so running without a config file
// reads changelog.md and writes changelog-output.md in the working directory.
type Settings struct {
	Input     string           `yaml:"input"`
	Output    string           `yaml:"output"`
	BuildTool BuildToolConfig  `yaml:"build_tool"`
	Markers   ChangelogMarkers `yaml:"markers"`
	Scopes    ScopeMarkers     `yaml:"scopes"`
	Exclude   []string         `yaml:"exclude"` // extra bump names to exclude, usually "group:artifact"
}

// BuildToolConfig describes how the build tool is invoked.
type BuildToolConfig struct {
	Type   string   `yaml:"type"`   // registered build tool name, "gradle" by default
	Binary string   `yaml:"binary"` // executable, relative to the working directory when it contains a slash
	Args   []string `yaml:"args"`   // appended to every invocation (e.g. "--offline")
}

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Input:  defaultInputFile,
		Output: defaultOutputFile,
		BuildTool: BuildToolConfig{
			Type:   defaultBuildToolType,
			Binary: defaultBuildToolBinary,
			Args:   []string{},
		},
		Markers: DefaultChangelogMarkers(),
		Scopes:  DefaultScopeMarkers(),
		Exclude: []string{},
	}
}

// NewSettings reads a YAML settings file on top of the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	applyScopeDefaults(&settings.Scopes)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.Input == "" {
		return errors.New("input is required")
	}
	if s.Output == "" {
		return errors.New("output is required")
	}
	if s.BuildTool.Type == "" {
		return errors.New("build_tool.type is required")
	}
	if s.BuildTool.Binary == "" {
		return errors.New("build_tool.binary is required")
	}
	if s.Markers.DependencyUpgrades == "" {
		return errors.New("markers.dependency_upgrades is required")
	}
	if s.Markers.Contributors == "" {
		return errors.New("markers.contributors is required")
	}
	for i, name := range s.Exclude {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("exclude[%d] must not be empty", i)
		}
	}
	return nil
}

// ExtraExclusions returns the configured exclusions as a set.
func (s *Settings) ExtraExclusions() CoordinateSet {
	return NewCoordinateSet(s.Exclude...)
}

// ResolvePaths makes relative input and output paths relative to dir.
func (s *Settings) ResolvePaths(dir string) {
	if !filepath.IsAbs(s.Input) {
		s.Input = filepath.Join(dir, s.Input)
	}
	if !filepath.IsAbs(s.Output) {
		s.Output = filepath.Join(dir, s.Output)
	}
}

// applyScopeDefaults restores the default tokens of any scope list the file
// left empty, so a config can override a single scope.
func applyScopeDefaults(scopes *ScopeMarkers) {
	defaults := DefaultScopeMarkers()
	if len(scopes.Test) == 0 {
		scopes.Test = defaults.Test
	}
	if len(scopes.Optional) == 0 {
		scopes.Optional = defaults.Optional
	}
	if len(scopes.Implementation) == 0 {
		scopes.Implementation = defaults.Implementation
	}
	if len(scopes.Runtime) == 0 {
		scopes.Runtime = defaults.Runtime
	}
}

// FindConfigFile searches for a configuration file in dir, its .config and
// configs subdirectories, then the home directory. Returns the path to the
// first file found or ErrConfigNotFound.
func FindConfigFile(dir string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}
	if dir == "" {
		dir = "."
	}

	locations := []string{
		dir,
		filepath.Join(dir, ".config"),
		filepath.Join(dir, "configs"),
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".changelogdeps.yaml",
		".changelogdeps.yml",
		"changelogdeps.yaml",
		"changelogdeps.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}
