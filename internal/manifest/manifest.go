// Package manifest loads YAML command manifests and converts them into
// schema descriptors. Manifests are the file-based way to declare commands
// for the slashkit CLI; applications embedding the engine can also construct
// descriptors directly in code.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"slashkit/internal/logger"
	"slashkit/internal/version"
)

// manifestLog is the component logger for manifest loading and parsing.
var manifestLog = logger.NewStyledLogger("Manifest")

// File is the top-level shape of a command manifest.
type File struct {
	// MinToolVersion is an optional semver constraint the running tool must
	// satisfy before the manifest is used (e.g. ">= 0.2.0").
	MinToolVersion string `yaml:"min_tool_version,omitempty"`

	// Commands declares the manifest's commands, in order.
	Commands []Command `yaml:"commands"`
}

// Command declares one command in a manifest.
type Command struct {
	Name                     string            `yaml:"name"`
	Description              string            `yaml:"description"`
	NameLocalizations        map[string]string `yaml:"name_localizations,omitempty"`
	DescriptionLocalizations map[string]string `yaml:"description_localizations,omitempty"`
	DefaultMemberPermissions *uint64           `yaml:"default_member_permissions,omitempty"`
	DMPermission             *bool             `yaml:"dm_permission,omitempty"`
	NSFW                     bool              `yaml:"nsfw,omitempty"`
	Contexts                 []string          `yaml:"contexts,omitempty"`
	IntegrationTypes         []string          `yaml:"integration_types,omitempty"`
	Options                  []Option          `yaml:"options,omitempty"`
}

// Option declares one option or subcommand branch in a manifest.
type Option struct {
	Name                     string            `yaml:"name"`
	Description              string            `yaml:"description"`
	Type                     string            `yaml:"type"`
	NameLocalizations        map[string]string `yaml:"name_localizations,omitempty"`
	DescriptionLocalizations map[string]string `yaml:"description_localizations,omitempty"`
	Required                 bool              `yaml:"required,omitempty"`
	Autocomplete             bool              `yaml:"autocomplete,omitempty"`
	Choices                  []Choice          `yaml:"choices,omitempty"`
	MinValue                 *float64          `yaml:"min_value,omitempty"`
	MaxValue                 *float64          `yaml:"max_value,omitempty"`
	MinLength                *int              `yaml:"min_length,omitempty"`
	MaxLength                *int              `yaml:"max_length,omitempty"`
	ChannelTypes             []string          `yaml:"channel_types,omitempty"`
	Options                  []Option          `yaml:"options,omitempty"`
}

// Choice declares one predefined option choice in a manifest.
type Choice struct {
	Name              string            `yaml:"name"`
	NameLocalizations map[string]string `yaml:"name_localizations,omitempty"`
	Value             any               `yaml:"value"`
}

// Load reads and parses a manifest file, enforcing its tool version
// constraint if one is declared.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	logger.ManifestLoad(path, len(file.Commands))
	return file, nil
}

// Parse parses manifest bytes and enforces the tool version constraint.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if file.MinToolVersion != "" {
		ok, err := version.Satisfies(file.MinToolVersion)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("manifest requires tool version %s, current is %s",
				file.MinToolVersion, version.GetVersion())
		}
		manifestLog.Debug("Tool version constraint satisfied",
			"constraint", file.MinToolVersion, "current", version.GetVersion())
	}

	if len(file.Commands) == 0 {
		return nil, fmt.Errorf("manifest declares no commands")
	}

	return &file, nil
}
