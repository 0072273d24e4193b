// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed. It names the CLI,
// the archive host, the source owner and branch the starter archive is
// fetched from, and the ordered template catalog. None of these values are
// user-configurable at runtime.
package branding

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

//go:embed branding.schema.json
var schemaBytes []byte

var (
	once     sync.Once
	defaults brand
	loadErr  error
)

type brand struct {
	CLIName      string   `yaml:"cli_name"`
	DisplayName  string   `yaml:"display_name"`
	Description  string   `yaml:"description"`
	EnvPrefix    string   `yaml:"env_prefix"`
	GitHubRepo   string   `yaml:"github_repo"`
	ArchiveHost  string   `yaml:"archive_host"`
	SourceOwner  string   `yaml:"source_owner"`
	SourceBranch string   `yaml:"source_branch"`
	Templates    []string `yaml:"templates"`
}

func hardDefaults() brand {
	return brand{
		CLIName:      "create-kapp",
		DisplayName:  "Create Kapp",
		Description:  "Scaffold a new project from a Kapp starter template",
		EnvPrefix:    "CREATEKAPP",
		GitHubRepo:   "kars1996/create-kapp",
		ArchiveHost:  "https://github.com",
		SourceOwner:  "kars1996",
		SourceBranch: "master",
		Templates:    []string{"template", "apitemplate", "DJS14Template"},
	}
}

func load() {
	once.Do(func() {
		defaults = hardDefaults()
		// Only overlay the embedded YAML when it passes the schema, so a bad
		// edit can never produce an empty catalog or owner.
		if loadErr = Validate(rawBranding); loadErr != nil {
			return
		}
		overlay := hardDefaults()
		if err := yaml.Unmarshal(rawBranding, &overlay); err != nil {
			loadErr = fmt.Errorf("parsing branding.yaml: %w", err)
			return
		}
		defaults = overlay
	})
}

// Validate checks raw branding YAML against the embedded JSON schema.
func Validate(data []byte) error {
	c := jsonschema.NewCompiler()
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	if err := c.AddResource("branding.schema.json", doc); err != nil {
		return fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile("branding.schema.json")
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting YAML to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("unmarshaling instance JSON: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("branding.yaml does not match schema: %w", err)
	}
	return nil
}

// LoadError reports why the embedded branding was rejected, or nil when it
// was applied.
func LoadError() error { load(); return loadErr }

// CLIName returns the root command name (e.g., "create-kapp").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "CREATEKAPP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string of this tool.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ArchiveHost returns the base URL the starter archives are served from.
func ArchiveHost() string { load(); return defaults.ArchiveHost }

// SourceOwner returns the repository owner whose archive is downloaded.
func SourceOwner() string { load(); return defaults.SourceOwner }

// SourceBranch returns the branch whose archive is downloaded.
func SourceBranch() string { load(); return defaults.SourceBranch }

// Templates returns a copy of the template catalog. The first entry is the
// default.
func Templates() []string {
	load()
	out := make([]string, len(defaults.Templates))
	copy(out, defaults.Templates)
	return out
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "CREATEKAPP_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
