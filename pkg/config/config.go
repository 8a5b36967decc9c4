// Package config loads tagscrub configuration: the pipeline of rule set
// names applied by default, plus custom rule tables defined as data.
//
// Configuration layers, later layers overriding earlier ones:
//
//  1. Embedded defaults (embedded/tagscrub.toml)
//  2. A discovered or explicitly given config file (TOML or YAML)
//
// Discovery checks .tagscrub.toml and tagscrub.toml in the working
// directory, then tagscrub/tagscrub.toml in the XDG config directories.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/tagscrub/pkg/errors"
	"github.com/arthur-debert/tagscrub/pkg/filter"
	"github.com/arthur-debert/tagscrub/pkg/logging"
	"github.com/arthur-debert/tagscrub/pkg/rules"
)

// RawRule is one uncompiled pattern/replacement pair from a config file.
type RawRule struct {
	Pattern     string `koanf:"pattern"`
	Replacement string `koanf:"replacement"`
}

// RawRuleSet is a named, ordered rule table from a config file.
type RawRuleSet struct {
	Name  string    `koanf:"name"`
	Rules []RawRule `koanf:"rule"`
}

// Config is the merged tagscrub configuration with custom rule sets
// compiled and ready for lookup.
type Config struct {
	PipelineNames []string     `koanf:"pipeline"`
	RuleSets      []RawRuleSet `koanf:"ruleset"`

	sets map[string]filter.RuleSet
}

// Load reads the embedded defaults and, when path is non-empty, merges the
// file at path over them. The file's extension picks the parser (.yaml/.yml
// for YAML, TOML otherwise). Custom rule sets are compiled eagerly so
// malformed patterns surface here, not at apply time.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"config file %s is not readable", path)
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config from %s", path)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	if err := cfg.compileSets(); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("file", path).
		Strs("pipeline", cfg.PipelineNames).
		Int("customSets", len(cfg.sets)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// LoadDefault is Load with config-file discovery.
func LoadDefault() (*Config, error) {
	return Load(findConfigFile())
}

// findConfigFile returns the first config file found, or "" when none
// exists and the embedded defaults stand alone.
func findConfigFile() string {
	for _, name := range []string{".tagscrub.toml", "tagscrub.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if path, err := xdg.SearchConfigFile(filepath.Join("tagscrub", "tagscrub.toml")); err == nil {
		return path
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func (c *Config) compileSets() error {
	c.sets = make(map[string]filter.RuleSet, len(c.RuleSets))
	for _, raw := range c.RuleSets {
		if raw.Name == "" {
			return errors.New(errors.ErrConfigValid, "ruleset is missing a name")
		}
		set := make(filter.RuleSet, 0, len(raw.Rules))
		for _, rule := range raw.Rules {
			compiled, err := filter.New(rule.Pattern, rule.Replacement)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidPattern,
					"ruleset %q has an invalid pattern", raw.Name).
					WithDetail("ruleset", raw.Name).
					WithDetail("pattern", rule.Pattern)
			}
			set = append(set, compiled)
		}
		c.sets[raw.Name] = set
	}
	return nil
}

// Resolve returns the rule set registered under name. Config-defined sets
// are checked before the built-in catalogs, so a config can shadow a
// built-in set of the same name.
func (c *Config) Resolve(name string) (filter.RuleSet, error) {
	if set, ok := c.sets[name]; ok {
		return set, nil
	}
	if set, ok := rules.Named(name); ok {
		return set, nil
	}
	return nil, errors.Newf(errors.ErrUnknownRuleSet, "unknown rule set %q", name).
		WithDetail("name", name)
}

// PipelineFor concatenates the named rule sets in the given order.
func (c *Config) PipelineFor(names []string) (filter.RuleSet, error) {
	sets := make([]filter.RuleSet, 0, len(names))
	for _, name := range names {
		set, err := c.Resolve(name)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return filter.Concat(sets...), nil
}

// Pipeline concatenates the configured default pipeline.
func (c *Config) Pipeline() (filter.RuleSet, error) {
	return c.PipelineFor(c.PipelineNames)
}

// SetNames returns the names of the config-defined rule sets, sorted.
func (c *Config) SetNames() []string {
	names := make([]string, 0, len(c.sets))
	for name := range c.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
