package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "TEAMTASKS_"
	defaultConfigDir = "configs"

	// ProfileEnv names the variable the binaries read their profile from.
	ProfileEnv = envPrefix + "PROFILE"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// ProfileFromEnv returns the profile named by TEAMTASKS_PROFILE.
func ProfileFromEnv() (string, error) {
	profile := strings.TrimSpace(os.Getenv(ProfileEnv))
	if profile == "" {
		return "", fmt.Errorf("%s environment variable is required (e.g. local, demo, prod)", ProfileEnv)
	}
	return profile, nil
}

// Load reads configuration in layers, later layers winning:
//
//  0. Built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. TEAMTASKS_* environment variables
//
// Environment keys are matched against the keys already loaded, so
// underscores inside a field name survive:
//
//	TEAMTASKS_SERVER_PORT                      -> server.port
//	TEAMTASKS_ORCHESTRATOR_STEP_TIMEOUT        -> orchestrator.step_timeout
//	TEAMTASKS_STORES_TEAMS_BASE_URL            -> stores.teams.base_url
//	TEAMTASKS_STORES_TASKS_RETRY_MAX_ATTEMPTS  -> stores.tasks.retry.max_attempts
//
// TEAMTASKS_PROFILE and TEAMTASKS_JWT_SIGNING_KEY are read elsewhere and
// never reach the Config.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	known := envKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := known[key]; ok {
				return koanfKey, value
			}
			// Unknown keys are dropped so secrets and the profile selector
			// stay out of the config tree.
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare file name", profile)
	case profile == "base":
		return errors.New(`profile "base" is always loaded and cannot be selected`)
	}
	return nil
}

// envKeys maps the env form of every loaded key ("server_read_timeout") to
// its dotted koanf key ("server.read_timeout").
func envKeys(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
