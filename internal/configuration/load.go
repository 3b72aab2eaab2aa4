package configuration

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

const (
	ConfigDirEnv     = "PAXOSBOT_CONFIG_DIR"
	ProfileEnv       = "PAXOSBOT_PROFILE"
	DefaultConfigDir = "internal/static"
)

var ErrMissingEnv = errors.New("environment variable is not set")

var envVarPattern = regexp.MustCompile(`\${([^}]+)}`)

// ConfigDir is the directory Load reads from unless told otherwise.
func ConfigDir() string {
	if dir, ok := os.LookupEnv(ConfigDirEnv); ok && dir != "" {
		return dir
	}
	return DefaultConfigDir
}

// Load reads application.yml from baseDir and overlays application-<profile>.yml.
func Load(baseDir string) (*Properties, error) {
	cfg, err := loadBaseConfig(baseDir)
	if err != nil {
		return nil, err
	}

	if profile, ok := os.LookupEnv(ProfileEnv); ok && profile != "" {
		cfg.App.Profile = profile
	}

	if cfg.App.Profile != "" {
		if err := loadProfileConfig(baseDir, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func loadBaseConfig(baseDir string) (*Properties, error) {
	baseConfig, err := loadAndExpandYaml(baseDir, "application")
	if err != nil {
		slog.Error("error loading base config", "error", err)
		return nil, err
	}

	cfg := Properties{}
	if err := yaml.Unmarshal(baseConfig, &cfg); err != nil {
		slog.Error("error parsing base config", "error", err)
		return nil, fmt.Errorf("parse application.yml: %w", err)
	}

	return &cfg, nil
}

func loadProfileConfig(baseDir string, cfg *Properties) error {
	name := "application-" + cfg.App.Profile
	profileConfig, err := loadAndExpandYaml(baseDir, name)
	if err != nil {
		slog.Error("error loading profile config", "profile", cfg.App.Profile, "error", err)
		return err
	}

	if err := yaml.Unmarshal(profileConfig, cfg); err != nil {
		slog.Error("error parsing profile config", "profile", cfg.App.Profile, "error", err)
		return fmt.Errorf("parse %s.yml: %w", name, err)
	}

	return nil
}

func loadAndExpandYaml(baseDir, filename string) ([]byte, error) {
	file := filepath.Join(baseDir, filename+".yml")
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s.yml: %w", filename, err)
	}

	expanded, err := ExpandEnvStrict(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s.yml: %w", filename, err)
	}

	return []byte(expanded), nil
}

// ExpandEnvStrict substitutes ${VAR} references and fails on any unset variable.
func ExpandEnvStrict(s string) (string, error) {
	for _, m := range envVarPattern.FindAllStringSubmatch(s, -1) {
		if _, ok := os.LookupEnv(m[1]); !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingEnv, m[1])
		}
	}

	return os.ExpandEnv(s), nil
}
