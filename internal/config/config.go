package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Jawbreaker1/nthprime/internal/sieve"
)

type Config struct {
	Sieve struct {
		Strategy string `json:"strategy"`
	} `json:"sieve"`
	Output struct {
		Verbose bool `json:"verbose"`
	} `json:"output"`
}

func DefaultPath() string {
	return filepath.Join("config", "default.json")
}

func ProfilePath(profile string) string {
	return filepath.Join("config", "profiles", profile+".json")
}

// Load merges the default file (optional) and the profile file (required
// when given). It returns the paths that were actually applied.
func Load(defaultPath, profilePath string) (Config, []string, error) {
	paths := []string{}
	merged := map[string]any{}

	if defaultPath == "" {
		defaultPath = DefaultPath()
	}
	found, err := mergeFile(merged, defaultPath, false)
	if err != nil {
		return Config{}, paths, err
	}
	if found {
		paths = append(paths, defaultPath)
	}

	if profilePath != "" {
		if _, err := mergeFile(merged, profilePath, true); err != nil {
			return Config{}, paths, err
		}
		paths = append(paths, profilePath)
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return Config{}, paths, fmt.Errorf("marshal merged config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, paths, fmt.Errorf("unmarshal merged config: %w", err)
	}
	if _, err := cfg.Strategy(); err != nil {
		return Config{}, paths, fmt.Errorf("config: %w", err)
	}

	return cfg, paths, nil
}

func (c Config) Strategy() (sieve.Strategy, error) {
	return sieve.ParseStrategy(c.Sieve.Strategy)
}

func mergeFile(dst map[string]any, path string, required bool) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return false, nil
		}
		return false, fmt.Errorf("config file not found: %s", path)
	}
	if info.IsDir() {
		return false, fmt.Errorf("config path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read config: %s: %w", path, err)
	}
	var src map[string]any
	if err := json.Unmarshal(data, &src); err != nil {
		return false, fmt.Errorf("parse config: %s: %w", path, err)
	}
	deepMerge(dst, src)
	return true, nil
}

func deepMerge(dst, src map[string]any) {
	for key, value := range src {
		srcMap, ok := value.(map[string]any)
		if !ok {
			dst[key] = value
			continue
		}
		if existing, ok := dst[key]; ok {
			if existingMap, ok := existing.(map[string]any); ok {
				deepMerge(existingMap, srcMap)
				continue
			}
		}
		newMap := map[string]any{}
		deepMerge(newMap, srcMap)
		dst[key] = newMap
	}
}

// Save writes cfg as indented JSON with the strategy spelled out, so the
// file round-trips through Load. A config Load would reject is not written.
func Save(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	strategy, err := cfg.Strategy()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Sieve.Strategy = string(strategy)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
