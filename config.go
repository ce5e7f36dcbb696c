package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds the converter configuration.
type Config struct {
	SourceRoot string       `json:"source_root"`
	OutputDir  string       `json:"output_dir"`
	Tasks      []TaskConfig `json:"tasks"`
}

// TaskConfig names one source-folder-to-ICO conversion. Relative paths
// resolve against SourceRoot and OutputDir.
type TaskConfig struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Dest   string `json:"dest"`
}

var configPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configPath = filepath.Join(home, ".config", "clop-icons", "config.json")
}

// defaultConfig returns a Config with the stock Clop installer tasks.
func defaultConfig() Config {
	return Config{
		SourceRoot: filepath.Join("src", "App", "Assets", "Brand", "Assets.xcassets"),
		OutputDir:  filepath.Join("installer", "assets"),
		Tasks: []TaskConfig{
			{Name: "appicon", Source: "AppIcon.appiconset", Dest: "Clop.ico"},
			{Name: "clop", Source: "clop.imageset", Dest: "ClopMark.ico"},
		},
	}
}

// resolvedPaths returns the effective source and dest for a task, joining
// relative paths onto SourceRoot and OutputDir.
func (c Config) resolvedPaths(t TaskConfig) (source, dest string) {
	source = t.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(c.SourceRoot, source)
	}
	dest = t.Dest
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(c.OutputDir, dest)
	}
	return source, dest
}

// loadConfig loads config from disk, creating a default if it doesn't exist.
// Missing fields keep their defaults via json.Unmarshal into a pre-populated struct.
func loadConfig() Config {
	cfg := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := saveConfig(cfg); writeErr != nil {
				log.Printf("Failed to write default config: %v", writeErr)
			} else {
				log.Printf("Created default config at %s", configPath)
			}
			return cfg
		}
		log.Printf("Failed to read config %s: %v", configPath, err)
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to parse config %s: %v", configPath, err)
		return defaultConfig()
	}

	defaults := defaultConfig()
	if cfg.SourceRoot == "" {
		cfg.SourceRoot = defaults.SourceRoot
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}

	// Drop malformed task entries; an empty table falls back to the stock tasks.
	tasks := cfg.Tasks[:0]
	for _, t := range cfg.Tasks {
		if t.Name == "" || t.Source == "" || t.Dest == "" {
			log.Printf("Ignoring incomplete task entry %+v in config", t)
			continue
		}
		tasks = append(tasks, t)
	}
	cfg.Tasks = tasks
	if len(cfg.Tasks) == 0 {
		log.Printf("No usable tasks in config, using defaults")
		cfg.Tasks = defaults.Tasks
	}

	return cfg
}

// saveConfig writes config to disk with restrictive permissions (0600).
func saveConfig(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFileSecure(configPath, data)
}

// writeFileSecure writes data to path with 0600 permissions, creating parent dirs.
func writeFileSecure(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
