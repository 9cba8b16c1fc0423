package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/carbonfoot/internal/logging"
)

// projectDirName is the name of both the global and project-local
// configuration directories.
const projectDirName = ".carbonfoot"

// cacheDirName is the cache subdirectory of the global config directory.
const cacheDirName = "cache"

// resolvedProjectDir holds the project directory resolved for the current
// CLI invocation.
var (
	resolvedProjectDir   string       //nolint:gochecknoglobals // Set once at startup, read by config commands
	resolvedProjectDirMu sync.RWMutex //nolint:gochecknoglobals // Protects resolvedProjectDir
)

// SetResolvedProjectDir stores the resolved project directory.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the stored resolved project directory.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// ResolveProjectDir determines the project-local .carbonfoot directory path.
// It checks, in order:
//  1. flagValue (--project-dir)
//  2. CARBONFOOT_PROJECT_DIR
//  3. the nearest ancestor of startDir containing a .carbonfoot directory
//
// The global config directory is never treated as a project. Returns an
// absolute path, or "" when no project is found. Nothing is created.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	return findProjectDir(startDir)
}

func findProjectDir(startDir string) string {
	if startDir == "" {
		return ""
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	global, _ := GetConfigDir()
	if global != "" {
		global, _ = filepath.Abs(global)
	}

	for {
		candidate := filepath.Join(dir, projectDirName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() && candidate != global {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewWithProjectDir loads the global config and shallow-merges the project
// config.yaml on top. An empty projectDir or a missing file behaves like New.
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()

	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().Ctx(ctx).
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global config")
		return cfg
	}

	// Environment still wins over the project file.
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().Ctx(ctx).
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("merged config is invalid; run carbonfoot config validate")
	}
	return cfg
}

// toAbsProjectDir converts dir to an absolute path ending in .carbonfoot.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().Ctx(ctx).
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}

	return filepath.Join(abs, projectDirName)
}
