package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/slidekit/slidekit/internal/logging"
)

// ErrNoProject is returned by FindProject when no project root is found
// between the start directory and the filesystem root.
var ErrNoProject = errors.New("no project directory found")

// resolvedProjectDir holds the resolved project directory path for use by
// other config functions during the lifetime of a CLI invocation.
var (
	resolvedProjectDir   string       //nolint:gochecknoglobals // Set once at startup, read by config loaders
	resolvedProjectDirMu sync.RWMutex //nolint:gochecknoglobals // Protects resolvedProjectDir
)

// SetResolvedProjectDir stores the resolved project directory for use by
// other config functions.
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

// FindProject walks up from startDir looking for a directory containing a
// .slidekit/ folder and returns that directory. Returns ErrNoProject when
// the filesystem root is reached without a match.
func FindProject(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		marker := filepath.Join(dir, ".slidekit")
		if info, statErr := os.Stat(marker); statErr == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

// ResolveProjectDir determines the project-local .slidekit directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. SLIDEKIT_PROJECT_DIR env var
//  3. FindProject(startDir) walk-up
//
// Returns the path to $PROJECT/.slidekit/ or empty string if no project is
// found. Does NOT create the directory (read-only operation). The returned
// path is always absolute (or empty).
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsSlidekitDir(ctx, flagValue)
	}

	if envDir := os.Getenv("SLIDEKIT_PROJECT_DIR"); envDir != "" {
		return toAbsSlidekitDir(ctx, envDir)
	}

	projectRoot, err := FindProject(startDir)
	if err != nil {
		if !errors.Is(err, ErrNoProject) {
			logger := logging.FromContext(ctx)
			logger.Warn().
				Str("component", "config").
				Err(err).
				Str("start_dir", startDir).
				Msg("unexpected error during project discovery")
		}
		return ""
	}

	return toAbsSlidekitDir(ctx, projectRoot)
}

// NewWithProjectDir creates a Config by loading global config then
// shallow-merging project-local config on top. If projectDir is empty, it
// behaves identically to New().
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()

	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, "config.yaml")
	if _, err := os.Stat(overlayPath); err != nil {
		// Missing project config is not an error, use global defaults.
		return cfg
	}

	cfgCopy := New()
	if err := ShallowMergeYAML(cfgCopy, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global defaults")
		return cfg
	}

	return cfgCopy
}

// toAbsSlidekitDir converts dir to an absolute path and appends ".slidekit".
// If the path already ends with ".slidekit", it is returned as-is (after
// resolving to an absolute path) to prevent double-append.
func toAbsSlidekitDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == ".slidekit" {
		return abs
	}

	return filepath.Join(abs, ".slidekit")
}
