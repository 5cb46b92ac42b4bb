// Package store locates the directory holding dictionary files and makes
// sure it is never empty.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dictview/internal/config"
	"dictview/internal/dictionary"
	"dictview/internal/logger"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	dictionariesDir = "dictionaries"
	defaultFile     = "default.json"
	legacyFile      = "words.json"
	extension       = ".json"
)

// DefaultDictionary is written to an empty store on first run.
var DefaultDictionary = dictionary.Dictionary{
	Entries: []dictionary.Entry{
		{Word: "if", Description: "A conditional statement."},
	},
}

// Source is a dictionary file found in the store.
type Source struct {
	Name string
	Path string
}

type Locator struct {
	Fs         afero.Fs
	AppDataDir string
	BundledDir string
	log        logger.Logger
}

// NewLocator places the app data dir under the per-user data home and the
// bundled dir next to the running executable unless the config overrides it.
func NewLocator(fs afero.Fs, cfg config.StoreConfig, log logger.Logger) *Locator {
	bundled := cfg.BundledDir
	if bundled == "" {
		bundled = executableDir()
	}
	return &Locator{
		Fs:         fs,
		AppDataDir: filepath.Join(xdg.DataHome, cfg.AppDir, dictionariesDir),
		BundledDir: bundled,
		log:        log,
	}
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return dictionariesDir
	}
	return filepath.Join(filepath.Dir(exe), dictionariesDir)
}

// Resolve returns the app data dir when it exists and holds at least one
// dictionary, and the bundled dir otherwise.
func (l *Locator) Resolve() string {
	if ok, _ := afero.DirExists(l.Fs, l.AppDataDir); ok && l.hasDictionaries(l.AppDataDir) {
		return l.AppDataDir
	}
	return l.BundledDir
}

// EnsureSeeded creates dir and writes the default dictionary into it when
// it has none. A legacy words.json beside the bundled dir is imported as
// default.json first.
func (l *Locator) EnsureSeeded(dir string) error {
	if err := l.Fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store %s: %w", dir, err)
	}

	l.importLegacy(dir)

	if l.hasDictionaries(dir) {
		return nil
	}

	data, err := json.MarshalIndent(DefaultDictionary, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, defaultFile)
	if err := afero.WriteFile(l.Fs, path, data, 0644); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	l.log.Info("Store", "seeded default dictionary", map[string]interface{}{"path": path})
	return nil
}

func (l *Locator) importLegacy(dir string) {
	src := filepath.Join(filepath.Dir(l.BundledDir), legacyFile)
	data, err := afero.ReadFile(l.Fs, src)
	if err != nil {
		return
	}
	dst := filepath.Join(dir, defaultFile)
	if err := afero.WriteFile(l.Fs, dst, data, 0644); err != nil {
		l.log.Error("Store", err, map[string]interface{}{"src": src, "dst": dst})
		return
	}
	l.log.Debug("Store", "imported legacy word list", map[string]interface{}{"src": src, "dst": dst})
}

// List returns the *.json files in dir sorted by file name. The extension
// match is exact so no two sources share a name.
func (l *Locator) List(dir string) ([]Source, error) {
	infos, err := afero.ReadDir(l.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list store %s: %w", dir, err)
	}

	var sources []Source
	for _, info := range infos {
		if info.IsDir() || filepath.Ext(info.Name()) != extension {
			continue
		}
		sources = append(sources, Source{
			Name: strings.TrimSuffix(info.Name(), filepath.Ext(info.Name())),
			Path: filepath.Join(dir, info.Name()),
		})
	}
	sort.Slice(sources, func(i, j int) bool {
		return filepath.Base(sources[i].Path) < filepath.Base(sources[j].Path)
	})
	return sources, nil
}

// Open resolves the store directory, seeds it and lists its dictionaries.
func (l *Locator) Open() (string, []Source, error) {
	dir := l.Resolve()
	if err := l.EnsureSeeded(dir); err != nil {
		return dir, nil, err
	}
	sources, err := l.List(dir)
	return dir, sources, err
}

func (l *Locator) hasDictionaries(dir string) bool {
	sources, err := l.List(dir)
	return err == nil && len(sources) > 0
}
