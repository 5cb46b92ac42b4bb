package store

import (
	"path/filepath"
	"strings"
	"testing"

	"dictview/internal/config"
	"dictview/internal/dictionary"
	"dictview/internal/logger"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	appDataDir = "/home/user/.local/share/DictionaryApp/dictionaries"
	bundledDir = "/opt/dictview/dictionaries"
)

func newTestLocator(fs afero.Fs) *Locator {
	l := NewLocator(fs, config.StoreConfig{AppDir: "DictionaryApp", BundledDir: bundledDir}, logger.NewNop())
	l.AppDataDir = appDataDir
	return l
}

func TestNewLocator(t *testing.T) {
	l := NewLocator(afero.NewMemMapFs(), config.StoreConfig{AppDir: "Words"}, logger.NewNop())

	assert.True(t, strings.HasSuffix(l.AppDataDir, filepath.Join("Words", "dictionaries")), l.AppDataDir)
	assert.Equal(t, "dictionaries", filepath.Base(l.BundledDir))
}

func TestLocator_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		dirs  []string
		want  string
	}{
		{
			name: "app data dir missing",
			want: bundledDir,
		},
		{
			name: "app data dir empty",
			dirs: []string{appDataDir},
			want: bundledDir,
		},
		{
			name:  "app data dir without json",
			files: map[string]string{appDataDir + "/notes.txt": "x"},
			want:  bundledDir,
		},
		{
			name:  "app data dir populated",
			files: map[string]string{appDataDir + "/go.json": "[]"},
			want:  appDataDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, d := range tt.dirs {
				require.NoError(t, fs.MkdirAll(d, 0755))
			}
			for path, content := range tt.files {
				require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
			}

			assert.Equal(t, tt.want, newTestLocator(fs).Resolve())
		})
	}
}

func TestLocator_EnsureSeeded_EmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := newTestLocator(fs)

	require.NoError(t, l.EnsureSeeded(bundledDir))

	sources, err := l.List(bundledDir)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "default", sources[0].Name)

	d, err := dictionary.Load(fs, sources[0].Path)
	require.NoError(t, err)
	assert.Equal(t, []dictionary.Entry{{Word: "if", Description: "A conditional statement."}}, d.Entries)
}

func TestLocator_EnsureSeeded_KeepsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, bundledDir+"/go.json", []byte(`["for"]`), 0644))
	l := newTestLocator(fs)

	require.NoError(t, l.EnsureSeeded(bundledDir))
	require.NoError(t, l.EnsureSeeded(bundledDir))

	sources, err := l.List(bundledDir)
	require.NoError(t, err)
	assert.Equal(t, []Source{{Name: "go", Path: filepath.Join(bundledDir, "go.json")}}, sources)
}

func TestLocator_EnsureSeeded_ImportsLegacyWords(t *testing.T) {
	fs := afero.NewMemMapFs()
	legacy := `{"words":[{"word":"legacy","description":"from words.json"}]}`
	require.NoError(t, afero.WriteFile(fs, "/opt/dictview/words.json", []byte(legacy), 0644))
	l := newTestLocator(fs)

	require.NoError(t, l.EnsureSeeded(bundledDir))

	data, err := afero.ReadFile(fs, filepath.Join(bundledDir, "default.json"))
	require.NoError(t, err)
	assert.Equal(t, legacy, string(data))
}

func TestLocator_List(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"zeta.json", "alpha.json", "Beta.json", "alpha.JSON", "readme.md"} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(bundledDir, name), []byte("[]"), 0644))
	}
	require.NoError(t, fs.MkdirAll(filepath.Join(bundledDir, "nested.json"), 0755))
	l := newTestLocator(fs)

	sources, err := l.List(bundledDir)
	require.NoError(t, err)

	var names []string
	for _, s := range sources {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Beta", "alpha", "zeta"}, names)
	assert.Equal(t, filepath.Join(bundledDir, "alpha.json"), sources[1].Path)

	_, err = l.List("/missing")
	assert.Error(t, err)
}

func TestLocator_Open(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := newTestLocator(fs)

	dir, sources, err := l.Open()
	require.NoError(t, err)
	assert.Equal(t, bundledDir, dir)
	require.Len(t, sources, 1)
	assert.Equal(t, "default", sources[0].Name)
}
