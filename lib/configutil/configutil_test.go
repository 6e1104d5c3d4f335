package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Url     string   `json:"url"`
	Timeout int      `json:"timeout"`
	Names   []string `json:"names"`
}

func writeFile(t *testing.T, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "rankings.local.json5", LocalPath("rankings.json5"))
	require.Equal(t, filepath.Join("a", "b.local.json5"), LocalPath(filepath.Join("a", "b.json5")))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rankings.json5")

	writeFile(t, path, `{
		// comments are allowed
		url: "https://example.com",
		timeout: 10,
	}`)

	cfg, err := ReadConfig[testConfig](path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "https://example.com", cfg.Url)
	require.Equal(t, 10, cfg.Timeout)

	writeFile(t, LocalPath(path), `{timeout: 3, names: ["td.name"]}`)

	cfg, err = ReadConfig[testConfig](path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "https://example.com", cfg.Url)
	require.Equal(t, 3, cfg.Timeout)
	require.Equal(t, []string{"td.name"}, cfg.Names)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "missing.json5"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json5")
	writeFile(t, path, `{url: `)

	_, err := ReadConfig[testConfig](path)
	require.Error(t, err)
	require.False(t, errors.Is(err, os.ErrNotExist))
}

func TestWithDefaults(t *testing.T) {
	cfg, err := WithDefaults(
		testConfig{Timeout: 3},
		testConfig{Url: "https://example.com", Timeout: 10, Names: []string{"a"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, testConfig{
		Url:     "https://example.com",
		Timeout: 3,
		Names:   []string{"a"},
	}, cfg)
}
