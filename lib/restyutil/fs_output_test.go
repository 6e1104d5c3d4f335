package restyutil

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")

	err := os.MkdirAll(dir, 0777)
	if err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(dir, "stale.txt")
	err = os.WriteFile(stale, []byte("old"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	out, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}
	_, err = os.Stat(stale)
	require.True(t, os.IsNotExist(err))

	out.Write("1", "GET https://www.owgr.com/ranking")

	contents, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "GET https://www.owgr.com/ranking", string(contents))
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("User-Agent", "Mozilla/5.0")
	headers.Add("Accept", "text/html")
	headers.Add("Accept", "application/xhtml+xml")

	require.Equal(
		t,
		"Accept: text/html\nAccept: application/xhtml+xml\nUser-Agent: Mozilla/5.0",
		FormatHeaders(headers),
	)
	require.Equal(t, "", FormatHeaders(http.Header{}))
}
