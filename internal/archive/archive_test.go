package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name    string
	content string
}

// buildZip creates an in-memory zip. Names ending in "/" become directories.
func buildZip(t *testing.T, entries ...entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		if e.content != "" {
			_, err = w.Write([]byte(e.content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestURL(t *testing.T) {
	f := New(WithHost("https://github.com/"))
	assert.Equal(t, "https://github.com/kars1996/archive/refs/heads/master.zip", f.URL("kars1996", "master"))
}

func TestFetch(t *testing.T) {
	data := buildZip(t, entry{name: "README.md", content: "hello"})
	var gotUA, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/zip")
		w.Write(data)
	}))
	defer server.Close()

	f := New(WithHTTPClient(server.Client()), WithHost(server.URL), WithUserAgent("create-kapp/1.2.0"))
	body, err := f.Fetch(context.Background(), f.URL("owner", "main"))
	require.NoError(t, err)

	assert.Equal(t, data, body)
	assert.Equal(t, "create-kapp/1.2.0", gotUA)
	assert.Equal(t, "/owner/archive/refs/heads/main.zip", gotPath)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := New(WithHTTPClient(server.Client()), WithHost(server.URL))
	_, err := f.Fetch(context.Background(), f.URL("owner", "main"))
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestFetch_UnexpectedContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html>login</html>"))
	}))
	defer server.Close()

	f := New(WithHTTPClient(server.Client()), WithHost(server.URL))
	_, err := f.Fetch(context.Background(), f.URL("owner", "main"))
	assert.ErrorContains(t, err, "unexpected content type")
}

func TestFetch_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("unused"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(WithHTTPClient(server.Client()), WithHost(server.URL))
	_, err := f.Fetch(ctx, f.URL("owner", "main"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOpen_Malformed(t *testing.T) {
	_, err := Open([]byte("definitely not a zip"))
	assert.Error(t, err)
}

func TestExtractAll(t *testing.T) {
	data := buildZip(t,
		entry{name: "repo-master/"},
		entry{name: "repo-master/README.md", content: "readme"},
		entry{name: "repo-master/src/index.js", content: "console.log(1)"},
		entry{name: "top.txt", content: "top"},
	)
	zr, err := Open(data)
	require.NoError(t, err)

	dest := t.TempDir()
	written, err := ExtractAll(zr, dest)
	require.NoError(t, err)

	assert.Equal(t, []string{"repo-master/README.md", "repo-master/src/index.js", "top.txt"}, written)

	got, err := os.ReadFile(filepath.Join(dest, "repo-master", "src", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "console.log(1)", string(got))
}

func TestExtractAll_OverwritesExisting(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "a.txt"), []byte("a much longer old body"), 0644))

	zr, err := Open(buildZip(t, entry{name: "a.txt", content: "new"}))
	require.NoError(t, err)
	_, err = ExtractAll(zr, dest)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestExtractAll_RejectsEscapingEntries(t *testing.T) {
	for _, name := range []string{"../evil.txt", "nested/../../evil.txt", "/abs.txt"} {
		t.Run(name, func(t *testing.T) {
			zr, err := Open(buildZip(t, entry{name: name, content: "x"}))
			require.NoError(t, err)

			parent := t.TempDir()
			dest := filepath.Join(parent, "dest")
			require.NoError(t, os.Mkdir(dest, 0755))

			_, err = ExtractAll(zr, dest)
			require.Error(t, err)
			_, statErr := os.Stat(filepath.Join(parent, "evil.txt"))
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "create-kapp/1.4.0", UserAgent("create-kapp", "v1.4.0"))
	assert.Equal(t, "create-kapp/1.4.0", UserAgent("create-kapp", "1.4"))
	assert.Equal(t, "create-kapp/dev", UserAgent("create-kapp", "dev"))
}
