//go:build integration

package integration_test

import (
	"net/http"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullFlowNewFolder(t *testing.T) {
	host := serveZip(t, map[string]string{
		"index.js":     "console.log('ready')",
		"package.json": `{"name":"myapp"}`,
	})
	work := t.TempDir()

	res := runCLI(t, work, host.URL, "myapp\nDJS14Template\n")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0\n%s", res.ExitCode, res.Stdout)
	}

	assertDirEntries(t, filepath.Join(work, "myapp"), "index.js", "package.json")
	assertFileContains(t, filepath.Join(work, "myapp", "package.json"), `"myapp"`)
	if !strings.Contains(res.Stdout, "Successfully set up project :D") {
		t.Errorf("missing success message in output:\n%s", res.Stdout)
	}
}

func TestFullFlowCurrentFolder(t *testing.T) {
	host := serveZip(t, map[string]string{"README.md": "# starter"})
	work := t.TempDir()

	res := runCLI(t, work, host.URL, ".\nbogus\n")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0\n%s", res.ExitCode, res.Stdout)
	}

	assertDirEntries(t, work, "README.md")
	if !strings.Contains(res.Stdout, "Downloading template template...") {
		t.Errorf("expected fallback to default template:\n%s", res.Stdout)
	}
}

func TestFullFlowServerError(t *testing.T) {
	host := serveStatus(t, http.StatusInternalServerError)
	work := t.TempDir()

	res := runCLI(t, work, host.URL, "myapp\nDJS14Template\n")
	if res.ExitCode == 0 {
		t.Fatalf("exit code = 0, want non-zero\n%s", res.Stdout)
	}

	assertDirEntries(t, filepath.Join(work, "myapp"))
	if strings.Contains(res.Stdout, "Successfully set up project") {
		t.Errorf("success reported after failed download:\n%s", res.Stdout)
	}
}

func TestFullFlowMissingParent(t *testing.T) {
	host := serveStatus(t, http.StatusOK)
	work := t.TempDir()

	res := runCLI(t, work, host.URL, "a/b\n")
	if res.ExitCode == 0 {
		t.Fatalf("exit code = 0, want non-zero\n%s", res.Stdout)
	}
	assertDirEntries(t, work)
}
