package export

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSaveFile(t *testing.T) {
	t.Parallel()

	t.Run("writes the document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path, err := SaveFile(dir, FileName, "<html></html>")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != filepath.Join(dir, FileName) {
			t.Errorf("unexpected path %q", path)
		}

		data, err := os.ReadFile(path) //nolint:gosec // test file
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "<html></html>" {
			t.Errorf("unexpected content %q", data)
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if perm := info.Mode().Perm(); perm != 0o600 {
				t.Errorf("expected mode 0600, got %o", perm)
			}
		}
	})

	t.Run("replaces an existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := SaveFile(dir, FileName, "first"); err != nil {
			t.Fatal(err)
		}
		path, err := SaveFile(dir, FileName, "second")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(path) //nolint:gosec // test file
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "second" {
			t.Errorf("unexpected content %q", data)
		}
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "reports")
		if _, err := SaveFile(dir, MarkdownFileName, "# report"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, MarkdownFileName)); err != nil {
			t.Errorf("expected file to exist: %v", err)
		}
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for range 3 {
			if _, err := SaveFile(dir, FileName, "doc"); err != nil {
				t.Fatal(err)
			}
		}
		// A directory in place of the target makes the rename fail.
		if err := os.Mkdir(filepath.Join(dir, "taken"), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "taken", "keep"), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := SaveFile(dir, "taken", "doc"); err == nil {
			t.Error("expected an error when the target is a non-empty directory")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 2 {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("expected only the report and the directory, got %v", names)
		}
	})

	t.Run("rejects an empty document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := SaveFile(dir, FileName, ""); !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("expected ErrEmptyDocument, got %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, FileName)); !errors.Is(err, os.ErrNotExist) {
			t.Error("expected no file to be written")
		}
	})

	t.Run("rejects file names with paths", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", ".", "..", "../escape.html", "sub/report.html", `sub\report.html`} {
			if _, err := SaveFile(t.TempDir(), name, "doc"); !errors.Is(err, ErrInvalidFileName) {
				t.Errorf("%q: expected ErrInvalidFileName, got %v", name, err)
			}
		}
	})
}

func TestDownload(t *testing.T) {
	t.Parallel()

	t.Run("sends an attachment", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		if err := Download(rec, FileName, ContentTypeHTML, "<html>ok</html>"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename="+FileName {
			t.Errorf("unexpected Content-Disposition %q", got)
		}
		if got := rec.Header().Get("Content-Type"); got != ContentTypeHTML {
			t.Errorf("unexpected Content-Type %q", got)
		}
		if got := rec.Header().Get("Content-Length"); got != "15" {
			t.Errorf("unexpected Content-Length %q", got)
		}
		if rec.Body.String() != "<html>ok</html>" {
			t.Errorf("unexpected body %q", rec.Body.String())
		}
	})

	t.Run("quotes file names with spaces", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		if err := Download(rec, "my report.md", ContentTypeMarkdown, "# x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="my report.md"` {
			t.Errorf("unexpected Content-Disposition %q", got)
		}
	})

	t.Run("rejects an empty document before writing", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		if err := Download(rec, FileName, ContentTypeHTML, ""); !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("expected ErrEmptyDocument, got %v", err)
		}
		if rec.Header().Get("Content-Disposition") != "" {
			t.Error("expected no headers to be set")
		}
	})
}
