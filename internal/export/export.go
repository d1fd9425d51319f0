package export

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
)

// File names of exported reports.
const (
	FileName         = "Founders_Compass_Part2_Responses.html"
	MarkdownFileName = "Founders_Compass_Part2_Responses.md"
	JSONFileName     = "Founders_Compass_Part2_Responses.json"
)

// Content types of exported reports.
const (
	ContentTypeHTML     = "text/html; charset=utf-8"
	ContentTypeMarkdown = "text/markdown; charset=utf-8"
	ContentTypeJSON     = "application/json"
)

// File permissions for exported files and directories.
const (
	fileMode = 0o600
	dirMode  = 0o750
)

// checkName validates a bare file name.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return nil
}

// SaveFile writes doc to dir/name and returns the path written.
//
// The document goes through a pending file in dir that atomically replaces
// the target on success, so an existing report is either fully replaced or
// left untouched. The pending file is removed on every failure path.
// dir is created when missing.
func SaveFile(dir, name, doc string) (string, error) {
	if doc == "" {
		return "", ErrEmptyDocument
	}
	if err := checkName(name); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(dir),
		renameio.WithPermissions(fileMode),
		renameio.IgnoreUmask(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := io.WriteString(pending, doc); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

// Download writes doc to w as a file attachment named name.
func Download(w http.ResponseWriter, name, contentType, doc string) error {
	if doc == "" {
		return ErrEmptyDocument
	}
	if err := checkName(name); err != nil {
		return err
	}

	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	h.Set("Content-Length", strconv.Itoa(len(doc)))
	h.Set("Cache-Control", "no-store")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := io.WriteString(w, doc); err != nil {
		return fmt.Errorf("failed to send %s: %w", name, err)
	}
	return nil
}
