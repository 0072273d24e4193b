package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Open parses data as a zip archive.
func Open(data []byte) (*zip.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	// Unsafe entry names are rejected per entry by ExtractAll.
	if errors.Is(err, zip.ErrInsecurePath) && zr != nil {
		return zr, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "opening zip archive")
	}
	return zr, nil
}

// ExtractAll writes every entry of zr beneath destDir, creating nested
// directories as the archive dictates. It returns the files written, relative
// to destDir, in archive order. Extraction stops at the first failure; files
// already written are left in place.
func ExtractAll(zr *zip.Reader, destDir string) ([]string, error) {
	var written []string
	for _, f := range zr.File {
		target, err := entryPath(destDir, f.Name)
		if err != nil {
			return written, err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return written, errors.Wrapf(err, "creating directory %s", f.Name)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return written, errors.Wrapf(err, "creating parent directory for %s", f.Name)
		}
		if err := writeEntry(f, target); err != nil {
			return written, err
		}
		rel, _ := filepath.Rel(destDir, target)
		written = append(written, filepath.ToSlash(rel))
	}
	return written, nil
}

// entryPath resolves name beneath destDir, rejecting absolute names and
// names that climb out of destDir.
func entryPath(destDir, name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", errors.Newf("archive entry %q has an absolute path", name)
	}
	target := filepath.Join(destDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf("archive entry %q escapes the target directory", name)
	}
	return target, nil
}

func writeEntry(f *zip.File, target string) (err error) {
	rc, err := f.Open()
	if err != nil {
		return errors.Wrapf(err, "opening zip entry %s", f.Name)
	}
	defer rc.Close()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.Wrapf(err, "creating file %s", f.Name)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing file %s", f.Name)
		}
	}()

	if _, err := io.Copy(out, rc); err != nil {
		return errors.Wrapf(err, "writing file %s", f.Name)
	}
	return nil
}
