package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// writeFileAtomic replaces path with data, going through a temporary file in
// the same directory so an existing file is never left half written.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".svg2svx-*")
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, 0o644)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "writing output")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "writing output")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "writing output")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "replacing output")
	}
	return nil
}

// The output goes beside the drawing unless named.
func outputPath(input, output string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "-"
	}
	return trimExt(input) + ".svx"
}

func trimExt(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}
