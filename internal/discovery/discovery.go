// Package discovery implements C1: recursively listing the .log files
// under a root directory.
package discovery

import (
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// logExtension is the literal, case-sensitive extension a file must
// have to be included.
const logExtension = ".log"

// Walker abstracts filepath.Walk so tests can drive List without
// touching a real filesystem.
type Walker interface {
	Walk(root string, fn filepath.WalkFunc) error
}

type osWalker struct{}

func (osWalker) Walk(root string, fn filepath.WalkFunc) error {
	return filepath.Walk(root, fn)
}

// DefaultWalker is the Walker used in production.
var DefaultWalker Walker = osWalker{}

// List recursively enumerates every regular .log file under root;
// directories, symlinks and other non-regular entries are skipped. An
// unreadable subdirectory is logged and skipped; only a failure at
// root itself (it doesn't exist, or isn't readable) is returned to the
// caller. The returned order is unspecified.
func List(walker Walker, root string, logger *zap.Logger) ([]string, error) {
	var files []string

	err := walker.Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if filepath.Ext(path) == logExtension {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
