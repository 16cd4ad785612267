// Package walker collects the static assets shipped with an exported site.
package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
)

// DefaultMaxFileSize is the largest asset copied (8 MB).
const DefaultMaxFileSize int64 = 8 << 20

// Asset describes one file selected for export.
type Asset struct {
	RelPath     string // Slash-separated path relative to the asset root.
	Size        int64  // File size in bytes.
	ContentHash string // SHA-256 hex digest of the file content.
}

// Config controls which files Walk selects.
type Config struct {
	Include     []string // Glob patterns; only matching files are selected.
	Exclude     []string // Glob patterns; matching files are skipped.
	MaxFileSize int64    // Larger files are skipped (0 = use default).
}

// Walk traverses fsys and returns every regular file passing the filters,
// in lexical order.
func Walk(fsys fs.FS, cfg Config) ([]Asset, error) {
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var assets []Asset
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == "." {
			return nil
		}
		if shouldExclude(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !MatchesInclude(p, cfg.Include) || MatchesExclude(p, cfg.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxSize {
			return nil
		}

		hash, err := hashFile(fsys, p)
		if err != nil {
			return fmt.Errorf("hashing %s: %w", p, err)
		}
		assets = append(assets, Asset{RelPath: p, Size: info.Size(), ContentHash: hash})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}
	return assets, nil
}

// HashFile computes the SHA-256 digest of name in fsys.
func HashFile(fsys fs.FS, name string) (string, error) {
	return hashFile(fsys, name)
}

func hashFile(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
