// Package collect walks a root directory and produces the ordered list of
// candidate files for a rename pass.
package collect

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jfmartin/renamebatch/internal/platform"
	"github.com/jfmartin/renamebatch/pkg/models"
)

// Collector gathers regular files under a root directory matching a glob
// pattern. Results are sorted lexicographically by full path so that
// numbering is deterministic across runs.
type Collector struct {
	root      string
	pattern   string
	recursive bool
}

// New creates a collector for root. It fails if root does not exist, is not
// a directory, or pattern is not valid glob syntax; all of this is checked
// before any filesystem mutation can happen.
func New(root, pattern string, recursive bool) (*Collector, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("path does not exist: %s", root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	if pattern == "" {
		pattern = "*"
	}
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	return &Collector{root: absRoot, pattern: pattern, recursive: recursive}, nil
}

// Root returns the absolute root path
func (c *Collector) Root() string {
	return c.root
}

// Collect returns the matching regular files in lexicographic order by
// full path. Directories and non-matching entries are silently excluded;
// symlinks are resolved and included only when they point at regular files.
func (c *Collector) Collect(ctx context.Context) ([]models.CandidateFile, error) {
	var files []models.CandidateFile

	appendFile := func(path string, info os.FileInfo) error {
		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		if !c.matches(rel) {
			return nil
		}

		name := filepath.Base(path)
		ext := filepath.Ext(name)
		created, kind := platform.CreationTime(info)

		files = append(files, models.CandidateFile{
			AbsolutePath: path,
			RelativePath: rel,
			Dir:          filepath.Dir(path),
			Stem:         strings.TrimSuffix(name, ext),
			Ext:          ext,
			ModTime:      info.ModTime(),
			CreateTime:   created,
			CreateKind:   kind,
		})
		return nil
	}

	var err error
	if c.recursive {
		err = filepath.WalkDir(c.root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if d.IsDir() {
				return nil
			}

			info, ok, err := resolveRegular(path, d.Type())
			if err != nil || !ok {
				return err
			}
			return appendFile(path, info)
		})
	} else {
		var entries []fs.DirEntry
		entries, err = os.ReadDir(c.root)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				path := filepath.Join(c.root, entry.Name())
				info, ok, resolveErr := resolveRegular(path, entry.Type())
				if resolveErr != nil {
					err = resolveErr
					break
				}
				if !ok {
					continue
				}
				if err = appendFile(path, info); err != nil {
					break
				}
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to collect files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].AbsolutePath < files[j].AbsolutePath
	})

	return files, nil
}

// resolveRegular stats path and reports whether it is usable as a candidate.
// Symlinks are followed; links to directories are excluded, and broken links
// are skipped rather than failing the whole scan.
func resolveRegular(path string, mode fs.FileMode) (os.FileInfo, bool, error) {
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, false, nil
			}
			return nil, false, err
		}
		if !info.Mode().IsRegular() {
			return nil, false, nil
		}
		return info, true, nil
	}

	if !mode.IsRegular() {
		return nil, false, nil
	}
	info, err := os.Lstat(path)
	if err != nil {
		return nil, false, err
	}
	return info, true, nil
}

// matches applies the glob filter. Plain patterns match the basename; a
// pattern containing a separator matches the root-relative path.
func (c *Collector) matches(rel string) bool {
	if strings.ContainsRune(c.pattern, '/') {
		matched, _ := filepath.Match(c.pattern, filepath.ToSlash(rel))
		return matched
	}
	matched, _ := filepath.Match(c.pattern, filepath.Base(rel))
	return matched
}
