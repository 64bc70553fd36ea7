package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// FileInfo describes one backup file on disk.
type FileInfo struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// listFiles returns the backups in dir, newest first.
func listFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []FileInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}

	files := []FileInfo{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: name, Size: info.Size(), ModTime: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].Name > files[j].Name
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// prune removes backups older than maxAge and keeps at most maxCount of the
// newest. A zero limit disables that rule. keep is never removed.
func prune(dir, keep string, maxAge time.Duration, maxCount int, now time.Time) ([]string, error) {
	files, err := listFiles(dir)
	if err != nil {
		return nil, err
	}

	removed := []string{}
	var errs error
	kept := 0
	for _, f := range files {
		if f.Name == keep {
			kept++
			continue
		}
		tooOld := maxAge > 0 && now.Sub(f.ModTime) > maxAge
		tooMany := maxCount > 0 && kept >= maxCount
		if !tooOld && !tooMany {
			kept++
			continue
		}
		if err := os.Remove(filepath.Join(dir, f.Name)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("removing %s: %w", f.Name, err))
			continue
		}
		removed = append(removed, f.Name)
	}
	return removed, errs
}
