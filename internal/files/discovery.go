package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// observationExtensions are the file types the parser accepts.
var observationExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
	".csv":  true,
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindObservationFiles finds all observation source files (Excel or
// CSV) in the specified directory. Results are sorted by file name:
// field teams name exports by session order, and merge order follows
// file order.
func (d *Discovery) FindObservationFiles(dir string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !observationExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		// Excel lock files appear while a sheet is open in the field
		// laptop; never ingest them.
		if strings.HasPrefix(name, "~$") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// FindFilesByPattern finds files matching a glob pattern
func (d *Discovery) FindFilesByPattern(dir string, pattern string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}
	searchPattern := filepath.Join(fullPath, pattern)

	matches, err := filepath.Glob(searchPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}

	var files []FileInfo
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			files = append(files, FileInfo{
				Path:    match,
				Name:    filepath.Base(match),
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		}
	}

	return files, nil
}
