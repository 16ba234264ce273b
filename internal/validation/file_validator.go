package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileValidator provides input validation for observation source files
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateInputDirectory validates that the input directory exists and
// optionally contains files matching a pattern
func (v *FileValidator) ValidateInputDirectory(dir string, requiredPattern string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Error("Input directory does not exist",
			slog.String("directory", dir))
		return fmt.Errorf("input directory %s does not exist", dir)
	}
	if err != nil {
		v.logger.Error("Failed to stat input directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		v.logger.Error("Input path is not a directory",
			slog.String("path", dir))
		return fmt.Errorf("%s is not a directory", dir)
	}

	if requiredPattern != "" {
		pattern := filepath.Join(dir, requiredPattern)
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("failed to check for files: %w", err)
		}

		if len(matches) == 0 {
			v.logger.Warn("No files matching pattern found",
				slog.String("directory", dir),
				slog.String("pattern", requiredPattern))
			// Not an error - just no files to process
			return nil
		}

		v.logger.Info("Input directory validated",
			slog.String("directory", dir),
			slog.Int("files_found", len(matches)),
			slog.String("pattern", requiredPattern))
	}

	return nil
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return fmt.Errorf("file %s does not exist", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateObservationFile checks that a file is an ingestible
// observation source: an Excel workbook or a CSV export
func (v *FileValidator) ValidateObservationFile(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}
	return v.ValidateObservationFileName(filepath.Base(path))
}

// ValidateObservationFileName checks extension and temp-file rules
// without touching the file system, so upload handlers can use it on
// client-supplied names
func (v *FileValidator) ValidateObservationFileName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".xlsx", ".xlsm", ".xls", ".csv":
	default:
		v.logger.Error("File is not an observation source",
			slog.String("file", name),
			slog.String("extension", ext))
		return fmt.Errorf("file %s is not an observation source (extension: %s)", name, ext)
	}

	if strings.HasPrefix(name, "~$") {
		v.logger.Warn("Skipping temporary Excel file",
			slog.String("file", name))
		return fmt.Errorf("file %s is a temporary Excel file", name)
	}

	return nil
}
