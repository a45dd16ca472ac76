package validation

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Workbook magic numbers: xlsx files are zip archives, legacy xls files are
// OLE compound documents.
var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
)

// FileValidator checks uploaded workbook files before they reach the parser.
type FileValidator struct {
	logger  *slog.Logger
	maxSize int64
}

// NewFileValidator creates a new file validator with a size limit in bytes.
func NewFileValidator(logger *slog.Logger, maxSize int64) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger:  logger,
		maxSize: maxSize,
	}
}

// ValidateWorkbook checks filename extension, size, and magic bytes of an
// uploaded workbook. It rejects files before the Excel parser sees them, so
// parse errors stay reserved for genuinely malformed sheets.
func (v *FileValidator) ValidateWorkbook(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		v.logger.Warn("rejected upload with unsupported extension",
			slog.String("filename", filename),
			slog.String("extension", ext))
		return fmt.Errorf("unsupported file type %q, expected .xlsx or .xls", ext)
	}

	if int64(len(data)) > v.maxSize {
		v.logger.Warn("rejected oversized upload",
			slog.String("filename", filename),
			slog.Int("size", len(data)),
			slog.Int64("limit", v.maxSize))
		return fmt.Errorf("file exceeds size limit of %d bytes", v.maxSize)
	}

	if len(data) < len(zipMagic) {
		return fmt.Errorf("file too small to be a workbook")
	}

	if !bytes.HasPrefix(data, zipMagic) && !bytes.HasPrefix(data, oleMagic) {
		v.logger.Warn("rejected upload with invalid magic bytes",
			slog.String("filename", filename))
		return fmt.Errorf("file content does not look like an Excel workbook")
	}

	return nil
}
