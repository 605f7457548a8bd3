package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// MaxResumeBytes is the upload ceiling for resume files (10 MiB).
const MaxResumeBytes int64 = 10 << 20

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures per accepted extension
var magicBytes = map[string][][]byte{
	".pdf": {{0x25, 0x50, 0x44, 0x46}}, // %PDF
}

// Accepted MIME types per extension. application/octet-stream is never accepted.
var allowedMIMETypes = map[string]map[string]bool{
	".pdf": {"application/pdf": true},
}

// ValidateResume checks an uploaded resume in three layers:
// 1. Extension whitelist (.pdf)
// 2. Magic bytes match the extension
// 3. Detected MIME type is whitelisted for the extension
func ValidateResume(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	mimes, ok := allowedMIMETypes[ext]
	if !ok {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	if !mimes[detectedMIME] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// ValidateFileExtension checks only the extension (for quick pre-validation)
func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if _, ok := allowedMIMETypes[ext]; !ok {
		return errors.New("file extension not allowed: " + ext)
	}
	return nil
}
