// Package util holds small helpers shared by the command entry points.
package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileSummary describes a file on disk for operator-facing logs.
type FileSummary struct {
	Path     string
	Size     int64
	Checksum string
}

// SummarizeFile returns the size and SHA256 checksum of the file at path.
func SummarizeFile(path string) (*FileSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	sha256Hash := sha256.New()

	size, err := io.Copy(sha256Hash, file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate checksum")
	}

	return &FileSummary{
		Path:     path,
		Size:     size,
		Checksum: fmt.Sprintf("%x", sha256Hash.Sum(nil)),
	}, nil
}

// HumanSize is Size in human readable format.
func (s *FileSummary) HumanSize() string {
	return FormatBytes(s.Size)
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
