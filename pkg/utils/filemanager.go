// =============================================================================
// Stock Transfer Tracker - File Utilities
// =============================================================================
//
// Small file helpers shared by the commands and the transfer log:
//   - Directory management (data dir creation on first run)
//   - Existence checks
//   - Timestamped backup copies of the transfer log before a rewrite
//
// BACKUP STRATEGY:
//   Saving an XLSX workbook rewrites the whole file, so before the transfer
//   log is re-saved a copy is placed next to it, named with a timestamp and a
//   short random suffix. Backups are never pruned by this tool.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// EnsureDirectories creates all given directories if they don't exist.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// BackupFile copies path to a sibling backup file and returns the backup
// path. The name carries a timestamp plus a short random suffix so two
// backups in the same second cannot collide.
func BackupFile(path string) (string, error) {
	suffix := uuid.NewString()[:8]
	backup := fmt.Sprintf("%s.%s-%s.bak", path, time.Now().Format("20060102-150405"), suffix)
	if err := CopyFile(path, backup); err != nil {
		return "", err
	}
	return backup, nil
}

// CopyFile copies src to dst, overwriting dst if it exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Sync()
}
