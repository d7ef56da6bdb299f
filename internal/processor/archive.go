package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// moveToArchived moves a processed document into the archived folder. An
// existing file of the same name is never overwritten.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	if _, err := os.Stat(destPath); err == nil {
		ext := filepath.Ext(destPath)
		destPath = fmt.Sprintf("%s-%s%s", strings.TrimSuffix(destPath, ext), time.Now().Format("20060102-150405"), ext)
	}

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	err := os.Rename(path, destPath)
	if err == nil {
		return nil
	}

	// Rename fails across filesystems; fall back to copy and remove.
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("move to archived: %w", err)
	}
	if err := copyFile(path, destPath); err != nil {
		return fmt.Errorf("copy to archived: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove original: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
