package resources

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Ensure loads the resource set, provisioning missing files into the cache
// first. Concurrent callers wait for the one in progress; a failed attempt
// leaves the provisioner unensured so a later call can retry.
func (p *implProvisioner) Ensure(ctx context.Context) (*Set, error) {
	select {
	case p.gate <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-p.gate }()

	if p.set != nil {
		return p.set, nil
	}

	punkt, err := p.ensureResource(ctx, Punkt)
	if err != nil {
		return nil, err
	}
	stopwords, err := p.ensureResource(ctx, Stopwords)
	if err != nil {
		return nil, err
	}

	set, err := NewSet(punkt, stopwords)
	if err != nil {
		return nil, fmt.Errorf("load linguistic resources from %s (delete the directory to re-provision): %w", p.cacheDir, err)
	}

	p.set = set
	p.logger.Info(ctx, "Linguistic resources ready (%d stopwords)", set.StopwordCount())
	return set, nil
}

func (p *implProvisioner) ensureResource(ctx context.Context, r Resource) ([]byte, error) {
	path := p.path(r)

	data, err := os.ReadFile(path)
	if err == nil && len(data) > 0 {
		p.logger.Debug(ctx, "Resource '%s' already available at %s", r.Name, path)
		return data, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, &ProvisionError{Resource: r, Source: p.source.Name(), Path: path, Err: err}
	}

	p.logger.Info(ctx, "Provisioning resource '%s' from %s source", r.Name, p.source.Name())

	data, err = p.source.Fetch(ctx, r)
	if err != nil {
		p.logger.Error(ctx, "Failed to fetch resource '%s': %v", r.Name, err)
		return nil, &ProvisionError{Resource: r, Source: p.source.Name(), Path: path, Err: err}
	}

	if err := writeAtomic(path, data); err != nil {
		return nil, &ProvisionError{Resource: r, Source: p.source.Name(), Path: path, Err: err}
	}

	p.logger.Info(ctx, "Resource '%s' stored at %s", r.Name, path)
	return data, nil
}

// Status reports which resources are present in the cache.
func (p *implProvisioner) Status() []Status {
	out := make([]Status, 0, len(All))
	for _, r := range All {
		path := p.path(r)
		info, err := os.Stat(path)
		out = append(out, Status{
			Resource: r,
			Path:     path,
			Cached:   err == nil && info.Mode().IsRegular() && info.Size() > 0,
		})
	}
	return out
}

func (p *implProvisioner) path(r Resource) string {
	return filepath.Join(p.cacheDir, filepath.FromSlash(r.Path))
}

// writeAtomic writes data next to path and renames it into place, so readers
// in this or another process never see a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
