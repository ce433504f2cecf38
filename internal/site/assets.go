package site

import (
	"fmt"
	"log/slog"
	"os"
)

// copyAssets byte-copies every entry of the static dir into the output dir,
// one directory level, preserving file names and overwriting silently.
// Subdirectories are not descended into; hitting one is an error.
func (b *Builder) copyAssets() ([]string, error) {
	entries, err := os.ReadDir(b.static.Root())
	if err != nil {
		return nil, fmt.Errorf("site: list static dir: %w", err)
	}

	var copied []string
	for _, e := range entries {
		if e.IsDir() {
			return nil, fmt.Errorf("site: static entry %s is a directory, only flat assets are supported", e.Name())
		}
		data, err := b.static.Read(e.Name())
		if err != nil {
			return nil, err
		}
		if err := b.output.Write(e.Name(), data); err != nil {
			return nil, err
		}
		b.logger.Debug("build: copied asset", slog.String("name", e.Name()))
		copied = append(copied, e.Name())
	}
	return copied, nil
}
