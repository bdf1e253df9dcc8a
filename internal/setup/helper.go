package setup

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/config"
)

func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once    sync.Once
		service T
		onceErr error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			srv, err := factory(ctx, conf)
			if err != nil {
				onceErr = errors.WithStack(err)
				return
			}

			service = srv
		})
		if onceErr != nil {
			return *new(T), onceErr
		}

		return service, nil
	}
}

func ensureBaseDirectory(filePath string) error {
	baseDir := filepath.Dir(filePath)

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
