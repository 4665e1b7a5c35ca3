package db

import (
	"context"
	"embed"
	"io/fs"
	"sort"

	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every embedded migration in file name order. The scripts are
// idempotent so this runs on every start.
func Migrate(ctx context.Context, e Executor) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return errors.Wrap(err, "failed to list migrations")
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := migrations.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", file)
		}
		if _, err = e.Exec(ctx, string(sql)); err != nil {
			return errors.Wrapf(err, "failed to apply migration %s", file)
		}
	}
	return nil
}

// MigrationNames lists the embedded migrations in the order Migrate applies them.
func MigrationNames() []string {
	files, _ := fs.Glob(migrations, "migrations/*.sql")
	sort.Strings(files)
	return files
}
