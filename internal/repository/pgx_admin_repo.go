package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/yakoovad/orgsite/internal/db"
)

type AdminUser struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type AdminRepository interface {
	// CreateIfMissing inserts the admin unless the username is taken and reports whether a row was added.
	CreateIfMissing(ctx context.Context, admin *AdminUser) (bool, error)
	GetByUsername(ctx context.Context, username string) (*AdminUser, error)
}

type pgxAdminRepository struct {
	pool *pgxpool.Pool
}

func NewPgxAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &pgxAdminRepository{pool: pool}
}

func (p *pgxAdminRepository) CreateIfMissing(ctx context.Context, admin *AdminUser) (bool, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("admin_user", "username", "email", "password_hash"),
		im.Values(psql.Arg(admin.Username), psql.Arg(admin.Email), psql.Arg(admin.PasswordHash)),
		im.OnConflict(psql.Quote("username")).DoNothing(),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return false, err
	}

	tag, err := e.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (p *pgxAdminRepository) GetByUsername(ctx context.Context, username string) (*AdminUser, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "username", "email", "password_hash", "created_at"),
		sm.From("admin_user"),
		sm.Where(psql.Quote("username").EQ(psql.Arg(username))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	u := &AdminUser{}
	if err = e.QueryRow(ctx, sql, args...).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
