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
	"github.com/yakoovad/orgsite/internal/model"
)

var mouColumns = []any{"id", "organization", "title", "description", "signed_on", "created_at"}

type MOU struct {
	ID           int64       `db:"id"`
	Organization string      `db:"organization"`
	Title        string      `db:"title"`
	Description  string      `db:"description"`
	SignedOn     *model.Date `db:"signed_on"`
	CreatedAt    time.Time   `db:"created_at"`
}

type MOURepository interface {
	Create(ctx context.Context, mou *MOU) error
	Get(ctx context.Context, id int64) (*MOU, error)
	List(ctx context.Context) ([]*MOU, error)
}

type pgxMOURepository struct {
	pool *pgxpool.Pool
}

func NewPgxMOURepository(pool *pgxpool.Pool) MOURepository {
	return &pgxMOURepository{pool: pool}
}

func (p *pgxMOURepository) Create(ctx context.Context, mou *MOU) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("mou", "organization", "title", "description", "signed_on"),
		im.Values(psql.Arg(mou.Organization), psql.Arg(mou.Title), psql.Arg(mou.Description), psql.Arg(mou.SignedOn)),
		im.Returning("id", "created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	return e.QueryRow(ctx, sql, args...).Scan(&mou.ID, &mou.CreatedAt)
}

func (p *pgxMOURepository) Get(ctx context.Context, id int64) (*MOU, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(mouColumns...),
		sm.From("mou"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	mou, err := scanMOU(e.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return mou, err
}

func (p *pgxMOURepository) List(ctx context.Context) ([]*MOU, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(mouColumns...),
		sm.From("mou"),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*MOU, error) {
		return scanMOU(row)
	})
}

func scanMOU(row pgx.Row) (*MOU, error) {
	mou := &MOU{}
	if err := row.Scan(&mou.ID, &mou.Organization, &mou.Title, &mou.Description, &mou.SignedOn, &mou.CreatedAt); err != nil {
		return nil, err
	}
	return mou, nil
}
