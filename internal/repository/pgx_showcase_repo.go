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

var showcaseColumns = []any{"id", "title", "description", "category", "link", "created_at"}

// ShowcaseItem is the row shape shared by the project and community_item tables.
type ShowcaseItem struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Link        string    `db:"link"`
	CreatedAt   time.Time `db:"created_at"`
}

type ShowcaseRepository interface {
	Create(ctx context.Context, item *ShowcaseItem) error
	Get(ctx context.Context, id int64) (*ShowcaseItem, error)
	List(ctx context.Context) ([]*ShowcaseItem, error)
}

type pgxShowcaseRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewPgxProjectRepository(pool *pgxpool.Pool) ShowcaseRepository {
	return &pgxShowcaseRepository{pool: pool, table: "project"}
}

func NewPgxCommunityRepository(pool *pgxpool.Pool) ShowcaseRepository {
	return &pgxShowcaseRepository{pool: pool, table: "community_item"}
}

func (p *pgxShowcaseRepository) Create(ctx context.Context, item *ShowcaseItem) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into(p.table, "title", "description", "category", "link"),
		im.Values(psql.Arg(item.Title), psql.Arg(item.Description), psql.Arg(item.Category), psql.Arg(item.Link)),
		im.Returning("id", "created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	return e.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.CreatedAt)
}

func (p *pgxShowcaseRepository) Get(ctx context.Context, id int64) (*ShowcaseItem, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(showcaseColumns...),
		sm.From(p.table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	item, err := scanShowcaseItem(e.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

func (p *pgxShowcaseRepository) List(ctx context.Context) ([]*ShowcaseItem, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(showcaseColumns...),
		sm.From(p.table),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*ShowcaseItem, error) {
		return scanShowcaseItem(row)
	})
}

func scanShowcaseItem(row pgx.Row) (*ShowcaseItem, error) {
	item := &ShowcaseItem{}
	if err := row.Scan(&item.ID, &item.Title, &item.Description, &item.Category, &item.Link, &item.CreatedAt); err != nil {
		return nil, err
	}
	return item, nil
}
