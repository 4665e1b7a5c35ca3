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

var careerColumns = []any{"id", "full_name", "email", "phone", "position", "cover_letter", "resume", "created_at"}

type CareerApplication struct {
	ID          int64     `db:"id"`
	FullName    string    `db:"full_name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Position    string    `db:"position"`
	CoverLetter string    `db:"cover_letter"`
	Resume      string    `db:"resume"`
	CreatedAt   time.Time `db:"created_at"`
}

type CareerRepository interface {
	Create(ctx context.Context, app *CareerApplication) error
	Get(ctx context.Context, id int64) (*CareerApplication, error)
	List(ctx context.Context) ([]*CareerApplication, error)
}

type pgxCareerRepository struct {
	pool *pgxpool.Pool
}

func NewPgxCareerRepository(pool *pgxpool.Pool) CareerRepository {
	return &pgxCareerRepository{pool: pool}
}

func (p *pgxCareerRepository) Create(ctx context.Context, app *CareerApplication) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("career_application", "full_name", "email", "phone", "position", "cover_letter", "resume"),
		im.Values(
			psql.Arg(app.FullName),
			psql.Arg(app.Email),
			psql.Arg(app.Phone),
			psql.Arg(app.Position),
			psql.Arg(app.CoverLetter),
			psql.Arg(app.Resume),
		),
		im.Returning("id", "created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	return e.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.CreatedAt)
}

func (p *pgxCareerRepository) Get(ctx context.Context, id int64) (*CareerApplication, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(careerColumns...),
		sm.From("career_application"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	app, err := scanCareerApplication(e.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return app, err
}

func (p *pgxCareerRepository) List(ctx context.Context) ([]*CareerApplication, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(careerColumns...),
		sm.From("career_application"),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*CareerApplication, error) {
		return scanCareerApplication(row)
	})
}

func scanCareerApplication(row pgx.Row) (*CareerApplication, error) {
	app := &CareerApplication{}
	if err := row.Scan(
		&app.ID,
		&app.FullName,
		&app.Email,
		&app.Phone,
		&app.Position,
		&app.CoverLetter,
		&app.Resume,
		&app.CreatedAt,
	); err != nil {
		return nil, err
	}
	return app, nil
}
