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

var inquiryColumns = []any{"id", "name", "email", "phone", "organization", "message", "created_at"}

type CpuInquiry struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Organization string    `db:"organization"`
	Message      string    `db:"message"`
	CreatedAt    time.Time `db:"created_at"`
}

type InquiryRepository interface {
	Create(ctx context.Context, inq *CpuInquiry) error
	Get(ctx context.Context, id int64) (*CpuInquiry, error)
	List(ctx context.Context) ([]*CpuInquiry, error)
}

type pgxInquiryRepository struct {
	pool *pgxpool.Pool
}

func NewPgxInquiryRepository(pool *pgxpool.Pool) InquiryRepository {
	return &pgxInquiryRepository{pool: pool}
}

func (p *pgxInquiryRepository) Create(ctx context.Context, inq *CpuInquiry) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("cpu_inquiry", "name", "email", "phone", "organization", "message"),
		im.Values(
			psql.Arg(inq.Name),
			psql.Arg(inq.Email),
			psql.Arg(inq.Phone),
			psql.Arg(inq.Organization),
			psql.Arg(inq.Message),
		),
		im.Returning("id", "created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	return e.QueryRow(ctx, sql, args...).Scan(&inq.ID, &inq.CreatedAt)
}

func (p *pgxInquiryRepository) Get(ctx context.Context, id int64) (*CpuInquiry, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(inquiryColumns...),
		sm.From("cpu_inquiry"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	inq, err := scanCpuInquiry(e.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return inq, err
}

func (p *pgxInquiryRepository) List(ctx context.Context) ([]*CpuInquiry, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(inquiryColumns...),
		sm.From("cpu_inquiry"),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*CpuInquiry, error) {
		return scanCpuInquiry(row)
	})
}

func scanCpuInquiry(row pgx.Row) (*CpuInquiry, error) {
	inq := &CpuInquiry{}
	if err := row.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Organization, &inq.Message, &inq.CreatedAt); err != nil {
		return nil, err
	}
	return inq, nil
}
