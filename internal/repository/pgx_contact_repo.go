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

var contactColumns = []any{"id", "name", "email", "subject", "message", "created_at"}

type ContactMessage struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	Get(ctx context.Context, id int64) (*ContactMessage, error)
	List(ctx context.Context) ([]*ContactMessage, error)
}

type pgxContactRepository struct {
	pool *pgxpool.Pool
}

func NewPgxContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &pgxContactRepository{pool: pool}
}

func (p *pgxContactRepository) Create(ctx context.Context, msg *ContactMessage) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("contact_message", "name", "email", "subject", "message"),
		im.Values(psql.Arg(msg.Name), psql.Arg(msg.Email), psql.Arg(msg.Subject), psql.Arg(msg.Message)),
		im.Returning("id", "created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	return e.QueryRow(ctx, sql, args...).Scan(&msg.ID, &msg.CreatedAt)
}

func (p *pgxContactRepository) Get(ctx context.Context, id int64) (*ContactMessage, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(contactColumns...),
		sm.From("contact_message"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := scanContactMessage(e.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return msg, err
}

func (p *pgxContactRepository) List(ctx context.Context) ([]*ContactMessage, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(contactColumns...),
		sm.From("contact_message"),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*ContactMessage, error) {
		return scanContactMessage(row)
	})
}

func scanContactMessage(row pgx.Row) (*ContactMessage, error) {
	msg := &ContactMessage{}
	if err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.CreatedAt); err != nil {
		return nil, err
	}
	return msg, nil
}
