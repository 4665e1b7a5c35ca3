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

var galleryColumns = []any{"id", "title", "category", "image", "created_at"}

// GalleryImage.Image is the storage path relative to the media root.
type GalleryImage struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Category  string    `db:"category"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
}

type GalleryRepository interface {
	Create(ctx context.Context, img *GalleryImage) error
	Get(ctx context.Context, id int64) (*GalleryImage, error)
	// List returns every image when category is empty.
	List(ctx context.Context, category string) ([]*GalleryImage, error)
}

type pgxGalleryRepository struct {
	pool *pgxpool.Pool
}

func NewPgxGalleryRepository(pool *pgxpool.Pool) GalleryRepository {
	return &pgxGalleryRepository{pool: pool}
}

func (p *pgxGalleryRepository) Create(ctx context.Context, img *GalleryImage) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("gallery_image", "title", "category", "image"),
		im.Values(psql.Arg(img.Title), psql.Arg(img.Category), psql.Arg(img.Image)),
		im.Returning("id", "created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	return e.QueryRow(ctx, sql, args...).Scan(&img.ID, &img.CreatedAt)
}

func (p *pgxGalleryRepository) Get(ctx context.Context, id int64) (*GalleryImage, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(galleryColumns...),
		sm.From("gallery_image"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	img, err := scanGalleryImage(e.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return img, err
}

func (p *pgxGalleryRepository) List(ctx context.Context, category string) ([]*GalleryImage, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(galleryColumns...),
		sm.From("gallery_image"),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	if category != "" {
		q.Apply(sm.Where(psql.Quote("category").EQ(psql.Arg(category))))
	}

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*GalleryImage, error) {
		return scanGalleryImage(row)
	})
}

func scanGalleryImage(row pgx.Row) (*GalleryImage, error) {
	img := &GalleryImage{}
	if err := row.Scan(&img.ID, &img.Title, &img.Category, &img.Image, &img.CreatedAt); err != nil {
		return nil, err
	}
	return img, nil
}
