package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/yakoovad/orgsite/internal/db"
	"github.com/yakoovad/orgsite/internal/model"
)

var (
	teamColumns        = []any{"id", "team_name", "total_participants", "created_at"}
	participantColumns = []any{"id", "team_id", "role", "full_name", "email", "phone", "branch", "section", "year", "created_at"}
)

type HackathonTeam struct {
	ID                int64     `db:"id"`
	TeamName          string    `db:"team_name"`
	TotalParticipants int       `db:"total_participants"`
	CreatedAt         time.Time `db:"created_at"`
}

type HackathonParticipant struct {
	ID        int64                 `db:"id"`
	TeamID    int64                 `db:"team_id"`
	Role      model.ParticipantRole `db:"role"`
	FullName  string                `db:"full_name"`
	Email     string                `db:"email"`
	Phone     string                `db:"phone"`
	Branch    string                `db:"branch"`
	Section   string                `db:"section"`
	Year      string                `db:"year"`
	CreatedAt time.Time             `db:"created_at"`
}

type HackathonRepository interface {
	CreateTeam(ctx context.Context, team *HackathonTeam) error
	CreateParticipant(ctx context.Context, p *HackathonParticipant) error
	GetTeam(ctx context.Context, id int64) (*HackathonTeam, error)
	ListTeams(ctx context.Context) ([]*HackathonTeam, error)
	ListParticipants(ctx context.Context, teamIDs ...int64) ([]*HackathonParticipant, error)
}

type pgxHackathonRepository struct {
	pool *pgxpool.Pool
}

func NewPgxHackathonRepository(pool *pgxpool.Pool) HackathonRepository {
	return &pgxHackathonRepository{pool: pool}
}

// CreateTeam inserts the team and fills in ID and CreatedAt.
func (p *pgxHackathonRepository) CreateTeam(ctx context.Context, team *HackathonTeam) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("hackathon_team", "team_name", "total_participants"),
		im.Values(psql.Arg(team.TeamName), psql.Arg(team.TotalParticipants)),
		im.Returning("id", "created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	return e.QueryRow(ctx, sql, args...).Scan(&team.ID, &team.CreatedAt)
}

// CreateParticipant inserts the participant and fills in ID and CreatedAt.
func (p *pgxHackathonRepository) CreateParticipant(ctx context.Context, hp *HackathonParticipant) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("hackathon_participant", "team_id", "role", "full_name", "email", "phone", "branch", "section", "year"),
		im.Values(
			psql.Arg(hp.TeamID),
			psql.Arg(hp.Role),
			psql.Arg(hp.FullName),
			psql.Arg(hp.Email),
			psql.Arg(hp.Phone),
			psql.Arg(hp.Branch),
			psql.Arg(hp.Section),
			psql.Arg(hp.Year),
		),
		im.Returning("id", "created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	err = e.QueryRow(ctx, sql, args...).Scan(&hp.ID, &hp.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" { // team_id does not exist
		return ErrNotFound
	}
	return err
}

func (p *pgxHackathonRepository) GetTeam(ctx context.Context, id int64) (*HackathonTeam, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(teamColumns...),
		sm.From("hackathon_team"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	team, err := scanTeam(e.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (p *pgxHackathonRepository) ListTeams(ctx context.Context) ([]*HackathonTeam, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(teamColumns...),
		sm.From("hackathon_team"),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*HackathonTeam, error) {
		return scanTeam(row)
	})
}

// ListParticipants returns the participants of the given teams in creation order.
func (p *pgxHackathonRepository) ListParticipants(ctx context.Context, teamIDs ...int64) ([]*HackathonParticipant, error) {
	if len(teamIDs) == 0 {
		return []*HackathonParticipant{}, nil
	}

	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(participantColumns...),
		sm.From("hackathon_participant"),
		sm.Where(psql.Raw("team_id = ANY(?)", teamIDs)),
		sm.OrderBy("team_id"),
		sm.OrderBy("id"),
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

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*HackathonParticipant, error) {
		hp := &HackathonParticipant{}
		if err := row.Scan(
			&hp.ID,
			&hp.TeamID,
			&hp.Role,
			&hp.FullName,
			&hp.Email,
			&hp.Phone,
			&hp.Branch,
			&hp.Section,
			&hp.Year,
			&hp.CreatedAt,
		); err != nil {
			return nil, err
		}
		return hp, nil
	})
}

func scanTeam(row pgx.Row) (*HackathonTeam, error) {
	team := &HackathonTeam{}
	if err := row.Scan(&team.ID, &team.TeamName, &team.TotalParticipants, &team.CreatedAt); err != nil {
		return nil, err
	}
	return team, nil
}
