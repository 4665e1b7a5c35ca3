package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/yakoovad/orgsite/internal/db"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/repository"
	"github.com/yakoovad/orgsite/pkg/logger"
	"go.uber.org/zap"
)

type HackathonService struct {
	tx db.Transactor

	hackathons repository.HackathonRepository
}

func NewHackathonService(tx db.Transactor) *HackathonService {
	return &HackathonService{
		tx: tx,
	}
}

// CheckTeamSize enforces that the declared size matches the leader plus members and
// stays within MinTeamSize..MaxTeamSize.
func CheckTeamSize(reg *model.HackathonRegistration) *Error {
	expected := 1 + len(reg.Members)

	if reg.TotalParticipants != expected {
		return NewFieldError("total_participants", fmt.Sprintf("Expected %d (leader + members).", expected))
	}

	if expected < model.MinTeamSize || expected > model.MaxTeamSize {
		return NewFieldError(NonFieldErrors, fmt.Sprintf("Team size must be %d–%d including leader.", model.MinTeamSize, model.MaxTeamSize))
	}

	return nil
}

// Register creates the team, its leader and its members in one transaction.
func (h *HackathonService) Register(ctx context.Context, reg *model.HackathonRegistration) (*model.HackathonTeam, error) {
	l := logger.FromContext(ctx)

	if reg.Leader == nil {
		return nil, NewFieldError("leader", "This field is required.")
	}

	if vErr := CheckTeamSize(reg); vErr != nil {
		l.Warn("rejected hackathon registration",
			zap.String("team_name", reg.TeamName),
			zap.Int("total_participants", reg.TotalParticipants),
			zap.Int("members", len(reg.Members)))
		return nil, vErr
	}

	l.Info("registering hackathon team", zap.String("team_name", reg.TeamName), zap.Int("total_participants", reg.TotalParticipants))

	var res *model.HackathonTeam

	err := h.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		team := &repository.HackathonTeam{
			TeamName:          reg.TeamName,
			TotalParticipants: reg.TotalParticipants,
		}
		if err := h.hackathons.CreateTeam(txCtx, team); err != nil {
			l.Error("failed to create hackathon team", zap.String("team_name", reg.TeamName), zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to register team")
		}

		participants := make([]*model.HackathonParticipant, 0, 1+len(reg.Members))

		leader, err := h.addParticipant(txCtx, team.ID, model.ParticipantRoleLeader, reg.Leader)
		if err != nil {
			l.Error("failed to create team leader", zap.Int64("team_id", team.ID), zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to register team")
		}
		participants = append(participants, leader)

		for i, in := range reg.Members {
			member, err := h.addParticipant(txCtx, team.ID, model.ParticipantRoleMember, in)
			if err != nil {
				l.Error("failed to create team member", zap.Int64("team_id", team.ID), zap.Int("index", i), zap.Error(err))
				return NewError(ErrorCodeUnspecified, "failed to register team")
			}
			participants = append(participants, member)
		}

		res = toModelTeam(team, participants)

		l.Debug("hackathon team registered", zap.Int64("team_id", team.ID))

		return nil
	})
	if err != nil {
		var sErr *Error
		if errors.As(err, &sErr) {
			return nil, sErr
		}
		l.Error("hackathon registration transaction failed", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to register team")
	}

	return res, nil
}

func (h *HackathonService) GetTeam(ctx context.Context, id int64) (*model.HackathonTeam, error) {
	l := logger.FromContext(ctx)

	team, err := h.hackathons.GetTeam(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "team not found")
	}
	if err != nil {
		l.Error("failed to get hackathon team", zap.Int64("team_id", id), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get team")
	}

	rows, err := h.hackathons.ListParticipants(ctx, id)
	if err != nil {
		l.Error("failed to get team participants", zap.Int64("team_id", id), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get team participants")
	}

	participants := make([]*model.HackathonParticipant, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, toModelParticipant(row))
	}

	return toModelTeam(team, participants), nil
}

func (h *HackathonService) ListTeams(ctx context.Context) ([]*model.HackathonTeam, error) {
	l := logger.FromContext(ctx)

	teams, err := h.hackathons.ListTeams(ctx)
	if err != nil {
		l.Error("failed to list hackathon teams", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list teams")
	}

	ids := make([]int64, 0, len(teams))
	for _, team := range teams {
		ids = append(ids, team.ID)
	}

	rows, err := h.hackathons.ListParticipants(ctx, ids...)
	if err != nil {
		l.Error("failed to list team participants", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list team participants")
	}

	byTeam := make(map[int64][]*model.HackathonParticipant, len(teams))
	for _, row := range rows {
		byTeam[row.TeamID] = append(byTeam[row.TeamID], toModelParticipant(row))
	}

	res := make([]*model.HackathonTeam, 0, len(teams))
	for _, team := range teams {
		res = append(res, toModelTeam(team, byTeam[team.ID]))
	}
	return res, nil
}

func (h *HackathonService) addParticipant(ctx context.Context, teamID int64, role model.ParticipantRole, in *model.ParticipantInput) (*model.HackathonParticipant, error) {
	p := &repository.HackathonParticipant{
		TeamID:   teamID,
		Role:     role,
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Branch:   in.Branch,
		Section:  in.Section,
		Year:     in.Year,
	}
	if err := h.hackathons.CreateParticipant(ctx, p); err != nil {
		return nil, err
	}
	return toModelParticipant(p), nil
}

func (h *HackathonService) WithHackathonRepo(r repository.HackathonRepository) *HackathonService {
	h.hackathons = r
	return h
}

func toModelTeam(team *repository.HackathonTeam, participants []*model.HackathonParticipant) *model.HackathonTeam {
	if participants == nil {
		participants = []*model.HackathonParticipant{}
	}
	return &model.HackathonTeam{
		ID:                team.ID,
		TeamName:          team.TeamName,
		TotalParticipants: team.TotalParticipants,
		CreatedAt:         team.CreatedAt,
		Participants:      participants,
	}
}

func toModelParticipant(p *repository.HackathonParticipant) *model.HackathonParticipant {
	return &model.HackathonParticipant{
		ID:        p.ID,
		TeamID:    p.TeamID,
		Role:      p.Role,
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		Branch:    p.Branch,
		Section:   p.Section,
		Year:      p.Year,
		CreatedAt: p.CreatedAt,
	}
}
