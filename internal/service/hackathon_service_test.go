package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/repository"
)

var testCreatedAt = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func participant(name string) *model.ParticipantInput {
	return &model.ParticipantInput{
		FullName: name,
		Email:    name + "@example.com",
		Phone:    "9876543210",
		Branch:   "CSE",
		Section:  "A",
		Year:     "3",
	}
}

func registration(team string, total int, members ...*model.ParticipantInput) *model.HackathonRegistration {
	return &model.HackathonRegistration{
		TeamName:          team,
		TotalParticipants: total,
		Leader:            participant("leader"),
		Members:           members,
	}
}

// expectTeamCreated makes CreateTeam assign id 1 and CreateParticipant assign 10, 11, ...
func expectTeamCreated(hr *MockHackathonRepository) {
	hr.On("CreateTeam", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		team := args.Get(1).(*repository.HackathonTeam)
		team.ID = 1
		team.CreatedAt = testCreatedAt
	}).Return(nil).Once()
}

func expectParticipantsCreated(hr *MockHackathonRepository, n int) {
	next := int64(10)
	hr.On("CreateParticipant", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		p := args.Get(1).(*repository.HackathonParticipant)
		p.ID = next
		p.CreatedAt = testCreatedAt
		next++
	}).Return(nil).Times(n)
}

func TestCheckTeamSize(t *testing.T) {
	tests := []struct {
		name          string
		reg           *model.HackathonRegistration
		expectedField string
		expectedMsg   string
	}{
		{
			name: "leader and one member",
			reg:  registration("Alpha", 2, participant("m1")),
		},
		{
			name: "full team",
			reg:  registration("Alpha", 6, participant("m1"), participant("m2"), participant("m3"), participant("m4"), participant("m5")),
		},
		{
			name:          "declared three without members",
			reg:           registration("Alpha", 3),
			expectedField: "total_participants",
			expectedMsg:   "Expected 1 (leader + members).",
		},
		{
			name:          "declared two with two members",
			reg:           registration("Alpha", 2, participant("m1"), participant("m2")),
			expectedField: "total_participants",
			expectedMsg:   "Expected 3 (leader + members).",
		},
		{
			name:          "leader only",
			reg:           registration("Solo", 1),
			expectedField: NonFieldErrors,
			expectedMsg:   "Team size must be 2–6 including leader.",
		},
		{
			name: "seven people",
			reg: registration("Big", 7,
				participant("m1"), participant("m2"), participant("m3"),
				participant("m4"), participant("m5"), participant("m6")),
			expectedField: NonFieldErrors,
			expectedMsg:   "Team size must be 2–6 including leader.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTeamSize(tt.reg)
			if tt.expectedField == "" {
				assert.Nil(t, err)
				return
			}

			require.NotNil(t, err)
			assert.Equal(t, ErrorCodeValidationFailed, err.Code)
			assert.Equal(t, []string{tt.expectedMsg}, err.Fields[tt.expectedField])
		})
	}
}

func TestHackathonService_Register(t *testing.T) {
	tests := []struct {
		name           string
		reg            *model.HackathonRegistration
		setupMocks     func(*MockHackathonRepository)
		expectedError  bool
		errorCode      ErrorCode
		expectedRoles  []model.ParticipantRole
		expectedNames  []string
		expectRollback bool
	}{
		{
			name: "success: leader and one member",
			reg:  registration("Alpha", 2, participant("member1")),
			setupMocks: func(hr *MockHackathonRepository) {
				expectTeamCreated(hr)
				expectParticipantsCreated(hr, 2)
			},
			expectedRoles: []model.ParticipantRole{model.ParticipantRoleLeader, model.ParticipantRoleMember},
			expectedNames: []string{"leader", "member1"},
		},
		{
			name: "success: members keep request order",
			reg:  registration("Beta", 4, participant("m1"), participant("m2"), participant("m3")),
			setupMocks: func(hr *MockHackathonRepository) {
				expectTeamCreated(hr)
				expectParticipantsCreated(hr, 4)
			},
			expectedRoles: []model.ParticipantRole{
				model.ParticipantRoleLeader,
				model.ParticipantRoleMember,
				model.ParticipantRoleMember,
				model.ParticipantRoleMember,
			},
			expectedNames: []string{"leader", "m1", "m2", "m3"},
		},
		{
			name:          "count mismatch persists nothing",
			reg:           registration("Alpha", 3),
			setupMocks:    func(hr *MockHackathonRepository) {},
			expectedError: true,
			errorCode:     ErrorCodeValidationFailed,
		},
		{
			name:          "team too small persists nothing",
			reg:           registration("Alpha", 1),
			setupMocks:    func(hr *MockHackathonRepository) {},
			expectedError: true,
			errorCode:     ErrorCodeValidationFailed,
		},
		{
			name: "team insert failure",
			reg:  registration("Alpha", 2, participant("m1")),
			setupMocks: func(hr *MockHackathonRepository) {
				hr.On("CreateTeam", mock.Anything, mock.Anything).Return(errors.New("db error"))
			},
			expectedError:  true,
			errorCode:      ErrorCodeUnspecified,
			expectRollback: true,
		},
		{
			name: "member insert failure rolls back",
			reg:  registration("Alpha", 3, participant("m1"), participant("m2")),
			setupMocks: func(hr *MockHackathonRepository) {
				expectTeamCreated(hr)
				hr.On("CreateParticipant", mock.Anything, mock.MatchedBy(func(p *repository.HackathonParticipant) bool {
					return p.FullName != "m2"
				})).Return(nil).Twice()
				hr.On("CreateParticipant", mock.Anything, mock.MatchedBy(func(p *repository.HackathonParticipant) bool {
					return p.FullName == "m2"
				})).Return(errors.New("db error")).Once()
			},
			expectedError:  true,
			errorCode:      ErrorCodeUnspecified,
			expectRollback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTx := new(MockTransactor)
			mockRepo := new(MockHackathonRepository)

			tt.setupMocks(mockRepo)

			service := NewHackathonService(mockTx).WithHackathonRepo(mockRepo)

			got, err := service.Register(context.Background(), tt.reg)

			if tt.expectedError {
				require.Error(t, err)
				serviceErr := &Error{}
				require.True(t, errors.As(err, &serviceErr))
				assert.Equal(t, tt.errorCode, serviceErr.Code)
				assert.Nil(t, got)
				assert.Zero(t, mockTx.Committed)
				if tt.expectRollback {
					assert.Equal(t, 1, mockTx.RolledBack)
				} else {
					mockRepo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
					mockRepo.AssertNotCalled(t, "CreateParticipant", mock.Anything, mock.Anything)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, 1, mockTx.Committed)

				assert.Equal(t, int64(1), got.ID)
				assert.Equal(t, tt.reg.TeamName, got.TeamName)
				assert.Equal(t, tt.reg.TotalParticipants, got.TotalParticipants)
				assert.Equal(t, testCreatedAt, got.CreatedAt)
				require.Len(t, got.Participants, len(tt.expectedRoles))

				for i, p := range got.Participants {
					assert.Equal(t, tt.expectedRoles[i], p.Role)
					assert.Equal(t, tt.expectedNames[i], p.FullName)
					assert.Equal(t, int64(1), p.TeamID)
					assert.Equal(t, int64(10+i), p.ID)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHackathonService_RegisterRequiresLeader(t *testing.T) {
	mockRepo := new(MockHackathonRepository)
	service := NewHackathonService(new(MockTransactor)).WithHackathonRepo(mockRepo)

	_, err := service.Register(context.Background(), &model.HackathonRegistration{TeamName: "Alpha", TotalParticipants: 2})

	serviceErr := &Error{}
	require.True(t, errors.As(err, &serviceErr))
	assert.Contains(t, serviceErr.Fields, "leader")
	mockRepo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}

func TestHackathonService_GetTeam(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockHackathonRepository)
		expectedError bool
		errorCode     ErrorCode
		expectedTeam  *model.HackathonTeam
	}{
		{
			name: "success",
			setupMocks: func(hr *MockHackathonRepository) {
				hr.On("GetTeam", mock.Anything, int64(1)).Return(&repository.HackathonTeam{
					ID: 1, TeamName: "Alpha", TotalParticipants: 2, CreatedAt: testCreatedAt,
				}, nil)
				hr.On("ListParticipants", mock.Anything, []int64{1}).Return([]*repository.HackathonParticipant{
					{ID: 10, TeamID: 1, Role: model.ParticipantRoleLeader, FullName: "Lead"},
					{ID: 11, TeamID: 1, Role: model.ParticipantRoleMember, FullName: "Member"},
				}, nil)
			},
			expectedTeam: &model.HackathonTeam{
				ID: 1, TeamName: "Alpha", TotalParticipants: 2, CreatedAt: testCreatedAt,
				Participants: []*model.HackathonParticipant{
					{ID: 10, TeamID: 1, Role: model.ParticipantRoleLeader, FullName: "Lead"},
					{ID: 11, TeamID: 1, Role: model.ParticipantRoleMember, FullName: "Member"},
				},
			},
		},
		{
			name: "team not found",
			setupMocks: func(hr *MockHackathonRepository) {
				hr.On("GetTeam", mock.Anything, int64(1)).Return(nil, repository.ErrNotFound)
			},
			expectedError: true,
			errorCode:     ErrorCodeNotFound,
		},
		{
			name: "participants failure",
			setupMocks: func(hr *MockHackathonRepository) {
				hr.On("GetTeam", mock.Anything, int64(1)).Return(&repository.HackathonTeam{ID: 1}, nil)
				hr.On("ListParticipants", mock.Anything, []int64{1}).Return(nil, errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockHackathonRepository)
			tt.setupMocks(mockRepo)

			service := NewHackathonService(new(MockTransactor)).WithHackathonRepo(mockRepo)

			got, err := service.GetTeam(context.Background(), 1)

			if tt.expectedError {
				serviceErr := &Error{}
				require.True(t, errors.As(err, &serviceErr))
				assert.Equal(t, tt.errorCode, serviceErr.Code)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedTeam, got)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHackathonService_ListTeams(t *testing.T) {
	mockRepo := new(MockHackathonRepository)
	mockRepo.On("ListTeams", mock.Anything).Return([]*repository.HackathonTeam{
		{ID: 2, TeamName: "Beta", TotalParticipants: 2},
		{ID: 1, TeamName: "Alpha", TotalParticipants: 2},
	}, nil)
	mockRepo.On("ListParticipants", mock.Anything, []int64{2, 1}).Return([]*repository.HackathonParticipant{
		{ID: 10, TeamID: 1, Role: model.ParticipantRoleLeader},
		{ID: 11, TeamID: 1, Role: model.ParticipantRoleMember},
		{ID: 12, TeamID: 2, Role: model.ParticipantRoleLeader},
		{ID: 13, TeamID: 2, Role: model.ParticipantRoleMember},
	}, nil)

	service := NewHackathonService(new(MockTransactor)).WithHackathonRepo(mockRepo)

	teams, err := service.ListTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "Beta", teams[0].TeamName)
	require.Len(t, teams[0].Participants, 2)
	assert.Equal(t, int64(12), teams[0].Participants[0].ID)

	assert.Equal(t, "Alpha", teams[1].TeamName)
	require.Len(t, teams[1].Participants, 2)
	assert.Equal(t, int64(10), teams[1].Participants[0].ID)

	mockRepo.AssertExpectations(t)
}

func TestHackathonService_ListTeamsEmpty(t *testing.T) {
	mockRepo := new(MockHackathonRepository)
	mockRepo.On("ListTeams", mock.Anything).Return([]*repository.HackathonTeam{}, nil)
	mockRepo.On("ListParticipants", mock.Anything, []int64{}).Return([]*repository.HackathonParticipant{}, nil)

	service := NewHackathonService(new(MockTransactor)).WithHackathonRepo(mockRepo)

	teams, err := service.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Empty(t, teams)
	assert.NotNil(t, teams)
}
