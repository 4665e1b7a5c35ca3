package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/yakoovad/orgsite/internal/repository"
)

// MockTransactor runs fn inline and records whether the transaction would have
// been committed or rolled back.
type MockTransactor struct {
	mock.Mock

	Committed  int
	RolledBack int
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.RolledBack++
		return err
	}
	m.Committed++
	return nil
}

type MockHackathonRepository struct {
	mock.Mock
}

func (m *MockHackathonRepository) CreateTeam(ctx context.Context, team *repository.HackathonTeam) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockHackathonRepository) CreateParticipant(ctx context.Context, p *repository.HackathonParticipant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockHackathonRepository) GetTeam(ctx context.Context, id int64) (*repository.HackathonTeam, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.HackathonTeam), args.Error(1)
}

func (m *MockHackathonRepository) ListTeams(ctx context.Context) ([]*repository.HackathonTeam, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.HackathonTeam), args.Error(1)
}

func (m *MockHackathonRepository) ListParticipants(ctx context.Context, teamIDs ...int64) ([]*repository.HackathonParticipant, error) {
	args := m.Called(ctx, teamIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.HackathonParticipant), args.Error(1)
}

type MockCareerRepository struct {
	mock.Mock
}

func (m *MockCareerRepository) Create(ctx context.Context, app *repository.CareerApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockCareerRepository) Get(ctx context.Context, id int64) (*repository.CareerApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CareerApplication), args.Error(1)
}

func (m *MockCareerRepository) List(ctx context.Context) ([]*repository.CareerApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.CareerApplication), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, msg *repository.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactRepository) Get(ctx context.Context, id int64) (*repository.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context) ([]*repository.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.ContactMessage), args.Error(1)
}

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inq *repository.CpuInquiry) error {
	args := m.Called(ctx, inq)
	return args.Error(0)
}

func (m *MockInquiryRepository) Get(ctx context.Context, id int64) (*repository.CpuInquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CpuInquiry), args.Error(1)
}

func (m *MockInquiryRepository) List(ctx context.Context) ([]*repository.CpuInquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.CpuInquiry), args.Error(1)
}

type MockMOURepository struct {
	mock.Mock
}

func (m *MockMOURepository) Create(ctx context.Context, mou *repository.MOU) error {
	args := m.Called(ctx, mou)
	return args.Error(0)
}

func (m *MockMOURepository) Get(ctx context.Context, id int64) (*repository.MOU, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.MOU), args.Error(1)
}

func (m *MockMOURepository) List(ctx context.Context) ([]*repository.MOU, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.MOU), args.Error(1)
}

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, img *repository.GalleryImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *MockGalleryRepository) Get(ctx context.Context, id int64) (*repository.GalleryImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) List(ctx context.Context, category string) ([]*repository.GalleryImage, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.GalleryImage), args.Error(1)
}

type MockShowcaseRepository struct {
	mock.Mock
}

func (m *MockShowcaseRepository) Create(ctx context.Context, item *repository.ShowcaseItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockShowcaseRepository) Get(ctx context.Context, id int64) (*repository.ShowcaseItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShowcaseItem), args.Error(1)
}

func (m *MockShowcaseRepository) List(ctx context.Context) ([]*repository.ShowcaseItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.ShowcaseItem), args.Error(1)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) CreateIfMissing(ctx context.Context, admin *repository.AdminUser) (bool, error) {
	args := m.Called(ctx, admin)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*repository.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AdminUser), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, dir, name, r)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, p string) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
