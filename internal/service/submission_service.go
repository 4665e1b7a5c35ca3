package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/yakoovad/orgsite/internal/media"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/repository"
	"github.com/yakoovad/orgsite/pkg/logger"
	"go.uber.org/zap"
)

const msgNoFile = "No file was submitted."

// Upload is a file received with a form. Content must be rewindable so it can be
// sniffed before it is stored.
type Upload struct {
	Name    string
	Size    int64
	Content io.ReadSeeker
}

// SubmissionService handles the forms visitors send in: career applications,
// contact messages and CPU inquiries.
type SubmissionService struct {
	storage media.Storage

	careers   repository.CareerRepository
	contacts  repository.ContactRepository
	inquiries repository.InquiryRepository
}

func NewSubmissionService(storage media.Storage) *SubmissionService {
	return &SubmissionService{storage: storage}
}

// CheckResume reports a missing or unacceptable resume as a "resume" field error.
func CheckResume(resume *Upload) *Error {
	if resume == nil || resume.Content == nil {
		return NewFieldError("resume", msgNoFile)
	}
	if err := media.ValidateResume(resume.Name, resume.Size); err != nil {
		return NewFieldError("resume", err.Error())
	}
	return nil
}

func (s *SubmissionService) SubmitCareerApplication(ctx context.Context, app *model.CareerApplication, resume *Upload) (*model.CareerApplication, error) {
	l := logger.FromContext(ctx)

	if vErr := CheckResume(resume); vErr != nil {
		if resume != nil {
			l.Warn("rejected resume", zap.String("file_name", resume.Name), zap.Int64("size", resume.Size), zap.Strings("errors", vErr.Fields["resume"]))
		}
		return nil, vErr
	}

	stored, err := s.storage.Save(ctx, media.ResumeDir, resume.Name, resume.Content)
	if errors.Is(err, media.ErrFileNameMissing) {
		return nil, NewFieldError("resume", err.Error())
	}
	if err != nil {
		l.Error("failed to store resume", zap.String("file_name", resume.Name), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to store resume")
	}

	row := &repository.CareerApplication{
		FullName:    app.FullName,
		Email:       app.Email,
		Phone:       app.Phone,
		Position:    app.Position,
		CoverLetter: app.CoverLetter,
		Resume:      stored,
	}
	if err = s.careers.Create(ctx, row); err != nil {
		l.Error("failed to create career application", zap.String("email", app.Email), zap.Error(err))
		if dErr := s.storage.Delete(ctx, stored); dErr != nil {
			l.Warn("failed to remove orphaned resume", zap.String("path", stored), zap.Error(dErr))
		}
		return nil, NewError(ErrorCodeUnspecified, "failed to create career application")
	}

	l.Info("career application received", zap.Int64("id", row.ID), zap.String("position", row.Position))

	return toModelCareerApplication(row), nil
}

func (s *SubmissionService) GetCareerApplication(ctx context.Context, id int64) (*model.CareerApplication, error) {
	row, err := s.careers.Get(ctx, id)
	if err != nil {
		return nil, lookupError(ctx, err, "career application", id)
	}
	return toModelCareerApplication(row), nil
}

func (s *SubmissionService) ListCareerApplications(ctx context.Context) ([]*model.CareerApplication, error) {
	rows, err := s.careers.List(ctx)
	if err != nil {
		return nil, listError(ctx, err, "career applications")
	}

	res := make([]*model.CareerApplication, 0, len(rows))
	for _, row := range rows {
		res = append(res, toModelCareerApplication(row))
	}
	return res, nil
}

func (s *SubmissionService) SubmitContactMessage(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	l := logger.FromContext(ctx)

	row := &repository.ContactMessage{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	}
	if err := s.contacts.Create(ctx, row); err != nil {
		l.Error("failed to create contact message", zap.String("email", msg.Email), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create contact message")
	}

	l.Info("contact message received", zap.Int64("id", row.ID))

	return toModelContactMessage(row), nil
}

func (s *SubmissionService) GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error) {
	row, err := s.contacts.Get(ctx, id)
	if err != nil {
		return nil, lookupError(ctx, err, "contact message", id)
	}
	return toModelContactMessage(row), nil
}

func (s *SubmissionService) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := s.contacts.List(ctx)
	if err != nil {
		return nil, listError(ctx, err, "contact messages")
	}

	res := make([]*model.ContactMessage, 0, len(rows))
	for _, row := range rows {
		res = append(res, toModelContactMessage(row))
	}
	return res, nil
}

func (s *SubmissionService) SubmitCpuInquiry(ctx context.Context, inq *model.CpuInquiry) (*model.CpuInquiry, error) {
	l := logger.FromContext(ctx)

	row := &repository.CpuInquiry{
		Name:         inq.Name,
		Email:        inq.Email,
		Phone:        inq.Phone,
		Organization: inq.Organization,
		Message:      inq.Message,
	}
	if err := s.inquiries.Create(ctx, row); err != nil {
		l.Error("failed to create cpu inquiry", zap.String("email", inq.Email), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create inquiry")
	}

	l.Info("cpu inquiry received", zap.Int64("id", row.ID))

	return toModelCpuInquiry(row), nil
}

func (s *SubmissionService) GetCpuInquiry(ctx context.Context, id int64) (*model.CpuInquiry, error) {
	row, err := s.inquiries.Get(ctx, id)
	if err != nil {
		return nil, lookupError(ctx, err, "cpu inquiry", id)
	}
	return toModelCpuInquiry(row), nil
}

func (s *SubmissionService) ListCpuInquiries(ctx context.Context) ([]*model.CpuInquiry, error) {
	rows, err := s.inquiries.List(ctx)
	if err != nil {
		return nil, listError(ctx, err, "cpu inquiries")
	}

	res := make([]*model.CpuInquiry, 0, len(rows))
	for _, row := range rows {
		res = append(res, toModelCpuInquiry(row))
	}
	return res, nil
}

func (s *SubmissionService) WithCareerRepo(r repository.CareerRepository) *SubmissionService {
	s.careers = r
	return s
}

func (s *SubmissionService) WithContactRepo(r repository.ContactRepository) *SubmissionService {
	s.contacts = r
	return s
}

func (s *SubmissionService) WithInquiryRepo(r repository.InquiryRepository) *SubmissionService {
	s.inquiries = r
	return s
}

// lookupError maps a repository error from a single-record read.
func lookupError(ctx context.Context, err error, what string, id int64) *Error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, what+" not found")
	}
	logger.FromContext(ctx).Error("failed to get "+what, zap.Int64("id", id), zap.Error(err))
	return NewError(ErrorCodeUnspecified, "failed to get "+what)
}

func listError(ctx context.Context, err error, what string) *Error {
	logger.FromContext(ctx).Error("failed to list "+what, zap.Error(err))
	return NewError(ErrorCodeUnspecified, "failed to list "+what)
}

func toModelCareerApplication(row *repository.CareerApplication) *model.CareerApplication {
	return &model.CareerApplication{
		ID:          row.ID,
		FullName:    row.FullName,
		Email:       row.Email,
		Phone:       row.Phone,
		Position:    row.Position,
		CoverLetter: row.CoverLetter,
		Resume:      row.Resume,
		CreatedAt:   row.CreatedAt,
	}
}

func toModelContactMessage(row *repository.ContactMessage) *model.ContactMessage {
	return &model.ContactMessage{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Subject:   row.Subject,
		Message:   row.Message,
		CreatedAt: row.CreatedAt,
	}
}

func toModelCpuInquiry(row *repository.CpuInquiry) *model.CpuInquiry {
	return &model.CpuInquiry{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Phone:        row.Phone,
		Organization: row.Organization,
		Message:      row.Message,
		CreatedAt:    row.CreatedAt,
	}
}
