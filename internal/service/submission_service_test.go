package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/orgsite/internal/media"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/repository"
)

func careerApplication() *model.CareerApplication {
	return &model.CareerApplication{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "9876543210",
		Position: "Backend Intern",
	}
}

func upload(name string, size int64) *Upload {
	return &Upload{Name: name, Size: size, Content: strings.NewReader("%PDF-1.4")}
}

func TestSubmissionService_SubmitCareerApplication(t *testing.T) {
	tests := []struct {
		name          string
		resume        *Upload
		setupMocks    func(*MockStorage, *MockCareerRepository)
		expectedError bool
		errorCode     ErrorCode
		errorField    string
		errorMessage  string
	}{
		{
			name:   "success",
			resume: upload("CV.PDF", 1024),
			setupMocks: func(s *MockStorage, cr *MockCareerRepository) {
				s.On("Save", mock.Anything, media.ResumeDir, "CV.PDF", mock.Anything).Return("resumes/abc-CV.PDF", nil)
				cr.On("Create", mock.Anything, mock.MatchedBy(func(a *repository.CareerApplication) bool {
					return a.Resume == "resumes/abc-CV.PDF" && a.Email == "jane@example.com"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*repository.CareerApplication).ID = 7
				}).Return(nil)
			},
		},
		{
			name:   "success at size limit",
			resume: upload("cv.pdf", media.MaxResumeSize),
			setupMocks: func(s *MockStorage, cr *MockCareerRepository) {
				s.On("Save", mock.Anything, media.ResumeDir, "cv.pdf", mock.Anything).Return("resumes/abc-cv.pdf", nil)
				cr.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:          "missing resume",
			resume:        nil,
			setupMocks:    func(s *MockStorage, cr *MockCareerRepository) {},
			expectedError: true,
			errorCode:     ErrorCodeValidationFailed,
			errorField:    "resume",
			errorMessage:  "No file was submitted.",
		},
		{
			name:          "not a pdf",
			resume:        upload("cv.docx", 1024),
			setupMocks:    func(s *MockStorage, cr *MockCareerRepository) {},
			expectedError: true,
			errorCode:     ErrorCodeValidationFailed,
			errorField:    "resume",
			errorMessage:  "Resume must be a PDF file",
		},
		{
			name:          "too large",
			resume:        upload("cv.pdf", media.MaxResumeSize+1),
			setupMocks:    func(s *MockStorage, cr *MockCareerRepository) {},
			expectedError: true,
			errorCode:     ErrorCodeValidationFailed,
			errorField:    "resume",
			errorMessage:  "Resume size must be below 5MB",
		},
		{
			name:   "storage failure",
			resume: upload("cv.pdf", 1024),
			setupMocks: func(s *MockStorage, cr *MockCareerRepository) {
				s.On("Save", mock.Anything, media.ResumeDir, "cv.pdf", mock.Anything).Return("", errors.New("disk full"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
		{
			name:   "insert failure removes stored file",
			resume: upload("cv.pdf", 1024),
			setupMocks: func(s *MockStorage, cr *MockCareerRepository) {
				s.On("Save", mock.Anything, media.ResumeDir, "cv.pdf", mock.Anything).Return("resumes/abc-cv.pdf", nil)
				s.On("Delete", mock.Anything, "resumes/abc-cv.pdf").Return(nil)
				cr.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := new(MockStorage)
			mockRepo := new(MockCareerRepository)

			tt.setupMocks(mockStorage, mockRepo)

			service := NewSubmissionService(mockStorage).WithCareerRepo(mockRepo)

			got, err := service.SubmitCareerApplication(context.Background(), careerApplication(), tt.resume)

			if tt.expectedError {
				serviceErr := &Error{}
				require.True(t, errors.As(err, &serviceErr))
				assert.Equal(t, tt.errorCode, serviceErr.Code)
				if tt.errorField != "" {
					assert.Equal(t, []string{tt.errorMessage}, serviceErr.Fields[tt.errorField])
				}
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, "jane@example.com", got.Email)
				assert.True(t, strings.HasPrefix(got.Resume, "resumes/"))
			}

			mockStorage.AssertExpectations(t)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSubmissionService_SubmitContactMessage(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", mock.Anything, &repository.ContactMessage{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello",
	}).Run(func(args mock.Arguments) {
		args.Get(1).(*repository.ContactMessage).ID = 3
	}).Return(nil)

	service := NewSubmissionService(new(MockStorage)).WithContactRepo(mockRepo)

	got, err := service.SubmitContactMessage(context.Background(), &model.ContactMessage{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "Hello", got.Message)

	mockRepo.AssertExpectations(t)
}

func TestSubmissionService_SubmitCpuInquiryFailure(t *testing.T) {
	mockRepo := new(MockInquiryRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))

	service := NewSubmissionService(new(MockStorage)).WithInquiryRepo(mockRepo)

	got, err := service.SubmitCpuInquiry(context.Background(), &model.CpuInquiry{Name: "Jane"})

	serviceErr := &Error{}
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, ErrorCodeUnspecified, serviceErr.Code)
	assert.Nil(t, got)
}

func TestSubmissionService_Lookups(t *testing.T) {
	tests := []struct {
		name      string
		repoErr   error
		errorCode ErrorCode
	}{
		{name: "not found", repoErr: repository.ErrNotFound, errorCode: ErrorCodeNotFound},
		{name: "db failure", repoErr: errors.New("db error"), errorCode: ErrorCodeUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			careers := new(MockCareerRepository)
			careers.On("Get", mock.Anything, int64(5)).Return(nil, tt.repoErr)
			contacts := new(MockContactRepository)
			contacts.On("Get", mock.Anything, int64(5)).Return(nil, tt.repoErr)
			inquiries := new(MockInquiryRepository)
			inquiries.On("Get", mock.Anything, int64(5)).Return(nil, tt.repoErr)

			service := NewSubmissionService(new(MockStorage)).
				WithCareerRepo(careers).
				WithContactRepo(contacts).
				WithInquiryRepo(inquiries)

			_, err := service.GetCareerApplication(context.Background(), 5)
			assertErrorCode(t, err, tt.errorCode)
			_, err = service.GetContactMessage(context.Background(), 5)
			assertErrorCode(t, err, tt.errorCode)
			_, err = service.GetCpuInquiry(context.Background(), 5)
			assertErrorCode(t, err, tt.errorCode)
		})
	}
}

func TestSubmissionService_Lists(t *testing.T) {
	careers := new(MockCareerRepository)
	careers.On("List", mock.Anything).Return([]*repository.CareerApplication{{ID: 2}, {ID: 1}}, nil)
	contacts := new(MockContactRepository)
	contacts.On("List", mock.Anything).Return([]*repository.ContactMessage{}, nil)
	inquiries := new(MockInquiryRepository)
	inquiries.On("List", mock.Anything).Return(nil, errors.New("db error"))

	service := NewSubmissionService(new(MockStorage)).
		WithCareerRepo(careers).
		WithContactRepo(contacts).
		WithInquiryRepo(inquiries)

	apps, err := service.ListCareerApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, int64(2), apps[0].ID)

	msgs, err := service.ListContactMessages(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)

	_, err = service.ListCpuInquiries(context.Background())
	assertErrorCode(t, err, ErrorCodeUnspecified)
}

func assertErrorCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()

	serviceErr := &Error{}
	if assert.True(t, errors.As(err, &serviceErr)) {
		assert.Equal(t, code, serviceErr.Code)
	}
}
