package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/yakoovad/orgsite/internal/auth"
	"github.com/yakoovad/orgsite/internal/media"
	"github.com/yakoovad/orgsite/internal/service"
	"go.uber.org/zap"
)

const maxBodySize = "12M"

type Handler struct {
	hackathon  *service.HackathonService
	submission *service.SubmissionService
	catalog    *service.CatalogService
	admin      *service.AdminService

	healthChecker HealthChecker

	mediaRoot   string
	mediaURL    string
	urls        *media.URLResolver
	corsOrigins []string

	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger:      logger,
		mediaURL:    "/media/",
		urls:        media.NewURLResolver("/media/"),
		corsOrigins: []string{"*"},
	}
}

func (h *Handler) WithHealthChecker(c HealthChecker) *Handler {
	h.healthChecker = c
	return h
}

func (h *Handler) WithHackathonService(s *service.HackathonService) *Handler {
	h.hackathon = s
	return h
}

func (h *Handler) WithSubmissionService(s *service.SubmissionService) *Handler {
	h.submission = s
	return h
}

func (h *Handler) WithCatalogService(s *service.CatalogService) *Handler {
	h.catalog = s
	return h
}

func (h *Handler) WithAdminService(s *service.AdminService) *Handler {
	h.admin = s
	return h
}

// WithMedia sets where uploads live on disk and the URL prefix they are served under.
func (h *Handler) WithMedia(root, mediaURL string) *Handler {
	h.mediaRoot = root
	h.mediaURL = mediaURL
	h.urls = media.NewURLResolver(mediaURL)
	return h
}

func (h *Handler) WithCORSOrigins(origins []string) *Handler {
	if len(origins) > 0 {
		h.corsOrigins = origins
	}
	return h
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()
	e.Use(middleware.RequestID())
	e.Use(ZapLoggerMiddleware(h.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: h.corsOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	if h.healthChecker != nil {
		e.GET("/health", h.healthChecker.HealthCheck())
	}

	if h.mediaRoot != "" && !isAbsoluteURL(h.mediaURL) {
		e.Static(strings.TrimSuffix(h.mediaURL, "/"), h.mediaRoot)
	}

	adminOnly := AuthMiddleware(auth.TokenTypeAdmin)

	api := e.Group("/api")

	api.POST("/auth/login", h.Login)

	api.POST("/careers", h.SubmitCareerApplication)
	api.GET("/careers", h.ListCareerApplications, adminOnly)
	api.GET("/careers/:id", h.GetCareerApplication, adminOnly)

	api.POST("/contact", h.SubmitContactMessage)
	api.GET("/contact", h.ListContactMessages, adminOnly)
	api.GET("/contact/:id", h.GetContactMessage, adminOnly)

	api.POST("/cpu-inquiries", h.SubmitCpuInquiry)
	api.GET("/cpu-inquiries", h.ListCpuInquiries, adminOnly)
	api.GET("/cpu-inquiries/:id", h.GetCpuInquiry, adminOnly)

	api.GET("/mous", h.ListMOUs)
	api.GET("/mous/:id", h.GetMOU)
	api.POST("/mous", h.CreateMOU, adminOnly)

	api.GET("/gallery", h.ListGalleryImages)
	api.GET("/gallery/:id", h.GetGalleryImage)
	api.POST("/gallery", h.AddGalleryImage, adminOnly)

	api.GET("/projects", h.ListProjects)
	api.GET("/projects/:id", h.GetProject)
	api.POST("/projects", h.CreateProject, adminOnly)

	api.GET("/community", h.ListCommunityItems)
	api.GET("/community/:id", h.GetCommunityItem)
	api.POST("/community", h.CreateCommunityItem, adminOnly)

	api.POST("/hackathon/register", h.RegisterHackathonTeam)
	api.GET("/hackathon/teams", h.ListHackathonTeams, adminOnly)
	api.GET("/hackathon/teams/:id", h.GetHackathonTeam, adminOnly)
}

type errorResponse struct {
	Error *service.Error `json:"error"`
}

func (h *Handler) decodeRequest(e echo.Context, req any) *service.Error {
	if err := e.Bind(req); err != nil {
		if fields := typeErrorFields(err); fields != nil {
			return service.NewValidationError(fields)
		}
		return service.NewError(service.ErrorCodeInvalidBody, "invalid request body")
	}

	if err := e.Validate(req); err != nil {
		if fields := validationFields(err); fields != nil {
			return service.NewValidationError(fields)
		}
		return service.NewError(service.ErrorCodeInvalidBody, "request validation failed")
	}
	return nil
}

func (h *Handler) transportError(e echo.Context, err error) error {
	var sErr *service.Error
	if !errors.As(err, &sErr) {
		sErr = service.NewError(service.ErrorCodeUnspecified, "internal error")
	}

	response := errorResponse{Error: sErr}

	switch sErr.Code {
	case service.ErrorCodeInvalidBody, service.ErrorCodeValidationFailed:
		return e.JSON(http.StatusBadRequest, response)
	case service.ErrorCodeNotFound:
		return e.JSON(http.StatusNotFound, response)
	case service.ErrorCodeUnauthorized, service.ErrorCodeInvalidCredentials:
		return e.JSON(http.StatusUnauthorized, response)
	default:
		return e.JSON(http.StatusInternalServerError, response)
	}
}

func parseID(e echo.Context) (int64, *service.Error) {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.NewError(service.ErrorCodeNotFound, "not found")
	}
	return id, nil
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}
