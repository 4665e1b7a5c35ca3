package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/service"
)

func (h *Handler) SubmitCareerApplication(e echo.Context) error {
	var req model.CareerApplication
	vErr := h.decodeRequest(e, &req)
	if vErr != nil && vErr.Code != service.ErrorCodeValidationFailed {
		return h.transportError(e, vErr)
	}

	resume, closeFn, err := formUpload(e, "resume")
	if err != nil {
		return h.transportError(e, err)
	}
	defer closeFn()

	// Report form fields and the file together.
	if vErr != nil {
		return h.transportError(e, vErr.Merge(service.CheckResume(resume)))
	}

	app, err := h.submission.SubmitCareerApplication(e.Request().Context(), &req, resume)
	if err != nil {
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, h.careerResponse(e, app))
}

func (h *Handler) ListCareerApplications(e echo.Context) error {
	apps, err := h.submission.ListCareerApplications(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}

	res := make([]*model.CareerApplication, 0, len(apps))
	for _, app := range apps {
		res = append(res, h.careerResponse(e, app))
	}
	return e.JSON(http.StatusOK, res)
}

func (h *Handler) GetCareerApplication(e echo.Context) error {
	id, pErr := parseID(e)
	if pErr != nil {
		return h.transportError(e, pErr)
	}

	app, err := h.submission.GetCareerApplication(e.Request().Context(), id)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, h.careerResponse(e, app))
}

func (h *Handler) careerResponse(e echo.Context, app *model.CareerApplication) *model.CareerApplication {
	out := *app
	out.Resume = h.urls.Resolve(e.Request(), app.Resume)
	return &out
}

func (h *Handler) SubmitContactMessage(e echo.Context) error {
	var req model.ContactMessage
	if err := h.decodeRequest(e, &req); err != nil {
		return h.transportError(e, err)
	}

	msg, err := h.submission.SubmitContactMessage(e.Request().Context(), &req)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusCreated, msg)
}

func (h *Handler) ListContactMessages(e echo.Context) error {
	msgs, err := h.submission.ListContactMessages(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, msgs)
}

func (h *Handler) GetContactMessage(e echo.Context) error {
	id, pErr := parseID(e)
	if pErr != nil {
		return h.transportError(e, pErr)
	}

	msg, err := h.submission.GetContactMessage(e.Request().Context(), id)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, msg)
}

func (h *Handler) SubmitCpuInquiry(e echo.Context) error {
	var req model.CpuInquiry
	if err := h.decodeRequest(e, &req); err != nil {
		return h.transportError(e, err)
	}

	inq, err := h.submission.SubmitCpuInquiry(e.Request().Context(), &req)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusCreated, inq)
}

func (h *Handler) ListCpuInquiries(e echo.Context) error {
	inqs, err := h.submission.ListCpuInquiries(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, inqs)
}

func (h *Handler) GetCpuInquiry(e echo.Context) error {
	id, pErr := parseID(e)
	if pErr != nil {
		return h.transportError(e, pErr)
	}

	inq, err := h.submission.GetCpuInquiry(e.Request().Context(), id)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, inq)
}
