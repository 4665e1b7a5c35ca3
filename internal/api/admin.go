package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgsite/internal/model"
)

func (h *Handler) Login(e echo.Context) error {
	var req model.Credentials
	if err := h.decodeRequest(e, &req); err != nil {
		return h.transportError(e, err)
	}

	token, err := h.admin.Login(e.Request().Context(), &req)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, token)
}
