package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgsite/internal/model"
	"go.uber.org/zap"
)

func (h *Handler) RegisterHackathonTeam(e echo.Context) error {
	l := GetLoggerFromContext(e)

	var req model.HackathonRegistration
	if err := h.decodeRequest(e, &req); err != nil {
		l.Warn("invalid hackathon registration", zap.Any("fields", err.Fields))
		return h.transportError(e, err)
	}

	team, err := h.hackathon.Register(e.Request().Context(), &req)
	if err != nil {
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, team)
}

func (h *Handler) ListHackathonTeams(e echo.Context) error {
	teams, err := h.hackathon.ListTeams(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, teams)
}

func (h *Handler) GetHackathonTeam(e echo.Context) error {
	id, pErr := parseID(e)
	if pErr != nil {
		return h.transportError(e, pErr)
	}

	team, err := h.hackathon.GetTeam(e.Request().Context(), id)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, team)
}
