package api

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgsite/internal/auth"
	"github.com/yakoovad/orgsite/internal/service"
	"github.com/yakoovad/orgsite/pkg/logger"
	"go.uber.org/zap"
)

const contextKeyLogger = "logger"

func ZapLoggerMiddleware(l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()
			res := c.Response()

			requestID := res.Header().Get(echo.HeaderXRequestID)

			reqLogger := l.With(
				zap.String("request_id", requestID),
			)

			c.Set(contextKeyLogger, reqLogger)

			ctx := logger.WithLogger(req.Context(), reqLogger)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			latency := time.Since(start)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.String("remote_ip", c.RealIP()),
				zap.Int("status", res.Status),
				zap.Duration("latency", latency),
				zap.Int64("bytes_in", req.ContentLength),
				zap.Int64("bytes_out", res.Size),
			}

			if err != nil {
				fields = append(fields, zap.Error(err))
				reqLogger.Error("request failed", fields...)
			} else {
				reqLogger.Info("request completed", fields...)
			}

			return err
		}
	}
}

func GetLoggerFromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get(contextKeyLogger).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// AuthMiddleware admits requests carrying a valid bearer token of one of the allowed types.
func AuthMiddleware(allowed ...auth.TokenType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := GetLoggerFromContext(c)

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return unauthorized(c, "missing bearer token")
			}

			claims, ok := auth.IsValidToken(strings.TrimSpace(token))
			if !ok || !slices.Contains(allowed, claims.Type) {
				l.Warn("rejected token", zap.String("path", c.Path()))
				return unauthorized(c, "invalid token")
			}

			reqLogger := l.With(zap.String("admin", claims.Subject))
			c.Set(contextKeyLogger, reqLogger)
			c.SetRequest(c.Request().WithContext(logger.WithLogger(c.Request().Context(), reqLogger)))

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Error: service.NewError(service.ErrorCodeUnauthorized, message)})
}
