package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/dto"
	"github.com/securyflex/securyflex-backend/internal/middleware"
)

// respondError maps a service error onto the HTTP envelope. Compliance
// blocks get a remediation URL alongside the message.
func respondError(c *gin.Context, err error) {
	var complianceErr *apperrors.ComplianceError
	if errors.As(err, &complianceErr) {
		c.JSON(http.StatusForbidden, gin.H{
			"success":   false,
			"error":     complianceErr.Message,
			"actionUrl": complianceErr.ActionURL,
		})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, dto.Fail(appErr.Message))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Niet gevonden"))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail("Ongeldige invoer"))
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.Fail("Niet ingelogd"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail("Geen toegang"))
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Fail("Conflict met de huidige staat"))
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("unhandled error", "error", err.Error(), "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, dto.Fail("Er is iets misgegaan, probeer het later opnieuw"))
	}
}

// bindError reports a malformed request body or query string.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Fail("Ongeldig verzoek: "+err.Error()))
}

// actorID returns the authenticated user id or aborts with 401.
func actorID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Niet ingelogd"))
	}
	return userID, ok
}
