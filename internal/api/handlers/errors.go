package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Conceptual-Machines/eharmony-api/internal/harmony"
	"github.com/Conceptual-Machines/eharmony-api/internal/logger"
	"github.com/Conceptual-Machines/eharmony-api/internal/models"
	"github.com/gin-gonic/gin"
)

var errProgressionTooLong = errors.New("progression too long")

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, models.ErrorResponse{
		Error:     err.Error(),
		RequestID: c.GetString("request_id"),
	})
}

// respondServiceError maps engine input errors to 400 and everything else to 500.
// Rejected input is already logged by the services.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, harmony.ErrInvalidChordSymbol) || errors.Is(err, harmony.ErrInvalidPitchClass) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	logger.Error("Harmony operation failed", err, logger.WithContext(c))
	respondError(c, http.StatusInternalServerError, err)
}

func checkLength(maxLength int, chords []string) error {
	if maxLength > 0 && len(chords) > maxLength {
		return fmt.Errorf("%w: %d chords, limit is %d", errProgressionTooLong, len(chords), maxLength)
	}
	return nil
}
