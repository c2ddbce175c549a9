package adherence

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medsbuddy/medsbuddy/internal/apperr"
	"github.com/medsbuddy/medsbuddy/internal/auth"
)

// LogDoseRequest is the JSON body for POST /api/meds/:id/log. The body is
// optional; a missing body means no notes.
type LogDoseRequest struct {
	Notes string `json:"notes"`
}

// AdherenceSummary is the response for GET /api/meds/:id/adherence.
type AdherenceSummary struct {
	MedicationID uint `json:"medication_id"`
	WindowDays   int  `json:"window_days"`
	DosesLogged  int  `json:"doses_logged"`
	Percentage   int  `json:"percentage"`
}

// LogDoseHandler handles POST /api/meds/:id/log.
func LogDoseHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFromContext(c)
		if !ok || !auth.CanAccessLogs(ident) {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		medID, err := parseID(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid medication id"))
			return
		}

		var req LogDoseRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid request body"))
			return
		}

		entry, err := svc.LogDose(medID, req.Notes)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// LogsHandler handles GET /api/meds/:id/logs?days=N.
func LogsHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFromContext(c)
		if !ok || !auth.CanAccessLogs(ident) {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		medID, err := parseID(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid medication id"))
			return
		}

		logs, err := svc.Logs(medID, windowDays(c, DefaultWindowDays))
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}

// AdherenceHandler handles GET /api/meds/:id/adherence?days=N, the
// server-side form of the per-medication adherence card.
func AdherenceHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFromContext(c)
		if !ok || !auth.CanAccessLogs(ident) {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		medID, err := parseID(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid medication id"))
			return
		}

		window := windowDays(c, DefaultWindowDays)
		logs, err := svc.Logs(medID, window)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, AdherenceSummary{
			MedicationID: medID,
			WindowDays:   window,
			DosesLogged:  len(logs),
			Percentage:   Percentage(len(logs), window),
		})
	}
}

// StatsHandler handles GET /api/meds/:id/stats?days=N, where :id is the
// owning user. Access follows the listing policy: the stats reveal the same
// information as the medication list plus its logs.
func StatsHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFromContext(c)
		if !ok {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		ownerID, err := parseID(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid user id"))
			return
		}

		if !auth.CanViewMedications(ident, ownerID) {
			apperr.Respond(c, apperr.E(apperr.ErrForbidden, "access denied"))
			return
		}

		stats, err := svc.UserStats(ownerID, windowDays(c, StatsWindowDays))
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// windowDays reads the days query parameter, falling back to fallback when
// missing or unparseable.
func windowDays(c *gin.Context, fallback int) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(fallback)))
	if err != nil || days <= 0 {
		return fallback
	}
	return days
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
