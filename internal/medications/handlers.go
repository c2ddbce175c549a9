package medications

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medsbuddy/medsbuddy/internal/apperr"
	"github.com/medsbuddy/medsbuddy/internal/auth"
)

// MedicationRequest is the JSON body for create and update. UserID is only
// read on create, where the client names the owning user. The credential
// subject is not required to match it.
type MedicationRequest struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
	UserID       uint   `json:"userId"`
}

// ListHandler handles GET /api/meds/:id, where :id is the owning user.
func ListHandler(svc *Service) gin.HandlerFunc {
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

		meds, err := svc.List(ownerID)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, meds)
	}
}

// CreateHandler handles POST /api/meds.
func CreateHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFromContext(c)
		if !ok || !auth.CanModifyMedication(ident) {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		var req MedicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid request body"))
			return
		}

		med, err := svc.Create(req.UserID, req.Name, req.Dosage, req.Frequency, req.Instructions)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, med)
	}
}

// UpdateHandler handles PUT /api/meds/:id for a medication.
func UpdateHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFromContext(c)
		if !ok || !auth.CanModifyMedication(ident) {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		medID, err := parseID(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrNotFound, "medication not found"))
			return
		}

		var req MedicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid request body"))
			return
		}

		med, err := svc.Update(medID, req.Name, req.Dosage, req.Frequency, req.Instructions)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, med)
	}
}

// DeleteHandler handles DELETE /api/meds/:id for a medication.
func DeleteHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFromContext(c)
		if !ok || !auth.CanModifyMedication(ident) {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		medID, err := parseID(c.Param("id"))
		if err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrNotFound, "medication not found"))
			return
		}

		if err := svc.Delete(medID); err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
