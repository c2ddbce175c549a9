package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/medsbuddy/medsbuddy/internal/apperr"
	"github.com/medsbuddy/medsbuddy/internal/models"
)

// SignupRequest is the JSON body for POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by both signup and login.
type TokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// HandleSignup creates a user account and issues a credential for it.
func HandleSignup(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid request body"))
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		req.Name = strings.TrimSpace(req.Name)
		if req.Email == "" || req.Password == "" || req.Name == "" || req.Role == "" {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "all fields are required"))
			return
		}
		if !models.ValidRole(req.Role) {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid role"))
			return
		}

		// Duplicate check before hashing; the unique index is the backstop for
		// concurrent signups.
		var existing models.User
		err := db.Select("id").Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			apperr.Respond(c, apperr.E(apperr.ErrConflict, "user already exists"))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.ErrStore)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			apperr.Respond(c, apperr.ErrStore)
			return
		}

		user := models.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Name:         req.Name,
			Role:         req.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				apperr.Respond(c, apperr.E(apperr.ErrConflict, "user already exists"))
				return
			}
			apperr.Respond(c, apperr.ErrStore)
			return
		}

		token, err := GenerateToken(&user, secret)
		if err != nil {
			apperr.Respond(c, apperr.ErrStore)
			return
		}

		slog.Info("user signed up", "user_id", user.ID, "role", user.Role)
		c.JSON(http.StatusCreated, TokenResponse{Token: token, User: &user})
	}
}

// HandleLogin verifies email/password and issues a credential. Unknown email
// and wrong password are deliberately indistinguishable to the client.
func HandleLogin(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "invalid request body"))
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			apperr.Respond(c, apperr.E(apperr.ErrValidation, "email and password are required"))
			return
		}

		var user models.User
		err := db.Where("email = ?", req.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, apperr.E(apperr.ErrUnauthorized, "invalid credentials"))
			return
		}
		if err != nil {
			apperr.Respond(c, apperr.ErrStore)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			apperr.Respond(c, apperr.E(apperr.ErrUnauthorized, "invalid credentials"))
			return
		}

		token, err := GenerateToken(&user, secret)
		if err != nil {
			apperr.Respond(c, apperr.ErrStore)
			return
		}

		slog.Info("user logged in", "user_id", user.ID)
		c.JSON(http.StatusOK, TokenResponse{Token: token, User: &user})
	}
}
