// auth.go handles account registration and login.
//
// POST /api/v1/auth/register — Create an account
// POST /api/v1/auth/login    — Exchange credentials for a JWT
// GET  /api/v1/auth/me       — Return the authenticated account
//
// Accounts are optional: every practice endpoint also works anonymously.
// Registering just makes statistics persistent across devices.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/echobridge/listening-trainer-api/internal/middleware"
	"github.com/echobridge/listening-trainer-api/internal/models"
)

// Register creates a new learner account.
// POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "username (2-40 chars), valid email, and password (min 8 chars) are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Go Pattern: bcrypt handles salting internally — one call, no manual
	// salt management like some other ecosystems require.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to create account",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := h.DB.CreateUser(c.Request.Context(), user); err != nil {
		// Unique violations on username/email land here
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "account_exists",
			Message: "An account with that username or email already exists",
			Code:    http.StatusConflict,
		})
		return
	}

	token, err := middleware.GenerateJWT(user, h.Config.JWTSecret)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", user.Username, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Account created but token issuance failed; please log in",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	log.Printf("👤 New account registered: %s", user.Username)

	c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Login verifies credentials and issues a JWT.
// POST /api/v1/auth/login
//
// The username field accepts either a username or an email address.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "username and password are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	user, err := h.DB.GetUserByLogin(c.Request.Context(), req.Username)
	if err != nil {
		// Same response for unknown user and wrong password — don't leak
		// which accounts exist.
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid username or password",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid username or password",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	token, err := middleware.GenerateJWT(user, h.Config.JWTSecret)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", user.Username, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to issue token",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  *user,
	})
}

// GetMe returns the account behind the presented token.
// GET /api/v1/auth/me
func (h *Handler) GetMe(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Authentication required",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
