package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/SscSPs/money_tracker/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: us,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, userService portssvc.UserSvcFacade) error {
	h := NewAuthHandler(userService, cfg)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.POST("/register", h.Register)
	}
	return nil
}

// Login authenticates a user and returns a JWT token.
//
//	POST /auth/login {email, password} -> 200 {token}
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondError(c, logger, err, "Failed to log in")
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// Register creates a new user account.
//
//	POST /auth/register {username, email, password} -> 201
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "User already exists"})
			return
		}
		respondError(c, logger, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}
