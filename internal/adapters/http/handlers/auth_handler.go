package handlers

import (
	"samajam-backend/internal/config"
	"samajam-backend/internal/core/services"
	"samajam-backend/internal/pkg/credentials"
	"samajam-backend/internal/pkg/jwt"
	"samajam-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	adminAuth *services.AdminAuthService
	cfg       *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminAuth *services.AdminAuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		adminAuth: adminAuth,
		cfg:       cfg,
	}
}

// AdminLoginRequest represents admin login request body. Credentials
// arrive either as separate fields or as a base64 "username:password"
// pair in encoded.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Encoded  string `json:"encoded"`
}

// Login handles admin login
// @Summary Admin login
// @Description Authenticate the admin account and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	username, pass := req.Username, req.Password
	if req.Encoded != "" {
		var err error
		username, pass, err = credentials.DecodeBasic(req.Encoded)
		if err != nil {
			return response.BadRequest(c, "Malformed encoded credentials")
		}
	}

	if username == "" || pass == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	if !h.adminAuth.Authenticate(username, pass) {
		return response.Unauthorized(c, "Invalid credentials")
	}

	admin := h.adminAuth.GetIdentity(username)

	token, err := jwt.GenerateToken(admin.Username, admin.Role, h.cfg.JWT.Secret)
	if err != nil {
		return response.InternalServerError(c, "Login failed")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"admin":   admin,
	})
}

// Logout handles admin logout. Tokens carry no server-side session, so
// logout only exists for the client to discard its copy.
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return response.Success(c, "Logout successful", nil)
}

// Verify confirms the presented token and echoes the admin identity
// @Summary Verify admin token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.Response
// @Router /api/admin/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Token is valid",
		"admin": fiber.Map{
			"username": c.Locals("username"),
			"role":     c.Locals("role"),
		},
	})
}
