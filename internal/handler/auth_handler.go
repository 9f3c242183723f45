package handler

import (
	"strings"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SmsCodeRequest represents the sms code request body
type SmsCodeRequest struct {
	Phone string `json:"phone"`
}

// ValidateTokenRequest represents the validate token request body
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// Login handles user authentication
// POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	response, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, "Login successful", response)
}

// SmsCode sends the verification code used by mobile login
// POST /api/sms-code
func (h *AuthHandler) SmsCode(c *fiber.Ctx) error {
	var req SmsCodeRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}
	return ok(c, h.authService.SendSmsCode(c.UserContext(), req.Phone), nil)
}

// ValidateToken checks a token from the body, or from the Authorization header
// POST /api/validate-token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req ValidateTokenRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return fail(c, err)
		}
	}
	if req.Token == "" {
		req.Token = strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))
	}

	user, err := h.authService.ValidateToken(c.UserContext(), req.Token)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, "Token is valid", fiber.Map{"user": user})
}
