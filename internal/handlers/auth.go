package handlers

import (
	"checkout/internal/models"
	"checkout/internal/services/auth"
	"checkout/internal/utils"
	"checkout/internal/utils/response"
	"checkout/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login signs the user in with email and password. Any password, including
// an empty one, is accepted.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(input); err != nil {
		return handleError(c, err)
	}

	session, err := h.authService.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Login successful", session)
}

// LoginWithProvider signs the user in through google or apple.
func (h *AuthHandler) LoginWithProvider(c *fiber.Ctx) error {
	provider := models.AuthProvider(c.Params("provider"))

	session, err := h.authService.LoginWithProvider(c.Context(), provider)
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Login successful", session)
}

// Register creates a user. As with Login, the password is not checked.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password"`
		Name     string `json:"name" validate:"required,max=100"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(input); err != nil {
		return handleError(c, err)
	}

	session, err := h.authService.Register(c.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, "Registration successful", session)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	if err := h.authService.Logout(claims.UserID); err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Logged out successfully", nil)
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	user, err := h.authService.GetUser(claims.UserID)
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "User retrieved successfully", user)
}
