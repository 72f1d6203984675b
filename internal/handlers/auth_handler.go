package handlers

import (
	"log"
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for accounts and sessions.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the account routes. authRequired guards the
// self-lookup endpoint.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/create-account", h.HandleCreateAccount)
	router.Post("/login", h.HandleLogin)
	router.Get("/get-user", authRequired, h.HandleGetUser)
}

// RegisterRequest is the create-account request body.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleCreateAccount registers a new account and returns an access token.
// A duplicate email answers 200 with the error flag set; that status is part
// of the published contract.
func (h *AuthHandler) HandleCreateAccount(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}

	if req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Full Name is required",
		})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Email is required",
		})
	}
	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Password is required",
		})
	}

	user, accessToken, err := h.authService.Register(req.FullName, req.Email, req.Password)
	if err != nil {
		if apperror.IsCode(err, http.StatusConflict) {
			return c.JSON(fiber.Map{
				"error":   true,
				"message": "User already exists",
			})
		}
		log.Printf("Error registering user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"error":       false,
		"user":        user,
		"accessToken": accessToken,
		"message":     "Registration Successful",
	})
}

// HandleLogin authenticates a user and returns an access token. An unknown
// email answers 200 with the error flag set; wrong credentials answer 400.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request body",
		})
	}

	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Email is required",
		})
	}
	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Password is required",
		})
	}

	_, accessToken, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if apperror.IsCode(err, http.StatusNotFound) {
			return c.JSON(fiber.Map{
				"error":   true,
				"message": "User Not Found",
			})
		}
		if apperror.IsCode(err, http.StatusBadRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": "Invalid Credentials",
			})
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal Server Error",
		})
	}

	return c.JSON(fiber.Map{
		"error":       false,
		"message":     "Login Successful",
		"email":       req.Email,
		"accessToken": accessToken,
	})
}

// HandleGetUser returns the authenticated user's profile.
func (h *AuthHandler) HandleGetUser(c *fiber.Ctx) error {
	tokenUser, ok := c.Locals("user").(models.User)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	user, err := h.authService.GetUser(tokenUser.ID)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	return c.JSON(fiber.Map{
		"user":    user.Profile(),
		"message": "",
	})
}
