package controller

import (
	"github.com/gofiber/fiber/v2"

	"mm-voicenote-be/internal/dto"
	"mm-voicenote-be/internal/pkg/serverutils"
	"mm-voicenote-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
}

type authController struct {
	sessionService service.ISessionService
}

func NewAuthController(sessionService service.ISessionService) IAuthController {
	return &authController{sessionService: sessionService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/session", c.Session)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	// The bearer token is optional here: logout must work even with an
	// expired token, it only clears the persisted session.
	token := ""
	if authHeader := ctx.Get("Authorization"); len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	}

	if err := c.sessionService.Logout(ctx.Context(), token); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Logout successful", nil))
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	user, err := c.sessionService.Restore(ctx.Context())
	if err != nil {
		return err
	}

	res := dto.SessionResponse{
		Authenticated: user != nil,
		User:          user,
	}
	return ctx.JSON(serverutils.SuccessResponse("Session state", res))
}
