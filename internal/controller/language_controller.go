package controller

import (
	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/pkg/serverutils"
	"ramayana-qa-be/pkg/language"

	"github.com/gofiber/fiber/v2"
)

type ILanguageController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type languageController struct{}

func NewLanguageController() ILanguageController {
	return &languageController{}
}

func (c *languageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/language/v1")
	h.Get("", c.List)
}

func (c *languageController) List(ctx *fiber.Ctx) error {
	profiles := language.All()

	res := make([]dto.LanguageResponse, len(profiles))
	for i, p := range profiles {
		res[i] = dto.LanguageResponse{Name: p.Name, Code: p.Code, Speaker: p.Speaker}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list languages", res))
}
