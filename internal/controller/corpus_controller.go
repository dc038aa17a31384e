package controller

import (
	"ramayana-qa-be/internal/pkg/serverutils"
	"ramayana-qa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICorpusController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
	ListPassages(ctx *fiber.Ctx) error
	ShowPassage(ctx *fiber.Ctx) error
}

type corpusController struct {
	corpusService service.ICorpusService
}

func NewCorpusController(corpusService service.ICorpusService) ICorpusController {
	return &corpusController{
		corpusService: corpusService,
	}
}

func (c *corpusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/corpus/v1")
	h.Get("stats", c.Stats)
	h.Post("reindex", c.Reindex)
	h.Get("passages", c.ListPassages)
	h.Get("passages/:external_id", c.ShowPassage)
}

func (c *corpusController) Stats(ctx *fiber.Ctx) error {
	res, err := c.corpusService.GetStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show corpus stats", res))
}

func (c *corpusController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.corpusService.Reindex(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success enqueue reindex", res))
}

func (c *corpusController) ListPassages(ctx *fiber.Ctx) error {
	kanda := ctx.Query("kanda")
	limit := ctx.QueryInt("limit")

	res, err := c.corpusService.ListPassages(ctx.Context(), kanda, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list passages", res))
}

func (c *corpusController) ShowPassage(ctx *fiber.Ctx) error {
	res, err := c.corpusService.GetPassage(ctx.Context(), ctx.Params("external_id"))
	if err != nil {
		if err.Error() == "passage not found" {
			return fiber.NewError(fiber.StatusNotFound, "passage not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show passage", res))
}
