package controller

import (
	"io"

	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/pkg/serverutils"
	"ramayana-qa-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISpeechController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
	Synthesize(ctx *fiber.Ctx) error
}

type speechController struct {
	speechService service.ISpeechService
}

func NewSpeechController(speechService service.ISpeechService) ISpeechController {
	return &speechController{
		speechService: speechService,
	}
}

func (c *speechController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/speech/v1")
	h.Post("transcribe", c.Transcribe)
	h.Post("synthesize", c.Synthesize)
}

// Transcribe accepts a multipart WAV upload under "file" with an optional
// "language" form field. The response always has status 200; upstream
// failures are reported in the body's error field.
func (c *speechController) Transcribe(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing audio file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable audio file")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable audio file")
	}

	language := ctx.FormValue("language")

	res := c.speechService.SpeechToText(ctx.Context(), audio, language)
	return ctx.JSON(serverutils.SuccessResponse("Success transcribe audio", res))
}

func (c *speechController) Synthesize(ctx *fiber.Ctx) error {
	var req dto.SynthesizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.speechService.TextToSpeech(ctx.Context(), req.Text, req.Language)
	return ctx.JSON(serverutils.SuccessResponse("Success synthesize speech", res))
}
