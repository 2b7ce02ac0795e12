package handler

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentpipe/internal/dto"
	"talentpipe/internal/middleware"
	"talentpipe/internal/usecase"
	"talentpipe/internal/util"
)

const maxUploadSize = 5 * 1024 * 1024

type EvaluateHandler struct {
	uc usecase.EvaluationUsecaseInterface
}

func NewEvaluateHandler(uc usecase.EvaluationUsecaseInterface) *EvaluateHandler {
	return &EvaluateHandler{uc: uc}
}

func (h *EvaluateHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	// The evaluation routes fan out to the model service; keep them on a
	// tighter limit than the global one.
	api.Post("/evaluate/cv", middleware.RateLimiter(1, 4*time.Second), h.EvaluateCV)
	api.Post("/evaluate/interview", middleware.RateLimiter(1, 4*time.Second), h.EvaluateInterview)
	api.Post("/extract", h.Extract)
}

func (h *EvaluateHandler) EvaluateCV(c *fiber.Ctx) error {
	var req dto.EvaluateCVRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.CVContent == "" || req.JobDescription == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "CV content and job description are required",
		})
	}

	eval, err := h.uc.EvaluateCV(c.Context(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to evaluate CV",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success evaluate CV",
		Data:    eval,
	})
}

func (h *EvaluateHandler) EvaluateInterview(c *fiber.Ctx) error {
	var req dto.EvaluateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.Transcript == "" || req.JobDescription == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Interview transcript and job description are required",
		})
	}

	eval, err := h.uc.EvaluateInterview(c.Context(), req)
	if err != nil {
		// Explicit zero score and null date so callers can tell a failed
		// evaluation apart from one that scored low.
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to evaluate interview",
			Details: fiber.Map{"confidenceScore": 0, "interviewDate": nil},
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success evaluate interview",
		Data:    eval,
	})
}

// Extract turns an uploaded PDF into plain text. The UI calls it before
// evaluation so CVs and transcripts are stored as text.
func (h *EvaluateHandler) Extract(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file is required",
		}, err)
	}
	if file.Size > maxUploadSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file size is too large (max 5MB)",
		})
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "unsupported file type",
		})
	}

	savePath := filepath.Join(os.TempDir(), uuid.NewString()+".pdf")
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save file",
		}, err)
	}
	defer os.Remove(savePath)

	content, err := util.ExtractPDFText(savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "failed to extract text",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success extract text",
		Data:    fiber.Map{"content": content},
	})
}
