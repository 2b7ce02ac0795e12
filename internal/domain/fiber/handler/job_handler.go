package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"talentpipe/internal/dto"
	"talentpipe/internal/usecase"
	"talentpipe/internal/util"
)

type JobHandler struct {
	uc usecase.JobUsecaseInterface
}

func NewJobHandler(uc usecase.JobUsecaseInterface) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/jobs", h.List)
	api.Post("/jobs", h.Create)
	api.Post("/jobs/match", h.Match)
	api.Get("/jobs/:id", h.Get)
	api.Delete("/jobs/:id", h.Delete)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.List()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch job descriptions",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get job descriptions",
		Data:    jobs,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid job ID",
		}, err)
	}

	job, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Job description not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch job description",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get job description",
		Data:    job,
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.Title == "" || req.Description == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Title and description are required",
		})
	}

	job, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to create job description",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job description",
		Data:    job,
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid job ID",
		}, err)
	}

	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Job description not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to delete job description",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete job description",
	})
}

func (h *JobHandler) Match(c *fiber.Ctx) error {
	var req dto.JobMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.Content == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Content is required",
		})
	}

	jobs, err := h.uc.Match(c.Context(), req.Content, req.TopK)
	if err != nil {
		if errors.Is(err, usecase.ErrMatchingUnavailable) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusServiceUnavailable,
				Message: "Job matching is not configured",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to match jobs",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success match jobs",
		Data:    jobs,
	})
}
