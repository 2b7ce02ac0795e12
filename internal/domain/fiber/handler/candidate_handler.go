package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"

	"talentpipe/internal/dto"
	"talentpipe/internal/usecase"
	"talentpipe/internal/util"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecaseInterface
}

func NewCandidateHandler(uc usecase.CandidateUsecaseInterface) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/candidates", h.List)
	api.Post("/candidates", h.Create)
	api.Get("/candidates/:id", h.Get)
	api.Patch("/candidates/:id", h.Update)
	api.Delete("/candidates/:id", h.Delete)
}

func (h *CandidateHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page")
	pageSize := c.QueryInt("page_size")

	candidates, pagination, err := h.uc.List(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch candidates",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get candidates",
		Data:       candidates,
		Pagination: pagination,
	})
}

func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid candidate ID",
		}, err)
	}

	candidate, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Candidate not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch candidate",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get candidate",
		Data:    candidate,
	})
}

func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if req.Name == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Name is required",
		})
	}

	candidate, err := h.uc.Create(req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to create candidate",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create candidate",
		Data:    candidate,
	})
}

func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid candidate ID",
		}, err)
	}

	var req dto.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	// BodyParser cannot tell "applied_job_id": null apart from the key
	// being absent, and a null assignment is a valid detach.
	req.AssignJob = gjson.GetBytes(c.Body(), "applied_job_id").Exists()

	if err := h.uc.Update(id, req); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Candidate not found",
			})
		case errors.Is(err, usecase.ErrNoUpdatableFields):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "No valid fields to update",
			})
		case errors.Is(err, usecase.ErrInvalidTransition):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "Failed to update candidate",
			}, err)
		}
	}

	// No row is returned; callers re-fetch for the latest state.
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update candidate",
	})
}

func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid candidate ID",
		}, err)
	}

	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Candidate not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to delete candidate",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success delete candidate",
	})
}
