package usecase

import (
	"errors"
	"fmt"
	"time"

	"talentpipe/internal/dto"
	"talentpipe/internal/model"
	"talentpipe/internal/response"
	"talentpipe/internal/workflow"
)

var (
	ErrNoUpdatableFields = errors.New("no valid fields to update")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// CandidateStore is the slice of the candidate repository this usecase
// needs; satisfied by repository.CandidateRepository.
type CandidateStore interface {
	GetCandidates(offset, limit int) ([]model.Candidate, error)
	CountCandidates() (int64, error)
	FindCandidateByID(id int) (*model.Candidate, error)
	CreateCandidate(c *model.Candidate) error
	UpdateCandidateFields(id int, updates map[string]any) error
	DeleteCandidate(id int) error
	DetachJob(jobID int) error
}

type CandidateUsecaseInterface interface {
	List(page, pageSize int) ([]model.Candidate, *response.Pagination, error)
	Get(id int) (*model.Candidate, error)
	Create(req dto.CreateCandidateRequest) (*model.Candidate, error)
	Update(id int, req dto.UpdateCandidateRequest) error
	Delete(id int) error
}

type CandidateUsecase struct {
	candidateRepo CandidateStore
}

func NewCandidateUsecase(candidateRepo CandidateStore) *CandidateUsecase {
	return &CandidateUsecase{candidateRepo: candidateRepo}
}

// List returns candidates newest first. page <= 0 returns everything with
// no pagination meta, which is what the board view uses.
func (uc *CandidateUsecase) List(page, pageSize int) ([]model.Candidate, *response.Pagination, error) {
	if page <= 0 {
		candidates, err := uc.candidateRepo.GetCandidates(0, 0)
		return candidates, nil, err
	}

	if pageSize <= 0 {
		pageSize = 20
	}
	total, err := uc.candidateRepo.CountCandidates()
	if err != nil {
		return nil, nil, err
	}
	candidates, err := uc.candidateRepo.GetCandidates((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, nil, err
	}
	return candidates, paginate(page, pageSize, total), nil
}

func (uc *CandidateUsecase) Get(id int) (*model.Candidate, error) {
	return uc.candidateRepo.FindCandidateByID(id)
}

func (uc *CandidateUsecase) Create(req dto.CreateCandidateRequest) (*model.Candidate, error) {
	candidate := &model.Candidate{
		Name:                req.Name,
		AppliedJobID:        req.JobID,
		Status:              model.StatusCVScreening,
		EvaluationSummaries: model.EvaluationSummaries{},
	}
	if err := uc.candidateRepo.CreateCandidate(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// Update applies a partial update. A request carrying applied_job_id is an
// exclusive job-assignment update; everything else in it is ignored.
// Status changes are checked against the pipeline transition table.
func (uc *CandidateUsecase) Update(id int, req dto.UpdateCandidateRequest) error {
	current, err := uc.candidateRepo.FindCandidateByID(id)
	if err != nil {
		return err
	}

	if !req.AssignJob && req.Status != nil {
		if err := workflow.Validate(current.Status, *req.Status); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
	}

	updates := BuildCandidateUpdates(req, time.Now())
	if len(updates) <= 1 {
		return ErrNoUpdatableFields
	}
	return uc.candidateRepo.UpdateCandidateFields(id, updates)
}

func (uc *CandidateUsecase) Delete(id int) error {
	return uc.candidateRepo.DeleteCandidate(id)
}

// BuildCandidateUpdates turns field presence into a single SET map, one
// entry per provided field plus updated_at. This replaces the older
// per-combination query enumeration; any non-empty subset of the optional
// fields is applied in one statement.
func BuildCandidateUpdates(req dto.UpdateCandidateRequest, now time.Time) map[string]any {
	updates := map[string]any{"updated_at": now}

	if req.AssignJob {
		// Exclusive update: only the job assignment changes. A null
		// applied_job_id detaches the candidate from its job.
		if req.AppliedJobID != nil {
			updates["applied_job_id"] = *req.AppliedJobID
		} else {
			updates["applied_job_id"] = nil
		}
		return updates
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.EvaluationSummaries != nil {
		// Full column overwrite. The caller pre-merges existing summary
		// keys before sending; nothing is merged server-side.
		updates["evaluation_summaries"] = *req.EvaluationSummaries
	}
	if req.ConfidenceScore != nil {
		updates["confidence_score"] = *req.ConfidenceScore
	}
	if req.InterviewDate != nil {
		updates["interview_date"] = *req.InterviewDate
	}
	return updates
}

func paginate(page, pageSize int, total int64) *response.Pagination {
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	from := (page-1)*pageSize + 1
	to := page * pageSize
	if int64(to) > total {
		to = int(total)
	}
	if total == 0 {
		from = 0
	}
	return &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}
