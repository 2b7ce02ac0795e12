package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/pgvector/pgvector-go"

	"talentpipe/internal/dto"
	"talentpipe/internal/model"
	"talentpipe/internal/service"
)

var ErrMatchingUnavailable = errors.New("job matching is not configured")

// JobStore is the slice of the job repository this usecase needs;
// satisfied by repository.JobRepository.
type JobStore interface {
	GetJobs() ([]model.JobDescription, error)
	FindJobByID(id int) (*model.JobDescription, error)
	CreateJob(job *model.JobDescription) error
	SetEmbedding(id int, embedding pgvector.Vector) error
	DeleteJob(id int) error
	SearchJobs(embedding pgvector.Vector, topK int) ([]model.JobDescription, error)
}

type JobUsecaseInterface interface {
	List() ([]model.JobDescription, error)
	Get(id int) (*model.JobDescription, error)
	Create(ctx context.Context, req dto.CreateJobRequest) (*model.JobDescription, error)
	Delete(id int) error
	Match(ctx context.Context, content string, topK int) ([]model.JobDescription, error)
}

type JobUsecase struct {
	jobRepo       JobStore
	candidateRepo CandidateStore
	embedder      service.EmbeddingServiceInterface // nil when no API key is configured
}

func NewJobUsecase(jobRepo JobStore, candidateRepo CandidateStore, embedder service.EmbeddingServiceInterface) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo, candidateRepo: candidateRepo, embedder: embedder}
}

func (uc *JobUsecase) List() ([]model.JobDescription, error) {
	return uc.jobRepo.GetJobs()
}

func (uc *JobUsecase) Get(id int) (*model.JobDescription, error) {
	return uc.jobRepo.FindJobByID(id)
}

// Create stores the job description and computes its embedding best
// effort: a failed embedding call leaves the job usable, it just won't
// show up in match results until re-created.
func (uc *JobUsecase) Create(ctx context.Context, req dto.CreateJobRequest) (*model.JobDescription, error) {
	job := &model.JobDescription{
		Title:       req.Title,
		Description: req.Description,
		Criteria:    req.Criteria,
	}
	if err := uc.jobRepo.CreateJob(job); err != nil {
		return nil, err
	}

	if uc.embedder != nil {
		emb, err := uc.embedder.GenerateEmbedding(ctx, job.Description)
		if err != nil {
			log.Printf("embedding for job %d failed: %v", job.ID, err)
			return job, nil
		}
		if err := uc.jobRepo.SetEmbedding(job.ID, pgvector.NewVector(emb)); err != nil {
			log.Printf("storing embedding for job %d failed: %v", job.ID, err)
		}
	}
	return job, nil
}

// Delete detaches referencing candidates before removing the row. The two
// statements run without a transaction, matching the API-layer referential
// integrity model.
func (uc *JobUsecase) Delete(id int) error {
	if _, err := uc.jobRepo.FindJobByID(id); err != nil {
		return err
	}
	if err := uc.candidateRepo.DetachJob(id); err != nil {
		return err
	}
	return uc.jobRepo.DeleteJob(id)
}

func (uc *JobUsecase) Match(ctx context.Context, content string, topK int) ([]model.JobDescription, error) {
	if uc.embedder == nil {
		return nil, ErrMatchingUnavailable
	}
	if topK <= 0 {
		topK = 5
	}
	emb, err := uc.embedder.GenerateEmbedding(ctx, content)
	if err != nil {
		return nil, err
	}
	return uc.jobRepo.SearchJobs(pgvector.NewVector(emb), topK)
}
