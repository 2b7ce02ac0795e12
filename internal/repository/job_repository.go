package repository

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"talentpipe/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) GetJobs() ([]model.JobDescription, error) {
	var jobs []model.JobDescription
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	if isUndefinedTable(err) {
		// Fresh install without tables shows an empty board, not an error.
		return []model.JobDescription{}, nil
	}
	return jobs, err
}

func (r *JobRepository) FindJobByID(id int) (*model.JobDescription, error) {
	var j model.JobDescription
	err := r.db.First(&j, "job_id = ?", id).Error
	return &j, err
}

func (r *JobRepository) CreateJob(job *model.JobDescription) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) SetEmbedding(id int, embedding pgvector.Vector) error {
	return r.db.Model(&model.JobDescription{}).
		Where("job_id = ?", id).
		Update("embedding", embedding).Error
}

// DeleteJob removes a job description. Candidates referencing it must be
// detached first (CandidateRepository.DetachJob); the two statements are
// intentionally separate, matching the API-layer referential integrity.
func (r *JobRepository) DeleteJob(id int) error {
	return r.db.Delete(&model.JobDescription{}, "job_id = ?", id).Error
}

func (r *JobRepository) SearchJobs(embedding pgvector.Vector, topK int) ([]model.JobDescription, error) {
	var jobs []model.JobDescription

	// pgvector <-> operator (Euclidean distance)
	err := r.db.Raw(`
        SELECT job_id, job_title, description, criteria, created_at, embedding <-> ? AS distance
        FROM job_descriptions
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&jobs).Error

	return jobs, err
}
