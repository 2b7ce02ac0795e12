package repository

import (
	"strings"

	"gorm.io/gorm"

	"talentpipe/internal/model"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func isUndefinedTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "does not exist")
}

func (r *CandidateRepository) GetCandidates(offset, limit int) ([]model.Candidate, error) {
	var candidates []model.Candidate

	q := r.db.Table("candidates c").
		Select("c.*, jd.job_title").
		Joins("LEFT JOIN job_descriptions jd ON c.applied_job_id = jd.job_id").
		Order("c.created_at DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}

	err := q.Scan(&candidates).Error
	if isUndefinedTable(err) {
		return []model.Candidate{}, nil
	}
	return candidates, err
}

func (r *CandidateRepository) CountCandidates() (int64, error) {
	var count int64
	err := r.db.Model(&model.Candidate{}).Count(&count).Error
	if isUndefinedTable(err) {
		return 0, nil
	}
	return count, err
}

func (r *CandidateRepository) FindCandidateByID(id int) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.Table("candidates c").
		Select("c.*, jd.job_title, jd.description AS job_description, jd.criteria AS job_criteria").
		Joins("LEFT JOIN job_descriptions jd ON c.applied_job_id = jd.job_id").
		Where("c.candidate_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) CreateCandidate(c *model.Candidate) error {
	return r.db.Create(c).Error
}

// UpdateCandidateFields applies a SET map built by the caller. The map is
// expected to already carry updated_at.
func (r *CandidateRepository) UpdateCandidateFields(id int, updates map[string]any) error {
	result := r.db.Model(&model.Candidate{}).
		Where("candidate_id = ?", id).
		UpdateColumns(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CandidateRepository) DeleteCandidate(id int) error {
	result := r.db.Delete(&model.Candidate{}, "candidate_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DetachJob nulls out the job assignment for every candidate that applied
// to the given job. Run before deleting the job description itself.
// UpdateColumns keeps every other candidate field, updated_at included,
// untouched.
func (r *CandidateRepository) DetachJob(jobID int) error {
	return r.db.Model(&model.Candidate{}).
		Where("applied_job_id = ?", jobID).
		UpdateColumns(map[string]any{"applied_job_id": nil}).Error
}
