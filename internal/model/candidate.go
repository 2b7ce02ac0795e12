package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Pipeline stages a candidate can be in.
const (
	StatusCVScreening = "CV Screening"
	StatusInterview   = "Interview"
	StatusOffer       = "Offer"
	StatusHired       = "Hired"
	StatusRejected    = "Rejected"
)

// EvaluationSummaries holds the per-evaluation-type model output.
// Stored as a single jsonb column; writes replace the whole column,
// so callers updating one key must carry the other one forward.
type EvaluationSummaries struct {
	CVSummary        string `json:"cv_summary,omitempty"`
	InterviewSummary string `json:"interview_summary,omitempty"`
}

func (s EvaluationSummaries) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *EvaluationSummaries) Scan(value any) error {
	if value == nil {
		*s = EvaluationSummaries{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for evaluation_summaries: %T", value)
	}
}

type Candidate struct {
	ID                  int                 `gorm:"column:candidate_id;primaryKey;autoIncrement" json:"candidate_id"`
	Name                string              `gorm:"type:varchar(255);not null" json:"name"`
	AppliedJobID        *int                `gorm:"column:applied_job_id" json:"applied_job_id"`
	Status              string              `gorm:"type:varchar(50);default:'CV Screening'" json:"status"`
	CVFile              string              `gorm:"column:cv_file;type:text" json:"cv_file,omitempty"`
	InterviewTranscript string              `gorm:"type:text" json:"interview_transcript,omitempty"`
	EvaluationSummaries EvaluationSummaries `gorm:"type:jsonb" json:"evaluation_summaries"`
	ConfidenceScore     int                 `gorm:"default:0" json:"confidence_score"`
	InterviewDate       *string             `gorm:"type:varchar(100)" json:"interview_date,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`

	// Filled by the LEFT JOIN against job_descriptions on read paths.
	JobTitle       *string `gorm:"->;-:migration" json:"job_title,omitempty"`
	JobDescription *string `gorm:"->;-:migration" json:"job_description,omitempty"`
	JobCriteria    *string `gorm:"->;-:migration" json:"job_criteria,omitempty"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
