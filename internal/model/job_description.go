package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type JobDescription struct {
	ID          int              `gorm:"column:job_id;primaryKey;autoIncrement" json:"job_id"`
	Title       string           `gorm:"column:job_title;type:varchar(255);not null" json:"job_title"`
	Description string           `gorm:"type:text" json:"description"`
	Criteria    string           `gorm:"type:text" json:"criteria"`
	Embedding   *pgvector.Vector `gorm:"type:vector(3072)" json:"-"` // null until the embedding job runs
	CreatedAt   time.Time        `json:"created_at"`
}

func (j *JobDescription) TableName() string {
	return "job_descriptions"
}
