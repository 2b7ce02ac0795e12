package dto

import "talentpipe/internal/model"

type CreateCandidateRequest struct {
	Name  string `json:"name"`
	JobID *int   `json:"jobId"`
}

// UpdateCandidateRequest is a partial update. Pointer fields distinguish
// "absent" from "set to zero value". AssignJob is derived from the raw
// body by the handler because applied_job_id may legitimately be null
// (detach) while still being an exclusive job-assignment update.
type UpdateCandidateRequest struct {
	Status              *string                    `json:"status"`
	EvaluationSummaries *model.EvaluationSummaries `json:"evaluationSummaries"`
	ConfidenceScore     *int                       `json:"confidenceScore"`
	InterviewDate       *string                    `json:"interviewDate"`
	AppliedJobID        *int                       `json:"applied_job_id"`
	AssignJob           bool                       `json:"-"`
}

type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Criteria    string `json:"criteria"`
}

type JobMatchRequest struct {
	Content string `json:"content"`
	TopK    int    `json:"topK"`
}
