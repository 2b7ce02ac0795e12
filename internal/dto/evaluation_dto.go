package dto

type EvaluateCVRequest struct {
	CVContent      string `json:"cvContent"`
	JobDescription string `json:"jobDescription"`
	Criteria       string `json:"criteria"`
}

type EvaluateInterviewRequest struct {
	Transcript     string `json:"transcript"`
	JobDescription string `json:"jobDescription"`
	Criteria       string `json:"criteria"`
	Questions      string `json:"questions"`
}

type CVEvaluation struct {
	Summary string `json:"summary"`
}

// InterviewDate is null when the transcript carried no date; callers use
// that to skip the interview_date column on the follow-up PATCH.
type InterviewEvaluation struct {
	Summary         string  `json:"summary"`
	ConfidenceScore int     `json:"confidenceScore"`
	InterviewDate   *string `json:"interviewDate"`
}
