package usecase

import (
	"context"

	"talentpipe/internal/dto"
	"talentpipe/internal/service"
	"talentpipe/internal/util"
)

// The date-extraction call only sees the head of the transcript; dates are
// announced at the start of an interview if they are announced at all.
const transcriptHeadLen = 1000

type EvaluationUsecaseInterface interface {
	EvaluateCV(ctx context.Context, req dto.EvaluateCVRequest) (*dto.CVEvaluation, error)
	EvaluateInterview(ctx context.Context, req dto.EvaluateInterviewRequest) (*dto.InterviewEvaluation, error)
}

type EvaluationUsecase struct {
	chat service.ChatServiceInterface
}

func NewEvaluationUsecase(chat service.ChatServiceInterface) *EvaluationUsecase {
	return &EvaluationUsecase{chat: chat}
}

func (uc *EvaluationUsecase) EvaluateCV(ctx context.Context, req dto.EvaluateCVRequest) (*dto.CVEvaluation, error) {
	prompt := buildCVPrompt(req.JobDescription, req.Criteria, req.CVContent)
	text, err := uc.chat.Complete(ctx, cvSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	// The summary is stored and displayed as opaque text; no parsing here.
	return &dto.CVEvaluation{Summary: text}, nil
}

// EvaluateInterview runs two sequential model calls: date extraction over
// the transcript head, then the scored evaluation over the full
// transcript. The second call embeds the extracted date so it shows up in
// the written assessment.
func (uc *EvaluationUsecase) EvaluateInterview(ctx context.Context, req dto.EvaluateInterviewRequest) (*dto.InterviewEvaluation, error) {
	head := req.Transcript
	if len(head) > transcriptHeadLen {
		head = head[:transcriptHeadLen]
	}

	dateReply, err := uc.chat.Complete(ctx, interviewSystemPrompt, buildDateExtractionPrompt(head))
	if err != nil {
		return nil, err
	}
	interviewDate, hasDate := util.ExtractInterviewDate(dateReply)

	prompt := buildInterviewPrompt(req, interviewDate, hasDate)
	text, err := uc.chat.Complete(ctx, interviewSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	eval := &dto.InterviewEvaluation{
		Summary:         text,
		ConfidenceScore: util.ExtractConfidenceScore(text),
	}
	if hasDate {
		eval.InterviewDate = &interviewDate
	}
	return eval, nil
}
