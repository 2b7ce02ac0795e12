package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentpipe/internal/dto"
)

type stubChat struct {
	replies []string
	prompts []string
	err     error
}

func (s *stubChat) Complete(ctx context.Context, system, user string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.prompts = append(s.prompts, user)
	reply := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	return reply, nil
}

func TestEvaluateCVReturnsSummaryVerbatim(t *testing.T) {
	chat := &stubChat{replies: []string{"RELEVANT EXPERIENCE\nFive years of Go."}}
	uc := NewEvaluationUsecase(chat)

	eval, err := uc.EvaluateCV(context.Background(), dto.EvaluateCVRequest{
		CVContent:      "cv text",
		JobDescription: "backend engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "RELEVANT EXPERIENCE\nFive years of Go.", eval.Summary)
}

func TestEvaluateCVPromptCriteriaSections(t *testing.T) {
	chat := &stubChat{replies: []string{"ok"}}
	uc := NewEvaluationUsecase(chat)

	_, err := uc.EvaluateCV(context.Background(), dto.EvaluateCVRequest{
		CVContent:      "cv text",
		JobDescription: "backend engineer",
		Criteria:       "Kubernetes experience",
	})
	require.NoError(t, err)
	require.Len(t, chat.prompts, 1)
	assert.Contains(t, chat.prompts[0], "CUSTOM CRITERIA ASSESSMENT")
	assert.Contains(t, chat.prompts[0], "Custom Evaluation Criteria: Kubernetes experience")

	chat2 := &stubChat{replies: []string{"ok"}}
	uc2 := NewEvaluationUsecase(chat2)
	_, err = uc2.EvaluateCV(context.Background(), dto.EvaluateCVRequest{
		CVContent:      "cv text",
		JobDescription: "backend engineer",
	})
	require.NoError(t, err)
	assert.NotContains(t, chat2.prompts[0], "CUSTOM CRITERIA ASSESSMENT")
	assert.Contains(t, chat2.prompts[0], "Standard job requirements and qualifications")
}

func TestEvaluateInterviewWithDate(t *testing.T) {
	chat := &stubChat{replies: []string{
		"March 15, 2024",
		"OVERALL ASSESSMENT SCORE\nBased on the comprehensive evaluation above, I assign this candidate a score of 82/100.",
	}}
	uc := NewEvaluationUsecase(chat)

	eval, err := uc.EvaluateInterview(context.Background(), dto.EvaluateInterviewRequest{
		Transcript:     "Today is March 15, 2024. Interviewer: welcome.",
		JobDescription: "backend engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, 82, eval.ConfidenceScore)
	require.NotNil(t, eval.InterviewDate)
	assert.Equal(t, "March 15, 2024", *eval.InterviewDate)

	// The extracted date is fed into the second prompt's template.
	require.Len(t, chat.prompts, 2)
	assert.Contains(t, chat.prompts[1], "INTERVIEW DATE\nMarch 15, 2024")
}

func TestEvaluateInterviewNoDate(t *testing.T) {
	chat := &stubChat{replies: []string{
		"NO_DATE_FOUND",
		"I assign this candidate a score of 64/100.",
	}}
	uc := NewEvaluationUsecase(chat)

	eval, err := uc.EvaluateInterview(context.Background(), dto.EvaluateInterviewRequest{
		Transcript:     "Interviewer: welcome.",
		JobDescription: "backend engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, 64, eval.ConfidenceScore)
	assert.Nil(t, eval.InterviewDate)
	assert.NotContains(t, chat.prompts[1], "INTERVIEW DATE\n")
}

func TestEvaluateInterviewUnparsableScoreDefaults(t *testing.T) {
	chat := &stubChat{replies: []string{
		"NO_DATE_FOUND",
		"A strong performance overall, recommended to proceed.",
	}}
	uc := NewEvaluationUsecase(chat)

	eval, err := uc.EvaluateInterview(context.Background(), dto.EvaluateInterviewRequest{
		Transcript:     "Interviewer: welcome.",
		JobDescription: "backend engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, 75, eval.ConfidenceScore)
}

func TestEvaluateInterviewTruncatesDateExtractionInput(t *testing.T) {
	transcript := strings.Repeat("a", 1500) + "TAIL-MARKER"
	chat := &stubChat{replies: []string{"NO_DATE_FOUND", "score of 50/100"}}
	uc := NewEvaluationUsecase(chat)

	_, err := uc.EvaluateInterview(context.Background(), dto.EvaluateInterviewRequest{
		Transcript:     transcript,
		JobDescription: "backend engineer",
	})
	require.NoError(t, err)
	require.Len(t, chat.prompts, 2)
	assert.NotContains(t, chat.prompts[0], "TAIL-MARKER", "date extraction only sees the transcript head")
	assert.Contains(t, chat.prompts[1], "TAIL-MARKER", "evaluation sees the full transcript")
}

func TestEvaluateInterviewQuestionsSection(t *testing.T) {
	chat := &stubChat{replies: []string{"NO_DATE_FOUND", "score of 70/100"}}
	uc := NewEvaluationUsecase(chat)

	_, err := uc.EvaluateInterview(context.Background(), dto.EvaluateInterviewRequest{
		Transcript:     "Interviewer: welcome.",
		JobDescription: "backend engineer",
		Questions:      "1. Describe a hard bug you fixed.",
	})
	require.NoError(t, err)
	assert.Contains(t, chat.prompts[1], "QUESTION-BY-QUESTION ANALYSIS")
	assert.Contains(t, chat.prompts[1], "1. Describe a hard bug you fixed.")

	chat2 := &stubChat{replies: []string{"NO_DATE_FOUND", "score of 70/100"}}
	uc2 := NewEvaluationUsecase(chat2)
	_, err = uc2.EvaluateInterview(context.Background(), dto.EvaluateInterviewRequest{
		Transcript:     "Interviewer: welcome.",
		JobDescription: "backend engineer",
	})
	require.NoError(t, err)
	assert.Contains(t, chat2.prompts[1], "GENERAL INTERVIEW ANALYSIS")
	assert.NotContains(t, chat2.prompts[1], "QUESTION-BY-QUESTION ANALYSIS")
}

func TestEvaluateInterviewChatFailure(t *testing.T) {
	chat := &stubChat{err: fmt.Errorf("upstream unavailable")}
	uc := NewEvaluationUsecase(chat)

	_, err := uc.EvaluateInterview(context.Background(), dto.EvaluateInterviewRequest{
		Transcript:     "Interviewer: welcome.",
		JobDescription: "backend engineer",
	})
	assert.Error(t, err)
}
