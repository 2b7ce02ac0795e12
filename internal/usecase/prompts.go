package usecase

import (
	"fmt"
	"strings"

	"talentpipe/internal/dto"
	"talentpipe/internal/util"
)

const cvSystemPrompt = "You are an experienced technical recruiter evaluating CVs against job requirements."

const interviewSystemPrompt = "You are an experienced technical recruiter evaluating interview performance."

func buildCVPrompt(jobDescription, criteria, cvContent string) string {
	hasCriteria := strings.TrimSpace(criteria) != ""

	evaluationCriteria := "Standard job requirements and qualifications"
	if hasCriteria {
		evaluationCriteria = fmt.Sprintf(`Custom Evaluation Criteria: %s

Please pay special attention to these custom criteria when evaluating the candidate. Assess how well the CV demonstrates these specific requirements and mention them explicitly in your evaluation.`, criteria)
	}

	criteriaSuffix := func(withCriteria, without string) string {
		if hasCriteria {
			return withCriteria
		}
		return without
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Analyze the following CV against the job description and criteria:

Job Description: %s

%s

CV Content: %s

Please provide a comprehensive evaluation summary in plain text format (no markdown, asterisks, or special formatting). Do not include a "CV EVALUATION SUMMARY" title at the beginning since it will be added as a header:

RELEVANT EXPERIENCE
[Detailed assessment of relevant work experience and skills%s]

TECHNICAL QUALIFICATIONS
[Evaluation of technical skills and certifications%s]

EDUCATION AND BACKGROUND
[Assessment of educational qualifications and background]

`, jobDescription, evaluationCriteria, cvContent,
		criteriaSuffix(", specifically addressing the custom criteria provided", ""),
		criteriaSuffix(", with focus on the custom evaluation criteria", ""))

	if hasCriteria {
		fmt.Fprintf(&b, `CUSTOM CRITERIA ASSESSMENT
[Specific evaluation of how well the candidate meets each of the custom criteria provided: %s]

`, criteria)
	}

	fmt.Fprintf(&b, `STRENGTHS
[Key positive points that make this candidate suitable%s]

AREAS OF CONCERN
[Any gaps, weaknesses, or missing qualifications%s]

JOB MATCH ASSESSMENT
[How well the candidate matches the specific job requirements%s]

OVERALL RECOMMENDATION
[Strong Match, Good Match, Weak Match, or Poor Match with detailed reasoning%s]

Important guidelines:
- Use gender-neutral pronouns (they/them) when referring to the candidate
- Do not use any markdown formatting, asterisks, bold, or italic text
- Use plain text with clear section headers
- Provide specific examples from the CV
- Be objective and professional in your assessment
- Focus on job-relevant qualifications and experience
%s- Do not include a main title since it will be added as a header`,
		criteriaSuffix(", highlighting alignment with custom criteria", ""),
		criteriaSuffix(", particularly regarding the custom criteria", ""),
		criteriaSuffix(" and custom criteria", ""),
		criteriaSuffix(" based on both job requirements and custom criteria", ""),
		criteriaSuffix("- Give significant weight to the custom evaluation criteria provided\n", ""))

	return b.String()
}

func buildDateExtractionPrompt(transcriptHead string) string {
	return fmt.Sprintf(`Analyze the following interview transcript and extract the interview date if mentioned:

Interview Transcript: %s...

Look for any mentions of dates, times, or scheduling information that indicates when this interview took place.
Common formats include:
- "Today is March 15, 2024"
- "This interview is being conducted on..."
- Date stamps or headers
- "Good morning, it's Tuesday, January 10th"
- Any other date references

If you find a date, respond with just the date in a clear format (e.g., "March 15, 2024" or "January 10, 2024").
If no date is found, respond with "%s".

Do not include any other text or explanation, just the date or "%s".`,
		transcriptHead, util.NoDateSentinel, util.NoDateSentinel)
}

func buildInterviewPrompt(req dto.EvaluateInterviewRequest, interviewDate string, hasDate bool) string {
	hasQuestions := strings.TrimSpace(req.Questions) != ""

	criteria := req.Criteria
	if strings.TrimSpace(criteria) == "" {
		criteria = "General job requirements"
	}

	questionsSection := `
Interview Questions/Focus Areas: No specific questions file was uploaded

GENERAL INTERVIEW ANALYSIS
Since no specific questions file was uploaded, analyze the overall interview performance based on the themes and topics discussed in the transcript.
`
	if hasQuestions {
		questionsSection = fmt.Sprintf(`
Interview Questions from Uploaded File:
%s

QUESTION-BY-QUESTION ANALYSIS
You must analyze the candidate's responses to the EXACT questions provided in the uploaded interview questions file above. Do not generate or assume questions. Only analyze responses to the questions that were actually provided in the uploaded file.

For each question found in the uploaded questions file, provide:
1. The exact question as stated in the uploaded file
2. How the candidate responded to that specific question (based on the transcript)
3. Assessment of their response quality and relevance
4. Specific strengths demonstrated in their answer
5. Areas where their response could be improved

If a question from the uploaded file was not addressed in the transcript, note that it was not covered.
`, req.Questions)
	}

	dateSection := ""
	if hasDate {
		dateSection = fmt.Sprintf("INTERVIEW DATE\n%s\n\n", interviewDate)
	}

	analysisHeader := "GENERAL INTERVIEW ANALYSIS"
	analysisBody := "[Analyze the overall interview performance based on the available transcript, focusing on key themes and responses that emerged during the conversation.]"
	analysisGuideline := "Focus on overall interview themes and responses"
	scoreExplanationExtra := ""
	recommendationExtra := ""
	if hasQuestions {
		analysisHeader = "QUESTION-BY-QUESTION ANALYSIS"
		analysisBody = `[CRITICAL: You must analyze responses to the EXACT questions provided in the uploaded interview questions file. Do not make up or assume questions. For each question in the uploaded file, provide:

Question: [Copy the exact question from the uploaded file]
Candidate Response Summary: [Summarize how the candidate actually responded to this specific question based on the transcript]
Assessment: [Evaluate the quality, completeness, and relevance of their actual response]
Strengths: [Specific positive aspects of their actual answer to this question]
Areas for Improvement: [Any gaps or concerns in their actual response to this question]

If a question from the uploaded file was not clearly addressed in the transcript, state: "This question was not clearly addressed in the interview transcript."

Repeat this format for each question found in the uploaded interview questions file.]`
		analysisGuideline = "CRITICAL: Only analyze responses to questions that were actually provided in the uploaded interview questions file. Do not generate, assume, or make up questions."
		scoreExplanationExtra = " Include how their responses to the specific uploaded questions influenced the scoring."
		recommendationExtra = " and responses to the specific uploaded questions"
	}

	return fmt.Sprintf(`Analyze the following interview transcript against the job requirements:

Job Description: %s

Evaluation Criteria: %s

%s

Interview Transcript: %s

Please provide a comprehensive interview evaluation in the following format (use plain text formatting, no markdown or special characters):

%sINTERVIEW SUMMARY
[Brief overview of the interview performance]

%s
%s

TECHNICAL COMPETENCY
[Assessment of technical skills and knowledge demonstrated during the interview]

COMMUNICATION & SOFT SKILLS
[Evaluation of communication abilities, interpersonal skills, and how they articulated their thoughts]

CULTURAL FIT
[Assessment of how well the candidate fits the company culture based on their responses and demeanor]

STRENGTHS
[Key positive points from the interview, with specific examples from the transcript]

AREAS OF CONCERN
[Any red flags, concerns, or weak responses identified during the interview]

OVERALL ASSESSMENT SCORE
Based on the comprehensive evaluation above, I assign this candidate a score of [X]/100.

Score Breakdown (out of 100 total):
- Technical Competency: [X]/35
- Communication Skills: [X]/35
- Cultural Fit: [X]/30

Score Explanation:
[Detailed explanation of how the score was calculated, referencing specific examples from the interview that contributed to each component of the score.%s Make sure the individual scores add up to the total score given.]

RECOMMENDATION
[Final recommendation: Hire, Maybe, or No Hire with detailed reasoning based on the interview performance%s]

Important guidelines:
- Use gender-neutral pronouns (they/them) when referring to the candidate
- Do not use any markdown formatting, asterisks, bold, or italic text
- Use plain text with clear section headers
- Provide specific examples from the interview transcript
- %s
- Be objective and professional in your assessment
- Reference specific quotes or responses from the transcript when possible
- CRITICAL: Make sure the three component scores (Technical Competency + Communication Skills + Cultural Fit) add up exactly to the total score given
- Use the scoring breakdown: Technical (35 points), Communication (35 points), Cultural Fit (30 points) = 100 total`,
		req.JobDescription, criteria, questionsSection, req.Transcript,
		dateSection, analysisHeader, analysisBody,
		scoreExplanationExtra, recommendationExtra, analysisGuideline)
}
