package simulator

import "github.com/artem13815/skilllens/pkg/nlp"

const (
	quickSeconds = 300
	slowSeconds  = 600
)

// GradeSubmission scores answers against the bank. Unknown question ids are
// skipped and answers must match exactly.
func GradeSubmission(questions []Question, answers []Answer, timeTaken int) Grade {
	byID := make(map[string]Question, len(questions))
	total := 0
	for _, q := range questions {
		byID[q.ID] = q
		total += q.Points
	}

	g := Grade{
		TotalPoints:    total,
		TotalQuestions: len(questions),
		TimeTaken:      timeTaken,
		Feedback:       make([]Feedback, 0, len(answers)),
	}
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		correct := a.Answer == q.CorrectAnswer
		fb := Feedback{
			QuestionID:    a.QuestionID,
			Correct:       correct,
			YourAnswer:    a.Answer,
			CorrectAnswer: q.CorrectAnswer,
		}
		if correct {
			g.Score += q.Points
			g.CorrectAnswers++
			fb.PointsEarned = q.Points
		}
		g.Feedback = append(g.Feedback, fb)
	}
	if total > 0 {
		g.Percentage = nlp.Round2(float64(g.Score) / float64(total) * 100)
	}

	n := float64(len(questions))
	correct := float64(g.CorrectAnswers)
	if correct >= 0.8*n {
		g.Strengths = append(g.Strengths, "Excellent decision-making skills")
	}
	if timeTaken < quickSeconds {
		g.Strengths = append(g.Strengths, "Quick thinking under pressure")
	}
	if correct >= 0.6*n {
		g.Strengths = append(g.Strengths, "Good understanding of workplace scenarios")
	}
	if correct < 0.6*n {
		g.Improvements = append(g.Improvements, "Review workplace communication best practices")
	}
	if g.Percentage < 60 {
		g.Improvements = append(g.Improvements, "Practice more scenario-based exercises")
	}
	if timeTaken > slowSeconds {
		g.Improvements = append(g.Improvements, "Work on faster decision-making")
	}
	if len(g.Strengths) == 0 {
		g.Strengths = []string{"Keep practicing to build strengths"}
	}
	if len(g.Improvements) == 0 {
		g.Improvements = []string{"Great job! Keep it up"}
	}
	return g
}
