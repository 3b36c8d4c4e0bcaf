package quiz

// Outcome is the grading result for one question.
type Outcome struct {
	Index     int    `json:"index"`
	Chosen    string `json:"chosen,omitempty"`
	Correct   string `json:"correct"`
	Answered  bool   `json:"answered"`
	IsCorrect bool   `json:"is_correct"`
}

// Report summarizes a graded quiz.
type Report struct {
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	Outcomes []Outcome `json:"results"`
}

// Grade counts the questions whose chosen option equals Correct exactly.
// Unanswered questions and answers for out-of-range indices never count.
func Grade(set Set, answers Answers) int {
	score := 0
	for i, q := range set {
		if chosen, ok := answers[i]; ok && chosen == q.Correct {
			score++
		}
	}
	return score
}

// GradeReport grades set and returns per-question outcomes in order.
func GradeReport(set Set, answers Answers) Report {
	r := Report{Total: len(set), Outcomes: make([]Outcome, len(set))}
	for i, q := range set {
		chosen, answered := answers[i]
		o := Outcome{
			Index:     i,
			Chosen:    chosen,
			Correct:   q.Correct,
			Answered:  answered,
			IsCorrect: answered && chosen == q.Correct,
		}
		if o.IsCorrect {
			r.Score++
		}
		r.Outcomes[i] = o
	}
	return r
}
