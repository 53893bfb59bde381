package models

import "github.com/shopspring/decimal"

// QuizDetail is the quiz metadata and question bank for a single quiz.
type QuizDetail struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	Topic              string          `json:"topic"`
	Duration           int             `json:"duration,omitempty"`
	NegativeMarks      decimal.Decimal `json:"negative_marks"`
	CorrectAnswerMarks decimal.Decimal `json:"correct_answer_marks"`
	QuestionsCount     int             `json:"questions_count"`
	Questions          []Question      `json:"questions,omitempty"`
}

// Question returns the question with the given ID.
func (q QuizDetail) Question(id int) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == int64(id) {
			return question, true
		}
	}
	return Question{}, false
}
