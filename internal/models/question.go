package models

type Question struct {
	ID               int64    `json:"id"`
	Description      string   `json:"description"`
	Topic            string   `json:"topic,omitempty"`
	DifficultyLevel  string   `json:"difficulty_level,omitempty"`
	DetailedSolution string   `json:"detailed_solution,omitempty"`
	Options          []Option `json:"options,omitempty"`
}
