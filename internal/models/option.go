package models

type Option struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	IsCorrect   bool   `json:"is_correct"`
}
