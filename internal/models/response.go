package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResponseEntry is one raw question -> selected option pair.
type ResponseEntry struct {
	QuestionID string
	OptionID   int64
}

// ResponseMap maps question IDs (as text) to selected option IDs. It is a
// slice rather than a map so that JSON document order survives decoding.
type ResponseMap []ResponseEntry

func (m *ResponseMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("response map: expected object, got %v", tok)
	}

	entries := ResponseMap{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("response map: expected key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("response map: question %q: %w", key, err)
		}
		if bytes.Equal(raw, []byte("null")) {
			return fmt.Errorf("response map: question %q: missing option id", key)
		}
		var optionID int64
		if err := json.Unmarshal(raw, &optionID); err != nil {
			return fmt.Errorf("response map: question %q: %w", key, err)
		}
		entries = append(entries, ResponseEntry{QuestionID: key, OptionID: optionID})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = entries
	return nil
}

func (m ResponseMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.QuestionID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", e.OptionID)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParsedResponse is a response map entry with the question ID coerced to an integer.
type ParsedResponse struct {
	QuestionID       int   `json:"question_id"`
	SelectedOptionID int64 `json:"selected_option_id"`
}

// QuizResponse is a parsed response scored against the quiz question bank.
type QuizResponse struct {
	QuestionID       int    `json:"question_id"`
	SelectedOptionID int64  `json:"selected_option_id"`
	IsCorrect        bool   `json:"is_correct"`
	Topic            string `json:"topic"`
	DifficultyLevel  string `json:"difficulty_level"`
}
