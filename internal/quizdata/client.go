// Package quizdata provides read-only access to the quiz fixture files that
// stand in for the upstream quiz service.
package quizdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"neet-rank-predictor/internal/models"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	HistoryFile    = "api_endpoint.json"
	SubmissionFile = "quiz_submission.json"
	QuizFile       = "quiz_endpoint.json"

	DefaultDataDir = "data/mock"
)

// FixtureFiles lists every file the client reads from its data directory.
var FixtureFiles = []string{HistoryFile, SubmissionFile, QuizFile}

// Client loads quiz fixtures from a directory. A missing fixture file is
// treated as "no data", never as an error.
type Client struct {
	dataDir string
}

func NewClient(dataDir string) *Client {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	return &Client{dataDir: dataDir}
}

func (c *Client) DataDir() string {
	return c.dataDir
}

// GetHistoricalQuizData returns the user's attempts in fixture order. The
// result is empty, not nil, when the user has no attempts.
func (c *Client) GetHistoricalQuizData(ctx context.Context, userID string) ([]models.QuizAttempt, error) {
	raw, found, err := c.read(ctx, HistoryFile)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.QuizAttempt{}, nil
	}

	schemas, err := loadSchemas()
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &ErrFixture{File: HistoryFile, Err: err}
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, &ErrFixture{File: HistoryFile, Err: errors.New("expected a JSON array of attempts")}
	}
	for i, item := range items {
		if err := schemas.attempt.Validate(item); err != nil {
			return nil, &ErrFixture{File: HistoryFile, Err: fmt.Errorf("record %d: %w", i, err)}
		}
	}

	var attempts []models.QuizAttempt
	if err := json.Unmarshal(raw, &attempts); err != nil {
		return nil, &ErrFixture{File: HistoryFile, Err: err}
	}

	matched := make([]models.QuizAttempt, 0, len(attempts))
	for _, a := range attempts {
		if a.UserID == userID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// GetCurrentQuizSubmission returns the latest submission if it belongs to userID.
func (c *Client) GetCurrentQuizSubmission(ctx context.Context, userID string) (models.QuizAttempt, bool, error) {
	raw, found, err := c.read(ctx, SubmissionFile)
	if err != nil || !found {
		return models.QuizAttempt{}, false, err
	}

	schemas, err := loadSchemas()
	if err != nil {
		return models.QuizAttempt{}, false, err
	}
	if err := validate(schemas.attempt, SubmissionFile, raw); err != nil {
		return models.QuizAttempt{}, false, err
	}

	var attempt models.QuizAttempt
	if err := json.Unmarshal(raw, &attempt); err != nil {
		return models.QuizAttempt{}, false, &ErrFixture{File: SubmissionFile, Err: err}
	}
	if attempt.UserID != userID {
		return models.QuizAttempt{}, false, nil
	}
	return attempt, true, nil
}

// GetQuizDetails returns the quiz metadata if the fixture describes quizID.
func (c *Client) GetQuizDetails(ctx context.Context, quizID int64) (models.QuizDetail, bool, error) {
	raw, found, err := c.read(ctx, QuizFile)
	if err != nil || !found {
		return models.QuizDetail{}, false, err
	}

	schemas, err := loadSchemas()
	if err != nil {
		return models.QuizDetail{}, false, err
	}
	if err := validate(schemas.quizDetail, QuizFile, raw); err != nil {
		return models.QuizDetail{}, false, err
	}

	var envelope struct {
		Quiz models.QuizDetail `json:"quiz"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return models.QuizDetail{}, false, &ErrFixture{File: QuizFile, Err: err}
	}
	if envelope.Quiz.ID != quizID {
		return models.QuizDetail{}, false, nil
	}
	return envelope.Quiz, true, nil
}

// ParseResponseMap converts a response map into (question, option) pairs in
// map order. Any key that is not a base-10 integer fails the whole parse.
func ParseResponseMap(responses models.ResponseMap) ([]models.ParsedResponse, error) {
	parsed := make([]models.ParsedResponse, 0, len(responses))
	for _, r := range responses {
		questionID, err := strconv.Atoi(r.QuestionID)
		if err != nil {
			return nil, &ErrMalformedResponse{QuestionID: r.QuestionID, Err: err}
		}
		parsed = append(parsed, models.ParsedResponse{
			QuestionID:       questionID,
			SelectedOptionID: r.OptionID,
		})
	}
	return parsed, nil
}

// CheckDataDir reports whether the data directory exists and logs any
// fixture files missing from it. Missing files are not an error; a fixture
// that exists but cannot be stat'ed is.
func (c *Client) CheckDataDir() ([]string, error) {
	info, err := os.Stat(c.dataDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, c.dataDir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDataDirNotFound, c.dataDir)
	}

	var missing []string
	for _, name := range FixtureFiles {
		_, err := os.Stat(filepath.Join(c.dataDir, name))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("quizdata: fixture %s not found in %s", name, c.dataDir)
			missing = append(missing, name)
		case err != nil:
			return nil, &ErrFixture{File: name, Err: err}
		}
	}
	return missing, nil
}

func (c *Client) read(ctx context.Context, name string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	raw, err := os.ReadFile(filepath.Join(c.dataDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &ErrFixture{File: name, Err: err}
	}
	return raw, true, nil
}

func validate(schema *jsonschema.Schema, name string, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrFixture{File: name, Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		return &ErrFixture{File: name, Err: err}
	}
	return nil
}
