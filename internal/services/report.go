package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"neet-rank-predictor/internal/config"
	"neet-rank-predictor/internal/models"
	"neet-rank-predictor/internal/quizdata"
)

var (
	// ErrNoQuizData means the user has no quiz data to report on.
	ErrNoQuizData = errors.New("no quiz data found for user")
	// ErrQuizNotFound means the quiz a submission refers to has no details.
	ErrQuizNotFound = errors.New("quiz details not found")
)

// QuizSource is the read side of the quiz fixtures.
type QuizSource interface {
	GetHistoricalQuizData(ctx context.Context, userID string) ([]models.QuizAttempt, error)
	GetCurrentQuizSubmission(ctx context.Context, userID string) (models.QuizAttempt, bool, error)
	GetQuizDetails(ctx context.Context, quizID int64) (models.QuizDetail, bool, error)
}

// ReportService combines the quiz source with the analysis components to
// build every report the API serves.
type ReportService struct {
	source    QuizSource
	processor *DataProcessor
	analyzer  *PerformanceAnalyzer
	insights  *InsightGenerator
	predictor *RankPredictor
	charts    *ChartGenerator
	scoring   *ScoringService
	now       func() time.Time
}

func NewReportService(source QuizSource, table *config.RankTable) *ReportService {
	return &ReportService{
		source:    source,
		processor: NewDataProcessor(),
		analyzer:  NewPerformanceAnalyzer(),
		insights:  NewInsightGenerator(table.NEETTopics),
		predictor: NewRankPredictor(table),
		charts:    NewChartGenerator(),
		scoring:   NewScoringService(),
		now:       time.Now,
	}
}

// history loads and converts the user's attempts, optionally followed by
// the current submission. It returns ErrNoQuizData when nothing is found.
func (s *ReportService) history(ctx context.Context, userID string, withCurrent bool) ([]models.QuizSubmission, error) {
	attempts, err := s.source.GetHistoricalQuizData(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load quiz history: %w", err)
	}

	processed := s.processor.ProcessHistorical(attempts)
	if withCurrent {
		current, found, err := s.source.GetCurrentQuizSubmission(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load current submission: %w", err)
		}
		if found {
			submission, err := s.processor.Preprocess(current)
			if err != nil {
				return nil, fmt.Errorf("process current submission: %w", err)
			}
			processed = append(processed, submission)
		}
	}

	if len(processed) == 0 {
		log.Printf("report: no quiz data for user %s", userID)
		return nil, ErrNoQuizData
	}
	return processed, nil
}

func (s *ReportService) performance(ctx context.Context, userID string, withCurrent bool) (*models.StudentPerformance, error) {
	history, err := s.history(ctx, userID, withCurrent)
	if err != nil {
		return nil, err
	}
	return s.analyzer.Analyze(history)
}

// Analysis covers the quiz history and the current submission.
func (s *ReportService) Analysis(ctx context.Context, userID string) (*models.StudentPerformance, error) {
	return s.performance(ctx, userID, true)
}

// Insights covers the quiz history only.
func (s *ReportService) Insights(ctx context.Context, userID string) (models.InsightReport, error) {
	history, err := s.history(ctx, userID, false)
	if err != nil {
		return models.InsightReport{}, err
	}
	return s.insights.GenerateReport(history), nil
}

// Prediction covers the quiz history only.
func (s *ReportService) Prediction(ctx context.Context, userID string) (models.RankPrediction, error) {
	perf, err := s.performance(ctx, userID, false)
	if err != nil {
		return models.RankPrediction{}, err
	}
	prediction := s.predictor.PredictRank(perf)
	prediction.UserID = userID
	prediction.RecommendedColleges = s.predictor.RecommendColleges(prediction.PredictedRank)
	return prediction, nil
}

// Visualizations covers the quiz history and the current submission.
func (s *ReportService) Visualizations(ctx context.Context, userID string) (models.Visualizations, error) {
	perf, err := s.performance(ctx, userID, true)
	if err != nil {
		return models.Visualizations{}, err
	}
	return s.charts.Visualizations(perf), nil
}

func (s *ReportService) Summary(ctx context.Context, userID string) (models.Summary, error) {
	analysis, err := s.Analysis(ctx, userID)
	if err != nil {
		return models.Summary{}, err
	}
	insights, err := s.Insights(ctx, userID)
	if err != nil {
		return models.Summary{}, err
	}
	prediction, err := s.Prediction(ctx, userID)
	if err != nil {
		return models.Summary{}, err
	}
	visualizations, err := s.Visualizations(ctx, userID)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summary{
		Analysis:       analysis,
		Insights:       insights,
		Predictions:    prediction,
		Visualizations: visualizations,
		GeneratedAt:    s.now(),
	}, nil
}

// CurrentResponses scores the user's current submission against its quiz.
func (s *ReportService) CurrentResponses(ctx context.Context, userID string) (models.ScoredSubmission, error) {
	current, found, err := s.source.GetCurrentQuizSubmission(ctx, userID)
	if err != nil {
		return models.ScoredSubmission{}, fmt.Errorf("load current submission: %w", err)
	}
	if !found {
		return models.ScoredSubmission{}, ErrNoQuizData
	}

	quiz, found, err := s.source.GetQuizDetails(ctx, current.QuizID)
	if err != nil {
		return models.ScoredSubmission{}, fmt.Errorf("load quiz %d: %w", current.QuizID, err)
	}
	if !found {
		return models.ScoredSubmission{}, fmt.Errorf("%w: quiz %d", ErrQuizNotFound, current.QuizID)
	}

	parsed, err := quizdata.ParseResponseMap(current.ResponseMap)
	if err != nil {
		return models.ScoredSubmission{}, err
	}
	responses := s.scoring.ScoreResponses(quiz, parsed)

	result := models.ScoredSubmission{
		UserID:    userID,
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		Responses: responses,
		Marks:     s.scoring.CalculateMarks(quiz, responses).InexactFloat64(),
	}
	for _, r := range responses {
		if r.IsCorrect {
			result.Correct++
		} else {
			result.Incorrect++
		}
	}
	return result, nil
}
