package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/LavaJover/cognit-service/internal/domain"
)

var exportHeader = []string{
	"timestamp", "participant_id", "session_id", "image_id", "description",
	"word_count", "rating", "feedback", "time_spent_seconds",
	"is_practice", "is_survey", "is_attention", "attention_passed", "too_fast_flag",
	"quality_score", "user_agent", "ip_hash",
	"nasa_mental", "nasa_physical", "nasa_temporal",
	"nasa_performance", "nasa_effort", "nasa_frustration",
}

// ExportSubmissions writes every stored submission to w as CSV, header first.
// Rows are flushed as they are read so large exports never sit in memory.
func (uc *DefaultSubmissionUsecase) ExportSubmissions(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	rows := 0
	err := uc.SubmissionRepo.ExportSubmissions(ctx, func(participantID string, s *domain.Submission) error {
		if err := cw.Write(exportRecord(participantID, s)); err != nil {
			return err
		}
		rows++
		if rows%100 == 0 {
			cw.Flush()
			return cw.Error()
		}
		return nil
	})
	if err != nil {
		return err
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}

func exportRecord(participantID string, s *domain.Submission) []string {
	return []string{
		s.CreatedAt.UTC().Format(time.RFC3339),
		participantID,
		s.SessionID,
		s.ImageID,
		s.Description,
		strconv.Itoa(s.WordCount),
		strconv.Itoa(s.Rating),
		s.Feedback,
		optionalFloat(s.TimeSpentSeconds),
		strconv.FormatBool(s.IsPractice),
		strconv.FormatBool(s.IsSurvey),
		strconv.FormatBool(s.IsAttention),
		optionalBool(s.AttentionPassed),
		strconv.FormatBool(s.TooFastFlag),
		strconv.FormatFloat(s.QualityScore, 'f', 2, 64),
		s.UserAgent,
		s.IPHash,
		optionalInt(s.Workload.Mental),
		optionalInt(s.Workload.Physical),
		optionalInt(s.Workload.Temporal),
		optionalInt(s.Workload.Performance),
		optionalInt(s.Workload.Effort),
		optionalInt(s.Workload.Frustration),
	}
}

// Absent values export as empty cells.
func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func optionalBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
