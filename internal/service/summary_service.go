package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/suar-net/summaries/internal/model"
)

const (
	// MaxSummaryWords is the number of leading words kept in a summary.
	MaxSummaryWords = 10

	// TimestampLayout is ISO-8601 with microseconds and a numeric offset,
	// so UTC renders as "+00:00" rather than "Z".
	TimestampLayout = "2006-01-02T15:04:05.000000-07:00"
)

// Words splits text into maximal runs of non-whitespace characters.
func Words(text string) []string {
	return strings.Fields(text)
}

// Summarize keeps the first n words of text, joined by single spaces.
func Summarize(text string, n int) string {
	words := Words(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

type SummaryService struct {
	clock Clock
}

func NewSummaryService(clock Clock) *SummaryService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &SummaryService{clock: clock}
}

// CreateSummary truncates the request text and stamps it with the current UTC time.
func (s *SummaryService) CreateSummary(ctx context.Context, dto *model.DTOSummaryRequest) (*model.DTOSummaryResponse, error) {
	if dto == nil {
		return nil, fmt.Errorf("%w: request body is missing", ErrInvalidInput)
	}

	return &model.DTOSummaryResponse{
		Summary:   Summarize(dto.Text, MaxSummaryWords),
		Timestamp: FormatTimestamp(s.clock.Now()),
	}, nil
}
