package interviewapimodels

import (
	"math"

	"interview-tracker-backend/models"
)

type InterviewStats struct {
	Total       int64 `json:"total"`
	Completed   int64 `json:"completed"`
	Scheduled   int64 `json:"scheduled"`
	Pending     int64 `json:"pending"`
	Cancelled   int64 `json:"cancelled"`
	SuccessRate int   `json:"successRate"` // completed share of total, percent
}

func NewInterviewStats(counts map[models.InterviewStatus]int64) InterviewStats {
	stats := InterviewStats{
		Completed: counts[models.InterviewStatusCompleted],
		Scheduled: counts[models.InterviewStatusScheduled],
		Pending:   counts[models.InterviewStatusPending],
		Cancelled: counts[models.InterviewStatusCancelled],
	}
	for _, count := range counts {
		stats.Total += count
	}
	if stats.Total > 0 {
		stats.SuccessRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}
