package services

import "github.com/joshua-takyi/eventhub/internal/models"

// RatingStats aggregates a set of reviews. Average is zero and HasRating
// false when there are no reviews.
type RatingStats struct {
	Count   int
	Sum     int
	Average float64
}

func (s RatingStats) HasRating() bool { return s.Count > 0 }

func AggregateRatings(reviews []models.Review) RatingStats {
	var stats RatingStats
	for _, r := range reviews {
		stats.Sum += r.Rating
		stats.Count++
	}
	if stats.Count > 0 {
		stats.Average = float64(stats.Sum) / float64(stats.Count)
	}
	return stats
}
