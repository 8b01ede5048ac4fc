package services

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/validation"
)

type ReviewService struct {
	store  models.Store
	check  validation.Validator[models.Review]
	user   validation.Validator[models.User]
	event  validation.Validator[models.Event]
	opts   Options
	logger *slog.Logger
}

func NewReviewService(store models.Store, opts Options, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:  store,
		check:  validation.For[models.Review](apperr.EntityReview),
		user:   validation.For[models.User](apperr.EntityUser),
		event:  validation.For[models.Event](apperr.EntityEvent),
		opts:   opts,
		logger: logger.With("service", "ReviewService"),
	}
}

func (rs *ReviewService) checkRating(op string, rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return apperr.Invalid(apperr.EntityReview, op, "rating must be between %d and %d, got %d", models.MinRating, models.MaxRating, rating)
	}
	return nil
}

// normalizeComment trims the comment, maps blank to nil and enforces the
// configured length.
func (rs *ReviewService) normalizeComment(op string, comment *string) (*string, error) {
	comment = trimPtr(comment)
	if comment == nil || *comment == "" {
		return nil, nil
	}
	if n := utf8.RuneCountInString(*comment); n > rs.opts.MaxCommentLength {
		return nil, apperr.Invalid(apperr.EntityReview, op, "comment must be at most %d characters, got %d", rs.opts.MaxCommentLength, n)
	}
	return comment, nil
}

func (rs *ReviewService) resolveUser(ctx context.Context, op string, id int64) (*models.User, error) {
	if err := rs.user.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	user, err := rs.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, rs.user.CheckObjectExist(op, user, id)
}

func (rs *ReviewService) resolveEvent(ctx context.Context, op string, id int64) (*models.Event, error) {
	if err := rs.event.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	event, err := rs.store.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return event, rs.event.CheckObjectExist(op, event, id)
}

func (rs *ReviewService) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	const op = "ReviewService.CreateReview"
	if err := rs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	if err := rs.checkRating(op, req.Rating); err != nil {
		return nil, err
	}
	comment, err := rs.normalizeComment(op, req.Comment)
	if err != nil {
		return nil, err
	}

	user, err := rs.resolveUser(ctx, op, req.UserID)
	if err != nil {
		return nil, err
	}
	event, err := rs.resolveEvent(ctx, op, req.EventID)
	if err != nil {
		return nil, err
	}

	taken, err := rs.store.ReviewExists(ctx, user.ID, event.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(apperr.EntityReview, op, "user %d has already reviewed event %d", user.ID, event.ID)
	}

	review := &models.Review{
		UserID:  user.ID,
		EventID: event.ID,
		Rating:  req.Rating,
		Comment: comment,
	}
	if err := rs.store.CreateReview(ctx, review); err != nil {
		return nil, duplicateAsConflict(err, apperr.EntityReview, op, "user %d has already reviewed event %d", user.ID, event.ID)
	}
	return review, nil
}

func (rs *ReviewService) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	const op = "ReviewService.GetReview"
	if err := rs.check.CheckIDValid(op, id); err != nil {
		return nil, err
	}
	review, err := rs.store.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rs.check.CheckObjectExist(op, review, id); err != nil {
		return nil, err
	}
	return review, nil
}

func (rs *ReviewService) UpdateReview(ctx context.Context, id int64, req *models.UpdateReviewRequest) (*models.Review, error) {
	const op = "ReviewService.UpdateReview"
	if err := rs.check.CheckRequestNotNull(op, req); err != nil {
		return nil, err
	}
	if _, err := rs.GetReview(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Rating != nil {
		if err := rs.checkRating(op, *req.Rating); err != nil {
			return nil, err
		}
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		comment, err := rs.normalizeComment(op, req.Comment)
		if err != nil {
			return nil, err
		}
		updates["comment"] = comment
	}

	if err := rs.store.UpdateReview(ctx, id, updates); err != nil {
		return nil, err
	}
	return rs.GetReview(ctx, id)
}

func (rs *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	if _, err := rs.GetReview(ctx, id); err != nil {
		return err
	}
	return rs.store.DeleteReview(ctx, id)
}

func (rs *ReviewService) ListReviewsByEvent(ctx context.Context, eventID int64) ([]models.Review, error) {
	const op = "ReviewService.ListReviewsByEvent"
	if _, err := rs.resolveEvent(ctx, op, eventID); err != nil {
		return nil, err
	}
	return rs.store.ListReviewsByEvent(ctx, eventID)
}

func (rs *ReviewService) ListReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	const op = "ReviewService.ListReviewsByUser"
	if _, err := rs.resolveUser(ctx, op, userID); err != nil {
		return nil, err
	}
	return rs.store.ListReviewsByUser(ctx, userID)
}

// GetSummary recomputes the event's rating from its current reviews. An
// event without reviews yields NoResultsFound.
func (rs *ReviewService) GetSummary(ctx context.Context, eventID int64) (*models.ReviewSummary, error) {
	const op = "ReviewService.GetSummary"
	event, err := rs.resolveEvent(ctx, op, eventID)
	if err != nil {
		return nil, err
	}
	reviews, err := rs.store.ListReviewsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	stats := AggregateRatings(reviews)
	if !stats.HasRating() {
		return nil, apperr.NoResults(apperr.EntityReview, op, "event %d has no reviews", eventID)
	}
	return &models.ReviewSummary{
		EventID:       event.ID,
		EventName:     event.Name,
		AverageRating: stats.Average,
		TotalReviews:  stats.Count,
		Reviews:       reviews,
	}, nil
}
