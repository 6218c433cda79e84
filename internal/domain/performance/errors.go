package performance

import "errors"

var (
	ErrGoalNotFound         = errors.New("goal not found")
	ErrReviewNotFound       = errors.New("performance review not found")
	ErrInvalidRating        = errors.New("ratings must be between 1 and 5")
	ErrPromotionNotFound    = errors.New("promotion not found")
	ErrPromotionNotApproved = errors.New("promotion must be approved before implementing")
)
