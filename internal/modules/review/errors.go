package review

import "servicehub/internal/pkg/apperr"

var ErrInvalidRating = apperr.New(apperr.KindValidation, "rating must be between 1 and 5")
