package category

import "servicehub/internal/pkg/apperr"

var (
	ErrNameRequired = apperr.New(apperr.KindValidation, "category name is required")
	// ErrCategoryInUse mirrors the server's foreign-key constraint so a
	// guaranteed-to-fail DELETE is never issued.
	ErrCategoryInUse = apperr.New(apperr.KindValidation, "cannot delete a category that still has services")
)
