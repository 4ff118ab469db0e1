package complaint

import "servicehub/internal/pkg/apperr"

var (
	ErrTypeRequired        = apperr.New(apperr.KindValidation, "complaint type is required")
	ErrDescriptionRequired = apperr.New(apperr.KindValidation, "please describe the issue")
	ErrInvalidStatus       = apperr.New(apperr.KindValidation, "unknown complaint status")
)
