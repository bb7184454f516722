package personnel

import "errors"

var (
	ErrPersonnelNotFound = errors.New("personnel not found")
	ErrInvalidPlanType   = errors.New("invalid compensation plan type")
)
