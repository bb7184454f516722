package payroll

import "errors"

var (
	ErrPaymentNotFound      = errors.New("salary payment not found")
	ErrPaymentAlreadyExists = errors.New("salary payment already exists for this period")
	ErrPaymentAlreadyPaid   = errors.New("salary payment already paid, cannot modify")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
