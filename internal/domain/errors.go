package domain

import "errors"

var (
	ErrMonitoringActive   = errors.New("monitoring session is active")
	ErrMonitoringInactive = errors.New("monitoring session is not active")
	ErrExecutionInFlight  = errors.New("enforcement execution already in flight")
	ErrInvalidMode        = errors.New("invalid session mode")
)
