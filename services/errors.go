package services

import "errors"

var (
	ErrInvalidRange   = errors.New("range end is before range start")
	ErrUnknownPeriod  = errors.New("unknown period token")
	ErrMissingRange   = errors.New("period range requires from and to")
	ErrUnknownLottery = errors.New("lottery not found")
	ErrUnknownFamily  = errors.New("no ruleset registered for lottery family")
)
