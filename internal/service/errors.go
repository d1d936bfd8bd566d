package service

import "errors"

// Error definitions shared across the stock services. All of them are
// terminal for the triggering command: nothing is mutated, nothing is
// retried here.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidDestination = errors.New("destination must be an existing outlet")
	ErrOutletNotFound     = errors.New("outlet not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrEmptyItems         = errors.New("items must contain at least one line")
	ErrEmptyRequest       = errors.New("request must contain at least one item")
	ErrRequestNotFound    = errors.New("stock request not found")
	ErrRequestNotPending  = errors.New("only pending requests can change status")
	ErrInvalidStatus      = errors.New("status must be FULFILLED or REJECTED")
)

// Broadcaster pushes advisory stock-update payloads to listening
// clients. Implemented by ws.Hub; tests swap in a recorder.
type Broadcaster interface {
	Publish(payload interface{})
}
