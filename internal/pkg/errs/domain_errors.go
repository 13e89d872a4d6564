package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Lead errors
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidStatus = errors.New("invalid lead status")

	// Newsletter errors
	ErrSubscriberNotFound  = errors.New("subscriber not found")
	ErrDuplicateSubscriber = errors.New("email already subscribed")
	ErrWelcomeAlreadySent  = errors.New("welcome email already sent")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrMailDeliveryFailed      = errors.New("mail delivery failed")
)
