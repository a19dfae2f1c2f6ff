package apierrors

import "errors"

// Error messages for Internship API
var (
	ErrInternshipNotFound         = errors.New("internship not found")
	ErrApplicationNotFound        = errors.New("application not found")
	ErrLogbookEntryNotFound       = errors.New("logbook entry not found")
	ErrCertificateNotFound        = errors.New("certificate not found")
	ErrDeleteInternshipNotFound   = errors.New("internship not found")
	ErrDeleteOpenInternship       = errors.New("unable to delete an internship that has been opened for applications")
	ErrAddInternshipAlreadyExists = errors.New("forbidden - internship already exists")
	ErrApplicationAlreadyExists   = errors.New("forbidden - student has already applied to this internship")
	ErrInternshipClosed           = errors.New("forbidden - internship is not open for applications")
	ErrApplicationDeadlinePassed  = errors.New("forbidden - the application deadline has passed")
	ErrInternshipFull             = errors.New("forbidden - all internship slots have been filled")
	ErrCertificateNotEarned       = errors.New("forbidden - application is not completed with an approved logbook")
	ErrCertificateAlreadyIssued   = errors.New("forbidden - a certificate has already been issued for this application")
	ErrCertificateTokenInvalid    = errors.New("certificate verification token is not valid")
	ErrResourceState              = errors.New("incorrect resource state")
	ErrApplicationStateInvalid    = errors.New("invalid application status transition")
	ErrMissingParameters          = errors.New("missing properties in request body")
	ErrInvalidQueryParameter      = errors.New("invalid query parameter")
	ErrTooManyQueryParameters     = errors.New("too many query parameters have been provided")
	ErrUnableToParseJSON          = errors.New("failed to parse json body")
	ErrUnableToReadMessage        = errors.New("failed to read message body")
	ErrUnauthorised               = errors.New("unauthorised access to API")
	ErrApplicationConflict        = errors.New("conflict between the requested and existing application resource")
	ErrSlotsBelowFilled           = errors.New("conflict - slots cannot be reduced below the number of slots already filled")
	ErrInternalServer             = errors.New("internal error")

	NotFoundMap = map[error]bool{
		ErrInternshipNotFound:   true,
		ErrApplicationNotFound:  true,
		ErrLogbookEntryNotFound: true,
		ErrCertificateNotFound:  true,
	}

	BadRequestMap = map[error]bool{
		ErrMissingParameters:      true,
		ErrInvalidQueryParameter:  true,
		ErrTooManyQueryParameters: true,
		ErrUnableToParseJSON:      true,
		ErrUnableToReadMessage:    true,
	}

	ConflictRequestMap = map[error]bool{
		ErrApplicationConflict: true,
		ErrSlotsBelowFilled:    true,
	}

	ForbiddenMap = map[error]bool{
		ErrAddInternshipAlreadyExists: true,
		ErrApplicationAlreadyExists:   true,
		ErrInternshipClosed:           true,
		ErrApplicationDeadlinePassed:  true,
		ErrInternshipFull:             true,
		ErrCertificateNotEarned:       true,
		ErrCertificateAlreadyIssued:   true,
		ErrDeleteOpenInternship:       true,
		ErrResourceState:              true,
		ErrApplicationStateInvalid:    true,
	}
)
