package services

import "errors"

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrShipmentNotFound   = errors.New("shipment not found or invitee not matched")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrCompanyNotFound    = errors.New("company profile not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidDecision    = errors.New("invalid decision")
	ErrInvalidRole        = errors.New("invalid role")

	// ErrDuplicateKey is returned by stores when a unique index rejects a
	// write.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ValidationError marks client errors on required or malformed fields.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
