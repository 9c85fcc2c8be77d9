package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a unique-constraint violation surfaced to the
// caller (scrim code already in use, team name collision)
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents a missing or invalid viewer identity
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a viewer lacking the required role for the
// target team or scrim
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidStateError represents an action attempted against an entity in the
// wrong state, such as requesting a non-open scrim
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrGameProfileNotFound  = &NotFoundError{Entity: "game profile"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "team membership"}
	ErrTeamRequestNotFound  = &NotFoundError{Entity: "team request"}
	ErrScrimNotFound        = &NotFoundError{Entity: "scrim"}
	ErrScrimRequestNotFound = &NotFoundError{Entity: "scrim request"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Conflict Errors
var (
	ErrTeamNameTaken  = &ConflictError{Entity: "team", Context: "with this name"}
	ErrScrimCodeTaken = &ConflictError{Entity: "scrim code", Context: ""}
)

// Workflow Errors
var (
	// ErrAlreadyResolved is returned when responding to a request whose
	// status has left pending. Repeated responses are idempotent in effect
	// but reported as an error so callers do not claim false success.
	ErrAlreadyResolved = errors.New("request has already been resolved")

	// ErrDuplicateRequest is returned when a pending request already exists
	// for the same natural key.
	ErrDuplicateRequest = errors.New("a pending request already exists")

	// ErrCapacityExceeded is returned when a membership write would push a
	// user past the team cap.
	ErrCapacityExceeded = errors.New("user is already in the maximum number of teams")

	// ErrInvalidSelection is returned when a supplied participant id is not
	// on the relevant roster.
	ErrInvalidSelection = errors.New("selected player is not on this team")

	ErrAlreadyMember     = errors.New("user is already a member of this team")
	ErrNotRecruiting     = &InvalidStateError{Message: "team is not currently recruiting"}
	ErrNotLookingForTeam = &InvalidStateError{Message: "player is not currently looking for a team"}
	ErrScrimNotOpen      = &InvalidStateError{Message: "scrim is not open for new requests"}
	ErrOwnScrim          = &InvalidStateError{Message: "host team cannot request its own scrim"}
	ErrHostCannotLeave   = &InvalidStateError{Message: "hosts cannot leave their own scrim; disband it instead"}
	ErrOwnerCannotLeave  = &InvalidStateError{Message: "owners cannot leave the team; disband it instead"}
	ErrCannotKickSelf    = &InvalidStateError{Message: "use the leave action to remove yourself"}
)

// Authorization Errors
var (
	ErrViewerUnauthorized      = &AuthenticationError{Message: "viewer identity missing or invalid"}
	ErrNotTeamManager          = &AuthorizationError{Message: "viewer is not an owner or manager of this team"}
	ErrNotTeamMember           = &AuthorizationError{Message: "viewer is not a member of this team"}
	ErrNotTeamOwner            = &AuthorizationError{Message: "only the team owner may perform this action"}
	ErrNotRequestAddressee     = &AuthorizationError{Message: "viewer is not allowed to act on this request"}
	ErrManagerCannotTouchOwner = &AuthorizationError{Message: "managers cannot manage the owner"}
	ErrCannotSelfPromote       = &AuthorizationError{Message: "cannot change your own role to owner"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}
