package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindHelpers(t *testing.T) {
	assert.True(t, IsNotFound(ErrTeamNotFound))
	assert.True(t, IsConflict(ErrTeamNameTaken))
	assert.True(t, IsInvalidState(ErrScrimNotOpen))
	assert.True(t, IsAuthorization(ErrNotTeamManager))
	assert.True(t, IsAuthentication(ErrViewerUnauthorized))
	assert.True(t, IsValidation(NewValidationError("role", "bad role")))

	assert.False(t, IsNotFound(ErrTeamNameTaken))
	assert.False(t, IsConflict(ErrTeamNotFound))
	assert.False(t, IsAuthorization(ErrScrimNotOpen))
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading roster: %w", ErrMembershipNotFound)
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, ErrMembershipNotFound))

	doubly := fmt.Errorf("respond: %w", fmt.Errorf("update: %w", ErrAlreadyResolved))
	assert.True(t, errors.Is(doubly, ErrAlreadyResolved))
}

func TestNotFoundErrorMatchesByEntity(t *testing.T) {
	assert.True(t, errors.Is(NewNotFoundError("team"), ErrTeamNotFound))
	assert.False(t, errors.Is(NewNotFoundError("scrim"), ErrTeamNotFound))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "team not found", ErrTeamNotFound.Error())
	assert.Contains(t, ErrCapacityExceeded.Error(), "maximum number of teams")
	assert.Contains(t, NewValidationError("role", "must be manager or member").Error(), "role")
}
