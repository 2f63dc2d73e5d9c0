package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHours(t *testing.T) {
	assert.NoError(t, validateHours("06:00", "22:00"))

	assert.ErrorIs(t, validateHours("6am", "22:00"), ErrInvalidOpeningHours)
	assert.ErrorIs(t, validateHours("22:00", "06:00"), ErrInvalidOpeningHours)
	assert.ErrorIs(t, validateHours("06:00", "06:00"), ErrInvalidOpeningHours)

	// Non-padded hours would break the lexicographic availability checks.
	assert.ErrorIs(t, validateHours("9:00", "22:00"), ErrInvalidOpeningHours)
	assert.ErrorIs(t, validateHours("09:00", "9:30"), ErrInvalidOpeningHours)
}
