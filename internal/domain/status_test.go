package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to preparing", StatusPending, StatusPreparing, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending skips to ready", StatusPending, StatusReady, false},
		{"pending skips to delivered", StatusPending, StatusDelivered, false},
		{"preparing to ready", StatusPreparing, StatusReady, true},
		{"preparing to cancelled", StatusPreparing, StatusCancelled, true},
		{"preparing back to pending", StatusPreparing, StatusPending, false},
		{"ready to delivered", StatusReady, StatusDelivered, true},
		{"ready to cancelled", StatusReady, StatusCancelled, true},
		{"ready back to preparing", StatusReady, StatusPreparing, false},
		{"delivered is absorbing", StatusDelivered, StatusPending, false},
		{"delivered cannot cancel", StatusDelivered, StatusCancelled, false},
		{"cancelled is absorbing", StatusCancelled, StatusPending, false},
		{"cancelled cannot deliver", StatusCancelled, StatusDelivered, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.allowed, testCase.from.CanTransitionTo(testCase.to))
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("shipped").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusPreparing.Terminal())
	assert.False(t, StatusReady.Terminal())
}
