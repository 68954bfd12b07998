package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitionTable(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	all := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	for from, targets := range allowed {
		permitted := map[Status]bool{}
		for _, to := range targets {
			permitted[to] = true
		}
		for _, to := range all {
			got := from.CanTransitionTo(to)
			assert.Equal(t, permitted[to], got, "%s -> %s", from, to)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestCompletedNeverReopens(t *testing.T) {
	// completed -> pending is the classic illegal edit
	assert.False(t, StatusCompleted.CanTransitionTo(StatusPending))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseStatus("archived")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestUnknownStatusIsTerminalAndInvalid(t *testing.T) {
	unknown := Status("archived")
	assert.False(t, unknown.IsValid())
	assert.True(t, unknown.IsTerminal())
	assert.False(t, unknown.CanTransitionTo(StatusPending))
}
