package statemachine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"piwkina-shop/models"
)

func TestPendingOrdersCanCompleteOrCancel(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPending, models.StatusCompleted, ActorAdmin))
	assert.NoError(t, CanTransition(models.StatusPending, models.StatusCancelled, ActorAdmin))
	assert.Equal(t,
		[]models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPending))
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	for _, from := range []models.OrderStatus{models.StatusCompleted, models.StatusCancelled} {
		assert.True(t, IsTerminal(from))
		err := CanTransition(from, models.StatusPending, ActorAdmin)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
		assert.Contains(t, err.Error(), "none (terminal state)")
	}
}

func TestOnlyAdminMovesOrders(t *testing.T) {
	err := CanTransition(models.StatusPending, models.StatusCancelled, "customer")
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}
