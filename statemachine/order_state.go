package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"piwkina-shop/models"
)

// ErrInvalidTransition is wrapped by every rejected transition.
var ErrInvalidTransition = errors.New("invalid transition")

// ActorAdmin is the only actor allowed to move orders after checkout.
const ActorAdmin = "admin"

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor string             `json:"actor"`
}

// validTransitions is the authoritative state machine definition.
// Orders are created pending at checkout; completed and cancelled are terminal.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusCompleted, Actor: ActorAdmin},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorAdmin},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("%w: %s → %s is not allowed for actor '%s'; valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, actor, from, describeValidFrom(from))
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
