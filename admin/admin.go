// Package admin implements the back-office screens: products, orders, menus
// and pages. Every screen follows the same pattern of list, save, toggle and
// confirmed delete against one collection; callers reload the list after
// each change.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"piwkina-shop/models"
	"piwkina-shop/money"
	"piwkina-shop/store"
)

var (
	ErrMissingInformation = errors.New("missing required fields")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotConfirmed       = errors.New("delete not confirmed")
)

// Identity resolves the admin that owns a saved row.
type Identity interface {
	Me(ctx context.Context) (*models.User, error)
}

var validate = validator.New()

// validateForm reports ErrMissingInformation when a required field is empty
// and ErrInvalidInput for any other rule.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return ErrMissingInformation
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, fieldErrs[0].Field())
}

// Number accepts a JSON number or a numeric string, the way form inputs
// deliver prices.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: not a number", ErrInvalidInput)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !money.Finite(f) {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	*n = Number(f)
	return nil
}

func listAll[T any](ctx context.Context, c store.Collection, q store.Query, conv func(store.Row) T) ([]T, error) {
	rows, err := c.List(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = conv(r)
	}
	return out, nil
}

// save updates id when set, otherwise creates a row under newID. The caller's
// user id is stamped on the row either way.
func save(ctx context.Context, c store.Collection, me Identity, id, newID string, row store.Row) (string, error) {
	user, err := me.Me(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve user: %w", err)
	}
	row["user_id"] = user.ID
	if id != "" {
		if err := c.Update(ctx, id, row); err != nil {
			return "", err
		}
		return id, nil
	}
	row["id"] = newID
	if err := c.Create(ctx, row); err != nil {
		return "", err
	}
	return newID, nil
}

// toggle flips a flag column and returns its new value.
func toggle(ctx context.Context, c store.Collection, id, field string) (bool, error) {
	row, err := store.FindByID(ctx, c, id)
	if err != nil {
		return false, err
	}
	next := !row.Flag(field)
	if err := c.Update(ctx, id, store.Row{field: store.FlagValue(next)}); err != nil {
		return false, err
	}
	return next, nil
}

func remove(ctx context.Context, c store.Collection, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	return c.Delete(ctx, id)
}

// logFailure records a failed remote operation.
func logFailure(err error, op, entity, id string) {
	log.Error().Err(err).Str("op", op).Str("entity", entity).Str("id", id).Msg("admin operation failed")
}
