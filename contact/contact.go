// Package contact stores messages sent from the contact page.
package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"piwkina-shop/ids"
	"piwkina-shop/models"
	"piwkina-shop/store"
)

var ErrMissingInformation = errors.New("missing required contact fields")

type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

type Service struct {
	c        store.Collection
	ids      *ids.Generator
	validate *validator.Validate
}

func NewService(backend store.Backend, gen *ids.Generator) *Service {
	return &Service{
		c:        backend.Collection(store.ContactMessages),
		ids:      gen,
		validate: validator.New(),
	}
}

// Send stores the message for userID and returns its id.
func (s *Service) Send(ctx context.Context, userID string, form Form) (string, error) {
	if err := s.validate.Struct(form); err != nil {
		return "", ErrMissingInformation
	}
	msg := models.ContactMessage{
		ID:      s.ids.Next("msg"),
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Message: form.Message,
		UserID:  userID,
	}
	if err := s.c.Create(ctx, msg.Row()); err != nil {
		log.Error().Err(err).Str("id", msg.ID).Msg("failed to store contact message")
		return "", fmt.Errorf("store contact message: %w", err)
	}
	return msg.ID, nil
}
