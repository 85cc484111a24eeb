package models

import "piwkina-shop/store"

type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func (m ContactMessage) Row() store.Row {
	return store.Row{
		"id":      m.ID,
		"name":    m.Name,
		"email":   m.Email,
		"phone":   store.NullString(m.Phone),
		"message": m.Message,
		"user_id": m.UserID,
	}
}
