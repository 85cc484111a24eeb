package models

import "piwkina-shop/store"

// MenuItem is one navigation entry; OrderIndex sorts ascending.
type MenuItem struct {
	ID         string `json:"id"`
	TitleEn    string `json:"titleEn"`
	TitleKa    string `json:"titleKa"`
	URL        string `json:"url"`
	OrderIndex int    `json:"orderIndex"`
	IsActive   bool   `json:"isActive"`
}

func (m MenuItem) Title(lang Language) string {
	return pick(lang, m.TitleEn, m.TitleKa)
}

func MenuItemFromRow(r store.Row) MenuItem {
	return MenuItem{
		ID:         r.ID(),
		TitleEn:    r.String("title_en"),
		TitleKa:    r.String("title_ka"),
		URL:        r.String("url"),
		OrderIndex: r.Int("order_index"),
		IsActive:   r.Flag("is_active"),
	}
}

func (m MenuItem) Row() store.Row {
	return store.Row{
		"title_en":    m.TitleEn,
		"title_ka":    m.TitleKa,
		"url":         m.URL,
		"order_index": m.OrderIndex,
		"is_active":   store.FlagValue(m.IsActive),
	}
}
