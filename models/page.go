package models

import (
	"time"

	"piwkina-shop/store"
)

type Page struct {
	ID          string    `json:"id"`
	TitleEn     string    `json:"titleEn"`
	TitleKa     string    `json:"titleKa"`
	Slug        string    `json:"slug"`
	ContentEn   string    `json:"contentEn,omitempty"`
	ContentKa   string    `json:"contentKa,omitempty"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p Page) Title(lang Language) string {
	return pick(lang, p.TitleEn, p.TitleKa)
}

func (p Page) Content(lang Language) string {
	return pick(lang, p.ContentEn, p.ContentKa)
}

func PageFromRow(r store.Row) Page {
	return Page{
		ID:          r.ID(),
		TitleEn:     r.String("title_en"),
		TitleKa:     r.String("title_ka"),
		Slug:        r.String("slug"),
		ContentEn:   r.String("content_en"),
		ContentKa:   r.String("content_ka"),
		IsPublished: r.Flag("is_published"),
		CreatedAt:   r.Time("created_at"),
		UpdatedAt:   r.Time("updated_at"),
	}
}

func (p Page) Row() store.Row {
	return store.Row{
		"title_en":     p.TitleEn,
		"title_ka":     p.TitleKa,
		"slug":         p.Slug,
		"content_en":   store.NullString(p.ContentEn),
		"content_ka":   store.NullString(p.ContentKa),
		"is_published": store.FlagValue(p.IsPublished),
	}
}
