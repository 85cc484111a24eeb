package models

import (
	"time"

	"piwkina-shop/store"
)

type Category string

const (
	CategoryMain     Category = "main"
	CategorySpecial  Category = "special"
	CategorySeasonal Category = "seasonal"
)

// Categories lists the fixed product categories in display order.
var Categories = []Category{CategoryMain, CategorySpecial, CategorySeasonal}

type Product struct {
	ID            string    `json:"id"`
	NameEn        string    `json:"nameEn"`
	NameKa        string    `json:"nameKa"`
	DescriptionEn string    `json:"descriptionEn,omitempty"`
	DescriptionKa string    `json:"descriptionKa,omitempty"`
	PricePerKg    float64   `json:"pricePerKg"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Category      Category  `json:"category"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (p Product) Name(lang Language) string {
	return pick(lang, p.NameEn, p.NameKa)
}

func (p Product) Description(lang Language) string {
	return pick(lang, p.DescriptionEn, p.DescriptionKa)
}

func ProductFromRow(r store.Row) Product {
	return Product{
		ID:            r.ID(),
		NameEn:        r.String("name_en"),
		NameKa:        r.String("name_ka"),
		DescriptionEn: r.String("description_en"),
		DescriptionKa: r.String("description_ka"),
		PricePerKg:    r.Float("price_per_kg"),
		ImageURL:      r.String("image_url"),
		Category:      Category(r.String("category")),
		IsActive:      r.Flag("is_active"),
		CreatedAt:     r.Time("created_at"),
	}
}

// Row is the storage form without id, timestamps and owner.
func (p Product) Row() store.Row {
	return store.Row{
		"name_en":        p.NameEn,
		"name_ka":        p.NameKa,
		"description_en": store.NullString(p.DescriptionEn),
		"description_ka": store.NullString(p.DescriptionKa),
		"price_per_kg":   p.PricePerKg,
		"image_url":      store.NullString(p.ImageURL),
		"category":       string(p.Category),
		"is_active":      store.FlagValue(p.IsActive),
	}
}
