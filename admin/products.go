package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"piwkina-shop/ids"
	"piwkina-shop/models"
	"piwkina-shop/store"
)

// ProductForm is the create/edit dialog. Saving always makes the product
// active again.
type ProductForm struct {
	NameEn        string `json:"nameEn" validate:"required"`
	NameKa        string `json:"nameKa" validate:"required"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionKa string `json:"descriptionKa"`
	PricePerKg    Number `json:"pricePerKg" validate:"required,gt=0"`
	ImageURL      string `json:"imageUrl"`
	Category      string `json:"category" validate:"omitempty,oneof=main special seasonal"`
}

type Products struct {
	c   store.Collection
	ids *ids.Generator
}

func NewProducts(backend store.Backend, gen *ids.Generator) *Products {
	return &Products{c: backend.Collection(store.Products), ids: gen}
}

// List returns every product, hidden ones included, newest first.
func (p *Products) List(ctx context.Context) ([]models.Product, error) {
	list, err := listAll(ctx, p.c, store.Query{OrderBy: store.Desc("created_at")}, models.ProductFromRow)
	if err != nil {
		logFailure(err, "list", "product", "")
		return nil, err
	}
	return list, nil
}

// Save creates the product when id is empty and updates it otherwise.
func (p *Products) Save(ctx context.Context, me Identity, id string, form ProductForm) (string, error) {
	if err := validateForm(form); err != nil {
		return "", err
	}
	category := models.Category(form.Category)
	if category == "" {
		category = models.CategoryMain
	}
	row := models.Product{
		NameEn:        form.NameEn,
		NameKa:        form.NameKa,
		DescriptionEn: form.DescriptionEn,
		DescriptionKa: form.DescriptionKa,
		PricePerKg:    float64(form.PricePerKg),
		ImageURL:      form.ImageURL,
		Category:      category,
		IsActive:      true,
	}.Row()

	saved, err := save(ctx, p.c, me, id, p.ids.Next("prod"), row)
	if err != nil {
		logFailure(err, "save", "product", id)
		return "", fmt.Errorf("save product: %w", err)
	}
	return saved, nil
}

func (p *Products) Toggle(ctx context.Context, id string) (bool, error) {
	active, err := toggle(ctx, p.c, id, "is_active")
	if err != nil {
		logFailure(err, "toggle", "product", id)
		return false, fmt.Errorf("toggle product %s: %w", id, err)
	}
	return active, nil
}

func (p *Products) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := remove(ctx, p.c, id, confirmed); err != nil {
		if !errors.Is(err, ErrNotConfirmed) {
			logFailure(err, "delete", "product", id)
		}
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// FilterProducts matches search against both names, ignoring case.
func FilterProducts(products []models.Product, search string) []models.Product {
	needle := strings.ToLower(search)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.NameEn), needle) || strings.Contains(strings.ToLower(p.NameKa), needle) {
			out = append(out, p)
		}
	}
	return out
}
