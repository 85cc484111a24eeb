package admin

import (
	"context"
	"errors"
	"fmt"

	"piwkina-shop/ids"
	"piwkina-shop/models"
	"piwkina-shop/store"
)

// MenuForm is the navigation item dialog. A new item without an order index
// goes to the end of the menu.
type MenuForm struct {
	TitleEn    string `json:"titleEn" validate:"required"`
	TitleKa    string `json:"titleKa" validate:"required"`
	URL        string `json:"url" validate:"required"`
	OrderIndex *int   `json:"orderIndex" validate:"omitempty,min=0"`
}

type Menus struct {
	c   store.Collection
	ids *ids.Generator
}

func NewMenus(backend store.Backend, gen *ids.Generator) *Menus {
	return &Menus{c: backend.Collection(store.MenuItems), ids: gen}
}

// List returns every menu item in display order.
func (m *Menus) List(ctx context.Context) ([]models.MenuItem, error) {
	list, err := listAll(ctx, m.c, store.Query{OrderBy: store.Asc("order_index")}, models.MenuItemFromRow)
	if err != nil {
		logFailure(err, "list", "menu_item", "")
		return nil, err
	}
	return list, nil
}

// Active returns the items shown in the site header.
func (m *Menus) Active(ctx context.Context) ([]models.MenuItem, error) {
	return listAll(ctx, m.c, store.Query{
		Where:   map[string]any{"is_active": store.FlagValue(true)},
		OrderBy: store.Asc("order_index"),
	}, models.MenuItemFromRow)
}

func (m *Menus) Save(ctx context.Context, me Identity, id string, form MenuForm) (string, error) {
	if err := validateForm(form); err != nil {
		return "", err
	}
	index := 0
	if form.OrderIndex != nil {
		index = *form.OrderIndex
	} else if id == "" {
		existing, err := m.c.List(ctx, store.Query{})
		if err != nil {
			logFailure(err, "save", "menu_item", id)
			return "", fmt.Errorf("count menu items: %w", err)
		}
		index = len(existing)
	}
	row := models.MenuItem{
		TitleEn:    form.TitleEn,
		TitleKa:    form.TitleKa,
		URL:        form.URL,
		OrderIndex: index,
		IsActive:   true,
	}.Row()
	if id != "" && form.OrderIndex == nil {
		delete(row, "order_index")
	}

	saved, err := save(ctx, m.c, me, id, m.ids.Next("menu"), row)
	if err != nil {
		logFailure(err, "save", "menu_item", id)
		return "", fmt.Errorf("save menu item: %w", err)
	}
	return saved, nil
}

func (m *Menus) Toggle(ctx context.Context, id string) (bool, error) {
	active, err := toggle(ctx, m.c, id, "is_active")
	if err != nil {
		logFailure(err, "toggle", "menu_item", id)
		return false, fmt.Errorf("toggle menu item %s: %w", id, err)
	}
	return active, nil
}

func (m *Menus) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := remove(ctx, m.c, id, confirmed); err != nil {
		if !errors.Is(err, ErrNotConfirmed) {
			logFailure(err, "delete", "menu_item", id)
		}
		return fmt.Errorf("delete menu item %s: %w", id, err)
	}
	return nil
}
