package admin

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"piwkina-shop/ids"
	"piwkina-shop/models"
	"piwkina-shop/store"
)

// PageForm is the content page dialog. Saving publishes the page.
type PageForm struct {
	TitleEn   string `json:"titleEn" validate:"required"`
	TitleKa   string `json:"titleKa" validate:"required"`
	Slug      string `json:"slug" validate:"required"`
	ContentEn string `json:"contentEn"`
	ContentKa string `json:"contentKa"`
}

type Pages struct {
	c   store.Collection
	ids *ids.Generator
}

func NewPages(backend store.Backend, gen *ids.Generator) *Pages {
	return &Pages{c: backend.Collection(store.Pages), ids: gen}
}

func (p *Pages) List(ctx context.Context) ([]models.Page, error) {
	list, err := listAll(ctx, p.c, store.Query{OrderBy: store.Desc("created_at")}, models.PageFromRow)
	if err != nil {
		logFailure(err, "list", "page", "")
		return nil, err
	}
	return list, nil
}

// PublishedBySlug finds the newest published page under slug.
func (p *Pages) PublishedBySlug(ctx context.Context, slug string) (models.Page, error) {
	rows, err := p.c.List(ctx, store.Query{
		Where:   map[string]any{"slug": slug, "is_published": store.FlagValue(true)},
		OrderBy: store.Desc("created_at"),
		Limit:   1,
	})
	if err != nil {
		return models.Page{}, fmt.Errorf("load page %s: %w", slug, err)
	}
	if len(rows) == 0 {
		return models.Page{}, store.ErrNotFound
	}
	return models.PageFromRow(rows[0]), nil
}

// Save stores the page. A blank slug is derived from the English title.
func (p *Pages) Save(ctx context.Context, me Identity, id string, form PageForm) (string, error) {
	if strings.TrimSpace(form.Slug) == "" {
		form.Slug = Slugify(form.TitleEn)
	}
	if err := validateForm(form); err != nil {
		return "", err
	}
	row := models.Page{
		TitleEn:     form.TitleEn,
		TitleKa:     form.TitleKa,
		Slug:        form.Slug,
		ContentEn:   form.ContentEn,
		ContentKa:   form.ContentKa,
		IsPublished: true,
	}.Row()

	saved, err := save(ctx, p.c, me, id, p.ids.Next("page"), row)
	if err != nil {
		logFailure(err, "save", "page", id)
		return "", fmt.Errorf("save page: %w", err)
	}
	return saved, nil
}

func (p *Pages) Toggle(ctx context.Context, id string) (bool, error) {
	published, err := toggle(ctx, p.c, id, "is_published")
	if err != nil {
		logFailure(err, "toggle", "page", id)
		return false, fmt.Errorf("toggle page %s: %w", id, err)
	}
	return published, nil
}

func (p *Pages) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := remove(ctx, p.c, id, confirmed); err != nil {
		if !errors.Is(err, ErrNotConfirmed) {
			logFailure(err, "delete", "page", id)
		}
		return fmt.Errorf("delete page %s: %w", id, err)
	}
	return nil
}

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
	slugDashes = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a URL slug: "About Us!" becomes "about-us".
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
