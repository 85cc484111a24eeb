package i18n

import "piwkina-shop/models"

// Dictionary is one page's strings for one language, keyed by dotted names.
type Dictionary map[string]string

var pages = map[string]map[models.Language]Dictionary{
	"header":     header,
	"footer":     footer,
	"home":       home,
	"products":   products,
	"about":      about,
	"contact":    contact,
	"cart":       cart,
	"categories": categories,
	"shell":      shell,
}

// PageNames lists every page with a dictionary.
func PageNames() []string {
	return []string{"header", "footer", "home", "products", "about", "contact", "cart", "categories", "shell"}
}

// Page returns the dictionary for page in lang.
func Page(page string, lang models.Language) (Dictionary, bool) {
	byLang, ok := pages[page]
	if !ok {
		return nil, false
	}
	d, ok := byLang[lang]
	if !ok {
		d = byLang[models.English]
	}
	return d, true
}

// T looks a key up, falling back to English and then to the key itself.
func T(lang models.Language, page, key string) string {
	byLang := pages[page]
	if s, ok := byLang[lang][key]; ok {
		return s
	}
	if s, ok := byLang[models.English][key]; ok {
		return s
	}
	return key
}

// CategoryName is the display name for a product category; "all" included.
func CategoryName(lang models.Language, category string) string {
	return T(lang, "categories", category)
}
