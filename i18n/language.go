package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"piwkina-shop/models"
)

var supported = []models.Language{models.English, models.Georgian}

// English first: the matcher falls back to the first tag.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.MustParse("ka"),
})

// Parse accepts "en" or "ka" in any case; anything else reports false.
func Parse(s string) (models.Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Negotiate picks the explicit choice when valid, otherwise the best match for
// an Accept-Language header, otherwise English.
func Negotiate(explicit, acceptLanguage string) models.Language {
	if l, ok := Parse(explicit); ok {
		return l
	}
	if acceptLanguage == "" {
		return models.English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return models.English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return models.English
	}
	return supported[idx]
}

// Toggle flips between the two languages, as the header language button does.
func Toggle(l models.Language) models.Language {
	if l == models.Georgian {
		return models.English
	}
	return models.Georgian
}
