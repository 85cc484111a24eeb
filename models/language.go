package models

// Language is one of the two storefront languages.
type Language string

const (
	English  Language = "en"
	Georgian Language = "ka"
)

// pick returns ka when lang is Georgian, en otherwise.
func pick(lang Language, en, ka string) string {
	if lang == Georgian {
		return ka
	}
	return en
}
