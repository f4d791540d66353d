package main

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{"locales/active.en.toml", "locales/active.zh.toml"}

// Texts looks up localised page strings.
type Texts struct {
	localizer *i18n.Localizer
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return bundle, nil
}

// NewTexts returns texts for lang, falling back to English for unknown languages.
func NewTexts(lang string) (*Texts, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	return &Texts{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// Get returns the message for id, or id itself when it is missing.
func (t *Texts) Get(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
