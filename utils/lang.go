package utils

import (
	"path"
	"regexp"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var messageFiles = []string{"en.yaml", "fi.yaml"}

var nonKeyCharacters = regexp.MustCompile(`[^a-z0-9]+`)

// LoadI18NBundle loads the message files in dir
func LoadI18NBundle(dir string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, name := range messageFiles {
		if _, err := bundle.LoadMessageFile(path.Join(dir, name)); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// NewLocalizer accepts language tags or Accept-Language values. It returns
// nil for a nil bundle.
func NewLocalizer(bundle *i18n.Bundle, langs ...string) *i18n.Localizer {
	if bundle == nil {
		return nil
	}
	return i18n.NewLocalizer(bundle, langs...)
}

// MessageKey turns a display label into a message id segment,
// e.g. "Sore Throat" -> "sore_throat".
func MessageKey(label string) string {
	return strings.Trim(nonKeyCharacters.ReplaceAllString(strings.ToLower(label), "_"), "_")
}

// Localize returns the message of id, or fallback when there is none.
func Localize(loc *i18n.Localizer, id, fallback string) string {
	if loc == nil {
		return fallback
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
