// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package i18n localizes the user-facing strings of the TUI and CLI.
// Message files are embedded; the locale is taken from the usual
// environment variables and falls back to English.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locale/*.yaml
var localeFS embed.FS

// Translator resolves message IDs to strings for one negotiated
// locale.
type Translator struct {
	localizer *i18n.Localizer
}

// New builds a translator for the given locale tag (e.g. "de",
// "en-US"). Unknown locales fall back to English.
func New(locale string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := localeFS.ReadDir("locale")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded locales: %w", err)
	}
	for _, f := range files {
		data, err := localeFS.ReadFile("locale/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", f.Name(), err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, locale, language.English.String()),
	}, nil
}

// DetectLocale returns the locale requested by the environment,
// checking LC_ALL, LC_MESSAGES and LANG in that order. Encoding
// suffixes like ".UTF-8" are stripped.
func DetectLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return language.English.String()
}

// Msg returns the localized message for id. A missing message falls
// back to the id itself so the UI never renders empty panels.
func (t *Translator) Msg(id string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// MsgData returns the localized message for id with template data
// applied.
func (t *Translator) MsgData(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
