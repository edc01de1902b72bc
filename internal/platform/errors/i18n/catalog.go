// Package i18n holds the localized message templates for coded errors.
package i18n

import (
	"fmt"
	"strings"
	"text/template"
)

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

// Code is a machine-readable error code. It mirrors errors.Code as a plain
// string so this package stays free of import cycles.
type Code = string

// Catalog renders the messages of one locale.
type Catalog struct {
	locale    string
	templates map[Code]*template.Template
}

var catalogs = mustCatalogs(map[string]map[Code]string{
	"en-US": enUSMessages,
	"ko-KR": koKRMessages,
})

// NewCatalog compiles messages for locale. Missing metadata keys render empty.
func NewCatalog(locale string, messages map[Code]string) (*Catalog, error) {
	c := &Catalog{locale: locale, templates: make(map[Code]*template.Template, len(messages))}
	for code, text := range messages {
		t, err := template.New(code).Option("missingkey=zero").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: message %s: %w", locale, code, err)
		}
		c.templates[code] = t
	}
	return c, nil
}

func mustCatalogs(sources map[string]map[Code]string) map[string]*Catalog {
	out := make(map[string]*Catalog, len(sources))
	for locale, messages := range sources {
		c, err := NewCatalog(locale, messages)
		if err != nil {
			panic(err)
		}
		out[locale] = c
	}
	return out
}

// For returns the catalog of locale, or the base catalog when locale has none.
func For(locale string) *Catalog {
	if c, ok := catalogs[strings.TrimSpace(locale)]; ok {
		return c
	}
	return catalogs[BaseLocale]
}

// Locale reports the BCP 47 tag the catalog renders.
func (c *Catalog) Locale() string {
	return c.locale
}

// Has reports whether the catalog carries a message for code.
func (c *Catalog) Has(code Code) bool {
	_, ok := c.templates[code]
	return ok
}

// Format renders code with metadata. Codes this catalog lacks are looked up in
// the base catalog; a code nobody knows renders as itself.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	t, ok := c.templates[code]
	if !ok {
		if base := catalogs[BaseLocale]; base != c && base != nil {
			return base.Format(code, metadata)
		}
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var b strings.Builder
	if err := t.Execute(&b, metadata); err != nil {
		return code
	}
	return b.String()
}
