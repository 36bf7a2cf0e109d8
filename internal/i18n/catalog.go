// Package i18n provides the translated UI strings. Catalogs are embedded YAML
// files registered into an x/text message catalog; keys missing from a
// locale fall back to English.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/knife-master/internal/profile"
)

// BaseLocale is the locale every other one falls back to.
const BaseLocale = "en"

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Catalog holds the messages of every locale.
type Catalog struct {
	builder  *catalog.Builder
	messages map[string]map[string]string // locale -> key -> message, with fallback applied
}

var defaultCatalog = mustLoadEmbedded()

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS loads every locales/*.yaml file of fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	raw := map[string]map[string]string{}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		locale := strings.TrimSpace(file.Locale)
		if locale == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", path)
		}
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale tag %q: %w", path, locale, err)
		}
		if _, dup := raw[locale]; dup {
			return nil, fmt.Errorf("catalog %s: locale %q already defined", path, locale)
		}
		raw[locale] = file.Messages
	}

	base, ok := raw[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	c := &Catalog{
		builder:  catalog.NewBuilder(catalog.Fallback(language.English)),
		messages: map[string]map[string]string{},
	}
	for locale, msgs := range raw {
		merged := make(map[string]string, len(base))
		for key, value := range base {
			merged[key] = value
		}
		for key, value := range msgs {
			merged[strings.TrimSpace(key)] = value
		}

		tag := language.MustParse(locale)
		for key, value := range merged {
			if err := c.builder.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
		c.messages[locale] = merged
	}

	return c, nil
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}

// Locales returns the loaded locale identifiers, sorted.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Has reports whether key is defined for the base locale.
func (c *Catalog) Has(key string) bool {
	_, ok := c.messages[BaseLocale][key]
	return ok
}

// Printer formats messages for one language.
type Printer struct {
	lang profile.Language
	p    *message.Printer
}

// Printer returns a printer for lang. Unknown languages print English.
func (c *Catalog) Printer(lang profile.Language) *Printer {
	tag := language.MustParse(lang.Tag())
	return &Printer{lang: lang, p: message.NewPrinter(tag, message.Catalog(c.builder))}
}

// Language returns the printer's language.
func (p *Printer) Language() profile.Language {
	return p.lang
}

// T translates key, formatting args into the message.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// For returns a printer for lang from the default catalog.
func For(lang profile.Language) *Printer {
	return Default().Printer(lang)
}
