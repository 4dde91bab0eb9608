// Package messages maps validation failures to human-readable, localized
// text. The domain reports failures as KeyCodes only; rendering them is left
// to callers, who register one format per base code and locale:
//
//	cat := messages.New(language.English)
//	_ = cat.Set("en", "TitleTooLong", "title must be at most %[1]s characters")
//	cat.Render("en-GB", domain.KeyCodeWithIntDetail("Title", "TitleTooLong", 200))
//	// "title must be at most 200 characters"
//
// The detail payload of a code is passed to the format as its single string
// argument; list details are joined with ", ".
package messages

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/jsamuelsen11/go-ddd-kit/domain"
)

// FieldMessage is a rendered failure for one field.
type FieldMessage struct {
	Key     string `json:"key"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Catalog holds message formats per locale. A lookup tries the requested
// locale, then its base language, then the fallback locale. It is safe for
// concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	fallback language.Tag
	builder  *catalog.Builder
	formats  map[language.Tag]map[string]string
}

// New returns an empty Catalog that falls back to the given locale.
func New(fallback language.Tag) *Catalog {
	return &Catalog{
		fallback: fallback,
		builder:  catalog.NewBuilder(catalog.Fallback(fallback)),
		formats:  map[language.Tag]map[string]string{},
	}
}

// Set registers format as the message for baseCode in locale. Formats use
// fmt-style verbs; reference the detail with %[1]s.
func (c *Catalog) Set(locale, baseCode, format string) error {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	baseCode = strings.TrimSpace(baseCode)
	if baseCode == "" {
		return errors.New("message code must not be blank")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.builder.SetString(tag, baseCode, format); err != nil {
		return fmt.Errorf("registering %s for %s: %w", baseCode, tag, err)
	}
	if c.formats[tag] == nil {
		c.formats[tag] = map[string]string{}
	}
	c.formats[tag][baseCode] = format
	return nil
}

// Locales returns the registered locales in sorted order.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.formats))
	for tag := range c.formats {
		out = append(out, tag.String())
	}
	slices.Sort(out)
	return out
}

// Render returns the localized message for kc. When no locale in the lookup
// chain has a format for kc's base code, the raw code is returned.
func (c *Catalog) Render(locale string, kc domain.KeyCode) string {
	base := kc.BaseCode()

	c.mu.RLock()
	defer c.mu.RUnlock()

	tag, format, ok := c.lookup(locale, base)
	if !ok {
		return kc.Code
	}

	p := message.NewPrinter(tag, message.Catalog(c.builder))
	if !strings.Contains(format, "%") {
		return p.Sprintf(base)
	}
	return p.Sprintf(base, strings.Join(kc.Details(), ", "))
}

// RenderAll renders every failure in errs, preserving order.
func (c *Catalog) RenderAll(locale string, errs domain.ValidationErrorCollection) []FieldMessage {
	out := make([]FieldMessage, 0, errs.Len())
	for kc := range errs.Values() {
		out = append(out, FieldMessage{
			Key:     kc.Key,
			Code:    kc.Code,
			Message: c.Render(locale, kc),
		})
	}
	return out
}

func (c *Catalog) lookup(locale, base string) (language.Tag, string, bool) {
	for _, tag := range c.candidates(locale) {
		if format, ok := c.formats[tag][base]; ok {
			return tag, format, true
		}
	}
	return language.Und, "", false
}

func (c *Catalog) candidates(locale string) []language.Tag {
	tags := make([]language.Tag, 0, 3)
	if tag, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		tags = append(tags, tag)
		if b, conf := tag.Base(); conf != language.No {
			if baseTag := language.Make(b.String()); baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
	}
	return append(tags, c.fallback)
}
