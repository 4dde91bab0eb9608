package messages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadFile registers every message of a YAML catalog file:
//
//	locale: en
//	messages:
//	  TitleRequired: title is required
//	  TitleTooLong: title must be at most %[1]s characters
//
// Messages already registered for the same locale and code are replaced.
func (c *Catalog) LoadFile(path string) error {
	k := koanf.New("/")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading message catalog %s: %w", path, err)
	}

	locale := strings.TrimSpace(k.String("locale"))
	if locale == "" {
		return fmt.Errorf("message catalog %s: locale is required", path)
	}
	msgs := k.StringMap("messages")
	if len(msgs) == 0 {
		return fmt.Errorf("message catalog %s: messages map is required", path)
	}

	var errs []error
	for code, format := range msgs {
		if err := c.Set(locale, code, format); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("message catalog %s: %w", path, err)
	}
	return nil
}
