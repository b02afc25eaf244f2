// Package i18n resolves the user's locale once and formats user-facing
// messages for it.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the locales with a translated catalog. The first entry is
// the fallback.
var Supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(Supported)

// localeEnv lists the environment variables consulted, highest priority first.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Detect picks a supported locale from the configured value, then the POSIX
// locale variables. Unsupported or unparsable values are skipped; English is
// the default.
func Detect(configured string) language.Tag {
	candidates := []string{configured}
	for _, key := range localeEnv {
		candidates = append(candidates, os.Getenv(key))
	}

	for _, c := range candidates {
		if tag, ok := Match(c); ok {
			return tag
		}
	}
	return Supported[0]
}

// Match maps a POSIX-style locale such as "zh_CN.UTF-8" onto a supported tag.
func Match(locale string) (language.Tag, bool) {
	locale = normalize(locale)
	if locale == "" {
		return language.Und, false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return Supported[index], true
}

// normalize strips encoding and modifier suffixes and converts underscores.
// "C" and "POSIX" carry no language and normalize to "".
func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// Printer formats catalog messages for one locale.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter creates a Printer for tag.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{tag: tag, p: message.NewPrinter(tag)}
}

// Tag returns the printer's locale.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// Sprintf formats the translation of key. Keys without a translation are
// used as the format string themselves.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
