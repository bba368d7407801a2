package service

import (
	"strings"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

// selectGraphicsFormat resolves the mandatory graphics format. There is no
// default; absence and unknown values both fail.
func selectGraphicsFormat(form rawNode) (domain.GraphicsFormat, bool) {
	value, ok := form.text("graphics_format")
	if !ok {
		return "", false
	}
	return domain.ParseGraphicsFormat(value)
}

// selectOutputSize resolves the layout variant. When absent it defaults to
// a full sheet for standalone documents and to the extra-space slip when
// the bill is appended to an existing invoice.
func selectOutputSize(form rawNode, hasInvoiceTarget bool) (domain.OutputSize, bool) {
	value, ok := form.text("output_size")
	if !ok {
		if hasInvoiceTarget {
			return domain.OutputSizeQRBillExtraSpace, true
		}
		return domain.OutputSizeA4PortraitSheet, true
	}
	return domain.ParseOutputSize(value)
}

// guessLanguage never fails: an explicit valid value wins, then the
// configured default locale, then English.
func guessLanguage(form rawNode, defaultLocale string) domain.Language {
	if value, ok := form.text("language"); ok {
		if lang, ok := domain.ParseLanguage(value); ok {
			return lang
		}
	}
	switch localePrefix(defaultLocale) {
	case "de":
		return domain.LanguageDE
	case "fr":
		return domain.LanguageFR
	case "it":
		return domain.LanguageIT
	}
	return domain.LanguageEN
}

// localePrefix extracts the language tag from locale strings such as
// "de_CH.UTF-8" or "fr-CH".
func localePrefix(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	for i, r := range locale {
		if r == '_' || r == '-' || r == '.' {
			return locale[:i]
		}
	}
	return locale
}
