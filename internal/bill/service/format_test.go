package service

import (
	"testing"

	"github.com/smallbiznis/qrbill/internal/bill/domain"
)

func TestSelectGraphicsFormatRequiresValue(t *testing.T) {
	if _, ok := selectGraphicsFormat(rawNode{}); ok {
		t.Fatalf("expected failure for missing format")
	}
	if _, ok := selectGraphicsFormat(rawNode{"graphics_format": "TIFF"}); ok {
		t.Fatalf("expected failure for unknown format")
	}
	format, ok := selectGraphicsFormat(rawNode{"graphics_format": "PNG"})
	if !ok || format != domain.GraphicsFormatPNG {
		t.Fatalf("expected PNG, got %v %v", format, ok)
	}
}

func TestSelectOutputSizeDefaults(t *testing.T) {
	size, ok := selectOutputSize(rawNode{}, false)
	if !ok || size != domain.OutputSizeA4PortraitSheet {
		t.Fatalf("expected full sheet default, got %v", size)
	}
	size, ok = selectOutputSize(rawNode{}, true)
	if !ok || size != domain.OutputSizeQRBillExtraSpace {
		t.Fatalf("expected extra-space default for append, got %v", size)
	}
	if _, ok := selectOutputSize(rawNode{"output_size": "A5"}, false); ok {
		t.Fatalf("expected failure for unknown size")
	}
}

func TestGuessLanguage(t *testing.T) {
	if got := guessLanguage(rawNode{"language": "FR"}, ""); got != domain.LanguageFR {
		t.Fatalf("expected FR, got %v", got)
	}
	if got := guessLanguage(rawNode{"language": "XX"}, "it_CH.UTF-8"); got != domain.LanguageIT {
		t.Fatalf("expected locale fallback IT, got %v", got)
	}
	if got := guessLanguage(rawNode{}, "de_CH.UTF-8"); got != domain.LanguageDE {
		t.Fatalf("expected locale fallback DE, got %v", got)
	}
	if got := guessLanguage(rawNode{}, ""); got != domain.LanguageEN {
		t.Fatalf("expected EN default, got %v", got)
	}
}

func TestLocalePrefix(t *testing.T) {
	cases := map[string]string{
		"de_CH.UTF-8": "de",
		"fr-CH":       "fr",
		"it":          "it",
		"":            "",
	}
	for in, want := range cases {
		if got := localePrefix(in); got != want {
			t.Fatalf("localePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
