package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  language.Tag
		ok    bool
	}{
		{value: "ko-KR", want: language.Korean, ok: true},
		{value: "ko", want: language.Korean, ok: true},
		{value: " en-US ", want: language.AmericanEnglish, ok: true},
		{value: "", want: language.AmericanEnglish, ok: false},
		{value: "not a tag!", want: language.AmericanEnglish, ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseTag(%q) = %v, %v, want %v, %v", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	if got := MatchAcceptLanguage("ko-KR,ko;q=0.9,en-US;q=0.8"); got != language.Korean {
		t.Fatalf("tag = %v, want %v", got, language.Korean)
	}
	if got := MatchAcceptLanguage(""); got != DefaultTag() {
		t.Fatalf("tag = %v, want default", got)
	}
	if got := MatchAcceptLanguage(";;;"); got != DefaultTag() {
		t.Fatalf("tag = %v, want default", got)
	}
}

func TestResolveLocale(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"ko":                "ko-KR",
		"ko-KR,ko;q=0.9":    "ko-KR",
		"en-US":             "en-US",
		"":                  "en-US",
		"en-GB,en;q=0.8":    "en-US",
		"ko;q=0.5,en;q=0.9": "en-US",
	}
	for value, want := range tests {
		if got := ResolveLocale(value); got != want {
			t.Fatalf("ResolveLocale(%q) = %q, want %q", value, got, want)
		}
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.French
	if DefaultTag() != language.AmericanEnglish {
		t.Fatalf("default tag = %v, want %v", DefaultTag(), language.AmericanEnglish)
	}
}
