package i18n

import "testing"

func TestForFallsBackToBase(t *testing.T) {
	base := For(BaseLocale)
	if base == nil || base.Locale() != BaseLocale {
		t.Fatalf("base catalog = %v", base)
	}
	for _, locale := range []string{"missing-locale", " ", ""} {
		if got := For(locale); got != base {
			t.Fatalf("For(%q) locale = %q, want %q", locale, got.Locale(), BaseLocale)
		}
	}
}

func TestKoreanMessages(t *testing.T) {
	cat := For(" ko-KR ")
	if cat.Locale() != "ko-KR" {
		t.Fatalf("locale = %q, want ko-KR", cat.Locale())
	}
	if got := cat.Format(CodeSectionStationNotTerminal, nil); got != "하행종점역만 삭제할 수 있습니다." {
		t.Fatalf("message = %q", got)
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	got := For("en-US").Format(CodeLineNotFound, map[string]string{"LineID": "7"})
	if got != "Line 7 was not found" {
		t.Fatalf("message = %q, want %q", got, "Line 7 was not found")
	}
}

func TestFormatMissingMetadataRendersEmpty(t *testing.T) {
	cat, err := NewCatalog("test", map[Code]string{"code": "hello {{.Name}}!"})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if got := cat.Format("code", nil); got != "hello !" {
		t.Fatalf("message = %q, want %q", got, "hello !")
	}
}

func TestFormatFallsBackToBaseThenCode(t *testing.T) {
	cat, err := NewCatalog("test", map[Code]string{})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if got := cat.Format(CodeInvalidPageToken, nil); got != "Invalid page token" {
		t.Fatalf("message = %q, want base message", got)
	}
	if got := cat.Format("NOBODY_KNOWS", nil); got != "NOBODY_KNOWS" {
		t.Fatalf("message = %q, want code", got)
	}
}

func TestNewCatalogRejectsBadTemplate(t *testing.T) {
	if _, err := NewCatalog("test", map[Code]string{"code": "{{ if .Name }}"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	en, ko := For("en-US"), For("ko-KR")
	for code := range enUSMessages {
		if !ko.Has(code) {
			t.Errorf("ko-KR catalog missing %s", code)
		}
	}
	for code := range koKRMessages {
		if !en.Has(code) {
			t.Errorf("en-US catalog missing %s", code)
		}
	}
}
