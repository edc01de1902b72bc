package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	t.Parallel()

	cfg := PageSizeConfig{Default: 20, Max: 100}
	tests := []struct {
		value int32
		want  int
	}{
		{value: 0, want: 20},
		{value: -1, want: 20},
		{value: 5, want: 5},
		{value: 500, want: 100},
	}
	for _, tc := range tests {
		if got := ClampPageSize(tc.value, cfg); got != tc.want {
			t.Fatalf("ClampPageSize(%d) = %d, want %d", tc.value, got, tc.want)
		}
	}
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("ClampPageSize with empty config = %d, want 1", got)
	}
}

func TestIDTokens(t *testing.T) {
	t.Parallel()

	if id, err := ParseIDToken(""); err != nil || id != 0 {
		t.Fatalf("blank token = %d, %v, want 0, nil", id, err)
	}
	if id, err := ParseIDToken(FormatIDToken(42)); err != nil || id != 42 {
		t.Fatalf("token = %d, %v, want 42, nil", id, err)
	}
	for _, token := range []string{"abc", "-3", "1.5"} {
		if _, err := ParseIDToken(token); err == nil {
			t.Fatalf("ParseIDToken(%q) expected error", token)
		}
	}
}
