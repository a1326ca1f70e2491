package normalizer

import "testing"

func TestDefaultNormalizer(t *testing.T) {
	n := NewDefaultNormalizer()
	tests := map[string]string{
		"Many":        "many",
		"  SomeTimes": "sometimes",
		"often":       "often",
		"":            "",
	}
	for in, want := range tests {
		if got := n.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
