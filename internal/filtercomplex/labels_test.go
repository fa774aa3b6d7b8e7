package filtercomplex

import "testing"

func TestHexLabel(t *testing.T) {
	cases := map[int]string{
		0:      "0000",
		1:      "0001",
		42:     "002A",
		255:    "00FF",
		0xBEEF: "BEEF",
		70000:  "11170",
	}
	for id, want := range cases {
		if got := HexLabel(id); got != want {
			t.Fatalf("HexLabel(%d): got %q want %q", id, got, want)
		}
	}
}

func TestRewriteInput(t *testing.T) {
	tests := []struct {
		fragment string
		input    string
		want     string
	}{
		{"volume=1", "[0:a]", "[0:a]volume=1"},
		{"volume=1", "[0001]", "[0001]volume=1"},
		{"[0:a]volume=1", "[0001]", "[0001]volume=1"},
		{"[0:a][1:a]amix=inputs=2", "[0001]", "[0001][1:a]amix=inputs=2"},
		{"[1:a]volume=1", "[0001]", "[1:a]volume=1"},
		{"amix=inputs=2[0:a]", "[0001]", "amix=inputs=2[0001]"},
	}
	for _, tc := range tests {
		if got := rewriteInput(tc.fragment, tc.input); got != tc.want {
			t.Fatalf("rewriteInput(%q, %q): got %q want %q", tc.fragment, tc.input, got, tc.want)
		}
	}
}

func TestStripTrailingLabel(t *testing.T) {
	tests := []struct {
		fragment string
		want     string
	}{
		{"[0:a]volume=1", "[0:a]volume=1"},
		{"[0:a]volume=1[x]", "[0:a]volume=1"},
		{"[0:a]highpass=f=80:p=2[hp]", "[0:a]highpass=f=80:p=2"},
		{"[0:a]anull", "[0:a]anull"},
		{"anull[x]", "anull[x]"},
		{"asplit=2[a][b]", "asplit=2"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := stripTrailingLabel(tc.fragment); got != tc.want {
			t.Fatalf("stripTrailingLabel(%q): got %q want %q", tc.fragment, got, tc.want)
		}
	}
}
