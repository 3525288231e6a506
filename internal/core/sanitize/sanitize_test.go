package sanitize

import "testing"

func TestClean_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity ascii",
			in:   "hello world",
			out:  "hello world",
		},
		{
			name: "keeps newlines and tabs",
			in:   "line one\nline two\ttabbed",
			out:  "line one\nline two\ttabbed",
		},
		{
			name: "drops nul and controls",
			in:   "a\x00b\x01c\x08d",
			out:  "abcd",
		},
		{
			name: "drops del and c1",
			in:   "a\x7fbc",
			out:  "abc",
		},
		{
			name: "drops invalid utf8",
			in:   string([]byte{'o', 0xff, 'k', 0x80}),
			out:  "ok",
		},
		{
			name: "nfc composes combining accent",
			in:   "cafe\u0301",
			out:  "caf\u00e9",
		},
		{
			name: "strips directional override",
			in:   "evil\u202etxt.exe",
			out:  "eviltxt.exe",
		},
		{
			name: "strips zero width space",
			in:   "no\u200bwhere",
			out:  "nowhere",
		},
		{
			name: "keeps zwj emoji sequence",
			in:   "👩‍💻 coding",
			out:  "👩‍💻 coding",
		},
		{
			name: "empty",
			in:   "",
			out:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Clean(tc.in)
			if got != tc.out {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := Clean(got); again != got {
				t.Fatalf("Clean not idempotent: %q -> %q", got, again)
			}
		})
	}
}
