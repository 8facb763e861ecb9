package compliance

import "testing"

func TestResolveSuggestedText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   \n", want: ""},
		{name: "raw text falls through verbatim", in: "not json at all", want: "not json at all"},
		{name: "suggested_text key preferred", in: `{"suggested_text":"add a retention section","fix":"ignored"}`, want: "add a retention section"},
		{name: "fix key fallback", in: `{"fix":"do X"}`, want: "do X"},
		{name: "object without known keys", in: `{"analysis":"nothing useful"}`, want: ""},
		{name: "suggested_text empty falls back to fix", in: `{"suggested_text":"  ","fix":"do Y"}`, want: "do Y"},
		{name: "non-string suggested_text ignored", in: `{"suggested_text":42,"fix":"do Z"}`, want: "do Z"},
		{name: "truncated json treated as raw", in: `{"suggested_text":"cut off`, want: `{"suggested_text":"cut off`},
		{name: "json array treated as raw", in: `["a","b"]`, want: `["a","b"]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveSuggestedText(tc.in); got != tc.want {
				t.Fatalf("ResolveSuggestedText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
