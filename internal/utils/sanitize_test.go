package utils

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"7-Zip", "7Zip"},
		{"Mozilla Firefox", "MozillaFirefox"},
		{"Notepad++", "Notepad"},
		{"foo_bar", "foo_bar"},
		{"  spaced out  ", "spacedout"},
		{"C++ Redist (x64)!", "CRedistx64"},
		{"", ""},
		{"tab\there", "tabhere"},
	}

	for _, c := range cases {
		got := Sanitize(c.in)
		if got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{"7-Zip", "Notepad++", "Mozilla Firefox", "a b-c_d!e", ""}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
