package duration_test

import (
	"testing"

	"github.com/spf13/pflag"

	"fixme/internal/duration"
)

func TestSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"47s", 47},
		{"1m", 60},
		{"2m3s", 123},
		{"3s2m", 123},
	}
	for _, c := range cases {
		got, err := duration.Seconds(c.in)
		if err != nil {
			t.Fatalf("Seconds(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Seconds(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSeconds_Invalid(t *testing.T) {
	for _, in := range []string{"90", "1h", "m3s", "2m3"} {
		if _, err := duration.Seconds(in); err == nil {
			t.Fatalf("Seconds(%q): expected error", in)
		}
	}
}

func TestFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var d duration.Flag
	fs.Var(&d, "duration", "")

	if err := fs.Parse([]string{"--duration", "1m9s"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Seconds != 69 {
		t.Fatalf("got %d seconds, want 69", d.Seconds)
	}
	if !d.IsSet() {
		t.Fatal("IsSet() = false after parse")
	}
}

func TestFlag_DefaultUnset(t *testing.T) {
	var d duration.Flag
	if d.IsSet() {
		t.Fatal("IsSet() = true before parse")
	}
	if d.String() != "" {
		t.Fatalf("String() = %q, want empty", d.String())
	}
}
