package sysutil

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLogLevel(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel}, // unknown value falls back to info
	}
	for _, tc := range cases {
		SetLogLevel(tc.in)
		if got := zerolog.GlobalLevel(); got != tc.want {
			t.Fatalf("SetLogLevel(%q) -> %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsTruthy_EnvFlagValues(t *testing.T) {
	// DISABLE_MIRROR accepts the usual spellings of "enabled".
	for _, v := range []string{"1", "true", "YES", " on ", "y"} {
		if !IsTruthy(v) {
			t.Fatalf("IsTruthy(%q) = false; want true", v)
		}
	}
	// Unset, zero, and junk values leave the mirror running.
	for _, v := range []string{"", "0", "false", "off", "disabled", "  "} {
		if IsTruthy(v) {
			t.Fatalf("IsTruthy(%q) = true; want false", v)
		}
	}
}

func TestFirstNonEmpty_PortFallback(t *testing.T) {
	// Configured port wins over the default.
	if got := FirstNonEmpty("5001", "8080"); got != "5001" {
		t.Fatalf("FirstNonEmpty = %q; want 5001", got)
	}
	// Blank config falls through to the default.
	if got := FirstNonEmpty("", "8080"); got != "8080" {
		t.Fatalf("FirstNonEmpty = %q; want 8080", got)
	}
	// Whitespace is treated as unset but the winner keeps its spacing.
	if got := FirstNonEmpty("   ", " 9090 "); got != " 9090 " {
		t.Fatalf("FirstNonEmpty = %q; want %q", got, " 9090 ")
	}
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("FirstNonEmpty() = %q; want empty", got)
	}
}
