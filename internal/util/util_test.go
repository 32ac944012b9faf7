package util

import "testing"

func TestOpenBrowser_UnsupportedPlatform(t *testing.T) {
	orig := getRuntime
	getRuntime = func() string { return "plan9" }
	defer func() { getRuntime = orig }()

	if err := OpenBrowser("https://example.com"); err == nil {
		t.Error("expected error on unsupported platform")
	}
}
