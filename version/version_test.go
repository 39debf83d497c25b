package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("expected non-empty version")
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, "viking-go/") {
		t.Errorf("expected viking-go/ prefix, got %q", ua)
	}
	if strings.TrimPrefix(ua, "viking-go/") == "" {
		t.Errorf("expected a version after the prefix, got %q", ua)
	}
}
