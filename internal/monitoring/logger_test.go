package monitoring

import (
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) {
		called = true
	})
	Logf("wrote %s", "chart_data_simple.json")
	if !called {
		t.Error("Custom logger was not called")
	}

	// nil installs a no-op
	SetLogger(nil)
	Logf("muted")
}

func TestCapture(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	lines, restore := Capture()
	Logf("wrote %s", "a.json")
	Logf("wrote %s", "b.json")
	restore()

	if len(*lines) != 2 {
		t.Fatalf("expected 2 captured lines, got %d", len(*lines))
	}
	if (*lines)[0] != "wrote %s" {
		t.Errorf("unexpected first line %q", (*lines)[0])
	}

	Logf("after restore")
	if len(*lines) != 2 {
		t.Errorf("restore did not detach capture, got %d lines", len(*lines))
	}
}
