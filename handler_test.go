package surfacebridge

import (
	"testing"
)

func TestMouseButton_FromOrdinal(t *testing.T) {
	if got := mouseButtonFromOrdinal(0); got != MouseButtonLeft {
		t.Errorf("ordinal 0 = %v, want Left", got)
	}
	if got := mouseButtonFromOrdinal(1); got != MouseButtonMiddle {
		t.Errorf("ordinal 1 = %v, want Middle", got)
	}
	if got := mouseButtonFromOrdinal(2); got != MouseButtonRight {
		t.Errorf("ordinal 2 = %v, want Right", got)
	}
	other := mouseButtonFromOrdinal(5)
	if !other.IsOther() {
		t.Errorf("ordinal 5 should be an other button, got %v", other)
	}
	if got := other.String(); got != "Other(5)" {
		t.Errorf("ordinal 5 String() = %q", got)
	}
}

func TestMouseButton_IsOther(t *testing.T) {
	for _, b := range []MouseButton{MouseButtonLeft, MouseButtonMiddle, MouseButtonRight} {
		if b.IsOther() {
			t.Errorf("%v.IsOther() = true", b)
		}
	}
	if !MouseButton(-1).IsOther() {
		t.Error("MouseButton(-1).IsOther() = false")
	}
}

func TestFullscreenMode_String(t *testing.T) {
	if got := FullscreenModeWindowed.String(); got != "Windowed" {
		t.Errorf("Windowed String() = %q", got)
	}
	if got := FullscreenModeBorderless.String(); got != "FullscreenBorderless" {
		t.Errorf("Borderless String() = %q", got)
	}
}
