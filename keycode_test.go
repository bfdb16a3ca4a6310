package surfacebridge

import (
	"testing"
)

func TestKeyFromCode_Basic(t *testing.T) {
	for code, want := range map[string]VirtualKey{
		"KeyA":      KeyA,
		"Digit0":    Key0,
		"Enter":     KeyReturn,
		"Space":     KeySpace,
		"ArrowLeft": KeyLeft,
		"F12":       KeyF12,
		"Numpad5":   KeyNumpad5,
		"Escape":    KeyEscape,
	} {
		got, ok := KeyFromCode(code)
		if !ok {
			t.Errorf("KeyFromCode(%q) not found", code)
			continue
		}
		if got != want {
			t.Errorf("KeyFromCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestKeyFromCode_MetaAliases(t *testing.T) {
	// Both the legacy and current identifiers map to the same key.
	for _, code := range []string{"OSLeft", "MetaLeft"} {
		if got, ok := KeyFromCode(code); !ok || got != KeyLeftMeta {
			t.Errorf("KeyFromCode(%q) = %v, %v, want KeyLeftMeta", code, got, ok)
		}
	}
	for _, code := range []string{"OSRight", "MetaRight"} {
		if got, ok := KeyFromCode(code); !ok || got != KeyRightMeta {
			t.Errorf("KeyFromCode(%q) = %v, %v, want KeyRightMeta", code, got, ok)
		}
	}
}

func TestKeyFromCode_VolumeAliases(t *testing.T) {
	for _, code := range []string{"VolumeUp", "AudioVolumeUp"} {
		if got, ok := KeyFromCode(code); !ok || got != KeyVolumeUp {
			t.Errorf("KeyFromCode(%q) = %v, %v, want KeyVolumeUp", code, got, ok)
		}
	}
}

func TestKeyFromCode_Unmapped(t *testing.T) {
	for _, code := range []string{"Lang1", "Lang2", "IntlRo", "ContextMenu", "", "NoSuchCode"} {
		if got, ok := KeyFromCode(code); ok || got != KeyUnknown {
			t.Errorf("KeyFromCode(%q) = %v, %v, want KeyUnknown, false", code, got, ok)
		}
	}
}

func TestVirtualKey_ScanCode(t *testing.T) {
	for key, want := range map[VirtualKey]uint32{
		KeyEscape:      0x01,
		KeyA:           0x1E,
		KeySpace:       0x39,
		KeyF11:         0x57,
		KeyNumpadEnter: 0xE01C,
		KeyLeft:        0xE04B,
		KeyRightMeta:   0xE05C,
	} {
		got, ok := key.ScanCode()
		if !ok {
			t.Errorf("%v.ScanCode() not found", key)
			continue
		}
		if got != want {
			t.Errorf("%v.ScanCode() = %#x, want %#x", key, got, want)
		}
	}
}

func TestVirtualKey_ScanCode_Missing(t *testing.T) {
	// Media and extended function keys have no scan code; key events for
	// them are dropped rather than delivered half-populated.
	for _, key := range []VirtualKey{
		KeyF13, KeyF24, KeyPauseBreak, KeyPower, KeyMute, KeyPlayPause,
		KeyWebBack, KeyMediaSelect, KeyUnknown,
	} {
		if sc, ok := key.ScanCode(); ok {
			t.Errorf("%v.ScanCode() = %#x, want none", key, sc)
		}
	}
}

func TestVirtualKey_String(t *testing.T) {
	if got := KeyLeftControl.String(); got != "LeftControl" {
		t.Errorf("KeyLeftControl.String() = %q", got)
	}
	if got := KeyUnknown.String(); got != "Unknown" {
		t.Errorf("KeyUnknown.String() = %q", got)
	}
	if got := VirtualKey(-42).String(); got != "Unknown" {
		t.Errorf("VirtualKey(-42).String() = %q", got)
	}
}

func TestKeyFromCode_AllMappedKeysHaveNames(t *testing.T) {
	for code, key := range virtualKeyByCode {
		if _, ok := virtualKeyNames[key]; !ok {
			t.Errorf("key for code %q has no name", code)
		}
	}
}
