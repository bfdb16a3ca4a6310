package surfacebridge

// VirtualKey is a portable virtual key code, independent of the hosting
// environment's physical-key identifier vocabulary.
//
// The zero value KeyUnknown represents an absent/unmapped key.
type VirtualKey int

const (
	KeyUnknown VirtualKey = iota

	KeyEscape
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyMinus
	KeyEquals
	KeyBackspace
	KeyTab
	KeyLeftBracket
	KeyRightBracket
	KeyReturn
	KeyLeftControl
	KeyRightControl
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyLeftShift
	KeyRightShift
	KeyBackslash
	KeyComma
	KeyPeriod
	KeySlash
	KeyLeftAlt
	KeyRightAlt
	KeySpace
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyPauseBreak
	KeyScrollLock
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadEnter
	KeyNumpadEquals
	KeyNumpadComma
	KeyPrintScreen
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftMeta
	KeyRightMeta
	KeyPower
	KeyKana
	KeyConvert
	KeyNoConvert
	KeyYen
	KeyPaste
	KeyCut
	KeyCopy
	KeyMute
	KeyVolumeDown
	KeyVolumeUp
	KeyPlayPause
	KeyMediaStop
	KeyPrevTrack
	KeyNextTrack
	KeyMediaSelect
	KeyMail
	KeyWebHome
	KeyWebSearch
	KeyWebFavorites
	KeyWebRefresh
	KeyWebStop
	KeyWebForward
	KeyWebBack
)

// String returns the name of the key.
func (k VirtualKey) String() string {
	if name, ok := virtualKeyNames[k]; ok {
		return name
	}
	return "Unknown"
}

var virtualKeyNames = map[VirtualKey]string{
	KeyEscape: "Escape", Key0: "0", Key1: "1", Key2: "2", Key3: "3",
	Key4: "4", Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",
	KeyMinus: "Minus", KeyEquals: "Equals", KeyBackspace: "Backspace",
	KeyTab: "Tab", KeyLeftBracket: "LeftBracket",
	KeyRightBracket: "RightBracket", KeyReturn: "Return",
	KeyLeftControl: "LeftControl", KeyRightControl: "RightControl",
	KeySemicolon: "Semicolon", KeyApostrophe: "Apostrophe",
	KeyGrave: "Grave", KeyLeftShift: "LeftShift",
	KeyRightShift: "RightShift", KeyBackslash: "Backslash",
	KeyComma: "Comma", KeyPeriod: "Period", KeySlash: "Slash",
	KeyLeftAlt: "LeftAlt", KeyRightAlt: "RightAlt", KeySpace: "Space",
	KeyCapsLock: "CapsLock",
	KeyF1:       "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14",
	KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22",
	KeyF23: "F23", KeyF24: "F24",
	KeyPauseBreak: "PauseBreak", KeyScrollLock: "ScrollLock",
	KeyNumLock: "NumLock",
	KeyNumpad0: "Numpad0", KeyNumpad1: "Numpad1", KeyNumpad2: "Numpad2",
	KeyNumpad3: "Numpad3", KeyNumpad4: "Numpad4", KeyNumpad5: "Numpad5",
	KeyNumpad6: "Numpad6", KeyNumpad7: "Numpad7", KeyNumpad8: "Numpad8",
	KeyNumpad9: "Numpad9",
	KeyNumpadAdd: "NumpadAdd", KeyNumpadSubtract: "NumpadSubtract",
	KeyNumpadMultiply: "NumpadMultiply", KeyNumpadDivide: "NumpadDivide",
	KeyNumpadDecimal: "NumpadDecimal", KeyNumpadEnter: "NumpadEnter",
	KeyNumpadEquals: "NumpadEquals", KeyNumpadComma: "NumpadComma",
	KeyPrintScreen: "PrintScreen", KeyHome: "Home", KeyEnd: "End",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyInsert: "Insert",
	KeyDelete: "Delete", KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left",
	KeyRight: "Right", KeyLeftMeta: "LeftMeta", KeyRightMeta: "RightMeta",
	KeyPower: "Power", KeyKana: "Kana", KeyConvert: "Convert",
	KeyNoConvert: "NoConvert", KeyYen: "Yen", KeyPaste: "Paste",
	KeyCut: "Cut", KeyCopy: "Copy", KeyMute: "Mute",
	KeyVolumeDown: "VolumeDown", KeyVolumeUp: "VolumeUp",
	KeyPlayPause: "PlayPause", KeyMediaStop: "MediaStop",
	KeyPrevTrack: "PrevTrack", KeyNextTrack: "NextTrack",
	KeyMediaSelect: "MediaSelect", KeyMail: "Mail",
	KeyWebHome: "WebHome", KeyWebSearch: "WebSearch",
	KeyWebFavorites: "WebFavorites", KeyWebRefresh: "WebRefresh",
	KeyWebStop: "WebStop", KeyWebForward: "WebForward",
	KeyWebBack: "WebBack",
}

// KeyFromCode maps a native physical-key identifier (the hosting
// environment's KeyboardEvent.code vocabulary) to a [VirtualKey].
//
// Identifiers with no portable equivalent ("Lang1", "Lang2", "IntlRo",
// "ContextMenu", and anything unrecognized) return (KeyUnknown, false).
func KeyFromCode(code string) (VirtualKey, bool) {
	k, ok := virtualKeyByCode[code]
	return k, ok
}

var virtualKeyByCode = map[string]VirtualKey{
	"Escape":        KeyEscape,
	"Digit1":        Key1,
	"Digit2":        Key2,
	"Digit3":        Key3,
	"Digit4":        Key4,
	"Digit5":        Key5,
	"Digit6":        Key6,
	"Digit7":        Key7,
	"Digit8":        Key8,
	"Digit9":        Key9,
	"Digit0":        Key0,
	"Minus":         KeyMinus,
	"Equal":         KeyEquals,
	"Backspace":     KeyBackspace,
	"Tab":           KeyTab,
	"KeyQ":          KeyQ,
	"KeyW":          KeyW,
	"KeyE":          KeyE,
	"KeyR":          KeyR,
	"KeyT":          KeyT,
	"KeyY":          KeyY,
	"KeyU":          KeyU,
	"KeyI":          KeyI,
	"KeyO":          KeyO,
	"KeyP":          KeyP,
	"BracketLeft":   KeyLeftBracket,
	"BracketRight":  KeyRightBracket,
	"Enter":         KeyReturn,
	"ControlLeft":   KeyLeftControl,
	"KeyA":          KeyA,
	"KeyS":          KeyS,
	"KeyD":          KeyD,
	"KeyF":          KeyF,
	"KeyG":          KeyG,
	"KeyH":          KeyH,
	"KeyJ":          KeyJ,
	"KeyK":          KeyK,
	"KeyL":          KeyL,
	"Semicolon":     KeySemicolon,
	"Quote":         KeyApostrophe,
	"Backquote":     KeyGrave,
	"ShiftLeft":     KeyLeftShift,
	"Backslash":     KeyBackslash,
	"KeyZ":          KeyZ,
	"KeyX":          KeyX,
	"KeyC":          KeyC,
	"KeyV":          KeyV,
	"KeyB":          KeyB,
	"KeyN":          KeyN,
	"KeyM":          KeyM,
	"Comma":         KeyComma,
	"Period":        KeyPeriod,
	"Slash":         KeySlash,
	"ShiftRight":    KeyRightShift,
	"NumpadMultiply": KeyNumpadMultiply,
	"AltLeft":        KeyLeftAlt,
	"Space":          KeySpace,
	"CapsLock":       KeyCapsLock,
	"F1":             KeyF1,
	"F2":             KeyF2,
	"F3":             KeyF3,
	"F4":             KeyF4,
	"F5":             KeyF5,
	"F6":             KeyF6,
	"F7":             KeyF7,
	"F8":             KeyF8,
	"F9":             KeyF9,
	"F10":            KeyF10,
	"F11":            KeyF11,
	"F12":            KeyF12,
	"F13":            KeyF13,
	"F14":            KeyF14,
	"F15":            KeyF15,
	"F16":            KeyF16,
	"F17":            KeyF17,
	"F18":            KeyF18,
	"F19":            KeyF19,
	"F20":            KeyF20,
	"F21":            KeyF21,
	"F22":            KeyF22,
	"F23":            KeyF23,
	"F24":            KeyF24,
	"Pause":          KeyPauseBreak,
	"ScrollLock":     KeyScrollLock,
	"Numpad7":        KeyNumpad7,
	"Numpad8":        KeyNumpad8,
	"Numpad9":        KeyNumpad9,
	"NumpadSubtract": KeyNumpadSubtract,
	"Numpad4":        KeyNumpad4,
	"Numpad5":        KeyNumpad5,
	"Numpad6":        KeyNumpad6,
	"NumpadAdd":      KeyNumpadAdd,
	"Numpad1":        KeyNumpad1,
	"Numpad2":        KeyNumpad2,
	"Numpad3":        KeyNumpad3,
	"Numpad0":        KeyNumpad0,
	"NumpadDecimal":  KeyNumpadDecimal,
	"PrintScreen":    KeyPrintScreen,
	"IntlBackslash":  KeyBackslash,
	"NumpadEqual":    KeyNumpadEquals,
	"KanaMode":       KeyKana,
	"Convert":        KeyConvert,
	"NonConvert":     KeyNoConvert,
	"IntlYen":        KeyYen,
	"NumpadComma":    KeyNumpadComma,
	"Paste":          KeyPaste,
	"MediaTrackPrevious": KeyPrevTrack,
	"Cut":                KeyCut,
	"Copy":               KeyCopy,
	"MediaTrackNext":     KeyNextTrack,
	"NumpadEnter":        KeyNumpadEnter,
	"ControlRight":       KeyRightControl,
	"AudioVolumeMute":    KeyMute,
	"MediaPlayPause":     KeyPlayPause,
	"MediaStop":          KeyMediaStop,
	"VolumeDown":         KeyVolumeDown,
	"AudioVolumeDown":    KeyVolumeDown,
	"VolumeUp":           KeyVolumeUp,
	"AudioVolumeUp":      KeyVolumeUp,
	"BrowserHome":        KeyWebHome,
	"NumpadDivide":       KeyNumpadDivide,
	"AltRight":           KeyRightAlt,
	"NumLock":            KeyNumLock,
	"Home":               KeyHome,
	"ArrowUp":            KeyUp,
	"PageUp":             KeyPageUp,
	"ArrowLeft":          KeyLeft,
	"ArrowRight":         KeyRight,
	"End":                KeyEnd,
	"ArrowDown":          KeyDown,
	"PageDown":           KeyPageDown,
	"Insert":             KeyInsert,
	"Delete":             KeyDelete,
	"OSLeft":             KeyLeftMeta,
	"MetaLeft":           KeyLeftMeta,
	"OSRight":            KeyRightMeta,
	"MetaRight":          KeyRightMeta,
	"Power":              KeyPower,
	"BrowserSearch":      KeyWebSearch,
	"BrowserFavorites":   KeyWebFavorites,
	"BrowserRefresh":     KeyWebRefresh,
	"BrowserStop":        KeyWebStop,
	"BrowserForward":     KeyWebForward,
	"BrowserBack":        KeyWebBack,
	"LaunchMail":         KeyMail,
	"MediaSelect":        KeyMediaSelect,
}

// ScanCode returns the key's scan code (PS/2 set 1 vocabulary, extended
// keys carrying the 0xE0 prefix in the high byte), or false if the key
// has no scan code in this environment. Handler delivery requires both a
// virtual key and a scan code, so keys returning false are dropped.
func (k VirtualKey) ScanCode() (uint32, bool) {
	sc, ok := scanCodes[k]
	return sc, ok
}

var scanCodes = map[VirtualKey]uint32{
	KeyEscape: 0x01,
	Key1:      0x02, Key2: 0x03, Key3: 0x04, Key4: 0x05, Key5: 0x06,
	Key6: 0x07, Key7: 0x08, Key8: 0x09, Key9: 0x0A, Key0: 0x0B,
	KeyMinus: 0x0C, KeyEquals: 0x0D, KeyBackspace: 0x0E, KeyTab: 0x0F,
	KeyQ: 0x10, KeyW: 0x11, KeyE: 0x12, KeyR: 0x13, KeyT: 0x14,
	KeyY: 0x15, KeyU: 0x16, KeyI: 0x17, KeyO: 0x18, KeyP: 0x19,
	KeyLeftBracket: 0x1A, KeyRightBracket: 0x1B, KeyReturn: 0x1C,
	KeyLeftControl: 0x1D,
	KeyA:           0x1E, KeyS: 0x1F, KeyD: 0x20, KeyF: 0x21, KeyG: 0x22,
	KeyH: 0x23, KeyJ: 0x24, KeyK: 0x25, KeyL: 0x26,
	KeySemicolon: 0x27, KeyApostrophe: 0x28, KeyGrave: 0x29,
	KeyLeftShift: 0x2A, KeyBackslash: 0x2B,
	KeyZ:         0x2C, KeyX: 0x2D, KeyC: 0x2E, KeyV: 0x2F, KeyB: 0x30,
	KeyN: 0x31, KeyM: 0x32,
	KeyComma: 0x33, KeyPeriod: 0x34, KeySlash: 0x35, KeyRightShift: 0x36,
	KeyNumpadMultiply: 0x37, KeyLeftAlt: 0x38, KeySpace: 0x39,
	KeyCapsLock: 0x3A,
	KeyF1:       0x3B, KeyF2: 0x3C, KeyF3: 0x3D, KeyF4: 0x3E, KeyF5: 0x3F,
	KeyF6: 0x40, KeyF7: 0x41, KeyF8: 0x42, KeyF9: 0x43, KeyF10: 0x44,
	KeyNumLock: 0x45, KeyScrollLock: 0x46,
	KeyNumpad7: 0x47, KeyNumpad8: 0x48, KeyNumpad9: 0x49,
	KeyNumpadSubtract: 0x4A,
	KeyNumpad4:        0x4B, KeyNumpad5: 0x4C, KeyNumpad6: 0x4D,
	KeyNumpadAdd: 0x4E,
	KeyNumpad1:   0x4F, KeyNumpad2: 0x50, KeyNumpad3: 0x51,
	KeyNumpad0: 0x52, KeyNumpadDecimal: 0x53,
	KeyNumpadEquals: 0x59,
	KeyF11:          0x57, KeyF12: 0x58,
	KeyKana: 0x70, KeyConvert: 0x79, KeyNoConvert: 0x7B, KeyYen: 0x7D,
	KeyNumpadEnter: 0xE01C, KeyRightControl: 0xE01D,
	KeyNumpadDivide: 0xE035, KeyPrintScreen: 0xE037, KeyRightAlt: 0xE038,
	KeyHome: 0xE047, KeyUp: 0xE048, KeyPageUp: 0xE049, KeyLeft: 0xE04B,
	KeyRight: 0xE04D, KeyEnd: 0xE04F, KeyDown: 0xE050,
	KeyPageDown: 0xE051, KeyInsert: 0xE052, KeyDelete: 0xE053,
	KeyLeftMeta: 0xE05B, KeyRightMeta: 0xE05C,
}
