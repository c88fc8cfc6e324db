package widget

// Widget kinds the bar is built from. Theme rules select on these as
// element names.
var KnownKinds = []string{
	"window", "box", "label", "button", "menubutton", "image", "separator",
	"popover", "centerbox", "revealer", "switch", "scale",
}

// Style classes the bar attaches to its widgets. The list stems from the
// bar's widget construction code; theme linting uses it to catch class
// selectors that can never match.
var KnownClasses = []string{
	"main-window", "main-container", "title-label",
	"system-monitor", "cpu-label", "memory-label", "temp-label",
	"notification-button", "notification-label",
	"tray-widget", "tray-button",
	"menu", "menu-item", "menu-separator", "menu-info", "submenu-button",
	"dim-label", "flat",
}

// KnownKind checks whether kind names a widget kind used by the bar.
func KnownKind(kind string) bool {
	for _, k := range KnownKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// KnownClass checks whether class names a style class used by the bar.
func KnownClass(class string) bool {
	for _, c := range KnownClasses {
		if c == class {
			return true
		}
	}
	return false
}
