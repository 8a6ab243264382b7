package prc

import "strings"

// categoryNames maps well-known resource type tags to human-readable
// directory names. Pure data; never mutated after init.
var categoryNames = map[Tag]string{
	NewTag("code"): "code",
	NewTag("data"): "data",
	NewTag("pref"): "preferences",
	NewTag("NFNT"): "fonts",
	NewTag("tFRM"): "forms",
	NewTag("tSTR"): "strings",
	NewTag("tSTL"): "string-lists",
	NewTag("Talt"): "alerts",
	NewTag("Tbmp"): "bitmaps",
	NewTag("tAIB"): "app-icons",
	NewTag("tAIN"): "app-info",
	NewTag("clut"): "color-tables",
	NewTag("xloc"): "locales",
	NewTag("gdef"): "graphics-defs",
	NewTag("tver"): "version",
	NewTag("Tbtn"): "buttons",
	NewTag("tMNU"): "menus",
	NewTag("tICN"): "icons",
	NewTag("tLST"): "lists",
	NewTag("tFBM"): "form-bitmaps",
	NewTag("tgrb"): "graffiti",
	NewTag("wrdl"): "word-lists",
	NewTag("boot"): "boot-code",
	NewTag("silk"): "silk-screen",
}

// CategoryDir returns a human-readable directory name for a resource type.
// Unknown tags fall back to the lower-cased printable form of the tag.
func CategoryDir(t Tag) string {
	if name, ok := categoryNames[t]; ok {
		return name
	}
	return strings.ToLower(t.String())
}
