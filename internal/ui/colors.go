package ui

// Color accessors return the escape sequence of the active theme for a
// conventional color name, so callers never hold a stale theme.

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the info color.
func ColorBlue() string { return GetCurrentTheme().Info }

// ColorCyan returns the accent color.
func ColorCyan() string { return GetCurrentTheme().Accent }

// ColorMagenta returns the value color.
func ColorMagenta() string { return GetCurrentTheme().Value }

// ColorGrey returns the muted color.
func ColorGrey() string { return GetCurrentTheme().Muted }

// ColorBold returns the bold attribute.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline attribute.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset clears all attributes.
func ColorReset() string { return GetCurrentTheme().Reset }
