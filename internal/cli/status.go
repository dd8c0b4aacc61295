package cli

import "github.com/fatih/color"

// Status tags for report lines. Colour is dropped automatically when output
// is not a terminal or NO_COLOR is set.
func okTag() string   { return color.GreenString("[ OK ]") }
func missTag() string { return color.YellowString("[MISS]") }
func failTag() string { return color.RedString("[FAIL]") }
