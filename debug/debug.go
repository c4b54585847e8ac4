package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match  bool
	Remain bool
	Text   bool
	Review bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("DOCDIFF_DEBUG_MATCH")
	d.Remain = boolEnv("DOCDIFF_DEBUG_REMAIN")
	d.Text = boolEnv("DOCDIFF_DEBUG_TEXT")
	d.Review = boolEnv("DOCDIFF_DEBUG_REVIEW")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Remain() bool {
	return d.Remain
}
func Text() bool {
	return d.Text
}
func Review() bool {
	return d.Review
}
