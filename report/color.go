package report

import (
	"strings"

	gkcolor "github.com/gookit/color"
)

func (r *Reporter) paint(c gkcolor.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

func (r *Reporter) green(s string) string {
	return r.paint(gkcolor.FgGreen, s)
}

func (r *Reporter) yellow(s string) string {
	return r.paint(gkcolor.FgYellow, s)
}

func (r *Reporter) red(s string) string {
	return r.paint(gkcolor.FgRed, s)
}

func (r *Reporter) cyan(s string) string {
	return r.paint(gkcolor.FgCyan, s)
}

func (r *Reporter) bold(s string) string {
	return r.paint(gkcolor.OpBold, s)
}

// colorDiffLine colors one line of a unified diff
func (r *Reporter) colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return r.bold(line)
	case strings.HasPrefix(line, "@@"):
		return r.cyan(line)
	case strings.HasPrefix(line, "+"):
		return r.green(line)
	case strings.HasPrefix(line, "-"):
		return r.red(line)
	default:
		return line
	}
}
