package report

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/logdata/internal/application"
	"github.com/bnema/logdata/internal/domain"
)

// DefaultNameWidth matches the classic "%-18.18s" user column.
const DefaultNameWidth = 18

const columnGap = "    "

type RenderOptions struct {
	NameWidth int
	// ShowAsOf appends the time open sessions were closed at.
	ShowAsOf bool
}

func renderView(report application.Report, opts RenderOptions, s styles) string {
	width := opts.NameWidth
	if width <= 0 {
		width = DefaultNameWidth
	}

	lines := make([]string, 0, len(report.Rows)+3)
	for _, row := range report.Rows {
		lines = append(lines, rowLine(row, width, s))
	}

	if report.Total != nil {
		lines = append(lines, "", s.total.Render("Total duration for all users listed:")+" "+durationText(*report.Total, s))
	}

	if opts.ShowAsOf && !report.AsOf.IsZero() {
		lines = append(lines, s.meta.Render(fmt.Sprintf("open sessions counted until %s", report.AsOf.Format(time.RFC3339))))
	}

	return strings.Join(lines, "\n")
}

func rowLine(row application.ReportRow, width int, s styles) string {
	name := fitColumn(row.Username, width)
	pad := strings.Repeat(" ", width-utf8.RuneCountInString(name))

	nameStyle := s.user
	if !row.Known {
		nameStyle = s.unknown
	}

	return nameStyle.Render(name) + pad + columnGap + durationText(row.Seconds, s)
}

func durationText(seconds int64, s styles) string {
	text := domain.DisplayDuration(seconds)
	switch {
	case seconds == 0:
		return s.zero.Render(text)
	case seconds < 0:
		return s.negative.Render(text)
	default:
		return s.duration.Render(text)
	}
}

// fitColumn cuts name to at most width runes.
func fitColumn(name string, width int) string {
	if utf8.RuneCountInString(name) <= width {
		return name
	}

	runes := []rune(name)
	return string(runes[:width])
}
