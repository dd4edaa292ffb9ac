package statusline

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/bnema/cc-quota/internal/domain"
)

const (
	NotAuthenticated = "Not authenticated"
	APIUnavailable   = "API unavailable"
	NoUsageData      = "No usage data"
	Separator        = " | "

	DefaultBarWidth = 10
	MaxBarWidth     = 1000

	filledGlyph = "█"
	emptyGlyph  = "░"
)

type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatPlain, FormatJSON:
		return Format(raw), nil
	case "":
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unsupported format %q (valid: plain, json)", raw)
	}
}

type RenderOptions struct {
	Format Format
	Bar    bool
	// BarWidth is truncated to an integer and clamped to at least 1.
	BarWidth float64
	Hide     domain.HideSet
	Color    bool
}

var windowLabels = []struct {
	key   domain.HideKey
	label string
}{
	{key: domain.HideFiveHour, label: "5h"},
	{key: domain.HideSevenDay, label: "7d"},
	{key: domain.HideSevenDaySonnet, label: "7d Sonnet"},
}

// Render formats snapshot for the status line. A nil snapshot means no
// credentials could be resolved.
func Render(snapshot *domain.Snapshot, opts RenderOptions) (string, error) {
	if opts.Format == FormatJSON {
		return renderJSON(snapshot)
	}

	return renderPlain(snapshot, opts, newStyles(opts.Color)), nil
}

type errorPayload struct {
	Error string `json:"error"`
}

func renderJSON(snapshot *domain.Snapshot) (string, error) {
	var value any = errorPayload{Error: NotAuthenticated}
	if snapshot != nil {
		value = *snapshot
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode usage json: %w", err)
	}

	return string(data), nil
}

func renderPlain(snapshot *domain.Snapshot, opts RenderOptions, s styles) string {
	if snapshot == nil {
		return NotAuthenticated
	}

	segments := make([]string, 0, 4)
	if plan := snapshot.Plan(); plan != domain.PlanNone && !opts.Hide.Has(domain.HidePlan) {
		segments = append(segments, s.render(s.plan, string(plan)))
	}

	if snapshot.APIUnavailable() {
		segments = append(segments, s.render(s.notice, APIUnavailable))
		return joinSegments(segments, s)
	}

	for _, window := range windowLabels {
		utilization := snapshot.Window(window.key).Utilization
		if utilization == nil || opts.Hide.Has(window.key) {
			continue
		}

		segments = append(segments, percentSegment(window.label, *utilization, opts, s))
	}

	if len(segments) == 0 {
		return NoUsageData
	}

	return joinSegments(segments, s)
}

func percentSegment(label string, percent int, opts RenderOptions, s styles) string {
	bar := ""
	if opts.Bar {
		bar = renderProgressBar(percent, opts.BarWidth, s)
	}

	return fmt.Sprintf("%s %s%d%%", s.render(s.label, label+":"), bar, percent)
}

func joinSegments(segments []string, s styles) string {
	return strings.Join(segments, s.render(s.separator, Separator))
}

// renderProgressBar draws exactly clampWidth(width) glyphs with
// round(percent/100*width) filled, rounding half up.
func renderProgressBar(percent int, width float64, s styles) string {
	w := clampWidth(width)
	filled := int(math.Floor(float64(percent)/100*float64(w) + 0.5))
	if filled < 0 {
		filled = 0
	}
	if filled > w {
		filled = w
	}

	return s.render(s.barBracket, "[") +
		s.render(s.barFill(percent), strings.Repeat(filledGlyph, filled)) +
		s.render(s.barEmpty, strings.Repeat(emptyGlyph, w-filled)) +
		s.render(s.barBracket, "]")
}

func clampWidth(width float64) int {
	if math.IsNaN(width) || width < 1 {
		return 1
	}
	if width > MaxBarWidth {
		return MaxBarWidth
	}

	return int(math.Trunc(width))
}
