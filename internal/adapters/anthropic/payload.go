package anthropic

import (
	"encoding/json"
	"math"
	"time"

	"github.com/bnema/cc-quota/internal/domain"
)

// Fields stay raw so that one malformed value drops only itself.
type usageWindow struct {
	Utilization json.RawMessage `json:"utilization"`
	ResetsAt    json.RawMessage `json:"resets_at"`
}

// Windows stay raw too: a window that is not an object is dropped alone.
type usagePayload struct {
	FiveHour       json.RawMessage `json:"five_hour"`
	SevenDay       json.RawMessage `json:"seven_day"`
	SevenDaySonnet json.RawMessage `json:"seven_day_sonnet"`
}

func (p usagePayload) toReport() domain.Report {
	return domain.Report{
		FiveHour:       toWindow(p.FiveHour),
		SevenDay:       toWindow(p.SevenDay),
		SevenDaySonnet: toWindow(p.SevenDaySonnet),
	}
}

func toWindow(raw json.RawMessage) domain.Window {
	if len(raw) == 0 {
		return domain.Window{}
	}

	var w *usageWindow
	if err := json.Unmarshal(raw, &w); err != nil || w == nil {
		return domain.Window{}
	}

	return domain.Window{
		Utilization: parseUtilization(w.Utilization),
		ResetsAt:    parseResetsAt(w.ResetsAt),
	}
}

// parseUtilization accepts a finite number in [0,100] and rounds half up.
// Anything else is dropped, never clamped.
func parseUtilization(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	var number *float64
	if err := json.Unmarshal(raw, &number); err != nil || number == nil {
		return nil
	}

	value := *number
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > 100 {
		return nil
	}

	return domain.Ptr(int(math.Floor(value + 0.5)))
}

var resetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

func parseResetsAt(raw json.RawMessage) *time.Time {
	if len(raw) == 0 {
		return nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil || value == "" {
		return nil
	}

	for _, layout := range resetLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return domain.Ptr(parsed.UTC())
		}
	}

	return nil
}
