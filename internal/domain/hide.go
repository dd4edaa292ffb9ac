package domain

type HideKey string

const (
	HidePlan           HideKey = "plan"
	HideFiveHour       HideKey = "5h"
	HideSevenDay       HideKey = "7d"
	HideSevenDaySonnet HideKey = "7d-sonnet"
)

// HideKeys lists the valid keys in status line order.
var HideKeys = []HideKey{HidePlan, HideFiveHour, HideSevenDay, HideSevenDaySonnet}

// ParseHideKey matches raw against the valid keys. Matching is case-sensitive.
func ParseHideKey(raw string) (HideKey, bool) {
	for _, key := range HideKeys {
		if string(key) == raw {
			return key, true
		}
	}

	return "", false
}

type HideSet map[HideKey]struct{}

func NewHideSet(keys ...HideKey) HideSet {
	set := make(HideSet, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

func (h HideSet) Has(key HideKey) bool {
	_, ok := h[key]
	return ok
}
