package domain

import "strings"

type Plan string

const (
	PlanNone Plan = ""
	PlanMax  Plan = "Max"
	PlanPro  Plan = "Pro"
	PlanTeam Plan = "Team"
)

// PlanFromSubscription derives a display plan from the subscription tier
// stored alongside the OAuth token. Matching is by case-insensitive substring,
// checked in the order max, pro, team.
func PlanFromSubscription(subscriptionType string) Plan {
	lower := strings.ToLower(subscriptionType)
	switch {
	case strings.Contains(lower, "max"):
		return PlanMax
	case strings.Contains(lower, "pro"):
		return PlanPro
	case strings.Contains(lower, "team"):
		return PlanTeam
	default:
		return PlanNone
	}
}

func parsePlan(raw string) Plan {
	switch Plan(raw) {
	case PlanMax, PlanPro, PlanTeam:
		return Plan(raw)
	default:
		return PlanNone
	}
}
