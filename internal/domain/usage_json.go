package domain

import (
	"encoding/json"
	"time"
)

// usageDataJSON is the flat wire shape shared by the cache file and the JSON
// output format. Absent values encode as null.
type usageDataJSON struct {
	PlanName              *string    `json:"planName"`
	FiveHour              *int       `json:"fiveHour"`
	SevenDay              *int       `json:"sevenDay"`
	SevenDaySonnet        *int       `json:"sevenDaySonnet"`
	FiveHourResetAt       *time.Time `json:"fiveHourResetAt"`
	SevenDayResetAt       *time.Time `json:"sevenDayResetAt"`
	SevenDaySonnetResetAt *time.Time `json:"sevenDaySonnetResetAt"`
	APIUnavailable        bool       `json:"apiUnavailable,omitempty"`
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	out := usageDataJSON{APIUnavailable: s.APIUnavailable()}
	if s.plan != PlanNone {
		out.PlanName = Ptr(string(s.plan))
	}

	if report, ok := s.Report(); ok {
		out.FiveHour = report.FiveHour.Utilization
		out.SevenDay = report.SevenDay.Utilization
		out.SevenDaySonnet = report.SevenDaySonnet.Utilization
		out.FiveHourResetAt = utcTime(report.FiveHour.ResetsAt)
		out.SevenDayResetAt = utcTime(report.SevenDay.ResetsAt)
		out.SevenDaySonnetResetAt = utcTime(report.SevenDaySonnet.ResetsAt)
	}

	return json.Marshal(out)
}

// UnmarshalJSON restores a snapshot. When apiUnavailable is set any
// percentage or reset fields in the payload are discarded.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var in usageDataJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	plan := PlanNone
	if in.PlanName != nil {
		plan = parsePlan(*in.PlanName)
	}

	if in.APIUnavailable {
		*s = NewDegradedSnapshot(plan)
		return nil
	}

	*s = NewReportSnapshot(plan, Report{
		FiveHour:       Window{Utilization: in.FiveHour, ResetsAt: utcTime(in.FiveHourResetAt)},
		SevenDay:       Window{Utilization: in.SevenDay, ResetsAt: utcTime(in.SevenDayResetAt)},
		SevenDaySonnet: Window{Utilization: in.SevenDaySonnet, ResetsAt: utcTime(in.SevenDaySonnetResetAt)},
	})
	return nil
}

func utcTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return Ptr(t.UTC())
}
