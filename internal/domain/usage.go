package domain

// Snapshot is one immutable usage reading. It is either a report carrying the
// parsed quota windows, or a degraded snapshot recorded after a failed fetch.
// A degraded snapshot has no report, so it can never carry percentages.
//
// The zero value is a degraded snapshot without a plan.
type Snapshot struct {
	plan   Plan
	report *Report
}

// Report holds the quota windows returned by a successful fetch.
type Report struct {
	FiveHour       Window
	SevenDay       Window
	SevenDaySonnet Window
}

func NewReportSnapshot(plan Plan, report Report) Snapshot {
	return Snapshot{plan: plan, report: &report}
}

func NewDegradedSnapshot(plan Plan) Snapshot {
	return Snapshot{plan: plan}
}

func (s Snapshot) Plan() Plan {
	return s.plan
}

// APIUnavailable reports whether the snapshot was recorded after a failed fetch.
func (s Snapshot) APIUnavailable() bool {
	return s.report == nil
}

func (s Snapshot) Report() (Report, bool) {
	if s.report == nil {
		return Report{}, false
	}

	return *s.report, true
}

// Window returns the report window matching key. Degraded snapshots and
// HidePlan yield an empty window.
func (s Snapshot) Window(key HideKey) Window {
	if s.report == nil {
		return Window{}
	}

	switch key {
	case HideFiveHour:
		return s.report.FiveHour
	case HideSevenDay:
		return s.report.SevenDay
	case HideSevenDaySonnet:
		return s.report.SevenDaySonnet
	default:
		return Window{}
	}
}
