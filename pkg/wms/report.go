package wms

// JobReport is the reported status of a single job within a run.
type JobReport struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	State State  `json:"state"`
}

// RunReport is the aggregate status of one workflow run as reported by the
// WMS, plus the per-job detail when available.
type RunReport struct {
	WmsID    string `json:"wms_id"`
	Operator string `json:"operator"`
	Project  string `json:"project"`
	Campaign string `json:"campaign"`
	Payload  string `json:"payload"`
	Run      string `json:"run"`
	State    State  `json:"state"`
	Path     string `json:"path"`

	// TotalJobs is the number of jobs in the run; JobStateCounts has an
	// entry (possibly 0) for every vocabulary state and sums to TotalJobs
	// when populated.
	TotalJobs      int           `json:"total_jobs"`
	JobStateCounts map[State]int `json:"job_state_counts,omitempty"`
	Jobs           []JobReport   `json:"jobs,omitempty"`

	// RunSummary encodes expected per-label job counts in pipeline order
	// as "label:count;label:count;...". Empty when the WMS cannot supply
	// the pipeline order.
	RunSummary string `json:"run_summary,omitempty"`
}

// StateCount returns the count for state, treating missing entries as 0.
func (r *RunReport) StateCount(state State) int {
	if r.JobStateCounts == nil {
		return 0
	}
	return r.JobStateCounts[state]
}
