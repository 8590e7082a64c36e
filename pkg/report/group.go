// Package report turns WMS run reports into human-readable summary and
// per-label breakdown tables.
package report

import (
	"fmt"

	"github.com/psantana5/wmsreport/pkg/wms"
)

// UnknownStateError reports a job whose state is outside the declared
// vocabulary. The WMS backend is expected to only emit vocabulary states,
// so this is a precondition violation, not a recoverable condition.
type UnknownStateError struct {
	Job   string
	State wms.State
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("job %q has unknown state %d", e.Job, int(e.State))
}

// GroupByState partitions jobs by state. Every vocabulary state is present
// in the result, possibly with an empty group, so callers can iterate the
// full vocabulary without existence checks.
func GroupByState(jobs []wms.JobReport) (map[wms.State][]wms.JobReport, error) {
	byState := make(map[wms.State][]wms.JobReport, len(wms.AllStates()))
	for _, state := range wms.AllStates() {
		byState[state] = []wms.JobReport{}
	}
	for _, job := range jobs {
		if !job.State.Valid() {
			return nil, &UnknownStateError{Job: job.Name, State: job.State}
		}
		byState[job.State] = append(byState[job.State], job)
	}
	return byState, nil
}

// GroupByLabel groups jobs by their pipeline-stage label. Keys are created
// as labels are encountered; callers impose ordering separately.
func GroupByLabel(jobs []wms.JobReport) map[string][]wms.JobReport {
	byLabel := make(map[string][]wms.JobReport)
	for _, job := range jobs {
		byLabel[job.Label] = append(byLabel[job.Label], job)
	}
	return byLabel
}
