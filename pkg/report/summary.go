package report

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/psantana5/wmsreport/pkg/wms"
)

// SummaryRow is one run's line in the multi-run summary table.
type SummaryRow struct {
	Flag             string
	State            string
	PercentSucceeded string
	WmsID            string
	Operator         string
	Project          string
	Campaign         string
	Payload          string
	Run              string
}

// SummaryBuilder accumulates summary rows across runs. Rows keep the order
// they were added in; the caller decides run ordering before adding.
type SummaryBuilder struct {
	rows []SummaryRow
}

// Add computes and appends the summary row for one run.
func (b *SummaryBuilder) Add(run *wms.RunReport) {
	b.rows = append(b.rows, SummaryRow{
		Flag:             attentionFlag(run),
		State:            run.State.String(),
		PercentSucceeded: percentSucceeded(run),
		WmsID:            run.WmsID,
		Operator:         run.Operator,
		Project:          run.Project,
		Campaign:         run.Campaign,
		Payload:          run.Payload,
		Run:              run.Run,
	})
}

// Rows returns the accumulated rows.
func (b *SummaryBuilder) Rows() []SummaryRow {
	return b.rows
}

// attentionFlag marks running workflows that may need human attention.
// Only the highest-priority condition applies: FAILED over DELETED over
// HELD. Runs in any other overall state are never flagged.
func attentionFlag(run *wms.RunReport) string {
	if run.State != wms.StateRunning {
		return " "
	}
	switch {
	case run.StateCount(wms.StateFailed) > 0:
		return "F"
	case run.StateCount(wms.StateDeleted) > 0:
		return "D"
	case run.StateCount(wms.StateHeld) > 0:
		return "H"
	default:
		return " "
	}
}

// percentSucceeded renders the succeeded fraction as a truncated integer
// percentage, or "UNK" when the job total is not known.
func percentSucceeded(run *wms.RunReport) string {
	log.Debug().
		Int("total_jobs", run.TotalJobs).
		Int("succeeded", run.StateCount(wms.StateSucceeded)).
		Str("run", run.WmsID).
		Msg("computing percent succeeded")
	if run.TotalJobs == 0 {
		return "UNK"
	}
	return strconv.Itoa(run.StateCount(wms.StateSucceeded) * 100 / run.TotalJobs)
}
