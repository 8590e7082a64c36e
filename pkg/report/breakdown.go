package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/psantana5/wmsreport/pkg/wms"
)

// pipetaskInitLabel is the pipeline initialization task. The WMS does not
// yet track it in the run-summary encoding, so a declared order that does
// not start with it gets a synthetic single-job entry prepended.
const pipetaskInitLabel = "pipetaskInit"

// LabelTotal pairs a pipeline-stage label with its expected job count.
type LabelTotal struct {
	Label    string
	Expected int
}

// BreakdownRow is one label's line in the per-run breakdown table. A count
// of -1 means the label is known to neither the observed jobs nor the
// expected totals, which is distinct from an observed count of zero.
type BreakdownRow struct {
	Label    string
	Counts   map[wms.State]int
	Expected int
}

// Breakdown is the per-label job count matrix for a single run. Total
// aggregates the whole run; Rows follow the pipeline's declared stage
// order, or alphabetical observed-label order when MissingOrder is set.
type Breakdown struct {
	Total        BreakdownRow
	Rows         []BreakdownRow
	MissingOrder bool
}

// ParseRunSummary parses the "label:count;label:count;..." run-summary
// encoding into ordered per-label expected totals, prepending the
// synthetic pipetaskInit entry when the declared order omits it.
func ParseRunSummary(encoded string) ([]LabelTotal, error) {
	var totals []LabelTotal
	for _, part := range strings.Split(encoded, ";") {
		label, count, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("malformed run summary part %q: missing ':'", part)
		}
		expected, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("malformed run summary part %q: %w", part, err)
		}
		totals = append(totals, LabelTotal{Label: label, Expected: expected})
	}
	if len(totals) > 0 && totals[0].Label != pipetaskInitLabel {
		totals = append([]LabelTotal{{Label: pipetaskInitLabel, Expected: 1}}, totals...)
	}
	return totals, nil
}

// BuildBreakdown computes the label-by-state count matrix for run. The
// error path is an out-of-vocabulary job state; a missing or malformed
// run-summary encoding only degrades the label ordering.
func BuildBreakdown(run *wms.RunReport) (*Breakdown, error) {
	byLabel := GroupByLabel(run.Jobs)

	var labelOrder []LabelTotal
	missingOrder := false
	if run.RunSummary != "" {
		var err error
		labelOrder, err = ParseRunSummary(run.RunSummary)
		if err != nil {
			log.Warn().Err(err).Str("run", run.WmsID).Msg("cannot parse run summary")
			labelOrder = nil
		}
	}
	if labelOrder == nil {
		log.Warn().Str("run", run.WmsID).
			Msg("cannot determine order of pipeline, printing labels alphabetically")
		missingOrder = true
		labels := make([]string, 0, len(byLabel))
		for label := range byLabel {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			labelOrder = append(labelOrder, LabelTotal{Label: label})
		}
	}

	expected := make(map[string]int, len(labelOrder))
	expectedSum := 0
	if !missingOrder {
		for _, lt := range labelOrder {
			expected[lt.Label] = lt.Expected
			expectedSum += lt.Expected
		}
	}

	total := BreakdownRow{
		Label:    "TOTAL",
		Counts:   make(map[wms.State]int, len(wms.AllStates())),
		Expected: expectedSum,
	}
	for _, state := range wms.AllStates() {
		total.Counts[state] = run.StateCount(state)
	}

	breakdown := &Breakdown{Total: total, MissingOrder: missingOrder}
	for _, lt := range labelOrder {
		row, err := buildLabelRow(lt.Label, byLabel, expected)
		if err != nil {
			return nil, err
		}
		breakdown.Rows = append(breakdown.Rows, row)
	}
	return breakdown, nil
}

// buildLabelRow reconciles one label's observed jobs against its declared
// expected total. Observed jobs are authoritative; a declared label with
// no observed jobs has its whole shortfall attributed to UNREADY (jobs not
// yet materialized by the WMS are assumed unready); a label known to
// neither side gets -1 sentinels to distinguish "cannot determine" from
// "zero jobs in this state".
func buildLabelRow(label string, byLabel map[string][]wms.JobReport, expected map[string]int) (BreakdownRow, error) {
	counts := make(map[wms.State]int, len(wms.AllStates()))
	for _, state := range wms.AllStates() {
		counts[state] = 0
	}
	if jobs, observed := byLabel[label]; observed {
		byState, err := GroupByState(jobs)
		if err != nil {
			return BreakdownRow{}, err
		}
		for _, state := range wms.AllStates() {
			counts[state] = len(byState[state])
		}
	} else if expectedTotal, declared := expected[label]; declared {
		// alreadyCounted is always zero on this branch, but the shortfall
		// form keeps the attribution correct if partial counts ever appear.
		alreadyCounted := 0
		for _, n := range counts {
			alreadyCounted += n
		}
		if alreadyCounted != expectedTotal {
			counts[wms.StateUnready] += expectedTotal - alreadyCounted
		}
	} else {
		for _, state := range wms.AllStates() {
			counts[state] = -1
		}
	}
	return BreakdownRow{Label: label, Counts: counts, Expected: expected[label]}, nil
}
