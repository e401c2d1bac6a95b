// Package doctor checks that termlinks can read its configuration, launch
// the programs that open links, and reach tmux.
package doctor

import (
	"context"
	"fmt"
)

// Status is the outcome of a single check item.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pass":
		*s = StatusPass
	case "warn":
		*s = StatusWarn
	case "fail":
		*s = StatusFail
	default:
		return fmt.Errorf("unknown status %q", b)
	}
	return nil
}

// Item is one line of a check result.
type Item struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Result groups the items reported by one check.
type Result struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

func (r *Result) pass(label, detail string) { r.add(StatusPass, label, detail) }
func (r *Result) warn(label, detail string) { r.add(StatusWarn, label, detail) }
func (r *Result) fail(label, detail string) { r.add(StatusFail, label, detail) }

func (r *Result) add(s Status, label, detail string) {
	r.Items = append(r.Items, Item{Label: label, Status: s, Detail: detail})
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// Summary counts items by status.
type Summary struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

// Report is the outcome of running every check.
type Report struct {
	Healthy bool     `json:"healthy"`
	Summary Summary  `json:"summary"`
	Checks  []Result `json:"checks"`
}

// RunAll runs checks in order. The report is healthy when no item failed;
// warnings do not count against it.
func RunAll(ctx context.Context, checks []Check) Report {
	report := Report{Checks: make([]Result, 0, len(checks))}

	for _, check := range checks {
		result := check.Run(ctx)
		for _, item := range result.Items {
			switch item.Status {
			case StatusPass:
				report.Summary.Passed++
			case StatusWarn:
				report.Summary.Warned++
			case StatusFail:
				report.Summary.Failed++
			}
		}
		report.Checks = append(report.Checks, result)
	}

	report.Healthy = report.Summary.Failed == 0
	return report
}
