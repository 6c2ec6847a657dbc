// Package render turns solver results and diagnostics into text transcripts
// and JSON documents. It performs no planning of its own; everything here is
// a pure projection of shunt and distance values.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kantarellen1/TrainSystemNL/distance"
	"github.com/Kantarellen1/TrainSystemNL/shunt"
)

// infiniteLabel is how an unreachable distance reads in output.
const infiniteLabel = "infinite"

// PlanStep is the JSON shape of one plan step.
type PlanStep struct {
	Action   string            `json:"action"`
	Loco     string            `json:"loco"`
	Attached []string          `json:"attached,omitempty"`
	Cars     map[string]string `json:"cars"`
}

// PlanDocument is the JSON shape of a full solve outcome.
type PlanDocument struct {
	Solved   bool       `json:"solved"`
	Outcome  string     `json:"outcome"`
	Cost     int        `json:"cost"`
	Expanded int        `json:"expanded"`
	Steps    []PlanStep `json:"steps,omitempty"`
}

// DiagnosticDocument is the JSON shape of a per-car distance report.
type DiagnosticDocument struct {
	Car      string `json:"car"`
	From     string `json:"from"`
	Distance string `json:"distance"`
}

// Plan projects a successful Result into its JSON document.
func Plan(res shunt.Result) PlanDocument {
	doc := PlanDocument{
		Solved:   true,
		Outcome:  "solved",
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Steps:    make([]PlanStep, 0, len(res.Plan)),
	}
	for _, step := range res.Plan {
		doc.Steps = append(doc.Steps, PlanStep{
			Action:   step.Action.String(),
			Loco:     step.State.Loco,
			Attached: append([]string(nil), step.State.Attached...),
			Cars:     copyCars(step.State.Cars),
		})
	}

	return doc
}

// Failure projects a failed solve (Unsolvable or BudgetExhausted) into a
// document with no steps. Any other error renders as "error".
func Failure(res shunt.Result, err error) PlanDocument {
	outcome := "error"
	switch {
	case err == nil:
		outcome = "solved"
	case errors.Is(err, shunt.ErrUnsolvable):
		outcome = "unsolvable"
	case errors.Is(err, shunt.ErrBudgetExhausted):
		outcome = "budget-exhausted"
	}

	return PlanDocument{Outcome: outcome, Expanded: res.Expanded}
}

// PlanText renders a numbered, human-readable transcript of a plan.
func PlanText(res shunt.Result) string {
	var b strings.Builder
	for i, step := range res.Plan {
		fmt.Fprintf(&b, "%3d. %-12s loco=%s", i+1, step.Action.String(), step.State.Loco)
		if len(step.State.Attached) > 0 {
			fmt.Fprintf(&b, " attached=[%s]", strings.Join(step.State.Attached, " "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "solved in %d actions (%d states expanded)\n", res.Cost, res.Expanded)

	return b.String()
}

// Diagnostic projects a per-car distance into its document, mapping the
// sentinel onto the "infinite" label.
func Diagnostic(car, from string, d int) DiagnosticDocument {
	doc := DiagnosticDocument{Car: car, From: from}
	if d == distance.Unreachable {
		doc.Distance = infiniteLabel
	} else {
		doc.Distance = fmt.Sprintf("%d", d)
	}

	return doc
}

// DiagnosticText renders the same report as one line of text.
func DiagnosticText(car, from string, d int) string {
	doc := Diagnostic(car, from, d)

	return fmt.Sprintf("car %s from %s: %s", doc.Car, doc.From, doc.Distance)
}

func copyCars(cars map[string]string) map[string]string {
	out := make(map[string]string, len(cars))
	for id, node := range cars {
		out[id] = node
	}

	return out
}
