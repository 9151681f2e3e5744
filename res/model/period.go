package model

import "bookline-admin/sys/graphql/scalar"

// OpeningPeriod is one entry of a business's opening schedule. Periods are
// an ordered collection embedded on the parent business and replaced
// wholesale on every edit; each period carries a stable ID minted at append
// time so removals target an element, never a display index.
type OpeningPeriod struct {
	ID    string      `json:"id"`
	Start scalar.Date `json:"start"`
	End   scalar.Date `json:"end"`
}

type OpeningPeriodInput struct {
	ID    *string     `json:"id,omitempty"`
	Start scalar.Date `json:"start"`
	End   scalar.Date `json:"end"`
}

// PeriodInputs converts a current collection into the input shape the
// full-collection replace mutations expect, preserving order and IDs.
func PeriodInputs(periods []OpeningPeriod) []OpeningPeriodInput {
	inputs := make([]OpeningPeriodInput, len(periods))
	for i, p := range periods {
		id := p.ID
		inputs[i] = OpeningPeriodInput{ID: &id, Start: p.Start, End: p.End}
	}
	return inputs
}
