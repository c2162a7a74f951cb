package parser

import "strings"

// Action is a recognised player action keyword.
type Action string

const (
	ActionFolds  Action = "folds"
	ActionCalls  Action = "calls"
	ActionRaises Action = "raises"
	ActionBets   Action = "bets"
	ActionChecks Action = "checks"
)

// Keyword vocabularies in priority order. Matching is plain substring
// containment; when a line contains several keywords only the first in
// vocabulary order is acted on for that pass.
var (
	preflopActions = []Action{ActionFolds, ActionCalls, ActionRaises}
	flopActions    = []Action{ActionBets, ActionChecks, ActionFolds, ActionCalls, ActionRaises}
)

// Showdown and pot-collection markers, checked on every line of a hand.
const (
	showdownMarker  = "shows a"
	collectedMarker = "collected"
	fromPotMarker   = "from pot"
)

// PlayerID extracts the normalized player identity from a log line.
//
// PokerNow writes actors as `"name @ deviceID" raises to 20`, so the name
// sits between the opening quote and the " @" separator. Lines without the
// separator fall back to the first whitespace token with surrounding quotes
// stripped. Identities are lowercased and extraction is total: any input
// yields some string, meaningful or not. Callers only invoke it on lines
// already known to carry a relevant keyword.
func PlayerID(line string) string {
	if i := strings.Index(line, " @"); i >= 0 {
		if i < 1 {
			return ""
		}
		return strings.ToLower(line[1:i])
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Trim(fields[0], `"`))
}

// matchAction returns the first keyword of vocab contained in line.
func matchAction(line string, vocab []Action) (Action, bool) {
	for _, kw := range vocab {
		if strings.Contains(line, string(kw)) {
			return kw, true
		}
	}
	return "", false
}
