package parser

import "strings"

// Street identifies the betting round a line belongs to.
type Street int

const (
	StreetPreflop Street = iota
	StreetFlop
	StreetTurn
	StreetRiver
)

// HandRecord is the distilled outcome of one hand: one consolidated action
// classification per player per category plus showdown membership. It is
// produced once per hand and consumed immediately by the aggregator.
type HandRecord struct {
	// Preflop holds each player's first preflop action of the hand; later
	// preflop actions never overwrite it.
	Preflop map[string]Action
	// ThreeBet holds the last 3-bet-context action per player: the second
	// raise itself, or how the original raiser responded to it.
	ThreeBet map[string]Action
	// CBet holds the last continuation-bet-context flop action per player.
	CBet map[string]Action
	// CanThreeBet is the set of players who acted while exactly one raise
	// was outstanding, each counted at most once per hand.
	CanThreeBet map[string]struct{}
	// ShowedDown is the set of players who revealed a holding.
	ShowedDown map[string]struct{}
	// WonShowdown is the subset of ShowedDown that also collected a pot.
	WonShowdown map[string]struct{}
}

// handState is the cross-line mutable state of a single hand scan.
type handState struct {
	street        Street
	raiseCount    int
	firstRaiser   string
	preflopRaiser string
	hasCBet       bool
}

// ScanHand walks one hand's lines in order and produces its record.
//
// A street marker line switches the current street for the remainder of the
// hand, including the marker line itself: if that same line also carries an
// action keyword it is evaluated under the new street. Turn and river lines
// are never scanned for actions.
func ScanHand(lines []string) HandRecord {
	rec := HandRecord{
		Preflop:     make(map[string]Action),
		ThreeBet:    make(map[string]Action),
		CBet:        make(map[string]Action),
		CanThreeBet: make(map[string]struct{}),
		ShowedDown:  make(map[string]struct{}),
		WonShowdown: make(map[string]struct{}),
	}
	st := handState{street: StreetPreflop}
	collectors := make(map[string]struct{})

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "Flop"):
			st.street = StreetFlop
		case strings.HasPrefix(line, "Turn"):
			st.street = StreetTurn
		case strings.HasPrefix(line, "River"):
			st.street = StreetRiver
		}

		if st.street == StreetPreflop {
			if action, ok := matchAction(line, preflopActions); ok {
				st.preflop(&rec, PlayerID(line), action)
			}
		}
		if st.street == StreetFlop {
			if action, ok := matchAction(line, flopActions); ok {
				st.flop(&rec, PlayerID(line), action)
			}
		}

		if strings.Contains(line, showdownMarker) {
			rec.ShowedDown[PlayerID(line)] = struct{}{}
		}
		if strings.Contains(line, collectedMarker) && strings.Contains(line, fromPotMarker) {
			collectors[PlayerID(line)] = struct{}{}
		}
	}

	// Split pots: every shower who also collected wins independently.
	for player := range rec.ShowedDown {
		if _, ok := collectors[player]; ok {
			rec.WonShowdown[player] = struct{}{}
		}
	}
	return rec
}

func (st *handState) preflop(rec *HandRecord, player string, action Action) {
	if st.raiseCount == 1 {
		rec.CanThreeBet[player] = struct{}{}
	}
	if _, seen := rec.Preflop[player]; !seen {
		rec.Preflop[player] = action
	}
	if action == ActionRaises {
		st.preflopRaiser = player
		st.raiseCount++
		if st.raiseCount == 1 {
			st.firstRaiser = player
		}
		if st.raiseCount == 2 {
			rec.ThreeBet[player] = action
		}
	} else if st.raiseCount == 2 && player == st.firstRaiser {
		// The original raiser's fold or call facing the 3-bet.
		rec.ThreeBet[player] = action
	}
}

func (st *handState) flop(rec *HandRecord, player string, action Action) {
	if player == st.preflopRaiser && (action == ActionBets || action == ActionChecks) {
		rec.CBet[player] = action
		if action == ActionBets {
			st.hasCBet = true
		}
	} else if st.hasCBet {
		rec.CBet[player] = action
		if action == ActionRaises {
			// A raise ends the continuation-bet line; later flop actions
			// before a new bet are not attributed.
			st.hasCBet = false
		}
	}
}
