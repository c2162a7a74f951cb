// Package stats folds per-hand action records into running per-player
// counters and derives the reported session metrics from them.
package stats

import (
	"sort"

	"github.com/pokerhud/pokernow-stats/internal/parser"
)

// PreflopHistogram counts consolidated fold/call/raise classifications.
type PreflopHistogram struct {
	Folds  int `json:"folds"`
	Calls  int `json:"calls"`
	Raises int `json:"raises"`
}

// Total is the number of hands contributing to the histogram.
func (h PreflopHistogram) Total() int {
	return h.Folds + h.Calls + h.Raises
}

func (h *PreflopHistogram) add(action parser.Action) {
	switch action {
	case parser.ActionFolds:
		h.Folds++
	case parser.ActionCalls:
		h.Calls++
	case parser.ActionRaises:
		h.Raises++
	}
}

func (h *PreflopHistogram) merge(other PreflopHistogram) {
	h.Folds += other.Folds
	h.Calls += other.Calls
	h.Raises += other.Raises
}

// FlopHistogram counts continuation-bet-context flop actions.
type FlopHistogram struct {
	Bets   int `json:"bets"`
	Checks int `json:"checks"`
	Folds  int `json:"folds"`
	Calls  int `json:"calls"`
	Raises int `json:"raises"`
}

func (h *FlopHistogram) add(action parser.Action) {
	switch action {
	case parser.ActionBets:
		h.Bets++
	case parser.ActionChecks:
		h.Checks++
	case parser.ActionFolds:
		h.Folds++
	case parser.ActionCalls:
		h.Calls++
	case parser.ActionRaises:
		h.Raises++
	}
}

func (h *FlopHistogram) merge(other FlopHistogram) {
	h.Bets += other.Bets
	h.Checks += other.Checks
	h.Folds += other.Folds
	h.Calls += other.Calls
	h.Raises += other.Raises
}

// PlayerAggregate is the running counter set for one player across a
// session. Counters only ever increase.
type PlayerAggregate struct {
	Preflop  PreflopHistogram
	ThreeBet PreflopHistogram
	// CBet is tracked across the session but currently feeds no reported
	// metric; it stays part of the aggregate contract.
	CBet            FlopHistogram
	ThreeBetChances int
	Showdowns       int
	ShowdownWins    int
}

// Aggregate owns every per-player counter for a session. It is built by a
// pure additive reduction over hand records, so merge order between hands
// never changes the result.
type Aggregate struct {
	players map[string]*PlayerAggregate
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{players: make(map[string]*PlayerAggregate)}
}

// Player looks up one player's counters without creating an entry. Unknown
// players report the zero aggregate and false.
func (a *Aggregate) Player(id string) (PlayerAggregate, bool) {
	if p, ok := a.players[id]; ok {
		return *p, true
	}
	return PlayerAggregate{}, false
}

// Players returns every known player ID in sorted order.
func (a *Aggregate) Players() []string {
	ids := make([]string, 0, len(a.players))
	for id := range a.players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (a *Aggregate) player(id string) *PlayerAggregate {
	p, ok := a.players[id]
	if !ok {
		p = &PlayerAggregate{}
		a.players[id] = p
	}
	return p
}

// AddHand folds one hand record into the running counters.
func (a *Aggregate) AddHand(rec parser.HandRecord) {
	for player, action := range rec.Preflop {
		a.player(player).Preflop.add(action)
	}
	for player, action := range rec.ThreeBet {
		a.player(player).ThreeBet.add(action)
	}
	for player, action := range rec.CBet {
		a.player(player).CBet.add(action)
	}
	for player := range rec.CanThreeBet {
		a.player(player).ThreeBetChances++
	}
	for player := range rec.ShowedDown {
		p := a.player(player)
		p.Showdowns++
		if _, won := rec.WonShowdown[player]; won {
			p.ShowdownWins++
		}
	}
}

// Merge adds every counter of other into a.
func (a *Aggregate) Merge(other *Aggregate) {
	for id, theirs := range other.players {
		ours := a.player(id)
		ours.Preflop.merge(theirs.Preflop)
		ours.ThreeBet.merge(theirs.ThreeBet)
		ours.CBet.merge(theirs.CBet)
		ours.ThreeBetChances += theirs.ThreeBetChances
		ours.Showdowns += theirs.Showdowns
		ours.ShowdownWins += theirs.ShowdownWins
	}
}
