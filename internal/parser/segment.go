// Package parser reconstructs poker hands from raw PokerNow log lines and
// distills each hand into a consolidated per-player action record.
//
// PokerNow logs are free text, so everything here works on substring and
// prefix heuristics. Unrecognised lines simply fail every test and are
// ignored; nothing in this package returns an error.
package parser

import "strings"

// Hand boundary markers written by PokerNow between deals.
const (
	handStartMarker = "-- starting"
	handEndMarker   = "-- ending"
)

// SegmentHands splits an ordered line sequence into discrete hands. A line
// beginning with the start marker opens collection and a line beginning with
// the end marker closes it; the delimiting markers themselves are excluded.
// Hands with no collected lines are dropped, and lines outside any open hand
// are discarded. A second start marker while a hand is open keeps appending
// to the open hand rather than resetting it.
func SegmentHands(lines []string) [][]string {
	var hands [][]string
	var current []string
	inHand := false
	for _, line := range lines {
		if strings.HasPrefix(line, handEndMarker) {
			inHand = false
			if len(current) > 0 {
				hands = append(hands, current)
			}
			current = nil
		}
		if inHand {
			current = append(current, line)
		}
		if strings.HasPrefix(line, handStartMarker) {
			inHand = true
		}
	}
	return hands
}
