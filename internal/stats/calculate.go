package stats

import "math"

// PlayerStats is the derived metric set reported for one player. Values are
// recomputed fresh from the aggregate on every call, never stored.
type PlayerStats struct {
	TotalHands     int     `json:"total_hands"`
	VPIP           int     `json:"vpip_pct"`
	PFR            int     `json:"pfr_pct"`
	ThreeBet       int     `json:"three_bet_pct"`
	WentToShowdown float64 `json:"went_to_showdown_pct"`
	ShowdownWin    float64 `json:"showdown_win_pct"`
	Tightness      float64 `json:"tightness_score"`
}

// Tightness Score weights for (1-VPIP), (1-PFR), (1-3Bet).
const (
	tightnessVPIPWeight     = 0.5
	tightnessPFRWeight      = 0.3
	tightnessThreeBetWeight = 0.2
)

// Calculate derives the reported percentages for every player with at least
// one recorded preflop action. All divisions are zero-guarded and rounding
// is half-to-even at each metric's stated precision.
func Calculate(agg *Aggregate) map[string]PlayerStats {
	out := make(map[string]PlayerStats)
	for _, id := range agg.Players() {
		p, _ := agg.Player(id)
		numHands := p.Preflop.Total()
		if numHands == 0 {
			continue
		}

		vpip := roundPct(p.Preflop.Calls+p.Preflop.Raises, numHands)
		pfr := roundPct(p.Preflop.Raises, numHands)

		threeBet := 0
		if p.ThreeBet.Total() > 0 && p.ThreeBetChances > 0 {
			threeBet = roundPct(p.ThreeBet.Raises, p.ThreeBetChances)
		}

		wentToShowdown := 0.0
		if numHands > 0 {
			wentToShowdown = round2(100 * float64(p.Showdowns) / float64(numHands))
		}
		showdownWin := 0.0
		if p.Showdowns > 0 {
			showdownWin = round2(100 * float64(p.ShowdownWins) / float64(p.Showdowns))
		}

		tightness := round1(100 * ((1-float64(vpip)/100)*tightnessVPIPWeight +
			(1-float64(pfr)/100)*tightnessPFRWeight +
			(1-float64(threeBet)/100)*tightnessThreeBetWeight))

		out[id] = PlayerStats{
			TotalHands:     numHands,
			VPIP:           vpip,
			PFR:            pfr,
			ThreeBet:       threeBet,
			WentToShowdown: wentToShowdown,
			ShowdownWin:    showdownWin,
			Tightness:      tightness,
		}
	}
	return out
}

// roundPct rounds 100*n/d half-to-even to a whole percentage.
func roundPct(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.RoundToEven(100 * float64(n) / float64(d)))
}

func round1(x float64) float64 {
	return math.RoundToEven(x*10) / 10
}

func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
