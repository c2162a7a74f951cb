// Package display renders session statistics as styled terminal tables and
// panels.
package display

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pokerhud/pokernow-stats/internal/stats"
)

// Table column names, also the accepted sort keys.
const (
	ColPlayer      = "Player ID"
	ColNumber      = "Number"
	ColHands       = "Total Hands"
	ColVPIP        = "VPIP (%)"
	ColPFR         = "PFR (%)"
	ColThreeBet    = "3Bet (%)"
	ColWTSD        = "Went to Showdown (%)"
	ColShowdownWin = "Showdown Win (%)"
	ColTightness   = "Tightness Score"
)

var sortColumns = []string{
	ColTightness, ColHands, ColVPIP, ColPFR, ColThreeBet, ColWTSD, ColShowdownWin,
}

// NormalizeSort validates a requested sort column, falling back to the
// tightness score.
func NormalizeSort(column string) string {
	for _, col := range sortColumns {
		if col == column {
			return column
		}
	}
	return ColTightness
}

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4")).
			Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))

	panelLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Rank colors for the top three rows of the chosen sort metric.
	rankStyles = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
	}
)

// Renderer writes styled statistics output to a single destination.
type Renderer struct {
	out        io.Writer
	thresholds Thresholds
}

// NewRenderer returns a renderer using the given color thresholds.
func NewRenderer(out io.Writer, thresholds Thresholds) *Renderer {
	return &Renderer{out: out, thresholds: thresholds}
}

// Banner prints the program header panel.
func (r *Renderer) Banner() {
	fmt.Fprintln(r.out, bannerStyle.Render("Poker Statistics Processor"))
	fmt.Fprintln(r.out)
}

// Overview prints a session summary panel: hand and player totals plus the
// across-player averages of the main metrics.
func (r *Renderer) Overview(totalHands int, players map[string]stats.PlayerStats) {
	var avgVPIP, avgPFR, avgThreeBet, avgWTSD, avgShowdownWin float64
	if len(players) > 0 {
		n := float64(len(players))
		for _, s := range players {
			avgVPIP += float64(s.VPIP)
			avgPFR += float64(s.PFR)
			avgThreeBet += float64(s.ThreeBet)
			avgWTSD += s.WentToShowdown
			avgShowdownWin += s.ShowdownWin
		}
		avgVPIP = round2(avgVPIP / n)
		avgPFR = round2(avgPFR / n)
		avgThreeBet = round2(avgThreeBet / n)
		avgWTSD = round2(avgWTSD / n)
		avgShowdownWin = round2(avgShowdownWin / n)
	}

	body := panelTitleStyle.Render("Session Overview") + "\n" +
		panelLabelStyle.Render("Total Hands Processed: ") + strconv.Itoa(totalHands) + "\n" +
		panelLabelStyle.Render("Unique Players: ") + strconv.Itoa(len(players)) + "\n" +
		panelLabelStyle.Render("Average VPIP: ") + fmt.Sprintf("%v%%", avgVPIP) + "\n" +
		panelLabelStyle.Render("Average PFR: ") + fmt.Sprintf("%v%%", avgPFR) + "\n" +
		panelLabelStyle.Render("Average 3Bet: ") + fmt.Sprintf("%v%%", avgThreeBet) + "\n" +
		panelLabelStyle.Render("Average Went to Showdown: ") + fmt.Sprintf("%v%%", avgWTSD) + "\n" +
		panelLabelStyle.Render("Average Showdown Win: ") + fmt.Sprintf("%v%%", avgShowdownWin)
	fmt.Fprintln(r.out, panelStyle.Render(body))
	fmt.Fprintln(r.out)
}

// StatsTable prints the per-player table sorted ascending by sortBy. With
// numbered set, a Number column is included and the returned map translates
// the displayed numbers back to player IDs for filtering; otherwise the map
// is empty.
func (r *Renderer) StatsTable(players map[string]stats.PlayerStats, sortBy string, numbered bool) map[string]string {
	numberToPlayer := make(map[string]string)
	if len(players) == 0 {
		fmt.Fprintln(r.out, redStyle.Render("No statistics to display."))
		return numberToPlayer
	}
	sortBy = NormalizeSort(sortBy)

	type entry struct {
		id string
		s  stats.PlayerStats
	}
	entries := make([]entry, 0, len(players))
	for id, s := range players {
		entries = append(entries, entry{id: id, s: s})
	}
	sort.Slice(entries, func(i, j int) bool {
		vi, vj := sortValue(entries[i].s, sortBy), sortValue(entries[j].s, sortBy)
		if vi != vj {
			return vi < vj
		}
		return entries[i].id < entries[j].id
	})

	headers := []string{ColPlayer, ColHands, ColVPIP, ColPFR, ColThreeBet, ColWTSD, ColShowdownWin, ColTightness}
	if numbered {
		headers = append([]string{headers[0], ColNumber}, headers[1:]...)
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		row := []string{
			e.id,
			strconv.Itoa(e.s.TotalHands),
			strconv.Itoa(e.s.VPIP),
			strconv.Itoa(e.s.PFR),
			strconv.Itoa(e.s.ThreeBet),
			fmt.Sprintf("%.2f", e.s.WentToShowdown),
			fmt.Sprintf("%.2f", e.s.ShowdownWin),
			fmt.Sprintf("%.1f", e.s.Tightness),
		}
		if numbered {
			num := strconv.Itoa(i + 1)
			row = append([]string{row[0], num}, row[1:]...)
			numberToPlayer[num] = e.id
		}
		rows = append(rows, row)
	}

	offset := 0
	if numbered {
		offset = 1
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row < 0 || row >= len(entries) {
				return headerStyle
			}
			e := entries[row]
			switch {
			case col == 0:
				if row < len(rankStyles) {
					return rankStyles[row]
				}
				return playerStyle
			case col <= offset:
				return dimStyle
			}
			switch headers[col] {
			case ColHands:
				return r.thresholds.handsStyle(e.s.TotalHands)
			case ColVPIP:
				return r.thresholds.aggressionStyle(float64(e.s.VPIP))
			case ColPFR:
				return r.thresholds.aggressionStyle(float64(e.s.PFR))
			case ColThreeBet:
				return r.thresholds.aggressionStyle(float64(e.s.ThreeBet))
			case ColWTSD:
				return r.thresholds.aggressionStyle(e.s.WentToShowdown)
			case ColShowdownWin:
				return r.thresholds.showdownStyle(e.s.ShowdownWin)
			case ColTightness:
				return r.thresholds.tightnessStyle(e.s.Tightness)
			default:
				return lipgloss.NewStyle()
			}
		})

	fmt.Fprintf(r.out, "Player Statistics (sorted by %s)\n", sortBy)
	fmt.Fprintln(r.out, tbl.String())
	fmt.Fprintln(r.out, dimStyle.Render(fmt.Sprintf("%d players shown.", len(entries))))
	return numberToPlayer
}

func sortValue(s stats.PlayerStats, column string) float64 {
	switch column {
	case ColHands:
		return float64(s.TotalHands)
	case ColVPIP:
		return float64(s.VPIP)
	case ColPFR:
		return float64(s.PFR)
	case ColThreeBet:
		return float64(s.ThreeBet)
	case ColWTSD:
		return s.WentToShowdown
	case ColShowdownWin:
		return s.ShowdownWin
	default:
		return s.Tightness
	}
}

// round2 rounds half-to-even at two decimals, matching the calculator.
func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
