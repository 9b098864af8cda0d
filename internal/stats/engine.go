// Package stats turns a tournament's match list into standings and highlights.
// Compute is pure: it keeps no state between calls and is safe for concurrent use.
package stats

import (
	"sort"

	"github.com/maxviazov/tournament-standings/internal/model"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// Option tunes a single Compute call.
type Option func(*options)

type options struct {
	skipUnplayed bool
}

// SkipUnplayed excludes matches where neither score is recorded.
// Without it such matches count as 0-0 draws.
func SkipUnplayed() Option {
	return func(o *options) { o.skipUnplayed = true }
}

// aggregate accumulates one player's totals while folding over matches.
type aggregate struct {
	scored, conceded     int
	wins, draws, losses int
	points               int
}

// ledger maps player id to aggregate and remembers first-seen order,
// which decides every tie in the highlights and the standings.
type ledger struct {
	byID  map[int]*aggregate
	order []int
}

func newLedger() *ledger {
	return &ledger{byID: make(map[int]*aggregate)}
}

func (l *ledger) get(id int) *aggregate {
	a, ok := l.byID[id]
	if !ok {
		a = &aggregate{}
		l.byID[id] = a
		l.order = append(l.order, id)
	}
	return a
}

// Compute folds the matches of t in order and derives standings and highlights.
// A nil tournament or one without matches yields a zeroed result with empty standings.
func Compute(t *model.Tournament, opts ...Option) model.Statistics {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	out := model.Statistics{Standings: []model.StandingsRow{}}
	if t == nil || len(t.Matches) == 0 {
		return out
	}

	l := newLedger()
	highestMargin := -1
	for _, m := range t.Matches {
		if o.skipUnplayed && m.Unplayed() {
			continue
		}
		margin := l.fold(m)
		if margin > highestMargin {
			highestMargin = margin
			out.HighestGoalMatch = recorded(m)
		}
	}

	maxScored := -1
	minConceded := 0
	for i, id := range l.order {
		a := l.byID[id]
		if a.scored > maxScored {
			maxScored = a.scored
			out.TopScorerID = intPtr(id)
			out.TopScorerGoals = a.scored
		}
		if i == 0 || a.conceded < minConceded {
			minConceded = a.conceded
			out.BestDefenseID = intPtr(id)
			out.BestDefenseConceded = a.conceded
		}
	}

	out.Standings = l.standings()
	return out
}

// fold applies one match to both players and returns its absolute margin.
func (l *ledger) fold(m model.Match) int {
	s1, s2 := scoreOf(m.Score1), scoreOf(m.Score2)
	p1, p2 := l.get(m.Player1ID), l.get(m.Player2ID)

	p1.scored += s1
	p1.conceded += s2
	p2.scored += s2
	p2.conceded += s1

	switch {
	case s1 > s2:
		p1.wins++
		p1.points += pointsWin
		p2.losses++
	case s2 > s1:
		p2.wins++
		p2.points += pointsWin
		p1.losses++
	default:
		p1.draws++
		p2.draws++
		p1.points += pointsDraw
		p2.points += pointsDraw
	}

	if s1 > s2 {
		return s1 - s2
	}
	return s2 - s1
}

func (l *ledger) standings() []model.StandingsRow {
	rows := make([]model.StandingsRow, 0, len(l.order))
	for _, id := range l.order {
		a := l.byID[id]
		rows = append(rows, model.StandingsRow{
			PlayerID:       id,
			Points:         a.points,
			GoalDifference: a.scored - a.conceded,
			Wins:           a.wins,
			Draws:          a.draws,
			Losses:         a.losses,
			Played:         a.wins + a.draws + a.losses,
			Scored:         a.scored,
			Conceded:       a.conceded,
		})
	}
	// Stable: equal rows keep first-appearance order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].GoalDifference > rows[j].GoalDifference
	})
	return rows
}

func recorded(m model.Match) *model.MatchResult {
	return &model.MatchResult{
		Player1ID: m.Player1ID,
		Player2ID: m.Player2ID,
		Score1:    copyInt(m.Score1),
		Score2:    copyInt(m.Score2),
	}
}

func scoreOf(s *int) int {
	if s == nil {
		return 0
	}
	return *s
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	return intPtr(*p)
}

func intPtr(v int) *int { return &v }
