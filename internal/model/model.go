// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes.
package model

// TournamentType tells the renderer how to lay matches out. Statistics ignore it.
type TournamentType string

const (
	TournamentGroup       TournamentType = "GROUP"
	TournamentEliminatory TournamentType = "ELIMINATORY"
)

// Match is one pairing of two players in a round. A nil score means no score was recorded.
type Match struct {
	Player1ID int  `json:"player1Id" validate:"gte=0"`
	Player2ID int  `json:"player2Id" validate:"gte=0,nefield=Player1ID"`
	Score1    *int `json:"score1,omitempty" validate:"omitempty,gte=0"`
	Score2    *int `json:"score2,omitempty" validate:"omitempty,gte=0"`
	Round     int  `json:"round" validate:"gte=0"`
}

// Unplayed reports whether neither side has a recorded score.
func (m Match) Unplayed() bool { return m.Score1 == nil && m.Score2 == nil }

// Tournament is the full match list of one competition as produced by the generator.
// Champion is supplied externally and never derived from the matches.
type Tournament struct {
	ID       *int           `json:"tournamentId,omitempty"`
	Matches  []Match        `json:"matches" validate:"dive"`
	Champion int            `json:"champion"`
	Type     TournamentType `json:"tournamentType,omitempty" validate:"omitempty,oneof=GROUP ELIMINATORY"`
}

// StandingsRow is one player's aggregated record in a tournament.
type StandingsRow struct {
	PlayerID       int `json:"playerId"`
	Points         int `json:"points"`
	GoalDifference int `json:"goalDifference"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	Played         int `json:"played"`
	Scored         int `json:"scored"`
	Conceded       int `json:"conceded"`
}

// MatchResult is a match as recorded, used for the largest-margin highlight.
type MatchResult struct {
	Player1ID int  `json:"player1Id"`
	Player2ID int  `json:"player2Id"`
	Score1    *int `json:"score1"`
	Score2    *int `json:"score2"`
}

// Statistics is the read-only summary of a tournament: standings plus three highlights.
// Nil IDs mean there was nothing to rank.
type Statistics struct {
	TopScorerID         *int           `json:"topScorerId"`
	TopScorerGoals      int            `json:"topScorerGoals"`
	BestDefenseID       *int           `json:"bestDefenseId"`
	BestDefenseConceded int            `json:"bestDefenseConceded"`
	HighestGoalMatch    *MatchResult   `json:"highestGoalMatch"`
	Standings           []StandingsRow `json:"standings"`
}
