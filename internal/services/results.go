package services

import (
	"context"
	"sort"

	"github.com/adishm/hackarena/internal/logger"
	"github.com/adishm/hackarena/internal/models"
	"github.com/adishm/hackarena/internal/repository"
)

// ResultsServiceRepository defines the repository methods needed by ResultsService
type ResultsServiceRepository interface {
	repository.TeamRepository
}

// ResultsService computes the round-1 leaderboard and the advancing cutoff.
// Rankings are derived on demand from current team records and never
// cached: a team's position can shift as more submissions complete.
type ResultsService struct {
	log  logger.Logger
	repo ResultsServiceRepository
}

// NewResultsService creates a new ResultsService
func NewResultsService(log logger.Logger, repo ResultsServiceRepository) *ResultsService {
	return &ResultsService{log: log, repo: repo}
}

// TeamStanding is one leaderboard row
type TeamStanding struct {
	Rank                    int     `json:"rank"`
	TeamID                  int     `json:"team_id"`
	Name                    string  `json:"name"`
	Round1FinalScore        float64 `json:"round1_final_score"`
	Round1AvgSubmissionTime float64 `json:"round1_avg_submission_time"`
	Advanced                bool    `json:"advanced"`
}

// Leaderboard is the ordered round-1 standings with the cutoff applied
type Leaderboard struct {
	Standings   []TeamStanding `json:"standings"`
	CutoffIndex int            `json:"cutoff_index"`
}

// rankTeams orders payment-verified teams by score descending, breaking
// ties by average submission time ascending. The sort is stable so equal
// teams keep their input order.
func rankTeams(teams []models.Team) []models.Team {
	ranked := make([]models.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Round1FinalScore != ranked[j].Round1FinalScore {
			return ranked[i].Round1FinalScore > ranked[j].Round1FinalScore
		}
		return ranked[i].Round1AvgSubmissionTime < ranked[j].Round1AvgSubmissionTime
	})
	return ranked
}

// cutoffIndex returns ceil(0.30 * n) using integer arithmetic
func cutoffIndex(n int) int {
	return (3*n + 9) / 10
}

// Round1Leaderboard returns the current standings for all teams with
// completed payment. Positions [0, CutoffIndex) are the advancing set.
func (s *ResultsService) Round1Leaderboard(ctx context.Context) (*Leaderboard, error) {
	teams, err := s.repo.ListTeamsByPayment(ctx, models.PaymentCompleted)
	if err != nil {
		return nil, err
	}

	ranked := rankTeams(teams)
	cutoff := cutoffIndex(len(ranked))

	standings := make([]TeamStanding, 0, len(ranked))
	for i, team := range ranked {
		standings = append(standings, TeamStanding{
			Rank:                    i + 1,
			TeamID:                  team.ID,
			Name:                    team.Name,
			Round1FinalScore:        team.Round1FinalScore,
			Round1AvgSubmissionTime: team.Round1AvgSubmissionTime,
			Advanced:                i < cutoff,
		})
	}

	return &Leaderboard{Standings: standings, CutoffIndex: cutoff}, nil
}

// TeamAdvanced reports whether a team is inside the round-1 cutoff right now
func (s *ResultsService) TeamAdvanced(ctx context.Context, teamID int) (bool, error) {
	board, err := s.Round1Leaderboard(ctx)
	if err != nil {
		return false, err
	}
	for _, standing := range board.Standings {
		if standing.TeamID == teamID {
			return standing.Advanced, nil
		}
	}
	return false, nil
}
