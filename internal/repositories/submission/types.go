package submission

import "github.com/corkedgame/corked/internal/models"

// SaveRoundSubmissionInput contains parameters for upserting a round submission
type SaveRoundSubmissionInput struct {
	Submission *models.RoundSubmission
}

// GetRoundSubmissionInput contains parameters for retrieving a round submission
type GetRoundSubmissionInput struct {
	GameID   string
	RoundID  int
	PlayerID string
}

// GetSubmissionsForRoundInput contains parameters for retrieving a round's submissions
type GetSubmissionsForRoundInput struct {
	GameID  string
	RoundID int
}

// GetSubmissionsForRoundOutput contains the result of retrieving a round's submissions
type GetSubmissionsForRoundOutput struct {
	Submissions []*models.RoundSubmission
}

// SaveGambitSubmissionInput contains parameters for upserting a gambit submission
type SaveGambitSubmissionInput struct {
	Submission *models.GambitSubmission
}

// GetGambitSubmissionInput contains parameters for retrieving a gambit submission
type GetGambitSubmissionInput struct {
	GameID   string
	PlayerID string
}

// GetGambitSubmissionsForGameInput contains parameters for retrieving a game's gambit submissions
type GetGambitSubmissionsForGameInput struct {
	GameID string
}

// GetGambitSubmissionsForGameOutput contains the result of retrieving a game's gambit submissions
type GetGambitSubmissionsForGameOutput struct {
	Submissions []*models.GambitSubmission
}
