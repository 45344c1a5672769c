package models

// ScoreMode selects how a submission combines with an existing record
type ScoreMode string

const (
	ScoreModeAdd       ScoreMode = "add"
	ScoreModeOverwrite ScoreMode = "overwrite"
)

// DefaultRuns is the run count recorded when a submission omits it
const DefaultRuns = 1

// BossScore is the accumulated score of one member against one boss in one season
type BossScore struct {
	ID            int64 `json:"id" db:"id"`
	GuildMemberID int64 `json:"guildmember_id" db:"guildmember_id"`
	BossID        int   `json:"boss_id" db:"boss_id"`
	Season        int   `json:"season" db:"season"`
	Score         int64 `json:"score" db:"score"`
	Runs          int   `json:"runs" db:"runs"`
}

// ScoreSubmission is a validated score submission ready for the store
type ScoreSubmission struct {
	GuildMemberID int64
	BossID        int
	Season        int
	Score         int64
	Runs          int
	Mode          ScoreMode
}

// SubmitScoreRequest is the body of POST /scores/submit
type SubmitScoreRequest struct {
	BossID int    `json:"boss_id" validate:"required"`
	Score  int64  `json:"score" validate:"required"`
	Runs   *int   `json:"runs,omitempty" validate:"omitempty,min=1"`
	Mode   string `json:"mode" validate:"omitempty,oneof=add overwrite"`
}

// ScoreView is a score row joined with the member's display name
type ScoreView struct {
	Character string `json:"character" db:"name"`
	BossID    int    `json:"boss_id" db:"boss_id"`
	Score     int64  `json:"score" db:"score"`
	Runs      int    `json:"runs" db:"runs"`
	MemberID  int64  `json:"member_id" db:"guildmember_id"`
	Season    int    `json:"season" db:"season"`
}
