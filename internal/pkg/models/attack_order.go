package models

import "fmt"

// Boss is an entry of the static boss catalog
type Boss struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Bosses is the guild boss catalog in display order
var Bosses = []Boss{
	{ID: 1, Name: "Teo"},
	{ID: 2, Name: "Kyle"},
	{ID: 3, Name: "Karma"},
	{ID: 4, Name: "Yeonhee"},
	{ID: 5, Name: "Drumstick"},
}

// BossName resolves a boss id to its display name
func BossName(id int) string {
	for _, b := range Bosses {
		if b.ID == id {
			return b.Name
		}
	}
	return fmt.Sprintf("Unknown(%d)", id)
}

// BossesResponse lists the boss catalog
type BossesResponse struct {
	Bosses []Boss `json:"bosses"`
}

// AttackOrder is one slot in a member's boss attack sequence
type AttackOrder struct {
	MemberID     int64  `db:"member_id"`
	MemberName   string `db:"name"`
	BossID       int    `db:"boss_id"`
	SeasonNumber int    `db:"season_number"`
	AttackOrder  int    `db:"attack_order"`
}

// MemberAttack is the ordered list of boss names a member attacks
type MemberAttack struct {
	MemberName string   `json:"member_name"`
	BossOrder  []string `json:"boss_order"`
}

// AttackOrdersResponse is the body of GET /attackorders
type AttackOrdersResponse struct {
	MemberAttacks []MemberAttack `json:"memberAttacks"`
}
