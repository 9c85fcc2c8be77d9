package models

// Region represents a supported competitive region
type Region string

const (
	RegionNA Region = "NA"
	RegionEU Region = "EU"
	RegionSA Region = "SA"
	RegionAS Region = "AS"
	RegionOC Region = "OC"
)

// IsValid checks if the Region is valid
func (r Region) IsValid() bool {
	switch r {
	case RegionNA, RegionEU, RegionSA, RegionAS, RegionOC:
		return true
	}
	return false
}

// User represents a registered player. Created at registration, which happens
// outside this service; the workflow engine only ever reads users.
type User struct {
	BaseModel
	Username string `json:"username" gorm:"uniqueIndex;not null;size:32" validate:"required,min=3,max=32"`
	Region   Region `json:"region" gorm:"type:varchar(8);not null" validate:"required"`

	// Relationships
	GameProfiles []UserGameProfile `json:"game_profiles,omitempty" gorm:"foreignKey:UserID"`
	Memberships  []TeamMembership  `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Game represents a supported title
type Game struct {
	BaseModel
	Name      string `json:"name" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`
	ShortCode string `json:"short_code" gorm:"uniqueIndex;not null;size:8" validate:"required,max=8"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}

// UserGameProfile holds per-user per-game state. The workflow engine owns the
// LookingForTeam flag through the capacity policy auto-opt-out; everything
// else is maintained by the profile layer.
type UserGameProfile struct {
	BaseModel
	UserID         int64  `json:"user_id" gorm:"not null;uniqueIndex:idx_profiles_user_game" validate:"required"`
	GameID         int64  `json:"game_id" gorm:"not null;uniqueIndex:idx_profiles_user_game" validate:"required"`
	RankID         *int64 `json:"rank_id,omitempty"`
	LookingForTeam bool   `json:"looking_for_team" gorm:"not null;default:false"`
	Wins           int    `json:"wins" gorm:"not null;default:0"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Game *Game `json:"game,omitempty" gorm:"foreignKey:GameID"`
}

// TableName returns the table name for UserGameProfile
func (UserGameProfile) TableName() string {
	return "user_game_profiles"
}
