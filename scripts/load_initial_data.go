package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"scrimhub-backend/internal/config"
	"scrimhub-backend/internal/database"
	"scrimhub-backend/internal/database/models"
	"scrimhub-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type GameData struct {
	Name      string `yaml:"name"`
	ShortCode string `yaml:"short_code"`
}

type UserData struct {
	Username       string `yaml:"username"`
	Region         string `yaml:"region"`
	GameName       string `yaml:"game_name"`
	LookingForTeam bool   `yaml:"looking_for_team"`
	Wins           int    `yaml:"wins"`
}

type TeamData struct {
	Name          string   `yaml:"name"`
	Region        string   `yaml:"region"`
	GameName      string   `yaml:"game_name"`
	IsRecruiting  bool     `yaml:"is_recruiting"`
	Bio           string   `yaml:"bio,omitempty"`
	OwnerUsername string   `yaml:"owner_username"`
	Managers      []string `yaml:"managers,omitempty"`
	Members       []string `yaml:"members,omitempty"`
}

// File structures
type GamesFile struct {
	Games []GameData `yaml:"games"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Postgres readiness in dockerized setups.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var gamesFile GamesFile
	if err := readYAML(filepath.Join(dataDir, "games.yaml"), &gamesFile); err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	// Games first; users and teams reference them by name
	gameMap := make(map[string]*models.Game)
	created := 0
	for _, data := range gamesFile.Games {
		game := &models.Game{Name: data.Name, ShortCode: data.ShortCode}
		result := db.Where("name = ?", data.Name).FirstOrCreate(game)
		if result.Error != nil {
			return fmt.Errorf("failed to create game %q: %w", data.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			created++
		}
		gameMap[data.Name] = game
	}
	log.Printf("Games: %d loaded, %d created", len(gameMap), created)

	userMap := make(map[string]*models.User)
	created = 0
	for _, data := range usersFile.Users {
		game, ok := gameMap[data.GameName]
		if !ok {
			return fmt.Errorf("user %q references unknown game %q", data.Username, data.GameName)
		}

		user := &models.User{Username: data.Username, Region: models.Region(data.Region)}
		result := db.Where("username = ?", data.Username).FirstOrCreate(user)
		if result.Error != nil {
			return fmt.Errorf("failed to create user %q: %w", data.Username, result.Error)
		}
		if result.RowsAffected > 0 {
			created++
		}
		userMap[data.Username] = user

		profile := &models.UserGameProfile{
			UserID:         user.ID,
			GameID:         game.ID,
			LookingForTeam: data.LookingForTeam,
			Wins:           data.Wins,
		}
		if err := db.Where("user_id = ? AND game_id = ?", user.ID, game.ID).
			FirstOrCreate(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile for %q: %w", data.Username, err)
		}
	}
	log.Printf("Users: %d loaded, %d created", len(userMap), created)

	created = 0
	for _, data := range teamsFile.Teams {
		game, ok := gameMap[data.GameName]
		if !ok {
			return fmt.Errorf("team %q references unknown game %q", data.Name, data.GameName)
		}
		owner, ok := userMap[data.OwnerUsername]
		if !ok {
			return fmt.Errorf("team %q references unknown owner %q", data.Name, data.OwnerUsername)
		}

		team := &models.Team{
			Name:         data.Name,
			Slug:         service.Slugify(data.Name),
			Region:       models.Region(data.Region),
			GameID:       game.ID,
			IsRecruiting: data.IsRecruiting,
			Bio:          data.Bio,
		}
		result := db.Where("slug = ?", team.Slug).FirstOrCreate(team)
		if result.Error != nil {
			return fmt.Errorf("failed to create team %q: %w", data.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			created++
		}

		if err := upsertMembership(db, team.ID, owner.ID, models.TeamRoleOwner); err != nil {
			return err
		}
		for _, username := range data.Managers {
			if err := upsertRosterEntry(db, userMap, team.ID, username, models.TeamRoleManager); err != nil {
				return err
			}
		}
		for _, username := range data.Members {
			if err := upsertRosterEntry(db, userMap, team.ID, username, models.TeamRoleMember); err != nil {
				return err
			}
		}
	}
	log.Printf("Teams: %d loaded, %d created", len(teamsFile.Teams), created)

	return nil
}

func upsertRosterEntry(db *gorm.DB, userMap map[string]*models.User, teamID int64, username string, role models.TeamRole) error {
	user, ok := userMap[username]
	if !ok {
		return fmt.Errorf("roster references unknown user %q", username)
	}
	return upsertMembership(db, teamID, user.ID, role)
}

func upsertMembership(db *gorm.DB, teamID, userID int64, role models.TeamRole) error {
	membership := &models.TeamMembership{TeamID: teamID, UserID: userID, Role: role}
	err := db.Where("team_id = ? AND user_id = ?", teamID, userID).
		FirstOrCreate(membership).Error
	if err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

func readYAML(path string, target interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(content, target)
}
