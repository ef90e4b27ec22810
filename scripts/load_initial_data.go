package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"legal-workspace-backend/internal/auth"
	"legal-workspace-backend/internal/config"
	"legal-workspace-backend/internal/database"
	"legal-workspace-backend/internal/database/models"
	"legal-workspace-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OwnerData struct {
	Email      string          `yaml:"email"`
	Password   string          `yaml:"password"`
	Name       string          `yaml:"name,omitempty"`
	SeatLimit  int             `yaml:"seat_limit,omitempty"`
	Workspaces []WorkspaceData `yaml:"workspaces"`
	Members    []MemberData    `yaml:"members,omitempty"`
}

type WorkspaceData struct {
	Name          string             `yaml:"name"`
	IsDefault     bool               `yaml:"is_default"`
	FollowedCases []FollowedCaseData `yaml:"followed_cases,omitempty"`
}

type MemberData struct {
	Email      string   `yaml:"email"`
	Password   string   `yaml:"password"`
	Name       string   `yaml:"name,omitempty"`
	Workspaces []string `yaml:"workspaces"`
}

type FollowedCaseData struct {
	CaseID      string                 `yaml:"case_id"`
	CNR         string                 `yaml:"cnr,omitempty"`
	Title       string                 `yaml:"title"`
	CaseNumber  string                 `yaml:"case_number,omitempty"`
	DiaryNumber string                 `yaml:"diary_number,omitempty"`
	Petitioner  string                 `yaml:"petitioner,omitempty"`
	Respondent  string                 `yaml:"respondent,omitempty"`
	Status      string                 `yaml:"status,omitempty"`
	Court       string                 `yaml:"court"`
	Details     map[string]interface{} `yaml:"details,omitempty"`
}

// File structures
type SeedFile struct {
	Owners []OwnerData `yaml:"owners"`
}

type seedCounts struct {
	users, workspaces, memberships, cases int
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	if err := loadDataFromYAMLFiles(context.Background(), db, hasher, cfg.DefaultSeatLimit, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, hasher *auth.BcryptHasher, defaultSeatLimit int, dataDir string) error {
	seed, err := loadSeedFile(filepath.Join(dataDir, "seed.yaml"))
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	var counts seedCounts
	transactor := repository.NewTransactor(db)
	for _, owner := range seed.Owners {
		err := transactor.WithinTransaction(ctx, func(repos *repository.Repositories) error {
			return seedOwner(ctx, repos, hasher, defaultSeatLimit, owner, &counts)
		})
		if err != nil {
			return fmt.Errorf("failed to seed owner %s: %w", owner.Email, err)
		}
	}

	log.Printf("👤 Users: %d created", counts.users)
	log.Printf("📁 Workspaces: %d created", counts.workspaces)
	log.Printf("🔗 Memberships: %d linked", counts.memberships)
	log.Printf("⚖️  Followed cases: %d created", counts.cases)
	return nil
}

func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

// seedOwner is idempotent: an owner whose email already exists is skipped entirely
func seedOwner(ctx context.Context, repos *repository.Repositories, hasher *auth.BcryptHasher, defaultSeatLimit int, data OwnerData, counts *seedCounts) error {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	exists, err := repos.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		log.Printf("Skipping existing owner %s", email)
		return nil
	}

	seatLimit := data.SeatLimit
	if seatLimit == 0 {
		seatLimit = defaultSeatLimit
	}
	owner, err := newUser(hasher, email, data.Password, data.Name, models.RoleOwner, seatLimit)
	if err != nil {
		return err
	}
	if err := repos.Users.Create(ctx, owner); err != nil {
		return err
	}
	counts.users++

	workspaceIDs := make(map[string]uuid.UUID, len(data.Workspaces))
	for _, ws := range data.Workspaces {
		workspace := &models.Workspace{Name: ws.Name, OwnerID: owner.ID, IsDefault: ws.IsDefault}
		if err := repos.Workspaces.Create(ctx, workspace); err != nil {
			return fmt.Errorf("workspace %s: %w", ws.Name, err)
		}
		if err := repos.Memberships.Link(ctx, owner.ID, workspace.ID); err != nil {
			return err
		}
		workspaceIDs[ws.Name] = workspace.ID
		counts.workspaces++
		counts.memberships++

		for _, fc := range ws.FollowedCases {
			followed, err := newFollowedCase(workspace.ID, owner.ID, fc)
			if err != nil {
				return err
			}
			if err := repos.FollowedCases.Create(ctx, followed); err != nil {
				return fmt.Errorf("followed case %s: %w", fc.CaseID, err)
			}
			counts.cases++
		}
	}

	for _, m := range data.Members {
		member, err := newUser(hasher, strings.ToLower(strings.TrimSpace(m.Email)), m.Password, m.Name, models.RoleMember, defaultSeatLimit)
		if err != nil {
			return err
		}
		if err := repos.Users.Create(ctx, member); err != nil {
			return fmt.Errorf("member %s: %w", m.Email, err)
		}
		counts.users++

		edges := make([]models.UserWorkspace, 0, len(m.Workspaces))
		for _, name := range m.Workspaces {
			id, ok := workspaceIDs[name]
			if !ok {
				return fmt.Errorf("member %s references unknown workspace %q", m.Email, name)
			}
			edges = append(edges, models.UserWorkspace{UserID: member.ID, WorkspaceID: id})
		}
		if err := repos.Memberships.LinkMany(ctx, edges); err != nil {
			return err
		}
		counts.memberships += len(edges)
	}

	if len(data.Members) > seatLimit {
		log.Printf("⚠️  Owner %s seeded with %d members over a seat limit of %d", email, len(data.Members), seatLimit)
	}
	return nil
}

func newUser(hasher *auth.BcryptHasher, email, password, name string, role models.Role, seatLimit int) (*models.User, error) {
	if password == "" {
		return nil, fmt.Errorf("user %s has no password", email)
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		SeatLimit:    seatLimit,
	}
	if name != "" {
		user.Name = &name
	}
	return user, nil
}

func newFollowedCase(workspaceID, followedBy uuid.UUID, data FollowedCaseData) (*models.FollowedCase, error) {
	followed := &models.FollowedCase{
		WorkspaceID: workspaceID,
		CaseID:      data.CaseID,
		CNR:         data.CNR,
		Title:       data.Title,
		CaseNumber:  data.CaseNumber,
		DiaryNumber: data.DiaryNumber,
		Petitioner:  data.Petitioner,
		Respondent:  data.Respondent,
		Status:      data.Status,
		Court:       strings.TrimSpace(data.Court),
		FollowedBy:  &followedBy,
		FollowedAt:  time.Now(),
	}
	if len(data.Details) > 0 {
		details, err := json.Marshal(data.Details)
		if err != nil {
			return nil, fmt.Errorf("details for case %s: %w", data.CaseID, err)
		}
		followed.Details = datatypes.JSON(details)
	}
	return followed, nil
}
