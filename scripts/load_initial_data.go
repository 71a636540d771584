package main

import (
	"fmt"
	"log"
	"os"

	"motion-pcs-backend/internal/auth"
	"motion-pcs-backend/internal/config"
	"motion-pcs-backend/internal/database"
	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed data structures matching scripts/data/seed.yaml

type UserData struct {
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Team     string `yaml:"team,omitempty"`
}

type ClientData struct {
	Name    string `yaml:"name"`
	LogoURL string `yaml:"logo_url"`
	Status  string `yaml:"status"`
}

type ProjectData struct {
	CodeName            string `yaml:"code_name"`
	ClientName          string `yaml:"client_name"`
	ClientContactPerson string `yaml:"client_contact_person"`
	Status              string `yaml:"status"`
}

type ScopeData struct {
	ProjectCodeName        string `yaml:"project_code_name"`
	Team                   string `yaml:"team"`
	AllowCrossTeamComments bool   `yaml:"allow_cross_team_comments"`
}

type TicketData struct {
	ScopeProject   string   `yaml:"scope_project"`
	ScopeTeam      string   `yaml:"scope_team"`
	Title          string   `yaml:"title"`
	TechnicalSpecs string   `yaml:"technical_specs"`
	Priority       string   `yaml:"priority"`
	Status         string   `yaml:"status"`
	Creator        string   `yaml:"creator"`
	Assignees      []string `yaml:"assignees"`
}

type SeedFile struct {
	Users    []UserData    `yaml:"users"`
	Clients  []ClientData  `yaml:"clients"`
	Projects []ProjectData `yaml:"projects"`
	Scopes   []ScopeData   `yaml:"scopes"`
	Tickets  []TicketData  `yaml:"tickets"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	path := "scripts/data/seed.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	seed, err := loadSeedFile(path)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	if err := apply(db, seed); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}

func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

// apply inserts the fixtures in dependency order inside one transaction.
// Existing rows are matched by natural key and reused, so re-running the
// script is safe.
func apply(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		usersByName := make(map[string]*models.User)
		for _, u := range seed.Users {
			user, err := upsertUser(tx, u)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Username, err)
			}
			usersByName[u.Username] = user
		}

		clientsByName := make(map[string]*models.Client)
		for _, c := range seed.Clients {
			client, err := upsertClient(tx, c)
			if err != nil {
				return fmt.Errorf("client %s: %w", c.Name, err)
			}
			clientsByName[c.Name] = client
		}

		projectsByCode := make(map[string]*models.Project)
		for _, p := range seed.Projects {
			client, ok := clientsByName[p.ClientName]
			if !ok {
				return fmt.Errorf("project %s references unknown client %s", p.CodeName, p.ClientName)
			}
			project, err := upsertProject(tx, p, client.ID)
			if err != nil {
				return fmt.Errorf("project %s: %w", p.CodeName, err)
			}
			projectsByCode[p.CodeName] = project
		}

		type scopeKey struct {
			project string
			team    string
		}
		scopesByKey := make(map[scopeKey]*models.Scope)
		for _, s := range seed.Scopes {
			project, ok := projectsByCode[s.ProjectCodeName]
			if !ok {
				return fmt.Errorf("scope references unknown project %s", s.ProjectCodeName)
			}
			scope, err := upsertScope(tx, s, project.ID)
			if err != nil {
				return fmt.Errorf("scope %s/%s: %w", s.ProjectCodeName, s.Team, err)
			}
			scopesByKey[scopeKey{s.ProjectCodeName, s.Team}] = scope
		}

		for _, t := range seed.Tickets {
			scope, ok := scopesByKey[scopeKey{t.ScopeProject, t.ScopeTeam}]
			if !ok {
				return fmt.Errorf("ticket %q references unknown scope %s/%s", t.Title, t.ScopeProject, t.ScopeTeam)
			}
			creator, ok := usersByName[t.Creator]
			if !ok {
				return fmt.Errorf("ticket %q references unknown creator %s", t.Title, t.Creator)
			}

			var assignees []models.User
			for _, name := range t.Assignees {
				user, ok := usersByName[name]
				if !ok {
					return fmt.Errorf("ticket %q references unknown assignee %s", t.Title, name)
				}
				assignees = append(assignees, *user)
			}

			if err := upsertTicket(tx, t, scope.ID, creator.ID, assignees); err != nil {
				return fmt.Errorf("ticket %q: %w", t.Title, err)
			}
		}

		return nil
	})
}

func upsertUser(tx *gorm.DB, data UserData) (*models.User, error) {
	var user models.User
	err := tx.First(&user, "username = ?", data.Username).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Username:     data.Username,
		FullName:     data.FullName,
		PasswordHash: hash,
		Role:         models.Role(data.Role),
	}
	if data.Team != "" {
		team := models.Team(data.Team)
		if !models.ValidTeam(team) {
			return nil, fmt.Errorf("unknown team %q", data.Team)
		}
		user.Team = &team
	}

	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func upsertClient(tx *gorm.DB, data ClientData) (*models.Client, error) {
	var client models.Client
	err := tx.First(&client, "name = ?", data.Name).Error
	if err == nil {
		return &client, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	client = models.Client{
		Name:    data.Name,
		LogoURL: data.LogoURL,
		Status:  models.ClientStatus(data.Status),
	}
	if err := tx.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func upsertProject(tx *gorm.DB, data ProjectData, clientID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := tx.First(&project, "code_name = ?", data.CodeName).Error
	if err == nil {
		return &project, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	project = models.Project{
		ClientID:            clientID,
		CodeName:            data.CodeName,
		ClientContactPerson: data.ClientContactPerson,
		Status:              data.Status,
	}
	if err := tx.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func upsertScope(tx *gorm.DB, data ScopeData, projectID uuid.UUID) (*models.Scope, error) {
	team := models.Team(data.Team)
	if !models.ValidTeam(team) {
		return nil, fmt.Errorf("unknown team %q", data.Team)
	}

	var scope models.Scope
	err := tx.First(&scope, "project_id = ? AND team = ?", projectID, team).Error
	if err == nil {
		return &scope, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	scope = models.Scope{
		ProjectID:              projectID,
		Team:                   team,
		AllowCrossTeamComments: data.AllowCrossTeamComments,
	}
	if err := tx.Create(&scope).Error; err != nil {
		return nil, err
	}
	return &scope, nil
}

func upsertTicket(tx *gorm.DB, data TicketData, scopeID, creatorID uuid.UUID, assignees []models.User) error {
	var existing models.Ticket
	err := tx.First(&existing, "scope_id = ? AND title = ?", scopeID, data.Title).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	ticket := models.Ticket{
		ScopeID:        scopeID,
		Title:          data.Title,
		TechnicalSpecs: data.TechnicalSpecs,
		Priority:       models.TicketPriority(data.Priority),
		Status:         models.TicketStatus(data.Status),
		CreatorID:      creatorID,
		Assignees:      assignees,
	}
	return tx.Create(&ticket).Error
}
