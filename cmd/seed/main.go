// Command seed populates the database with a demo dataset: an admin
// account, a sample dashboard with two workspaces, and a small menu
// tree attached at both scope levels. Intended for local development,
// not for production.
//
// Flags:
//
//	--admin-email     email for the seeded admin account
//	--admin-password  password for the seeded admin account
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/openboards/openboards-backend/internal/adapter/postgres"
	dashboardrepo "github.com/openboards/openboards-backend/internal/adapter/postgres/dashboard"
	menurepo "github.com/openboards/openboards-backend/internal/adapter/postgres/menu"
	userrepo "github.com/openboards/openboards-backend/internal/adapter/postgres/user"
	workspacerepo "github.com/openboards/openboards-backend/internal/adapter/postgres/workspace"
	"github.com/openboards/openboards-backend/internal/app"
	"github.com/openboards/openboards-backend/internal/config"
	"github.com/openboards/openboards-backend/internal/domain"
)

func main() {
	emailFlag := flag.String("admin-email", "admin@openboards.local", "email for the seeded admin account")
	passwordFlag := flag.String("admin-password", "admin", "password for the seeded admin account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder{
		users:      userrepo.New(pool),
		dashboards: dashboardrepo.New(pool),
		workspaces: workspacerepo.New(pool),
		menu:       menurepo.New(pool),
		logger:     logger,
	}

	if err := s.run(ctx, *emailFlag, *passwordFlag); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("seed complete")
}

type seeder struct {
	users      *userrepo.Repo
	dashboards *dashboardrepo.Repo
	workspaces *workspacerepo.Repo
	menu       *menurepo.Repo
	logger     *slog.Logger
}

func (s *seeder) run(ctx context.Context, adminEmail, adminPassword string) error {
	admin, err := s.seedAdmin(ctx, adminEmail, adminPassword)
	if err != nil {
		return err
	}

	desc := "Demo dashboard seeded for local development."
	dash, err := s.dashboards.Create(ctx, &domain.Dashboard{
		Name:        "Operations",
		Description: &desc,
		CreatedByID: &admin.ID,
	})
	if err != nil {
		return err
	}
	s.logger.Info("created dashboard", slog.String("id", dash.ID.String()))

	planning, err := s.workspaces.Create(ctx, &domain.Workspace{DashboardID: dash.ID, Name: "Q3 Planning"})
	if err != nil {
		return err
	}
	backlog, err := s.workspaces.Create(ctx, &domain.Workspace{DashboardID: dash.ID, Name: "Backlog"})
	if err != nil {
		return err
	}

	return s.seedMenu(ctx, dash.ID, planning.ID, backlog.ID)
}

func (s *seeder) seedAdmin(ctx context.Context, email, password string) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("admin account already exists", slog.String("email", email))
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("created admin account", slog.String("email", email))
	return admin, nil
}

func (s *seeder) seedMenu(ctx context.Context, dashboardID, planningID, backlogID uuid.UUID) error {
	overview, err := s.menu.CreateItem(ctx, &domain.MenuItem{
		Title:         "Overview",
		Type:          domain.MenuItemTypeSlice,
		Target:        "overview",
		GlobalContext: true,
	})
	if err != nil {
		return err
	}
	calendar, err := s.menu.CreateItem(ctx, &domain.MenuItem{
		Title:  "Calendar",
		Type:   domain.MenuItemTypeSlice,
		Target: "calendar",
	})
	if err != nil {
		return err
	}
	docs, err := s.menu.CreateItem(ctx, &domain.MenuItem{
		Title:  "Documentation",
		Type:   domain.MenuItemTypeLink,
		Target: "https://docs.openboards.local",
	})
	if err != nil {
		return err
	}

	placements := []domain.MenuUsage{
		{MenuID: overview.ID, DashboardID: &dashboardID, OrderIndex: 0},
		{MenuID: docs.ID, DashboardID: &dashboardID, OrderIndex: 1},
		{MenuID: calendar.ID, DashboardID: &dashboardID, WorkspaceID: &planningID, OrderIndex: 0},
		{MenuID: calendar.ID, DashboardID: &dashboardID, WorkspaceID: &backlogID, OrderIndex: 0},
	}
	for i := range placements {
		if _, err := s.menu.CreateUsage(ctx, &placements[i]); err != nil {
			return err
		}
	}
	s.logger.Info("created menu", slog.Int("items", 3), slog.Int("usages", len(placements)))
	return nil
}
