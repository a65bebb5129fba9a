package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/riwi/jobboard-backend/internal/applications"
	"github.com/riwi/jobboard-backend/internal/auth"
	"github.com/riwi/jobboard-backend/internal/demo"
	"github.com/riwi/jobboard-backend/internal/users"
	"github.com/riwi/jobboard-backend/internal/vacancies"
	"github.com/riwi/jobboard-backend/pkg/config"
	"github.com/riwi/jobboard-backend/pkg/db"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/migrate"
)

var openDB = db.Open

// Creates the initial admin and gestor accounts when no admin exists yet.
// With -demo it also loads demo coders, vacancies and applications.
func main() {
	withDemo := flag.Bool("demo", false, "also seed demo coders, vacancies and applications")
	flag.Parse()

	os.Exit(run(*withDemo))
}

func run(withDemo bool) int {
	logg := logger.New(logger.Options{ServiceName: "jobboard-seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if failed(context.Background(), logg, "config", err) {
		return 1
	}

	logg = logger.New(logger.Options{
		ServiceName: "jobboard-seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{"env": cfg.App.Env})

	dbClient, err := openDB(ctx, cfg, logg)
	if failed(ctx, logg, "database", err) {
		return 1
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "close database", err)
		}
	}()

	if failed(ctx, logg, "schema", migrate.MaybeRunDev(ctx, cfg, logg, dbClient)) {
		return 1
	}

	seeder, err := auth.NewSeeder(dbClient, cfg.Password, cfg.Seed, logg)
	if failed(ctx, logg, "seeder", err) {
		return 1
	}
	created, err := seeder.Seed(ctx)
	if err != nil {
		logg.Error(ctx, "seed failed", err)
		return 1
	}
	if created {
		fmt.Printf("seeded %s and %s\n", cfg.Seed.AdminEmail, cfg.Seed.GestorEmail)
	} else {
		fmt.Println("admin already present, nothing to seed")
	}

	if !withDemo {
		return 0
	}
	return seedDemo(ctx, cfg, dbClient, logg)
}

func seedDemo(ctx context.Context, cfg *config.Config, dbClient *db.Client, logg *logger.Logger) int {
	conn := dbClient.DB()
	vacancyRepo := vacancies.NewRepository(conn)
	vacancySvc, err := vacancies.NewService(vacancyRepo, logg)
	if failed(ctx, logg, "vacancy service", err) {
		return 1
	}
	appSvc, err := applications.NewService(applications.ServiceParams{
		Repo:   applications.NewRepository(conn),
		Tx:     dbClient,
		Logger: logg,
	})
	if failed(ctx, logg, "application service", err) {
		return 1
	}

	seeder, err := demo.NewSeeder(demo.SeederParams{
		Users:         users.NewRepository(conn),
		VacancyLookup: vacancyRepo,
		Vacancies:     vacancySvc,
		Applications:  appSvc,
		PasswordCfg:   cfg.Password,
		CoderPassword: cfg.Seed.DemoPassword,
		Logger:        logg,
	})
	if failed(ctx, logg, "demo seeder", err) {
		return 1
	}

	res, err := seeder.Seed(ctx)
	if err != nil {
		logg.Error(ctx, "demo seed failed", err)
		return 1
	}
	fmt.Printf("demo: %d coders, %d vacancies, %d applications created (%d attempts skipped)\n",
		res.Coders, res.Vacancies, res.Applications, res.Skipped)
	return 0
}

func failed(ctx context.Context, logg *logger.Logger, resource string, err error) bool {
	if err == nil {
		return false
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	return true
}
