package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/repository"
)

type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := runMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &TestDB{
		Container: pgContainer,
		DB:        db,
		DSN:       dsn,
	}
}

func (tdb *TestDB) TeardownTestDB(t *testing.T) {
	t.Helper()

	if err := tdb.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()

	if err := tdb.DB.Exec("TRUNCATE TABLE calendars, users, invalid_endpoints").Error; err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}

func (tdb *TestDB) SeedCalendar(t *testing.T, id string, members ...string) {
	t.Helper()

	now := time.Now()
	if members == nil {
		members = []string{}
	}

	if err := tdb.DB.Create(&repository.CalendarModel{
		ID:        id,
		Name:      id,
		Members:   members,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error; err != nil {
		t.Fatalf("failed to seed calendar: %v", err)
	}
}

func (tdb *TestDB) SeedUser(t *testing.T, id string, tokens ...string) {
	t.Helper()

	now := time.Now()
	if tokens == nil {
		tokens = []string{}
	}

	if err := tdb.DB.Create(&repository.UserModel{
		ID:           id,
		DeviceTokens: tokens,
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&repository.CalendarModel{},
		&repository.UserModel{},
		&repository.InvalidEndpointModel{},
	)
}
