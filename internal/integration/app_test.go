package integration_test

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cinebook/internal/app"
	"cinebook/internal/mailer"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	mockMailer := mailer.NewMockMailer()

	application, err := app.NewApplication(cfg, app.WithMailer(mockMailer))
	if err != nil {
		return nil, err
	}

	// A separate pool for seeding and verifying database state directly.
	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		application.Close()
		return nil, err
	}

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.App.Close()
}
