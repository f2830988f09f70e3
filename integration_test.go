//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filestore_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/suparena/filestore"
	"github.com/suparena/filestore/config"
	"github.com/suparena/filestore/errors"
	"github.com/suparena/filestore/models"
)

// setupDynamoDBConfig reads FILESTORE_DDB_* from the environment (or a .env
// file) and skips when no table is configured.
func setupDynamoDBConfig(t *testing.T) *config.Config {
	t.Helper()
	_ = godotenv.Load()

	if os.Getenv("FILESTORE_DDB_TABLE") == "" {
		t.Skip("FILESTORE_DDB_TABLE not set, skipping integration test")
	}
	t.Setenv("FILESTORE_BACKEND", config.BackendDynamoDB)
	t.Setenv("FILESTORE_DDB_DOCUMENT", fmt.Sprintf("integration-%d.json", time.Now().UnixNano()))

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func TestIntegrationDynamoDBRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := setupDynamoDBConfig(t)

	svc, closeFn, err := filestore.Open(ctx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer closeFn()

	if n := len(mustList(t, svc)); n != 0 {
		t.Fatalf("fresh document should be empty, got %d entities", n)
	}

	userID, err := svc.Create(ctx, models.User)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if err := svc.Update(ctx, models.User, userID, "email", "airbnb@mail.com"); err != nil {
		t.Fatalf("Failed to update user: %v", err)
	}
	placeID, err := svc.Create(ctx, models.Place)
	if err != nil {
		t.Fatalf("Failed to create place: %v", err)
	}

	// A second service over the same item sees everything.
	other, closeOther, err := filestore.Open(ctx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer closeOther()

	ent, found, err := other.Show(models.User, userID)
	if err != nil || !found {
		t.Fatalf("user not reloaded: found=%v err=%v", found, err)
	}
	user, err := models.AsUser(ent)
	if err != nil {
		t.Fatalf("AsUser: %v", err)
	}
	if user.Email() != "airbnb@mail.com" {
		t.Errorf("email = %q", user.Email())
	}

	if err := other.Destroy(ctx, models.Place, placeID); err != nil {
		t.Fatalf("Failed to destroy place: %v", err)
	}
	if err := other.Destroy(ctx, models.Place, placeID); !errors.IsNotFound(err) {
		t.Errorf("Expected not found error, got: %v", err)
	}

	third, closeThird, err := filestore.Open(ctx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer closeThird()
	if _, found, _ := third.Show(models.Place, placeID); found {
		t.Error("destroyed place came back after reload")
	}
}

func mustList(t *testing.T, svc *filestore.Service) []string {
	t.Helper()
	ents, err := svc.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	keys := make([]string, len(ents))
	for i, e := range ents {
		keys[i] = e.Key()
	}
	return keys
}
