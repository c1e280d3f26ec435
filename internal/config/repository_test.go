package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"day-planner/internal/domain"
	"day-planner/internal/repository/memory"
	"day-planner/internal/repository/sqlite"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value    string
		expected Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("MYDAY_ENV", tt.value)
			if got := GetEnvironment(); got != tt.expected {
				t.Errorf("GetEnvironment() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCreateRepository_Production(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "nested", "store")

	repo, err := NewRepositoryFactory(Production, cfg).CreateRepository()
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	defer repo.Close()

	if _, ok := repo.(*sqlite.SQLiteRepository); !ok {
		t.Errorf("CreateRepository() returned %T, want *sqlite.SQLiteRepository", repo)
	}
	if _, err := os.Stat(cfg.GetDatabasePath()); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestCreateRepository_MemoryBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Backend = BackendMemory

	repo, err := NewRepositoryFactory(Production, cfg).CreateRepository()
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	if _, ok := repo.(*memory.Repository); !ok {
		t.Errorf("CreateRepository() returned %T, want *memory.Repository", repo)
	}
}

func TestCreateRepository_Testing(t *testing.T) {
	repo, err := NewRepositoryFactory(Testing, NewConfig()).CreateRepository()
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	if _, ok := repo.(*memory.Repository); !ok {
		t.Errorf("CreateRepository() returned %T, want *memory.Repository", repo)
	}
}

func TestCreateGateway(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Key = "testPlanner"
	repo := memory.New()

	gateway, err := CreateGateway(repo, cfg, log.New(os.Stderr))
	if err != nil {
		t.Fatalf("CreateGateway() error = %v", err)
	}
	if gateway.Key() != "testPlanner" {
		t.Errorf("gateway key = %q, want %q", gateway.Key(), "testPlanner")
	}

	ctx := context.Background()
	if err := gateway.Save(ctx, []domain.Task{{ID: "1", Name: "Test"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := repo.GetSlot(ctx, "testPlanner"); err != nil {
		t.Errorf("slot not written under configured key: %v", err)
	}
}

func TestCreateGateway_InvalidPolicy(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.OnCorrupt = "ignore"

	if _, err := CreateGateway(memory.New(), cfg, log.New(os.Stderr)); err == nil {
		t.Error("CreateGateway() expected error for unknown on_corrupt policy")
	}
}
