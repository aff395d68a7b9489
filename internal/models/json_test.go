package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/techneurology/neurorelief/internal/models"
	"github.com/techneurology/neurorelief/internal/testutil"
)

func TestStringListZeroValue(t *testing.T) {
	v, err := models.StringList(nil).Value()
	if err != nil {
		t.Fatalf("Value on nil list: %v", err)
	}
	if v == nil {
		t.Fatal("Value on nil list returned nil, schema parsing needs a concrete value")
	}
	if s, ok := v.(string); !ok || s != "[]" {
		t.Fatalf("Value on nil list = %v, want \"[]\"", v)
	}
}

func TestMigrateAndStoreNilListColumns(t *testing.T) {
	db := testutil.OpenTestDB(t)

	episode := &models.Episode{
		UserID:    uuid.New().String(),
		StartTime: time.Now(),
		Intensity: 4,
	}
	if err := db.Create(episode).Error; err != nil {
		t.Fatalf("create episode without symptoms: %v", err)
	}

	var stored models.Episode
	if err := db.First(&stored, episode.ID).Error; err != nil {
		t.Fatalf("read episode back: %v", err)
	}
	if len(stored.Symptoms) != 0 {
		t.Fatalf("Symptoms = %v, want empty", stored.Symptoms)
	}
}
