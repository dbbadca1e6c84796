package services

import (
	"strings"
	"testing"
	"time"

	"github.com/Anky1388/SFIRN/models"

	"gorm.io/gorm"
)

func TestSurplusAlertsTargetLinkedAccounts(t *testing.T) {
	ngoID := uint(3)
	accounts := []models.User{
		{Model: gorm.Model{ID: 7}, Role: models.RoleNGO, NGOID: &ngoID},
		{Model: gorm.Model{ID: 9}, Role: models.RoleNGO, NGOID: &ngoID},
	}

	alerts := surplusAlertsFor(42, "pickup available", accounts)
	if len(alerts) != 2 {
		t.Fatalf("got %d alert rows, want one per linked account", len(alerts))
	}
	for i, want := range []uint{7, 9} {
		if alerts[i].UserID != want {
			t.Errorf("alert %d UserID = %d, want %d", i, alerts[i].UserID, want)
		}
		if alerts[i].MealLogID != 42 {
			t.Errorf("alert %d MealLogID = %d, want 42", i, alerts[i].MealLogID)
		}
		if alerts[i].Type != "surplus" {
			t.Errorf("alert %d Type = %q, want surplus", i, alerts[i].Type)
		}
	}
}

func TestSurplusAlertsNoLinkedAccounts(t *testing.T) {
	if alerts := surplusAlertsFor(1, "msg", nil); len(alerts) != 0 {
		t.Errorf("expected no alert rows without linked accounts, got %+v", alerts)
	}
}

func TestSurplusAlertMessage(t *testing.T) {
	ml := &models.MealLog{
		Date:     time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		MealType: models.MealLunch,
	}
	p := models.RedistributionLog{QuantityKg: 12.5, Reference: "ref-abc-123"}

	msg := surplusAlertMessage(ml, p)
	for _, want := range []string{"12.5", "2026-08-28", "lunch", "ref-abc-123"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
