package config

import (
	"testing"

	"github.com/Anky1388/SFIRN/models"
)

func TestDashboardForKnownRoles(t *testing.T) {
	for _, role := range []string{models.RoleAdmin, models.RoleOperator, models.RoleStudent, models.RoleNGO} {
		cfg := DashboardFor(role)
		if len(cfg.Stats) == 0 || len(cfg.Panels) == 0 {
			t.Errorf("role %q has an empty dashboard config", role)
		}
	}
}

func TestDashboardForUnknownRoleFallsBack(t *testing.T) {
	got := DashboardFor("intruder")
	want := DashboardFor(models.RoleStudent)
	if len(got.Panels) != len(want.Panels) {
		t.Errorf("unknown role did not fall back to the student view: %+v", got)
	}
	for _, p := range got.Panels {
		if p == "meal_log_form" || p == "menu_manager" {
			t.Errorf("fallback config exposes an operator panel: %q", p)
		}
	}
}
