package config

import "github.com/Anky1388/SFIRN/models"

// DashboardConfig declares which stats and panels a role's dashboard
// shows. Frontends read this instead of branching on the role themselves,
// so adding a panel is a table edit, not scattered conditionals.
type DashboardConfig struct {
	Stats  []string `json:"stats"`
	Panels []string `json:"panels"`
}

var dashboardByRole = map[string]DashboardConfig{
	models.RoleAdmin: {
		Stats:  []string{"today_surplus_kg", "total_co2_avoided_kg", "total_meals_served", "sustainability_score"},
		Panels: []string{"meal_logs", "surplus_chart", "ngo_list", "ngo_map", "insights", "menu_manager", "settings"},
	},
	models.RoleOperator: {
		Stats:  []string{"today_surplus_kg", "total_co2_avoided_kg", "total_meals_served", "sustainability_score"},
		Panels: []string{"meal_log_form", "surplus_chart", "ngo_alerts", "menu_manager", "history"},
	},
	models.RoleStudent: {
		Stats:  []string{"total_meals_served", "total_co2_avoided_kg"},
		Panels: []string{"meal_check_in", "menu_view", "insights"},
	},
	models.RoleNGO: {
		Stats:  []string{"total_meals_served", "total_co2_avoided_kg"},
		Panels: []string{"ngo_alerts", "my_pickups"},
	},
}

// DashboardFor returns the dashboard layout for a role, falling back to
// the student view for unknown roles.
func DashboardFor(role string) DashboardConfig {
	if cfg, ok := dashboardByRole[role]; ok {
		return cfg
	}
	return dashboardByRole[models.RoleStudent]
}
