package services

import (
	"testing"

	"github.com/Anky1388/SFIRN/models"
)

func TestResolveRole(t *testing.T) {
	ngoID := uint(5)
	cases := []struct {
		name    string
		role    string
		ngoID   *uint
		want    string
		wantErr bool
	}{
		{"empty defaults to student", "", nil, models.RoleStudent, false},
		{"operator", models.RoleOperator, nil, models.RoleOperator, false},
		{"ngo with link", models.RoleNGO, &ngoID, models.RoleNGO, false},
		{"ngo without link", models.RoleNGO, nil, "", true},
		{"student with link", models.RoleStudent, &ngoID, "", true},
		{"admin not self-registrable", models.RoleAdmin, nil, "", true},
		{"unknown role", "root", nil, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveRole(tc.role, tc.ngoID)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("resolveRole(%q, %v) succeeded, want error", tc.role, tc.ngoID)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveRole(%q, %v): %v", tc.role, tc.ngoID, err)
			}
			if got != tc.want {
				t.Errorf("resolveRole(%q, %v) = %q, want %q", tc.role, tc.ngoID, got, tc.want)
			}
		})
	}
}
