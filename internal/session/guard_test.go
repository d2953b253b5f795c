package session

import (
	"testing"

	"onboarding_system/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	identity := &domain.Identity{ID: "id-1", Name: "A", Email: "a@b.com"}

	tests := []struct {
		name         string
		state        Snapshot
		requireAdmin bool
		want         Decision
	}{
		{"loading regular", Snapshot{Loading: true}, false, Wait},
		{"loading admin", Snapshot{Loading: true}, true, Wait},
		{"anonymous regular", Snapshot{Role: domain.RoleGuest}, false, RedirectLogin},
		{"anonymous admin", Snapshot{Role: domain.RoleGuest}, true, RedirectLogin},
		{"user regular", Snapshot{Identity: identity, Role: domain.RoleUser}, false, Render},
		{"user admin", Snapshot{Identity: identity, Role: domain.RoleUser}, true, RedirectAdminLogin},
		{"admin regular", Snapshot{Identity: &domain.AdminIdentity, Role: domain.RoleAdmin}, false, Render},
		{"admin admin", Snapshot{Identity: &domain.AdminIdentity, Role: domain.RoleAdmin}, true, Render},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Decide(tt.state, tt.requireAdmin))
			// Deterministic: identical inputs, identical decision
			require.Equal(t, tt.want, Decide(tt.state, tt.requireAdmin))
		})
	}
}

func TestDecisionString(t *testing.T) {
	require.Equal(t, "wait", Wait.String())
	require.Equal(t, "render", Render.String())
	require.Equal(t, "redirect:login", RedirectLogin.String())
	require.Equal(t, "redirect:admin-login", RedirectAdminLogin.String())
	require.Equal(t, "unknown", Decision(99).String())
}
