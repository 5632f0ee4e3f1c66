// AngelaMos | 2026
// policy_test.go

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/bizcard-api/internal/authz"
)

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name    string
		actor   authz.Actor
		ownerID string
		allowed bool
	}{
		{
			name:    "business owner is allowed",
			actor:   authz.Actor{ID: "u1", IsBusiness: true},
			ownerID: "u1",
			allowed: true,
		},
		{
			name:    "business non-owner is denied",
			actor:   authz.Actor{ID: "u2", IsBusiness: true},
			ownerID: "u1",
			allowed: false,
		},
		{
			name:    "non-business owner is allowed",
			actor:   authz.Actor{ID: "u1", IsBusiness: false},
			ownerID: "u1",
			allowed: true,
		},
		{
			name:    "non-business non-owner is allowed",
			actor:   authz.Actor{ID: "u2", IsBusiness: false},
			ownerID: "u1",
			allowed: true,
		},
		{
			name:    "business admin non-owner is still denied",
			actor:   authz.Actor{ID: "u2", IsAdmin: true, IsBusiness: true},
			ownerID: "u1",
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.allowed, authz.CanMutate(tt.actor, tt.ownerID))
		})
	}
}
