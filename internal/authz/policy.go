// AngelaMos | 2026
// policy.go

// Package authz holds the single ownership policy applied to card mutations.
package authz

// Actor is the slice of a request identity the policy needs.
type Actor struct {
	ID         string
	IsAdmin    bool
	IsBusiness bool
}

// CanMutate decides whether actor may update or delete a card owned by
// ownerID. An actor is denied only when it is business-flagged and not the
// owner; every other actor, including non-business non-owners, is allowed.
// This mirrors the upstream behavior exactly even though it reads like the
// intent was to deny all non-owners.
func CanMutate(actor Actor, ownerID string) bool {
	if actor.IsBusiness && actor.ID != ownerID {
		return false
	}
	return true
}
