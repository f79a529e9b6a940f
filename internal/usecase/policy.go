package usecase

import (
	"swiftcard/internal/data/entity"
	"swiftcard/pkg/utils"

	"github.com/google/uuid"
)

// Authorization policies, one per operation. Keeping them in one place
// avoids the drift that comes from repeating role checks inside each route.

// canViewUser: a user record may be read by its owner or an admin
func canViewUser(identity utils.Identity, userID uuid.UUID) bool {
	return identity.IsAdmin || identity.ID == userID
}

// canListUsers: the full user listing is admin-only
func canListUsers(identity utils.Identity) bool {
	return identity.IsAdmin
}

// canEditUser: profile updates and the business toggle are self-only
func canEditUser(identity utils.Identity, userID uuid.UUID) bool {
	return identity.ID == userID
}

// canDeleteUser: self or admin
func canDeleteUser(identity utils.Identity, userID uuid.UUID) bool {
	return identity.IsAdmin || identity.ID == userID
}

// canCreateCard: only business-flagged identities create cards
func canCreateCard(identity utils.Identity) bool {
	return identity.IsBusiness
}

// canModifyCard: updates and deletes are owner-only
func canModifyCard(identity utils.Identity, card *entity.Card) bool {
	return card.UserID == identity.ID
}

// canOverrideBizNumber: the bizNumber override path is admin-only
func canOverrideBizNumber(identity utils.Identity) bool {
	return identity.IsAdmin
}
