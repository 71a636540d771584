// Package policy is the access decision engine. Every function here is a
// pure function of the actor's claims and a snapshot of the target entity:
// no I/O, no clock, no store access. Callers authenticate first; an
// unauthenticated request never reaches a policy check.
package policy

import (
	"motion-pcs-backend/internal/database/models"
	apperrors "motion-pcs-backend/internal/errors"

	"github.com/google/uuid"
)

// Actor is the identity a decision is made for, as recovered from the
// session token. Team is nil only for admins.
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
	Team   *models.Team
}

// Decision is the outcome of a policy check. A deny always carries a
// human-readable reason that is surfaced to the caller verbatim.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns an allowing decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given reason
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err converts the decision into an error value: nil when allowed, an
// AuthorizationError carrying the reason when denied.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return apperrors.NewAuthorizationError(d.Reason)
}

// Deny reasons
const (
	ReasonEngineerCreateTicket = "Forbidden: Engineers cannot create tickets."
	ReasonEngineerTransition   = "Forbidden: Engineers can only move tickets to IN_PROGRESS or AWAITING_REVIEW."
	ReasonEngineerAssignTicket = "Forbidden: Engineers cannot assign tickets."
	ReasonTicketEdit           = "Forbidden: Only the ticket creator, Leads or Admins can edit tickets."
	ReasonScopeComment         = "Forbidden: You do not have permission to comment on this scope."
	ReasonCommentEdit          = "Forbidden: You can only edit your own comments."
	ReasonScopeToggle          = "Forbidden: Only Admins or Team Leads can toggle comments."
	ReasonNotificationOwner    = "Forbidden: You can only update your own notifications."
)

// CanCreateTicket decides whether the actor may create tickets. Engineers
// work tickets; they do not open them.
func CanCreateTicket(actor Actor) Decision {
	if actor.Role == models.RoleEngineer {
		return Deny(ReasonEngineerCreateTicket)
	}
	return Allow()
}

// CanTransitionTicket decides whether the actor may move a ticket to the
// target status. Engineers are restricted to the two working states; Leads
// and Admins may set any status. The ticket's current status is not
// consulted.
func CanTransitionTicket(actor Actor, target models.TicketStatus) Decision {
	if actor.Role != models.RoleEngineer {
		return Allow()
	}
	if target == models.TicketStatusInProgress || target == models.TicketStatusAwaitingReview {
		return Allow()
	}
	return Deny(ReasonEngineerTransition)
}

// CanAssignTicket decides whether the actor may change a ticket's assignees
func CanAssignTicket(actor Actor) Decision {
	if actor.Role == models.RoleEngineer {
		return Deny(ReasonEngineerAssignTicket)
	}
	return Allow()
}

// CanEditTicket decides whether the actor may edit a ticket's fields:
// the creator always can, and so can any Lead or Admin.
func CanEditTicket(actor Actor, ticket *models.Ticket) Decision {
	if actor.UserID == ticket.CreatorID {
		return Allow()
	}
	if actor.Role == models.RoleAdmin || actor.Role == models.RoleLead {
		return Allow()
	}
	return Deny(ReasonTicketEdit)
}

// CanComment decides whether the actor may comment on a scope: members of
// the owning team always can, admins always can, and other teams only when
// the scope's cross-team gate is open.
func CanComment(actor Actor, scope *models.Scope) Decision {
	if actor.Team != nil && *actor.Team == scope.Team {
		return Allow()
	}
	if actor.Role == models.RoleAdmin {
		return Allow()
	}
	if scope.AllowCrossTeamComments {
		return Allow()
	}
	return Deny(ReasonScopeComment)
}

// CanEditComment decides whether the actor may edit a comment. Only the
// author may; there is no role override, not even for admins.
func CanEditComment(actor Actor, comment *models.Comment) Decision {
	if actor.UserID == comment.AuthorID {
		return Allow()
	}
	return Deny(ReasonCommentEdit)
}

// CanToggleComments decides whether the actor may flip a scope's cross-team
// comment gate: the owning team's Lead, or an Admin.
func CanToggleComments(actor Actor, scope *models.Scope) Decision {
	if actor.Role == models.RoleAdmin {
		return Allow()
	}
	if actor.Role == models.RoleLead && actor.Team != nil && *actor.Team == scope.Team {
		return Allow()
	}
	return Deny(ReasonScopeToggle)
}

// CanMarkNotificationRead decides whether the actor may mark a notification
// as read. Notifications belong to their recipient.
func CanMarkNotificationRead(actor Actor, notification *models.Notification) Decision {
	if actor.UserID == notification.RecipientID {
		return Allow()
	}
	return Deny(ReasonNotificationOwner)
}

// ScopeVisible reports whether a scope is visible to the actor. Admins see
// every scope; everyone else sees only their own team's. Tickets and
// comments are not filtered independently: visibility is scope-granular.
func ScopeVisible(actor Actor, scope *models.Scope) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}
	return actor.Team != nil && *actor.Team == scope.Team
}
