package service

import (
	"fmt"

	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
)

// Fan-out recipient computation. These are pure functions over entity
// snapshots; the transactional insert happens in the repositories.

// StatusChangeMessage renders the notification text for a ticket status change
func StatusChangeMessage(title string, status models.TicketStatus, actorUsername string) string {
	return fmt.Sprintf("Ticket \"%s\" status changed to %s by %s", title, status, actorUsername)
}

// ScopeCommentMessage renders the notification text for a new scope comment
func ScopeCommentMessage(team models.Team, actorUsername string) string {
	return fmt.Sprintf("New comment in scope (Team %s) by %s", team, actorUsername)
}

// StatusChangeRecipients computes who gets notified when a ticket's status
// changes: the ticket's assignees plus its creator, minus the actor. The
// result is deduplicated; order follows assignees then creator.
func StatusChangeRecipients(ticket *models.Ticket, actorID uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	recipients := make([]uuid.UUID, 0, len(ticket.Assignees)+1)

	add := func(id uuid.UUID) {
		if id == actorID || seen[id] {
			return
		}
		seen[id] = true
		recipients = append(recipients, id)
	}

	for i := range ticket.Assignees {
		add(ticket.Assignees[i].ID)
	}
	add(ticket.CreatorID)

	return recipients
}

// ScopeCommentRecipients computes who gets notified when a comment lands on
// a scope: everyone involved in any ticket of the scope, assignee or
// creator, minus the actor. Scopes without tickets fan out to nobody.
func ScopeCommentRecipients(scope *models.Scope, actorID uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var recipients []uuid.UUID

	add := func(id uuid.UUID) {
		if id == actorID || seen[id] {
			return
		}
		seen[id] = true
		recipients = append(recipients, id)
	}

	for i := range scope.Tickets {
		ticket := &scope.Tickets[i]
		for j := range ticket.Assignees {
			add(ticket.Assignees[j].ID)
		}
		add(ticket.CreatorID)
	}

	return recipients
}

// BuildNotifications materializes one notification per recipient
func BuildNotifications(recipients []uuid.UUID, message string) []models.Notification {
	notifications := make([]models.Notification, 0, len(recipients))
	for _, id := range recipients {
		notifications = append(notifications, models.Notification{
			RecipientID: id,
			Message:     message,
		})
	}
	return notifications
}
