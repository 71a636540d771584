package service_test

import (
	"testing"

	"motion-pcs-backend/internal/database/models"
	"motion-pcs-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func userWithID(id uuid.UUID) models.User {
	return models.User{BaseModel: models.BaseModel{ID: id}}
}

func TestStatusChangeMessage(t *testing.T) {
	msg := service.StatusChangeMessage("Fix pump controller", models.TicketStatusCompleted, "sw_lead")
	assert.Equal(t, `Ticket "Fix pump controller" status changed to COMPLETED by sw_lead`, msg)
}

func TestScopeCommentMessage(t *testing.T) {
	msg := service.ScopeCommentMessage(models.TeamStructural, "admin")
	assert.Equal(t, "New comment in scope (Team STRUCTURAL) by admin", msg)
}

func TestStatusChangeRecipients(t *testing.T) {
	creator := uuid.New()
	assignee1 := uuid.New()
	assignee2 := uuid.New()

	ticket := &models.Ticket{
		CreatorID: creator,
		Assignees: []models.User{userWithID(assignee1), userWithID(assignee2)},
	}

	t.Run("assignees plus creator minus actor", func(t *testing.T) {
		actor := uuid.New()
		got := service.StatusChangeRecipients(ticket, actor)
		assert.ElementsMatch(t, []uuid.UUID{assignee1, assignee2, creator}, got)
	})

	t.Run("actor excluded when assignee", func(t *testing.T) {
		got := service.StatusChangeRecipients(ticket, assignee1)
		assert.ElementsMatch(t, []uuid.UUID{assignee2, creator}, got)
	})

	t.Run("actor excluded when creator", func(t *testing.T) {
		got := service.StatusChangeRecipients(ticket, creator)
		assert.ElementsMatch(t, []uuid.UUID{assignee1, assignee2}, got)
	})

	t.Run("creator who is also assignee appears once", func(t *testing.T) {
		both := &models.Ticket{
			CreatorID: creator,
			Assignees: []models.User{userWithID(creator), userWithID(assignee1)},
		}
		got := service.StatusChangeRecipients(both, uuid.New())
		assert.ElementsMatch(t, []uuid.UUID{creator, assignee1}, got)
	})
}

func TestScopeCommentRecipients(t *testing.T) {
	creatorA := uuid.New()
	creatorB := uuid.New()
	shared := uuid.New()
	assigneeB := uuid.New()

	scope := &models.Scope{
		Tickets: []models.Ticket{
			{CreatorID: creatorA, Assignees: []models.User{userWithID(shared)}},
			{CreatorID: creatorB, Assignees: []models.User{userWithID(shared), userWithID(assigneeB)}},
		},
	}

	t.Run("union over all tickets, deduplicated", func(t *testing.T) {
		got := service.ScopeCommentRecipients(scope, uuid.New())
		assert.ElementsMatch(t, []uuid.UUID{creatorA, creatorB, shared, assigneeB}, got)
	})

	t.Run("actor excluded", func(t *testing.T) {
		got := service.ScopeCommentRecipients(scope, shared)
		assert.ElementsMatch(t, []uuid.UUID{creatorA, creatorB, assigneeB}, got)
	})

	t.Run("empty scope fans out to nobody", func(t *testing.T) {
		got := service.ScopeCommentRecipients(&models.Scope{}, uuid.New())
		assert.Empty(t, got)
	})
}

func TestBuildNotifications(t *testing.T) {
	r1 := uuid.New()
	r2 := uuid.New()

	notifications := service.BuildNotifications([]uuid.UUID{r1, r2}, "hello")
	assert.Len(t, notifications, 2)
	assert.Equal(t, r1, notifications[0].RecipientID)
	assert.Equal(t, r2, notifications[1].RecipientID)
	for _, n := range notifications {
		assert.Equal(t, "hello", n.Message)
		assert.False(t, n.IsRead)
	}
}
