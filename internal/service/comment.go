package service

import (
	"errors"
	"fmt"

	"motion-pcs-backend/internal/database/models"
	apperrors "motion-pcs-backend/internal/errors"
	"motion-pcs-backend/internal/policy"
	"motion-pcs-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles business logic for scope comments
type CommentService struct {
	comments  repository.CommentRepositoryInterface
	scopes    repository.ScopeRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(
	comments repository.CommentRepositoryInterface,
	scopes repository.ScopeRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *CommentService {
	return &CommentService{
		comments:  comments,
		scopes:    scopes,
		users:     users,
		validator: validator,
	}
}

// AddCommentRequest represents the data needed to comment on a scope
type AddCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest represents the data needed to edit a comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Add posts a comment on a scope and fans out notifications to everyone
// involved in any of the scope's tickets, excluding the actor. The comment
// insert and the notification inserts share one transaction.
func (s *CommentService) Add(actor policy.Actor, scopeID uuid.UUID, req *AddCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	scope, err := s.scopes.GetWithTickets(scopeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScopeNotFound
		}
		return nil, fmt.Errorf("failed to get scope: %w", err)
	}

	if err := policy.CanComment(actor, scope).Err(); err != nil {
		return nil, err
	}

	actorUser, err := s.users.GetByID(actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get acting user: %w", err)
	}

	recipients := ScopeCommentRecipients(scope, actor.UserID)
	message := ScopeCommentMessage(scope.Team, actorUser.Username)

	comment := &models.Comment{
		ScopeID:  scopeID,
		Content:  req.Content,
		AuthorID: actor.UserID,
	}
	if err := s.comments.CreateNotifying(comment, BuildNotifications(recipients, message)); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	comment.Author = *actorUser
	response := NewCommentResponse(comment)
	return &response, nil
}

// Update edits a comment's content. Only the author may, whatever the
// actor's role. No notifications are produced for edits.
func (s *CommentService) Update(actor policy.Actor, commentID uuid.UUID, req *UpdateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if err := policy.CanEditComment(actor, comment).Err(); err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.comments.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	actorUser, err := s.users.GetByID(actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get acting user: %w", err)
	}
	comment.Author = *actorUser

	response := NewCommentResponse(comment)
	return &response, nil
}
