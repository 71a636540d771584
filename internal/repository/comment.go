package repository

import (
	"motion-pcs-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// CreateNotifying persists a new comment together with its notification
// fan-out in one transaction. If any notification insert fails the comment
// is rolled back with it.
func (r *CommentRepository) CreateNotifying(comment *models.Comment, notifications []models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if len(notifications) > 0 {
			if err := tx.Create(&notifications).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update updates a comment
func (r *CommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}
