package handlers

import (
	"net/http"

	"motion-pcs-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for scope comments
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddComment posts a comment on a scope
// @Summary Comment on a scope
// @Description Post a comment and notify everyone involved in the scope's tickets. Cross-team comments require the scope's gate to be open.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Scope ID (UUID)"
// @Param comment body service.AddCommentRequest true "Comment content"
// @Success 201 {object} service.CommentResponse "Successfully created comment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Scope not found"
// @Security CookieAuth
// @Router /scopes/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	scopeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope ID"})
		return
	}

	var req service.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Add(actor, scopeID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// UpdateComment edits a comment's content
// @Summary Update a comment
// @Description Edit a comment. Only the author may, regardless of role.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Param comment body service.UpdateCommentRequest true "New content"
// @Success 200 {object} service.CommentResponse "Successfully updated comment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Security CookieAuth
// @Router /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var req service.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}
