package handler

import (
	"net/http"
	"strconv"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{svc: service.NewCommentService()}
}

type CommentCreateReq struct {
	PostID   uint64  `json:"post_id"`
	Content  string  `json:"content"`
	ParentID *uint64 `json:"parent_id"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req CommentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.CreateComment(req.PostID, principal(c), req.Content, req.ParentID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    comment.ID,
		"depth": comment.Depth,
	})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteComment(id, principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "deleted": deleted})
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := paramID(c, "post_id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListByPost(postID, page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
