package handler

import (
	"net/http"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	svc *service.VoteService
}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{svc: service.NewVoteService()}
}

type VoteReq struct {
	Direction string `json:"direction"` // up / down
}

func (h *VoteHandler) VotePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	action, err := h.svc.VoteOnPost(c.Request.Context(), id, principal(c), req.Direction)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"action": action})
}

func (h *VoteHandler) VoteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	action, err := h.svc.VoteOnComment(c.Request.Context(), id, principal(c), req.Direction)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"action": action})
}

func (h *VoteHandler) PostScore(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	score, err := h.svc.GetPostScore(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score})
}
