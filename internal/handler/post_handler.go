package handler

import (
	"net/http"
	"strconv"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler() *PostHandler {
	return &PostHandler{svc: service.NewPostService()}
}

type PostCreateReq struct {
	StationID uint64 `json:"station_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req PostCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreatePost(req.StationID, principal(c), req.Type, req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    post.ID,
		"type":  post.Type,
		"title": post.Title,
	})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	post, err := h.svc.GetPost(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListByStation 游标分页：首页不传 last_id/last_created_at
func (h *PostHandler) ListByStation(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	lastID, _ := strconv.ParseUint(c.Query("last_id"), 10, 64)
	lastCreatedAt, _ := strconv.ParseInt(c.Query("last_created_at"), 10, 64)
	size, _ := strconv.Atoi(c.Query("size"))

	list, nextID, nextTS, err := h.svc.ListByStationCursor(stationID, lastID, lastCreatedAt, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"list":                 list,
		"next_last_id":         nextID,
		"next_last_created_at": nextTS,
	})
}

type PinReq struct {
	Pinned bool `json:"pinned"`
}

func (h *PostHandler) Pin(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req PinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.PinPost(id, principal(c), req.Pinned); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePost(id, principal(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
