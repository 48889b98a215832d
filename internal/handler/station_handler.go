package handler

import (
	"net/http"
	"strconv"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	svc *service.StationService
}

func NewStationHandler() *StationHandler {
	return &StationHandler{svc: service.NewStationService()}
}

type StationCreateReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *StationHandler) Create(c *gin.Context) {
	var req StationCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	st, err := h.svc.CreateStation(principal(c), req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   st.ID,
		"slug": st.Slug,
		"name": st.Name,
	})
}

func (h *StationHandler) Get(c *gin.Context) {
	st, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *StationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.List(page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *StationHandler) Join(c *gin.Context) {
	id, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	m, err := h.svc.Join(id, principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "role": m.SystemRole})
}

func (h *StationHandler) Leave(c *gin.Context) {
	id, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	if err := h.svc.Leave(id, principal(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *StationHandler) Archive(c *gin.Context) {
	id, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	if err := h.svc.Archive(id, principal(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *StationHandler) Members(c *gin.Context) {
	id, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, next, err := h.svc.ListMembers(id, cursor, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "next_cursor": next})
}
