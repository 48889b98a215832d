package handler

import (
	"net/http"
	"strconv"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	svc *service.ModerationService
}

func NewModerationHandler() *ModerationHandler {
	return &ModerationHandler{svc: service.NewModerationService()}
}

type BanReq struct {
	Target        string `json:"target"`
	Reason        string `json:"reason"`
	DurationHours *int   `json:"duration_hours"` // 不传为永久
}

func (h *ModerationHandler) Ban(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	var req BanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.Ban(stationID, principal(c), req.Target, req.Reason, req.DurationHours); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

type TargetReq struct {
	Target string `json:"target"`
}

func (h *ModerationHandler) Unban(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	var req TargetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.Unban(stationID, principal(c), req.Target); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

type MuteReq struct {
	Target        string `json:"target"`
	Reason        string `json:"reason"`
	DurationHours int    `json:"duration_hours"`
}

func (h *ModerationHandler) Mute(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	var req MuteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.Mute(stationID, principal(c), req.Target, req.DurationHours, req.Reason); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ModerationHandler) Unmute(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	var req TargetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.Unmute(stationID, principal(c), req.Target); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ModerationHandler) Restrictions(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	target := c.Query("target")
	if target == "" {
		target = principal(c)
	}
	list, err := h.svc.Restrictions(stationID, target)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *ModerationHandler) History(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.History(stationID, principal(c), page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
