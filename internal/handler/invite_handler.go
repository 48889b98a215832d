package handler

import (
	"net/http"
	"strconv"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type InviteHandler struct {
	svc *service.InviteService
}

func NewInviteHandler(svc *service.InviteService) *InviteHandler {
	return &InviteHandler{svc: svc}
}

type InviteCreateReq struct {
	InvitedPrincipal string `json:"invited_principal"`
	RoleSlug         string `json:"role_slug"`
	MaxUses          int    `json:"max_uses"`
	ExpiresInHours   int    `json:"expires_in_hours"`
	NotifyEmail      string `json:"notify_email"`
}

func (h *InviteHandler) Create(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	var req InviteCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	inv, err := h.svc.CreateInvite(stationID, principal(c), service.InviteOptions{
		InvitedPrincipal: req.InvitedPrincipal,
		RoleSlug:         req.RoleSlug,
		MaxUses:          req.MaxUses,
		ExpiresInHours:   req.ExpiresInHours,
		NotifyEmail:      req.NotifyEmail,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           inv.ID,
		"code":         inv.Code,
		"role_on_join": inv.RoleOnJoin,
		"expires_at":   inv.ExpiresAt,
	})
}

type InviteUseReq struct {
	Code string `json:"code"`
}

func (h *InviteHandler) Use(c *gin.Context) {
	var req InviteUseReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	st, role, err := h.svc.UseInvite(req.Code, principal(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"station_id":   st.ID,
		"station_slug": st.Slug,
		"role":         role,
	})
}

func (h *InviteHandler) Deactivate(c *gin.Context) {
	inviteID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Deactivate(inviteID, principal(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *InviteHandler) List(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListByStation(stationID, principal(c), page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
