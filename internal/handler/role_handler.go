package handler

import (
	"net/http"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	svc *service.RoleService
}

func NewRoleHandler() *RoleHandler {
	return &RoleHandler{svc: service.NewRoleService()}
}

type RoleCreateReq struct {
	Name         string   `json:"name"`
	ColorHint    string   `json:"color_hint"`
	Capabilities []string `json:"capabilities"`
	Priority     int      `json:"priority"`
}

func (h *RoleHandler) Create(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	var req RoleCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	role, err := h.svc.CreateCustomRole(stationID, principal(c), req.Name, req.ColorHint, req.Capabilities, req.Priority)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

type RoleUpdateReq struct {
	Name         *string  `json:"name"`
	ColorHint    *string  `json:"color_hint"`
	Capabilities []string `json:"capabilities"`
	Priority     *int     `json:"priority"`
}

func (h *RoleHandler) Update(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	roleID, ok := paramID(c, "role_id")
	if !ok {
		return
	}
	var req RoleUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	role, err := h.svc.UpdateCustomRole(stationID, roleID, principal(c), service.RoleUpdate{
		Name:         req.Name,
		ColorHint:    req.ColorHint,
		Capabilities: req.Capabilities,
		Priority:     req.Priority,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	roleID, ok := paramID(c, "role_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCustomRole(stationID, roleID, principal(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

type RoleAssignReq struct {
	Target   string `json:"target"`
	RoleSlug string `json:"role_slug"`
}

func (h *RoleHandler) Assign(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	var req RoleAssignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.AssignRole(stationID, principal(c), req.Target, req.RoleSlug); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Check 查自己是否持有某项权限，前端按钮置灰用
func (h *RoleHandler) Check(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	allowed, err := h.svc.Check(stationID, principal(c), c.Query("capability"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"allowed": allowed})
}

func (h *RoleHandler) List(c *gin.Context) {
	stationID, ok := paramID(c, "station_id")
	if !ok {
		return
	}
	list, err := h.svc.ListRoles(stationID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
