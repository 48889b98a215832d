package handler

import (
	"net/http"
	"strconv"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *service.AuditService
}

func NewAuditHandler() *AuditHandler {
	return &AuditHandler{svc: service.NewAuditService()}
}

func (h *AuditHandler) List(c *gin.Context) {
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
