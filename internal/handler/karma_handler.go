package handler

import (
	"net/http"

	"Station_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type KarmaHandler struct {
	svc *service.KarmaService
}

func NewKarmaHandler() *KarmaHandler {
	return &KarmaHandler{svc: service.NewKarmaService()}
}

func (h *KarmaHandler) Get(c *gin.Context) {
	target := c.Param("principal")
	if target == "" {
		target = principal(c)
	}
	ledger, err := h.svc.GetLedger(target)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"principal":              ledger.Principal,
		"external_karma":         ledger.ExternalKarma,
		"unique_stations_helped": ledger.UniqueStationsHelped,
		"promotion_boost":        ledger.PromotionBoost,
	})
}
