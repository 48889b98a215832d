package handler

import (
	"net/http"
	"strconv"

	"Station_Hub/internal/middleware"
	"Station_Hub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// principal 取中间件注入的可信身份
func principal(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextPrincipalKey)
	p, _ := v.(string)
	return p
}

// fail 按错误类别映射 HTTP 状态码
func fail(c *gin.Context, err error) {
	c.JSON(errs.HTTPStatus(err), gin.H{
		"kind": string(errs.KindOf(err)),
		"msg":  err.Error(),
	})
}

func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid " + name})
		return 0, false
	}
	return id, true
}
