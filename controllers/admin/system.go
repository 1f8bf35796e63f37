package admin

import (
	"resto-admin/inout"
	"resto-admin/services/admin_service"

	"github.com/gin-gonic/gin"
)

var systemService = &admin_service.SystemService{}

// GetSystemLog 请求审计日志
func GetSystemLog(c *gin.Context) {
	var params inout.GetSystemLogReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	list, err := systemService.GetSystemLog(params, "request_log")
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, list)
}
