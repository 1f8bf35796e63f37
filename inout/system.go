package inout

// GetSystemLogReq 请求审计日志查询
type GetSystemLogReq struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Keyword  string `form:"keyword"`
}
