package inout

// LoginReq 后台登录请求
type LoginReq struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Captcha  string `json:"captcha" form:"captcha" binding:"required"`
}

// LoginRes 登录响应
type LoginRes struct {
	AccessToken string `json:"accessToken"`
}

// UserDetailRes 当前账号信息
type UserDetailRes struct {
	Id           int    `json:"id"`
	Username     string `json:"username"`
	RestaurantId int    `json:"restaurant_id"`
}
