package api

import (
	"net/http"
	"strconv"
	"time"

	"resto-admin/db"
	"resto-admin/inout"
	"resto-admin/model"
	"resto-admin/pkg/jwt"
	"resto-admin/pkg/response"
	"resto-admin/pkg/security"
	"resto-admin/redis"
	"resto-admin/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

var Auth = &auth{}

type auth struct{}

// Captcha SVG验证码，明文存入会话
func (auth) Captcha(c *gin.Context) {
	svg, code := utils.GenerateSVG(80, 40)
	session := sessions.Default(c)
	session.Set("captch", code)
	session.Save()
	c.Header("Content-Type", "image/svg+xml; charset=utf-8")
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// Login 账号密码登录
func (auth) Login(c *gin.Context) {
	var params inout.LoginReq
	if err := c.Bind(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	// 验证输入安全性
	if err := security.ValidateInput(params.Username); err != nil {
		response.Error(c, response.INVALID_PARAMS, "用户名包含非法字符")
		return
	}

	session := sessions.Default(c)
	if params.Captcha != session.Get("captch") {
		response.Error(c, response.INVALID_PARAMS, "验证码不正确")
		return
	}

	var info model.User
	db.Dao.Model(model.User{}).Where("username = ?", params.Username).Find(&info)
	if info.ID == 0 {
		response.Error(c, response.AUTH_ERROR, "账号或密码不正确")
		return
	}
	if !info.Enable {
		response.Error(c, response.FORBIDDEN, "账号已被禁用")
		return
	}

	if !security.CheckPasswordHash(params.Password, info.PasswordBcrypt) {
		response.Error(c, response.AUTH_ERROR, "账号或密码不正确")
		return
	}

	jwtManager := jwt.NewJWTManager()
	token, err := jwtManager.GenerateToken(info.ID, info.RestaurantId)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, "生成令牌失败")
		return
	}

	// 令牌入redis，登出时可主动失效
	if err := redis.StoreToken(strconv.Itoa(info.ID), token, 24*time.Hour); err != nil {
		response.Error(c, response.INTERNAL_ERROR, "令牌存储失败")
		return
	}

	response.Success(c, inout.LoginRes{
		AccessToken: token,
	})
}

// UserDetail 当前登录账号信息
func (auth) UserDetail(c *gin.Context) {
	uid := c.GetInt("uid")

	var info model.User
	err := db.Dao.Model(model.User{}).Where("id = ?", uid).First(&info).Error
	if err != nil {
		response.Error(c, response.NOT_FOUND, "账号不存在")
		return
	}

	response.Success(c, inout.UserDetailRes{
		Id:           info.ID,
		Username:     info.Username,
		RestaurantId: info.RestaurantId,
	})
}

// Logout 登出并失效redis中的令牌
func (auth) Logout(c *gin.Context) {
	uid := c.GetInt("uid")
	if uid > 0 {
		redis.DeleteToken(strconv.Itoa(uid))
	}
	response.Success(c, true)
}
