package main

import (
	"net/http"

	"github.com/cecepns/rn-aneka-jaya/pkg/jwt"
	"github.com/cecepns/rn-aneka-jaya/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// login 后台唯一管理员的登录。账号密码来自配置，密码用 bcrypt 比对
func (s *server) login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username != s.cfg.Auth.AdminUser ||
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(req.Password)) != nil {
		response.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := jwt.GenerateToken(1, req.Username)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token, "message": "Login successful"})
}
