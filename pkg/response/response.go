package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 老后台的接口约定：错误和操作结果都只带一个 message 字段，
// 新增返回 id+message，列表/详情直接返回实体 JSON。前端对此强依赖，不要改。

// Error 失败响应
func Error(ctx *gin.Context, httpStatus int, msg string) {
	ctx.JSON(httpStatus, gin.H{"message": msg})
}

// Message 成功响应 (仅提示信息)
func Message(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}

// Created 创建成功响应，返回新行的自增 id
func Created(ctx *gin.Context, id int64, msg string) {
	ctx.JSON(http.StatusCreated, gin.H{"id": id, "message": msg})
}
