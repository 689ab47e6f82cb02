package main

import (
	"net/http"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"
	"github.com/cecepns/rn-aneka-jaya/pkg/response"

	"github.com/gin-gonic/gin"
)

type messageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// createMessage 公开留言接口
func (s *server) createMessage(ctx *gin.Context) {
	var req messageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Name and message are required")
		return
	}

	msg := model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error sending message")
		return
	}
	response.Created(ctx, msg.ID, "Message sent successfully")
}

func (s *server) listMessages(ctx *gin.Context) {
	page, limit, offset := pagination(ctx)

	var total int64
	if err := s.db.Model(&model.Message{}).Count(&total).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching messages")
		return
	}

	messages := []model.Message{}
	if err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching messages")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"messages":    messages,
		"total":       total,
		"currentPage": page,
		"totalPages":  totalPages(total, limit),
	})
}
