package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"
	"github.com/cecepns/rn-aneka-jaya/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 类型条件校验：bank 要求三个账户字段齐全，qris 要求二维码图片。
// 全部在处理器边界做，通不过就不碰库也不碰磁盘

func bankFieldsMissing(ctx *gin.Context) bool {
	return ctx.PostForm("bank_name") == "" ||
		ctx.PostForm("account_name") == "" ||
		ctx.PostForm("account_number") == ""
}

func (s *server) listActivePaymentMethods(ctx *gin.Context) {
	methods := []model.PaymentMethod{}
	if err := s.db.Where("is_active = ?", true).
		Order("display_order ASC, id ASC").Find(&methods).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching payment methods")
		return
	}
	ctx.JSON(http.StatusOK, methods)
}

func (s *server) listAllPaymentMethods(ctx *gin.Context) {
	methods := []model.PaymentMethod{}
	if err := s.db.Order("display_order ASC, id ASC").Find(&methods).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching payment methods")
		return
	}
	ctx.JSON(http.StatusOK, methods)
}

func (s *server) createPaymentMethod(ctx *gin.Context) {
	typ := ctx.PostForm("type")

	noFile := false
	if _, err := ctx.FormFile("qris_image"); err != nil {
		noFile = true
	}
	if typ == model.PaymentTypeQris && noFile {
		response.Error(ctx, http.StatusBadRequest, "QRIS image is required for QRIS type")
		return
	}
	if typ == model.PaymentTypeBank && bankFieldsMissing(ctx) {
		response.Error(ctx, http.StatusBadRequest, "Bank name, account name, and account number are required for bank type")
		return
	}

	qrisImage, ok := s.storeUpload(ctx, "qris_image")
	if !ok {
		return
	}

	displayOrder, _ := strconv.Atoi(ctx.PostForm("display_order"))
	method := model.PaymentMethod{
		Type:          typ,
		QrisImage:     qrisImage,
		BankName:      ctx.PostForm("bank_name"),
		AccountName:   ctx.PostForm("account_name"),
		AccountNumber: ctx.PostForm("account_number"),
		IsActive:      ctx.PostForm("is_active") == "true",
		DisplayOrder:  displayOrder,
	}
	if err := s.db.Create(&method).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error creating payment method")
		return
	}

	response.Created(ctx, method.ID, "Payment method created successfully")
}

func (s *server) updatePaymentMethod(ctx *gin.Context) {
	id := ctx.Param("id")
	typ := ctx.PostForm("type")

	if typ == model.PaymentTypeBank && bankFieldsMissing(ctx) {
		response.Error(ctx, http.StatusBadRequest, "Bank name, account name, and account number are required for bank type")
		return
	}

	newImage, ok := s.storeUpload(ctx, "qris_image")
	if !ok {
		return
	}

	// 行现状在两个分支都要读：有新图时为了删旧文件，
	// 切到 qris 又没传图时为了确认已有二维码，否则行保持原样直接 400
	var prev model.PaymentMethod
	if err := s.db.Select("qris_image").First(&prev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Payment method not found")
		} else {
			response.Error(ctx, http.StatusInternalServerError, "Error fetching payment method")
		}
		return
	}
	if typ == model.PaymentTypeQris && newImage == nil && prev.QrisImage == nil {
		response.Error(ctx, http.StatusBadRequest, "QRIS image is required for QRIS type")
		return
	}

	displayOrder, _ := strconv.Atoi(ctx.PostForm("display_order"))
	fields := map[string]interface{}{
		"type":           typ,
		"bank_name":      ctx.PostForm("bank_name"),
		"account_name":   ctx.PostForm("account_name"),
		"account_number": ctx.PostForm("account_number"),
		"is_active":      ctx.PostForm("is_active") == "true",
		"display_order":  displayOrder,
	}
	if newImage != nil {
		fields["qris_image"] = *newImage
	}

	res := s.db.Model(&model.PaymentMethod{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error updating payment method")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "Payment method not found")
		return
	}

	if newImage != nil && prev.QrisImage != nil && *prev.QrisImage != *newImage {
		s.removeUpload(*prev.QrisImage)
	}

	response.Message(ctx, "Payment method updated successfully")
}

func (s *server) deletePaymentMethod(ctx *gin.Context) {
	id := ctx.Param("id")

	var method model.PaymentMethod
	if err := s.db.Select("id", "qris_image").First(&method, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Payment method not found")
		} else {
			response.Error(ctx, http.StatusInternalServerError, "Error fetching payment method")
		}
		return
	}

	res := s.db.Delete(&model.PaymentMethod{}, "id = ?", id)
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error deleting payment method")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "Payment method not found")
		return
	}

	if method.QrisImage != nil {
		s.removeUpload(*method.QrisImage)
	}

	response.Message(ctx, "Payment method deleted successfully")
}
