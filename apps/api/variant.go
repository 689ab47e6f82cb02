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

// 规格的增删改与商品共用同一套图片约定，只是没有公共列表接口：
// 规格永远挂在商品详情里返回

func (s *server) createVariant(ctx *gin.Context) {
	productID, _ := strconv.ParseInt(ctx.PostForm("product_id"), 10, 64)
	if productID <= 0 {
		response.Error(ctx, http.StatusBadRequest, "Product ID is required")
		return
	}
	name := ctx.PostForm("name")
	if name == "" {
		response.Error(ctx, http.StatusBadRequest, "Variant name is required")
		return
	}
	price, _ := strconv.ParseFloat(ctx.PostForm("price"), 64)
	stock, _ := strconv.Atoi(ctx.PostForm("stock"))

	image, ok := s.storeUpload(ctx, "image")
	if !ok {
		return
	}

	variant := model.ProductVariant{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Stock:     stock,
		Image:     image,
	}
	if err := s.db.Create(&variant).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error creating variant")
		return
	}

	response.Created(ctx, variant.ID, "Variant created successfully")
}

func (s *server) updateVariant(ctx *gin.Context) {
	id := ctx.Param("id")

	newImage, ok := s.storeUpload(ctx, "image")
	if !ok {
		return
	}

	price, _ := strconv.ParseFloat(ctx.PostForm("price"), 64)
	stock, _ := strconv.Atoi(ctx.PostForm("stock"))
	fields := map[string]interface{}{
		"name":  ctx.PostForm("name"),
		"price": price,
		"stock": stock,
	}

	var oldImage *string
	if newImage != nil {
		var prev model.ProductVariant
		if err := s.db.Select("image").First(&prev, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(ctx, http.StatusNotFound, "Variant not found")
			} else {
				response.Error(ctx, http.StatusInternalServerError, "Error fetching variant")
			}
			return
		}
		oldImage = prev.Image
		fields["image"] = *newImage
	}

	res := s.db.Model(&model.ProductVariant{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error updating variant")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "Variant not found")
		return
	}

	if newImage != nil && oldImage != nil && *oldImage != *newImage {
		s.removeUpload(*oldImage)
	}

	response.Message(ctx, "Variant updated successfully")
}

func (s *server) deleteVariant(ctx *gin.Context) {
	id := ctx.Param("id")

	var variant model.ProductVariant
	if err := s.db.Select("id", "image").First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Variant not found")
		} else {
			response.Error(ctx, http.StatusInternalServerError, "Error fetching variant")
		}
		return
	}

	res := s.db.Delete(&model.ProductVariant{}, "id = ?", id)
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error deleting variant")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "Variant not found")
		return
	}

	if variant.Image != nil {
		s.removeUpload(*variant.Image)
	}

	response.Message(ctx, "Variant deleted successfully")
}
