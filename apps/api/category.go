package main

import (
	"net/http"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"
	"github.com/cecepns/rn-aneka-jaya/pkg/response"

	"github.com/gin-gonic/gin"
)

// 商品分类没有图片，就是最朴素的 CRUD。
// 注意分类改名不会回写已有商品的 category 字符串

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *server) listCategories(ctx *gin.Context) {
	categories := []model.Category{}
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching categories")
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

func (s *server) createCategory(ctx *gin.Context) {
	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	category := model.Category{Name: req.Name, Description: req.Description}
	if err := s.db.Create(&category).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error creating category")
		return
	}
	response.Created(ctx, category.ID, "Category created successfully")
}

func (s *server) updateCategory(ctx *gin.Context) {
	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	res := s.db.Model(&model.Category{}).Where("id = ?", ctx.Param("id")).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	})
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error updating category")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "Category not found")
		return
	}
	response.Message(ctx, "Category updated successfully")
}

func (s *server) deleteCategory(ctx *gin.Context) {
	res := s.db.Delete(&model.Category{}, "id = ?", ctx.Param("id"))
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error deleting category")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "Category not found")
		return
	}
	response.Message(ctx, "Category deleted successfully")
}
