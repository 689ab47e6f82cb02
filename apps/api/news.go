package main

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"
	"github.com/cecepns/rn-aneka-jaya/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^\w-]`)
)

// slugify 标题转 URL 键：小写、空白换连字符、去掉其余符号。
// 唯一性只是约定，库里不强制
func slugify(title string) string {
	s := strings.ToLower(title)
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugInvalid.ReplaceAllString(s, "")
}

// newsItem 列表/详情行，LEFT JOIN 带出分类名
type newsItem struct {
	model.News
	CategoryName *string `json:"category_name"`
}

func (s *server) newsQuery() *gorm.DB {
	return s.db.Table("news").
		Select("news.*, news_categories.name AS category_name").
		Joins("LEFT JOIN news_categories ON news.category_id = news_categories.id")
}

func (s *server) listNews(ctx *gin.Context) {
	page, limit, offset := pagination(ctx)
	status := ctx.DefaultQuery("status", model.NewsStatusPublished)

	var total int64
	if err := s.db.Model(&model.News{}).Where("status = ?", status).Count(&total).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching news count")
		return
	}

	items := []newsItem{}
	err := s.newsQuery().
		Where("news.status = ?", status).
		Order("news.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&items).Error
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching news")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"news":        items,
		"total":       total,
		"currentPage": page,
		"totalPages":  totalPages(total, limit),
	})
}

// getNewsBySlug 详情用 slug 寻址，不是 id
func (s *server) getNewsBySlug(ctx *gin.Context) {
	var item newsItem
	err := s.newsQuery().Where("news.slug = ?", ctx.Param("slug")).Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "News not found")
		} else {
			response.Error(ctx, http.StatusInternalServerError, "Error fetching news")
		}
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func newsCategoryID(ctx *gin.Context) *int64 {
	if v, err := strconv.ParseInt(ctx.PostForm("category_id"), 10, 64); err == nil && v > 0 {
		return &v
	}
	return nil
}

func (s *server) createNews(ctx *gin.Context) {
	title := ctx.PostForm("title")
	if title == "" {
		response.Error(ctx, http.StatusBadRequest, "News title is required")
		return
	}
	slug := ctx.PostForm("slug")
	if slug == "" {
		slug = slugify(title)
	}
	status := ctx.PostForm("status")
	if status == "" {
		status = model.NewsStatusPublished
	}

	image, ok := s.storeUpload(ctx, "image")
	if !ok {
		return
	}

	news := model.News{
		Title:       title,
		Slug:        slug,
		Description: ctx.PostForm("description"),
		CategoryID:  newsCategoryID(ctx),
		Image:       image,
		Author:      ctx.PostForm("author"),
		Status:      status,
	}
	if err := s.db.Create(&news).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error creating news")
		return
	}

	response.Created(ctx, news.ID, "News created successfully")
}

func (s *server) updateNews(ctx *gin.Context) {
	id := ctx.Param("id")

	newImage, ok := s.storeUpload(ctx, "image")
	if !ok {
		return
	}

	title := ctx.PostForm("title")
	slug := ctx.PostForm("slug")
	if slug == "" {
		slug = slugify(title)
	}
	fields := map[string]interface{}{
		"title":       title,
		"slug":        slug,
		"description": ctx.PostForm("description"),
		"category_id": newsCategoryID(ctx),
		"author":      ctx.PostForm("author"),
		"status":      ctx.PostForm("status"),
	}

	var oldImage *string
	if newImage != nil {
		var prev model.News
		if err := s.db.Select("image").First(&prev, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(ctx, http.StatusNotFound, "News not found")
			} else {
				response.Error(ctx, http.StatusInternalServerError, "Error fetching news")
			}
			return
		}
		oldImage = prev.Image
		fields["image"] = *newImage
	}

	res := s.db.Model(&model.News{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error updating news")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "News not found")
		return
	}

	if newImage != nil && oldImage != nil && *oldImage != *newImage {
		s.removeUpload(*oldImage)
	}

	response.Message(ctx, "News updated successfully")
}

func (s *server) deleteNews(ctx *gin.Context) {
	id := ctx.Param("id")

	var news model.News
	if err := s.db.Select("id", "image").First(&news, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "News not found")
		} else {
			response.Error(ctx, http.StatusInternalServerError, "Error fetching news")
		}
		return
	}

	res := s.db.Delete(&model.News{}, "id = ?", id)
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error deleting news")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "News not found")
		return
	}

	if news.Image != nil {
		s.removeUpload(*news.Image)
	}

	response.Message(ctx, "News deleted successfully")
}

// --- 资讯分类，与商品分类同构 ---

func (s *server) listNewsCategories(ctx *gin.Context) {
	categories := []model.NewsCategory{}
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching news categories")
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

func (s *server) createNewsCategory(ctx *gin.Context) {
	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	category := model.NewsCategory{Name: req.Name, Description: req.Description}
	if err := s.db.Create(&category).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error creating news category")
		return
	}
	response.Created(ctx, category.ID, "News category created successfully")
}

func (s *server) updateNewsCategory(ctx *gin.Context) {
	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	res := s.db.Model(&model.NewsCategory{}).Where("id = ?", ctx.Param("id")).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	})
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error updating news category")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "News category not found")
		return
	}
	response.Message(ctx, "News category updated successfully")
}

func (s *server) deleteNewsCategory(ctx *gin.Context) {
	res := s.db.Delete(&model.NewsCategory{}, "id = ?", ctx.Param("id"))
	if res.Error != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error deleting news category")
		return
	}
	if res.RowsAffected == 0 {
		response.Error(ctx, http.StatusNotFound, "News category not found")
		return
	}
	response.Message(ctx, "News category deleted successfully")
}
