package main

import (
	"errors"
	"net/http"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"
	"github.com/cecepns/rn-aneka-jaya/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 店铺设置是单行约定：永远取 id 最大的一行。
// 没有行时返回这份硬编码默认值 (与旧版线上文案一致)
func defaultSettings() gin.H {
	return gin.H{
		"address":          "Jl Transeram Waihatu, Kairatu Barat, Kab SBB",
		"phone":            "085243008899",
		"maps_url":         "https://maps.app.goo.gl/nwkqSVyAXtdTC37HA",
		"operating_hours":  "Setiap Hari: 07.00 - 21.00 WIT",
		"about_us":         "Mall Gudang Pakan Ternak adalah supplier pakan ternak dan ikan berkualitas terpercaya yang menyediakan berbagai macam pakan unggas, ikan, suplemen, dan perlengkapan peternakan dengan harga kompetitif.",
		"instagram_url":    "",
		"tiktok_url":       "",
		"facebook_url":     "",
		"hero_title":       "Selamat Datang di<br/>Gudang Pakan<br/>RN Aneka Jaya",
		"hero_description": "Supplier pakan ternak dan ikan berkualitas terpercaya yang menyediakan berbagai macam pakan unggas, ikan, suplemen, dan perlengkapan peternakan dengan harga kompetitif untuk mendukung produktivitas peternakan Anda.",
		"banner_image":     nil,
		"logo_image":       nil,
	}
}

// absoluteURL 文件名改写成前端可直接用的完整地址
func (s *server) absoluteURL(name *string) *string {
	if name == nil || *name == "" {
		return nil
	}
	u := s.cfg.Upload.BaseURL + "/" + *name
	return &u
}

// getSettings 公开读，走固定 TTL 的内存缓存
func (s *server) getSettings(ctx *gin.Context) {
	payload, err := s.settings.Get(func() (interface{}, error) {
		var row model.Settings
		err := s.db.Order("id DESC").First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultSettings(), nil
		}
		if err != nil {
			return nil, err
		}
		row.BannerImage = s.absoluteURL(row.BannerImage)
		row.LogoImage = s.absoluteURL(row.LogoImage)
		return row, nil
	})
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching settings")
		return
	}
	ctx.JSON(http.StatusOK, payload)
}

// updateSettings 单行写：有行就按 id 更新，没有就插入。
// 两个独立图片槽只有真的传了新文件才覆盖列，否则保持现值；
// 旧文件照例在行落库之后再尽力清理
func (s *server) updateSettings(ctx *gin.Context) {
	newBanner, ok := s.storeUpload(ctx, "banner_image")
	if !ok {
		return
	}
	newLogo, ok := s.storeUpload(ctx, "logo_image")
	if !ok {
		return
	}

	var current model.Settings
	err := s.db.Order("id DESC").First(&current).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := model.Settings{
			Address:         ctx.PostForm("address"),
			Phone:           ctx.PostForm("phone"),
			MapsURL:         ctx.PostForm("maps_url"),
			OperatingHours:  ctx.PostForm("operating_hours"),
			AboutUs:         ctx.PostForm("about_us"),
			InstagramURL:    ctx.PostForm("instagram_url"),
			TiktokURL:       ctx.PostForm("tiktok_url"),
			FacebookURL:     ctx.PostForm("facebook_url"),
			HeroTitle:       ctx.PostForm("hero_title"),
			HeroDescription: ctx.PostForm("hero_description"),
			BannerImage:     newBanner,
			LogoImage:       newLogo,
		}
		if err := s.db.Create(&row).Error; err != nil {
			response.Error(ctx, http.StatusInternalServerError, "Error creating settings")
			return
		}
		s.settings.Invalidate()
		response.Message(ctx, "Settings created successfully")

	case err != nil:
		response.Error(ctx, http.StatusInternalServerError, "Error checking settings")

	default:
		fields := map[string]interface{}{
			"address":          ctx.PostForm("address"),
			"phone":            ctx.PostForm("phone"),
			"maps_url":         ctx.PostForm("maps_url"),
			"operating_hours":  ctx.PostForm("operating_hours"),
			"about_us":         ctx.PostForm("about_us"),
			"instagram_url":    ctx.PostForm("instagram_url"),
			"tiktok_url":       ctx.PostForm("tiktok_url"),
			"facebook_url":     ctx.PostForm("facebook_url"),
			"hero_title":       ctx.PostForm("hero_title"),
			"hero_description": ctx.PostForm("hero_description"),
		}
		if newBanner != nil {
			fields["banner_image"] = *newBanner
		}
		if newLogo != nil {
			fields["logo_image"] = *newLogo
		}

		if err := s.db.Model(&model.Settings{}).Where("id = ?", current.ID).Updates(fields).Error; err != nil {
			response.Error(ctx, http.StatusInternalServerError, "Error updating settings")
			return
		}

		if newBanner != nil && current.BannerImage != nil && *current.BannerImage != *newBanner {
			s.removeUpload(*current.BannerImage)
		}
		if newLogo != nil && current.LogoImage != nil && *current.LogoImage != *newLogo {
			s.removeUpload(*current.LogoImage)
		}

		s.settings.Invalidate()
		response.Message(ctx, "Settings updated successfully")
	}
}
