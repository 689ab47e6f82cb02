package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Promo Akhir Tahun!":        "promo-akhir-tahun",
		"Tips  Merawat   Ayam":      "tips-merawat-ayam",
		"Harga Pakan (Update 2025)": "harga-pakan-update-2025",
		"sudah-slug":                "sudah-slug",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), in)
	}
}

func TestCreateNewsGeneratesSlug(t *testing.T) {
	_, r := newTestServer(t)
	token := adminToken(t)

	w := doForm(t, r, http.MethodPost, "/api/news", map[string]string{
		"title":       "Promo Akhir Tahun!",
		"description": "Diskon besar untuk semua pakan",
		"author":      "Admin",
	}, nil, token)
	createdID(t, w)

	w = doJSON(t, r, http.MethodGet, "/api/news/promo-akhir-tahun", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Promo Akhir Tahun!", body["title"])
	assert.Equal(t, model.NewsStatusPublished, body["status"])
	assert.Nil(t, body["category_name"])
}

func TestCreateNewsRequiresTitle(t *testing.T) {
	_, r := newTestServer(t)
	w := doForm(t, r, http.MethodPost, "/api/news", map[string]string{
		"description": "tanpa judul",
	}, nil, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "News title is required", decodeBody(t, w)["message"])
}

func TestGetNewsBySlugNotFound(t *testing.T) {
	_, r := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/api/news/tidak-ada", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "News not found", decodeBody(t, w)["message"])
}

func TestListNewsFiltersByStatus(t *testing.T) {
	s, r := newTestServer(t)
	require.NoError(t, s.db.Create(&model.News{Title: "Terbit", Slug: "terbit", Status: model.NewsStatusPublished}).Error)
	require.NoError(t, s.db.Create(&model.News{Title: "Draf", Slug: "draf", Status: model.NewsStatusDraft}).Error)

	// 默认只给已发布的
	w := doJSON(t, r, http.MethodGet, "/api/news", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Len(t, body["news"], 1)
	assert.Equal(t, float64(1), body["total"])

	w = doJSON(t, r, http.MethodGet, "/api/news?status=draft", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["news"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Draf", items[0].(map[string]interface{})["title"])
}

func TestNewsCategoryJoin(t *testing.T) {
	_, r := newTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/news-categories",
		map[string]string{"name": "Tips Peternakan"}, token)
	catID := createdID(t, w)

	w = doForm(t, r, http.MethodPost, "/api/news", map[string]string{
		"title":       "Cara Menyimpan Pakan",
		"category_id": fmt.Sprintf("%d", catID),
	}, nil, token)
	createdID(t, w)

	w = doJSON(t, r, http.MethodGet, "/api/news/cara-menyimpan-pakan", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tips Peternakan", decodeBody(t, w)["category_name"])
}

func TestUpdateAndDeleteNews(t *testing.T) {
	s, r := newTestServer(t)
	token := adminToken(t)

	w := doForm(t, r, http.MethodPost, "/api/news", map[string]string{
		"title": "Judul Lama",
	}, map[string][]byte{"image": []byte("n1")}, token)
	id := createdID(t, w)

	var before model.News
	require.NoError(t, s.db.First(&before, id).Error)

	w = doForm(t, r, http.MethodPut, fmt.Sprintf("/api/news/%d", id), map[string]string{
		"title":  "Judul Baru",
		"status": model.NewsStatusDraft,
	}, map[string][]byte{"image": []byte("n2")}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var after model.News
	require.NoError(t, s.db.First(&after, id).Error)
	assert.Equal(t, "judul-baru", after.Slug)
	assert.Equal(t, model.NewsStatusDraft, after.Status)
	assert.False(t, s.uploads.Exists(*before.Image))
	assert.True(t, s.uploads.Exists(*after.Image))

	w = doForm(t, r, http.MethodPut, "/api/news/99999", map[string]string{"title": "X"}, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/news/%d", id), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, s.uploads.Exists(*after.Image))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/news/%d", id), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewsCategoryCRUD(t *testing.T) {
	_, r := newTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/news-categories",
		map[string]string{"name": "Promo"}, token)
	id := createdID(t, w)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/news-categories/%d", id),
		map[string]string{"name": "Promosi", "description": "promo toko"}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/news-categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/news-categories/%d", id), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/news-categories/%d", id),
		map[string]string{"name": "Promosi"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
