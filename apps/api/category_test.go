package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCRUD(t *testing.T) {
	s, r := newTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/categories",
		map[string]string{"name": "Pakan Unggas", "description": "ayam, bebek, puyuh"}, token)
	id := createdID(t, w)

	w = doJSON(t, r, http.MethodPost, "/api/categories", map[string]string{"description": "tanpa nama"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/categories/%d", id),
		map[string]string{"name": "Pakan Ikan"}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var cat model.Category
	require.NoError(t, s.db.First(&cat, id).Error)
	assert.Equal(t, "Pakan Ikan", cat.Name)

	// 分类改名不回写商品的 category 字符串
	require.NoError(t, s.db.Create(&model.Product{Name: "P", Category: "Pakan Unggas"}).Error)
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/categories/%d", id),
		map[string]string{"name": "Suplemen"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	var p model.Product
	require.NoError(t, s.db.First(&p, "name = ?", "P").Error)
	assert.Equal(t, "Pakan Unggas", p.Category)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategoriesSorted(t *testing.T) {
	s, r := newTestServer(t)
	require.NoError(t, s.db.Create(&model.Category{Name: "Vitamin"}).Error)
	require.NoError(t, s.db.Create(&model.Category{Name: "Aksesoris"}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cats []model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	require.Len(t, cats, 2)
	assert.Equal(t, "Aksesoris", cats[0].Name)
}
