package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVariantValidation(t *testing.T) {
	_, r := newTestServer(t)
	token := adminToken(t)

	w := doForm(t, r, http.MethodPost, "/api/variants", map[string]string{
		"name": "1kg",
	}, nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product ID is required", decodeBody(t, w)["message"])

	w = doForm(t, r, http.MethodPost, "/api/variants", map[string]string{
		"product_id": "1",
	}, nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Variant name is required", decodeBody(t, w)["message"])
}

func TestUpdateVariant(t *testing.T) {
	s, r := newTestServer(t)
	token := adminToken(t)

	require.NoError(t, s.db.Create(&model.Product{Name: "Pelet Lele"}).Error)
	w := doForm(t, r, http.MethodPost, "/api/variants", map[string]string{
		"product_id": "1", "name": "5kg", "price": "60000", "stock": "12",
	}, map[string][]byte{"image": []byte("v1")}, token)
	id := createdID(t, w)

	var before model.ProductVariant
	require.NoError(t, s.db.First(&before, id).Error)

	w = doForm(t, r, http.MethodPut, fmt.Sprintf("/api/variants/%d", id), map[string]string{
		"name": "5kg", "price": "65000", "stock": "10",
	}, map[string][]byte{"image": []byte("v2")}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var after model.ProductVariant
	require.NoError(t, s.db.First(&after, id).Error)
	assert.Equal(t, float64(65000), after.Price)
	assert.False(t, s.uploads.Exists(*before.Image))
	assert.True(t, s.uploads.Exists(*after.Image))

	// 不带图的更新保持原图
	w = doForm(t, r, http.MethodPut, fmt.Sprintf("/api/variants/%d", id), map[string]string{
		"name": "5kg", "price": "62000", "stock": "10",
	}, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var again model.ProductVariant
	require.NoError(t, s.db.First(&again, id).Error)
	assert.Equal(t, *after.Image, *again.Image)
}

func TestDeleteVariant(t *testing.T) {
	s, r := newTestServer(t)
	token := adminToken(t)

	w := doForm(t, r, http.MethodPost, "/api/variants", map[string]string{
		"product_id": "7", "name": "10kg", "price": "110000", "stock": "4",
	}, map[string][]byte{"image": []byte("x")}, token)
	id := createdID(t, w)

	var variant model.ProductVariant
	require.NoError(t, s.db.First(&variant, id).Error)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/variants/%d", id), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, s.uploads.Exists(*variant.Image))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/variants/%d", id), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
