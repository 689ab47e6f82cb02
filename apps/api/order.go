package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cecepns/rn-aneka-jaya/apps/api/model"
	"github.com/cecepns/rn-aneka-jaya/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type orderRequest struct {
	OrderID         string  `json:"order_id"`
	BuyerName       string  `json:"buyer_name" binding:"required"`
	BuyerAddress    string  `json:"buyer_address" binding:"required"`
	BuyerPhone      string  `json:"buyer_phone" binding:"required"`
	PaymentMethodID int64   `json:"payment_method_id"`
	ItemsTotal      float64 `json:"items_total"`
}

// createOrder 公开下单接口，前端没带单号就服务端生成一个
func (s *server) createOrder(ctx *gin.Context) {
	var req orderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Buyer name, address, and phone are required")
		return
	}
	if req.OrderID == "" {
		req.OrderID = newOrderID()
	}

	order := model.Order{
		OrderID:         req.OrderID,
		BuyerName:       req.BuyerName,
		BuyerAddress:    req.BuyerAddress,
		BuyerPhone:      req.BuyerPhone,
		PaymentMethodID: req.PaymentMethodID,
		ItemsTotal:      req.ItemsTotal,
	}
	if err := s.db.Create(&order).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error creating order")
		return
	}
	response.Created(ctx, order.ID, "Order created successfully")
}

func newOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(),
		strings.ToUpper(uuid.NewString()[:8]))
}

func (s *server) listOrders(ctx *gin.Context) {
	page, limit, offset := pagination(ctx)

	var total int64
	if err := s.db.Model(&model.Order{}).Count(&total).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching orders")
		return
	}

	orders := []model.Order{}
	if err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error fetching orders")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders":      orders,
		"total":       total,
		"currentPage": page,
		"totalPages":  totalPages(total, limit),
	})
}

var orderExportHeader = []string{"Order ID", "Buyer Name", "Address", "Phone", "Payment Method", "Items Total", "Created At"}

// exportOrders 全量导出 xlsx，后台对账用
func (s *server) exportOrders(ctx *gin.Context) {
	var orders []model.Order
	if err := s.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Error exporting orders")
		return
	}

	// 付款方式名称单独查一次，按 id 映射
	methods := map[int64]string{}
	var rows []model.PaymentMethod
	if err := s.db.Find(&rows).Error; err == nil {
		for _, m := range rows {
			name := m.BankName
			if m.Type == model.PaymentTypeQris {
				name = "QRIS"
			}
			methods[m.ID] = name
		}
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Println("close excel file failed:", err)
		}
	}()
	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range orderExportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, o := range orders {
		values := []interface{}{
			o.OrderID, o.BuyerName, o.BuyerAddress, o.BuyerPhone,
			methods[o.PaymentMethodID], o.ItemsTotal,
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
	if err := f.Write(ctx.Writer); err != nil {
		log.Println("write excel response failed:", err)
	}
}
