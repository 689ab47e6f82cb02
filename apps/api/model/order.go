package model

import "time"

// Order 订单表。下单后购物车明细由买家通过 WhatsApp 发给店家，
// 库里只留买家信息和总额，没有行项目，也没有状态流转
type Order struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	OrderID         string    `gorm:"type:varchar(64);index" json:"order_id"`
	BuyerName       string    `gorm:"type:varchar(100)" json:"buyer_name"`
	BuyerAddress    string    `gorm:"type:text" json:"buyer_address"`
	BuyerPhone      string    `gorm:"type:varchar(30)" json:"buyer_phone"`
	PaymentMethodID int64     `json:"payment_method_id"`
	ItemsTotal      float64   `gorm:"type:decimal(12,2)" json:"items_total"`
	CreatedAt       time.Time `json:"created_at"`
}

// Message 联系表单留言
type Message struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	Email     string    `gorm:"type:varchar(100)" json:"email"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Subject   string    `gorm:"type:varchar(255)" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
