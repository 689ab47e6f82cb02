package model

// 收款方式类型
const (
	PaymentTypeBank = "bank"
	PaymentTypeQris = "qris"
)

// PaymentMethod 收款方式
// bank 类型要求三个账户字段齐全，qris 类型要求二维码图片，
// 校验在处理器边界做，库里不约束
type PaymentMethod struct {
	ID            int64   `gorm:"primaryKey" json:"id"`
	Type          string  `gorm:"type:varchar(10)" json:"type"`
	QrisImage     *string `gorm:"type:varchar(255)" json:"qris_image"`
	BankName      string  `gorm:"type:varchar(100)" json:"bank_name"`
	AccountName   string  `gorm:"type:varchar(100)" json:"account_name"`
	AccountNumber string  `gorm:"type:varchar(50)" json:"account_number"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
	DisplayOrder  int     `gorm:"default:0" json:"display_order"`
}
