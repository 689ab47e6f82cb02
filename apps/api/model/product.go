package model

import "time"

// Product 商品表
// category 存分类名字符串，不是外键：旧版数据如此，改外键需要迁移，
// 分类改名不会回写历史商品，维持现状
type Product struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2)" json:"price"`
	Stock       int       `gorm:"type:int" json:"stock"`
	Category    string    `gorm:"type:varchar(100);index" json:"category"`
	Image       *string   `gorm:"type:varchar(255)" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductVariant 商品规格表，归属于单个商品
type ProductVariant struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	ProductID int64     `gorm:"index" json:"product_id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2)" json:"price"`
	Stock     int       `gorm:"type:int" json:"stock"`
	Image     *string   `gorm:"type:varchar(255)" json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// Category 商品分类
type Category struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
