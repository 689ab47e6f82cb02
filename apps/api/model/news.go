package model

import "time"

// 资讯状态
const (
	NewsStatusDraft     = "draft"
	NewsStatusPublished = "published"
)

// News 资讯/博客表，详情页用 slug 寻址
type News struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Slug        string    `gorm:"type:varchar(255);index" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  *int64    `json:"category_id"`
	Image       *string   `gorm:"type:varchar(255)" json:"image"`
	Author      string    `gorm:"type:varchar(100)" json:"author"`
	Status      string    `gorm:"type:varchar(20);default:published" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// 表名不走复数规则
func (News) TableName() string { return "news" }

// NewsCategory 资讯分类
type NewsCategory struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
