package model

// Settings 店铺设置。约定取 id 最大的一行作为当前配置，
// 没有行时接口返回硬编码默认值
type Settings struct {
	ID              int64   `gorm:"primaryKey" json:"id"`
	Address         string  `gorm:"type:text" json:"address"`
	Phone           string  `gorm:"type:varchar(30)" json:"phone"`
	MapsURL         string  `gorm:"type:varchar(500);column:maps_url" json:"maps_url"`
	OperatingHours  string  `gorm:"type:varchar(255)" json:"operating_hours"`
	AboutUs         string  `gorm:"type:text" json:"about_us"`
	InstagramURL    string  `gorm:"type:varchar(500);column:instagram_url" json:"instagram_url"`
	TiktokURL       string  `gorm:"type:varchar(500);column:tiktok_url" json:"tiktok_url"`
	FacebookURL     string  `gorm:"type:varchar(500);column:facebook_url" json:"facebook_url"`
	HeroTitle       string  `gorm:"type:text" json:"hero_title"`
	HeroDescription string  `gorm:"type:text" json:"hero_description"`
	BannerImage     *string `gorm:"type:varchar(255)" json:"banner_image"`
	LogoImage       *string `gorm:"type:varchar(255)" json:"logo_image"`
}

func (Settings) TableName() string { return "settings" }
