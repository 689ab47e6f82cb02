package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Mysql   MysqlConfig   `mapstructure:"mysql"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Upload  UploadConfig  `mapstructure:"upload"`
}

type ServiceConfig struct {
	Name string `mapstructure:"name"`
	Port int    `mapstructure:"port"`
}

type MysqlConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"dbname"`
}

type AuthConfig struct {
	JwtSecret     string `mapstructure:"jwt_secret"`
	AdminUser     string `mapstructure:"admin_user"`
	AdminPassword string `mapstructure:"admin_password"`
}

type UploadConfig struct {
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"base_url"`
	// 单文件上传上限(字节)
	MaxSize int64 `mapstructure:"max_size"`
	// 店铺设置的内存缓存有效期(秒)
	SettingsTTL int `mapstructure:"settings_ttl"`
}

// LoadConfig 读取配置文件，文件不存在时退回默认值
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// 默认值与旧版线上部署保持一致，保证无配置文件也能直接启动
	viper.SetDefault("service.name", "rn-aneka-jaya-api")
	viper.SetDefault("service.port", 5000)
	viper.SetDefault("mysql.host", "localhost")
	viper.SetDefault("mysql.port", 3306)
	viper.SetDefault("mysql.user", "root")
	viper.SetDefault("mysql.password", "")
	viper.SetDefault("mysql.dbname", "toko_bagus_waihatu")
	viper.SetDefault("auth.jwt_secret", "your-secret-key")
	viper.SetDefault("auth.admin_user", "admin")
	viper.SetDefault("auth.admin_password", "admin123")
	viper.SetDefault("upload.dir", "uploads-apotik-ghanim")
	viper.SetDefault("upload.base_url", "https://api-inventory.isavralabel.com/rn-aneka-jaya/uploads")
	viper.SetDefault("upload.max_size", 5*1024*1024)
	viper.SetDefault("upload.settings_ttl", 300)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using default values")
		} else {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
