package config

type Config struct {
	Log struct {
		Context bool   `mapstructure:"context"`
		Level   string `mapstructure:"level"`
	} `mapstructure:"log"`

	Collector struct {
		SourceDir  string `mapstructure:"source_dir"`
		BaseURL    string `mapstructure:"base_url"`
		BodyImages bool   `mapstructure:"body_images"`
	} `mapstructure:"collector"`

	Downloader struct {
		Timeout   uint32 `mapstructure:"timeout"`
		UserAgent string `mapstructure:"user_agent"`
	} `mapstructure:"downloader"`

	Storage struct {
		Location string `mapstructure:"location"`
	} `mapstructure:"storage"`

	Database struct {
		URL string `mapstructure:"url"` // 为空时不记录下载结果
	} `mapstructure:"database"`
}

const (
	DefaultSourceDir = "public/help-jsons"
	DefaultLocation  = "public/help-images"
	DefaultBaseURL   = "https://formacion-inversion.bancosantander.es/eci/"
	DefaultTimeout   = 10
	DefaultUserAgent = "helpimages/0.1"
)

// Defaults 未在配置文件或环境变量中出现的key使用以下取值
// 注意每个key都必须在此注册，否则AutomaticEnv不会生效
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log.context":           false,
		"log.level":             "info",
		"collector.source_dir":  DefaultSourceDir,
		"collector.base_url":    DefaultBaseURL,
		"collector.body_images": false,
		"downloader.timeout":    DefaultTimeout,
		"downloader.user_agent": DefaultUserAgent,
		"storage.location":      DefaultLocation,
		"database.url":          "",
	}
}
