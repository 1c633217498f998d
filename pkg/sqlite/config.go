package sqlite

// Config 定義 SQLite 連線配置
type Config struct {
	// 資料庫檔案路徑；":memory:" 代表純記憶體資料庫
	Path string `yaml:"path"`

	// GORM 設定
	LogLevel string `yaml:"log_level"` // Log 等級: "silent", "error", "warn", "info"
}
