package main

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/adapter/in/cli"
	"github.com/JoeShih716/go-bank-sim/internal/app/bank/adapter/out/csvstore"
	"github.com/JoeShih716/go-bank-sim/internal/app/bank/adapter/out/sqlstore"
	"github.com/JoeShih716/go-bank-sim/internal/app/bank/usecase"
	"github.com/JoeShih716/go-bank-sim/pkg/csvio"
	"github.com/JoeShih716/go-bank-sim/pkg/sqlite"
)

// 持久化後端選項
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

type StorageConfig struct {
	Backend string        `yaml:"backend"`
	DataDir string        `yaml:"data_dir"`
	SQLite  sqlite.Config `yaml:"sqlite"`
}

type Config struct {
	Storage StorageConfig `yaml:"storage"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 依設定選擇持久化後端（主檔與流水帳由同一個 adapter 提供）
	var store usecase.Store
	var recorder usecase.Recorder
	switch cfg.Storage.Backend {
	case BackendCSV:
		csvStore, err := csvstore.New(cfg.Storage.DataDir)
		if err != nil {
			log.Fatalf("Failed to init CSV store: %v", err)
		}
		store, recorder = csvStore, csvStore
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLite.Path), csvio.FileModeDir); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		client, err := sqlite.NewClient(cfg.Storage.SQLite)
		if err != nil {
			log.Fatalf("Failed to open SQLite: %v", err)
		}
		defer client.Close()

		sqlStore, err := sqlstore.New(client)
		if err != nil {
			log.Fatalf("Failed to init SQLite store: %v", err)
		}
		store, recorder = sqlStore, sqlStore
	default:
		log.Fatalf("Invalid storage backend: %s", cfg.Storage.Backend)
	}

	// 3. 載入既有帳戶；讀檔失敗不中斷，以已載入的部分繼續
	//    （記憶體狀態為權威資料，下一次成功存檔會覆寫主檔）
	accounts, err := store.LoadAll()
	if err != nil {
		log.Printf("Failed to load accounts: %v", err)
	}
	log.Printf("System Loaded: %d accounts found.", len(accounts))

	// 4. 初始化業務層與終端機介面
	teller := usecase.NewTeller(accounts, store, recorder)
	handler := cli.New(teller, os.Stdin, os.Stdout)

	// 5. 進入主選單迴圈，直到使用者選擇離開
	handler.Run()
}

func loadConfig() Config {
	var cfg Config
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		// 沒有設定檔時使用預設值，方便直接執行
		log.Printf("Config file not found, using defaults: %v", err)
	} else if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendCSV
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "database"
	}
	if cfg.Storage.SQLite.Path == "" {
		cfg.Storage.SQLite.Path = "database/bank.db"
	}
	if cfg.Storage.SQLite.LogLevel == "" {
		cfg.Storage.SQLite.LogLevel = "error"
	}
	return cfg
}
