package sqlstore

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-sim/internal/app/bank/usecase"
	"github.com/JoeShih716/go-bank-sim/pkg/sqlite"
)

// sqlAccount 對應資料庫的 accounts 表。
// 與 CSV 主檔不同，這裡完整保存各變體欄位，
// 信用帳戶的循環利率與預借手續費率重啟後不會失真。
type sqlAccount struct {
	Number     int64 `gorm:"primaryKey"`
	Type       uint8
	HolderName string
	Balance    decimal.Decimal `gorm:"type:numeric"`

	InterestRate decimal.Decimal `gorm:"type:numeric"`
	MinBalance   decimal.Decimal `gorm:"type:numeric"`

	CreditLimit      decimal.Decimal `gorm:"type:numeric"`
	DebtInterestRate decimal.Decimal `gorm:"type:numeric"`
	CashAdvanceFee   decimal.Decimal `gorm:"type:numeric"`

	// Position 保留帳戶的建立順序（月結批次依此順序處理）
	Position  int
	UpdatedAt int64 `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlEntry 對應資料庫的 ledger_entries 表（只增不改）
type sqlEntry struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	RefID         []byte `gorm:"column:ref_id;type:blob;uniqueIndex"` // 對應 domain.Entry.RefID
	AccountNumber int64  `gorm:"index"`
	Label         string
	Amount        decimal.Decimal `gorm:"type:numeric"`
	Balance       decimal.Decimal `gorm:"type:numeric"`
	RecordedAt    int64
	CreatedAt     int64 `gorm:"autoCreateTime:milli"` // 自動寫入時間
}

func (*sqlEntry) TableName() string {
	return "ledger_entries"
}

// Store 以 SQLite (GORM) 實作主檔與流水帳持久化，
// 與 CSV 後端共用同一組 usecase 介面，可由設定檔切換。
type Store struct {
	client *sqlite.Client
}

// New 建立 SQLite 持久化實例並建立資料表
func New(client *sqlite.Client) (*Store, error) {
	if err := client.DB().AutoMigrate(&sqlAccount{}, &sqlEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{client: client}, nil
}

// SaveAll 以當前帳戶集合整批覆寫 accounts 表（與 CSV 主檔行為一致）
func (s *Store) SaveAll(accounts []*domain.Account) error {
	return s.client.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&sqlAccount{}).Error; err != nil {
			return err
		}
		for i, account := range accounts {
			row := &sqlAccount{
				Number:           account.Number,
				Type:             uint8(account.Type),
				HolderName:       account.HolderName,
				Balance:          account.Balance,
				InterestRate:     account.InterestRate,
				MinBalance:       account.MinBalance,
				CreditLimit:      account.CreditLimit,
				DebtInterestRate: account.DebtInterestRate,
				CashAdvanceFee:   account.CashAdvanceFee,
				Position:         i,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadAll 依建立順序載入所有帳戶
func (s *Store) LoadAll() ([]*domain.Account, error) {
	var rows []sqlAccount
	if err := s.client.DB().Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		switch domain.AccountType(row.Type) {
		case domain.AccountTypeSavings:
			accounts = append(accounts, domain.ReloadSavingsAccount(
				row.Number, row.HolderName, row.Balance, row.InterestRate, row.MinBalance))
		case domain.AccountTypeCredit:
			accounts = append(accounts, domain.ReloadCreditAccount(
				row.Number, row.HolderName, row.Balance, row.CreditLimit,
				row.DebtInterestRate, row.CashAdvanceFee))
		}
		// 未知類型的資料列略過，與 CSV 後端行為一致
	}
	return accounts, nil
}

// Record 將流水帳紀錄附加到 ledger_entries 表
func (s *Store) Record(account *domain.Account, entries ...domain.Entry) error {
	for _, entry := range entries {
		refID := entry.RefID
		row := &sqlEntry{
			RefID:         refID[:],
			AccountNumber: account.Number,
			Label:         entry.Label,
			Amount:        entry.Amount,
			Balance:       entry.Balance,
			RecordedAt:    entry.Time.UnixMilli(),
		}
		if err := s.client.DB().Create(row).Error; err != nil {
			return fmt.Errorf("failed to record ledger entry for acc %d: %w", account.Number, err)
		}
	}
	return nil
}

var _ usecase.Store = (*Store)(nil)
var _ usecase.Recorder = (*Store)(nil)
