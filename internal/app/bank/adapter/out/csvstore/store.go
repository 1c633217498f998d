package csvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-sim/internal/app/bank/usecase"
	"github.com/JoeShih716/go-bank-sim/pkg/csvio"
)

const (
	masterFileName = "banking_master.csv"
	recordsDirName = "records"
	savingDirName  = "saving"
	creditDirName  = "credit"

	dateFormat = "2006-01-02"
	timeFormat = "15:04:05"

	// 信用帳戶沒有次要欄位，主檔以哨兵值佔位
	notApplicable = "N/A"
)

var (
	masterHeaders = []string{"Type", "AccNum", "Name", "CurrentBalance", "Rate_Limit", "MinBal_Fee"}
	recordHeaders = []string{"Date", "Time", "Transaction", "Amount", "New Balance"}
)

// Store 以 CSV 檔實作主檔 (usecase.Store) 與流水帳 (usecase.Recorder) 持久化
//
// 目錄結構:
//
//	<root>/banking_master.csv
//	<root>/records/saving/acc_<帳號>.csv
//	<root>/records/credit/acc_<帳號>.csv
type Store struct {
	root string
}

// New 建立 CSV 持久化實例，並確保資料目錄存在
func New(root string) (*Store, error) {
	dirs := []string{
		root,
		filepath.Join(root, recordsDirName, savingDirName),
		filepath.Join(root, recordsDirName, creditDirName),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, csvio.FileModeDir); err != nil {
			return nil, fmt.Errorf("could not create directory %s: %w", dir, err)
		}
	}
	return &Store{root: root}, nil
}

// SaveAll 以當前帳戶集合整批覆寫主檔
func (s *Store) SaveAll(accounts []*domain.Account) error {
	rows := make([][]string, 0, len(accounts))
	for _, account := range accounts {
		row := accountToRow(account)
		if row != nil {
			rows = append(rows, row)
		}
	}
	return csvio.WriteRecords(s.masterPath(), masterHeaders, rows)
}

// LoadAll 載入主檔中的所有帳戶；主檔不存在時回傳空集合。
// 格式不符的資料列直接略過，不中斷整批載入。
func (s *Store) LoadAll() ([]*domain.Account, error) {
	path := s.masterPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	accounts, err := csvio.ReadRecords(path, rowToAccount)
	if err != nil {
		return nil, fmt.Errorf("could not load master file: %w", err)
	}
	return accounts, nil
}

// Record 將流水帳紀錄附加到該帳戶的 CSV 流水帳，首次寫入時建立表頭
func (s *Store) Record(account *domain.Account, entries ...domain.Entry) error {
	path, err := s.recordPath(account)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		row := []string{
			entry.Time.Format(dateFormat),
			entry.Time.Format(timeFormat),
			entry.Label,
			entry.Amount.StringFixed(domain.CurrencyPrecision),
			entry.Balance.StringFixed(domain.CurrencyPrecision),
		}
		if err := csvio.AppendRecord(path, recordHeaders, row); err != nil {
			return fmt.Errorf("could not append ledger entry for acc %d: %w", account.Number, err)
		}
	}
	return nil
}

func (s *Store) masterPath() string {
	return filepath.Join(s.root, masterFileName)
}

func (s *Store) recordPath(account *domain.Account) (string, error) {
	var dir string
	switch account.Type {
	case domain.AccountTypeSavings:
		dir = savingDirName
	case domain.AccountTypeCredit:
		dir = creditDirName
	default:
		return "", domain.ErrUnknownAccountType
	}
	return filepath.Join(s.root, recordsDirName, dir, fmt.Sprintf("acc_%d.csv", account.Number)), nil
}

// accountToRow 將帳戶攤平成主檔資料列
// (類型標籤, 帳號, 戶名, 餘額 2 位小數, 主要利率/額度, 次要欄位或 N/A)
func accountToRow(account *domain.Account) []string {
	switch account.Type {
	case domain.AccountTypeSavings:
		return []string{
			account.Type.String(),
			fmt.Sprintf("%d", account.Number),
			account.HolderName,
			account.Balance.StringFixed(domain.CurrencyPrecision),
			account.InterestRate.String(),
			account.MinBalance.String(),
		}
	case domain.AccountTypeCredit:
		return []string{
			account.Type.String(),
			fmt.Sprintf("%d", account.Number),
			account.HolderName,
			account.Balance.StringFixed(domain.CurrencyPrecision),
			account.CreditLimit.String(),
			notApplicable,
		}
	}
	return nil
}

// rowToAccount 將主檔資料列還原成帳戶；表頭與格式不符的列回傳 (nil, nil) 略過。
// 主檔只保存信用帳戶的額度欄位，循環利率與預借手續費率以預設值補齊。
func rowToAccount(record []string) (*domain.Account, error) {
	if len(record) < 6 || record[0] == masterHeaders[0] {
		return nil, nil
	}

	accountType, err := domain.ParseAccountType(record[0])
	if err != nil {
		return nil, nil
	}
	number, err := strconv.ParseInt(record[1], 10, 64)
	if err != nil {
		return nil, nil
	}
	holderName := record[2]
	balance, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, nil
	}
	primary, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, nil
	}

	switch accountType {
	case domain.AccountTypeSavings:
		minBalance, err := decimal.NewFromString(record[5])
		if err != nil {
			return nil, nil
		}
		return domain.ReloadSavingsAccount(number, holderName, balance, primary, minBalance), nil
	case domain.AccountTypeCredit:
		return domain.ReloadCreditAccount(number, holderName, balance, primary,
			domain.DefaultDebtInterestRate, domain.DefaultCashAdvanceFee), nil
	}
	return nil, nil
}

var _ usecase.Store = (*Store)(nil)
var _ usecase.Recorder = (*Store)(nil)
