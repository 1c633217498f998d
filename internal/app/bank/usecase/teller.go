package usecase

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
)

// Teller 是櫃檯業務層：持有帳戶集合（依建立順序），
// 協調領域規則、流水帳記錄與主檔持久化。
type Teller struct {
	accounts []*domain.Account
	seq      *domain.NumberSequence
	store    Store
	recorder Recorder
}

// NewTeller 以載入的帳戶集合建立櫃檯業務層
//
// 參數:
//
//	accounts: 由 Store 載入的既有帳戶（可為空）
//	store: 主檔持久化實作
//	recorder: 流水帳持久化實作
func NewTeller(accounts []*domain.Account, store Store, recorder Recorder) *Teller {
	seq := domain.NewNumberSequence()
	for _, a := range accounts {
		seq.Observe(a.Type, a.Number)
	}
	return &Teller{
		accounts: accounts,
		seq:      seq,
		store:    store,
		recorder: recorder,
	}
}

// OpenAccount 開戶：檢查戶名與該類型的最低開戶金額，
// 配號後寫入第一筆 "Account Created" 紀錄並存檔。
func (t *Teller) OpenAccount(accountType domain.AccountType, holderName string, initialDeposit decimal.Decimal) (*domain.Account, error) {
	if strings.TrimSpace(holderName) == "" {
		return nil, domain.ErrEmptyHolderName
	}

	var account *domain.Account
	var created domain.Entry
	switch accountType {
	case domain.AccountTypeSavings:
		if initialDeposit.LessThan(domain.MinSavingsDeposit) {
			return nil, domain.ErrBelowMinimumDeposit
		}
		account, created = domain.NewSavingsAccount(t.seq, holderName, initialDeposit)
	case domain.AccountTypeCredit:
		if initialDeposit.LessThan(domain.MinCreditDeposit) {
			return nil, domain.ErrBelowMinimumDeposit
		}
		account, created = domain.NewCreditAccount(t.seq, holderName, initialDeposit)
	default:
		return nil, domain.ErrUnknownAccountType
	}

	t.accounts = append(t.accounts, account)
	t.record(account, created)
	t.persist()
	return account, nil
}

// Find 依帳號尋找帳戶
func (t *Teller) Find(number int64) (*domain.Account, error) {
	for _, a := range t.accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// Accounts 回傳全部帳戶（建立順序）
func (t *Teller) Accounts() []*domain.Account {
	return t.accounts
}

// Deposit 對指定帳戶存款，成功後記錄流水帳並存檔
func (t *Teller) Deposit(number int64, amount decimal.Decimal) (*domain.Account, error) {
	account, err := t.Find(number)
	if err != nil {
		return nil, err
	}
	entry, err := account.Deposit(amount)
	if err != nil {
		return nil, err
	}
	t.record(account, entry)
	t.persist()
	return account, nil
}

// Withdraw 對指定帳戶提款（一般路徑，不跳過手續費），成功後記錄流水帳並存檔
func (t *Teller) Withdraw(number int64, amount decimal.Decimal) (*domain.Account, error) {
	account, err := t.Find(number)
	if err != nil {
		return nil, err
	}
	entries, err := account.Withdraw(amount, false)
	if err != nil {
		return nil, err
	}
	t.record(account, entries...)
	t.persist()
	return account, nil
}

// MonthEnd 月結批次：依建立順序對每個帳戶套用月結邏輯，
// 全部跑完後才存檔一次（不逐帳戶存檔）。
func (t *Teller) MonthEnd() {
	for _, account := range t.accounts {
		entries := account.ApplyMonthEnd()
		t.record(account, entries...)
	}
	t.persist()
}

// record 寫入流水帳；失敗只記 log 不回滾，記憶體狀態仍為權威資料
func (t *Teller) record(account *domain.Account, entries ...domain.Entry) {
	if len(entries) == 0 {
		return
	}
	if err := t.recorder.Record(account, entries...); err != nil {
		log.Printf("failed to record ledger entries (acc %d): %v", account.Number, err)
	}
}

// persist 每次成功異動後整批覆寫主檔；失敗不中斷流程，
// 記憶體狀態為權威資料，等待下一次成功存檔
func (t *Teller) persist() {
	if err := t.store.SaveAll(t.accounts); err != nil {
		log.Printf("failed to save master data: %v", err)
	}
}
