package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 流水帳交易摘要字串
const (
	EntryAccountCreated = "Account Created"
	EntryDeposit        = "Deposit"
	EntryWithdrawal     = "Withdrawal"
	EntryWithdrawalFee  = "Withdrawal Fee"
	EntryCashAdvanceFee = "Cash Advance Fee"
	EntryDebtInterest   = "Debt Interest Charge"
)

// Entry 流水帳單筆紀錄：每次餘額異動都會產生對應的 Entry，
// 由上層透過 Recorder 附加到該帳戶的流水帳（只增不改）。
type Entry struct {
	// RefID: 外部追蹤號 (UUID)
	RefID uuid.UUID
	// Time: 異動時間
	Time time.Time
	// Label: 交易摘要
	Label string
	// Amount: 本筆異動金額（扣款為負）
	Amount decimal.Decimal
	// Balance: 異動後餘額
	Balance decimal.Decimal
}

func newEntry(label string, amount, balance decimal.Decimal) Entry {
	return Entry{
		RefID:   uuid.New(),
		Time:    time.Now(),
		Label:   label,
		Amount:  amount,
		Balance: balance,
	}
}
