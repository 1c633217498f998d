package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
)

// TransferResult 轉帳成功後的雙邊餘額
type TransferResult struct {
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

// Transfer 兩段式轉帳：先從來源帳戶扣款，再存入目的帳戶。
// 兩段異動不是原子操作，入帳失敗時以補償存款把金額還回來源帳戶，
// 確保系統不會停在「已扣款、未入帳」的中間狀態。
//
// 參數:
//
//	fromNumber, toNumber: 來源與目的帳號，必須不同
//	amount: 轉帳金額，必須為正數
//
// 回傳:
//
//	*TransferResult: 成功時的雙邊餘額
//	error: 任一檢查或扣款失敗時回傳對應錯誤，雙邊餘額皆不變
func (t *Teller) Transfer(fromNumber, toNumber int64, amount decimal.Decimal) (*TransferResult, error) {
	if fromNumber == toNumber {
		return nil, domain.ErrSameAccountTransfer
	}
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	from, err := t.Find(fromNumber)
	if err != nil {
		return nil, err
	}
	to, err := t.Find(toNumber)
	if err != nil {
		return nil, err
	}

	// 儲蓄帳戶的轉帳免收提款手續費，避免轉出立即轉入還被收一次費
	skipFee := from.Type == domain.AccountTypeSavings
	entries, err := from.Withdraw(amount, skipFee)
	if err != nil {
		return nil, err
	}
	t.record(from, entries...)

	entry, err := to.Deposit(amount)
	if err != nil {
		// 補償：把已扣的金額原數存回來源帳戶。
		// 金額在步驟開頭已驗證為正，這筆還原存款不會再失敗。
		restored, _ := from.Deposit(amount)
		t.record(from, restored)
		return nil, err
	}
	t.record(to, entry)
	t.persist()

	return &TransferResult{FromBalance: from.Balance, ToBalance: to.Balance}, nil
}
