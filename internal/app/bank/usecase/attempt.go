package usecase

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
)

// TransactionKind 交易種類（存款 / 提款）
type TransactionKind uint8

const (
	TransactionDeposit  TransactionKind = 1
	TransactionWithdraw TransactionKind = 2
)

// MaxTransactionAttempts 單筆交易最多嘗試次數
const MaxTransactionAttempts = 3

var errUnknownTransactionKind = errors.New("unknown transaction kind")

// AmountSource 每次嘗試取得金額的來源。
// 來源本身可能解析失敗（回傳 domain.ErrInputParseFailure），同樣計入一次嘗試。
type AmountSource func(attempt int) (decimal.Decimal, error)

// AttemptOutcome 單次失敗嘗試的結果，供呈現層顯示原因、次數與當前餘額
type AttemptOutcome struct {
	Attempt int
	Err     error
	Balance decimal.Decimal
}

// PerformTransaction 以最多 MaxTransactionAttempts 次嘗試完成一筆存提款。
// 每次嘗試：向來源取得金額，套用對應的帳戶操作；成功即記錄流水帳、
// 存檔並結束。失敗透過 onFail 回報（可為 nil），次數用盡時回傳最後一次錯誤。
func (t *Teller) PerformTransaction(number int64, kind TransactionKind, source AmountSource, onFail func(AttemptOutcome)) ([]AttemptOutcome, error) {
	account, err := t.Find(number)
	if err != nil {
		return nil, err
	}

	outcomes := make([]AttemptOutcome, 0, MaxTransactionAttempts)
	var lastErr error
	for attempt := 1; attempt <= MaxTransactionAttempts; attempt++ {
		amount, err := source(attempt)
		if err == nil {
			err = t.applyTransaction(account, kind, amount)
		}
		if err == nil {
			t.persist()
			return outcomes, nil
		}

		lastErr = err
		outcome := AttemptOutcome{Attempt: attempt, Err: err, Balance: account.Balance}
		outcomes = append(outcomes, outcome)
		if onFail != nil {
			onFail(outcome)
		}
	}
	return outcomes, lastErr
}

func (t *Teller) applyTransaction(account *domain.Account, kind TransactionKind, amount decimal.Decimal) error {
	switch kind {
	case TransactionDeposit:
		entry, err := account.Deposit(amount)
		if err != nil {
			return err
		}
		t.record(account, entry)
		return nil
	case TransactionWithdraw:
		entries, err := account.Withdraw(amount, false)
		if err != nil {
			return err
		}
		t.record(account, entries...)
		return nil
	}
	return errUnknownTransactionKind
}
