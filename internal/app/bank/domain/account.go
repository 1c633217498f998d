package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType 帳戶類型
type AccountType uint8

const (
	// 儲蓄帳戶
	AccountTypeSavings AccountType = 1
	// 信用帳戶
	AccountTypeCredit AccountType = 2
)

// String 回傳主檔使用的類型標籤
func (t AccountType) String() string {
	switch t {
	case AccountTypeSavings:
		return "SAVINGS"
	case AccountTypeCredit:
		return "CREDIT"
	}
	return "UNKNOWN"
}

// ParseAccountType 由主檔標籤還原帳戶類型
func ParseAccountType(tag string) (AccountType, error) {
	switch tag {
	case "SAVINGS":
		return AccountTypeSavings, nil
	case "CREDIT":
		return AccountTypeCredit, nil
	}
	return 0, ErrUnknownAccountType
}

// Account 以 Type 標記區分變體，共用餘額與身分欄位。
// 提款與月結邏輯依 Type 分派，前置檢查全數通過後才異動餘額；
// 每次異動都回傳對應的流水帳 Entry，由呼叫端負責記錄。
type Account struct {
	Type       AccountType
	Number     int64
	HolderName string
	Balance    decimal.Decimal

	// Savings 專屬欄位
	InterestRate decimal.Decimal
	MinBalance   decimal.Decimal

	// Credit 專屬欄位
	CreditLimit      decimal.Decimal
	DebtInterestRate decimal.Decimal
	CashAdvanceFee   decimal.Decimal
}

// NewSavingsAccount 開立新儲蓄帳戶；回傳帳戶與第一筆 "Account Created" 紀錄
func NewSavingsAccount(seq *NumberSequence, holderName string, initialBalance decimal.Decimal) (*Account, Entry) {
	a := &Account{
		Type:         AccountTypeSavings,
		Number:       seq.Next(AccountTypeSavings),
		HolderName:   holderName,
		Balance:      initialBalance,
		InterestRate: DefaultInterestRate,
		MinBalance:   DefaultMinBalance,
	}
	return a, newEntry(EntryAccountCreated, initialBalance, a.Balance)
}

// NewCreditAccount 開立新信用帳戶；回傳帳戶與第一筆 "Account Created" 紀錄
func NewCreditAccount(seq *NumberSequence, holderName string, initialBalance decimal.Decimal) (*Account, Entry) {
	a := &Account{
		Type:             AccountTypeCredit,
		Number:           seq.Next(AccountTypeCredit),
		HolderName:       holderName,
		Balance:          initialBalance,
		CreditLimit:      DefaultCreditLimit,
		DebtInterestRate: DefaultDebtInterestRate,
		CashAdvanceFee:   DefaultCashAdvanceFee,
	}
	return a, newEntry(EntryAccountCreated, initialBalance, a.Balance)
}

// ReloadSavingsAccount 由持久化資料還原儲蓄帳戶（沿用既有帳號、不產生新紀錄）
func ReloadSavingsAccount(number int64, holderName string, balance, interestRate, minBalance decimal.Decimal) *Account {
	return &Account{
		Type:         AccountTypeSavings,
		Number:       number,
		HolderName:   holderName,
		Balance:      balance,
		InterestRate: interestRate,
		MinBalance:   minBalance,
	}
}

// ReloadCreditAccount 由持久化資料還原信用帳戶（沿用既有帳號、不產生新紀錄）
func ReloadCreditAccount(number int64, holderName string, balance, creditLimit, debtInterestRate, cashAdvanceFee decimal.Decimal) *Account {
	return &Account{
		Type:             AccountTypeCredit,
		Number:           number,
		HolderName:       holderName,
		Balance:          balance,
		CreditLimit:      creditLimit,
		DebtInterestRate: debtInterestRate,
		CashAdvanceFee:   cashAdvanceFee,
	}
}

// Deposit 存款
//
// 參數:
//
//	amount: 存款金額，必須為正數
//
// 回傳:
//
//	Entry: 本筆存款的流水帳紀錄
//	error: 金額不合法時回傳 ErrInvalidAmount，餘額不變
func (a *Account) Deposit(amount decimal.Decimal) (Entry, error) {
	if !amount.IsPositive() {
		return Entry{}, ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return newEntry(EntryDeposit, amount, a.Balance), nil
}

// Withdraw 提款；前置檢查依帳戶類型分派，全數通過後才異動餘額。
// skipFee 僅供轉帳流程使用（儲蓄帳戶轉帳不收提款手續費），信用帳戶忽略此參數。
//
// 回傳:
//
//	[]Entry: 本次提款產生的所有流水帳紀錄（提款本體與手續費各一筆）
//	error: 任一前置檢查未過時回傳對應錯誤，餘額與流水帳皆不變
func (a *Account) Withdraw(amount decimal.Decimal, skipFee bool) ([]Entry, error) {
	switch a.Type {
	case AccountTypeSavings:
		return a.withdrawSavings(amount, skipFee)
	case AccountTypeCredit:
		return a.withdrawCredit(amount)
	}
	return nil, ErrUnknownAccountType
}

func (a *Account) withdrawSavings(amount decimal.Decimal, skipFee bool) ([]Entry, error) {
	if amount.LessThan(MinWithdrawalAmount) {
		return nil, ErrBelowMinimumWithdrawal
	}

	fee := WithdrawalFee
	if skipFee {
		fee = decimal.Zero
	}
	// 手續費一併納入低消檢查，確保扣完費用後仍不破底
	if a.Balance.Sub(amount).Sub(fee).LessThan(a.MinBalance) {
		return nil, ErrMinimumBalanceViolation
	}

	entries := make([]Entry, 0, 2)
	a.Balance = a.Balance.Sub(amount)
	entries = append(entries, newEntry(EntryWithdrawal, amount.Neg(), a.Balance))

	if !skipFee {
		a.Balance = a.Balance.Sub(fee)
		entries = append(entries, newEntry(EntryWithdrawalFee, fee.Neg(), a.Balance))
	}
	return entries, nil
}

func (a *Account) withdrawCredit(amount decimal.Decimal) ([]Entry, error) {
	if amount.LessThan(MinCashAdvanceAmount) {
		return nil, ErrBelowMinimumCashAdvance
	}

	fee := amount.Mul(a.CashAdvanceFee)
	total := amount.Add(fee)
	// 手續費一併納入額度檢查
	if a.Balance.Sub(total).LessThan(a.CreditLimit.Neg()) {
		return nil, ErrCreditLimitExceeded
	}

	// 提款本體與手續費分兩筆入帳
	entries := make([]Entry, 0, 2)
	a.Balance = a.Balance.Sub(amount)
	entries = append(entries, newEntry(EntryWithdrawal, amount.Neg(), a.Balance))

	a.Balance = a.Balance.Sub(fee)
	entries = append(entries, newEntry(EntryCashAdvanceFee, fee.Neg(), a.Balance))
	return entries, nil
}

// ApplyMonthEnd 月結：儲蓄帳戶計入月息、信用帳戶對負餘額收取循環利息。
// 回傳本次產生的流水帳紀錄；沒有異動時回傳空。
func (a *Account) ApplyMonthEnd() []Entry {
	switch a.Type {
	case AccountTypeSavings:
		monthlyRate := a.InterestRate.Div(decimal.NewFromInt(MonthsPerYear))
		interest := a.Balance.Mul(monthlyRate)
		// 走一般存款路徑入帳；零或負餘額的利息會被存款前置檢查擋下，直接略過
		entry, err := a.Deposit(interest)
		if err != nil {
			return nil
		}
		return []Entry{entry}
	case AccountTypeCredit:
		if !a.Balance.IsNegative() {
			return nil
		}
		monthlyRate := a.DebtInterestRate.Div(decimal.NewFromInt(MonthsPerYear))
		interest := a.Balance.Abs().Mul(monthlyRate)
		// 不經過 Withdraw：即使低於單次動用下限，循環利息也必須入帳
		a.Balance = a.Balance.Sub(interest)
		return []Entry{newEntry(EntryDebtInterest, interest.Neg(), a.Balance)}
	}
	return nil
}

// AvailableCredit 信用帳戶剩餘可用額度（推導值，不落地）
func (a *Account) AvailableCredit() decimal.Decimal {
	return a.CreditLimit.Add(a.Balance)
}

func (a *Account) String() string {
	return fmt.Sprintf("[Acc: %d] %s : Rs. %s", a.Number, a.HolderName, a.Balance.StringFixed(CurrencyPrecision))
}
