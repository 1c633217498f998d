package domain

import "github.com/shopspring/decimal"

// 每種帳戶類型有自己的起始號碼區段，彼此不重疊
const (
	SavingsNumberStart int64 = 1200
	CreditNumberStart  int64 = 1900
)

// MonthsPerYear 年利率換算月利率的分母
const MonthsPerYear = 12

// CurrencyPrecision 金額顯示精度（小數點後 2 位）
const CurrencyPrecision = 2

// Savings 規則
var (
	// MinWithdrawalAmount 儲蓄帳戶單次提款下限
	MinWithdrawalAmount = decimal.NewFromInt(50)
	// WithdrawalFee 一般提款固定手續費（轉帳路徑免收）
	WithdrawalFee = decimal.NewFromInt(5)
	// DefaultInterestRate 預設年利率
	DefaultInterestRate = decimal.NewFromFloat(0.04)
	// DefaultMinBalance 預設最低保留餘額
	DefaultMinBalance = decimal.NewFromInt(500)
	// MinSavingsDeposit 儲蓄帳戶最低開戶金額
	MinSavingsDeposit = decimal.NewFromInt(500)
)

// Credit 規則
var (
	// MinCashAdvanceAmount 信用帳戶單次預借現金下限
	MinCashAdvanceAmount = decimal.NewFromInt(500)
	// DefaultCreditLimit 預設信用額度
	DefaultCreditLimit = decimal.NewFromInt(5000)
	// DefaultDebtInterestRate 預設循環利息年利率
	DefaultDebtInterestRate = decimal.NewFromFloat(0.15)
	// DefaultCashAdvanceFee 預借現金手續費率（按金額比例計收）
	DefaultCashAdvanceFee = decimal.NewFromFloat(0.03)
	// MinCreditDeposit 信用帳戶最低開戶金額
	MinCreditDeposit = decimal.NewFromInt(5000)
)
