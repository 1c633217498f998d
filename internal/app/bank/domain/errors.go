package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrBelowMinimumWithdrawal 低於儲蓄帳戶單次提款下限
	ErrBelowMinimumWithdrawal = errors.New("amount below minimum withdrawal")

	// ErrBelowMinimumCashAdvance 低於信用帳戶預借現金下限
	ErrBelowMinimumCashAdvance = errors.New("amount below minimum cash advance")

	// ErrMinimumBalanceViolation 提款（含手續費）後會低於最低保留餘額
	ErrMinimumBalanceViolation = errors.New("minimum balance violation")

	// ErrCreditLimitExceeded 動用（含手續費）後會超過信用額度
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccountTransfer 轉出與轉入為同一帳戶
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")

	// ErrInputParseFailure 外部輸入無法解析為預期型別
	ErrInputParseFailure = errors.New("input parse failure")

	// ErrEmptyHolderName 開戶戶名不可為空
	ErrEmptyHolderName = errors.New("holder name cannot be empty")

	// ErrBelowMinimumDeposit 低於該帳戶類型的最低開戶金額
	ErrBelowMinimumDeposit = errors.New("initial deposit below minimum")

	// ErrUnknownAccountType 未知的帳戶類型
	ErrUnknownAccountType = errors.New("unknown account type")
)
