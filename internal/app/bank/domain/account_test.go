package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSavings(balance int64) *Account {
	return ReloadSavingsAccount(1200, "Alice", decimal.NewFromInt(balance),
		DefaultInterestRate, DefaultMinBalance)
}

func newTestCredit(balance int64) *Account {
	return ReloadCreditAccount(1900, "Bob", decimal.NewFromInt(balance),
		DefaultCreditLimit, DefaultDebtInterestRate, DefaultCashAdvanceFee)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	account := newTestSavings(1000)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := account.Deposit(amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))
	}
}

func TestSavingsWithdrawScenario(t *testing.T) {
	// 餘額 1000、最低保留 500：提 100 收 5 元手續費 → 895
	account := newTestSavings(1000)

	entries, err := account.Withdraw(decimal.NewFromInt(100), false)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, EntryWithdrawal, entries[0].Label)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(-100)))
	assert.Equal(t, EntryWithdrawalFee, entries[1].Label)
	assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(-5)))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(895)))
	assert.True(t, entries[1].Balance.Equal(account.Balance))

	// 895 - 450 - 5 = 440 < 500，整筆拒絕且餘額不變
	_, err = account.Withdraw(decimal.NewFromInt(450), false)
	assert.ErrorIs(t, err, ErrMinimumBalanceViolation)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(895)))
}

func TestSavingsWithdrawBelowMinimumAmount(t *testing.T) {
	account := newTestSavings(1000)

	_, err := account.Withdraw(decimal.NewFromFloat(49.99), false)
	assert.ErrorIs(t, err, ErrBelowMinimumWithdrawal)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestSavingsWithdrawSkipFee(t *testing.T) {
	account := newTestSavings(1000)

	entries, err := account.Withdraw(decimal.NewFromInt(200), true)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, EntryWithdrawal, entries[0].Label)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(800)))
}

func TestSavingsWithdrawFeeIncludedInFloorCheck(t *testing.T) {
	// 553 - 50 = 503 >= 500，但含手續費 498 < 500，必須拒絕
	account := newTestSavings(553)

	_, err := account.Withdraw(decimal.NewFromInt(50), false)
	assert.ErrorIs(t, err, ErrMinimumBalanceViolation)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(553)))

	// 免手續費時同一筆可以過
	_, err = account.Withdraw(decimal.NewFromInt(50), true)
	assert.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(503)))
}

func TestCreditWithdrawScenario(t *testing.T) {
	// 餘額 0、額度 5000、手續費率 3%：提 500 收 15 → -515
	account := newTestCredit(0)

	entries, err := account.Withdraw(decimal.NewFromInt(500), false)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, EntryWithdrawal, entries[0].Label)
	assert.Equal(t, EntryCashAdvanceFee, entries[1].Label)
	assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(-15)))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(-515)))

	// 4600 + 138 = 4738；-515 - 4738 = -5253 超過額度，拒絕且餘額不變
	_, err = account.Withdraw(decimal.NewFromInt(4600), false)
	assert.ErrorIs(t, err, ErrCreditLimitExceeded)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(-515)))
}

func TestCreditWithdrawBelowMinimumAmount(t *testing.T) {
	account := newTestCredit(0)

	_, err := account.Withdraw(decimal.NewFromFloat(499.99), false)
	assert.ErrorIs(t, err, ErrBelowMinimumCashAdvance)
	assert.True(t, account.Balance.IsZero())
}

func TestCreditAvailableCredit(t *testing.T) {
	account := newTestCredit(-515)
	assert.True(t, account.AvailableCredit().Equal(decimal.NewFromInt(4485)))
}

func TestSavingsMonthEndCompounds(t *testing.T) {
	account := newTestSavings(1000)
	tolerance := decimal.NewFromFloat(0.0001)

	// 第一次月結：1000 * (1 + 0.04/12)
	entries := account.ApplyMonthEnd()
	require.Len(t, entries, 1)
	assert.Equal(t, EntryDeposit, entries[0].Label)
	expected := decimal.NewFromFloat(1000 * (1 + 0.04/12))
	assert.True(t, account.Balance.Sub(expected).Abs().LessThan(tolerance),
		"balance %s, expected %s", account.Balance, expected)

	// 第二次月結會複利：1000 * (1 + 0.04/12)^2
	account.ApplyMonthEnd()
	expected = decimal.NewFromFloat(1000 * (1 + 0.04/12) * (1 + 0.04/12))
	assert.True(t, account.Balance.Sub(expected).Abs().LessThan(tolerance),
		"balance %s, expected %s", account.Balance, expected)
}

func TestSavingsMonthEndSkipsNonPositiveInterest(t *testing.T) {
	account := newTestSavings(0)

	entries := account.ApplyMonthEnd()
	assert.Empty(t, entries)
	assert.True(t, account.Balance.IsZero())
}

func TestCreditMonthEndChargesDebtOnly(t *testing.T) {
	// 正餘額不收循環利息
	account := newTestCredit(100)
	assert.Empty(t, account.ApplyMonthEnd())
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))

	// 負餘額收 |balance| * 0.15/12
	account = newTestCredit(-515)
	entries := account.ApplyMonthEnd()
	require.Len(t, entries, 1)
	assert.Equal(t, EntryDebtInterest, entries[0].Label)

	expected := decimal.NewFromFloat(-515 - 515*0.15/12)
	tolerance := decimal.NewFromFloat(0.0001)
	assert.True(t, account.Balance.Sub(expected).Abs().LessThan(tolerance),
		"balance %s, expected %s", account.Balance, expected)
}

func TestEveryMutationPairsWithEntries(t *testing.T) {
	// 任何成功操作後，最後一筆紀錄的餘額都等於帳戶當前餘額
	seq := NewNumberSequence()
	account, created := NewSavingsAccount(seq, "Alice", decimal.NewFromInt(1000))
	ledger := []Entry{created}
	assert.True(t, created.Balance.Equal(account.Balance))

	entry, err := account.Deposit(decimal.NewFromInt(300))
	require.NoError(t, err)
	ledger = append(ledger, entry)
	assert.True(t, ledger[len(ledger)-1].Balance.Equal(account.Balance))

	entries, err := account.Withdraw(decimal.NewFromInt(100), false)
	require.NoError(t, err)
	ledger = append(ledger, entries...)
	assert.True(t, ledger[len(ledger)-1].Balance.Equal(account.Balance))

	// 開戶 1 筆 + 存款 1 筆 + 提款含手續費 2 筆
	assert.Len(t, ledger, 4)

	// 失敗的操作不會產生任何紀錄
	_, err = account.Withdraw(decimal.NewFromInt(10), false)
	assert.Error(t, err)
	assert.Len(t, ledger, 4)
}

func TestAccountString(t *testing.T) {
	account := newTestSavings(1000)
	assert.Equal(t, "[Acc: 1200] Alice : Rs. 1000.00", account.String())
}

func TestParseAccountType(t *testing.T) {
	parsed, err := ParseAccountType("SAVINGS")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeSavings, parsed)

	parsed, err = ParseAccountType("CREDIT")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeCredit, parsed)

	_, err = ParseAccountType("CHECKING")
	assert.ErrorIs(t, err, ErrUnknownAccountType)
}
