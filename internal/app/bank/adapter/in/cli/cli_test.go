package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-sim/internal/app/bank/usecase"
)

type nopStore struct{}

func (nopStore) SaveAll(accounts []*domain.Account) error { return nil }
func (nopStore) LoadAll() ([]*domain.Account, error)      { return nil, nil }

type nopRecorder struct{}

func (nopRecorder) Record(account *domain.Account, entries ...domain.Entry) error { return nil }

// runScript 以腳本化輸入跑完整個選單迴圈，回傳輸出內容
func runScript(t *testing.T, teller *usecase.Teller, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	handler := New(teller, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	handler.Run()
	return out.String()
}

func TestOpenAccountThenExit(t *testing.T) {
	teller := usecase.NewTeller(nil, nopStore{}, nopRecorder{})

	output := runScript(t, teller,
		"1",     // Open Account
		"1",     // Savings
		"Alice", // 戶名
		"1000",  // 開戶金額
		"7",     // Exit
	)

	assert.Contains(t, output, "Account Created Successfully! Number: 1200")
	assert.Contains(t, output, "Goodbye!")
	require.Len(t, teller.Accounts(), 1)
	assert.True(t, teller.Accounts()[0].Balance.Equal(decimal.NewFromInt(1000)))
}

func TestDepositFlowShowsBalances(t *testing.T) {
	savings := domain.ReloadSavingsAccount(1200, "Alice", decimal.NewFromInt(1000),
		domain.DefaultInterestRate, domain.DefaultMinBalance)
	teller := usecase.NewTeller([]*domain.Account{savings}, nopStore{}, nopRecorder{})

	output := runScript(t, teller,
		"2",    // Deposit
		"1200", // 帳號
		"250",  // 金額
		"7",
	)

	assert.Contains(t, output, "Current Balance: Rs. 1000.00")
	assert.Contains(t, output, "Transaction successful. New Balance: Rs. 1250.00")
}

func TestWithdrawRetriesUntilAttemptsExhausted(t *testing.T) {
	savings := domain.ReloadSavingsAccount(1200, "Alice", decimal.NewFromInt(1000),
		domain.DefaultInterestRate, domain.DefaultMinBalance)
	teller := usecase.NewTeller([]*domain.Account{savings}, nopStore{}, nopRecorder{})

	// 三次都低於提款下限，次數用盡後回到主選單
	output := runScript(t, teller,
		"3",    // Withdraw
		"1200",
		"10",
		"10",
		"10",
		"7",
	)

	assert.Contains(t, output, "(attempt 1/3)")
	assert.Contains(t, output, "(attempt 3/3)")
	assert.Contains(t, output, "Maximum attempts reached. Returning to main menu.")
	assert.True(t, savings.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestTransferFlow(t *testing.T) {
	savings := domain.ReloadSavingsAccount(1200, "Alice", decimal.NewFromInt(1000),
		domain.DefaultInterestRate, domain.DefaultMinBalance)
	credit := domain.ReloadCreditAccount(1900, "Bob", decimal.Zero,
		domain.DefaultCreditLimit, domain.DefaultDebtInterestRate, domain.DefaultCashAdvanceFee)
	teller := usecase.NewTeller([]*domain.Account{savings, credit}, nopStore{}, nopRecorder{})

	output := runScript(t, teller,
		"4",    // Transfer Money
		"1200", // 來源
		"1900", // 目的
		"200",  // 金額
		"7",
	)

	assert.Contains(t, output, "Transfer successful! Rs. 200.00 transferred.")
	assert.True(t, savings.Balance.Equal(decimal.NewFromInt(800)))
	assert.True(t, credit.Balance.Equal(decimal.NewFromInt(200)))
}

func TestTransferSameAccountRejected(t *testing.T) {
	savings := domain.ReloadSavingsAccount(1200, "Alice", decimal.NewFromInt(1000),
		domain.DefaultInterestRate, domain.DefaultMinBalance)
	teller := usecase.NewTeller([]*domain.Account{savings}, nopStore{}, nopRecorder{})

	output := runScript(t, teller,
		"4",
		"1200",
		"1200",
		"100",
		"7",
	)

	assert.Contains(t, output, "Cannot transfer to the same account.")
	assert.True(t, savings.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestInvalidInputRetriesThenGivesUp(t *testing.T) {
	teller := usecase.NewTeller(nil, nopStore{}, nopRecorder{})

	// 帳號三次都解析失敗後放棄並回到主選單
	output := runScript(t, teller,
		"2",
		"abc",
		"def",
		"ghi",
		"7",
	)

	assert.Contains(t, output, "Invalid format!")
	assert.Contains(t, output, "Goodbye!")
}

func TestShowAccountsAndMonthEnd(t *testing.T) {
	savings := domain.ReloadSavingsAccount(1200, "Alice", decimal.NewFromInt(1000),
		domain.DefaultInterestRate, domain.DefaultMinBalance)
	teller := usecase.NewTeller([]*domain.Account{savings}, nopStore{}, nopRecorder{})

	output := runScript(t, teller,
		"5", // Show All Accounts
		"6", // Month-End Process
		"7",
	)

	assert.Contains(t, output, "[Acc: 1200] Alice : Rs. 1000.00")
	assert.Contains(t, output, "All accounts updated and saved.")
	assert.True(t, savings.Balance.GreaterThan(decimal.NewFromInt(1000)))
}
