package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-sim/internal/app/bank/usecase"
)

// Handler 互動式終端機介面 (Driving Adapter)。
// 只負責選單顯示、輸入解析與訊息輸出，業務規則全部委派給 Teller。
type Handler struct {
	teller  *usecase.Teller
	scanner *bufio.Scanner
	out     io.Writer
}

// New 建立終端機介面
//
// 參數:
//
//	teller: 櫃檯業務層
//	in: 輸入來源（通常是 os.Stdin）
//	out: 輸出目標（通常是 os.Stdout）
func New(teller *usecase.Teller, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		teller:  teller,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run 主選單迴圈，直到使用者選擇離開或輸入流關閉
func (h *Handler) Run() {
	for {
		h.printMenu()
		choice, err := h.readLine("Select: ")
		if err != nil {
			return
		}
		if !h.handleChoice(strings.TrimSpace(choice)) {
			return
		}
	}
}

func (h *Handler) printMenu() {
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "=== BANKING SYSTEM SIMULATOR ===")
	fmt.Fprintln(h.out, "1. Open Account")
	fmt.Fprintln(h.out, "2. Deposit")
	fmt.Fprintln(h.out, "3. Withdraw")
	fmt.Fprintln(h.out, "4. Transfer Money")
	fmt.Fprintln(h.out, "5. Show All Accounts")
	fmt.Fprintln(h.out, "6. Month-End Process")
	fmt.Fprintln(h.out, "7. Exit")
}

// handleChoice 分派選單選項；回傳 false 代表離開主迴圈
func (h *Handler) handleChoice(choice string) bool {
	switch choice {
	case "1":
		h.openAccount()
	case "2":
		h.performTransaction(usecase.TransactionDeposit, "deposit")
	case "3":
		h.performTransaction(usecase.TransactionWithdraw, "withdraw")
	case "4":
		h.transfer()
	case "5":
		h.showAccounts()
	case "6":
		h.monthEnd()
	case "7":
		fmt.Fprintln(h.out, "Goodbye!")
		return false
	default:
		fmt.Fprintln(h.out, "Invalid option.")
	}
	return true
}

func (h *Handler) openAccount() {
	fmt.Fprintln(h.out, "\n--- Open New Account ---")
	fmt.Fprintf(h.out, "1. Savings Account (Min Deposit: Rs. %s)\n", domain.MinSavingsDeposit.StringFixed(0))
	fmt.Fprintf(h.out, "2. Credit Account  (Min Deposit: Rs. %s)\n", domain.MinCreditDeposit.StringFixed(0))

	choice, err := h.readInt("Select Account Type (1 or 2): ")
	if err != nil {
		return
	}
	var accountType domain.AccountType
	switch choice {
	case 1:
		accountType = domain.AccountTypeSavings
	case 2:
		accountType = domain.AccountTypeCredit
	default:
		fmt.Fprintln(h.out, "Invalid choice.")
		return
	}

	holderName, err := h.readLine("Enter Holder Name: ")
	if err != nil {
		return
	}
	initialDeposit, err := h.readAmount("Enter Initial Deposit Amount: ")
	if err != nil {
		return
	}

	account, err := h.teller.OpenAccount(accountType, strings.TrimSpace(holderName), initialDeposit)
	if err != nil {
		if errors.Is(err, domain.ErrBelowMinimumDeposit) {
			minimum := domain.MinSavingsDeposit
			if accountType == domain.AccountTypeCredit {
				minimum = domain.MinCreditDeposit
			}
			fmt.Fprintf(h.out, "Error: Minimum initial deposit is Rs. %s\n", minimum.StringFixed(domain.CurrencyPrecision))
			return
		}
		fmt.Fprintln(h.out, h.failureMessage(err, nil))
		return
	}
	fmt.Fprintf(h.out, "Account Created Successfully! Number: %d\n", account.Number)
}

// performTransaction 存提款流程：找到帳戶後交給交易嘗試迴圈，
// 失敗時顯示原因與嘗試次數，並在下一次嘗試前重新顯示當前餘額。
func (h *Handler) performTransaction(kind usecase.TransactionKind, verb string) {
	account, err := h.findAccount()
	if err != nil {
		return
	}
	fmt.Fprintf(h.out, "Current Balance: Rs. %s\n", account.Balance.StringFixed(domain.CurrencyPrecision))

	source := func(attempt int) (decimal.Decimal, error) {
		return h.readAmount(fmt.Sprintf("Enter amount to %s: ", verb))
	}
	_, err = h.teller.PerformTransaction(account.Number, kind, source,
		func(outcome usecase.AttemptOutcome) {
			fmt.Fprintf(h.out, "%s (attempt %d/%d).\n",
				h.failureMessage(outcome.Err, account), outcome.Attempt, usecase.MaxTransactionAttempts)
			if outcome.Attempt < usecase.MaxTransactionAttempts {
				fmt.Fprintf(h.out, "Current Balance: Rs. %s\n", outcome.Balance.StringFixed(domain.CurrencyPrecision))
			} else {
				fmt.Fprintln(h.out, "Maximum attempts reached. Returning to main menu.")
			}
		})
	if err == nil {
		fmt.Fprintf(h.out, "Transaction successful. New Balance: Rs. %s\n", account.Balance.StringFixed(domain.CurrencyPrecision))
	}
}

func (h *Handler) transfer() {
	fmt.Fprintln(h.out, "\n--- Money Transfer ---")

	fmt.Fprintln(h.out, "From Account:")
	from, err := h.findAccount()
	if err != nil {
		return
	}
	fmt.Fprintln(h.out, "\nTo Account:")
	to, err := h.findAccount()
	if err != nil {
		return
	}

	fmt.Fprintf(h.out, "\nFrom: %s\n", from)
	fmt.Fprintf(h.out, "To: %s\n", to)

	amount, err := h.readAmount("\nEnter amount to transfer: ")
	if err != nil {
		return
	}

	fmt.Fprintf(h.out, "\nProcessing transfer of Rs. %s...\n", amount.StringFixed(domain.CurrencyPrecision))
	if _, err := h.teller.Transfer(from.Number, to.Number, amount); err != nil {
		fmt.Fprintf(h.out, "Transfer failed. %s\n", h.failureMessage(err, from))
		return
	}
	fmt.Fprintf(h.out, "Transfer successful! Rs. %s transferred.\n", amount.StringFixed(domain.CurrencyPrecision))
}

func (h *Handler) showAccounts() {
	fmt.Fprintln(h.out, "\n--- Account Registry ---")
	accounts := h.teller.Accounts()
	if len(accounts) == 0 {
		fmt.Fprintln(h.out, "No accounts found.")
		return
	}
	for _, account := range accounts {
		fmt.Fprintln(h.out, account)
	}
}

func (h *Handler) monthEnd() {
	fmt.Fprintln(h.out, "\n--- End of Month Processing ---")
	h.teller.MonthEnd()
	fmt.Fprintln(h.out, "All accounts updated and saved.")
}

// failureMessage 將領域錯誤轉成使用者可讀的訊息；
// account 提供錯誤相關的帳戶參數（可為 nil）
func (h *Handler) failureMessage(err error, account *domain.Account) string {
	switch {
	case errors.Is(err, domain.ErrBelowMinimumWithdrawal):
		return fmt.Sprintf("Transaction Failed! Minimum withdrawal amount is Rs. %s",
			domain.MinWithdrawalAmount.StringFixed(domain.CurrencyPrecision))
	case errors.Is(err, domain.ErrMinimumBalanceViolation):
		msg := "Transaction Failed! You must maintain a minimum balance"
		if account != nil {
			msg = fmt.Sprintf("Transaction Failed! You must maintain a minimum balance of Rs. %s",
				account.MinBalance.StringFixed(domain.CurrencyPrecision))
		}
		return msg
	case errors.Is(err, domain.ErrBelowMinimumCashAdvance):
		return fmt.Sprintf("Transaction Failed! Minimum Cash Advance amount is Rs. %s",
			domain.MinCashAdvanceAmount.StringFixed(domain.CurrencyPrecision))
	case errors.Is(err, domain.ErrCreditLimitExceeded):
		msg := "Limit Exceeded."
		if account != nil {
			msg = fmt.Sprintf("Limit Exceeded. Available Credit: Rs. %s",
				account.AvailableCredit().StringFixed(domain.CurrencyPrecision))
		}
		return msg
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Invalid amount."
	case errors.Is(err, domain.ErrInputParseFailure):
		return "Invalid input"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, domain.ErrSameAccountTransfer):
		return "Cannot transfer to the same account."
	case errors.Is(err, domain.ErrEmptyHolderName):
		return "Holder name cannot be empty."
	}
	return err.Error()
}
