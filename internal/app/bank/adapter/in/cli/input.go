package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
)

// MaxInputAttempts 輸入解析最多重試次數
const MaxInputAttempts = 3

// readLine 顯示提示並讀取一行輸入；輸入流關閉時回傳 io.EOF
func (h *Handler) readLine(prompt string) (string, error) {
	fmt.Fprint(h.out, prompt)
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return h.scanner.Text(), nil
}

// readInt 解析整數，最多重試 MaxInputAttempts 次；
// 次數用盡回傳 domain.ErrInputParseFailure
func (h *Handler) readInt(prompt string) (int64, error) {
	for attempt := 0; attempt < MaxInputAttempts; attempt++ {
		line, err := h.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(h.out, "Invalid format!")
	}
	return 0, domain.ErrInputParseFailure
}

// readAmount 解析金額（十進位字串），最多重試 MaxInputAttempts 次
func (h *Handler) readAmount(prompt string) (decimal.Decimal, error) {
	for attempt := 0; attempt < MaxInputAttempts; attempt++ {
		line, err := h.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil {
			return amount, nil
		}
		fmt.Fprintln(h.out, "Invalid format!")
	}
	return decimal.Zero, domain.ErrInputParseFailure
}

// findAccount 依輸入的帳號尋找帳戶，找不到時輸出訊息
func (h *Handler) findAccount() (*domain.Account, error) {
	number, err := h.readInt("Enter Account Number: ")
	if err != nil {
		return nil, err
	}
	account, err := h.teller.Find(number)
	if err != nil {
		fmt.Fprintln(h.out, "Account not found.")
		return nil, err
	}
	return account, nil
}
