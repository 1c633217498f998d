package usecase

import (
	"github.com/JoeShih716/go-bank-sim/internal/app/bank/domain"
)

// Store 主檔持久化介面：整批覆寫 / 整批載入。
// 單一行程獨占存取，不做增量寫入。
type Store interface {
	// SaveAll 以當前帳戶集合整批覆寫主檔
	SaveAll(accounts []*domain.Account) error
	// LoadAll 載入所有帳戶；主檔不存在時回傳空集合
	LoadAll() ([]*domain.Account, error)
}

// Recorder 流水帳持久化介面：逐筆附加，不可改寫既有紀錄
type Recorder interface {
	// Record 將一筆以上的流水帳紀錄附加到該帳戶的流水帳
	Record(account *domain.Account, entries ...domain.Entry) error
}
