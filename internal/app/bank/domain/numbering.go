package domain

// NumberSequence 帳號配號器：每種帳戶類型各自維護遞增計數。
// 計數只透過兩條路徑前進：開新戶取號 (Next)、還原舊戶時校準 (Observe)。
// 兩個號碼區段起點不同且各自遞增，帳號在全體帳戶間不會重複。
type NumberSequence struct {
	next map[AccountType]int64
}

// NewNumberSequence 建立配號器，計數初始化為各類型的起始號碼
func NewNumberSequence() *NumberSequence {
	return &NumberSequence{
		next: map[AccountType]int64{
			AccountTypeSavings: SavingsNumberStart,
			AccountTypeCredit:  CreditNumberStart,
		},
	}
}

// Next 配發該類型的下一個帳號
func (s *NumberSequence) Next(t AccountType) int64 {
	n := s.next[t]
	s.next[t] = n + 1
	return n
}

// Observe 看見既有帳號時，把計數推進到 max(計數, 帳號+1)，
// 確保之後配發的新號碼不會與載入的帳戶撞號。
func (s *NumberSequence) Observe(t AccountType, number int64) {
	if number >= s.next[t] {
		s.next[t] = number + 1
	}
}
