package moneta

import "testing"

// seedLedger builds a ledger mirroring the demo dataset: two TWD bank
// accounts, one salary income and three expenses posted against them, and
// three stock holdings (two TWD, one USD).
func seedLedger(t *testing.T) *Ledger {
	t.Helper()

	l := NewLedger()

	// Opening balances are chosen so that after the seed postings the
	// accounts land on the demo figures: 150000 and 25000.
	salary := NewAccount("主要薪轉戶", "中國信託", "822-1234567890", M(103000, "TWD"))
	pocket := NewAccount("生活零用金", "國泰世華", "013-0987654321", M(26400, "TWD"))
	for _, a := range []Account{salary, pocket} {
		if err := l.AddAccount(a); err != nil {
			t.Fatalf("AddAccount(%q) failed: %v", a.Name, err)
		}
	}

	postings := []struct {
		accountID   string
		amount      int
		dir         Direction
		cat         Category
		date        string
		description string
	}{
		{salary.ID, 50000, Income, Salary, "2025-10-05", "十月份薪資"},
		{pocket.ID, 120, Expense, Food, "2025-10-10", "便利商店午餐"},
		{pocket.ID, 1280, Expense, Transport, "2025-10-09", "高鐵票"},
		{salary.ID, 3000, Expense, Shopping, "2025-10-08", "Uniqlo 服飾"},
	}
	for _, p := range postings {
		_, err := l.Post(p.accountID, M(p.amount, "TWD"), p.dir, p.cat, MustParseDate(p.date), p.description)
		if err != nil {
			t.Fatalf("Post(%q) failed: %v", p.description, err)
		}
	}

	holdings := []Holding{
		NewHolding("2330", "台積電", Q(1000), M(600, "TWD")),
		NewHolding("0050", "元大台灣50", Q(2000), M(120, "TWD")),
		NewHolding("AAPL", "Apple Inc.", Q(50), M(150, "USD")),
	}
	prices := []int{1080, 185, 225}
	for i, h := range holdings {
		h.CurrentPrice = M(prices[i], h.Currency())
		if err := l.AddHolding(h); err != nil {
			t.Fatalf("AddHolding(%q) failed: %v", h.Symbol, err)
		}
	}

	return l
}

func salaryAccount(t *testing.T, l *Ledger) *Account { return accountByName(t, l, "主要薪轉戶") }
func pocketAccount(t *testing.T, l *Ledger) *Account { return accountByName(t, l, "生活零用金") }

func accountByName(t *testing.T, l *Ledger, name string) *Account {
	t.Helper()
	for _, a := range l.Accounts() {
		if a.Name == name {
			return l.Account(a.ID)
		}
	}
	t.Fatalf("seed account %q not found", name)
	return nil
}
