package cmd

import (
	"testing"

	"github.com/chweilin/moneta"
)

func TestMatchAll_NarrowsCombinedFilters(t *testing.T) {
	l := moneta.NewLedger()
	salary := moneta.NewAccount("主要薪轉戶", "中國信託", "822-1234567890", moneta.M(100000, "TWD"))
	pocket := moneta.NewAccount("生活零用金", "國泰世華", "013-0987654321", moneta.M(30000, "TWD"))
	for _, a := range []moneta.Account{salary, pocket} {
		if err := l.AddAccount(a); err != nil {
			t.Fatalf("AddAccount(%q) failed: %v", a.Name, err)
		}
	}
	postings := []struct {
		accountID string
		amount    int
		dir       moneta.Direction
	}{
		{salary.ID, 50000, moneta.Income},
		{pocket.ID, 120, moneta.Expense},
		{pocket.ID, 1280, moneta.Expense},
	}
	for _, p := range postings {
		if _, err := l.Post(p.accountID, moneta.M(p.amount, "TWD"), p.dir, moneta.Other, moneta.Date{}, ""); err != nil {
			t.Fatalf("Post() failed: %v", err)
		}
	}

	count := func(conds ...func(moneta.Transaction) bool) int {
		n := 0
		for range l.Transactions(matchAll(conds)) {
			n++
		}
		return n
	}

	// Combined flags must narrow: the pocket account has no income, so
	// account AND direction together select nothing, not the union.
	if got := count(moneta.ByAccount(pocket.ID), moneta.ByDirection(moneta.Income)); got != 0 {
		t.Errorf("pocket AND income = %d rows, want 0", got)
	}
	if got := count(moneta.ByAccount(pocket.ID), moneta.ByDirection(moneta.Expense)); got != 2 {
		t.Errorf("pocket AND expense = %d rows, want 2", got)
	}
	if got := count(moneta.ByAccount(pocket.ID)); got != 2 {
		t.Errorf("pocket alone = %d rows, want 2", got)
	}
	if got := count(); got != 3 {
		t.Errorf("no conditions = %d rows, want everything (3)", got)
	}
}
