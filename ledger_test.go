package moneta

import (
	"errors"
	"testing"
)

func TestLedger_AccountCRUD(t *testing.T) {
	l := NewLedger()

	a := NewAccount("Checking", "First Bank", "007-123", M(1000, "TWD"))
	if err := l.AddAccount(a); err != nil {
		t.Fatalf("AddAccount() failed: %v", err)
	}
	if err := l.AddAccount(a); err == nil {
		t.Error("AddAccount() accepted a duplicate id")
	}

	a.Name = "Main Checking"
	if err := l.UpdateAccount(a); err != nil {
		t.Fatalf("UpdateAccount() failed: %v", err)
	}
	if got := l.Account(a.ID).Name; got != "Main Checking" {
		t.Errorf("Account name = %q, want %q", got, "Main Checking")
	}

	ghost := a
	ghost.ID = "acc_ghost"
	if err := l.UpdateAccount(ghost); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("UpdateAccount(ghost) error = %v, want ErrAccountNotFound", err)
	}

	if err := l.DeleteAccount(a.ID); err != nil {
		t.Fatalf("DeleteAccount() failed: %v", err)
	}
	if l.Account(a.ID) != nil {
		t.Error("Account still resolvable after delete")
	}
	if err := l.DeleteAccount(a.ID); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("second DeleteAccount() error = %v, want ErrAccountNotFound", err)
	}
}

func TestLedger_InvalidRecordsRejected(t *testing.T) {
	l := NewLedger()

	if err := l.AddAccount(Account{ID: "x", Name: "No Currency"}); err == nil {
		t.Error("AddAccount() accepted an account without a currency")
	}
	if err := l.AddAccount(Account{ID: "x", Balance: M(1, "TWD")}); err == nil {
		t.Error("AddAccount() accepted an account without a name")
	}
	if err := l.AddHolding(Holding{ID: "h", Symbol: "2330", Shares: Q(-1), AverageCost: M(600, "TWD")}); err == nil {
		t.Error("AddHolding() accepted a negative share count")
	}
}

func TestLedger_DeleteAccountKeepsOrphanTransactions(t *testing.T) {
	l := seedLedger(t)
	pocket := pocketAccount(t, l)
	pocketID := pocket.ID
	nTx := l.NumTransactions()

	if err := l.DeleteAccount(pocketID); err != nil {
		t.Fatalf("DeleteAccount() failed: %v", err)
	}

	// Deletion does not cascade: the full history survives...
	if got := l.NumTransactions(); got != nTx {
		t.Fatalf("transaction count after delete = %d, want %d", got, nTx)
	}
	// ...and orphans resolve to the sentinel label instead of failing.
	orphans := 0
	for _, tx := range l.Transactions(ByAccount(pocketID)) {
		if got := l.AccountName(tx.AccountID); got != OrphanAccountLabel {
			t.Errorf("AccountName(%q) = %q, want %q", tx.AccountID, got, OrphanAccountLabel)
		}
		orphans++
	}
	if orphans != 2 {
		t.Errorf("orphaned transactions = %d, want 2", orphans)
	}
}

func TestLedger_TransactionFilters(t *testing.T) {
	l := seedLedger(t)

	count := func(filters ...func(Transaction) bool) int {
		n := 0
		for range l.Transactions(filters...) {
			n++
		}
		return n
	}

	if got := count(); got != 4 {
		t.Errorf("unfiltered transactions = %d, want 4", got)
	}
	if got := count(ByDirection(Expense)); got != 3 {
		t.Errorf("expenses = %d, want 3", got)
	}
	if got := count(ByDirection(Income)); got != 1 {
		t.Errorf("incomes = %d, want 1", got)
	}
	if got := count(ByCategory(Food)); got != 1 {
		t.Errorf("food transactions = %d, want 1", got)
	}
	if got := count(ByCategory(Food), ByCategory(Transport)); got != 2 {
		t.Errorf("food or transport = %d, want 2", got)
	}
}

func TestLedger_HoldingCRUD(t *testing.T) {
	l := NewLedger()

	h := NewHolding("2330", "台積電", Q(1000), M(600, "TWD"))
	if !h.CurrentPrice.Equal(h.AverageCost) {
		t.Errorf("new holding price = %v, want initialized to cost %v", h.CurrentPrice, h.AverageCost)
	}
	if err := l.AddHolding(h); err != nil {
		t.Fatalf("AddHolding() failed: %v", err)
	}

	if got := l.HoldingBySymbol("2330"); got == nil || got.ID != h.ID {
		t.Error("HoldingBySymbol(2330) did not resolve the holding")
	}

	h.CurrentPrice = M(1080, "TWD")
	if err := l.UpdateHolding(h); err != nil {
		t.Fatalf("UpdateHolding() failed: %v", err)
	}
	if got := l.Holding(h.ID).CurrentPrice; !got.Equal(M(1080, "TWD")) {
		t.Errorf("price after update = %v, want 1080 TWD", got)
	}

	if err := l.DeleteHolding(h.ID); err != nil {
		t.Fatalf("DeleteHolding() failed: %v", err)
	}
	if err := l.DeleteHolding(h.ID); !errors.Is(err, ErrHoldingNotFound) {
		t.Errorf("second DeleteHolding() error = %v, want ErrHoldingNotFound", err)
	}
}
