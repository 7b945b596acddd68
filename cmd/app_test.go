package cmd

import (
	"path/filepath"
	"testing"

	"github.com/chweilin/moneta"
)

func TestLoadLedger_MissingFileIsEmptyLedger(t *testing.T) {
	*ledgerFile = filepath.Join(t.TempDir(), "ledger.jsonl")

	l, err := LoadLedger()
	if err != nil {
		t.Fatalf("LoadLedger() failed: %v", err)
	}
	if l.NumAccounts() != 0 || l.NumTransactions() != 0 || l.NumHoldings() != 0 {
		t.Error("missing ledger file must load as an empty ledger")
	}
}

func TestSaveLoadLedger_Roundtrip(t *testing.T) {
	*ledgerFile = filepath.Join(t.TempDir(), "ledger.jsonl")

	l := moneta.NewLedger()
	account := moneta.NewAccount("主要薪轉戶", "中國信託", "822-1234567890", moneta.M(150000, "TWD"))
	if err := l.AddAccount(account); err != nil {
		t.Fatalf("AddAccount() failed: %v", err)
	}
	if _, err := l.Post(account.ID, moneta.M(120, "TWD"), moneta.Expense, moneta.Food, moneta.Date{}, "午餐"); err != nil {
		t.Fatalf("Post() failed: %v", err)
	}

	if err := SaveLedger(l); err != nil {
		t.Fatalf("SaveLedger() failed: %v", err)
	}
	got, err := LoadLedger()
	if err != nil {
		t.Fatalf("LoadLedger() failed: %v", err)
	}

	if got.NumAccounts() != 1 || got.NumTransactions() != 1 {
		t.Fatalf("roundtrip lost records: %d accounts, %d transactions", got.NumAccounts(), got.NumTransactions())
	}
	if balance := got.Account(account.ID).Balance; !balance.Equal(moneta.M(149880, "TWD")) {
		t.Errorf("balance after roundtrip = %v, want 149880 TWD", balance)
	}
}

func TestLoadProfile_MissingFileIsLoggedOut(t *testing.T) {
	*profileFile = filepath.Join(t.TempDir(), "profile.json")

	p, err := LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if p.IsLoggedIn {
		t.Error("missing profile file must load as a logged-out profile")
	}
}

func TestSaveLoadProfile_Roundtrip(t *testing.T) {
	*profileFile = filepath.Join(t.TempDir(), "profile.json")

	want := moneta.Profile{ID: "user_1", Name: "王小明", Email: "ming@example.com", IsLoggedIn: true}
	if err := SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}
	got, err := LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if got != want {
		t.Errorf("profile roundtrip = %+v, want %+v", got, want)
	}
}
