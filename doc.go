// Package moneta implements the core of a single-user personal-finance
// tracker: bank accounts, an append-only transaction history, and stock
// holdings, kept mutually consistent by a small set of posting rules.
//
// The core functionalities include:
//   - Ledger Store: an explicit in-memory state container owning the three
//     collections (accounts, transactions, holdings), exclusively owned by
//     one session. All mutations are synchronous method calls.
//   - Account Balance Engine: posting a transaction applies its effect to
//     the owning account's balance, or rejects the whole action before any
//     state is touched.
//   - Portfolio Valuation: per-holding market value, cost basis and profit,
//     plus a currency-normalized portfolio total.
//   - Dashboard Aggregation: net worth, all-time income/expense totals and
//     an order-preserving expense-by-category distribution, recomputed as
//     pure functions of the ledger on every call.
//   - Data Persistence: encoding and decoding the ledger to and from a
//     human-readable JSONL file.
//
// This package serves as the foundational logic for the `mon` command-line
// tool; the advisory integration lives in the advisor subpackage and only
// ever consumes a read-only snapshot of the ledger.
package moneta
