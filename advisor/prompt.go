package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/chweilin/moneta"
)

// FinancialAdvice asks the model for a short narrative review of the
// snapshot: spending habits, portfolio risk, and three concrete actions.
// The returned text is an opaque display blob.
func (a *Advisor) FinancialAdvice(ctx context.Context, snap *moneta.Snapshot) string {
	return a.generate(ctx, financialPrompt(snap), msgNoAdvice)
}

// StockAnalysis asks the model for a short market brief on one symbol.
func (a *Advisor) StockAnalysis(ctx context.Context, symbol, name string) string {
	return a.generate(ctx, analysisPrompt(symbol, name), msgNoAnalysis)
}

// financialPrompt summarizes the snapshot the way a human would brief an
// advisor: total savings, the recent transaction lines, and the
// portfolio positions.
func financialPrompt(snap *moneta.Snapshot) string {
	var txLines strings.Builder
	for _, tx := range snap.Transactions {
		sign := "+"
		if tx.Direction == moneta.Expense {
			sign = "-"
		}
		fmt.Fprintf(&txLines, "%s: %s (%s) %s%s\n",
			tx.Date, tx.Description, tx.Category, sign, tx.Amount)
	}

	var positions strings.Builder
	for _, h := range snap.Holdings {
		fmt.Fprintf(&positions, "%s (%s): 持有 %s 股, 成本 %s, 現價 %s\n",
			h.Name, h.Symbol, h.Shares, h.AverageCost, h.CurrentPrice)
	}

	return fmt.Sprintf(`請擔任我的個人財務顧問。以下是我的財務概況：

總存款資產: %s

近期交易紀錄:
%s
投資組合:
%s
請根據以上數據，用繁體中文提供：
1. 我的消費習慣簡短分析。
2. 針對我的投資組合提供風險評估或建議（注意：請依據一般金融常識，不構成絕對投資建議）。
3. 給予 3 個具體的理財行動建議。
請保持語氣專業且鼓勵性。`, snap.TotalBalance, txLines.String(), positions.String())
}

func analysisPrompt(symbol, name string) string {
	return fmt.Sprintf(`請針對股票代號 %s (%s) 提供一份簡短的市場分析。
包含：
1. 該公司的主要業務。
2. 近期市場關注焦點（請基於你的訓練知識庫）。
3. 投資該股票的潛在風險。
請用繁體中文回答，字數控制在 200 字以內。`, symbol, name)
}
