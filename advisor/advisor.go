// Package advisor is the gateway to the hosted AI financial advisor.
//
// It only ever consumes a read-only ledger snapshot and returns opaque
// narrative text: the text is displayed as-is, never parsed. When the
// service is unconfigured or unreachable it degrades to fixed
// informational strings; no call here surfaces an error to the caller.
package advisor

import (
	"context"
	"log"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Fixed degradation strings, displayed in place of advice when the
// gateway cannot answer.
const (
	msgNoAPIKey    = "請設定 API Key 以啟用 AI 財務顧問功能。"
	msgUnavailable = "AI 服務暫時無法使用，請稍後再試。"
	msgNoAdvice    = "無法生成建議。"
	msgNoAnalysis  = "無法獲取資訊。"
)

// Advisor wraps the Gemini client. A nil client is a valid state meaning
// "not configured": every request then answers with the fixed
// informational string.
type Advisor struct {
	client *genai.Client
}

// New creates an Advisor from the ambient credentials (GEMINI_API_KEY).
// An unconfigured environment is not an error; it yields a degraded
// advisor.
func New(ctx context.Context) *Advisor {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Printf("advisor disabled: %v", err)
		return &Advisor{}
	}
	return &Advisor{client: client}
}

// Configured reports whether a real client backs this advisor.
func (a *Advisor) Configured() bool { return a.client != nil }

// generate runs one prompt through the model and degrades to the fallback
// strings on every failure path.
func (a *Advisor) generate(ctx context.Context, prompt, empty string) string {
	if a.client == nil {
		return msgNoAPIKey
	}
	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("advisor error: %v", err)
		return msgUnavailable
	}
	text := resp.Text()
	if text == "" {
		return empty
	}
	return text
}
