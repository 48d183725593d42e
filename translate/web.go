package translate

import (
	"context"
	"fmt"

	"github.com/bregydoc/gtranslate"
)

// Web is a remote capability backed by the public Google Translate web
// endpoint. It needs no credentials, which makes it a usable substitute
// when no API key is configured, but it translates one string per request
// so batches are slower and more likely to be throttled.
type Web struct {
	SourceLang string
	TargetLang string
}

// NewWeb returns a zh-CN → en web translator.
func NewWeb() *Web {
	return &Web{SourceLang: "zh-CN", TargetLang: "en"}
}

// Name implements Remote.
func (w *Web) Name() string { return "google-web" }

// TranslateBatch implements Remote by issuing one request per string.
// The first failed string fails the batch; the dispatcher records
// placeholders for the whole batch and retries it on the next run.
func (w *Web) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	out := make([]string, len(texts))
	for i, t := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		translated, err := gtranslate.TranslateWithParams(t, gtranslate.TranslationParams{
			From: w.SourceLang,
			To:   w.TargetLang,
		})
		if err != nil {
			return nil, fmt.Errorf("translating %q: %w", t, err)
		}
		out[i] = translated
	}
	return out, nil
}
