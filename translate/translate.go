// Package translate turns a set of untranslated Chinese strings into store
// entries using two interchangeable capabilities: a remote batch translator
// (cloud API) and a local individual translator (offline engine).
//
// Strings are partitioned by a character-length threshold: long strings go
// to the remote capability in fixed-size batches, short strings go to the
// local capability one at a time. Failures never abort a run — each failed
// batch or string is recorded as an error placeholder and retried on the
// next invocation.
package translate

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/han-tools/zhpatch/store"
)

// ErrUnavailable is returned by a capability that is not configured or
// whose backing service cannot be reached.
var ErrUnavailable = errors.New("translation backend unavailable")

const (
	// DefaultThreshold is the length cutoff between remote and local
	// translation.
	DefaultThreshold = 5

	// DefaultBatchSize is the maximum strings per remote batch call,
	// matching the backend's documented request limit.
	DefaultBatchSize = 128

	// minLocalLen is the shortest string routed to the local capability
	// under a positive threshold. Strings of one or two characters are
	// left untranslated; they are almost always fragments of a longer
	// phrase the loose extraction pass already captured.
	minLocalLen = 3
)

// Remote translates a batch of strings in one call. The returned slice is
// parallel to the input. An error fails the whole batch.
type Remote interface {
	Name() string
	TranslateBatch(ctx context.Context, texts []string) ([]string, error)
}

// Local translates a single string.
type Local interface {
	Name() string
	TranslateOne(ctx context.Context, text string) (string, error)
}

// Options controls dispatching.
type Options struct {
	// Threshold is the length cutoff: any negative value routes
	// everything to the local capability, 0 routes everything to the
	// remote capability, and a positive value routes strings of that
	// many characters or more to the remote capability and strings of
	// 3..Threshold-1 characters to the local one.
	Threshold int
	// BatchSize caps remote batch size (default 128).
	BatchSize int
	// OnLog emits progress/log messages.
	OnLog func(format string, args ...any)
	// OnProgress is called after every translated batch or string.
	OnProgress func(done, total int)
}

func (o *Options) log(format string, args ...any) {
	if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

func (o *Options) progress(done, total int) {
	if o.OnProgress != nil {
		o.OnProgress(done, total)
	}
}

// Run translates inputs and returns a store entry for every routed string:
// the translation on success, an error placeholder on failure. Under a
// positive threshold, strings shorter than three characters are not routed
// anywhere and receive no entry.
//
// Batches are issued sequentially. A nil remote degrades to local-only
// dispatch for all strings regardless of threshold; a nil local records a
// not-ready placeholder for every string routed to it.
func Run(ctx context.Context, remote Remote, local Local, inputs []string, opts Options) store.Store {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	sorted := make([]string, len(inputs))
	copy(sorted, inputs)
	sort.Strings(sorted)

	var toRemote, toLocal []string
	switch {
	case opts.Threshold < 0:
		toLocal = sorted
	case remote == nil:
		toLocal = sorted
	case opts.Threshold == 0:
		toRemote = sorted
	default:
		for _, s := range sorted {
			n := utf8.RuneCountInString(s)
			switch {
			case n >= opts.Threshold:
				toRemote = append(toRemote, s)
			case n >= minLocalLen:
				toLocal = append(toLocal, s)
			}
		}
	}

	untranslated := len(sorted) - len(toRemote) - len(toLocal)
	opts.log("Translation breakdown: %d total, %d remote (batch), %d local (individual), %d untranslated",
		len(sorted), len(toRemote), len(toLocal), untranslated)

	out := store.Store{}
	total := len(toRemote) + len(toLocal)
	done := 0

	for start := 0; start < len(toRemote); start += opts.BatchSize {
		end := start + opts.BatchSize
		if end > len(toRemote) {
			end = len(toRemote)
		}
		batch := toRemote[start:end]

		translations, err := remote.TranslateBatch(ctx, batch)
		if err == nil && len(translations) != len(batch) {
			err = errors.New("backend returned mismatched translation count")
		}
		if err != nil {
			opts.log("Batch of %d failed via %s: %v", len(batch), remote.Name(), err)
			for _, s := range batch {
				out[s] = store.Placeholder(store.ReasonRemoteError, s)
			}
		} else {
			for i, s := range batch {
				v := strings.TrimSpace(translations[i])
				if v == "" {
					out[s] = store.Placeholder(store.ReasonRemoteError, s)
				} else {
					out[s] = v
				}
			}
		}
		done += len(batch)
		opts.progress(done, total)
	}

	for _, s := range toLocal {
		if local == nil {
			out[s] = store.Placeholder(store.ReasonLocalNotReady, s)
		} else if v, err := local.TranslateOne(ctx, s); err != nil {
			opts.log("Translating %q via %s: %v", s, local.Name(), err)
			out[s] = store.Placeholder(store.ReasonLocalError, s)
		} else if v = strings.TrimSpace(v); v == "" {
			out[s] = store.Placeholder(store.ReasonLocalError, s)
		} else {
			out[s] = v
		}
		done++
		opts.progress(done, total)
	}

	return out
}
