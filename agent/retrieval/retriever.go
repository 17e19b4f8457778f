package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

// NoInformationFound is the sentinel returned when no catalog entry matches a
// query. Responders treat it as a normal outcome, not an error.
const NoInformationFound = "No relevant information found in the knowledge base."

const excerptsHeader = "Guitar Catalog Excerpts:"

// KeywordRetriever ranks catalog entries by keyword overlap with the query.
// The index is built lazily from the Loader on first use and is read-only
// afterwards, so concurrent invocations can share one retriever. A failed
// load is retried on the next call rather than cached.
type KeywordRetriever struct {
	loader Loader

	mu     sync.Mutex
	loaded bool
	docs   []indexedDoc
}

type indexedDoc struct {
	text    string
	lowered string
}

var _ contractx.Retriever = (*KeywordRetriever)(nil)

func NewKeywordRetriever(loader Loader) *KeywordRetriever {
	return &KeywordRetriever{loader: loader}
}

// RetrieveContext returns up to k ranked excerpts formatted for prompt
// consumption. Transport failures while loading the catalog propagate as
// errors; an empty result set returns the sentinel string instead.
func (r *KeywordRetriever) RetrieveContext(ctx context.Context, query string, k int) (string, error) {
	if err := r.ensureIndex(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrRetrieval, err)
	}

	ranked := r.search(query, k)
	if len(ranked) == 0 {
		return NoInformationFound, nil
	}

	sections := make([]string, 0, len(ranked))
	for i, text := range ranked {
		sections = append(sections, fmt.Sprintf("--- CATALOG ENTRY %d ---\n%s", i+1, text))
	}
	return excerptsHeader + "\n" + strings.Join(sections, "\n\n"), nil
}

func (r *KeywordRetriever) ensureIndex(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return nil
	}

	entries, err := r.loader.LoadEntries(ctx)
	if err != nil {
		return err
	}
	docs := make([]indexedDoc, 0, len(entries))
	for _, e := range entries {
		text := e.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		docs = append(docs, indexedDoc{text: text, lowered: strings.ToLower(text)})
	}
	r.docs = docs
	r.loaded = true
	log.Debug().Int("entries", len(docs)).Msg("catalog keyword index built")
	return nil
}

func (r *KeywordRetriever) search(query string, k int) []string {
	if k <= 0 {
		return nil
	}
	words := queryWords(query)
	if len(words) == 0 {
		return nil
	}

	type scored struct {
		score int
		idx   int
	}
	hits := make([]scored, 0, len(r.docs))
	for i, doc := range r.docs {
		score := 0
		for _, w := range words {
			if strings.Contains(doc.lowered, w) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{score: score, idx: i})
		}
	}

	// Stable by catalog order so equal scores rank deterministically.
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score > hits[b].score
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, r.docs[h.idx].text)
	}
	return out
}

// queryWords lowers the query and strips surrounding punctuation from each
// token, so "cost?" still matches catalog text containing "cost".
func queryWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
