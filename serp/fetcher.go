// Copyright 2025 AudienceLab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package serp

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/audiencelab/intentforge/core"
)

const (
	defaultConcurrency = 8
	pageFetchTimeout   = 20 * time.Second
)

// QueryResult is the outcome of fetching one query's search results.
// A per-query error never fails the batch; it is recorded here instead.
type QueryResult struct {
	Query string
	Docs  []core.Document
	Err   error
}

// Fetcher runs batched SERP and page fetches on a worker pool.
type Fetcher struct {
	client      *Client
	pageClient  *http.Client
	pool        *ants.Pool
	concurrency int
	logger      *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithConcurrency sets the worker pool size for batched fetches.
// Default is 8, minimum 1.
func WithConcurrency(n int) FetcherOption {
	return func(f *Fetcher) {
		if n < 1 {
			n = 1
		}
		f.concurrency = n
	}
}

// WithPageClient sets the HTTP client used for page main-text fetches.
func WithPageClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if client != nil {
			f.pageClient = client
		}
	}
}

// NewFetcher creates a batch fetcher on top of a SearchAPI client.
func NewFetcher(client *Client, opts ...FetcherOption) (*Fetcher, error) {
	if client == nil {
		return nil, ErrClientRequired
	}

	f := &Fetcher{
		client:      client,
		pageClient:  &http.Client{Timeout: pageFetchTimeout},
		concurrency: defaultConcurrency,
		logger:      slog.Default().With("component", "serp-fetcher"),
	}

	for _, opt := range opts {
		opt(f)
	}

	pool, err := ants.NewPool(f.concurrency)
	if err != nil {
		return nil, err
	}
	f.pool = pool

	return f, nil
}

// FetchSERPs fetches search results for multiple queries concurrently.
// Results come back in query order; failed queries carry their error and an
// empty document list.
func (f *Fetcher) FetchSERPs(ctx context.Context, queries []string, locale string, perQuery int) []QueryResult {
	results := make([]QueryResult, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		results[i].Query = query

		wg.Add(1)
		i, query := i, query
		if err := f.pool.Submit(func() {
			defer wg.Done()
			docs, err := f.client.FetchSERP(ctx, query, locale, perQuery)
			if err != nil {
				f.logger.Warn("failed to fetch search results", "query", query, "err", err)
				results[i].Err = err
				return
			}
			results[i].Docs = docs
		}); err != nil {
			wg.Done()
			results[i].Err = err
		}
	}
	wg.Wait()

	return results
}

// FetchMainText fetches each document's page and fills in its MainText.
// Documents whose pages cannot be fetched keep an empty MainText; the input
// slice is not modified.
func (f *Fetcher) FetchMainText(ctx context.Context, docs []core.Document) []core.Document {
	out := make([]core.Document, len(docs))
	copy(out, docs)

	var wg sync.WaitGroup
	for i := range out {
		if out[i].Link == "" {
			continue
		}

		wg.Add(1)
		i := i
		if err := f.pool.Submit(func() {
			defer wg.Done()
			content, err := fetchHTML(ctx, f.pageClient, out[i].Link)
			if err != nil {
				f.logger.Debug("failed to fetch page", "url", out[i].Link, "err", err)
				return
			}
			out[i].MainText = ExtractMainText(content)
		}); err != nil {
			wg.Done()
		}
	}
	wg.Wait()

	return out
}

// Release releases the worker pool.
// The fetcher should not be used after calling Release.
func (f *Fetcher) Release() {
	if f.pool != nil {
		f.pool.Release()
	}
}
