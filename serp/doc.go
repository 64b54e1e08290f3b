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


// Package serp fetches web search results and page text for the extraction
// pipeline.
//
// Client talks to the SearchAPI service and normalizes its organic results
// into core.Document values: title, snippet, link, registrable domain and
// 1-based position. Fetcher runs batches of queries on a worker pool and can
// optionally fetch each result's page to fill in the document's MainText,
// extracted with the readable-text walker in this package.
//
// Per-query and per-page failures are isolated: a failed query reports its
// error in the batch result, and a failed page fetch simply leaves MainText
// empty.
package serp
