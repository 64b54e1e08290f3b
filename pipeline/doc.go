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

// Package pipeline orchestrates the two-phase intent building workflow.
//
// Phase 1 fetches search results for a set of seed keywords, mines them
// for terms, phrases and keyphrases, and produces a raw content bundle
// plus a draft description. Phase 2 takes that evidence, asks the intent
// writer for candidate names and a description, and runs the result
// through the description validator.
//
// The Pipeline can also index finished intents as segments in the vector
// store. Segment embedding runs asynchronously on a worker pool; errors
// during async indexing are logged but do not fail the operation.
package pipeline
