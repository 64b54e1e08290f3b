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


// Package mining implements the term-extraction core: tokenization, n-gram
// candidate generation, document-frequency scoring, vertical detection,
// context-weighted keyword scoring, semantic clustering, and keyword-bank
// assembly from collections of search result documents.
//
// All functions in this package are pure and synchronous. They hold no
// state between calls and are safe for concurrent use. Empty or missing
// document fields are skipped, never treated as errors; when no candidate
// clears its support threshold the output lists are simply empty.
package mining
