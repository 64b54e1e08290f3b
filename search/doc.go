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


// Package search provides semantic lookup over the audience segment index.
//
// The Searcher type embeds a free-text query and ranks stored segments by
// vector similarity. Candidates above the similarity floor receive a
// verbatim boost when every stop-word-filtered query word appears in the
// segment's topic and description text, so exact topical matches outrank
// merely adjacent ones.
package search
