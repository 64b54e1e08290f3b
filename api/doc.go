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

// Package api exposes the intent builder over HTTP.
//
// Endpoints:
//
//	GET  /health
//	POST /v1/phase1/process    — seed keywords → mined evidence + draft
//	POST /v1/phase2/describe   — evidence + topic → names + description
//	POST /v1/pipeline/process  — combined phase 1 → phase 2
//	POST /v1/extract           — raw text → keyphrases
//	POST /v1/segments/search   — query → ranked segment matches
package api
