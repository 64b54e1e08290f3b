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


// Package describe validates generated intent descriptions against the
// rules that keep them usable for classification: the subject must be
// findable, the text must not mention audiences, business models or the
// classification machinery itself, and it must stay concise. A failed
// validation is data about the description, not an error; ValidateAndFix
// additionally attempts a mechanical repair before re-validating.
package describe
