// Copyright (c) 2025, Stratus Authors.  All rights reserved.
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

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stratus-tools/stratus/pkg/namecheck"
	"github.com/stratus-tools/stratus/pkg/serializer"
)

// NamecheckRequest is the POST /v1/namecheck body.
type NamecheckRequest struct {
	// Kind selects the rule set: "project" or "bucket".
	Kind  string   `json:"kind"`
	Names []string `json:"names"`
}

// handleNamecheck handles POST /v1/namecheck. Only the local naming rules
// are applied; the handler never calls the cloud APIs.
func (s *Server) handleNamecheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Only POST is supported", false, nil)
		return
	}

	var req NamecheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Malformed request body", false, map[string]any{"error": err.Error()})
		return
	}

	var rules namecheck.Rules
	switch req.Kind {
	case "project":
		rules = namecheck.ValidateProjectID
	case "bucket":
		rules = namecheck.ValidateBucketName
	default:
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			fmt.Sprintf("Unknown kind %q, expected \"project\" or \"bucket\"", req.Kind),
			false, nil)
		return
	}

	if len(req.Names) > s.config.MaxNamesPerRequest {
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Too many names in a single request", false, map[string]any{
				"limit": s.config.MaxNamesPerRequest,
				"got":   len(req.Names),
			})
		return
	}

	checker := namecheck.NewChecker(rules, namecheck.WithLocalOnly(true))
	report, err := checker.Check(r.Context(), req.Names)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"Name check failed", true, map[string]any{"error": err.Error()})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report)
}
