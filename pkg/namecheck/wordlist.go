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

package namecheck

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/stratus-tools/stratus/pkg/serializer"
)

// LoadWordlist reads candidate names from a local file or HTTP(S) URL.
// One name per line; surrounding whitespace is trimmed, blank lines and
// lines starting with # are skipped.
func LoadWordlist(src string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		data, err = serializer.NewHttpReader().Fetch(src)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, fmt.Errorf("loading wordlist from %q: %w", src, err)
	}
	return ParseWordlist(data)
}

// ParseWordlist extracts names from raw wordlist content.
func ParseWordlist(data []byte) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}
	return names, nil
}
