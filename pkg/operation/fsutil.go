// Copyright 2026 the mane authors
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

package operation

import (
	"os"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// 📥 readTextFile reads a file and reports whether it decodes as UTF-8
// text. UTF-8 decodability is the sole binary/text discriminator: content
// that fails it is never rewritten.
func readTextFile(path string) (content string, isText bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, errors.Errorf("reading file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", false, nil
	}
	return string(data), true, nil
}

// 💾 writeFileAtomic writes content through a temp file in the same
// directory plus a rename, so a failed write never leaves a half-written
// destination.
func writeFileAtomic(path string, content []byte, perm os.FileMode) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, perm); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
