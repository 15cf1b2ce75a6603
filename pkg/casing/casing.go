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

// Package casing classifies identifier tokens by naming convention and
// converts them between conventions.
package casing

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// 🎨 Style is a naming convention for multi-word identifiers
type Style int

const (
	Unrecognized Style = iota // no internal case signal
	Pascal                    // HelloWorld
	Kebab                     // hello-world
	Camel                     // helloWorld
	ScreamingSnake            // HELLO_WORLD
	Snake                     // hello_world
)

// String returns a string representation of Style
func (s Style) String() string {
	switch s {
	case Pascal:
		return "pascal"
	case Kebab:
		return "kebab"
	case Camel:
		return "camel"
	case ScreamingSnake:
		return "screaming-snake"
	case Snake:
		return "snake"
	default:
		return "unrecognized"
	}
}

// 📋 Styles returns the concrete styles in the fixed order replacement
// variants are applied in. Unrecognized is not a concrete style.
func Styles() []Style {
	return []Style{Pascal, Kebab, Camel, ScreamingSnake, Snake}
}

// 🔍 Detect classifies a token by naming convention. Separators win over
// case signals, and a token with no signal at all (single lowercase or
// uppercase word, digits, punctuation) is Unrecognized.
func Detect(token string) Style {
	switch {
	case strings.ContainsRune(token, '-'):
		return Kebab
	case strings.ContainsRune(token, '_'):
		if strings.ToUpper(token) == token {
			return ScreamingSnake
		}
		return Snake
	case !startsUpper(token) && containsUpper(token):
		return Camel
	case startsUpper(token) && containsLower(token):
		return Pascal
	default:
		return Unrecognized
	}
}

// 🔄 Convert re-segments a token at its word boundaries (humps, '-', '_')
// and re-joins it in the target style. It is total: Unrecognized converts
// to the token itself, and single-word or already-uniform tokens round-trip
// without error.
func Convert(token string, target Style) string {
	switch target {
	case Pascal:
		return strcase.ToCamel(token)
	case Kebab:
		return strcase.ToKebab(token)
	case Camel:
		return strcase.ToLowerCamel(token)
	case ScreamingSnake:
		return strcase.ToScreamingSnake(token)
	case Snake:
		return strcase.ToSnake(token)
	default:
		return token
	}
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func containsUpper(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func containsLower(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}
