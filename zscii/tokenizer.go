// This file is part of ZGopher.
//
// ZGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZGopher.  If not, see <https://www.gnu.org/licenses/>.

package zscii

// Token is a single word from an input line.
type Token struct {
	Text String

	// offset of the first character of the token in the input
	Offset int
}

// Tokenize splits input into tokens. Spaces separate tokens and are
// discarded. Each separator character is a token of its own.
func Tokenize(input String, separators String) []Token {
	var tokens []Token

	start := -1
	end := func(i int) {
		if start >= 0 {
			tokens = append(tokens, Token{Text: input[start:i], Offset: start})
			start = -1
		}
	}

	for i, c := range input {
		switch {
		case c == Char(' '):
			end(i)
		case isSeparator(c, separators):
			end(i)
			tokens = append(tokens, Token{Text: input[i : i+1], Offset: i})
		default:
			if start < 0 {
				start = i
			}
		}
	}
	end(len(input))

	return tokens
}

func isSeparator(c Char, separators String) bool {
	for _, s := range separators {
		if c == s {
			return true
		}
	}
	return false
}
