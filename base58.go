// Copyright 2019 dfuse Platform Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package b58

import (
	"fmt"
	"math/big"

	"go.uber.org/multierr"
)

// Alphabet is the bitcoin-style Base58 alphabet. The digit 0, uppercase O
// and I, and lowercase l are excluded to avoid visual ambiguity.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// zeroSymbol is the first alphabet symbol, it encodes a single leading zero
// byte.
const zeroSymbol = '1'

var b58Value = func() (table [256]int8) {
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		table[Alphabet[i]] = int8(i)
	}
	return
}()

var bn58 = big.NewInt(58)

// InvalidCharacterError is returned when an input character does not belong
// to the Base58 alphabet.
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base58 character %q at position %d", e.Char, e.Pos)
}

// Decode converts a Base58 string into the byte sequence it encodes. Each
// leading '1' becomes one leading zero byte, the remainder is interpreted as
// a big-endian base-58 number. The empty string decodes to empty bytes.
//
// Decoding fails with an *InvalidCharacterError on the first character
// outside the alphabet, there is no other failure mode.
func Decode(input string) ([]byte, error) {
	zeros := 0
	for zeros < len(input) && input[zeros] == zeroSymbol {
		zeros++
	}

	bn := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(input); i++ {
		v := b58Value[input[i]]
		if v < 0 {
			return nil, &InvalidCharacterError{Char: input[i], Pos: i}
		}
		bn.Mul(bn, bn58)
		bn.Add(bn, digit.SetInt64(int64(v)))
	}

	out := make([]byte, zeros, zeros+len(input))
	return append(out, bn.Bytes()...), nil
}

// Encode converts a byte sequence into its Base58 representation, the
// inverse of Decode.
func Encode(input []byte) string {
	// log(256) / log(58) rounded up
	idx := len(input)*138/100 + 1
	buf := make([]byte, idx)

	bn := new(big.Int).SetBytes(input)
	var mo *big.Int
	for bn.Sign() != 0 {
		bn, mo = bn.DivMod(bn, bn58, new(big.Int))
		idx--
		buf[idx] = Alphabet[mo.Int64()]
	}

	for _, v := range input {
		if v != 0 {
			break
		}
		idx--
		buf[idx] = zeroSymbol
	}

	return string(buf[idx:])
}

// Validate returns nil when every character of input belongs to the Base58
// alphabet. Unlike Decode, it does not stop at the first violation: the
// returned error combines one *InvalidCharacterError per offending
// character.
func Validate(input string) error {
	var errs error
	for i := 0; i < len(input); i++ {
		if b58Value[input[i]] < 0 {
			errs = multierr.Append(errs, &InvalidCharacterError{Char: input[i], Pos: i})
		}
	}
	return errs
}
