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
	"crypto/sha256"
	"errors"
)

var (
	// ErrChecksum is returned by CheckDecode when the trailing four checksum
	// bytes do not match the payload.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrInvalidFormat is returned by CheckDecode when the decoded value is
	// too short to hold a version byte and a checksum.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)

// checksum is the first four bytes of sha256(sha256(input)).
func checksum(input []byte) (out [4]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(out[:], h2[:4])
	return
}

// CheckEncode prepends the version byte, appends the four byte double-sha256
// checksum and encodes the result as Base58.
func CheckEncode(input []byte, version byte) string {
	b := make([]byte, 0, 1+len(input)+4)
	b = append(b, version)
	b = append(b, input...)

	cksum := checksum(b)
	b = append(b, cksum[:]...)

	return Encode(b)
}

// CheckDecode decodes a Base58Check string, verifies its checksum and splits
// off the leading version byte.
func CheckDecode(input string) (result []byte, version byte, err error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, 0, err
	}
	if len(decoded) < 5 {
		return nil, 0, ErrInvalidFormat
	}

	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		return nil, 0, ErrChecksum
	}

	version = decoded[0]
	result = append(result, decoded[1:len(decoded)-4]...)
	return result, version, nil
}
