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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestB(t *testing.T) {
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, B("deadbeef"))
	assert.Panics(t, func() { B("not-hex") })
}

func TestH(t *testing.T) {
	assert.Equal(t, "deadbeef", H([]byte{0xde, 0xad, 0xbe, 0xef}))
	assert.Equal(t, "", H(nil))
}
