// Copyright 2025 Ian Lewis
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

package flictionary

import (
	"strconv"
)

// Token is a piece of user input such as the word currently being typed.
type Token struct {
	Data string
}

// WeightedToken is a suggested word and its frequency.
type WeightedToken struct {
	Word      string
	Frequency int
}

// String implements [fmt.Stringer.String].
func (t WeightedToken) String() string {
	return t.Word + " (" + strconv.Itoa(t.Frequency) + ")"
}
