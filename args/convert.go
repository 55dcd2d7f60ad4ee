// Copyright 2025 The Rivaas Authors
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

package args

import "github.com/spf13/cast"

// convert coerces a raw input value to the declared type. Inputs arrive as
// strings from query and form sources and as decoded scalars from body
// codecs; cast covers both shapes, so "10" and float64(10) both satisfy
// TypeInt.
func convert(v any, t Type) (any, error) {
	switch t {
	case TypeInt:
		return cast.ToIntE(v)
	case TypeFloat:
		return cast.ToFloat64E(v)
	case TypeBool:
		return cast.ToBoolE(v)
	default:
		return cast.ToStringE(v)
	}
}
