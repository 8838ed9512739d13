// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
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

package gcra

import (
	"errors"
	"fmt"
)

// ErrInvalidRateLimit reports a caller bug: max_burst, count_per_period, and
// period must all be positive. The store is not touched.
var ErrInvalidRateLimit = errors.New("invalid rate limit: max_burst, count_per_period, and period must be positive")

// NegativeQuantityError reports a caller bug: the requested quantity was
// negative. The store is not touched.
type NegativeQuantityError struct {
	Quantity int64
}

func (e *NegativeQuantityError) Error() string {
	return fmt.Sprintf("negative quantity: %d", e.Quantity)
}

// InternalError reports a failure inside the engine or the serving layer:
// the compare-and-swap loop exceeded its retry bound, the system clock was
// unusable, or the owner has terminated.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal rate limiter error: " + e.Reason
}
