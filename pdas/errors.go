// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdas

import "errors"

// ErrBandedNotPD is reported by updateDual when the banded Cholesky
// factor loses positive-definiteness in floating point. This is a
// recoverable, logged-only condition: the driver does not abort on it,
// the next reassignment may repair the partition.
var ErrBandedNotPD = errors.New("pdas: banded system not positive definite")
