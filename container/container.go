// Copyright ©2026 The bíogo.order Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package container provides elementary dynamic sequence containers: a
// dynamic array over an explicitly managed backing buffer, a stack and a
// queue. The zero value of each container is ready to use.
package container

import "errors"

var (
	ErrOutOfRange = errors.New("container: index out of range")
	ErrEmpty      = errors.New("container: empty container")
)
