// SPDX-License-Identifier: EPL-2.0

package container

import "errors"

var (
	ErrInvalidCapacity     = errors.New("capacity must be greater than zero")
	ErrUnknownOverflowMode = errors.New("unknown overflow mode")
)
