// SPDX-License-Identifier: EPL-2.0

package pipeline

import "errors"

// ErrEngineClosed is returned by every Engine method after Close.
var ErrEngineClosed = errors.New("engine is closed")
