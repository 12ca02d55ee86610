// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package fontdiag

import "golang.org/x/sys/unix"

// readable reports whether the current user may read path,
// using the real uid as access(2) does.
func readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
