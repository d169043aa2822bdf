// SPDX-License-Identifier: EPL-2.0

//go:build !cgo

package audnorm

import "github.com/ik5/audnorm/audio"

// libopusfile needs cgo
func registerOpus(*audio.Registry) {}
