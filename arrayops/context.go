// SPDX-License-Identifier: MIT
package arrayops

// Context names the device an array or graph's storage lives on, mirroring
// the reference implementation's DGLContext. This module has no multi-device
// story: every array is host memory, so Context is only ever CPUContext, but
// the accessor is kept because callers (and the reference API surface) treat
// context() as a normal query, not something a CPU-only build gets to skip.
type Context struct {
	Device string
	ID     int
}

// CPUContext is the only context this module ever produces.
var CPUContext = Context{Device: "cpu", ID: 0}
