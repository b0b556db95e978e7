// Package proc runs external command-line tools (cordova, yarn, npm, node)
// on behalf of the generator. Runner is the seam the rest of the code
// depends on; ExecRunner is the os/exec implementation and tests substitute a
// recording fake.
package proc
