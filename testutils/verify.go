// Package testutils contains helpers shared by package tests.
package testutils

import (
	"go.uber.org/goleak"
)

// VerifyTestMain runs the tests of a package and fails the run if any goroutine started by them,
// such as a descriptor worker, is still alive once they finish.
func VerifyTestMain(m goleak.TestingM) {
	goleak.VerifyTestMain(m)
}
