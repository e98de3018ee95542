/*
File   : coffeebean/environment/environment_test.go
Package: environment
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coffeebean/value"
)

func TestEnvironment_DefineCreatesInCurrentScopeWhenUnbound(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Int{Value: 1})

	v, ok := global.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int{Value: 1}, v)
}

func TestEnvironment_DefineUpdatesNearestEnclosingBinding(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Int{Value: 1})

	block := New(global)
	block.Define("x", value.Int{Value: 2})

	v, ok := block.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int{Value: 2}, v)

	// The write landed in the global scope, not a new block-local one.
	_, hasLocal := block.Values["x"]
	assert.False(t, hasLocal)

	outer, _ := global.Get("x")
	assert.Equal(t, value.Int{Value: 2}, outer)
}

func TestEnvironment_BlockScopeDoesNotLeakNewNames(t *testing.T) {
	global := New(nil)
	block := New(global)
	block.Define("y", value.Int{Value: 10})

	_, ok := global.Get("y")
	assert.False(t, ok, "a name first defined inside a block must not leak to the parent")
}

func TestEnvironment_GetMissIsReportedAsNotOk(t *testing.T) {
	global := New(nil)
	_, ok := global.Get("missing")
	assert.False(t, ok)
}
