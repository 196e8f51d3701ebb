package environment

import (
	"testing"

	"github.com/akashmaji946/monkey/objects"
	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &objects.Integer{Value: 5})

	val, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(5), val.(*objects.Integer).Value)

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestEnclosedEnvironmentSeesOuterBindings(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &objects.Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*objects.Integer).Value)
}

func TestInnerShadowsOuterWithoutMutatingIt(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &objects.Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", &objects.Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, int64(2), innerVal.(*objects.Integer).Value)
	assert.Equal(t, int64(1), outerVal.(*objects.Integer).Value)
}
