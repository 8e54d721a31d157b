package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventInvokeOrder(t *testing.T) {
	var e Event[int]
	var got []int
	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })

	e.Invoke(3)
	assert.Equal(t, []int{3, 30}, got)
	assert.Equal(t, 2, e.ListenerCount())
}

func TestEventRemoveListener(t *testing.T) {
	var e Event[string]
	calls := 0
	id := e.AddListener(func(string) { calls++ })
	e.AddListener(func(string) { calls += 10 })

	e.RemoveListener(id)
	e.Invoke("x")
	assert.Equal(t, 10, calls)

	assert.Equal(t, ListenerID(0), e.AddListener(nil))
	e.RemoveAllListeners()
	assert.Equal(t, 0, e.ListenerCount())
}
