package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string
	m.Subscribe(TypeTextSaved, func(e Event) bool {
		calls = append(calls, "first:"+e.Data.(TextSavedData).FilePath)
		return false
	})
	m.Subscribe(TypeTextSaved, func(e Event) bool {
		calls = append(calls, "second")
		return true
	})
	m.Subscribe(TypeTextSaved, func(e Event) bool {
		calls = append(calls, "third")
		return false
	})

	m.Dispatch(TypeTextSaved, TextSavedData{FilePath: "a.txt"})
	assert.Equal(t, []string{"first:a.txt", "second"}, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeTextLoaded, nil) })
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	count := 0
	m.Subscribe(TypeTextModified, func(Event) bool {
		count++
		m.Subscribe(TypeTextModified, func(Event) bool { count += 10; return false })
		return false
	})
	m.Dispatch(TypeTextModified, nil)
	assert.Equal(t, 1, count)
}
