package signals

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignal_SetNotifiesSubscribers(t *testing.T) {
	req := require.New(t)
	s := NewSignal("")
	var seen []string

	s.Subscribe(func() { seen = append(seen, s.Get()) })
	s.Set("15:04:05")
	s.Set("15:04:06")

	req.Equal("15:04:06", s.Get())
	req.Equal([]string{"15:04:05", "15:04:06"}, seen)
}

func TestSignal_Unsubscribe(t *testing.T) {
	req := require.New(t)
	s := NewSignal(0)
	var a, b, c int

	unsubA := s.Subscribe(func() { a++ })
	unsubB := s.Subscribe(func() { b++ })
	s.Subscribe(func() { c++ })

	unsubA()
	unsubB()
	unsubA()
	s.Set(1)

	req.Equal(0, a)
	req.Equal(0, b)
	req.Equal(1, c)
	req.Equal(1, s.Subscribers())
}
