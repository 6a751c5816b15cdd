package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventSignature(t *testing.T) {
	click, ok := GetEventSignature("onclick")
	require.True(t, ok)
	assert.False(t, click.RequiresArgs())
	assert.Equal(t, "events.AdaptNoArgEvent", click.Adapter)

	input, ok := GetEventSignature("oninput")
	require.True(t, ok)
	assert.True(t, input.RequiresArgs())
	assert.Equal(t, "events.ChangeEventArgs", input.ArgsType)

	_, ok = GetEventSignature("onhover")
	assert.False(t, ok)
}

func TestIsEventSupported(t *testing.T) {
	assert.True(t, IsEventSupported("onclick", "input"))
	assert.True(t, IsEventSupported("oninput", "input"))
	assert.False(t, IsEventSupported("oninput", "div"))
	assert.False(t, IsEventSupported("onhover", "div"))
}

func TestSupportedEvents(t *testing.T) {
	assert.Equal(t, []string{"onchange", "onclick", "oninput"}, SupportedEvents())
}
