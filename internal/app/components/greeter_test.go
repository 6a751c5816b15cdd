//go:build !wasm
// +build !wasm

package components

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vcrobe/nojs-greeter/events"
	"github.com/vcrobe/nojs-greeter/internal/api"
	"github.com/vcrobe/nojs-greeter/internal/mocks"
	"github.com/vcrobe/nojs-greeter/internal/poll"
	"github.com/vcrobe/nojs-greeter/testcomponents"
	"github.com/vcrobe/nojs-greeter/vdom"
)

const testInterval = 10 * time.Millisecond

func byID(t *testing.T, root *vdom.VNode, id string) *vdom.VNode {
	t.Helper()
	n := root.Find(func(n *vdom.VNode) bool { return n.Attributes["id"] == id })
	require.NotNil(t, n, "no node with id %q", id)
	return n
}

func click(t *testing.T, r *testcomponents.TestRenderer, id string) {
	t.Helper()
	handler, ok := byID(t, r.GetCurrentVDOM(), id).Handler("onClick").(func())
	require.True(t, ok, "node %q has no click handler", id)
	handler()
}

func typeName(t *testing.T, r *testcomponents.TestRenderer, name string) {
	t.Helper()
	handler, ok := byID(t, r.GetCurrentVDOM(), "name-input").Handler("onInput").(func(events.ChangeEventArgs))
	require.True(t, ok, "name input has no input handler")
	handler(events.ChangeEventArgs{Value: name})
}

func textOf(t *testing.T, r *testcomponents.TestRenderer, id string) string {
	t.Helper()
	return byID(t, r.GetCurrentVDOM(), id).Content
}

// mount renders a Greeter whose initial time fetch returns initialTime.
func mount(t *testing.T, svc *mocks.MockService, initialTime string) (*Greeter, *testcomponents.TestRenderer) {
	t.Helper()
	return mountWithInterval(t, svc, initialTime, testInterval)
}

func mountWithInterval(t *testing.T, svc *mocks.MockService, initialTime string, interval time.Duration) (*Greeter, *testcomponents.TestRenderer) {
	t.Helper()
	g := NewGreeter(svc, poll.New(interval), zerolog.Nop())
	r := testcomponents.NewTestRenderer(g)
	t.Cleanup(r.Unmount)

	r.RenderRoot()
	require.Eventually(t, func() bool {
		return textOf(t, r, "time") == "Current time: "+initialTime
	}, time.Second, 5*time.Millisecond)
	return g, r
}

func TestGreeter_InitialRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().Time(gomock.Any()).Return("Mon Jan 2 15:04:05", nil).Times(1)

	_, r := mount(t, svc, "Mon Jan 2 15:04:05")
	root := r.GetCurrentVDOM()

	req := require.New(t)
	req.Equal("div", root.Tag)
	req.Equal("App", root.Class())
	req.NotNil(root.FindByClass("App-header"))
	req.Equal("Welcome to nojs", root.FindByClass("App-title").Content)
	req.Equal("/logo.svg", root.FindByClass("App-logo").Attributes["src"])

	req.Equal("", textOf(t, r, "greeting"))
	req.Equal("result", byID(t, root, "greeting").Class())
	req.Equal("Submit", byID(t, root, "submit").Attributes["value"])
	req.Equal("On", byID(t, root, "timer-on").Attributes["value"])
	req.Equal("Off", byID(t, root, "timer-off").Attributes["value"])
}

func TestGreeter_Submit(t *testing.T) {
	t.Run("should show the greeting without error styling on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().Time(gomock.Any()).Return("t0", nil)
		svc.EXPECT().SayHello(gomock.Any(), "Alice").Return("Hello, Alice", nil).Times(1)

		g, r := mount(t, svc, "t0")
		typeName(t, r, "Alice")
		require.Equal(t, "Alice", byID(t, r.GetCurrentVDOM(), "name-input").Attributes["value"])

		click(t, r, "submit")

		require.Eventually(t, func() bool { return textOf(t, r, "greeting") == "Hello, Alice" }, time.Second, 5*time.Millisecond)
		assert.Equal(t, "result", byID(t, r.GetCurrentVDOM(), "greeting").Class())
		assert.False(t, g.State().HasErr)
	})

	t.Run("should show the fixed failure text with error styling on a non-OK status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().Time(gomock.Any()).Return("t0", nil)
		svc.EXPECT().SayHello(gomock.Any(), "Alice").
			Return("", &api.StatusError{Endpoint: api.SayHelloPath, Code: 500})

		g, r := mount(t, svc, "t0")
		typeName(t, r, "Alice")
		g.Submit(context.Background())

		assert.Equal(t, "failed to parse text", textOf(t, r, "greeting"))
		assert.Equal(t, "result error", byID(t, r.GetCurrentVDOM(), "greeting").Class())
		assert.True(t, g.State().HasErr)
	})

	t.Run("should show the transport error message with error styling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().Time(gomock.Any()).Return("t0", nil)
		svc.EXPECT().SayHello(gomock.Any(), "").Return("", errors.New("Failed to fetch"))

		g, r := mount(t, svc, "t0")
		g.Submit(context.Background())

		assert.Equal(t, "Failed to fetch", textOf(t, r, "greeting"))
		assert.Equal(t, "result error", byID(t, r.GetCurrentVDOM(), "greeting").Class())
	})

	t.Run("should clear error styling once a later submit succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().Time(gomock.Any()).Return("t0", nil)
		gomock.InOrder(
			svc.EXPECT().SayHello(gomock.Any(), "Bob").Return("", &api.StatusError{Endpoint: api.SayHelloPath, Code: 404}),
			svc.EXPECT().SayHello(gomock.Any(), "Bob").Return("Hello, Bob!", nil),
		)

		g, r := mount(t, svc, "t0")
		typeName(t, r, "Bob")
		g.Submit(context.Background())
		require.True(t, g.State().HasErr)

		g.Submit(context.Background())

		s := g.State()
		assert.Equal(t, "Hello, Bob!", s.Result)
		assert.False(t, s.HasErr)
		assert.Equal(t, "result", byID(t, r.GetCurrentVDOM(), "greeting").Class())
	})
}

func TestGreeter_RefreshTimeFailureLeavesTimeUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	gomock.InOrder(
		svc.EXPECT().Time(gomock.Any()).Return("t0", nil),
		svc.EXPECT().Time(gomock.Any()).Return("", &api.StatusError{Endpoint: api.TimePath, Code: 503}),
		svc.EXPECT().Time(gomock.Any()).Return("", errors.New("network down")),
	)

	g, r := mount(t, svc, "t0")
	g.RefreshTime(context.Background())
	g.RefreshTime(context.Background())

	assert.Equal(t, "Current time: t0", textOf(t, r, "time"))
	assert.Equal(t, "", g.State().Result, "time failures never touch the result field")
}

func TestGreeter_PollingToggle(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	var calls atomic.Int32
	svc.EXPECT().Time(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		n := calls.Add(1)
		return "t" + string(rune('0'+n%10)), nil
	}).AnyTimes()

	g, r := mount(t, svc, "t1")

	click(t, r, "timer-on")
	req.True(g.poller.Running())
	req.Eventually(func() bool { return calls.Load() >= 4 }, time.Second, testInterval)

	click(t, r, "timer-off")
	req.False(g.poller.Running())

	time.Sleep(3 * testInterval)
	settledCalls := calls.Load()
	settledTime := textOf(t, r, "time")
	time.Sleep(10 * testInterval)
	req.Equal(settledCalls, calls.Load(), "no fetch after Off")
	req.Equal(settledTime, textOf(t, r, "time"), "no update after Off")
}

func TestGreeter_TimerOnTwiceKeepsOneTimer(t *testing.T) {
	const (
		interval = 25 * time.Millisecond
		window   = 10 * interval
	)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	var mounted atomic.Bool
	var calls atomic.Int32
	svc.EXPECT().Time(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		if mounted.Load() {
			calls.Add(1)
		}
		return "t0", nil
	}).AnyTimes()

	g, r := mountWithInterval(t, svc, "t0", interval)
	mounted.Store(true)

	click(t, r, "timer-on")
	click(t, r, "timer-on")
	require.True(t, g.poller.Running())

	time.Sleep(window)
	click(t, r, "timer-off")

	// One ticker fires about ten times in the window; two would fire about twenty.
	got := calls.Load()
	assert.GreaterOrEqual(t, got, int32(3), "the timer should keep ticking")
	assert.LessOrEqual(t, got, int32(14), "a second timer is still running")
	require.False(t, g.poller.Running())
}

func TestGreeter_ResponseAfterOffIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	gomock.InOrder(
		svc.EXPECT().Time(gomock.Any()).Return("t0", nil),
		svc.EXPECT().Time(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
			once.Do(func() { close(started) })
			<-release
			return "late", nil
		}).AnyTimes(),
	)

	g, r := mount(t, svc, "t0")
	click(t, r, "timer-on")
	<-started

	click(t, r, "timer-off")
	close(release)

	time.Sleep(5 * testInterval)
	assert.Equal(t, "Current time: t0", textOf(t, r, "time"))
	assert.Equal(t, "t0", g.State().Time)
}

func TestGreeter_UnmountStopsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().Time(gomock.Any()).Return("t0", nil).AnyTimes()

	g, r := mount(t, svc, "t0")
	click(t, r, "timer-on")
	require.True(t, g.poller.Running())

	r.Unmount()

	require.False(t, g.poller.Running())
	require.Zero(t, g.time.Subscribers())
}
