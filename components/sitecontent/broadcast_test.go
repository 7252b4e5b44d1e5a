package sitecontent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastHookFansOutServiceEvents(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	defer cancel()

	service := NewService(Options{Host: MultiHost{hook, HostFuncs{}}})
	require.NoError(t, service.ApplySectionUpdate(context.Background(), Settings{SiteName: "Live"}))

	select {
	case event := <-events:
		assert.Equal(t, SectionSettings, event.Section)
		assert.Equal(t, "Live", event.Content.Settings.SiteName)
		assert.Equal(t, uint64(1), event.Revision)
	case <-time.After(time.Second):
		t.Fatalf("expected content event")
	}

	service.Logout(context.Background())
	event := <-events
	assert.Equal(t, "logout", event.Reason)
}

func TestBroadcastHookDropsForSlowSubscribers(t *testing.T) {
	hook := NewBroadcastHook()
	_, cancel := hook.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for range broadcastBuffer * 3 {
			_ = hook.ContentChanged(context.Background(), ContentEvent{Section: SectionHero})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked on a full subscriber")
	}
}

func TestBroadcastHookCancelClosesChannel(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	cancel()
	cancel()
	_, ok := <-events
	assert.False(t, ok)
}

func TestServeSSEStreamsEvents(t *testing.T) {
	hook := NewBroadcastHook()
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	finished := make(chan struct{})
	go func() {
		hook.ServeSSE(rec, req)
		close(finished)
	}()

	require.Eventually(t, func() bool {
		hook.mu.RLock()
		defer hook.mu.RUnlock()
		return len(hook.subs) == 1
	}, time.Second, 5*time.Millisecond)

	hook.ExitToSite(context.Background())
	require.Eventually(t, func() bool {
		hook.mu.RLock()
		defer hook.mu.RUnlock()
		for _, ch := range hook.subs {
			return len(ch) == 0
		}
		return false
	}, time.Second, 5*time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	cancel()
	<-finished

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "event: exit\ndata: {"), body)
	assert.True(t, strings.HasSuffix(body, "}\n\n"), body)
}
