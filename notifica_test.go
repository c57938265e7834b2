package notifica

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifica/notifica/internal/backend"
)

// captureDeliver replaces the backend for the duration of a test and
// records every payload it receives.
func captureDeliver(t *testing.T) *[]backend.Notification {
	t.Helper()

	var (
		mu   sync.Mutex
		seen []backend.Notification
	)
	orig := deliver
	deliver = func(n backend.Notification) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, n)
		return nil
	}
	t.Cleanup(func() { deliver = orig })
	return &seen
}

func TestNotifyPassesTextVerbatim(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
	}{
		{"plain", "Hello", "World! 🌍"},
		{"empty", "", ""},
		{"multibyte", "héllo wörld", "日本語のテキスト"},
		{"quotes and newlines", `a "quoted" title`, "line one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := captureDeliver(t)

			require.NoError(t, Notify(tt.title, tt.body))
			require.Len(t, *seen, 1)
			assert.Equal(t, tt.title, (*seen)[0].Title)
			assert.Equal(t, tt.body, (*seen)[0].Body)
		})
	}
}

func TestNotifyUsesDefaults(t *testing.T) {
	seen := captureDeliver(t)

	require.NoError(t, Notify("t", "b"))
	require.Len(t, *seen, 1)

	n := (*seen)[0]
	assert.Equal(t, DefaultAppName, n.AppName)
	assert.Equal(t, UrgencyNormal, n.Urgency)
	assert.Empty(t, n.Icon)
	assert.Zero(t, n.Timeout)
}

func TestSendAppliesOptions(t *testing.T) {
	seen := captureDeliver(t)

	err := Send("t", "b",
		WithAppName("myapp"),
		WithIcon("dialog-information"),
		WithTimeout(5*time.Second),
		WithUrgency(UrgencyCritical),
	)
	require.NoError(t, err)
	require.Len(t, *seen, 1)

	n := (*seen)[0]
	assert.Equal(t, "myapp", n.AppName)
	assert.Equal(t, "dialog-information", n.Icon)
	assert.Equal(t, 5*time.Second, n.Timeout)
	assert.Equal(t, UrgencyCritical, n.Urgency)
}

func TestSendPropagatesBackendError(t *testing.T) {
	orig := deliver
	deliver = func(backend.Notification) error {
		return backend.ErrUnsupported
	}
	t.Cleanup(func() { deliver = orig })

	err := Notify("t", "b")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestConcurrentNotifiesAreIndependent(t *testing.T) {
	seen := captureDeliver(t)

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			title := fmt.Sprintf("title-%d", i)
			body := fmt.Sprintf("body-%d", i)
			assert.NoError(t, Notify(title, body))
		}(i)
	}
	wg.Wait()

	require.Len(t, *seen, workers)
	got := make(map[string]string, workers)
	for _, n := range *seen {
		got[n.Title] = n.Body
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, fmt.Sprintf("body-%d", i), got[fmt.Sprintf("title-%d", i)])
	}
}

func TestBackendNameNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Backend())
}
