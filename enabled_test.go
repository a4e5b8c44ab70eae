package envassert

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnabledIgnoresLaterEnvChanges(t *testing.T) {
	resolved := Enabled()

	t.Setenv(EnvKeyEnable, "true")
	require.Equal(t, resolved, Enabled())

	t.Setenv(EnvKeyEnable, "false")
	require.Equal(t, resolved, Enabled())
}

func TestEnabledConcurrentCallsAgree(t *testing.T) {
	const goroutinesCount = 64

	results := make([]bool, goroutinesCount)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < goroutinesCount; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			<-start
			results[slot] = Enabled()
		}(i)
	}
	close(start)
	wg.Wait()

	for _, result := range results {
		require.Equal(t, results[0], result)
	}
}
