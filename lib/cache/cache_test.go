package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithoutClient(t *testing.T) {
	ctx := context.Background()
	c := NewInstance(nil, time.Minute)

	require.NoError(t, c.SetJSON(ctx, "k", map[string]int{"a": 1}))

	var out map[string]int
	found, err := c.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, out)

	require.NoError(t, c.Delete(ctx, "k"))
}
