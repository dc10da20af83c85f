package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClientUnreachable(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "127.0.0.1:1", "")
	require.Error(t, err)
	assert.Nil(t, client)
}
