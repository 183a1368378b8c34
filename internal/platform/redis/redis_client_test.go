package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisClient(context.Background(), "http://not-redis")
	assert.ErrorContains(t, err, "parse redis url")
}
