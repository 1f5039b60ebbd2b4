package util

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)

	_, err := ulid.ParseStrict(a)
	require.NoError(t, err)
}

func TestNewULIDAt(t *testing.T) {
	at := time.UnixMilli(1717000000000)
	id, err := ulid.ParseStrict(NewULIDAt(at))
	require.NoError(t, err)
	assert.Equal(t, uint64(1717000000000), id.Time())
}

func TestStringToNullString(t *testing.T) {
	assert.False(t, StringToNullString("").Valid)
	assert.Equal(t, "x", StringToNullString("x").String)
}
