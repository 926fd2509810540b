package dsext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaigai-boost/shmbuddy/buddy"
	"github.com/kaigai-boost/shmbuddy/segment"
)

func TestParamBufferRoundTrip(t *testing.T) {
	s, err := segment.Create(segment.Options{Size: 1 << 16})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	a, err := buddy.New(s)
	require.NoError(t, err)

	values := [][]byte{[]byte("hello"), nil, []byte("world!!"), []byte("x")}
	pb, err := NewParamBuffer(s, a, values)
	require.NoError(t, err)

	require.Equal(t, []byte("hello"), pb.Value(0))
	require.Nil(t, pb.Value(1))
	require.Equal(t, []byte("world!!"), pb.Value(2))
	require.Equal(t, []byte("x"), pb.Value(3))

	before := a.Snapshot()
	require.NoError(t, pb.Release())
	after := a.Snapshot()
	require.Equal(t, sumActive(before)-1, sumActive(after))
}

func sumActive(s buddy.Stats) int64 {
	var total int64
	for _, v := range s.Active {
		total += v
	}
	return total
}
