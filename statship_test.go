package statship_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/statship/statship"
	"github.com/statship/statship/pkg/proto"
)

// End-to-end: a real file and a missing one, probed through the public
// entry point against the actual filesystem.
func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "file")

	before := time.Now().Add(-2 * time.Second).UnixNano()
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))
	after := time.Now().Add(2 * time.Second).UnixNano()

	var in []byte
	in = proto.AppendStatRequest(in, [][]byte{
		[]byte(existing),
		[]byte(filepath.Join(dir, "missing")),
	})
	in = proto.AppendShutdown(in)

	var out bytes.Buffer
	require.NoError(t, statship.Run(bytes.NewReader(in), &out, nil, statship.DefaultConfig()))

	payload, n, err := proto.ExtractFrame(out.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, out.Len(), n, "exactly one response frame expected")

	msg, err := proto.DecodeMessage(payload)
	require.NoError(t, err)
	resp := msg.(proto.StatResponse)
	require.Len(t, resp.Birthtimes, 2)

	if got := resp.Birthtimes[0]; got != 0 {
		require.GreaterOrEqual(t, got, before)
		require.LessOrEqual(t, got, after)
	}
	require.Zero(t, resp.Birthtimes[1], "missing path must answer unknown")
}

func TestRunClosedInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, statship.Run(bytes.NewReader(nil), &out, nil, statship.Config{}))
	require.Zero(t, out.Len())
}
