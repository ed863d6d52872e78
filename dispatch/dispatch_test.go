// SPDX-License-Identifier: MIT

package dispatch_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vexpr/dispatch"
)

const wantTrace = "first: doing something\nsecond: doing something\n"

// counting records how many times it was invoked and in which order.
type counting struct {
	name string
	log  *[]string
}

func (c counting) Name() string { return c.name }

func (c counting) DoSomething(w io.Writer) error {
	*c.log = append(*c.log, c.name)
	_, err := io.WriteString(w, c.name+"\n")
	return err
}

// failingWriter rejects every write.
type failingWriter struct{}

var errWrite = errors.New("write refused")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRunDynamic_DefaultRegistry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, dispatch.RunDynamic(&buf, dispatch.NewDefaultRegistry()))
	assert.Equal(t, wantTrace, buf.String())
}

func TestRunStatic2_MatchesDynamic(t *testing.T) {
	t.Parallel()

	var dyn, stat bytes.Buffer
	require.NoError(t, dispatch.RunDynamic(&dyn, dispatch.NewDefaultRegistry()))
	require.NoError(t, dispatch.RunStatic2(&stat, dispatch.First{}, dispatch.Second{}))

	assert.Equal(t, wantTrace, stat.String())
	assert.Equal(t, dyn.String(), stat.String())
}

func TestEachVariantInvokedOnceInOrder(t *testing.T) {
	t.Parallel()

	var dynLog, statLog []string
	a := counting{name: "a", log: &dynLog}
	b := counting{name: "b", log: &dynLog}

	reg, err := dispatch.NewRegistry(2)
	require.NoError(t, err)
	require.NoError(t, reg.Register(a))
	require.NoError(t, reg.Register(b))
	require.NoError(t, dispatch.RunDynamic(io.Discard, reg))
	assert.Equal(t, []string{"a", "b"}, dynLog)

	sa := counting{name: "a", log: &statLog}
	sb := counting{name: "b", log: &statLog}
	require.NoError(t, dispatch.RunStatic2(io.Discard, sa, sb))
	assert.Equal(t, []string{"a", "b"}, statLog)
}

func TestInvoke_OneLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, dispatch.Invoke(&buf, dispatch.Second{}))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Equal(t, "second: doing something\n", buf.String())
}

func TestRegistry_Errors(t *testing.T) {
	t.Parallel()

	_, err := dispatch.NewRegistry(0)
	require.ErrorIs(t, err, dispatch.ErrBadCapacity)

	reg, err := dispatch.NewRegistry(1)
	require.NoError(t, err)
	require.ErrorIs(t, reg.Register(nil), dispatch.ErrNilDoer)
	require.NoError(t, reg.Register(&dispatch.First{}))
	require.ErrorIs(t, reg.Register(&dispatch.Second{}), dispatch.ErrRegistryFull)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 1, reg.Cap())

	require.ErrorIs(t, dispatch.RunDynamic(io.Discard, nil), dispatch.ErrNilRegistry)
}

func TestWriteErrorsPropagate(t *testing.T) {
	t.Parallel()

	err := dispatch.RunDynamic(failingWriter{}, dispatch.NewDefaultRegistry())
	require.ErrorIs(t, err, errWrite)
	assert.Contains(t, err.Error(), "RunDynamic(first)")

	err = dispatch.RunStatic2(failingWriter{}, dispatch.First{}, dispatch.Second{})
	require.ErrorIs(t, err, errWrite)
	assert.Contains(t, err.Error(), "Invoke(first)")
}

func TestNilVariantPointersRejected(t *testing.T) {
	t.Parallel()

	reg, err := dispatch.NewRegistry(2)
	require.NoError(t, err)
	require.ErrorIs(t, reg.Register((*dispatch.First)(nil)), dispatch.ErrNilDoer)
	require.ErrorIs(t, reg.Register((*dispatch.Second)(nil)), dispatch.ErrNilDoer)
	assert.Zero(t, reg.Len())

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, dispatch.RunDynamic(&buf, reg))
	})
	assert.Empty(t, buf.String())

	require.ErrorIs(t, dispatch.Invoke(&buf, (*dispatch.First)(nil)), dispatch.ErrNilDoer)
	err = dispatch.RunStatic2(&buf, dispatch.First{}, (*dispatch.Second)(nil))
	require.ErrorIs(t, err, dispatch.ErrNilDoer)
	assert.Equal(t, "first: doing something\n", buf.String())

	// non-nil pointers still register and run
	require.NoError(t, reg.Register(&dispatch.First{}))
	require.NoError(t, dispatch.Invoke(io.Discard, &dispatch.Second{}))
}
