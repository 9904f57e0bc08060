package gate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// flag is a manually controlled condition.
type flag struct{ set bool }

func (f *flag) cond(ctx context.Context) (bool, error) { return f.set, nil }

func TestGroup_CompletesWhenAllMembersDo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	first, second := &flag{}, &flag{}
	grp, err := gate.NewGroup("startup", []*gate.Gate{
		gate.MustNew("first", first.cond),
		gate.MustNew("second", second.cond),
	})
	require.NoError(t, err)

	ok, err := grp.Poll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, grp.Pending())

	first.set = true
	ok, err = grp.Poll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, grp.Pending())

	second.set = true
	ok, err = grp.Poll(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, grp.IsFinished())
	assert.Zero(t, grp.Pending())
}

func TestGroup_HeadBlocksTail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	head, tail := &flag{}, &flag{set: true}
	grp, err := gate.NewGroup("fifo", []*gate.Gate{
		gate.MustNew("head", head.cond),
		gate.MustNew("tail", tail.cond),
	})
	require.NoError(t, err)

	// The already-true tail is not observed while the head is pending.
	ok, err := grp.Poll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, grp.Pending())

	head.set = true
	ok, err = grp.Poll(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGroup_MemberCallbacksFireOnMemberCompletion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	member := gate.MustNew("member", always)
	memberDone := false
	require.NoError(t, member.Then(func() error {
		memberDone = true
		return nil
	}))

	grp, err := gate.NewGroup("group", []*gate.Gate{member})
	require.NoError(t, err)

	groupDone := false
	require.NoError(t, grp.Then(func() error {
		groupDone = true
		return nil
	}))

	ok, err := grp.Poll(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, memberDone)
	assert.True(t, groupDone)
}

func TestGroup_AddAbsorbMovesCompletionCallbacks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	member := gate.MustNew("absorbed", always)
	fired := 0
	require.NoError(t, member.Then(func() error {
		fired++
		return nil
	}))

	pending := &flag{}
	grp, err := gate.NewGroup("absorbing", []*gate.Gate{
		gate.MustNew("pending", pending.cond),
	})
	require.NoError(t, err)
	require.NoError(t, grp.AddAbsorb(member))

	// The member completes, but its absorbed callback waits for the group.
	ok, err := grp.Poll(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, fired)

	pending.set = true
	ok, err = grp.Poll(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, fired)
}

func TestGroup_AddAbsorbRejectsGroups(t *testing.T) {
	t.Parallel()

	inner, err := gate.NewGroup("inner", nil)
	require.NoError(t, err)
	outer, err := gate.NewGroup("outer", nil)
	require.NoError(t, err)

	require.ErrorIs(t, outer.AddAbsorb(inner.Gate), gate.ErrAbsorbGroup)
	assert.Zero(t, outer.Pending(), "rejected member must not be added")
}

func TestGroup_AddAfterFinished(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	grp, err := gate.NewGroup("empty", nil)
	require.NoError(t, err)

	ok, err := grp.Poll(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	require.ErrorIs(t, grp.Add(gate.MustNew("late", always)), gate.ErrGateFinished)
}

func TestGroup_MemberErrorPropagates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	errMember := errors.New("member probe failed")
	grp, err := gate.NewGroup("failing member", []*gate.Gate{
		gate.MustNew("bad", func(ctx context.Context) (bool, error) {
			return false, errMember
		}),
	})
	require.NoError(t, err)

	ok, err := grp.Poll(ctx)
	require.ErrorIs(t, err, errMember)
	assert.False(t, ok)
}

func TestGroup_Wait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	grp, err := gate.NewGroup("waited", []*gate.Gate{
		gate.MustNew("a", after(2)),
		gate.MustNew("b", after(3)),
	}, gate.WithPollInterval(time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, grp.Wait(ctx, gate.WithTimeout(10*time.Second)))
	assert.True(t, grp.IsFinished())
}
