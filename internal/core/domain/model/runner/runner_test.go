package runner_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/runner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOnlineRunner(t *testing.T) *runner.Runner {
	t.Helper()
	r, err := runner.NewRunner(kernel.NewUUID(), "Sam")
	require.NoError(t, err)
	require.NoError(t, r.SetOnline())
	return r
}

func TestNewRunner(t *testing.T) {
	t.Run("should create an offline runner", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := runner.NewRunner(id, "Sam")

		require.NoError(t, err)
		assert.NoError(t, r.Validate())
		assert.Equal(t, id, r.ID())
		assert.Equal(t, "Sam", r.Name())
		assert.Equal(t, runner.Offline, r.Availability())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := runner.NewRunner(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, runner.ErrNameIsRequired)
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := runner.NewRunner(kernel.UUID{}, "Sam")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreRunner(t *testing.T) {
	t.Run("should restore with the persisted availability", func(t *testing.T) {
		r, err := runner.RestoreRunner(kernel.NewUUID(), "Sam", runner.Busy)

		require.NoError(t, err)
		assert.Equal(t, runner.Busy, r.Availability())
	})

	t.Run("should reject an invalid availability", func(t *testing.T) {
		_, err := runner.RestoreRunner(kernel.NewUUID(), "Sam", runner.AvailabilityUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRunner_Validate(t *testing.T) {
	t.Run("should reject nil runner", func(t *testing.T) {
		var r *runner.Runner

		err := r.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, runner.ErrRunnerIsNotConstructed)
	})

	t.Run("should reject zero value runner", func(t *testing.T) {
		err := (&runner.Runner{}).Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, runner.ErrRunnerIsNotConstructed)
	})
}

func TestRunner_Availability(t *testing.T) {
	t.Run("should toggle between offline and online", func(t *testing.T) {
		r, err := runner.NewRunner(kernel.NewUUID(), "Sam")
		require.NoError(t, err)

		require.NoError(t, r.SetOnline())
		assert.Equal(t, runner.Online, r.Availability())

		require.NoError(t, r.SetOffline())
		assert.Equal(t, runner.Offline, r.Availability())
	})

	t.Run("should mark an online runner busy", func(t *testing.T) {
		r := newOnlineRunner(t)

		err := r.MarkBusy()

		require.NoError(t, err)
		assert.Equal(t, runner.Busy, r.Availability())
	})

	t.Run("should not mark an offline runner busy", func(t *testing.T) {
		r, err := runner.NewRunner(kernel.NewUUID(), "Sam")
		require.NoError(t, err)

		err = r.MarkBusy()

		require.Error(t, err)
		assert.ErrorIs(t, err, runner.ErrRunnerNotOnline)
		assert.Equal(t, runner.Offline, r.Availability())
	})

	t.Run("should not mark a busy runner busy again", func(t *testing.T) {
		r := newOnlineRunner(t)
		require.NoError(t, r.MarkBusy())

		err := r.MarkBusy()

		require.Error(t, err)
		assert.ErrorIs(t, err, runner.ErrRunnerNotOnline)
	})

	t.Run("should keep a busy runner from going offline", func(t *testing.T) {
		r := newOnlineRunner(t)
		require.NoError(t, r.MarkBusy())

		err := r.SetOffline()

		require.Error(t, err)
		assert.ErrorIs(t, err, runner.ErrRunnerIsBusy)
		assert.Equal(t, runner.Busy, r.Availability())
	})

	t.Run("should keep a busy runner from toggling online", func(t *testing.T) {
		r := newOnlineRunner(t)
		require.NoError(t, r.MarkBusy())

		err := r.SetOnline()

		require.Error(t, err)
		assert.ErrorIs(t, err, runner.ErrRunnerIsBusy)
	})

	t.Run("should release a busy runner back to online", func(t *testing.T) {
		r := newOnlineRunner(t)
		require.NoError(t, r.MarkBusy())

		r.Release()

		assert.Equal(t, runner.Online, r.Availability())
	})

	t.Run("release is a no-op on a non-busy runner", func(t *testing.T) {
		r, err := runner.NewRunner(kernel.NewUUID(), "Sam")
		require.NoError(t, err)

		r.Release()

		assert.Equal(t, runner.Offline, r.Availability())
	})
}

func TestRunner_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		a, err := runner.NewRunner(kernel.NewUUID(), "Sam")
		require.NoError(t, err)
		b, err := runner.NewRunner(kernel.NewUUID(), "Sam")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(a))
		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}

func TestAvailabilityFromString(t *testing.T) {
	t.Run("should parse valid availabilities", func(t *testing.T) {
		cases := map[string]runner.Availability{
			"offline": runner.Offline,
			"online":  runner.Online,
			"busy":    runner.Busy,
		}

		for s, expected := range cases {
			a, err := runner.AvailabilityFromString(s)

			require.NoError(t, err)
			assert.Equal(t, expected, a)
			assert.Equal(t, s, a.String())
		}
	})

	t.Run("should reject unknown string", func(t *testing.T) {
		_, err := runner.AvailabilityFromString("away")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
