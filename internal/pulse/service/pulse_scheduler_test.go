package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPulseSchedulerStart(t *testing.T) {
	t.Run("empty spec disables the scheduler", func(t *testing.T) {
		f := newJobServiceFixture(nil)
		s := NewPulseScheduler(f.svc, testLogger(), "")

		err := s.Start(context.Background())
		require.NoError(t, err)
		assert.Empty(t, f.jobLogRepo.entries)
	})

	t.Run("invalid spec is rejected", func(t *testing.T) {
		f := newJobServiceFixture(nil)
		s := NewPulseScheduler(f.svc, testLogger(), "not a cron spec")

		err := s.Start(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid cron spec")
	})

	t.Run("valid spec starts and stops cleanly", func(t *testing.T) {
		f := newJobServiceFixture(nil)
		s := NewPulseScheduler(f.svc, testLogger(), "0 6 * * *")

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, s.Start(ctx))
		cancel()
	})
}
