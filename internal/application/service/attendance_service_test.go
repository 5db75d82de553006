package service

import (
	"context"
	"testing"

	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("Appends clock events in order", func(t *testing.T) {
		_, _, attendanceRepo := newTestRepos(t)
		svc := NewAttendanceService(attendanceRepo)

		in, err := svc.Record(ctx, "Dewi", enum.AttendanceClockIn)
		require.NoError(t, err)
		assert.NotEmpty(t, in.ID)
		assert.False(t, in.Date.IsZero())

		_, err = svc.Record(ctx, "Dewi", enum.AttendanceClockOut)
		require.NoError(t, err)

		log, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, log, 2)
		assert.Equal(t, enum.AttendanceClockIn, log[0].Status)
		assert.Equal(t, enum.AttendanceClockOut, log[1].Status)
	})

	t.Run("Rejects blank names and unknown statuses", func(t *testing.T) {
		_, _, attendanceRepo := newTestRepos(t)
		svc := NewAttendanceService(attendanceRepo)

		_, err := svc.Record(ctx, "   ", enum.AttendanceClockIn)
		assert.Error(t, err)

		_, err = svc.Record(ctx, "Dewi", enum.AttendanceStatus("ISTIRAHAT"))
		assert.Error(t, err)

		log, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, log)
	})
}
