package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository"
)

type fakeAttendanceRepo struct {
	mu       sync.Mutex
	checkIns map[string]domain.AttendanceRecord
	pickups  map[string]domain.PickupRecord
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		checkIns: make(map[string]domain.AttendanceRecord),
		pickups:  make(map[string]domain.PickupRecord),
	}
}

func ledgerKey(participantID uint, day domain.EventDay) string {
	return fmt.Sprintf("%d|%s", participantID, day)
}

func (r *fakeAttendanceRepo) RecordCheckIn(_ context.Context, participantID uint, day domain.EventDay, at time.Time, _ int) (domain.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ledgerKey(participantID, day)
	if _, ok := r.checkIns[key]; ok {
		return domain.AttendanceRecord{}, repository.ErrAlreadyCheckedIn
	}

	record := domain.AttendanceRecord{
		ID:            uint(len(r.checkIns) + 1),
		ParticipantID: participantID,
		EventDay:      day,
		CheckedInAt:   at,
	}
	r.checkIns[key] = record

	return record, nil
}

func (r *fakeAttendanceRepo) RecordPickup(_ context.Context, participantID uint, day domain.EventDay, at time.Time, pickupPerson string) (domain.PickupRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ledgerKey(participantID, day)
	if _, ok := r.pickups[key]; ok {
		return domain.PickupRecord{}, repository.ErrAlreadyPickedUp
	}

	record := domain.PickupRecord{
		ID:            uint(len(r.pickups) + 1),
		ParticipantID: participantID,
		EventDay:      day,
		PickedUpAt:    at,
		PickupPerson:  pickupPerson,
	}
	r.pickups[key] = record

	return record, nil
}

func (r *fakeAttendanceRepo) FindCheckIn(_ context.Context, participantID uint, day domain.EventDay) (domain.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.checkIns[ledgerKey(participantID, day)]
	if !ok {
		return domain.AttendanceRecord{}, repository.ErrCheckInNotFound
	}

	return record, nil
}

func (r *fakeAttendanceRepo) FindPickupCode(_ context.Context, participantID uint, day domain.EventDay) (domain.PickupCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.checkIns[ledgerKey(participantID, day)]; !ok {
		return domain.PickupCode{}, repository.ErrCheckInNotFound
	}

	return domain.PickupCode{
		ParticipantID: participantID,
		EventDay:      day,
		Code:          54321,
	}, nil
}

func (r *fakeAttendanceRepo) FindPickup(_ context.Context, participantID uint, day domain.EventDay) (domain.PickupRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.pickups[ledgerKey(participantID, day)]
	if !ok {
		return domain.PickupRecord{}, repository.ErrPickupNotFound
	}

	return record, nil
}

type fakeParticipantRepo struct {
	participants map[uint]domain.Participant
}

func (r *fakeParticipantRepo) FindByID(_ context.Context, id uint) (domain.Participant, error) {
	participant, ok := r.participants[id]
	if !ok {
		return domain.Participant{}, repository.ErrParticipantNotFound
	}

	return participant, nil
}

type countingNotifier struct {
	mu       sync.Mutex
	checkIns int
	pickups  int
}

func (n *countingNotifier) NotifyCheckIn(domain.Participant, domain.EventDay, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.checkIns++
}

func (n *countingNotifier) NotifyPickup(domain.Participant, domain.EventDay, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pickups++
}

func (n *countingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.checkIns, n.pickups
}

type fixedIssuer struct {
	code int
}

func (i fixedIssuer) Issue() int {
	return i.code
}

func newTestService(t *testing.T, repo *fakeAttendanceRepo, notifier *countingNotifier, now time.Time) *AttendanceService {
	t.Helper()

	calendar, err := domain.NewCalendar([]string{"04-08-2026", "05-08-2026", "06-08-2026", "07-08-2026", "08-08-2026"})
	require.NoError(t, err)

	participants := &fakeParticipantRepo{
		participants: map[uint]domain.Participant{
			7: {
				ID:               7,
				FirstName:        "Ama",
				LastName:         "Mensah",
				PrimaryContactNo: "0244000000",
			},
		},
	}

	return NewAttendanceService(calendar, participants, repo, fixedIssuer{code: 54321}, notifier, func() time.Time {
		return now
	})
}

var eventMorning = time.Date(2026, 8, 4, 8, 30, 0, 0, time.UTC)

func TestAttendanceService_Admit(t *testing.T) {
	t.Run("records attendance and issues a pickup code", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		notifier := &countingNotifier{}
		svc := newTestService(t, repo, notifier, eventMorning)

		result, err := svc.Admit(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, domain.Day1, result.EventDay)
		assert.Equal(t, 54321, result.PickupCode)
		assert.False(t, result.AlreadyRecorded)
		assert.Equal(t, eventMorning, result.CheckedInAt)

		checkIns, _ := notifier.counts()
		assert.Equal(t, 1, checkIns)
	})

	t.Run("repeat admit is a no-op with no second SMS", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		notifier := &countingNotifier{}
		svc := newTestService(t, repo, notifier, eventMorning)

		_, err := svc.Admit(context.Background(), 7)
		require.NoError(t, err)

		result, err := svc.Admit(context.Background(), 7)
		require.NoError(t, err)

		assert.True(t, result.AlreadyRecorded)
		assert.Equal(t, domain.Day1, result.EventDay)
		assert.Zero(t, result.PickupCode)

		checkIns, _ := notifier.counts()
		assert.Equal(t, 1, checkIns)
		assert.Len(t, repo.checkIns, 1)
	})

	t.Run("rejects non-event dates", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		notifier := &countingNotifier{}
		svc := newTestService(t, repo, notifier, time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC))

		_, err := svc.Admit(context.Background(), 7)
		assert.ErrorIs(t, err, ErrNotEventDate)

		checkIns, _ := notifier.counts()
		assert.Zero(t, checkIns)
	})

	t.Run("rejects unknown participants", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(t, repo, &countingNotifier{}, eventMorning)

		_, err := svc.Admit(context.Background(), 999)
		assert.ErrorIs(t, err, ErrParticipantNotFound)
		assert.Empty(t, repo.checkIns)
	})

	t.Run("admits on different days independently", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		notifier := &countingNotifier{}

		day1 := newTestService(t, repo, notifier, eventMorning)
		_, err := day1.Admit(context.Background(), 7)
		require.NoError(t, err)

		day2 := newTestService(t, repo, notifier, eventMorning.AddDate(0, 0, 1))
		result, err := day2.Admit(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, domain.Day2, result.EventDay)
		assert.False(t, result.AlreadyRecorded)
		assert.Len(t, repo.checkIns, 2)
	})

	t.Run("concurrent admits record exactly once", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		notifier := &countingNotifier{}
		svc := newTestService(t, repo, notifier, eventMorning)

		const attempts = 20
		results := make([]domain.CheckInResult, attempts)

		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				result, err := svc.Admit(context.Background(), 7)
				assert.NoError(t, err)
				results[i] = result
			}(i)
		}
		wg.Wait()

		fresh := 0
		for _, result := range results {
			if !result.AlreadyRecorded {
				fresh++
			}
		}
		assert.Equal(t, 1, fresh)
		assert.Len(t, repo.checkIns, 1)

		checkIns, _ := notifier.counts()
		assert.Equal(t, 1, checkIns)
	})
}

func TestAttendanceService_Status(t *testing.T) {
	t.Run("reports a participant not yet checked in", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(t, repo, &countingNotifier{}, eventMorning)

		status, err := svc.Status(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, domain.Day1, status.EventDay)
		assert.False(t, status.CheckedIn)
		assert.False(t, status.PickedUp)
		assert.Zero(t, status.PickupCode)
	})

	t.Run("reports check-in, code and pickup once recorded", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(t, repo, &countingNotifier{}, eventMorning)

		_, err := svc.Admit(context.Background(), 7)
		require.NoError(t, err)
		_, err = svc.Pickup(context.Background(), 7, "Kofi Mensah")
		require.NoError(t, err)

		status, err := svc.Status(context.Background(), 7)
		require.NoError(t, err)

		assert.True(t, status.CheckedIn)
		assert.Equal(t, 54321, status.PickupCode)
		assert.True(t, status.PickedUp)
		assert.Equal(t, "Kofi Mensah", status.PickupPerson)
		require.NotNil(t, status.CheckedInAt)
		assert.Equal(t, eventMorning, *status.CheckedInAt)
	})

	t.Run("rejects non-event dates", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(t, repo, &countingNotifier{}, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))

		_, err := svc.Status(context.Background(), 7)
		assert.ErrorIs(t, err, ErrNotEventDate)
	})

	t.Run("rejects unknown participants", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(t, repo, &countingNotifier{}, eventMorning)

		_, err := svc.Status(context.Background(), 999)
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})
}

func TestAttendanceService_Pickup(t *testing.T) {
	t.Run("records pickup with the collector's name", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		notifier := &countingNotifier{}
		svc := newTestService(t, repo, notifier, eventMorning)

		result, err := svc.Pickup(context.Background(), 7, "Kofi Mensah")
		require.NoError(t, err)

		assert.Equal(t, domain.Day1, result.EventDay)
		assert.Equal(t, "Kofi Mensah", result.PickupPerson)
		assert.False(t, result.AlreadyRecorded)

		_, pickups := notifier.counts()
		assert.Equal(t, 1, pickups)
	})

	t.Run("repeat pickup is a no-op with no second SMS", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		notifier := &countingNotifier{}
		svc := newTestService(t, repo, notifier, eventMorning)

		_, err := svc.Pickup(context.Background(), 7, "Kofi Mensah")
		require.NoError(t, err)

		result, err := svc.Pickup(context.Background(), 7, "Someone Else")
		require.NoError(t, err)

		assert.True(t, result.AlreadyRecorded)
		assert.Len(t, repo.pickups, 1)
		assert.Equal(t, "Kofi Mensah", repo.pickups[ledgerKey(7, domain.Day1)].PickupPerson)

		_, pickups := notifier.counts()
		assert.Equal(t, 1, pickups)
	})

	t.Run("requires a pickup person name", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(t, repo, &countingNotifier{}, eventMorning)

		_, err := svc.Pickup(context.Background(), 7, "   ")
		assert.ErrorIs(t, err, ErrMissingPickupPerson)
		assert.Empty(t, repo.pickups)
	})

	t.Run("rejects non-event dates", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(t, repo, &countingNotifier{}, time.Date(2026, 12, 25, 9, 0, 0, 0, time.UTC))

		_, err := svc.Pickup(context.Background(), 7, "Kofi Mensah")
		assert.ErrorIs(t, err, ErrNotEventDate)
	})

	t.Run("rejects unknown participants", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(t, repo, &countingNotifier{}, eventMorning)

		_, err := svc.Pickup(context.Background(), 999, "Kofi Mensah")
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("concurrent pickups record exactly once", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		notifier := &countingNotifier{}
		svc := newTestService(t, repo, notifier, eventMorning)

		const attempts = 10
		results := make([]domain.PickupResult, attempts)

		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				result, err := svc.Pickup(context.Background(), 7, fmt.Sprintf("Collector %d", i))
				assert.NoError(t, err)
				results[i] = result
			}(i)
		}
		wg.Wait()

		fresh := 0
		for _, result := range results {
			if !result.AlreadyRecorded {
				fresh++
			}
		}
		assert.Equal(t, 1, fresh)
		assert.Len(t, repo.pickups, 1)

		_, pickups := notifier.counts()
		assert.Equal(t, 1, pickups)
	})
}
