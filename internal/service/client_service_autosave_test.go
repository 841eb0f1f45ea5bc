package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/connectivity"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/mock"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

const testAppID = "app-42"

// testDelays compresses the debounce policy to test scale. The ratios match
// the production defaults: Fast is well under ActivityThreshold, Slow is well
// over it.
func testDelays() AutosaveDelays {
	return AutosaveDelays{
		Fast:              30 * time.Millisecond,
		Slow:              400 * time.Millisecond,
		ActivityThreshold: 100 * time.Millisecond,
		SavedDisplay:      50 * time.Millisecond,
		WriteTimeout:      time.Second,
	}
}

type coordinatorFixture struct {
	remote  *mock.MockRemoteAnswerStore
	local   *mock.MockSnapshotRepository
	monitor *connectivity.ManualMonitor
	coord   AutosaveCoordinator
}

func newCoordinatorFixture(t *testing.T, online bool, delays AutosaveDelays) *coordinatorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &coordinatorFixture{
		remote:  mock.NewMockRemoteAnswerStore(ctrl),
		local:   mock.NewMockSnapshotRepository(ctrl),
		monitor: connectivity.NewManualMonitor(online),
	}
	f.coord = NewAutosaveCoordinator(testAppID, f.remote, f.local, f.monitor, delays, logger.Nop())
	t.Cleanup(f.coord.Close)
	return f
}

// statusRecorder captures every status transition for later assertions.
type statusRecorder struct {
	mu   sync.Mutex
	seen []models.SaveStatus
}

func (r *statusRecorder) record(s models.SaveStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, s)
}

func (r *statusRecorder) statuses() []models.SaveStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SaveStatus(nil), r.seen...)
}

// ── Seed ─────────────────────────────────────────────────────────────────────

func TestAutosaveCoordinator_Seed_RemoteAuthoritative(t *testing.T) {
	f := newCoordinatorFixture(t, true, testDelays())

	remoteAnswers := models.AnswerSet{"q1": models.TextAnswer("remote")}
	f.remote.EXPECT().FetchAnswers(gomock.Any(), testAppID).
		Return(models.AnswerRecord{ApplicationID: testAppID, Answers: remoteAnswers, UpdatedAt: time.Now()}, nil)
	f.local.EXPECT().GetSnapshot(gomock.Any(), testAppID).
		Return(models.LocalSnapshot{}, store.ErrSnapshotNotFound)

	require.NoError(t, f.coord.Seed(context.Background()))
	assert.True(t, f.coord.Answers().Equal(remoteAnswers))
	assert.Equal(t, models.SaveStatusIdle, f.coord.Status())
}

func TestAutosaveCoordinator_Seed_NewerSnapshotWinsAndIsPushed(t *testing.T) {
	f := newCoordinatorFixture(t, true, testDelays())

	remoteAt := time.Now().Add(-time.Hour)
	localAnswers := models.AnswerSet{"q1": models.TextAnswer("rescued edit")}

	f.remote.EXPECT().FetchAnswers(gomock.Any(), testAppID).
		Return(models.AnswerRecord{Answers: models.AnswerSet{"q1": models.TextAnswer("stale")}, UpdatedAt: remoteAt}, nil)
	f.local.EXPECT().GetSnapshot(gomock.Any(), testAppID).
		Return(models.LocalSnapshot{Answers: localAnswers, UpdatedAt: remoteAt.Add(time.Minute)}, nil)

	var pushed atomic.Int32
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, answers models.AnswerSet) (time.Time, error) {
			require.True(t, answers.Equal(localAnswers))
			pushed.Add(1)
			return time.Now(), nil
		})
	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()

	require.NoError(t, f.coord.Seed(context.Background()))
	assert.True(t, f.coord.Answers().Equal(localAnswers))

	// спасённые правки должны уйти на сервер сами, без новых Update
	require.Eventually(t, func() bool { return pushed.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestAutosaveCoordinator_Seed_TimestampTieRemoteWins(t *testing.T) {
	f := newCoordinatorFixture(t, true, testDelays())

	at := time.Now()
	remoteAnswers := models.AnswerSet{"q1": models.TextAnswer("remote")}

	f.remote.EXPECT().FetchAnswers(gomock.Any(), testAppID).
		Return(models.AnswerRecord{Answers: remoteAnswers, UpdatedAt: at}, nil)
	f.local.EXPECT().GetSnapshot(gomock.Any(), testAppID).
		Return(models.LocalSnapshot{Answers: models.AnswerSet{"q1": models.TextAnswer("local")}, UpdatedAt: at}, nil)

	require.NoError(t, f.coord.Seed(context.Background()))
	assert.True(t, f.coord.Answers().Equal(remoteAnswers))
}

func TestAutosaveCoordinator_Seed_FreshApplication(t *testing.T) {
	f := newCoordinatorFixture(t, true, testDelays())

	f.remote.EXPECT().FetchAnswers(gomock.Any(), testAppID).
		Return(models.AnswerRecord{}, adapter.ErrNotFound)
	f.local.EXPECT().GetSnapshot(gomock.Any(), testAppID).
		Return(models.LocalSnapshot{}, store.ErrSnapshotNotFound)

	require.NoError(t, f.coord.Seed(context.Background()))
	assert.Empty(t, f.coord.Answers())
}

func TestAutosaveCoordinator_Seed_RemoteUnreachableFallsBackToSnapshot(t *testing.T) {
	f := newCoordinatorFixture(t, false, testDelays())

	localAnswers := models.AnswerSet{"q1": models.TextAnswer("offline draft")}
	f.remote.EXPECT().FetchAnswers(gomock.Any(), testAppID).
		Return(models.AnswerRecord{}, errors.New("connection refused"))
	f.local.EXPECT().GetSnapshot(gomock.Any(), testAppID).
		Return(models.LocalSnapshot{Answers: localAnswers, UpdatedAt: time.Now()}, nil)

	require.NoError(t, f.coord.Seed(context.Background()))
	assert.True(t, f.coord.Answers().Equal(localAnswers))
}

func TestAutosaveCoordinator_Seed_UnreachableRescueIsPushed(t *testing.T) {
	f := newCoordinatorFixture(t, true, testDelays())

	localAnswers := models.AnswerSet{"q1": models.TextAnswer("rescued")}
	f.remote.EXPECT().FetchAnswers(gomock.Any(), testAppID).
		Return(models.AnswerRecord{}, errors.New("connection refused"))
	f.local.EXPECT().GetSnapshot(gomock.Any(), testAppID).
		Return(models.LocalSnapshot{Answers: localAnswers, UpdatedAt: time.Now()}, nil)
	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()

	var pushed atomic.Int32
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, answers models.AnswerSet) (time.Time, error) {
			require.True(t, answers.Equal(localAnswers))
			pushed.Add(1)
			return time.Now(), nil
		})

	require.NoError(t, f.coord.Seed(context.Background()))

	// сбой fetch был временным, связь уже есть: черновик должен уйти сам,
	// без ожидания следующей правки
	require.Eventually(t, func() bool { return pushed.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestAutosaveCoordinator_Seed_RemoteUnreachableNoSnapshot(t *testing.T) {
	f := newCoordinatorFixture(t, false, testDelays())

	f.remote.EXPECT().FetchAnswers(gomock.Any(), testAppID).
		Return(models.AnswerRecord{}, errors.New("connection refused"))
	f.local.EXPECT().GetSnapshot(gomock.Any(), testAppID).
		Return(models.LocalSnapshot{}, store.ErrSnapshotNotFound)

	require.Error(t, f.coord.Seed(context.Background()))
}

// ── Debounce ─────────────────────────────────────────────────────────────────

func TestAutosaveCoordinator_Update_BurstUsesFastWindow(t *testing.T) {
	delays := testDelays()
	delays.Slow = time.Second
	f := newCoordinatorFixture(t, true, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()

	var saved atomic.Int32
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		DoAndReturn(func(context.Context, string, models.AnswerSet) (time.Time, error) {
			saved.Add(1)
			return time.Now(), nil
		}).MinTimes(1)

	start := time.Now()
	f.coord.Update("q1", models.TextAnswer("h"))
	f.coord.Update("q1", models.TextAnswer("he")) // в пределах окна активности

	require.Eventually(t, func() bool { return saved.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Less(t, time.Since(start), delays.Slow, "a burst of edits must be saved by the fast window")
}

func TestAutosaveCoordinator_Update_IsolatedEditUsesSlowWindow(t *testing.T) {
	delays := testDelays()
	delays.Slow = 300 * time.Millisecond
	f := newCoordinatorFixture(t, true, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()

	var saved atomic.Int32
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		DoAndReturn(func(context.Context, string, models.AnswerSet) (time.Time, error) {
			saved.Add(1)
			return time.Now(), nil
		}).MinTimes(1)

	f.coord.Update("q1", models.TextAnswer("lone edit"))

	// первый ввод сессии — одиночный: быстрый таймер стоять не должен
	time.Sleep(120 * time.Millisecond)
	assert.Zero(t, saved.Load(), "an isolated edit must wait for the slow window")

	require.Eventually(t, func() bool { return saved.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestAutosaveCoordinator_Update_ReArmsPendingTimer(t *testing.T) {
	delays := testDelays()
	f := newCoordinatorFixture(t, true, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()

	var mu sync.Mutex
	var got []models.AnswerSet
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, answers models.AnswerSet) (time.Time, error) {
			mu.Lock()
			got = append(got, answers)
			mu.Unlock()
			return time.Now(), nil
		}).MinTimes(1)

	f.coord.Update("q1", models.TextAnswer("v1"))
	f.coord.Update("q1", models.TextAnswer("v2"))
	f.coord.Update("q1", models.TextAnswer("v3"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) >= 1
	}, 2*time.Second, 5*time.Millisecond)

	// единственная передача несёт последнее состояние, промежуточные не шлются
	mu.Lock()
	defer mu.Unlock()
	require.True(t, got[0].Equal(models.AnswerSet{"q1": models.TextAnswer("v3")}))
}

// ── Idempotence ──────────────────────────────────────────────────────────────

func TestAutosaveCoordinator_Flush_SkipsUnchangedAnswers(t *testing.T) {
	f := newCoordinatorFixture(t, true, testDelays())

	remoteAnswers := models.AnswerSet{"q1": models.TextAnswer("remote")}
	f.remote.EXPECT().FetchAnswers(gomock.Any(), testAppID).
		Return(models.AnswerRecord{Answers: remoteAnswers, UpdatedAt: time.Now()}, nil)
	f.local.EXPECT().GetSnapshot(gomock.Any(), testAppID).
		Return(models.LocalSnapshot{}, store.ErrSnapshotNotFound)
	// никаких SaveAnswers: отпечаток совпадает с последним подтверждённым

	require.NoError(t, f.coord.Seed(context.Background()))
	require.NoError(t, f.coord.Flush(context.Background()))
	assert.Equal(t, models.SaveStatusSaved, f.coord.Status())
}

func TestAutosaveCoordinator_Flush_PushesOnce(t *testing.T) {
	delays := testDelays()
	delays.Fast = time.Hour
	delays.Slow = time.Hour
	f := newCoordinatorFixture(t, true, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		Return(time.Now(), nil).
		Times(1)

	f.coord.Update("q1", models.TextAnswer("v"))

	require.NoError(t, f.coord.Flush(context.Background()))
	// повторный Flush без новых правок не ретранслирует
	require.NoError(t, f.coord.Flush(context.Background()))
}

func TestAutosaveCoordinator_MidFlightEditKeepsNewerDraft(t *testing.T) {
	delays := testDelays()
	delays.Fast = time.Hour
	delays.Slow = time.Hour
	f := newCoordinatorFixture(t, true, delays)

	var mu sync.Mutex
	var cached []models.AnswerSet
	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snapshot models.LocalSnapshot) error {
			mu.Lock()
			cached = append(cached, snapshot.Answers)
			mu.Unlock()
			return nil
		}).AnyTimes()

	inFlight := make(chan struct{})
	release := make(chan struct{})
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		DoAndReturn(func(context.Context, string, models.AnswerSet) (time.Time, error) {
			close(inFlight)
			<-release
			return time.Now(), nil
		})

	f.coord.Update("q1", models.TextAnswer("v1"))

	flushDone := make(chan error, 1)
	go func() { flushDone <- f.coord.Flush(context.Background()) }()

	// правка во время передачи уже положила свежий черновик в кеш
	<-inFlight
	f.coord.Update("q1", models.TextAnswer("v2"))
	close(release)

	require.NoError(t, <-flushDone)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, cached)
	last := cached[len(cached)-1]
	assert.True(t, last.Equal(models.AnswerSet{"q1": models.TextAnswer("v2")}),
		"the newer draft must survive the post-save cache refresh")
}

// ── Offline ──────────────────────────────────────────────────────────────────

func TestAutosaveCoordinator_OfflineQueuesAndRetransmitsOnReconnect(t *testing.T) {
	delays := testDelays()
	delays.Fast = time.Hour
	delays.Slow = time.Hour
	f := newCoordinatorFixture(t, false, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()

	var saved atomic.Int32
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, answers models.AnswerSet) (time.Time, error) {
			require.True(t, answers.Equal(models.AnswerSet{"q1": models.TextAnswer("offline edit")}))
			saved.Add(1)
			return time.Now(), nil
		}).Times(1)

	f.coord.Update("q1", models.TextAnswer("offline edit"))

	err := f.coord.Flush(context.Background())
	require.ErrorIs(t, err, ErrOffline)
	assert.Equal(t, models.SaveStatusError, f.coord.Status())
	assert.Zero(t, saved.Load())

	f.monitor.SetOnline(true)
	require.Eventually(t, func() bool { return saved.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestAutosaveCoordinator_ReconnectWithoutPendingDoesNothing(t *testing.T) {
	f := newCoordinatorFixture(t, false, testDelays())

	// ни одного вызова SaveAnswers не ожидается
	f.monitor.SetOnline(true)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, models.SaveStatusIdle, f.coord.Status())
}

// ── Status machine ───────────────────────────────────────────────────────────

func TestAutosaveCoordinator_StatusSequenceOnSuccessfulSave(t *testing.T) {
	delays := testDelays()
	delays.Fast = time.Hour
	delays.Slow = time.Hour
	f := newCoordinatorFixture(t, true, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).Return(time.Now(), nil)

	rec := &statusRecorder{}
	f.coord.SetStatusListener(rec.record)

	f.coord.Update("q1", models.TextAnswer("v"))
	require.NoError(t, f.coord.Flush(context.Background()))

	// после окна показа "saved" статус сам возвращается в idle
	require.Eventually(t, func() bool {
		return f.coord.Status() == models.SaveStatusIdle
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, []models.SaveStatus{
		models.SaveStatusSaving,
		models.SaveStatusSaved,
		models.SaveStatusIdle,
	}, rec.statuses())
}

func TestAutosaveCoordinator_StatusErrorOnFailedSaveThenRetry(t *testing.T) {
	delays := testDelays()
	delays.Fast = time.Hour
	delays.Slow = time.Hour
	f := newCoordinatorFixture(t, true, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()

	boom := errors.New("server exploded")
	first := f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).Return(time.Time{}, boom)
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).Return(time.Now(), nil).After(first)

	f.coord.Update("q1", models.TextAnswer("v"))

	err := f.coord.Flush(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, models.SaveStatusError, f.coord.Status())

	// явный повтор после ошибки должен пройти
	require.NoError(t, f.coord.Flush(context.Background()))
	assert.Equal(t, models.SaveStatusSaved, f.coord.Status())
}

func TestAutosaveCoordinator_RevertLeavesNewerStatusAlone(t *testing.T) {
	delays := testDelays()
	delays.Fast = time.Hour
	delays.Slow = time.Hour
	delays.SavedDisplay = 40 * time.Millisecond
	f := newCoordinatorFixture(t, true, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()
	first := f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).Return(time.Now(), nil)
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).
		Return(time.Time{}, errors.New("later failure")).After(first)

	f.coord.Update("q1", models.TextAnswer("v1"))
	require.NoError(t, f.coord.Flush(context.Background()))

	f.coord.Update("q1", models.TextAnswer("v2"))
	require.Error(t, f.coord.Flush(context.Background()))

	// отложенный возврат из "saved" не должен затирать свежий "error"
	time.Sleep(3 * delays.SavedDisplay)
	assert.Equal(t, models.SaveStatusError, f.coord.Status())
}

// ── Complete ─────────────────────────────────────────────────────────────────

func TestAutosaveCoordinator_Complete_FlushesSubmitsAndDropsDraft(t *testing.T) {
	delays := testDelays()
	delays.Fast = time.Hour
	delays.Slow = time.Hour
	f := newCoordinatorFixture(t, true, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()
	f.remote.EXPECT().SaveAnswers(gomock.Any(), testAppID, gomock.Any()).Return(time.Now(), nil)
	f.remote.EXPECT().SubmitApplication(gomock.Any(), testAppID).Return(nil)
	f.local.EXPECT().DeleteSnapshot(gomock.Any(), testAppID).Return(nil)

	f.coord.Update("q1", models.TextAnswer("final"))
	require.NoError(t, f.coord.Complete(context.Background()))
}

func TestAutosaveCoordinator_Complete_RefusesWithUnsavedAnswers(t *testing.T) {
	delays := testDelays()
	delays.Fast = time.Hour
	delays.Slow = time.Hour
	f := newCoordinatorFixture(t, false, delays)

	f.local.EXPECT().SaveSnapshot(gomock.Any(), testAppID, gomock.Any()).Return(nil).AnyTimes()
	// ни SubmitApplication, ни DeleteSnapshot вызываться не должны

	f.coord.Update("q1", models.TextAnswer("stranded"))

	err := f.coord.Complete(context.Background())
	require.ErrorIs(t, err, ErrUnsavedAnswers)
	require.ErrorIs(t, err, ErrOffline)
}

// ── Close ────────────────────────────────────────────────────────────────────

func TestAutosaveCoordinator_Close_StopsEverything(t *testing.T) {
	f := newCoordinatorFixture(t, true, testDelays())

	f.coord.Close()

	// после Close правки игнорируются и явный сброс отклоняется
	f.coord.Update("q1", models.TextAnswer("too late"))
	require.ErrorIs(t, f.coord.Flush(context.Background()), ErrCoordinatorClosed)
	assert.Empty(t, f.coord.Answers())

	f.coord.Close() // повторный Close безопасен
}
