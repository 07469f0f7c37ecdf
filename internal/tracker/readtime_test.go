package tracker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRecorder struct {
	mutex      sync.Mutex
	calls      int
	visitorKey string
	path       string
	minutes    int
	err        error
}

func (f *fakeRecorder) RecordReadTime(visitorKey, path string, readMinutes int) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.calls++
	f.visitorKey = visitorKey
	f.path = path
	f.minutes = readMinutes
	return f.err
}

func (f *fakeRecorder) callCount() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.calls
}

func TestReadTimeTracker_AcumulaTempoAtivo(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewReadTimeTracker(recorder, "abc123", "/articles/go-concurrency",
		WithTickInterval(5*time.Millisecond),
		WithIdleCutoff(time.Second),
	)

	tracker.Start()
	defer tracker.Stop()

	assert.Eventually(t, func() bool {
		return tracker.ActiveSeconds() >= 3
	}, time.Second, 5*time.Millisecond, "a contagem deveria acumular com o leitor ativo")
}

func TestReadTimeTracker_LeitorInativoNaoAcumula(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewReadTimeTracker(recorder, "abc123", "/articles/go-concurrency",
		WithTickInterval(5*time.Millisecond),
		WithIdleCutoff(time.Millisecond),
	)

	tracker.Start()
	defer tracker.Stop()

	// O primeiro tique só acontece após a janela de inatividade expirar
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, tracker.ActiveSeconds())
}

func TestReadTimeTracker_TouchRetomaContagem(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewReadTimeTracker(recorder, "abc123", "/articles/go-concurrency",
		WithTickInterval(5*time.Millisecond),
		WithIdleCutoff(30*time.Millisecond),
	)

	tracker.Start()
	defer tracker.Stop()

	// Espera a sessão ficar inativa
	time.Sleep(60 * time.Millisecond)
	paused := tracker.ActiveSeconds()

	tracker.Touch()

	assert.Eventually(t, func() bool {
		return tracker.ActiveSeconds() > paused
	}, time.Second, 5*time.Millisecond, "a contagem deveria retomar após atividade")
}

func TestReadTimeTracker_StopEnviaUmaUnicaVez(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewReadTimeTracker(recorder, "abc123", "/articles/go-concurrency",
		WithTickInterval(time.Hour),
	)

	tracker.Start()

	// 95 segundos ativos arredondam para 2 minutos
	tracker.mutex.Lock()
	tracker.activeSeconds = 95
	tracker.mutex.Unlock()

	tracker.Stop()
	assert.Equal(t, 1, recorder.callCount())
	assert.Equal(t, "abc123", recorder.visitorKey)
	assert.Equal(t, "/articles/go-concurrency", recorder.path)
	assert.Equal(t, 2, recorder.minutes)

	// Stop repetido não reenvia
	tracker.Stop()
	assert.Equal(t, 1, recorder.callCount())
}

func TestReadTimeTracker_SessaoCurtaNaoEnvia(t *testing.T) {
	recorder := &fakeRecorder{}
	tracker := NewReadTimeTracker(recorder, "abc123", "/articles/go-concurrency",
		WithTickInterval(time.Hour),
	)

	tracker.Start()

	// 20 segundos ativos arredondam para 0 minutos: nada a registrar
	tracker.mutex.Lock()
	tracker.activeSeconds = 20
	tracker.mutex.Unlock()

	tracker.Stop()
	assert.Equal(t, 0, recorder.callCount())
}

func TestReadTimeTracker_ErroDoRecorderNaoPropaga(t *testing.T) {
	recorder := &fakeRecorder{err: assert.AnError}
	tracker := NewReadTimeTracker(recorder, "abc123", "/articles/go-concurrency",
		WithTickInterval(time.Hour),
	)

	tracker.Start()

	tracker.mutex.Lock()
	tracker.activeSeconds = 120
	tracker.mutex.Unlock()

	// Falha de registro é apenas logada
	tracker.Stop()
	assert.Equal(t, 1, recorder.callCount())
}
