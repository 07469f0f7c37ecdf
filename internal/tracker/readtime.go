package tracker

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTickInterval = time.Second
	defaultIdleCutoff   = 30 * time.Second
)

// Recorder é o destino do tempo de leitura acumulado por uma sessão
type Recorder interface {
	RecordReadTime(visitorKey, path string, readMinutes int) error
}

// ReadTimeTracker acumula o tempo ativo de leitura de um artigo por sessão.
// A cada tique, o tempo só conta se houve atividade dentro da janela de
// inatividade. O total é enviado uma única vez ao Recorder, em minutos.
type ReadTimeTracker struct {
	recorder   Recorder
	visitorKey string
	path       string

	tickInterval time.Duration
	idleCutoff   time.Duration

	mutex         sync.Mutex
	activeSeconds int
	lastActivity  time.Time
	flushed       bool

	stopCh chan struct{}
	doneCh chan struct{}
}

// Option configura o tracker. Usada nos testes para encurtar os intervalos.
type Option func(*ReadTimeTracker)

// WithTickInterval altera o intervalo de contagem
func WithTickInterval(interval time.Duration) Option {
	return func(t *ReadTimeTracker) {
		t.tickInterval = interval
	}
}

// WithIdleCutoff altera a janela de inatividade que pausa a contagem
func WithIdleCutoff(cutoff time.Duration) Option {
	return func(t *ReadTimeTracker) {
		t.idleCutoff = cutoff
	}
}

// NewReadTimeTracker cria um tracker de tempo de leitura para uma sessão
func NewReadTimeTracker(recorder Recorder, visitorKey, path string, opts ...Option) *ReadTimeTracker {
	t := &ReadTimeTracker{
		recorder:     recorder,
		visitorKey:   visitorKey,
		path:         path,
		tickInterval: defaultTickInterval,
		idleCutoff:   defaultIdleCutoff,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start inicia a contagem de tempo ativo. A sessão começa ativa.
func (t *ReadTimeTracker) Start() {
	t.mutex.Lock()
	t.lastActivity = time.Now()
	t.mutex.Unlock()

	go t.run()
}

func (t *ReadTimeTracker) run() {
	defer close(t.doneCh)

	ticker := time.NewTicker(t.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
			t.mutex.Lock()
			// Leitor inativo não acumula tempo
			if time.Since(t.lastActivity) < t.idleCutoff {
				t.activeSeconds++
			}
			t.mutex.Unlock()
		}
	}
}

// Touch marca atividade do leitor e retoma a contagem quando pausada
func (t *ReadTimeTracker) Touch() {
	t.mutex.Lock()
	t.lastActivity = time.Now()
	t.mutex.Unlock()
}

// ActiveSeconds retorna o total de segundos ativos acumulados até o momento
func (t *ReadTimeTracker) ActiveSeconds() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.activeSeconds
}

// Stop encerra a contagem e envia o total acumulado ao Recorder.
// Chamadas subsequentes não reenviam: o flush acontece uma única vez.
func (t *ReadTimeTracker) Stop() {
	t.mutex.Lock()
	if t.flushed {
		t.mutex.Unlock()
		return
	}
	t.flushed = true
	t.mutex.Unlock()

	close(t.stopCh)
	<-t.doneCh

	t.flush()
}

func (t *ReadTimeTracker) flush() {
	t.mutex.Lock()
	seconds := t.activeSeconds
	t.mutex.Unlock()

	// Arredonda para o minuto mais próximo; sessões muito curtas não contam
	minutes := (seconds + 30) / 60
	if minutes == 0 {
		return
	}

	if err := t.recorder.RecordReadTime(t.visitorKey, t.path, minutes); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"visitor_key": t.visitorKey,
			"path":        t.path,
		}).Warn("Erro ao registrar tempo de leitura")
	}
}
