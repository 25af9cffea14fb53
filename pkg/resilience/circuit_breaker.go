// Package resilience содержит механизмы обеспечения отказоустойчивости.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"foodgram/pkg/logger"
)

// State представляет состояние Circuit Breaker.
type State int

// Состояния Circuit Breaker.
const (
	// StateClosed - запросы проходят.
	StateClosed State = iota
	// StateOpen - запросы отклоняются до истечения OpenTimeout.
	StateOpen
	// StateHalfOpen - пропускаются пробные запросы.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// Константы для логирования.
const (
	LogBreakerTripped = "circuit breaker tripped"
	LogBreakerReset   = "circuit breaker reset"
	LogBreakerProbe   = "circuit breaker allowing probe"
)

// ErrCircuitOpen возвращается, пока Circuit Breaker открыт.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Config содержит настройки Circuit Breaker.
type Config struct {
	// FailureThreshold - число ошибок подряд, после которого breaker открывается.
	FailureThreshold int
	// OpenTimeout - время в открытом состоянии до пробного запроса.
	OpenTimeout time.Duration
	// SuccessThreshold - число успешных пробных запросов для закрытия.
	SuccessThreshold int
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		OpenTimeout:      10 * time.Second,
		SuccessThreshold: 2,
	}
}

// CircuitBreaker реализует паттерн Circuit Breaker.
type CircuitBreaker struct {
	name   string
	config Config
	now    func() time.Time

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
}

// NewCircuitBreaker создает Circuit Breaker с именем name для логов.
func NewCircuitBreaker(name string, config Config) *CircuitBreaker {
	return &CircuitBreaker{
		name:   name,
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
}

// Execute выполняет fn, если breaker пропускает запрос, и учитывает результат.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if !cb.allow(ctx) {
		return ErrCircuitOpen
	}

	err := fn()
	cb.record(ctx, err)
	return err
}

// State возвращает текущее состояние.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) allow(ctx context.Context) bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if cb.now().Sub(cb.openedAt) < cb.config.OpenTimeout {
		return false
	}

	cb.state = StateHalfOpen
	cb.successes = 0
	logger.Log(ctx).Info(ctx, LogBreakerProbe, zap.String("circuit_breaker", cb.name))
	return true
}

func (cb *CircuitBreaker) record(ctx context.Context, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	log := logger.Log(ctx).With(zap.String("circuit_breaker", cb.name))

	if err != nil {
		cb.failures++
		if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
			if cb.state != StateOpen {
				log.Warn(ctx, LogBreakerTripped, zap.Int("failures", cb.failures), zap.Error(err))
			}
			cb.state = StateOpen
			cb.openedAt = cb.now()
		}
		return
	}

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.failures = 0
			cb.successes = 0
			log.Info(ctx, LogBreakerReset)
		}
	}
}
