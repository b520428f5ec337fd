package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFalha = errors.New("falha simulada")

func TestCircuitBreakerAbreEFecha(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      50 * time.Millisecond,
	})

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Execute(func() error { return errFalha }))
	}
	assert.Equal(t, CBOpen, cb.State())

	// Aberto: fast-fail sem executar a função
	executou := false
	err := cb.Execute(func() error { executou = true; return nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, executou)

	// Após o timeout entra em half-open e volta a fechar com sucessos
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreakerReabreSeProbeFalha(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		OpenTimeout:      10 * time.Millisecond,
	})

	require.Error(t, cb.Execute(func() error { return errFalha }))
	assert.Equal(t, CBOpen, cb.State())

	time.Sleep(20 * time.Millisecond)
	require.Error(t, cb.Execute(func() error { return errFalha }))
	assert.Equal(t, CBOpen, cb.State())
}

func TestCircuitBreakerSucessoZeraFalhas(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2})

	require.Error(t, cb.Execute(func() error { return errFalha }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.Error(t, cb.Execute(func() error { return errFalha }))

	// Uma falha após um sucesso não acumula com a anterior
	assert.Equal(t, CBClosed, cb.State())
}
