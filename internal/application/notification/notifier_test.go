package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PublishYCurrent(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Stop()

	_, ok := n.Current()
	assert.False(t, ok, "sin avisos al iniciar")

	published := n.Publish(`Item "Bread" added to inventory.`)
	got, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, published, got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, time.Minute, got.ExpiresAt.Sub(got.CreatedAt))
}

func TestNotifier_SeBorraTrasElTTL(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)
	n.Publish("hola")

	require.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

// Un borrado programado para un aviso anterior no debe limpiar el aviso vigente.
func TestNotifier_BorradoObsoletoNoLimpiaAvisoNuevo(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Stop()

	first := n.Publish("primero")
	second := n.Publish("segundo")

	n.clear(first.ID)
	got, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)

	n.clear(second.ID)
	_, ok = n.Current()
	assert.False(t, ok)
}

func TestNotifier_PublicarReiniciaElTemporizador(t *testing.T) {
	n := NewNotifier(200 * time.Millisecond)
	defer n.Stop()

	n.Publish("primero")
	time.Sleep(120 * time.Millisecond)
	second := n.Publish("segundo")
	time.Sleep(120 * time.Millisecond) // el borrado del primero ya habría ocurrido

	got, ok := n.Current()
	require.True(t, ok, "el aviso nuevo debe seguir visible")
	assert.Equal(t, second.ID, got.ID)

	require.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewNotifier_TTLPorDefecto(t *testing.T) {
	n := NewNotifier(0)
	assert.Equal(t, DefaultTTL, n.ttl)
}
