// Package notification mantiene el aviso transitorio que se muestra tras un alta de inventario.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL tiempo que permanece visible un aviso.
const DefaultTTL = 3 * time.Second

// Notification aviso visible para la capa de presentación.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notifier guarda como máximo un aviso activo. Publicar uno nuevo cancela el borrado
// programado del anterior, de modo que un borrado viejo nunca limpia un aviso más reciente.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
	timer   *time.Timer
	now     func() time.Time
}

// NewNotifier construye el notificador; ttl <= 0 usa DefaultTTL.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl, now: time.Now}
}

// Publish reemplaza el aviso actual y programa su borrado tras el TTL.
func (n *Notifier) Publish(message string) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	now := n.now()
	notif := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}
	n.current = &notif
	id := notif.ID
	n.timer = time.AfterFunc(n.ttl, func() { n.clear(id) })
	return notif
}

// Current devuelve el aviso activo, si lo hay.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

// Stop cancela el borrado pendiente (apagado del proceso).
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// clear borra el aviso solo si sigue siendo el que programó el borrado.
func (n *Notifier) clear(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.ID == id {
		n.current = nil
		n.timer = nil
	}
}
