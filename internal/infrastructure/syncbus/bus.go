// Package syncbus implementa el canal de sincronización de stock entre vistas
// y procesos independientes: un único slot JSON persistido (last-write-wins,
// sin cola ni historial) más notificación inmediata en proceso. Los escritores
// de otros procesos se detectan vía fsnotify sobre el archivo del slot y un
// sondeo de respaldo.
//
// Es un broadcast best-effort: un evento rancio solo provoca una recarga
// redundante, nunca pérdida de datos — la fuente de verdad es siempre el
// backend, que se re-consulta en cada recarga.
package syncbus

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// TTL edad máxima a la que una notificación de cambio de stock sigue siendo honrada.
const TTL = 5 * time.Minute

// pollInterval sondeo de respaldo por si el watcher pierde un evento.
const pollInterval = 15 * time.Second

// Bus canal de sincronización respaldado por un slot de archivo compartido.
type Bus struct {
	path string

	mu      sync.Mutex
	subs    map[int]chan struct{}
	nextSub int

	watcher *fsnotify.Watcher
	log     zerolog.Logger
	now     func() time.Time
}

// NewBus crea el bus sobre la ruta del slot y arranca el watcher del directorio
// (las escrituras son por rename, así que se observa el directorio padre).
func NewBus(path string, log zerolog.Logger) (*Bus, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	b := &Bus{
		path:    path,
		subs:    make(map[int]chan struct{}),
		watcher: watcher,
		log:     log.With().Str("component", "syncbus").Logger(),
		now:     time.Now,
	}
	go b.forwardWatcher()
	return b, nil
}

// Close detiene el watcher.
func (b *Bus) Close() error {
	return b.watcher.Close()
}

// Emit escribe el evento en el slot compartido (escritura atómica por rename,
// last-write-wins) y levanta la notificación en proceso.
func (b *Bus) Emit(ev entity.StockUpdateEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return err
	}
	b.notifyAll()
	return nil
}

// CheckPending lee el slot y devuelve el evento solo si su tienda coincide y no
// superó el TTL. Un evento expirado o de otra tienda limpia el slot y devuelve
// nil: así una notificación rancia no dispara recargas repetidas, y una
// notificación de otra tienda no se filtra a una vista que cambió de contexto.
func (b *Bus) CheckPending(storeID int64) *entity.StockUpdateEvent {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			b.log.Warn().Err(err).Msg("lectura del slot de stock falló")
		}
		return nil
	}
	var ev entity.StockUpdateEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		b.Clear()
		return nil
	}
	if ev.StoreID != storeID || b.now().Sub(ev.EmittedAt) > TTL {
		b.Clear()
		return nil
	}
	return &ev
}

// Clear vacía el slot compartido.
func (b *Bus) Clear() {
	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		b.log.Warn().Err(err).Msg("limpieza del slot de stock falló")
	}
}

// Attach registra un observador para una tienda. Cada disparo (notificación en
// proceso, cambio del archivo o sondeo) consulta CheckPending y, si hay evento
// válido, invoca onRefresh y limpia el slot. Una bandera de reentrada evita
// recargas solapadas desde el mismo enganche.
func (b *Bus) Attach(ctx context.Context, storeID int64, onRefresh func(context.Context)) {
	ch := b.subscribe()
	go func() {
		defer b.unsubscribe(ch)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		busy := false
		trigger := func() {
			if busy {
				return
			}
			busy = true
			if ev := b.CheckPending(storeID); ev != nil {
				onRefresh(ctx)
				b.Clear()
			}
			busy = false
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				trigger()
			case <-ticker.C:
				trigger()
			}
		}
	}()
}

func (b *Bus) subscribe() chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan struct{}, 1)
	b.subs[b.nextSub] = ch
	b.nextSub++
	return ch
}

func (b *Bus) unsubscribe(ch chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, sub := range b.subs {
		if sub == ch {
			delete(b.subs, id)
			return
		}
	}
}

// notifyAll despierta a todos los suscriptores sin bloquear (canal con búfer 1:
// una notificación pendiente basta, no hace falta acumular).
func (b *Bus) notifyAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// forwardWatcher convierte cambios del archivo del slot (escritos por otros
// procesos) en notificaciones para los suscriptores locales.
func (b *Bus) forwardWatcher() {
	name := filepath.Base(b.path)
	for {
		select {
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Rename) {
				b.notifyAll()
			}
		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			b.log.Warn().Err(err).Msg("watcher del slot de stock")
		}
	}
}
