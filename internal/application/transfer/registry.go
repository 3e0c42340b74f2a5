package transfer

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/DeiVid1337/BossFront-sub002/internal/domain"
)

// StockBus canal de sincronización de stock completo: emisión más suscripción.
type StockBus interface {
	StockNotifier
	// Attach registra un observador para una tienda; onRefresh se invoca cuando
	// hay un evento pendiente válido para esa tienda. Se desengancha al cancelar ctx.
	Attach(ctx context.Context, storeID int64, onRefresh func(context.Context))
}

// Registry registro en memoria de sesiones de traspaso vivas, una por flujo
// vendedor/tienda abierto. Las sesiones inactivas se expiran en segundo plano.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	deps     Deps
	bus      StockBus
	idleTTL  time.Duration
	log      zerolog.Logger
}

// NewRegistry construye el registro. El bus se usa como Notifier de las
// sesiones y como fuente de notificaciones de recarga.
func NewRegistry(deps Deps, bus StockBus, idleTTL time.Duration) *Registry {
	deps.Notifier = bus
	return &Registry{
		sessions: make(map[string]*Session),
		deps:     deps,
		bus:      bus,
		idleTTL:  idleTTL,
		log:      deps.Logger.With().Str("component", "transfer_registry").Logger(),
	}
}

// Create abre una sesión nueva y la engancha al canal de stock de su tienda:
// un evento emitido por otra vista/proceso dispara la recarga de sus listas.
func (r *Registry) Create(ctx context.Context, storeID, sellerID int64, token string) (*Session, error) {
	s, err := NewSession(ctx, r.deps, storeID, sellerID, token)
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	s.detach = cancel
	r.bus.Attach(watchCtx, storeID, func(ctx context.Context) {
		if err := s.Refresh(ctx); err != nil {
			r.log.Warn().Err(err).Str("session_id", s.ID).Msg("recarga por evento de stock falló")
		}
	})

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.log.Info().Str("session_id", s.ID).Int64("store_id", storeID).Int64("seller_id", sellerID).Msg("sesión de traspaso creada")
	return s, nil
}

// Get devuelve la sesión o ErrSessionNotFound.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Delete cierra y elimina la sesión.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	s.Close()
	return nil
}

// StartReaper lanza el barrido de sesiones inactivas; retorna al cancelar ctx.
func (r *Registry) StartReaper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.reap()
			}
		}
	}()
}

func (r *Registry) reap() {
	cutoff := time.Now().Add(-r.idleTTL)
	var expired []*Session

	r.mu.Lock()
	for id, s := range r.sessions {
		if s.LastActivity().Before(cutoff) {
			delete(r.sessions, id)
			expired = append(expired, s)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
		r.log.Info().Str("session_id", s.ID).Msg("sesión de traspaso expirada por inactividad")
	}
}
