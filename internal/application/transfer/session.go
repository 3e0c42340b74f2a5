package transfer

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// Mensajes fijos de cara al operador.
const (
	// MsgCrossStore se muestra tanto cuando la precondición local detecta el
	// cruce de tiendas como cuando el backend lo rechaza en carrera; así ambas
	// vías presentan el mismo texto.
	MsgCrossStore = "el vendedor no pertenece a la tienda seleccionada; cambie de tienda para continuar"
	// MsgGeneric para fallos que no traen un mensaje utilizable.
	MsgGeneric = "ocurrió un error inesperado, intente de nuevo"

	msgAddOK    = "traspaso a vendedor registrado"
	msgRemoveOK = "devolución a tienda registrada"

	// crossStoreNeedle subcadena con la que el backend expresa el rechazo por
	// tienda cruzada; se reescribe a MsgCrossStore.
	crossStoreNeedle = "must belong to this store"
)

// itemFieldRe extrae el índice de claves de validación del backend con forma
// items.<n>.<campo>.
var itemFieldRe = regexp.MustCompile(`^items\.(\d+)\.`)

// Deps colaboradores de una sesión de traspaso.
type Deps struct {
	Catalog   CatalogGateway
	Inventory InventoryGateway
	Users     UserGateway
	Notifier  StockNotifier
	Auth      Authorizer
	Journal   Journal
	Logger    zerolog.Logger
}

// Session flujo de traspaso de stock entre una tienda y un vendedor.
// Posee en exclusiva el ledger de selección y los errores por producto; se
// descarta al cerrar la sesión o al expirar por inactividad.
//
// La compuerta de confirmación es una máquina de dos pasos:
//
//	idle --OpenConfirm(dir)--> confirming(dir) --Submit(éxito)--> idle
//	                           confirming(dir) --Cancel--------> idle
//
// Submit desde idle es un no-op (se verifica que pending no sea vacío).
type Session struct {
	mu sync.Mutex

	ID       string
	StoreID  int64
	SellerID int64

	token  string
	seller *entity.User

	resolver *BoundsResolver
	ledger   *Ledger

	pending     Direction // "" = ninguna
	confirmOpen bool
	submitting  bool // guardia de reentrada del envío (booleano advisory, no un lock transaccional)
	refreshing  bool // guardia de reentrada de la recarga

	successMsg string
	errorMsg   string

	lastActivity time.Time
	detach       context.CancelFunc

	deps Deps
	log  zerolog.Logger
}

// NewSession crea la sesión: resuelve el vendedor (para la precondición de
// tienda cruzada) y hace la carga inicial de catálogo e inventario.
func NewSession(ctx context.Context, deps Deps, storeID, sellerID int64, token string) (*Session, error) {
	s := &Session{
		ID:           uuid.New().String(),
		StoreID:      storeID,
		SellerID:     sellerID,
		token:        token,
		ledger:       NewLedger(),
		resolver:     NewBoundsResolver(nil, nil),
		lastActivity: time.Now(),
		deps:         deps,
	}
	s.log = deps.Logger.With().
		Str("session_id", s.ID).
		Int64("store_id", storeID).
		Int64("seller_id", sellerID).
		Logger()

	actx := deps.Auth.Authorize(ctx, token)
	seller, err := deps.Users.GetUser(actx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	s.seller = seller

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh recarga el catálogo de la tienda y el inventario del vendedor y
// reconstruye el resolver de topes. Una recarga en curso hace que las
// siguientes sean no-op hasta terminar.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return nil
	}
	s.refreshing = true
	token := s.token
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	actx := s.deps.Auth.Authorize(ctx, token)

	// El flujo de traspaso trabaja sobre el catálogo completo de la tienda;
	// una sola página grande basta para los tamaños de catálogo que maneja POS.
	lines, _, err := s.deps.Catalog.ListStoreProducts(actx, s.StoreID, 1, 200, nil)
	if err != nil {
		return err
	}
	inventory, err := s.deps.Inventory.ListSellerInventory(actx, s.StoreID, s.SellerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.resolver = NewBoundsResolver(lines, inventory)
	s.lastActivity = time.Now()
	s.mu.Unlock()
	return nil
}

// SetQuantity fija la cantidad pendiente de un producto en una dirección,
// acotada al tope vigente en este momento. Devuelve la cantidad guardada.
func (s *Session) SetQuantity(dir Direction, storeProductID int64, requested float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now()
	cap := s.resolver.CapFor(dir, storeProductID)
	return s.ledger.SetQuantity(dir, storeProductID, requested, cap)
}

// OpenConfirm abre la confirmación para una dirección. Limpia los errores por
// producto rancios de esa dirección: un intento fresco no debe mostrar los
// mensajes del intento anterior hasta que un fallo nuevo los recree.
//
// Si el vendedor no pertenece a la tienda, la apertura se rechaza localmente
// con el mensaje fijo y la compuerta no se abre.
func (s *Session) OpenConfirm(dir Direction) error {
	if !dir.Valid() {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now()

	if s.seller.StoreID != s.StoreID {
		s.errorMsg = MsgCrossStore
		return nil
	}

	s.pending = dir
	s.confirmOpen = true
	s.successMsg = ""
	s.errorMsg = ""
	s.ledger.ClearItemErrors(dir)
	return nil
}

// Cancel cierra la compuerta de confirmación sin enviar nada.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now()
	s.pending = ""
	s.confirmOpen = false
}

// Submit ejecuta el traspaso pendiente como una única petición por lotes y
// reconcilia el resultado sobre el estado de la sesión. Todos los fallos se
// convierten en estado visible (mensaje y/o errores por producto); nunca se
// propagan hacia arriba. Las únicas salidas con error son las guardias:
// envío ya en curso (ErrSubmissionInFlight). Submit sin confirmación abierta
// es un no-op.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()

	if !s.confirmOpen || s.pending == "" {
		s.mu.Unlock()
		return nil
	}
	if s.submitting {
		s.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}
	s.lastActivity = time.Now()

	// Precondición local: el backend rechaza traspasos entre tiendas; no hace
	// falta un round trip para descubrirlo.
	if s.seller.StoreID != s.StoreID {
		s.errorMsg = MsgCrossStore
		s.mu.Unlock()
		return nil
	}

	dir := s.pending
	summary := s.ledger.Summary(dir, s.resolver.LabelFor)
	if len(summary) == 0 {
		s.errorMsg = domain.ErrEmptySelection.Error()
		s.mu.Unlock()
		return nil
	}

	items := make([]dto.TransferItem, len(summary))
	for i, it := range summary {
		items[i] = dto.TransferItem{StoreProductID: it.StoreProductID, Quantity: it.Quantity}
	}

	s.submitting = true
	token := s.token
	s.mu.Unlock()

	actx := s.deps.Auth.Authorize(ctx, token)
	var err error
	if dir == DirectionAdd {
		err = s.deps.Inventory.AddToSellerInventory(actx, s.StoreID, s.SellerID, items)
	} else {
		err = s.deps.Inventory.RemoveFromSellerInventory(actx, s.StoreID, s.SellerID, items)
	}

	s.mu.Lock()
	s.submitting = false
	s.reconcile(dir, summary, err)
	s.mu.Unlock()

	s.journal(ctx, dir, len(summary), err)

	if err == nil {
		// Recarga completa de ambas listas para recoger available_quantity y
		// seller_quantity calculados por el servidor.
		if rerr := s.Refresh(ctx); rerr != nil {
			s.log.Warn().Err(rerr).Msg("recarga tras traspaso falló")
		}
	}
	return nil
}

// reconcile aplica el resultado del envío sobre el estado. Se llama con el mutex tomado.
func (s *Session) reconcile(dir Direction, summary []SummaryItem, err error) {
	if err == nil {
		s.ledger.Clear(dir)
		s.ledger.ClearItemErrors(dir)
		s.pending = ""
		s.confirmOpen = false
		s.errorMsg = ""
		if dir == DirectionAdd {
			s.successMsg = msgAddOK
		} else {
			s.successMsg = msgRemoveOK
		}
		ev := entity.StockUpdateEvent{
			StoreID:   s.StoreID,
			EmittedAt: time.Now(),
			Source:    dir.Source(),
		}
		if nerr := s.deps.Notifier.Emit(ev); nerr != nil {
			s.log.Warn().Err(nerr).Msg("emisión de evento de stock falló")
		}
		return
	}

	s.successMsg = ""

	var verr *domain.ValidationError
	var berr *domain.BackendError
	switch {
	case errors.As(err, &verr):
		s.ledger.SetItemErrors(dir, mapItemErrors(verr.FieldErrors, summary))
		s.errorMsg = verr.JoinedMessages()
	case errors.As(err, &berr):
		msg := berr.Message
		if strings.Contains(msg, crossStoreNeedle) {
			msg = MsgCrossStore
		}
		if msg == "" {
			msg = MsgGeneric
		}
		s.errorMsg = msg
	default:
		s.errorMsg = MsgGeneric
	}
	// La selección del operador se conserva en cualquier fallo: corrige y reintenta.
}

// journal registra el intento en la bitácora local; best-effort.
func (s *Session) journal(ctx context.Context, dir Direction, count int, err error) {
	status := SubmissionStatusOK
	message := ""
	if err != nil {
		message = err.Error()
		var verr *domain.ValidationError
		var berr *domain.BackendError
		switch {
		case errors.As(err, &verr):
			status = SubmissionStatusValidation
		case errors.As(err, &berr):
			status = SubmissionStatusRejected
		default:
			status = SubmissionStatusError
		}
	}
	rec := SubmissionRecord{
		SessionID: s.ID,
		StoreID:   s.StoreID,
		SellerID:  s.SellerID,
		Direction: dir,
		ItemCount: count,
		Status:    status,
		Message:   message,
	}
	if jerr := s.deps.Journal.RecordSubmission(ctx, rec); jerr != nil {
		s.log.Warn().Err(jerr).Msg("registro en bitácora falló")
	}
}

// mapItemErrors traduce claves items.<idx>.<campo> del backend a ids de producto
// usando el mismo resumen ordenado que se envió (correspondencia índice a índice).
// Índices no parseables o fuera de rango caen en UnattributedKey.
func mapItemErrors(fieldErrors domain.FieldErrors, summary []SummaryItem) map[int64][]string {
	out := make(map[int64][]string)
	for field, msgs := range fieldErrors {
		key := UnattributedKey
		if m := itemFieldRe.FindStringSubmatch(field); m != nil {
			if idx, err := strconv.Atoi(m[1]); err == nil && idx >= 0 && idx < len(summary) {
				key = summary[idx].StoreProductID
			}
		}
		out[key] = append(out[key], msgs...)
	}
	return out
}

// LineState línea activa del catálogo con topes y cantidades pendientes, lista
// para render. El ledger guarda solo ids y cantidades; los datos de despliegue
// se re-resuelven desde el catálogo vigente en cada lectura.
type LineState struct {
	entity.StoreProductLine
	AvailableToAdd    int `json:"available_to_add"`
	AvailableToRemove int `json:"available_to_remove"`
	PendingAdd        int `json:"pending_add"`
	PendingRemove     int `json:"pending_remove"`
}

// State instantánea del estado de la sesión para la capa HTTP.
type State struct {
	SessionID     string               `json:"session_id"`
	StoreID       int64                `json:"store_id"`
	SellerID      int64                `json:"seller_id"`
	Lines         []LineState          `json:"lines"`
	AddSummary    []SummaryItem        `json:"add_summary"`
	RemoveSummary []SummaryItem        `json:"remove_summary"`
	Pending       string               `json:"pending_action,omitempty"`
	ConfirmOpen   bool                 `json:"confirm_open"`
	Submitting    bool                 `json:"submitting"`
	SuccessMsg    string               `json:"success_message,omitempty"`
	ErrorMsg      string               `json:"error_message,omitempty"`
	AddErrors     map[int64][]string   `json:"add_errors,omitempty"`
	RemoveErrors  map[int64][]string   `json:"remove_errors,omitempty"`
}

// State arma la instantánea actual.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.resolver.ActiveLines()
	lines := make([]LineState, len(active))
	for i, line := range active {
		b := s.resolver.BoundsFor(line)
		lines[i] = LineState{
			StoreProductLine:  line,
			AvailableToAdd:    b.AvailableToAdd,
			AvailableToRemove: b.AvailableToRemove,
			PendingAdd:        s.ledger.Quantity(DirectionAdd, line.ID),
			PendingRemove:     s.ledger.Quantity(DirectionRemove, line.ID),
		}
	}

	return State{
		SessionID:     s.ID,
		StoreID:       s.StoreID,
		SellerID:      s.SellerID,
		Lines:         lines,
		AddSummary:    s.ledger.Summary(DirectionAdd, s.resolver.LabelFor),
		RemoveSummary: s.ledger.Summary(DirectionRemove, s.resolver.LabelFor),
		Pending:       string(s.pending),
		ConfirmOpen:   s.confirmOpen,
		Submitting:    s.submitting,
		SuccessMsg:    s.successMsg,
		ErrorMsg:      s.errorMsg,
		AddErrors:     s.ledger.ItemErrors(DirectionAdd),
		RemoveErrors:  s.ledger.ItemErrors(DirectionRemove),
	}
}

// LastActivity devuelve la marca del último uso (para expiración por inactividad).
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Close desengancha la sesión del canal de sincronización de stock.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}
