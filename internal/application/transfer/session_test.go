package transfer_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalog struct {
	mu    sync.Mutex
	lines []entity.StoreProductLine
	calls int
	err   error
}

func (f *fakeCatalog) ListStoreProducts(_ context.Context, _ int64, _, _ int, _ map[string]string) ([]entity.StoreProductLine, *dto.PageMeta, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.lines, &dto.PageMeta{}, nil
}

func (f *fakeCatalog) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeInventory struct {
	mu          sync.Mutex
	items       []entity.SellerInventoryItem
	addErr      error
	removeErr   error
	addCalls    [][]dto.TransferItem
	removeCalls [][]dto.TransferItem

	// started/release permiten simular un envío lento: Add señala started y
	// espera a que el test cierre release.
	started chan struct{}
	release chan struct{}
}

func (f *fakeInventory) ListSellerInventory(_ context.Context, _, _ int64) ([]entity.SellerInventoryItem, error) {
	return f.items, nil
}

func (f *fakeInventory) AddToSellerInventory(_ context.Context, _, _ int64, items []dto.TransferItem) error {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	f.addCalls = append(f.addCalls, items)
	f.mu.Unlock()
	return f.addErr
}

func (f *fakeInventory) RemoveFromSellerInventory(_ context.Context, _, _ int64, items []dto.TransferItem) error {
	f.mu.Lock()
	f.removeCalls = append(f.removeCalls, items)
	f.mu.Unlock()
	return f.removeErr
}

type fakeUsers struct {
	users map[int64]*entity.User
}

func (f *fakeUsers) GetUser(_ context.Context, userID int64) (*entity.User, error) {
	return f.users[userID], nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []entity.StockUpdateEvent
}

func (f *fakeNotifier) Emit(ev entity.StockUpdateEvent) error {
	f.mu.Lock()
	f.events = append(f.events, ev)
	f.mu.Unlock()
	return nil
}

type fakeAuth struct{}

func (fakeAuth) Authorize(ctx context.Context, _ string) context.Context { return ctx }

type fakeJournal struct {
	mu   sync.Mutex
	recs []transfer.SubmissionRecord
}

func (f *fakeJournal) RecordSubmission(_ context.Context, rec transfer.SubmissionRecord) error {
	f.mu.Lock()
	f.recs = append(f.recs, rec)
	f.mu.Unlock()
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	fixtureStoreID  = int64(1)
	fixtureSellerID = int64(9)
)

type sessionFixture struct {
	catalog  *fakeCatalog
	inv      *fakeInventory
	notifier *fakeNotifier
	journal  *fakeJournal
	s        *transfer.Session
}

// newSessionFixture arma una sesión con dos líneas activas:
//   - 101 "Camisa": available 10, seller_quantity 2 (tenencia desde la línea)
//   - 102 "Zapato": available 5, sin seller_quantity (tenencia desde inventario: 3)
func newSessionFixture(t *testing.T, sellerStoreID int64) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		catalog: &fakeCatalog{lines: []entity.StoreProductLine{
			lineaCatalogo(101, "Camisa", intPtr(10), intPtr(2), true),
			lineaCatalogo(102, "Zapato", intPtr(5), nil, true),
		}},
		inv:      &fakeInventory{items: []entity.SellerInventoryItem{{StoreProductID: 102, Quantity: 3}}},
		notifier: &fakeNotifier{},
		journal:  &fakeJournal{},
	}
	users := &fakeUsers{users: map[int64]*entity.User{
		fixtureSellerID: {ID: fixtureSellerID, StoreID: sellerStoreID, Name: "Vendedor Uno", Role: entity.RoleVendedor},
	}}
	deps := transfer.Deps{
		Catalog:   f.catalog,
		Inventory: f.inv,
		Users:     users,
		Notifier:  f.notifier,
		Auth:      fakeAuth{},
		Journal:   f.journal,
		Logger:    zerolog.Nop(),
	}
	s, err := transfer.NewSession(context.Background(), deps, fixtureStoreID, fixtureSellerID, "backend-token")
	require.NoError(t, err)
	f.s = s
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y estado inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestNewSession_VendedorInexistente(t *testing.T) {
	deps := transfer.Deps{
		Catalog:   &fakeCatalog{},
		Inventory: &fakeInventory{},
		Users:     &fakeUsers{users: map[int64]*entity.User{}},
		Notifier:  &fakeNotifier{},
		Auth:      fakeAuth{},
		Journal:   &fakeJournal{},
		Logger:    zerolog.Nop(),
	}
	_, err := transfer.NewSession(context.Background(), deps, 1, 404, "tok")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSession_EstadoInicial(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	st := f.s.State()

	require.Len(t, st.Lines, 2)
	assert.Equal(t, 10, st.Lines[0].AvailableToAdd)
	assert.Equal(t, 2, st.Lines[0].AvailableToRemove, "tenencia desde seller_quantity de la línea")
	assert.Equal(t, 3, st.Lines[1].AvailableToRemove, "tenencia desde el listado de inventario")
	assert.False(t, st.ConfirmOpen)
	assert.Empty(t, st.AddSummary)
	assert.Empty(t, st.RemoveSummary)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: seleccionar, confirmar, enviar
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_TraspasoATiendaVendedorExitoso(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)

	stored := f.s.SetQuantity(transfer.DirectionAdd, 101, 3.9)
	assert.Equal(t, 3, stored)

	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))
	st := f.s.State()
	assert.True(t, st.ConfirmOpen)
	assert.Equal(t, "add", st.Pending)

	require.NoError(t, f.s.Submit(context.Background()))

	require.Len(t, f.inv.addCalls, 1)
	assert.Equal(t, []dto.TransferItem{{StoreProductID: 101, Quantity: 3}}, f.inv.addCalls[0])

	st = f.s.State()
	assert.False(t, st.ConfirmOpen)
	assert.Empty(t, st.Pending)
	assert.Equal(t, "traspaso a vendedor registrado", st.SuccessMsg)
	assert.Empty(t, st.ErrorMsg)
	assert.Empty(t, st.AddSummary, "el éxito limpia la selección enviada")

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, fixtureStoreID, f.notifier.events[0].StoreID)
	assert.Equal(t, entity.StockSourceSellerAdd, f.notifier.events[0].Source)

	require.Len(t, f.journal.recs, 1)
	assert.Equal(t, transfer.SubmissionStatusOK, f.journal.recs[0].Status)
	assert.Equal(t, 1, f.journal.recs[0].ItemCount)

	assert.Equal(t, 2, f.catalog.callCount(), "carga inicial más recarga tras el envío")
}

func TestSession_DevolucionATiendaExitosa(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)

	stored := f.s.SetQuantity(transfer.DirectionRemove, 102, 2)
	assert.Equal(t, 2, stored)

	require.NoError(t, f.s.OpenConfirm(transfer.DirectionRemove))
	require.NoError(t, f.s.Submit(context.Background()))

	require.Len(t, f.inv.removeCalls, 1)
	assert.Equal(t, []dto.TransferItem{{StoreProductID: 102, Quantity: 2}}, f.inv.removeCalls[0])

	st := f.s.State()
	assert.Equal(t, "devolución a tienda registrada", st.SuccessMsg)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, entity.StockSourceSellerRemove, f.notifier.events[0].Source)
}

func TestSession_SetQuantityAcotadaAlTopeVigente(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)

	assert.Equal(t, 10, f.s.SetQuantity(transfer.DirectionAdd, 101, 25), "acotada a available_quantity")
	assert.Equal(t, 2, f.s.SetQuantity(transfer.DirectionRemove, 101, 25), "acotada a la tenencia del vendedor")
	assert.Equal(t, 0, f.s.SetQuantity(transfer.DirectionAdd, 999, 5), "id desconocido tiene tope cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Compuerta de confirmación
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_SubmitSinConfirmacionEsNoOp(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	f.s.SetQuantity(transfer.DirectionAdd, 101, 3)

	require.NoError(t, f.s.Submit(context.Background()))

	assert.Empty(t, f.inv.addCalls)
	assert.Len(t, f.s.State().AddSummary, 1, "la selección sigue intacta")
}

func TestSession_CancelCierraSinEnviar(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	f.s.SetQuantity(transfer.DirectionAdd, 101, 3)
	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))

	f.s.Cancel()

	st := f.s.State()
	assert.False(t, st.ConfirmOpen)
	assert.Empty(t, st.Pending)
	assert.Len(t, st.AddSummary, 1, "cancelar no descarta la selección")

	require.NoError(t, f.s.Submit(context.Background()))
	assert.Empty(t, f.inv.addCalls)
}

func TestSession_SubmitConSeleccionVaciaNoEnvia(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))

	require.NoError(t, f.s.Submit(context.Background()))

	assert.Empty(t, f.inv.addCalls)
	assert.Equal(t, domain.ErrEmptySelection.Error(), f.s.State().ErrorMsg)
}

func TestSession_OpenConfirmConDireccionInvalida(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	err := f.s.OpenConfirm(transfer.Direction("mover"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondición de tienda cruzada
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_TiendaCruzadaSeRechazaLocalmente(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID+1) // vendedor de otra tienda
	f.s.SetQuantity(transfer.DirectionAdd, 101, 2)

	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))

	st := f.s.State()
	assert.False(t, st.ConfirmOpen, "la compuerta no se abre")
	assert.Equal(t, transfer.MsgCrossStore, st.ErrorMsg)

	require.NoError(t, f.s.Submit(context.Background()))
	assert.Empty(t, f.inv.addCalls, "nunca se hace el round trip al backend")
}

func TestSession_ReescribeRechazoDeTiendaCruzadaDelBackend(t *testing.T) {
	// Carrera: la precondición local pasó pero el backend rechaza con su propio
	// texto; el operador debe ver el mismo mensaje fijo en ambas vías.
	f := newSessionFixture(t, fixtureStoreID)
	f.inv.addErr = &domain.BackendError{Status: 403, Message: "The seller must belong to this store."}

	f.s.SetQuantity(transfer.DirectionAdd, 101, 2)
	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))
	require.NoError(t, f.s.Submit(context.Background()))

	st := f.s.State()
	assert.Equal(t, transfer.MsgCrossStore, st.ErrorMsg)
	assert.Len(t, st.AddSummary, 1, "la selección se conserva para corregir y reintentar")

	require.Len(t, f.journal.recs, 1)
	assert.Equal(t, transfer.SubmissionStatusRejected, f.journal.recs[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación de errores de validación
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_MapeaErroresDeValidacionPorIndice(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	f.inv.addErr = &domain.ValidationError{
		FieldErrors: domain.FieldErrors{
			"items.1.quantity": {"máximo 5 unidades"},
			"items.7.quantity": {"índice fuera de rango"},
			"general":          {"petición inválida"},
		},
	}

	// Resumen ordenado por etiqueta: Camisa (101) índice 0, Zapato (102) índice 1.
	f.s.SetQuantity(transfer.DirectionAdd, 101, 2)
	f.s.SetQuantity(transfer.DirectionAdd, 102, 1)
	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))
	require.NoError(t, f.s.Submit(context.Background()))

	st := f.s.State()
	assert.Equal(t, []string{"máximo 5 unidades"}, st.AddErrors[102], "items.1 corresponde al segundo renglón del resumen")
	assert.NotContains(t, st.AddErrors, int64(101))
	assert.ElementsMatch(t, []string{"índice fuera de rango", "petición inválida"},
		st.AddErrors[transfer.UnattributedKey], "índices fuera de rango y claves sin índice caen en la clave reservada")

	assert.Contains(t, st.ErrorMsg, "máximo 5 unidades")
	assert.Len(t, st.AddSummary, 2, "la selección se conserva en el fallo")
	assert.True(t, st.ConfirmOpen, "la compuerta queda abierta para reintentar")

	require.Len(t, f.journal.recs, 1)
	assert.Equal(t, transfer.SubmissionStatusValidation, f.journal.recs[0].Status)
}

func TestSession_OpenConfirmLimpiaErroresDelIntentoAnterior(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	f.inv.addErr = &domain.ValidationError{
		FieldErrors: domain.FieldErrors{"items.0.quantity": {"máximo 5 unidades"}},
	}
	f.s.SetQuantity(transfer.DirectionAdd, 101, 2)
	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))
	require.NoError(t, f.s.Submit(context.Background()))
	require.NotEmpty(t, f.s.State().AddErrors)

	// Un intento fresco no debe arrancar mostrando los mensajes del anterior.
	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))

	st := f.s.State()
	assert.Empty(t, st.AddErrors)
	assert.Empty(t, st.ErrorMsg)
}

func TestSession_FalloDesconocidoMuestraMensajeGenerico(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	f.inv.addErr = context.DeadlineExceeded

	f.s.SetQuantity(transfer.DirectionAdd, 101, 2)
	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))
	require.NoError(t, f.s.Submit(context.Background()))

	st := f.s.State()
	assert.Equal(t, transfer.MsgGeneric, st.ErrorMsg)
	assert.Len(t, st.AddSummary, 1)

	require.Len(t, f.journal.recs, 1)
	assert.Equal(t, transfer.SubmissionStatusError, f.journal.recs[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardia de reentrada
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_EnvioEnCursoBloqueaReentrada(t *testing.T) {
	f := newSessionFixture(t, fixtureStoreID)
	f.inv.started = make(chan struct{})
	f.inv.release = make(chan struct{})

	f.s.SetQuantity(transfer.DirectionAdd, 101, 2)
	require.NoError(t, f.s.OpenConfirm(transfer.DirectionAdd))

	errCh := make(chan error, 1)
	go func() { errCh <- f.s.Submit(context.Background()) }()
	<-f.inv.started // el primer envío está dentro de la llamada al backend

	err := f.s.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)

	close(f.inv.release)
	require.NoError(t, <-errCh)

	st := f.s.State()
	assert.Equal(t, "traspaso a vendedor registrado", st.SuccessMsg)
	assert.Len(t, f.inv.addCalls, 1, "el segundo intento no duplicó el envío")
}
