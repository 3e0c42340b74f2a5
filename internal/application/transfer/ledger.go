package transfer

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnattributedKey clave reservada para mensajes de validación que no se pueden
// atribuir a una línea concreta del envío.
const UnattributedKey int64 = 0

// SummaryItem entrada del resumen de selección mostrado al operador antes de
// confirmar. El orden del resumen es también la base de índices para mapear los
// errores de validación del servidor de vuelta a cada producto.
type SummaryItem struct {
	StoreProductID int64  `json:"store_product_id"`
	Quantity       int    `json:"quantity"`
	Label          string `json:"label"`
}

// Ledger selección pendiente de un traspaso por lotes: dos mapas
// id tienda-producto → cantidad positiva, uno por dirección. Nunca almacena ceros.
// Guarda además los errores de validación por producto de cada dirección.
//
// No es seguro para uso concurrente; la Session que lo posee serializa el acceso.
type Ledger struct {
	entries    map[Direction]map[int64]int
	itemErrors map[Direction]map[int64][]string
	collator   *collate.Collator
}

// NewLedger construye un ledger vacío. El collator ordena los resúmenes por
// etiqueta con comparación consciente de locale (español).
func NewLedger() *Ledger {
	return &Ledger{
		entries: map[Direction]map[int64]int{
			DirectionAdd:    {},
			DirectionRemove: {},
		},
		itemErrors: map[Direction]map[int64][]string{
			DirectionAdd:    {},
			DirectionRemove: {},
		},
		collator: collate.New(language.Spanish),
	}
}

// SetQuantity registra la cantidad pedida para un producto en una dirección,
// truncada hacia cero y acotada a [0, cap]. Un resultado 0 elimina la entrada
// (ausencia, no un cero almacenado). Devuelve la cantidad efectivamente guardada.
//
// Efecto lateral: borra el error de validación previo de ese producto en esa
// dirección — una edición fresca invalida un error que ya no aplica.
func (l *Ledger) SetQuantity(dir Direction, storeProductID int64, requested float64, cap int) int {
	if !dir.Valid() {
		return 0
	}
	qty := int(requested) // trunca hacia cero, también para negativos
	if qty < 0 {
		qty = 0
	}
	if qty > cap {
		qty = cap
	}
	delete(l.itemErrors[dir], storeProductID)
	if qty <= 0 {
		delete(l.entries[dir], storeProductID)
		return 0
	}
	l.entries[dir][storeProductID] = qty
	return qty
}

// Quantity devuelve la cantidad pendiente o 0 si no hay entrada.
func (l *Ledger) Quantity(dir Direction, storeProductID int64) int {
	if !dir.Valid() {
		return 0
	}
	return l.entries[dir][storeProductID]
}

// Count devuelve el número de entradas pendientes en una dirección.
func (l *Ledger) Count(dir Direction) int {
	if !dir.Valid() {
		return 0
	}
	return len(l.entries[dir])
}

// Summary produce la lista ordenada de entradas positivas de una dirección,
// con etiqueta resuelta vía labelFor y orden lexicográfico por etiqueta
// (comparación de collation, no byte a byte). El orden es estable entre el
// armado de la petición y el mapeo posterior de errores.
func (l *Ledger) Summary(dir Direction, labelFor func(int64) string) []SummaryItem {
	if !dir.Valid() {
		return nil
	}
	items := make([]SummaryItem, 0, len(l.entries[dir]))
	for id, qty := range l.entries[dir] {
		items = append(items, SummaryItem{
			StoreProductID: id,
			Quantity:       qty,
			Label:          labelFor(id),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return l.collator.CompareString(items[i].Label, items[j].Label) < 0
	})
	return items
}

// Clear vacía las entradas pendientes de una dirección.
func (l *Ledger) Clear(dir Direction) {
	if dir.Valid() {
		l.entries[dir] = map[int64]int{}
	}
}

// ClearAll vacía ambas direcciones.
func (l *Ledger) ClearAll() {
	l.Clear(DirectionAdd)
	l.Clear(DirectionRemove)
}

// SetItemErrors reemplaza por completo (no fusiona) el mapa de errores por
// producto de una dirección.
func (l *Ledger) SetItemErrors(dir Direction, errs map[int64][]string) {
	if !dir.Valid() {
		return
	}
	if errs == nil {
		errs = map[int64][]string{}
	}
	l.itemErrors[dir] = errs
}

// ItemErrors devuelve una copia del mapa de errores por producto de una dirección.
func (l *Ledger) ItemErrors(dir Direction) map[int64][]string {
	if !dir.Valid() {
		return nil
	}
	out := make(map[int64][]string, len(l.itemErrors[dir]))
	for id, msgs := range l.itemErrors[dir] {
		out[id] = append([]string(nil), msgs...)
	}
	return out
}

// ClearItemErrors borra los errores por producto de una dirección.
func (l *Ledger) ClearItemErrors(dir Direction) {
	if dir.Valid() {
		l.itemErrors[dir] = map[int64][]string{}
	}
}
