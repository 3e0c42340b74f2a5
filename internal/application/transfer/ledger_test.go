package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// etiquetaFija resuelve etiquetas desde un mapa estático.
func etiquetaFija(labels map[int64]string) func(int64) string {
	return func(id int64) string { return labels[id] }
}

// ──────────────────────────────────────────────────────────────────────────────
// SetQuantity: truncado y acotado
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_SetQuantity_TruncaHaciaCeroYAcota(t *testing.T) {
	cases := []struct {
		name      string
		requested float64
		cap       int
		want      int
	}{
		{"fraccionario se trunca hacia cero", 3.9, 10, 3},
		{"negativo fraccionario queda en cero", -0.7, 10, 0},
		{"negativo entero queda en cero", -5, 10, 0},
		{"por encima del tope se acota al tope", 12, 5, 5},
		{"exactamente el tope se conserva", 5, 5, 5},
		{"tope cero no admite nada", 3, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := transfer.NewLedger()
			got := l.SetQuantity(transfer.DirectionAdd, 101, tc.requested, tc.cap)
			assert.Equal(t, tc.want, got, "cantidad guardada")
			assert.Equal(t, tc.want, l.Quantity(transfer.DirectionAdd, 101))
		})
	}
}

func TestLedger_SetQuantity_CeroEliminaLaEntrada(t *testing.T) {
	l := transfer.NewLedger()
	l.SetQuantity(transfer.DirectionAdd, 101, 4, 10)
	require.Equal(t, 1, l.Count(transfer.DirectionAdd))

	got := l.SetQuantity(transfer.DirectionAdd, 101, 0, 10)
	assert.Equal(t, 0, got)
	assert.Equal(t, 0, l.Count(transfer.DirectionAdd), "un cero es ausencia, no una entrada almacenada")
	assert.Empty(t, l.Summary(transfer.DirectionAdd, etiquetaFija(nil)))
}

func TestLedger_SetQuantity_DireccionesIndependientes(t *testing.T) {
	l := transfer.NewLedger()
	l.SetQuantity(transfer.DirectionAdd, 101, 3, 10)
	l.SetQuantity(transfer.DirectionRemove, 101, 2, 10)

	assert.Equal(t, 3, l.Quantity(transfer.DirectionAdd, 101))
	assert.Equal(t, 2, l.Quantity(transfer.DirectionRemove, 101))

	l.Clear(transfer.DirectionAdd)
	assert.Equal(t, 0, l.Quantity(transfer.DirectionAdd, 101))
	assert.Equal(t, 2, l.Quantity(transfer.DirectionRemove, 101), "limpiar una dirección no toca la otra")
}

func TestLedger_SetQuantity_DireccionInvalidaEsNoOp(t *testing.T) {
	l := transfer.NewLedger()
	got := l.SetQuantity(transfer.Direction("transferir"), 101, 3, 10)
	assert.Equal(t, 0, got)
	assert.Equal(t, 0, l.Count(transfer.DirectionAdd))
	assert.Equal(t, 0, l.Count(transfer.DirectionRemove))
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen ordenado
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_Summary_OrdenaPorEtiquetaConLocaleEspanol(t *testing.T) {
	labels := map[int64]string{
		1: "Ñandú",
		2: "Naranja",
		3: "Zapato",
	}
	l := transfer.NewLedger()
	l.SetQuantity(transfer.DirectionAdd, 3, 1, 10)
	l.SetQuantity(transfer.DirectionAdd, 1, 2, 10)
	l.SetQuantity(transfer.DirectionAdd, 2, 3, 10)

	sum := l.Summary(transfer.DirectionAdd, etiquetaFija(labels))
	require.Len(t, sum, 3)

	// Con comparación byte a byte "Zapato" quedaría antes que "Ñandú";
	// la collation en español ordena Ñ entre N y O.
	assert.Equal(t, []string{"Naranja", "Ñandú", "Zapato"},
		[]string{sum[0].Label, sum[1].Label, sum[2].Label})
	assert.Equal(t, int64(2), sum[0].StoreProductID)
	assert.Equal(t, int64(1), sum[1].StoreProductID)
	assert.Equal(t, int64(3), sum[2].StoreProductID)
}

func TestLedger_Summary_SoloEntradasPositivas(t *testing.T) {
	labels := map[int64]string{101: "Camisa", 102: "Zapato"}
	l := transfer.NewLedger()
	l.SetQuantity(transfer.DirectionAdd, 101, 3, 10)
	l.SetQuantity(transfer.DirectionAdd, 102, 2, 10)
	l.SetQuantity(transfer.DirectionAdd, 102, 0, 10) // vuelta a cero

	sum := l.Summary(transfer.DirectionAdd, etiquetaFija(labels))
	require.Len(t, sum, 1)
	assert.Equal(t, int64(101), sum[0].StoreProductID)
	assert.Equal(t, 3, sum[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores por producto
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_SetQuantity_LimpiaElErrorDelProductoEditado(t *testing.T) {
	l := transfer.NewLedger()
	l.SetItemErrors(transfer.DirectionAdd, map[int64][]string{
		101:                     {"máximo 5 unidades"},
		102:                     {"producto inactivo"},
		transfer.UnattributedKey: {"error general"},
	})

	l.SetQuantity(transfer.DirectionAdd, 101, 2, 10)

	errs := l.ItemErrors(transfer.DirectionAdd)
	assert.NotContains(t, errs, int64(101), "una edición fresca invalida el error previo de ese producto")
	assert.Contains(t, errs, int64(102))
	assert.Contains(t, errs, transfer.UnattributedKey)
}

func TestLedger_SetItemErrors_ReemplazaSinFusionar(t *testing.T) {
	l := transfer.NewLedger()
	l.SetItemErrors(transfer.DirectionAdd, map[int64][]string{101: {"viejo"}})
	l.SetItemErrors(transfer.DirectionAdd, map[int64][]string{102: {"nuevo"}})

	errs := l.ItemErrors(transfer.DirectionAdd)
	assert.NotContains(t, errs, int64(101))
	assert.Equal(t, []string{"nuevo"}, errs[102])
}

func TestLedger_ItemErrors_DevuelveCopia(t *testing.T) {
	l := transfer.NewLedger()
	l.SetItemErrors(transfer.DirectionAdd, map[int64][]string{101: {"uno"}})

	errs := l.ItemErrors(transfer.DirectionAdd)
	errs[101] = append(errs[101], "mutado")
	delete(errs, int64(101))

	again := l.ItemErrors(transfer.DirectionAdd)
	assert.Equal(t, []string{"uno"}, again[101], "la copia devuelta no comparte estado interno")
}

func TestLedger_ClearAll_VaciaAmbasDirecciones(t *testing.T) {
	l := transfer.NewLedger()
	l.SetQuantity(transfer.DirectionAdd, 101, 3, 10)
	l.SetQuantity(transfer.DirectionRemove, 102, 2, 10)

	l.ClearAll()
	assert.Equal(t, 0, l.Count(transfer.DirectionAdd))
	assert.Equal(t, 0, l.Count(transfer.DirectionRemove))
}
