package transfer

import "github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"

// Bounds topes por producto para cada dirección de traspaso.
type Bounds struct {
	AvailableToAdd    int // máximo tienda → vendedor (available_quantity del servidor)
	AvailableToRemove int // máximo vendedor → tienda (tenencia actual del vendedor)
}

// BoundsResolver deriva los topes de traspaso a partir del catálogo de la tienda
// y la tenencia del vendedor. Derivación pura: se reconstruye en cada recarga de datos.
//
// Resolución de la tenencia por línea: si la línea trae seller_quantity se usa ese
// valor; si no, se cae al listado de inventario del vendedor consultado aparte.
// El fallback es por línea (no todo-o-nada), de modo que una cobertura parcial de
// seller_quantity en la respuesta del backend no descarta datos válidos.
type BoundsResolver struct {
	lines    []entity.StoreProductLine
	holdings map[int64]int // tenencia resuelta por id tienda-producto
}

// NewBoundsResolver construye el resolver a partir de las dos fuentes.
func NewBoundsResolver(lines []entity.StoreProductLine, inventory []entity.SellerInventoryItem) *BoundsResolver {
	holdings := make(map[int64]int, len(lines))
	for _, it := range inventory {
		holdings[it.StoreProductID] = it.Quantity
	}
	for _, line := range lines {
		if line.SellerQuantity != nil {
			holdings[line.ID] = *line.SellerQuantity
		}
	}
	return &BoundsResolver{lines: lines, holdings: holdings}
}

// ActiveLines devuelve solo las líneas activas; las inactivas se filtran por completo,
// no se exponen deshabilitadas.
func (r *BoundsResolver) ActiveLines() []entity.StoreProductLine {
	active := make([]entity.StoreProductLine, 0, len(r.lines))
	for _, line := range r.lines {
		if line.IsActive {
			active = append(active, line)
		}
	}
	return active
}

// BoundsFor devuelve los topes de una línea.
func (r *BoundsResolver) BoundsFor(line entity.StoreProductLine) Bounds {
	b := Bounds{}
	if line.AvailableQuantity != nil {
		b.AvailableToAdd = *line.AvailableQuantity
	}
	if qty, ok := r.holdings[line.ID]; ok {
		b.AvailableToRemove = qty
	}
	return b
}

// CapFor devuelve el tope aplicable a una dirección para un id tienda-producto.
// Un id desconocido tiene tope 0 en ambas direcciones.
func (r *BoundsResolver) CapFor(dir Direction, storeProductID int64) int {
	for _, line := range r.lines {
		if line.ID != storeProductID {
			continue
		}
		b := r.BoundsFor(line)
		if dir == DirectionAdd {
			return b.AvailableToAdd
		}
		return b.AvailableToRemove
	}
	return 0
}

// LabelFor devuelve el nombre de producto para mostrar; cadena vacía si el id no existe.
func (r *BoundsResolver) LabelFor(storeProductID int64) string {
	for _, line := range r.lines {
		if line.ID == storeProductID {
			return line.ProductName
		}
	}
	return ""
}
