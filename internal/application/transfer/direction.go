package transfer

// Direction sentido de un traspaso de stock.
type Direction string

const (
	DirectionAdd    Direction = "add"    // tienda → vendedor
	DirectionRemove Direction = "remove" // vendedor → tienda
)

// Valid indica si la dirección es una de las dos conocidas.
func (d Direction) Valid() bool {
	return d == DirectionAdd || d == DirectionRemove
}

// Source devuelve la etiqueta de origen del StockUpdateEvent que emite esta dirección.
func (d Direction) Source() string {
	if d == DirectionAdd {
		return "seller-add"
	}
	return "seller-remove"
}
