package triples

import "fmt"

// Order identifies the permutation in which (subject, predicate, object)
// coordinates are stored in the bitmap-triples index.
type Order byte

const (
	OrderUnknown Order = iota
	OrderSPO
	OrderSOP
	OrderPSO
	OrderPOS
	OrderOSP
	OrderOPS
)

func (o Order) String() string {
	switch o {
	case OrderUnknown:
		return "Unknown"
	case OrderSPO:
		return "SPO"
	case OrderSOP:
		return "SOP"
	case OrderPSO:
		return "PSO"
	case OrderPOS:
		return "POS"
	case OrderOSP:
		return "OSP"
	case OrderOPS:
		return "OPS"
	default:
		return fmt.Sprintf("Order(%d)", byte(o))
	}
}

// ParseOrder recognizes every named order, not merely "is it SPO",
// so a rejected non-SPO order can be reported by name.
func ParseOrder(n uint64) (Order, error) {
	if n > uint64(OrderOPS) {
		return OrderUnknown, fmt.Errorf("triples: %w: unrecognized order %d", ErrBadProperty, n)
	}
	return Order(n), nil
}

// coordToTriple permutes the stored (x, y, z) coordinates back to
// (subject, predicate, object) according to order. Only SPO is
// supported for reading; the other five are recognized so they can be
// rejected by name rather than merely "not SPO".
func coordToTriple(order Order, x, y, z int) (s, p, o int) {
	switch order {
	case OrderSPO:
		return x, y, z
	case OrderSOP:
		return x, z, y
	case OrderPSO:
		return y, x, z
	case OrderPOS:
		return y, z, x
	case OrderOSP:
		return z, x, y
	case OrderOPS:
		return z, y, x
	default:
		return 0, 0, 0
	}
}
