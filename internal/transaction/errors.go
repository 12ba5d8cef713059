package transaction

import "errors"

// Business-rule rejections surfaced by the movement workflow. Each one maps
// to a specific HTTP response; anything else coming out of Process is an
// unexpected storage fault and is reported generically.
var (
	ErrOverstock            = errors.New("overstocking would occur")
	ErrStockout             = errors.New("stock below minimum quantity")
	ErrInventoryNotFound    = errors.New("inventory item not found")
	ErrInsufficientQuantity = errors.New("not enough quantity in inventory")
	ErrUnsupportedMovement  = errors.New("invalid movement_type")
)
