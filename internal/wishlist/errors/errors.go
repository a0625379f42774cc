package errors

import "errors"

var (
	ErrNotFound = errors.New("wishlist not found")

	ErrItemNotFound = errors.New("wishlist item not found")

	ErrDuplicateItem = errors.New("wishlist item already exists")
)
