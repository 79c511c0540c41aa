// Package storage is the stand-in for browser local storage: a minimal
// key-value interface over JSON-serializable blobs. Cart, auth and checkout
// logic only ever see the Store interface, so a real database can be swapped
// in later without touching them.
package storage

import "errors"

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Well-known keys used by the storefront.
const (
	KeyCart        = "cart"
	KeyCurrentUser = "currentUser"
	KeyLastOrder   = "lastOrder"
	KeyAdminUser   = "adminUser"
)

// Store persists JSON-serializable values by key. Set overwrites, Remove is
// a no-op for missing keys, and Get unmarshals into v.
type Store interface {
	Get(key string, v any) error
	Set(key string, v any) error
	Remove(key string) error
}
