// Package memstore provides an in-RAM (non-persistent) flash message store
package memstore

import (
	"github.com/quasoft/memstore"

	"github.com/sargassum-world/turboresponse/flash"
)

func NewStore(c flash.Config) (store *flash.Store, backingStore *memstore.MemStore) {
	backingStore = memstore.NewMemStore(c.AuthKey, c.EncryptionKey)
	backingStore.Options = &c.CookieOptions
	backingStore.MaxAge(backingStore.Options.MaxAge)

	return &flash.Store{
		Config:       c,
		BackingStore: backingStore,
	}, backingStore
}
