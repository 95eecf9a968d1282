package handlers

import (
	"log"

	"carbonwise-server/db"
	"carbonwise-server/internals"
)

var tableStore *internals.TableStore
var resolver *internals.Resolver

// InitEmissionCore builds the reference-table cache and the resolver on top
// of the database, and warms the cache.
func InitEmissionCore() {
	tableStore = internals.NewTableStore(db.NewReferenceDAO(db.GetDB()))
	resolver = internals.NewResolver(tableStore)

	err := tableStore.Reload()
	if err != nil {
		// the server can start without reference data, lookups load lazily
		log.Println("Warning: could not warm reference tables: ", err)
	}
}
