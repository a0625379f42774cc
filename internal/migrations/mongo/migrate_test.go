package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCollectionsHaveValidators(t *testing.T) {
	for _, name := range []string{ToursCollection, BookingsCollection, WishlistsCollection} {
		def, ok := collections[name]
		if !ok {
			t.Fatalf("collection %s is not migrated", name)
		}
		if _, ok := def.Validator["$jsonSchema"]; !ok {
			t.Errorf("collection %s has no $jsonSchema validator", name)
		}
		if len(def.Indexes) == 0 {
			t.Errorf("collection %s has no indexes", name)
		}
	}
}

func TestBookingsSessionIndexIsUnique(t *testing.T) {
	for _, idx := range BookingsIndexes {
		keys, ok := idx.Keys.(bson.D)
		if !ok || len(keys) != 2 || keys[0].Key != "session_id" || keys[1].Key != "booking_id" {
			continue
		}
		if idx.Options == nil || idx.Options.Unique == nil || !*idx.Options.Unique {
			t.Fatal("session_id/booking_id index must be unique")
		}
		return
	}
	t.Fatal("missing session_id/booking_id index")
}
