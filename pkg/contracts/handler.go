package contracts

import "github.com/julienschmidt/httprouter"

// Handler mounts a service's routes on the shared router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
