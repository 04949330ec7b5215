package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all lab endpoints onto the given router under the
// /labs prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/labs", func(r chi.Router) {
		r.Get("/", Catalogue)
		r.Post("/fuel-composition", FuelComposition)
		r.Post("/fuel-oil", FuelOil)
		r.Post("/emission/{fuel}", Emission)
		r.Post("/solar-profit", SolarProfit)
		r.Post("/fault-current", FaultCurrent)
		r.Post("/reliability", Reliability)
		r.Post("/electrical-load", ElectricalLoad)
		r.Post("/batch", Batch)
	})
}
