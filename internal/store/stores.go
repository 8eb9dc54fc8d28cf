package store

import (
	"context"

	"wastewise_portal/internal/api"
	"wastewise_portal/internal/models"
)

// Stores is the portal's application-state container: one store per backend
// collection, wired once at boot and passed by reference to whatever
// composes the UI.
type Stores struct {
	Zones       *Store[models.Zone, models.Zone]
	Routes      *Store[models.Route, models.Route]
	Vehicles    *Store[models.Vehicle, models.Vehicle]
	Workers     *Store[models.Worker, models.Worker]
	Assignments *Store[models.Assignment, models.AssignmentRequest]
	Pickups     *Store[models.Pickup, models.Pickup]
}

func NewStores(client *api.Client) *Stores {
	zones := client.Zones()
	routes := client.Routes()
	vehicles := client.Vehicles()
	workers := client.Workers()
	assignments := client.Assignments()
	pickups := client.Pickups()

	return &Stores{
		Zones: New(Ops[models.Zone, models.Zone]{
			Name:   "zones",
			ID:     func(z models.Zone) string { return z.ID },
			List:   zones.GetAll,
			Create: zones.Create,
			Update: zones.Update,
			Delete: zones.Delete,
		}),
		Routes: New(Ops[models.Route, models.Route]{
			Name:   "routes",
			ID:     func(r models.Route) string { return r.ID },
			List:   routes.GetAll,
			Create: routes.Create,
			Update: routes.Update,
			Delete: routes.Delete,
		}),
		Vehicles: New(Ops[models.Vehicle, models.Vehicle]{
			Name:   "vehicles",
			ID:     func(v models.Vehicle) string { return v.ID },
			List:   vehicles.GetAll,
			Create: vehicles.Create,
			Update: vehicles.Update,
			Delete: vehicles.Delete,
		}),
		Workers: New(Ops[models.Worker, models.Worker]{
			Name:   "workers",
			ID:     func(w models.Worker) string { return w.ID },
			List:   workers.GetAll,
			Create: workers.Create,
			Update: workers.Update,
			Delete: workers.Delete,
		}),
		Assignments: New(Ops[models.Assignment, models.AssignmentRequest]{
			Name:   "assignments",
			ID:     func(a models.Assignment) string { return a.AssignmentID },
			List:   assignments.GetAll,
			Create: assignments.Create,
			Update: assignments.Update,
			Delete: assignments.Delete,
		}),
		Pickups: New(Ops[models.Pickup, models.Pickup]{
			Name:   "pickups",
			ID:     func(p models.Pickup) string { return p.ID },
			List:   pickups.GetAll,
			Create: pickups.Create,
			Update: pickups.Update,
			Delete: pickups.Delete,
		}),
	}
}

// WarmUp runs the initial loads in dependency order: zones before routes
// before the rest, since route and assignment screens resolve names through
// them.
func (s *Stores) WarmUp(ctx context.Context) {
	s.Zones.LoadOnce(ctx)
	s.Routes.LoadOnce(ctx)
	s.Vehicles.LoadOnce(ctx)
	s.Workers.LoadOnce(ctx)
	s.Assignments.LoadOnce(ctx)
	s.Pickups.LoadOnce(ctx)
}
