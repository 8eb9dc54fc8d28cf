package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"wastewise_portal/internal/models"
)

// AuthAPI wraps /auth.
type AuthAPI struct{ c *Client }

func (c *Client) Auth() AuthAPI { return AuthAPI{c} }

func (a AuthAPI) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	data, err := a.c.do(ctx, http.MethodPost, authLogin, req)
	if err != nil {
		return models.LoginResponse{}, err
	}
	return decodeOne[models.LoginResponse](data)
}

func (a AuthAPI) Logout(ctx context.Context) error {
	_, err := a.c.do(ctx, http.MethodPost, authLogout, nil)
	return err
}

// ZonesAPI wraps zone management.
type ZonesAPI struct{ c *Client }

func (c *Client) Zones() ZonesAPI { return ZonesAPI{c} }

func (z ZonesAPI) GetAll(ctx context.Context) ([]models.Zone, error) {
	data, err := z.c.do(ctx, http.MethodGet, zonesList, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Zone](data)
}

func (z ZonesAPI) GetByID(ctx context.Context, id string) (models.Zone, error) {
	data, err := z.c.do(ctx, http.MethodGet, zonesBase+"/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Zone{}, err
	}
	return decodeOne[models.Zone](data)
}

func (z ZonesAPI) Create(ctx context.Context, zone models.Zone) error {
	_, err := z.c.do(ctx, http.MethodPost, zonesCreate, zone)
	return err
}

func (z ZonesAPI) Update(ctx context.Context, id string, zone models.Zone) error {
	_, err := z.c.do(ctx, http.MethodPut, zonesUpdate+"/"+url.PathEscape(id), zone)
	return err
}

func (z ZonesAPI) Delete(ctx context.Context, id string) error {
	_, err := z.c.do(ctx, http.MethodDelete, zonesDelete+"/"+url.PathEscape(id), nil)
	return err
}

func (z ZonesAPI) Exists(ctx context.Context, id string) (bool, error) {
	data, err := z.c.do(ctx, http.MethodGet, zonesBase+"/"+url.PathEscape(id)+"/exists", nil)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := json.Unmarshal(data, &exists); err != nil {
		return decodeOne[bool](data)
	}
	return exists, nil
}

func (z ZonesAPI) NamesAndIDs(ctx context.Context) ([]models.ZoneNameID, error) {
	data, err := z.c.do(ctx, http.MethodGet, zonesNamesAndIDs, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.ZoneNameID](data)
}

// RoutesAPI wraps route management.
type RoutesAPI struct{ c *Client }

func (c *Client) Routes() RoutesAPI { return RoutesAPI{c} }

func (r RoutesAPI) GetAll(ctx context.Context) ([]models.Route, error) {
	data, err := r.c.do(ctx, http.MethodGet, routesBase, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Route](data)
}

func (r RoutesAPI) GetByID(ctx context.Context, id string) (models.Route, error) {
	data, err := r.c.do(ctx, http.MethodGet, routesBase+"/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Route{}, err
	}
	return decodeOne[models.Route](data)
}

func (r RoutesAPI) Create(ctx context.Context, route models.Route) error {
	_, err := r.c.do(ctx, http.MethodPost, routesBase, route)
	return err
}

func (r RoutesAPI) Update(ctx context.Context, id string, route models.Route) error {
	_, err := r.c.do(ctx, http.MethodPut, routesBase+"/"+url.PathEscape(id), route)
	return err
}

func (r RoutesAPI) Delete(ctx context.Context, id string) error {
	_, err := r.c.do(ctx, http.MethodDelete, routesBase+"/"+url.PathEscape(id), nil)
	return err
}

func (r RoutesAPI) GetByZone(ctx context.Context, zoneID string) ([]models.Route, error) {
	data, err := r.c.do(ctx, http.MethodGet, routesBase+"/zone/"+url.PathEscape(zoneID), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Route](data)
}

// VehiclesAPI wraps vehicle management.
type VehiclesAPI struct{ c *Client }

func (c *Client) Vehicles() VehiclesAPI { return VehiclesAPI{c} }

func (v VehiclesAPI) GetAll(ctx context.Context) ([]models.Vehicle, error) {
	data, err := v.c.do(ctx, http.MethodGet, vehiclesBase, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Vehicle](data)
}

func (v VehiclesAPI) GetByID(ctx context.Context, id string) (models.Vehicle, error) {
	data, err := v.c.do(ctx, http.MethodGet, vehiclesBase+"/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Vehicle{}, err
	}
	return decodeOne[models.Vehicle](data)
}

func (v VehiclesAPI) Create(ctx context.Context, vehicle models.Vehicle) error {
	_, err := v.c.do(ctx, http.MethodPost, vehiclesBase, vehicle)
	return err
}

func (v VehiclesAPI) Update(ctx context.Context, id string, vehicle models.Vehicle) error {
	_, err := v.c.do(ctx, http.MethodPut, vehiclesBase+"/"+url.PathEscape(id), vehicle)
	return err
}

func (v VehiclesAPI) Delete(ctx context.Context, id string) error {
	_, err := v.c.do(ctx, http.MethodDelete, vehiclesBase+"/"+url.PathEscape(id), nil)
	return err
}

func (v VehiclesAPI) GetPickupTrucks(ctx context.Context) ([]models.Vehicle, error) {
	data, err := v.c.do(ctx, http.MethodGet, vehiclesPickupTrucks, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Vehicle](data)
}

func (v VehiclesAPI) GetRouteTrucks(ctx context.Context) ([]models.Vehicle, error) {
	data, err := v.c.do(ctx, http.MethodGet, vehiclesRouteTrucks, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Vehicle](data)
}

// WorkersAPI wraps worker management.
type WorkersAPI struct{ c *Client }

func (c *Client) Workers() WorkersAPI { return WorkersAPI{c} }

func (w WorkersAPI) GetAll(ctx context.Context) ([]models.Worker, error) {
	data, err := w.c.do(ctx, http.MethodGet, workersBase, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Worker](data)
}

func (w WorkersAPI) GetByID(ctx context.Context, id string) (models.Worker, error) {
	data, err := w.c.do(ctx, http.MethodGet, workersBase+"/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Worker{}, err
	}
	return decodeOne[models.Worker](data)
}

func (w WorkersAPI) Create(ctx context.Context, worker models.Worker) error {
	_, err := w.c.do(ctx, http.MethodPost, workersBase, worker)
	return err
}

func (w WorkersAPI) Update(ctx context.Context, id string, worker models.Worker) error {
	_, err := w.c.do(ctx, http.MethodPut, workersBase+"/"+url.PathEscape(id), worker)
	return err
}

func (w WorkersAPI) Delete(ctx context.Context, id string) error {
	_, err := w.c.do(ctx, http.MethodDelete, workersBase+"/"+url.PathEscape(id), nil)
	return err
}

func (w WorkersAPI) GetByRole(ctx context.Context, roleID string) ([]models.Worker, error) {
	data, err := w.c.do(ctx, http.MethodGet, workersBase+"/role/"+url.PathEscape(roleID), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Worker](data)
}

func (w WorkersAPI) GetAvailable(ctx context.Context) ([]models.Worker, error) {
	data, err := w.c.do(ctx, http.MethodGet, workersAvailable, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Worker](data)
}

// AssignmentsAPI wraps assignment management.
type AssignmentsAPI struct{ c *Client }

func (c *Client) Assignments() AssignmentsAPI { return AssignmentsAPI{c} }

func (a AssignmentsAPI) GetAll(ctx context.Context) ([]models.Assignment, error) {
	data, err := a.c.do(ctx, http.MethodGet, assignmentsBase, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Assignment](data)
}

func (a AssignmentsAPI) GetByID(ctx context.Context, id string) (models.Assignment, error) {
	data, err := a.c.do(ctx, http.MethodGet, assignmentsBase+"/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Assignment{}, err
	}
	return decodeOne[models.Assignment](data)
}

func (a AssignmentsAPI) Create(ctx context.Context, req models.AssignmentRequest) error {
	_, err := a.c.do(ctx, http.MethodPost, assignmentsBase, req)
	return err
}

func (a AssignmentsAPI) Update(ctx context.Context, id string, req models.AssignmentRequest) error {
	_, err := a.c.do(ctx, http.MethodPut, assignmentsBase+"/"+url.PathEscape(id), req)
	return err
}

func (a AssignmentsAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.do(ctx, http.MethodDelete, assignmentsBase+"/"+url.PathEscape(id), nil)
	return err
}

// PickupsAPI wraps the scheduler's pickup endpoints.
type PickupsAPI struct{ c *Client }

func (c *Client) Pickups() PickupsAPI { return PickupsAPI{c} }

func (p PickupsAPI) GetAll(ctx context.Context) ([]models.Pickup, error) {
	data, err := p.c.do(ctx, http.MethodGet, pickupsBase, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Pickup](data)
}

func (p PickupsAPI) GetByID(ctx context.Context, id string) (models.Pickup, error) {
	data, err := p.c.do(ctx, http.MethodGet, pickupsBase+"/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Pickup{}, err
	}
	return decodeOne[models.Pickup](data)
}

func (p PickupsAPI) Create(ctx context.Context, pickup models.Pickup) error {
	_, err := p.c.do(ctx, http.MethodPost, pickupsBase, pickup)
	return err
}

// Update uses the pickup service's distinct /update/{id} path.
func (p PickupsAPI) Update(ctx context.Context, id string, pickup models.Pickup) error {
	_, err := p.c.do(ctx, http.MethodPut, pickupsBase+"/update/"+url.PathEscape(id), pickup)
	return err
}

func (p PickupsAPI) Delete(ctx context.Context, id string) error {
	_, err := p.c.do(ctx, http.MethodDelete, pickupsBase+"/"+url.PathEscape(id), nil)
	return err
}

// WasteLogsAPI wraps the reporting endpoints the admin dashboard reads.
type WasteLogsAPI struct{ c *Client }

func (c *Client) WasteLogs() WasteLogsAPI { return WasteLogsAPI{c} }

func (w WasteLogsAPI) StartCollection(ctx context.Context, log models.WasteLog) error {
	_, err := w.c.do(ctx, http.MethodPost, wasteLogsStart, log)
	return err
}

func (w WasteLogsAPI) EndCollection(ctx context.Context, log models.WasteLog) error {
	_, err := w.c.do(ctx, http.MethodPut, wasteLogsEnd, log)
	return err
}

func (w WasteLogsAPI) ZoneReports(ctx context.Context, params url.Values) ([]models.WasteLog, error) {
	data, err := w.c.do(ctx, http.MethodGet, wasteLogsZoneReports+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.WasteLog](data)
}

func (w WasteLogsAPI) VehicleReports(ctx context.Context, params url.Values) ([]models.WasteLog, error) {
	data, err := w.c.do(ctx, http.MethodGet, wasteLogsVehicleReports+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.WasteLog](data)
}

func (w WasteLogsAPI) WeeklyCollections(ctx context.Context) (models.CollectionSummary, error) {
	return w.summary(ctx, wasteLogsWeeklyCollections)
}

func (w WasteLogsAPI) MonthlyCollections(ctx context.Context) (models.CollectionSummary, error) {
	return w.summary(ctx, wasteLogsMonthlyCollections)
}

func (w WasteLogsAPI) WeeklyWeight(ctx context.Context) (models.CollectionSummary, error) {
	return w.summary(ctx, wasteLogsWeeklyWeight)
}

func (w WasteLogsAPI) MonthlyWeight(ctx context.Context) (models.CollectionSummary, error) {
	return w.summary(ctx, wasteLogsMonthlyWeight)
}

func (w WasteLogsAPI) RecentLogs(ctx context.Context, params url.Values) ([]models.WasteLog, error) {
	path := wasteLogsRecent
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	data, err := w.c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.WasteLog](data)
}

func (w WasteLogsAPI) summary(ctx context.Context, path string) (models.CollectionSummary, error) {
	data, err := w.c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.CollectionSummary{}, err
	}
	return decodeOne[models.CollectionSummary](data)
}
