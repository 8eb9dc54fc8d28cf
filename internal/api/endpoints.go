package api

// Backend paths. Zones keep their verb-suffixed legacy layout; pickups live
// under the scheduler prefix and use /update/{id} for updates.
const (
	authLogin  = "/auth/login"
	authLogout = "/auth/logout"

	zonesList        = "/wastewise/admin/zones/list"
	zonesCreate      = "/wastewise/admin/zones/create"
	zonesUpdate      = "/wastewise/admin/zones/update"
	zonesDelete      = "/wastewise/admin/zones/delete"
	zonesBase        = "/wastewise/admin/zones"
	zonesNamesAndIDs = "/wastewise/admin/zones/namesandids"

	routesBase = "/wastewise/admin/routes"

	vehiclesBase         = "/wastewise/admin/vehicle-management"
	vehiclesPickupTrucks = "/wastewise/admin/vehicle-management/filter/pickuptruck"
	vehiclesRouteTrucks  = "/wastewise/admin/vehicle-management/filter/routetruck"

	workersBase      = "/wastewise/admin/workers"
	workersAvailable = "/wastewise/admin/workers/available"

	assignmentsBase = "/wastewise/admin/assignments"

	pickupsBase = "/wastewise/scheduler/pickups"

	wasteLogsStart              = "/wastewise/admin/wastelogs/start"
	wasteLogsEnd                = "/wastewise/admin/wastelogs/end"
	wasteLogsZoneReports        = "/wastewise/admin/wastelogs/reports/zone"
	wasteLogsVehicleReports     = "/wastewise/admin/wastelogs/reports/vehicle"
	wasteLogsWeeklyCollections  = "/wastewise/admin/wastelogs/reports/totalCollections/weekly"
	wasteLogsMonthlyCollections = "/wastewise/admin/wastelogs/reports/totalCollections/monthly"
	wasteLogsWeeklyWeight       = "/wastewise/admin/wastelogs/reports/totalWeight/weekly"
	wasteLogsMonthlyWeight      = "/wastewise/admin/wastelogs/reports/totalWeight/monthly"
	wasteLogsRecent             = "/wastewise/admin/wastelogs/reports/recentLogs"
)
