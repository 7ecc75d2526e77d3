package store

// Cache keys for each persisted collection. The version suffix allows a
// future format change to start from a clean key.
const (
	KeyWorkOrders      = "WORK_ORDERS_CACHE_V1"
	KeyVendors         = "VENDORS_CACHE_V1"
	KeyBranches        = "BRANCHES_CACHE_V1"
	KeyVehicles        = "VEHICLES_CACHE_V1"
	KeyECGBills        = "ECG_BILLS_CACHE_V1"
	KeyWaterBills      = "WATER_BILLS_CACHE_V1"
	KeyFuelLogs        = "FUEL_LOGS_CACHE_V1"
	KeyReorderRequests = "REORDER_REQUESTS_CACHE_V1"
	KeyUsers           = "USERS_CACHE_V1"
)
