package logbook

// SeedSnapshot returns the starter data loaded on first run, before the
// user has logged anything of their own.
func SeedSnapshot() Snapshot {
	return Snapshot{
		Vehicles: []Vehicle{
			{ID: 1, Name: "Suzuki GD 110s", Year: 2023, EngineCC: 110},
			{ID: 2, Name: "Honda CG-125", Year: 2024, EngineCC: 125},
			{ID: 3, Name: "Toyota Corolla", Year: 2021, EngineCC: 1800},
		},
		Entries: []Entry{
			{ID: 1, VehicleID: 1, Date: "2023-10-15", OdometerKm: 350, Categories: []Category{CategoryOil}, Description: "First oil change (Suzuki Oil)", Cost: 1250, Status: StatusLogged},
			{ID: 2, VehicleID: 1, Date: "2023-10-15", OdometerKm: 350, Categories: []Category{CategoryLabour}, Description: "First tuning and service", Cost: 500, Status: StatusLogged},
			{ID: 3, VehicleID: 1, Date: "2023-11-05", OdometerKm: 950, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 4, VehicleID: 1, Date: "2023-11-20", OdometerKm: 1850, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 5, VehicleID: 1, Date: "2023-11-20", OdometerKm: 1850, Categories: []Category{CategoryLabour}, Description: "Tuning and general checkup", Cost: 400, Status: StatusLogged},
			{ID: 6, VehicleID: 1, Date: "2023-12-15", OdometerKm: 2950, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 7, VehicleID: 1, Date: "2024-01-10", OdometerKm: 4100, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 8, VehicleID: 1, Date: "2024-01-10", OdometerKm: 4100, Categories: []Category{CategoryParts}, Description: "Replaced air filter", Cost: 550, Status: StatusLogged},
			{ID: 9, VehicleID: 1, Date: "2024-01-10", OdometerKm: 4100, Categories: []Category{CategoryLabour}, Description: "Full tuning", Cost: 600, Status: StatusLogged},
			{ID: 10, VehicleID: 1, Date: "2024-02-05", OdometerKm: 5200, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 11, VehicleID: 1, Date: "2024-03-01", OdometerKm: 6400, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 12, VehicleID: 1, Date: "2024-03-25", OdometerKm: 7500, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 13, VehicleID: 1, Date: "2024-03-25", OdometerKm: 7500, Categories: []Category{CategoryLabour}, Description: "General tuning", Cost: 400, Status: StatusLogged},
			{ID: 14, VehicleID: 1, Date: "2024-04-20", OdometerKm: 8800, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 15, VehicleID: 1, Date: "2024-04-20", OdometerKm: 8800, Categories: []Category{CategoryParts}, Description: "Replaced oil filter", Cost: 250, Status: StatusLogged},
			{ID: 16, VehicleID: 1, Date: "2024-05-15", OdometerKm: 10100, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1300, Status: StatusLogged},
			{ID: 17, VehicleID: 1, Date: "2024-05-15", OdometerKm: 10100, Categories: []Category{CategoryLabour}, Description: "Full tuning and carburetor clean", Cost: 700, Status: StatusLogged},
			{ID: 18, VehicleID: 1, Date: "2024-05-15", OdometerKm: 10100, Categories: []Category{CategoryParts}, Description: "Replaced spark plug", Cost: 450, Status: StatusLogged},
			{ID: 19, VehicleID: 1, Date: "2024-06-10", OdometerKm: 11400, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1350, Status: StatusLogged},
			{ID: 20, VehicleID: 1, Date: "2024-07-05", OdometerKm: 12800, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1350, Status: StatusLogged},
			{ID: 21, VehicleID: 1, Date: "2024-07-05", OdometerKm: 12800, Categories: []Category{CategoryParts}, Description: "Replaced front brake pads", Cost: 800, Status: StatusLogged},
			{ID: 22, VehicleID: 1, Date: "2024-07-28", OdometerKm: 14200, Categories: []Category{CategoryOil}, Description: "Oil change (Havoline)", Cost: 1350, Status: StatusLogged},
			{ID: 23, VehicleID: 1, Date: "2024-07-28", OdometerKm: 14200, Categories: []Category{CategoryLabour}, Description: "Tuning and chain adjustment", Cost: 500, Status: StatusLogged},

			{ID: 101, VehicleID: 1, Date: "2024-07-01", OdometerKm: 12650, Categories: []Category{CategoryFuel}, Description: "Fuel top-up", Cost: 1000, Liters: 3.5, PricePerLiter: 285.71, Status: StatusLogged},
			{ID: 102, VehicleID: 1, Date: "2024-07-08", OdometerKm: 12950, Categories: []Category{CategoryFuel}, Description: "Full tank", Cost: 2500, Liters: 8.8, PricePerLiter: 284.09, Status: StatusLogged},
			{ID: 103, VehicleID: 1, Date: "2024-07-15", OdometerKm: 13350, Categories: []Category{CategoryFuel}, Description: "Fuel", Cost: 1500, Liters: 5.2, PricePerLiter: 288.46, Status: StatusLogged},
			{ID: 104, VehicleID: 1, Date: "2024-07-22", OdometerKm: 13800, Categories: []Category{CategoryFuel}, Description: "Hi-Octane Mix", Cost: 2000, Liters: 6.5, PricePerLiter: 307.69, Status: StatusLogged},
			{ID: 105, VehicleID: 1, Date: "2024-07-29", OdometerKm: 14250, Categories: []Category{CategoryFuel}, Description: "Regular fuel", Cost: 1200, Liters: 4.1, PricePerLiter: 292.68, Status: StatusLogged},

			{ID: 201, VehicleID: 3, Date: "2024-05-01", OdometerKm: 15000, Categories: []Category{CategoryOil, CategoryParts}, Description: "Oil and filter change (synthetic)", Cost: 8000, Status: StatusLogged},
		},
	}
}
