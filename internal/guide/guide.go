// Package guide carries the built-in per-model maintenance schedule
// reference shown by the guide command.
package guide

// Task is one line item in a service checklist.
type Task struct {
	Item   string
	Action string
}

// Interval is one service milestone in a schedule.
type Interval struct {
	Title    string
	Subtitle string
	Tasks    []Task
}

// Schedule is a model's full set of service milestones.
type Schedule []Interval

// Schedules holds the built-in guides, keyed by vehicle name.
// "DEFAULT" is the generic fallback.
var Schedules = map[string]Schedule{
	"Suzuki GD 110s": {
		{
			Title:    "First Service",
			Subtitle: "At 1,000 KM or 1 Month",
			Tasks: []Task{
				{Item: "Engine Oil", Action: "Replace"},
				{Item: "Oil Filter", Action: "Clean"},
				{Item: "Air Filter", Action: "Clean"},
				{Item: "Spark Plug", Action: "Clean & Adjust Gap"},
				{Item: "Tappet Clearance", Action: "Inspect & Adjust"},
				{Item: "Drive Chain", Action: "Clean, Lubricate & Adjust Slack"},
				{Item: "Brakes", Action: "Inspect & Adjust"},
				{Item: "Clutch", Action: "Inspect & Adjust Free Play"},
				{Item: "Nuts & Bolts", Action: "Inspect & Tighten Chassis Bolts"},
			},
		},
		{
			Title:    "Regular Service",
			Subtitle: "Every 2,500 - 3,000 KM or 3 Months",
			Tasks: []Task{
				{Item: "Engine Oil", Action: "Replace"},
				{Item: "Air Filter", Action: "Clean (Replace if necessary)"},
				{Item: "Drive Chain", Action: "Clean, Lubricate & Adjust Slack"},
				{Item: "Brakes", Action: "Inspect & Adjust"},
				{Item: "Battery", Action: "Check Electrolyte Level"},
				{Item: "Tire Pressure", Action: "Check & Inflate"},
			},
		},
		{
			Title:    "Periodic Major Service",
			Subtitle: "Every 5,000 - 6,000 KM or 6 Months",
			Tasks: []Task{
				{Item: "All Regular Service Tasks", Action: "Perform"},
				{Item: "Oil Filter", Action: "Replace"},
				{Item: "Spark Plug", Action: "Replace"},
				{Item: "Tappet Clearance", Action: "Inspect & Adjust"},
				{Item: "Carburetor", Action: "Clean & Tune"},
				{Item: "Wheel Bearings", Action: "Inspect"},
			},
		},
	},
	"Honda CG-125": {
		{
			Title:    "First Service",
			Subtitle: "At 1,000 KM or 1 Month",
			Tasks: []Task{
				{Item: "Engine Oil", Action: "Replace"},
				{Item: "Centrifugal Oil Filter", Action: "Clean"},
				{Item: "Tappet Clearance", Action: "Inspect & Adjust"},
				{Item: "Spark Plug", Action: "Clean & Adjust"},
				{Item: "Drive Chain", Action: "Clean, Lubricate & Adjust"},
				{Item: "Brakes", Action: "Inspect & Adjust"},
				{Item: "Clutch", Action: "Adjust Free Play"},
				{Item: "Nuts & Bolts", Action: "Inspect & Tighten"},
			},
		},
		{
			Title:    "Regular Service",
			Subtitle: "Every 2,000 KM or 2 Months",
			Tasks: []Task{
				{Item: "Engine Oil", Action: "Replace"},
				{Item: "Air Filter", Action: "Clean"},
				{Item: "Drive Chain", Action: "Clean, Lubricate & Adjust"},
				{Item: "Brakes", Action: "Inspect & Adjust"},
				{Item: "Tire Pressure", Action: "Check & Inflate"},
			},
		},
		{
			Title:    "Periodic Major Service",
			Subtitle: "Every 4,000 KM or 4 Months",
			Tasks: []Task{
				{Item: "All Regular Service Tasks", Action: "Perform"},
				{Item: "Tappet Clearance", Action: "Inspect & Adjust"},
				{Item: "Spark Plug", Action: "Clean or Replace"},
				{Item: "Centrifugal Oil Filter", Action: "Clean"},
				{Item: "Fuel Strainer Screen", Action: "Clean"},
			},
		},
	},
	"DEFAULT": {
		{
			Title:    "General Motorcycle Guide",
			Subtitle: "A basic checklist for any motorcycle.",
			Tasks: []Task{
				{Item: "Engine Oil", Action: "Replace every 1,500 - 3,000 KM."},
				{Item: "Drive Chain", Action: "Clean and lubricate every 500 - 800 KM."},
				{Item: "Brakes", Action: "Check fluid level and pad wear monthly."},
				{Item: "Tires", Action: "Check pressure weekly and inspect for wear."},
				{Item: "Air Filter", Action: "Clean or replace every 4,000 - 6,000 KM."},
				{Item: "Spark Plug", Action: "Inspect or replace every 8,000 - 10,000 KM."},
			},
		},
	},
}

// ForVehicle returns the schedule for a vehicle name, falling back to
// the generic guide.
func ForVehicle(name string) Schedule {
	if s, ok := Schedules[name]; ok {
		return s
	}
	return Schedules["DEFAULT"]
}
