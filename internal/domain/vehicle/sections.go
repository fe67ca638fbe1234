package vehicle

// Field - строка секции: подпись и значение
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section - именованная группа атрибутов
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

type fieldSpec struct {
	label    string
	variable string
}

type sectionSpec struct {
	title  string
	fields []fieldSpec
}

var layout = []sectionSpec{
	{
		title: "Basic Information",
		fields: []fieldSpec{
			{"Make", "Make"},
			{"Model", "Model"},
			{"Model Year", "Model Year"},
			{"Trim", "Trim"},
			{"Series", "Series"},
			{"Body Class", "Body Class"},
			{"Vehicle Type", "Vehicle Type"},
		},
	},
	{
		title: "Engine Specifications",
		fields: []fieldSpec{
			{"Engine Type", "Engine Model"},
			{"Displacement (L)", "Displacement (L)"},
			{"Cylinders", "Engine Number of Cylinders"},
			{"Engine Configuration", "Engine Configuration"},
			{"Engine Power (HP)", "Engine Power (HP)"},
			{"Valve Train Design", "Valve Train Design"},
			{"Fuel Type", "Fuel Type - Primary"},
			{"Fuel Injection Type", "Fuel Injection Type"},
			{"Alternative Fuel", "Alternative Fuel Type"},
		},
	},
	{
		title: "Transmission & Drive",
		fields: []fieldSpec{
			{"Transmission Style", "Transmission Style"},
			{"Transmission Speeds", "Transmission Speeds"},
			{"Drive Type", "Drive Type"},
			{"Axles", "Axles"},
			{"Brake System", "Brake System Type"},
		},
	},
	{
		title: "Dimensions & Capacity",
		fields: []fieldSpec{
			{"Doors", "Doors"},
			{"Seating Capacity", "Seat Belts - All"},
			{"Wheelbase", "Wheelbase"},
			{"Gross Weight Rating", "Gross Vehicle Weight Rating"},
			{"Curb Weight", "Curb Weight"},
			{"Wheel Size Front", "Wheel Size Front (in)"},
			{"Wheel Size Rear", "Wheel Size Rear (in)"},
		},
	},
	{
		title: "Safety Features",
		fields: []fieldSpec{
			{"Anti-lock Braking", "Anti-Lock Braking System (ABS)"},
			{"Electronic Stability Control", "Electronic Stability Control (ESC)"},
			{"Traction Control", "Traction Control"},
			{"Airbag Locations", "Airbag Locations"},
			{"Driver Assist", "Driver Assistance"},
			{"Adaptive Cruise Control", "Adaptive Cruise Control"},
			{"Parking Assist", "Parking Assist"},
		},
	},
	{
		title: "Manufacturing Details",
		fields: []fieldSpec{
			{"Manufacturer", "Manufacturer Name"},
			{"Plant City", "Plant City"},
			{"Plant State", "Plant State"},
			{"Plant Country", "Plant Country"},
			{"Plant Company", "Plant Company Name"},
			{"Production Sequence", "Sequential Number"},
		},
	},
}

// Sections раскладывает Record по фиксированным секциям.
// Все секции присутствуют всегда, поля без значений пропускаются.
func Sections(rec Record) []Section {
	sections := make([]Section, 0, len(layout))
	for _, s := range layout {
		section := Section{Title: s.title, Fields: []Field{}}
		for _, f := range s.fields {
			if v, ok := rec.Get(f.variable); ok {
				section.Fields = append(section.Fields, Field{Label: f.label, Value: v})
			}
		}
		sections = append(sections, section)
	}
	return sections
}
