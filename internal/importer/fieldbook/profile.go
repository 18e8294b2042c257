package fieldbook

// Profile describes the column layout of one fieldbook sheet. Adding a
// new export layout is just adding a new Profile to the profiles slice.
type Profile struct {
	Name string

	DateCol  string
	FieldCol string

	// Harvest sheets.
	CropCol      string
	WeightCol    string
	RateCol      string
	CollectorCol string

	// Expense sheets.
	KindCol     string
	DescCol     string
	QuantityCol string
	AmountCol   string
}

// harvest reports whether this profile describes a harvest sheet.
func (p Profile) harvest() bool {
	return p.WeightCol != ""
}

// requiredCols returns the columns that must all be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	if p.harvest() {
		return []string{p.DateCol, p.FieldCol, p.CropCol, p.WeightCol}
	}

	return []string{p.DateCol, p.KindCol, p.AmountCol}
}

// profiles is the ordered list of layouts to try during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:         "harvest",
		DateCol:      "Date",
		FieldCol:     "Field",
		CropCol:      "Crop",
		WeightCol:    "Weight (kg)",
		RateCol:      "Rate",
		CollectorCol: "Collector",
	},
	{
		Name:         "harvest-plain",
		DateCol:      "Date",
		FieldCol:     "Field",
		CropCol:      "Crop",
		WeightCol:    "Weight",
		RateCol:      "Rate",
		CollectorCol: "Collector",
	},
	{
		Name:        "expense",
		DateCol:     "Date",
		FieldCol:    "Field",
		KindCol:     "Type",
		DescCol:     "Description",
		QuantityCol: "Qty",
		AmountCol:   "Amount",
	},
}
