package models

// GroupIcon is the glyph shown for every group in the drawing page.
const GroupIcon = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

// Worker is one draw participant as consumed by the front end.
type Worker struct {
	Name             string      `json:"name"`
	Tickets          int         `json:"tickets"`
	EmployeeID       string      `json:"employeeId"`
	GroupNo          string      `json:"groupNo"`
	Agent            string      `json:"agent"`
	AgencyCode       string      `json:"agencyCode"`
	District         string      `json:"district"`
	PrizeCounts      PrizeCounts `json:"prizeCounts"`
	TotalPrizeAmount float64     `json:"totalPrizeAmount"`
}

// Group is one draw group with its workers.
type Group struct {
	// ID is the synthetic "group-N" identifier.
	ID string `json:"id"`
	// Name is the family name, or the group number when no roster data matched.
	Name string `json:"name"`
	// GroupNo is the group identifier as written in the workbook.
	GroupNo     string   `json:"groupNo"`
	District    string   `json:"district"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Workers     []Worker `json:"workers"`
}

// DrawData is the full output document: groups keyed by synthetic id.
type DrawData struct {
	Groups []Group
	// Stats is not serialized; it describes the extraction that produced Groups.
	Stats ExtractStats
}

// Group returns the group with the given synthetic id.
func (d DrawData) Group(id string) (Group, bool) {
	for _, g := range d.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// MarshalJSON encodes the groups as an object keyed by id, in group order.
func (d DrawData) MarshalJSON() ([]byte, error) {
	fields := make([]objectField, 0, len(d.Groups))
	for _, g := range d.Groups {
		fields = append(fields, objectField{key: g.ID, value: g})
	}
	return marshalObject(fields)
}
