package domain

// AttributeEntry represents one named, possibly-unitted measurement or
// property inside a datasheet attribute group.
type AttributeEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// Format renders the entry for display: the raw value alone when no unit is
// present, otherwise "<value> <unit>".
func (e AttributeEntry) Format() string {
	if e.Unit == "" {
		return e.Value
	}
	return e.Value + " " + e.Unit
}

// ProductRecord is one product datasheet document. The designation is the
// product identifier used for lookups; each attribute group is an ordered
// sequence of entries and may be absent.
type ProductRecord struct {
	Designation    string           `json:"designation"`
	Dimensions     []AttributeEntry `json:"dimensions,omitempty"`
	Properties     []AttributeEntry `json:"properties,omitempty"`
	Performance    []AttributeEntry `json:"performance,omitempty"`
	Logistics      []AttributeEntry `json:"logistics,omitempty"`
	Specifications []AttributeEntry `json:"specifications,omitempty"`
}
