package presets

import "time"

// Preset is a named, reusable bundle of document-type requests grouped into
// recurrence-labeled bins. Presets are the only durable artifact of the
// portal besides uploaded file content.
type Preset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bins      []Bin     `json:"bins"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Bin is a labeled group of document-type names. The label text implies the
// recurrence frequency of every item in the bin.
type Bin struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Item is a single document-type name inside a bin.
type Item struct {
	Name string `json:"name"`
}

func clonePreset(p Preset) Preset {
	out := p
	out.Bins = cloneBins(p.Bins)
	return out
}

// cloneBins deep-copies bins so stored presets never alias caller slices.
func cloneBins(bins []Bin) []Bin {
	out := make([]Bin, 0, len(bins))
	for _, b := range bins {
		items := make([]Item, 0, len(b.Items))
		for _, it := range b.Items {
			items = append(items, Item{Name: it.Name})
		}
		out = append(out, Bin{ID: b.ID, Label: b.Label, Items: items})
	}
	return out
}
