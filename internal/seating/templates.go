package seating

// Template describes a pre-populated layout.
type Template struct {
	StandNames      []string
	TiersPerStand   int
	SectionsPerTier int
	RowsPerSection  int
}

var (
	StadiumTemplate = Template{
		StandNames:      []string{"North Stand", "East Stand", "South Stand", "West Stand"},
		TiersPerStand:   2,
		SectionsPerTier: 3,
		RowsPerSection:  10,
	}
	TheaterTemplate = Template{
		StandNames:      []string{"Stalls"},
		TiersPerStand:   3,
		SectionsPerTier: 3,
		RowsPerSection:  12,
	}
	ArenaTemplate = Template{
		StandNames:      []string{"Floor", "Lower Bowl", "Upper Bowl"},
		TiersPerStand:   1,
		SectionsPerTier: 4,
		RowsPerSection:  8,
	}
)

// TemplateFor maps a layout type to its template. Unknown types get a blank layout.
func TemplateFor(layoutType string) (Template, bool) {
	switch layoutType {
	case "STADIUM":
		return StadiumTemplate, true
	case "THEATER":
		return TheaterTemplate, true
	case "ARENA":
		return ArenaTemplate, true
	default:
		return Template{}, false
	}
}

// NewFromTemplate builds a layout through the regular mutation path so the
// result satisfies the same invariants as one built by hand.
func (e *Editor) NewFromTemplate(name, code string, tpl Template) (*Stadium, error) {
	s := e.NewStadium(name, code)
	var err error
	for _, standName := range tpl.StandNames {
		var standID string
		if s, standID, err = e.AddStand(s, standName); err != nil {
			return nil, err
		}
		for t := 0; t < tpl.TiersPerStand; t++ {
			var tierID string
			if s, tierID, err = e.AddTier(s, standID, ""); err != nil {
				return nil, err
			}
			for c := 0; c < tpl.SectionsPerTier; c++ {
				var sectionID string
				if s, sectionID, err = e.AddSection(s, standID, tierID, ""); err != nil {
					return nil, err
				}
				for r := 0; r < tpl.RowsPerSection; r++ {
					if s, _, err = e.AddRow(s, standID, tierID, sectionID); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return s, nil
}
