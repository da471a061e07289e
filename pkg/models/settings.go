package models

// Settings represents the application configuration
type Settings struct {
	Grid GridSettings `yaml:"grid"`
	UI   UISettings   `yaml:"ui"`
}

// GridSettings controls grid bounds, default sizing and history depth
type GridSettings struct {
	Rows            int `yaml:"rows"`
	Cols            int `yaml:"cols"`
	ColumnWidth     int `yaml:"column_width"`      // character cells
	RowHeight       int `yaml:"row_height"`        // screen lines
	MinColumnWidth  int `yaml:"min_column_width"`  // resize floor
	MinRowHeight    int `yaml:"min_row_height"`    // resize floor
	HistoryCapacity int `yaml:"history_capacity"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowFormulaBar bool `yaml:"show_formula_bar"`
	ShowSheetTabs  bool `yaml:"show_sheet_tabs"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Grid: GridSettings{
			Rows:            1000,
			Cols:            26,
			ColumnWidth:     12,
			RowHeight:       1,
			MinColumnWidth:  4,
			MinRowHeight:    1,
			HistoryCapacity: 50,
		},
		UI: UISettings{
			ShowFormulaBar: true,
			ShowSheetTabs:  true,
		},
	}
}

// Normalize fills zero or negative fields with defaults so a partial
// settings file still yields a usable configuration.
func (s *Settings) Normalize() {
	d := DefaultSettings()
	if s.Grid.Rows <= 0 {
		s.Grid.Rows = d.Grid.Rows
	}
	if s.Grid.Cols <= 0 {
		s.Grid.Cols = d.Grid.Cols
	}
	if s.Grid.ColumnWidth <= 0 {
		s.Grid.ColumnWidth = d.Grid.ColumnWidth
	}
	if s.Grid.RowHeight <= 0 {
		s.Grid.RowHeight = d.Grid.RowHeight
	}
	if s.Grid.MinColumnWidth <= 0 {
		s.Grid.MinColumnWidth = d.Grid.MinColumnWidth
	}
	if s.Grid.MinRowHeight <= 0 {
		s.Grid.MinRowHeight = d.Grid.MinRowHeight
	}
	if s.Grid.HistoryCapacity <= 0 {
		s.Grid.HistoryCapacity = d.Grid.HistoryCapacity
	}
}
