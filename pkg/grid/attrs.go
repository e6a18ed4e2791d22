package grid

// Attribute namespaces understood by the grid model.
//
// The "layout" namespace carries the structural placement attributes the
// drop handler produces. The "editor" namespace carries measured geometry
// the editor harness maintains after each layout pass (grid line
// coordinates, text baselines); reload treats it as the authoritative
// source for pixel positions.
const (
	NSLayout = "layout"
	NSEditor = "editor"
)

// Placement attributes in the layout namespace.
const (
	AttrRow         = "row"
	AttrColumn      = "column"
	AttrRowSpan     = "rowSpan"
	AttrColumnSpan  = "columnSpan"
	AttrGravity     = "gravity"
	AttrColumnCount = "columnCount"
	AttrRowCount    = "rowCount"
)

// Measured geometry attributes in the editor namespace. Inset is the
// element's uniform transparent padding; the drop handler subtracts it
// when sizing a newly created row or column.
const (
	AttrColumnLines = "columnLines"
	AttrRowLines    = "rowLines"
	AttrBaseline    = "baseline"
	AttrInset       = "inset"
)

// Gravity tokens. Combined tokens are joined with "|".
const (
	GravityEnd              = "end"
	GravityBottom           = "bottom"
	GravityCenterHorizontal = "center_horizontal"
	GravityBaseline         = "baseline"
)
