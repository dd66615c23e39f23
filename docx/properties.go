package docx

import "fmt"

// WidthType is the unit of a table or cell width (<w:tblW>/<w:tcW> type
// attribute).
type WidthType string

// Width types defined by OOXML. WidthUnsupported stands in for values this
// package does not model.
const (
	WidthDXA         WidthType = "dxa" // twentieths of a point
	WidthAuto        WidthType = "auto"
	WidthPct         WidthType = "pct" // fiftieths of a percent
	WidthNil         WidthType = "nil"
	WidthUnsupported WidthType = "unsupported"
)

// ParseWidthType parses a width-type string. Unknown values are an error so
// callers can decide their own fallback.
func ParseWidthType(s string) (WidthType, error) {
	switch WidthType(s) {
	case WidthDXA, WidthAuto, WidthPct, WidthNil:
		return WidthType(s), nil
	}
	return WidthUnsupported, fmt.Errorf("docx: unknown width type %q", s)
}

// Justification is a horizontal alignment value (<w:jc>).
type Justification string

// Alignment values accepted for tables and paragraphs.
const (
	JustificationLeft   Justification = "left"
	JustificationCenter Justification = "center"
	JustificationRight  Justification = "right"
	JustificationStart  Justification = "start"
	JustificationEnd    Justification = "end"
)

// ParseJustification parses an alignment string.
func ParseJustification(s string) (Justification, error) {
	switch Justification(s) {
	case JustificationLeft, JustificationCenter, JustificationRight,
		JustificationStart, JustificationEnd:
		return Justification(s), nil
	}
	return "", fmt.Errorf("docx: unknown justification %q", s)
}

// BorderType is an OOXML border style (<w:top w:val="...">).
type BorderType string

// Border styles modeled by this package. This is the subset of the OOXML
// border-style enumeration that round-trips through the virtual tables.
const (
	BorderTypeNil        BorderType = "nil"
	BorderTypeNone       BorderType = "none"
	BorderTypeSingle     BorderType = "single"
	BorderTypeThick      BorderType = "thick"
	BorderTypeDouble     BorderType = "double"
	BorderTypeDotted     BorderType = "dotted"
	BorderTypeDashed     BorderType = "dashed"
	BorderTypeDotDash    BorderType = "dotDash"
	BorderTypeDotDotDash BorderType = "dotDotDash"
	BorderTypeTriple     BorderType = "triple"
	BorderTypeWave       BorderType = "wave"
)

// ParseBorderType parses a border-style string.
func ParseBorderType(s string) (BorderType, error) {
	switch BorderType(s) {
	case BorderTypeNil, BorderTypeNone, BorderTypeSingle, BorderTypeThick,
		BorderTypeDouble, BorderTypeDotted, BorderTypeDashed,
		BorderTypeDotDash, BorderTypeDotDotDash, BorderTypeTriple,
		BorderTypeWave:
		return BorderType(s), nil
	}
	return "", fmt.Errorf("docx: unknown border type %q", s)
}

// TableWidth is a width value together with its unit.
type TableWidth struct {
	Width uint32    `json:"width"`
	Type  WidthType `json:"widthType"`
}

// BorderPosition names one edge of a table or cell border set.
type BorderPosition string

// Border positions for tables and cells.
const (
	BorderTop     BorderPosition = "top"
	BorderLeft    BorderPosition = "left"
	BorderBottom  BorderPosition = "bottom"
	BorderRight   BorderPosition = "right"
	BorderInsideH BorderPosition = "insideH"
	BorderInsideV BorderPosition = "insideV"
)

// BorderPositions lists all positions in schema order.
var BorderPositions = []BorderPosition{
	BorderTop, BorderLeft, BorderBottom, BorderRight, BorderInsideH, BorderInsideV,
}

// Border describes the rendering of one edge: style, line weight (eighths of
// a point), and color.
type Border struct {
	Type  BorderType `json:"borderType"`
	Size  uint32     `json:"size"`
	Color string     `json:"color"`
}

// TableBorder is a border descriptor bound to a position, built up
// field-by-field before being merged into a border set.
type TableBorder struct {
	Position BorderPosition
	Border
}

// NewTableBorder returns a border descriptor for the given position with the
// default rendering (single line, size 2, black).
func NewTableBorder(pos BorderPosition) TableBorder {
	return TableBorder{
		Position: pos,
		Border:   Border{Type: BorderTypeSingle, Size: 2, Color: "000000"},
	}
}

// WithColor returns a copy of the descriptor with the color replaced.
func (b TableBorder) WithColor(color string) TableBorder {
	b.Color = color
	return b
}

// WithSize returns a copy of the descriptor with the line weight replaced.
func (b TableBorder) WithSize(size uint32) TableBorder {
	b.Size = size
	return b
}

// WithType returns a copy of the descriptor with the border style replaced.
func (b TableBorder) WithType(t BorderType) TableBorder {
	b.Type = t
	return b
}

// TableBorders is the border set of a table or cell. A nil entry means the
// edge carries no explicit border.
type TableBorders struct {
	Top     *Border `json:"top,omitempty"`
	Left    *Border `json:"left,omitempty"`
	Bottom  *Border `json:"bottom,omitempty"`
	Right   *Border `json:"right,omitempty"`
	InsideH *Border `json:"insideH,omitempty"`
	InsideV *Border `json:"insideV,omitempty"`
}

// Get returns the border at the given position, or nil. Safe on a nil set.
func (b *TableBorders) Get(pos BorderPosition) *Border {
	if b == nil {
		return nil
	}
	switch pos {
	case BorderTop:
		return b.Top
	case BorderLeft:
		return b.Left
	case BorderBottom:
		return b.Bottom
	case BorderRight:
		return b.Right
	case BorderInsideH:
		return b.InsideH
	case BorderInsideV:
		return b.InsideV
	}
	return nil
}

// set replaces the border at one position, leaving the others untouched.
func (b *TableBorders) set(pos BorderPosition, border Border) {
	switch pos {
	case BorderTop:
		b.Top = &border
	case BorderLeft:
		b.Left = &border
	case BorderBottom:
		b.Bottom = &border
	case BorderRight:
		b.Right = &border
	case BorderInsideH:
		b.InsideH = &border
	case BorderInsideV:
		b.InsideV = &border
	}
}

// TableProperty is the style-property bag of a table. Optional attributes are
// explicit pointer fields so absence is represented in the type, not guessed
// at read time.
type TableProperty struct {
	StyleID       string        `json:"style,omitempty"`
	Width         *TableWidth   `json:"width,omitempty"`
	Justification Justification `json:"justification,omitempty"`
	Borders       *TableBorders `json:"borders,omitempty"`
}

// SetWidth replaces the width pair wholesale.
func (p *TableProperty) SetWidth(width uint32, t WidthType) {
	p.Width = &TableWidth{Width: width, Type: t}
}

// Align replaces the table alignment.
func (p *TableProperty) Align(j Justification) {
	p.Justification = j
}

// SetBorder merges one positioned border into the border set. Positions not
// named by the descriptor are untouched.
func (p *TableProperty) SetBorder(b TableBorder) {
	if p.Borders == nil {
		p.Borders = &TableBorders{}
	}
	p.Borders.set(b.Position, b.Border)
}

// CellProperty is the style-property bag of a table cell.
type CellProperty struct {
	Width         *TableWidth   `json:"width,omitempty"`
	Borders       *TableBorders `json:"borders,omitempty"`
	GridSpan      uint32        `json:"gridSpan,omitempty"`
	VerticalMerge string        `json:"verticalMerge,omitempty"` // restart or continue
	VerticalAlign string        `json:"verticalAlign,omitempty"` // top, center, bottom
	Shading       string        `json:"shading,omitempty"`       // fill color
}

// SetWidth replaces the width pair wholesale.
func (p *CellProperty) SetWidth(width uint32, t WidthType) {
	p.Width = &TableWidth{Width: width, Type: t}
}

// SetBorder merges one positioned border into the cell's border set.
func (p *CellProperty) SetBorder(b TableBorder) {
	if p.Borders == nil {
		p.Borders = &TableBorders{}
	}
	p.Borders.set(b.Position, b.Border)
}
