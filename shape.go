package geom

import (
	"errors"
	"math"
)

// Shape is the common interface of cross-sectional profiles.
//
// Shapes are thin planar regions that expose their area, centroid, and
// inertia without mandating a particular representation: polygonal profiles
// delegate to a cached [Polygon], while analytic ones like [Disk] use closed
// forms.
type Shape interface {
	// Area returns the planar area.
	Area() float64

	// Perimeter returns the boundary length.
	Perimeter() float64

	// Centroid returns the centroid in global coordinates.
	Centroid() Vec3

	// SecondMomentOfArea returns the global second moment of area tensor.
	SecondMomentOfArea() Mat3

	// Linearized returns a polygonal approximation of the boundary with at
	// least the given number of sides. Polygonal shapes return their exact
	// polygon regardless of sides.
	Linearized(sides int) *Polygon

	// Circumference is an alias for Perimeter, for shapes where that
	// terminology is preferred.
	Circumference() float64
}

var (
	_ Shape = Rectangle{}
	_ Shape = Disk{}
	_ Shape = ShapeI{}
	_ Shape = ShapeC{}
	_ Shape = ShapeL{}
	_ Shape = ShapeT{}
)

// polygonShape implements [Shape] by delegating to a cached polygon.
type polygonShape struct {
	polygon *Polygon
}

// Polygon returns a copy of the underlying polygon.
func (s polygonShape) Polygon() *Polygon {
	return s.polygon.Clone()
}

func (s polygonShape) Area() float64 {
	return s.polygon.Area()
}

func (s polygonShape) Perimeter() float64 {
	return s.polygon.Perimeter()
}

func (s polygonShape) Centroid() Vec3 {
	return s.polygon.Centroid()
}

func (s polygonShape) SecondMomentOfArea() Mat3 {
	return s.polygon.SecondMomentOfArea()
}

func (s polygonShape) Linearized(sides int) *Polygon {
	return s.polygon.Clone()
}

func (s polygonShape) Circumference() float64 {
	return s.Perimeter()
}

// mustPolygon wraps construction of the hard-coded profile outlines, whose
// vertex lists are valid by construction.
func mustPolygon(vertices []Vec3) polygonShape {
	p, err := NewPolygon(vertices)
	if err != nil {
		panic(err)
	}
	return polygonShape{polygon: p}
}

// rectanglePolygon creates an axis-aligned rectangle centered at the origin,
// wound counter-clockwise.
func rectanglePolygon(width, height float64) polygonShape {
	hw := width / 2
	hh := height / 2
	return mustPolygon([]Vec3{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	})
}

// regularNgon builds a regular n-gon approximation of a circle centered at
// the origin.
func regularNgon(radius float64, sides int) *Polygon {
	step := 2 * math.Pi / float64(sides)
	verts := make([]Vec3, sides)
	for i := range verts {
		sin, cos := math.Sincos(float64(i) * step)
		verts[i] = Vec3{X: radius * cos, Y: radius * sin}
	}
	p, err := NewPolygon(verts)
	if err != nil {
		panic(err)
	}
	return p
}

// Rectangle is a solid rectangular profile. The hole dimensions are retained
// as metadata but not yet subtracted from the outline.
type Rectangle struct {
	Width      float64
	Height     float64
	HoleWidth  float64
	HoleHeight float64
	polygonShape
}

// positiveDims reports whether every dimension exceeds the tolerance.
func positiveDims(dims ...float64) bool {
	for _, d := range dims {
		if d <= epsilon {
			return false
		}
	}
	return true
}

// NewRectangle returns the rectangle profile centered at the origin. Width
// and height must be positive; the hole must be non-negative and fit
// strictly inside the outline.
func NewRectangle(width, height, holeWidth, holeHeight float64) (Rectangle, error) {
	if !positiveDims(width, height) {
		return Rectangle{}, errors.New("geom: rectangle dimensions must be positive")
	}
	if holeWidth < 0 || holeHeight < 0 || holeWidth >= width || holeHeight >= height {
		return Rectangle{}, errors.New("geom: rectangle hole must fit inside the outline")
	}
	return Rectangle{
		Width:        width,
		Height:       height,
		HoleWidth:    holeWidth,
		HoleHeight:   holeHeight,
		polygonShape: rectanglePolygon(width, height),
	}, nil
}

// Disk is a solid circular profile, optionally with a concentric hole. Its
// metrics are closed forms rather than polygon sums.
type Disk struct {
	Radius     float64
	HoleRadius float64
}

const diskLinearizationSides = 256

// NewDisk returns the disk profile centered at the origin. The outer radius
// must be positive and exceed the non-negative hole radius.
func NewDisk(radius, holeRadius float64) (Disk, error) {
	if !positiveDims(radius) || holeRadius < 0 || radius <= holeRadius {
		return Disk{}, errors.New("geom: outer radius must exceed hole radius")
	}
	return Disk{Radius: radius, HoleRadius: holeRadius}, nil
}

func (d Disk) Area() float64 {
	return math.Pi * (d.Radius*d.Radius - d.HoleRadius*d.HoleRadius)
}

func (d Disk) Perimeter() float64 {
	return d.Circumference()
}

func (d Disk) Circumference() float64 {
	return 2 * math.Pi * d.Radius
}

func (d Disk) Centroid() Vec3 {
	return Vec3{}
}

func (d Disk) SecondMomentOfArea() Mat3 {
	ix := math.Pi * (math.Pow(d.Radius, 4) - math.Pow(d.HoleRadius, 4)) / 4
	return Mat3{
		ix, 0, 0,
		0, ix, 0,
		0, 0, 2 * ix,
	}
}

// Linearized approximates the outer circle with a regular n-gon of at least
// 256 sides. The hole is not represented.
func (d Disk) Linearized(sides int) *Polygon {
	return regularNgon(d.Radius, max(sides, diskLinearizationSides))
}

// ShapeI is a doubly symmetric I profile. Fillet, toe radius, and taper
// parameters are retained as metadata; the outline is the sharp-cornered
// profile.
type ShapeI struct {
	BottomWidth      float64
	TopWidth         float64
	Height           float64
	BottomThickness  float64
	TopThickness     float64
	WebThickness     float64
	Fillet           float64
	TopToeRadius     float64
	BottomToeRadius  float64
	TopTaperAngle    float64
	BottomTaperAngle float64
	polygonShape
}

// NewShapeI returns the I profile centered at the origin. All dimensions
// must be positive and the height must exceed the combined flange thickness.
func NewShapeI(bottomWidth, topWidth, height, bottomThickness, topThickness, webThickness, fillet, topToeRadius, bottomToeRadius, topTaperAngle, bottomTaperAngle float64) (ShapeI, error) {
	if !positiveDims(bottomWidth, topWidth, height, bottomThickness, topThickness, webThickness) {
		return ShapeI{}, errors.New("geom: I-section dimensions must be positive")
	}
	if height <= bottomThickness+topThickness {
		return ShapeI{}, errors.New("geom: I-section height must exceed flange thickness")
	}
	hw := height / 2
	bottomHalf := bottomWidth / 2
	topHalf := topWidth / 2
	webHalf := webThickness / 2

	outline := mustPolygon([]Vec3{
		{X: -bottomHalf, Y: -hw},
		{X: bottomHalf, Y: -hw},
		{X: bottomHalf, Y: -hw + bottomThickness},
		{X: webHalf, Y: -hw + bottomThickness},
		{X: webHalf, Y: hw - topThickness},
		{X: topHalf, Y: hw - topThickness},
		{X: topHalf, Y: hw},
		{X: -topHalf, Y: hw},
		{X: -topHalf, Y: hw - topThickness},
		{X: -webHalf, Y: hw - topThickness},
		{X: -webHalf, Y: -hw + bottomThickness},
		{X: -bottomHalf, Y: -hw + bottomThickness},
	})
	return ShapeI{
		BottomWidth:      bottomWidth,
		TopWidth:         topWidth,
		Height:           height,
		BottomThickness:  bottomThickness,
		TopThickness:     topThickness,
		WebThickness:     webThickness,
		Fillet:           fillet,
		TopToeRadius:     topToeRadius,
		BottomToeRadius:  bottomToeRadius,
		TopTaperAngle:    topTaperAngle,
		BottomTaperAngle: bottomTaperAngle,
		polygonShape:     outline,
	}, nil
}

// ShapeC is a channel profile. The web lies against the Y axis and the
// flanges extend in +X. Fillet, toe radius, back fillet, and taper
// parameters are retained as metadata.
type ShapeC struct {
	BottomWidth      float64
	TopWidth         float64
	Height           float64
	BottomThickness  float64
	TopThickness     float64
	WebThickness     float64
	Fillet           float64
	TopToeRadius     float64
	BottomToeRadius  float64
	TopBackFillet    float64
	BottomBackFillet float64
	TopTaperAngle    float64
	BottomTaperAngle float64
	polygonShape
}

// NewShapeC returns the channel profile. All dimensions must be positive and
// the height must exceed the combined flange thickness.
func NewShapeC(bottomWidth, topWidth, height, bottomThickness, topThickness, webThickness, fillet, topToeRadius, bottomToeRadius, topBackFillet, bottomBackFillet, topTaperAngle, bottomTaperAngle float64) (ShapeC, error) {
	if !positiveDims(bottomWidth, topWidth, height, bottomThickness, topThickness, webThickness) {
		return ShapeC{}, errors.New("geom: C-section dimensions must be positive")
	}
	if height <= bottomThickness+topThickness {
		return ShapeC{}, errors.New("geom: C-section height must exceed flange thickness")
	}
	halfH := height / 2

	outline := mustPolygon([]Vec3{
		{X: 0, Y: -halfH},
		{X: bottomWidth, Y: -halfH},
		{X: bottomWidth, Y: -halfH + bottomThickness},
		{X: webThickness, Y: -halfH + bottomThickness},
		{X: webThickness, Y: halfH - topThickness},
		{X: topWidth, Y: halfH - topThickness},
		{X: topWidth, Y: halfH},
		{X: 0, Y: halfH},
	})
	return ShapeC{
		BottomWidth:      bottomWidth,
		TopWidth:         topWidth,
		Height:           height,
		BottomThickness:  bottomThickness,
		TopThickness:     topThickness,
		WebThickness:     webThickness,
		Fillet:           fillet,
		TopToeRadius:     topToeRadius,
		BottomToeRadius:  bottomToeRadius,
		TopBackFillet:    topBackFillet,
		BottomBackFillet: bottomBackFillet,
		TopTaperAngle:    topTaperAngle,
		BottomTaperAngle: bottomTaperAngle,
		polygonShape:     outline,
	}, nil
}

// ShapeL is an angle profile, with the web centered on the Y axis and the
// flange extending to the right. Fillet, toe radius, back fillet, and taper
// parameters are retained as metadata.
type ShapeL struct {
	Width           float64
	Height          float64
	FlangeThickness float64
	WebThickness    float64
	Fillet          float64
	ToeRadius       float64
	BackFillet      float64
	TaperAngle      float64
	polygonShape
}

// NewShapeL returns the angle profile. All dimensions must be positive, the
// width must exceed the web thickness, and the height the flange thickness.
func NewShapeL(width, height, flangeThickness, webThickness, fillet, toeRadius, backFillet, taperAngle float64) (ShapeL, error) {
	if !positiveDims(width, height, flangeThickness, webThickness) {
		return ShapeL{}, errors.New("geom: L-section dimensions must be positive")
	}
	if width <= webThickness || height <= flangeThickness {
		return ShapeL{}, errors.New("geom: invalid L-section dimensions")
	}
	webHalf := webThickness / 2
	heightHalf := height / 2

	outline := mustPolygon([]Vec3{
		{X: -webHalf, Y: -heightHalf},
		{X: width - webHalf, Y: -heightHalf},
		{X: width - webHalf, Y: -heightHalf + flangeThickness},
		{X: webHalf, Y: -heightHalf + flangeThickness},
		{X: webHalf, Y: heightHalf},
		{X: -webHalf, Y: heightHalf},
	})
	return ShapeL{
		Width:           width,
		Height:          height,
		FlangeThickness: flangeThickness,
		WebThickness:    webThickness,
		Fillet:          fillet,
		ToeRadius:       toeRadius,
		BackFillet:      backFillet,
		TaperAngle:      taperAngle,
		polygonShape:    outline,
	}, nil
}

// ShapeT is a tee profile, symmetric about the Y axis with the flange on
// top. Fillet, toe radius, and taper parameters are retained as metadata.
type ShapeT struct {
	Width           float64
	Height          float64
	FlangeThickness float64
	WebThickness    float64
	Fillet          float64
	ToeRadius       float64
	TaperAngle      float64
	polygonShape
}

// NewShapeT returns the tee profile. All dimensions must be positive and the
// height must exceed the flange thickness.
func NewShapeT(width, height, flangeThickness, webThickness, fillet, toeRadius, taperAngle float64) (ShapeT, error) {
	if !positiveDims(width, height, flangeThickness, webThickness) {
		return ShapeT{}, errors.New("geom: T-section dimensions must be positive")
	}
	if height <= flangeThickness {
		return ShapeT{}, errors.New("geom: T-section height must exceed flange thickness")
	}
	halfH := height / 2
	halfW := width / 2
	webHalf := webThickness / 2

	outline := mustPolygon([]Vec3{
		{X: -webHalf, Y: -halfH},
		{X: webHalf, Y: -halfH},
		{X: webHalf, Y: halfH - flangeThickness},
		{X: halfW, Y: halfH - flangeThickness},
		{X: halfW, Y: halfH},
		{X: -halfW, Y: halfH},
		{X: -halfW, Y: halfH - flangeThickness},
		{X: -webHalf, Y: halfH - flangeThickness},
	})
	return ShapeT{
		Width:           width,
		Height:          height,
		FlangeThickness: flangeThickness,
		WebThickness:    webThickness,
		Fillet:          fillet,
		ToeRadius:       toeRadius,
		TaperAngle:      taperAngle,
		polygonShape:    outline,
	}, nil
}
