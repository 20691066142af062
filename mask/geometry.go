package mask

// Point is a geographic vertex in degrees.
type Point struct {
	Lat, Lon float64
}

// Polygon is a closed ring of vertices describing a land mass. The ring is
// implicitly closed; the last vertex need not repeat the first.
type Polygon []Point

// GeometrySource supplies the land polygons rasterized by Build. A source
// that cannot deliver its geometry (unreachable file, malformed payload)
// returns an error, which Build surfaces as ErrMaskBuild — there is no
// silent fallback.
type GeometrySource interface {
	Polygons() ([]Polygon, error)
}

// StaticSource is a GeometrySource backed by an in-memory polygon list.
type StaticSource []Polygon

// Polygons returns the stored polygons.
func (s StaticSource) Polygons() ([]Polygon, error) {
	return []Polygon(s), nil
}

// contains reports whether p lies inside the polygon under the even-odd
// crossing rule, treating (Lon, Lat) as planar coordinates.
// Complexity: O(V).
func (poly Polygon) contains(p Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Lat > p.Lat) == (b.Lat > p.Lat) {
			continue
		}
		// Longitude of the edge a-b at latitude p.Lat.
		x := a.Lon + (p.Lat-a.Lat)/(b.Lat-a.Lat)*(b.Lon-a.Lon)
		if p.Lon < x {
			inside = !inside
		}
	}
	return inside
}

// Coastline anchors for the idealized North Atlantic basin. Interpolated
// linearly between anchor latitudes when building the synthetic polygons.
var (
	northAmericaAnchors = []Point{
		{Lat: 25, Lon: -80.5}, {Lat: 30, Lon: -81.5}, {Lat: 35, Lon: -77.0},
		{Lat: 40, Lon: -75.5}, {Lat: 45, Lon: -68.0}, {Lat: 50, Lon: -61.0},
		{Lat: 55, Lon: -58.0}, {Lat: 60, Lon: -56.0},
	}
	europeAfricaAnchors = []Point{
		{Lat: 10, Lon: -17}, {Lat: 20, Lon: -16}, {Lat: 30, Lon: -9},
		{Lat: 35, Lon: -9}, {Lat: 40, Lon: -9}, {Lat: 45, Lon: -2},
		{Lat: 50, Lon: -5}, {Lat: 55, Lon: -7}, {Lat: 60, Lon: -10},
	}
)

// SyntheticBasin returns the built-in idealized North Atlantic geometry:
// the North American seaboard (land west of the east-coast line), the
// European/African seaboard (land east of the west-coast line), and the
// Caribbean block. Suitable for examples, tests, and demo runs; real
// geometry should come from a caller-provided GeometrySource.
func SyntheticBasin() GeometrySource {
	const (
		farWest  = -100.0
		farEast  = 20.0
		eastBias = 0.2 // pushes the European coastline slightly offshore
	)

	// North America: coast anchors south→north, closed off to the far west.
	na := make(Polygon, 0, len(northAmericaAnchors)+2)
	na = append(na, Point{Lat: northAmericaAnchors[0].Lat, Lon: farWest})
	na = append(na, northAmericaAnchors...)
	na = append(na, Point{Lat: northAmericaAnchors[len(northAmericaAnchors)-1].Lat, Lon: farWest})

	// Europe/Africa: coast anchors south→north, closed off to the far east.
	ea := make(Polygon, 0, len(europeAfricaAnchors)+2)
	ea = append(ea, Point{Lat: europeAfricaAnchors[0].Lat, Lon: farEast})
	for _, a := range europeAfricaAnchors {
		ea = append(ea, Point{Lat: a.Lat, Lon: a.Lon + eastBias})
	}
	ea = append(ea, Point{Lat: europeAfricaAnchors[len(europeAfricaAnchors)-1].Lat, Lon: farEast})

	carib := Polygon{
		{Lat: 10, Lon: -85}, {Lat: 25, Lon: -85},
		{Lat: 25, Lon: -60}, {Lat: 10, Lon: -60},
	}

	return StaticSource{na, ea, carib}
}
