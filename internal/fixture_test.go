package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds exactly one polygon. If anything goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	list, err := ReadSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(list) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(list))
	}
	return &list[0]
}

// Some ad hoc code specified fixtures

func RegularPolygon(n int, radius float64) Polygon {
	var points []*Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

func Square(side float64) Polygon {
	return Polygon{[]*Point{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	}}
}

// A rectangle whose bottom edge has one point pushed 0.01 off the straight
// line. That point's altitude over its chord is exactly 0.01; every other
// point sits far above its chord.
func NearlyStraight() Polygon {
	return Polygon{[]*Point{
		{X: 0, Y: 0},
		{X: 5, Y: -0.01},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}}
}

// A circle with random radial noise. Seeded, so runs are reproducible.
func NoisyCircle(n int, radius, noise float64, seed int64) Polygon {
	rng := rand.New(rand.NewSource(seed))
	var points []*Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := radius + noise*(2*rng.Float64()-1)
		points = append(points, &Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
	}
	return Polygon{points}
}

func SimpleStar() Polygon {
	var points []*Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

// Build a raster from rows of digits, e.g. "01210". Spaces are ignored.
func RasterFromRows(rows ...string) LabelRaster {
	raster := make(LabelRaster, len(rows))
	for y, row := range rows {
		for _, r := range row {
			if r == ' ' {
				continue
			}
			raster[y] = append(raster[y], int(r-'0'))
		}
	}
	return raster
}

func pointsOf(poly Polygon) [][2]float64 {
	var result [][2]float64
	for _, p := range poly.Points {
		result = append(result, [2]float64{p.X, p.Y})
	}
	return result
}
