package schema

const (
	CityCollection = "city"

	DefaultZoom = 11
)

// GeoPoint is a [longitude, latitude] pair, the coordinate order used by
// GeoJSON and by the map widget.
type GeoPoint [2]float64

func (p GeoPoint) Longitude() float64 {
	return p[0]
}

func (p GeoPoint) Latitude() float64 {
	return p[1]
}

// City is a selectable map location.
type City struct {
	Name   string   `json:"name"`
	Center GeoPoint `json:"center"`
	Zoom   int      `json:"zoom"`
}

const (
	Oulu      = "Oulu"
	Helsinki  = "Helsinki"
	Tampere   = "Tampere"
	Turku     = "Turku"
	Jyvaskyla = "Jyväskylä"
)

// Cities is the built-in location list shown in the location selector.
var Cities = []City{
	{Oulu, GeoPoint{25.4701, 65.0124}, DefaultZoom},
	{Helsinki, GeoPoint{24.9384, 60.1699}, DefaultZoom},
	{Tampere, GeoPoint{23.7610, 61.4978}, DefaultZoom},
	{Turku, GeoPoint{22.2688, 60.4518}, DefaultZoom},
	{Jyvaskyla, GeoPoint{25.7472, 62.2426}, DefaultZoom},
}

// CityFromName is keyed by City.Name
var CityFromName = map[string]City{
	Oulu:      Cities[0],
	Helsinki:  Cities[1],
	Tampere:   Cities[2],
	Turku:     Cities[3],
	Jyvaskyla: Cities[4],
}

// DefaultCity is used when a requested location cannot be resolved.
var DefaultCity = Cities[0]
