package reinfolib

// OwnerType says whether a listing comes straight from the owner or
// through an intermediary.
type OwnerType string

const (
	OwnerDirect OwnerType = "direct"
	OwnerAgency OwnerType = "agency"
)

// ParseOwnerType maps an upstream value onto the two known tags.
// Anything unrecognized is an agency listing.
func ParseOwnerType(s string) OwnerType {
	if s == string(OwnerDirect) {
		return OwnerDirect
	}
	return OwnerAgency
}

// Property is the canonical listing shape every upstream payload is
// normalized into. IDs are unique within one result set only; the
// upstream does not guarantee stable ids across calls.
type Property struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Price        float64   `json:"price"`
	CoverURL     string    `json:"cover_url"` // never empty, placeholder fallback
	Layout       string    `json:"layout"`
	Station      string    `json:"station"`
	WalkMinutes  int       `json:"walk_minutes"`
	Deposit      float64   `json:"deposit"`   // months
	KeyMoney     float64   `json:"key_money"` // months
	InitialCost  float64   `json:"initial_cost"`
	Address      string    `json:"address"`
	OwnerType    OwnerType `json:"owner_type"`
	OwnerName    string    `json:"owner_name"`
	BuildingYear int       `json:"building_year"`
	Area         float64   `json:"area"` // square meters
	LandType     string    `json:"landType"`
	Structure    string    `json:"structure"`
	Purpose      string    `json:"purpose"`
	CityPlanning string    `json:"cityPlanning"`
}

// SearchRequest carries one user search. It is built per query and
// consumed once by BuildQuery and the local filter.
type SearchRequest struct {
	Stations    []string `json:"stations,omitempty"`
	Area        string   `json:"area,omitempty"`      // explicit administrative code, wins over station lookup
	PrefCode    string   `json:"pref_code,omitempty"`
	CityCode    string   `json:"city_code,omitempty"`
	Year        string   `json:"year,omitempty"`
	Quarter     string   `json:"quarter,omitempty"`
	MinPrice    float64  `json:"min_price,omitempty"`
	MaxPrice    float64  `json:"max_price,omitempty"`
	WalkMinutes int      `json:"walk_minutes,omitempty"` // ceiling, 0 = unset
	Layouts     []string `json:"layouts,omitempty"`
}

// PrimaryStation is the station the demo fallback is generated for.
func (r SearchRequest) PrimaryStation() string {
	if len(r.Stations) > 0 {
		return r.Stations[0]
	}
	return ""
}
