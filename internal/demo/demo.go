// Package demo synthesizes plausible listings for a station when the
// upstream has nothing to show. Output is deterministic so callers and
// tests can tell it apart from live data: ids are always
// "<station>-1" through "<station>-4".
package demo

import (
	"fmt"

	"github.com/yourorg/sumika-api/internal/stations"
	"github.com/yourorg/sumika-api/reinfolib"
)

const recordsPerStation = 4

var (
	structures    = []string{"ＲＣ", "ＳＲＣ", "鉄骨", "木造"}
	purposes      = []string{"住居", "店舗", "事務所", "共同住宅"}
	cityPlannings = []string{"商業地域", "住居地域", "準住居地域", "市街化調整区域"}
	layouts       = []string{"１Ｒ", "１Ｋ", "２ＬＤＫ", "３ＬＤＫ"}

	sampleImages = []string{
		"https://images.unsplash.com/photo-1560448204-603b3fc33ddc?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		"https://images.unsplash.com/photo-1493809842364-78817add7ffb?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		"https://images.unsplash.com/photo-1549517045-bc93de075e53?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
		"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
	}
)

// Properties generates exactly 4 records for the station, cycling the
// fixed layout/structure/purpose/city-planning sets with linear steps:
// price +¥20M, area +15㎡, building year +2, walk +2 min. Pure and
// deterministic; two calls return structurally identical output.
func Properties(stationName string) []reinfolib.Property {
	info := stations.Lookup(stationName)

	out := make([]reinfolib.Property, 0, recordsPerStation)
	for i := 0; i < recordsPerStation; i++ {
		neighborhood := info.Neighborhoods[i%len(info.Neighborhoods)]
		layout := layouts[i%len(layouts)]
		structure := structures[i%len(structures)]
		price := float64(3+i*2) * 10000000 // 30M, 50M, 70M, 90M
		area := float64(30 + i*15)
		buildingYear := 2010 + i*2
		walkMinutes := 3 + i*2

		out = append(out, reinfolib.Property{
			ID:           fmt.Sprintf("%s-%d", stationName, i+1),
			Title:        fmt.Sprintf("%s %s %sの%s 中古マンション等", info.Prefecture, info.Ward, neighborhood, layout),
			Price:        price,
			CoverURL:     sampleImages[i%len(sampleImages)],
			Layout:       layout,
			Station:      stationName,
			WalkMinutes:  walkMinutes,
			Deposit:      1,
			KeyMoney:     1,
			InitialCost:  price * 3,
			Address:      fmt.Sprintf("%s %s %s", info.Prefecture, info.Ward, neighborhood),
			OwnerType:    reinfolib.OwnerAgency,
			OwnerName:    structure,
			BuildingYear: buildingYear,
			Area:         area,
			LandType:     "中古マンション等",
			Structure:    structure,
			Purpose:      purposes[i%len(purposes)],
			CityPlanning: cityPlannings[i%len(cityPlannings)],
		})
	}
	return out
}
