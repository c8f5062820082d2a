package lifull

import (
	"strconv"

	"github.com/yourorg/sumika-api/reinfolib"
)

const placeholderImage = "https://via.placeholder.com/400x250?text=No+Image"

// roomPayload is the LIFULL response envelope; the record array lives
// under row_set on this endpoint.
type roomPayload struct {
	RowSet []room `json:"row_set"`
}

type room struct {
	PropertyID              string `json:"property_id"`
	ArticleName             string `json:"realestate_article_name"`
	ArticleTypeName         string `json:"realestate_article_type_name"`
	FullAddress             string `json:"full_address"`
	MonthMoneyRoomText      string `json:"month_money_room_text"`
	MoneyRoomText           string `json:"money_room_text"`
	FloorPlanText           string `json:"floor_plan_text"`
	DepositText             string `json:"deposit_text"`
	KeyMoneyText            string `json:"key_money_text"`
	BuildingCompletedText   string `json:"building_completed_text"`
	EtcAreaText             string `json:"etc_area_text"`
	BuildingStructureDetail string `json:"building_structure_detail"`
	Photos                  []struct {
		URL string `json:"url"`
	} `json:"photos"`
	Traffics []struct {
		StationName string `json:"station_name"`
		WalkTime    string `json:"walk_time"`
	} `json:"traffics"`
}

// mapRooms converts LIFULL rows into canonical properties. The mapper
// is defensive: every numeric field goes through ExtractNumber and the
// two rent fields carry different units (see package comment).
func mapRooms(rows []room) []reinfolib.Property {
	out := make([]reinfolib.Property, 0, len(rows))
	for idx, item := range rows {
		price := reinfolib.UnitManYen.Apply(reinfolib.ExtractNumber(item.MonthMoneyRoomText))
		if price == 0 {
			price = reinfolib.UnitYen.Apply(reinfolib.ExtractNumber(item.MoneyRoomText))
		}

		photo := placeholderImage
		if len(item.Photos) > 0 && item.Photos[0].URL != "" {
			photo = item.Photos[0].URL
		}

		var station string
		var walk int
		if len(item.Traffics) > 0 {
			station = item.Traffics[0].StationName
			walk = int(reinfolib.ExtractNumber(item.Traffics[0].WalkTime))
		}

		out = append(out, reinfolib.Property{
			ID:           nonEmpty(item.PropertyID, strconv.Itoa(idx)),
			Title:        nonEmpty(item.ArticleName, nonEmpty(item.FullAddress, "物件#"+strconv.Itoa(idx))),
			Price:        price,
			CoverURL:     photo,
			Layout:       item.FloorPlanText,
			Station:      station,
			WalkMinutes:  walk,
			Deposit:      reinfolib.ExtractNumber(item.DepositText),
			KeyMoney:     reinfolib.ExtractNumber(item.KeyMoneyText),
			InitialCost:  0,
			Address:      item.FullAddress,
			OwnerType:    reinfolib.OwnerAgency,
			OwnerName:    nonEmpty(item.ArticleTypeName, "不動産会社"),
			BuildingYear: int(reinfolib.ExtractNumber(item.BuildingCompletedText)),
			Area:         reinfolib.ExtractNumber(item.EtcAreaText),
			Structure:    item.BuildingStructureDetail,
		})
	}
	return out
}

func nonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
