// Package stations is the single source of truth for the fixed
// station geography tables: administrative area codes for the
// reinfolib query, nearby-station aliases and city/ward aliases for
// the local filter, and the ward/neighborhood rows the demo generator
// builds addresses from. The same tables used to be duplicated across
// screens; everything reads from here now.
package stations

// DefaultAreaCode is Tokyo. Unmapped stations and empty requests
// resolve here.
const DefaultAreaCode = "13"

var areaCodes = map[string]string{
	"渋谷":    "13",
	"新宿":    "13",
	"恵比寿":   "13",
	"池袋":    "13",
	"品川":    "13",
	"目黒":    "13",
	"東京":    "13",
	"横浜":    "14",
	"自由が丘":  "13",
	"上野":    "13",
	"秋葉原":   "13",
	"銀座":    "13",
	"鉄道博物館": "11", // Saitama
	"七里ヶ浜":  "14", // Kanagawa
}

// AreaCode resolves a station name to its prefecture-level area code.
func AreaCode(station string) (string, bool) {
	code, ok := areaCodes[station]
	return code, ok
}

// nearby maps a major station to adjacent or related stations whose
// listings are close enough to surface for the same search.
var nearby = map[string][]string{
	"渋谷":   {"代々木", "表参道", "神泉", "原宿"},
	"新宿":   {"西新宿", "東新宿", "新宿三丁目", "西早稲田", "高田馬場"},
	"池袋":   {"目白", "東池袋", "大塚", "要町"},
	"上野":   {"京成上野", "御徒町", "入谷", "稲荷町"},
	"秋葉原":  {"小川町", "岩本町", "御茶ノ水", "神田"},
	"東京":   {"二重橋前", "大手町", "日本橋", "八重洲", "京橋"},
	"五反田":  {"大崎広小路", "不動前", "目黒"},
	"品川":   {"大崎", "戸越", "北品川", "大井町", "西大井"},
	"横浜":   {"みなとみらい", "桜木町", "関内", "元町"},
	"自由が丘": {"九品仏", "緑が丘", "尾山台", "都立大学"},
}

// Nearby returns related stations for a major station, nil when none
// are mapped.
func Nearby(station string) []string {
	return nearby[station]
}

// cities maps a station to the administrative areas its listings carry
// in their address field.
var cities = map[string][]string{
	"渋谷":  {"渋谷区", "東京都渋谷区"},
	"新宿":  {"新宿区", "東京都新宿区"},
	"池袋":  {"豊島区", "東京都豊島区"},
	"品川":  {"品川区", "東京都品川区"},
	"目黒":  {"目黒区", "東京都目黒区"},
	"東京":  {"千代田区", "東京都千代田区"},
	"横浜":  {"横浜市", "神奈川県横浜市"},
}

// Cities returns the ward/city aliases for a station, nil when none
// are mapped.
func Cities(station string) []string {
	return cities[station]
}

// Geo describes where a station sits, for synthesizing plausible
// addresses.
type Geo struct {
	Ward          string
	Prefecture    string
	Neighborhoods []string
}

var geo = map[string]Geo{
	"渋谷":    {Ward: "渋谷区", Prefecture: "東京都", Neighborhoods: []string{"桜丘", "東", "神南", "富ヶ谷"}},
	"新宿":    {Ward: "新宿区", Prefecture: "東京都", Neighborhoods: []string{"西新宿", "歌舞伎町", "四谷", "中落合"}},
	"恵比寿":   {Ward: "渋谷区", Prefecture: "東京都", Neighborhoods: []string{"恵比寿", "広尾", "恵比寿西", "恵比寿南"}},
	"池袋":    {Ward: "豊島区", Prefecture: "東京都", Neighborhoods: []string{"東池袋", "西池袋", "南池袋", "北池袋"}},
	"品川":    {Ward: "品川区", Prefecture: "東京都", Neighborhoods: []string{"北品川", "西品川", "東品川", "南品川"}},
	"目黒":    {Ward: "目黒区", Prefecture: "東京都", Neighborhoods: []string{"上大崎", "下目黒", "三田", "中目黒"}},
	"東京":    {Ward: "千代田区", Prefecture: "東京都", Neighborhoods: []string{"丸の内", "大手町", "日本橋", "有楽町"}},
	"横浜":    {Ward: "西区", Prefecture: "神奈川県", Neighborhoods: []string{"みなとみらい", "中区", "山下町", "関内"}},
	"自由が丘":  {Ward: "目黒区", Prefecture: "東京都", Neighborhoods: []string{"中根", "自由が丘", "緑が丘", "柳小路"}},
	"上野":    {Ward: "台東区", Prefecture: "東京都", Neighborhoods: []string{"上野", "東上野", "西上野", "上野公園"}},
	"秋葉原":   {Ward: "千代田区", Prefecture: "東京都", Neighborhoods: []string{"外神田", "内神田", "浅草橋", "神田練塀町"}},
	"銀座":    {Ward: "中央区", Prefecture: "東京都", Neighborhoods: []string{"銀座", "有楽町", "銀座西", "銀座東"}},
	"鉄道博物館": {Ward: "大宮区", Prefecture: "埼玉県", Neighborhoods: []string{"土手町", "大成町", "桜木町", "三橋"}},
	"七里ヶ浜":  {Ward: "鎌倉市", Prefecture: "神奈川県", Neighborhoods: []string{"七里ガ浜", "稲村ガ崎", "長谷", "腰越"}},
}

// genericGeo fills in for stations missing from the table so callers
// always get a usable row.
var genericGeo = Geo{Ward: "中央区", Prefecture: "東京都", Neighborhoods: []string{"中央", "東", "西", "南"}}

// Lookup returns the geography row for a station, falling back to a
// generic central-ward template for unknown names.
func Lookup(station string) Geo {
	if g, ok := geo[station]; ok {
		return g
	}
	return genericGeo
}
