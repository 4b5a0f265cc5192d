package geogen

import "encoding/json"

type AnyJson = json.RawMessage

type GdalGeo = []byte

// 几何族，其中Circle输出的GeoJSON类型为Polygon
type GeomFamily string

const (
	FamilyPoint           GeomFamily = "Point"
	FamilyLineString      GeomFamily = "LineString"
	FamilyPolygon         GeomFamily = "Polygon"
	FamilyCircle          GeomFamily = "Circle"
	FamilyMultiPoint      GeomFamily = "MultiPoint"
	FamilyMultiLineString GeomFamily = "MultiLineString"
	FamilyMultiPolygon    GeomFamily = "MultiPolygon"
)

// GeoJSON几何对象，coordinates保留GDAL输出的原始数值序列
type Geometry struct {
	Type        string  `json:"type"`
	Coordinates AnyJson `json:"coordinates"`
}

// GeoJSON要素，properties恒为空映射；不附带CRS信息（CRS属于调用方上下文）
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// 单个生成结果：Feature为可序列化视图，Geom为可参与矢量运算的WKB视图（目标坐标系）
type GenFeature struct {
	Feature Feature
	Geom    GdalGeo
}

// 生成结果，count=1时为单要素，否则为有序要素列表，通过Single/Features访问
type FeatureResult struct {
	single bool
	feats  []GenFeature
}

func (r FeatureResult) IsSingle() bool {
	return r.single
}

func (r FeatureResult) Len() int {
	return len(r.feats)
}

// 返回单要素；结果为列表时second返回值为false
func (r FeatureResult) Single() (GenFeature, bool) {
	if !r.single || len(r.feats) == 0 {
		return GenFeature{}, false
	}
	return r.feats[0], true
}

func (r FeatureResult) Features() []GenFeature {
	return r.feats
}

// 序列化视图：单要素输出Feature对象，列表输出Feature数组
func (r FeatureResult) MarshalJSON() ([]byte, error) {
	if r.single && len(r.feats) == 1 {
		return json.Marshal(r.feats[0].Feature)
	}
	fs := make([]Feature, len(r.feats))
	for i := range r.feats {
		fs[i] = r.feats[i].Feature
	}
	return json.Marshal(fs)
}

// 将结果（无论单要素或列表）包装为FeatureCollection
func (r FeatureResult) Collection() FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, len(r.feats)),
	}
	for i := range r.feats {
		fc.Features[i] = r.feats[i].Feature
	}
	return fc
}
