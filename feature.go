package geogen

import (
	"encoding/json"
	"fmt"

	"github.com/wgdzlh/geogen/utils"

	"github.com/lukeroth/gdal"
)

// 将单个原始几何规整为要素：GeoJSON视图取自几何库的JSON输出（坐标即为嵌套
// 数值序列），矢量运算视图取WKB。不回收入参几何
func toGenFeature(geo gdal.Geometry) (gf GenFeature, err error) {
	wkb, err := geo.ToWKB()
	if err != nil {
		return
	}
	var geom Geometry
	if err = json.Unmarshal(utils.S2B(geo.ToJSON()), &geom); err != nil {
		err = fmt.Errorf("%w: %v", ErrGdalWrongGeoJSON, err)
		return
	}
	gf = GenFeature{
		Feature: Feature{
			Type:       "Feature",
			Properties: map[string]any{},
			Geometry:   geom,
		},
		Geom: wkb,
	}
	return
}

// 按生成次序规整全部原始几何；single为真时结果为单要素
func normalizeResult(geos []gdal.Geometry, single bool) (res FeatureResult, err error) {
	feats := make([]GenFeature, len(geos))
	for i := range geos {
		if feats[i], err = toGenFeature(geos[i]); err != nil {
			return
		}
	}
	res = FeatureResult{
		single: single,
		feats:  feats,
	}
	return
}

// 以下解码辅助按坐标嵌套深度取出数值序列，用于检视生成结果

// Point坐标
func (gm Geometry) PointCoords() (c []float64, err error) {
	err = json.Unmarshal(gm.Coordinates, &c)
	return
}

// LineString/MultiPoint坐标
func (gm Geometry) PathCoords() (c [][]float64, err error) {
	err = json.Unmarshal(gm.Coordinates, &c)
	return
}

// Polygon/MultiLineString坐标
func (gm Geometry) RingCoords() (c [][][]float64, err error) {
	err = json.Unmarshal(gm.Coordinates, &c)
	return
}

// MultiPolygon坐标
func (gm Geometry) PolySetCoords() (c [][][][]float64, err error) {
	err = json.Unmarshal(gm.Coordinates, &c)
	return
}
