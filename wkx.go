package geogen

import (
	"math"

	"github.com/wgdzlh/geogen/log"
	"github.com/wgdzlh/geogen/utils"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 生成结果矢量运算视图（GenFeature.Geom）的配套工具：
// 坐标系变换、编码转换与常用集合运算

// 转换样本几何的坐标系
func (g *GeoGenToolbox) TransformGeom(wkb GdalGeo, srid, tSrid int) (ret GdalGeo, err error) {
	if tSrid == srid {
		ret = wkb
		return
	}
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	tRef, err := g.getSridRef(tSrid)
	if err != nil {
		return
	}
	geo, err := g.parseWKB(wkb, ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	if err = geo.TransformTo(tRef); err != nil {
		log.Error(g.logTag+"geo transform failed", zap.Error(err))
		return
	}
	ret, err = geo.ToWKB()
	return
}

// 获取样本几何的外包络[minx, miny, maxx, maxy]
func (g *GeoGenToolbox) GeomSpan(wkb GdalGeo, srid int) (span [4]float64, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKB(wkb, ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	envelop := geo.Envelope()
	span[0] = envelop.MinX()
	span[1] = envelop.MinY()
	span[2] = envelop.MaxX()
	span[3] = envelop.MaxY()
	return
}

// 样本几何转GeoJSON
func (g *GeoGenToolbox) GeomToGeoJSON(wkb GdalGeo, srid int) (ret AnyJson, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKB(wkb, ref)
	if err != nil {
		return
	}
	ret = utils.S2B(geo.ToJSON())
	geo.Destroy()
	return
}

// GeoJSON转样本几何
func (g *GeoGenToolbox) GeoJSONToGeom(geoJson AnyJson) (ret GdalGeo, err error) {
	geo := gdal.CreateFromJson(utils.B2S(geoJson))
	defer geo.Destroy()
	if geo.WKBSize() == 0 {
		err = ErrGdalWrongGeoJSON
		return
	}
	ret, err = geo.ToWKB()
	return
}

// 样本几何转WKT
func (g *GeoGenToolbox) GeomToWkt(wkb GdalGeo, srid int) (wkt string, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKB(wkb, ref)
	if err != nil {
		return
	}
	wkt, err = geo.ToWKT()
	geo.Destroy()
	return
}

// WKT转样本几何
func (g *GeoGenToolbox) WktToGeom(wkt string, srid int) (wkb GdalGeo, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKT(wkt, ref)
	if err != nil {
		return
	}
	wkb, err = geo.ToWKB()
	geo.Destroy()
	return
}

// 样本几何面积（目标坐标系单位）
func (g *GeoGenToolbox) GeomArea(wkb GdalGeo, srid int) (area float64, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKB(wkb, ref)
	if err != nil {
		return
	}
	area = geo.Area()
	geo.Destroy()
	return
}

// 合并多要素结果中的全部样本几何为单个区域
func (g *GeoGenToolbox) UnionResult(res FeatureResult, srid int) (ret GdalGeo, err error) {
	feats := res.Features()
	if len(feats) == 0 {
		err = ErrEmptyResult
		return
	}
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	var (
		geo      gdal.Geometry
		unionGeo = gdal.Create(gdal.GT_Polygon)
		gc       = []destroyable{unionGeo}
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for i := range feats {
		if geo, err = g.parseWKB(feats[i].Geom, ref); err != nil {
			return
		}
		gc = append(gc, geo)
		unionGeo = unionGeo.Union(geo)
		gc = append(gc, unionGeo)
	}
	ret, err = unionGeo.ToWKB()
	return
}

// 获取多要素结果中全部样本几何的公共区
func (g *GeoGenToolbox) IntersectionResult(res FeatureResult, srid int) (ret GdalGeo, err error) {
	feats := res.Features()
	if len(feats) == 0 {
		err = ErrEmptyResult
		return
	}
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	interGeo, err := g.parseWKB(feats[0].Geom, ref)
	if err != nil {
		return
	}
	var (
		geo gdal.Geometry
		gc  = []destroyable{interGeo}
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for i := 1; i < len(feats); i++ {
		if geo, err = g.parseWKB(feats[i].Geom, ref); err != nil {
			return
		}
		gc = append(gc, geo)
		interGeo = interGeo.Intersection(geo)
		gc = append(gc, interGeo)
	}
	ret, err = interGeo.ToWKB()
	return
}

// 求两个样本几何之差
func (g *GeoGenToolbox) DifferenceGeom(gA, gB GdalGeo, srid int) (ret GdalGeo, err error) {
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geoA, err := g.parseWKB(gA, ref)
	if err != nil {
		return
	}
	defer geoA.Destroy()
	geoB, err := g.parseWKB(gB, ref)
	if err != nil {
		return
	}
	defer geoB.Destroy()
	diffGeo := geoA.Difference(geoB)
	ret, err = diffGeo.ToWKB()
	diffGeo.Destroy()
	return
}

const (
	degToRad = math.Pi / 180

	xr = 20037508.34 / 180
	yr = xr / degToRad
	tr = degToRad / 2
)

// EPSG:4326与EPSG:3857互转的闭式公式，用于快速校验，无需经过投影库
func Convert4326To3857(lon, lat float64) (lonIn3857, latIn3857 float64) {
	lonIn3857 = lon * xr
	latIn3857 = math.Log(math.Tan((90+lat)*tr)) * yr
	return
}

func Convert3857To4326(lonIn3857, latIn3857 float64) (lon, lat float64) {
	lon = lonIn3857 / xr
	lat = math.Atan(math.Pow(math.E, latIn3857/yr))/tr - 90
	return
}
