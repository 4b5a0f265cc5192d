package geogen

import (
	"fmt"
	"sync"

	"github.com/wgdzlh/geogen/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

type sridPair [2]int

// 矢量样本生成工具箱。坐标系对象与坐标变换均按进程生命期缓存，仅为性能优化，
// 不影响生成结果的正确性
type GeoGenToolbox struct {
	refMap   map[int]gdal.SpatialReference
	transMap map[sridPair]gdal.CoordinateTransform
	rLock    sync.Mutex
	tLock    sync.Mutex
	logTag   string
}

// 由GDAL库C语言创建的内存对象，需要手动调用Destroy回收
type destroyable interface {
	Destroy()
}

var (
	emptyGeometry = gdal.Geometry{}
)

func NewGeoGenToolbox() *GeoGenToolbox {
	return &GeoGenToolbox{
		refMap:   map[int]gdal.SpatialReference{},
		transMap: map[sridPair]gdal.CoordinateTransform{},
		logTag:   "GeoGenToolbox:",
	}
}

// 获取srid对应的坐标系（可复用，故无需回收）
func (g *GeoGenToolbox) getSridRef(srid int) (ref gdal.SpatialReference, err error) {
	g.rLock.Lock()
	defer g.rLock.Unlock()
	ref, ok := g.refMap[srid]
	if ok {
		return
	}
	ref = gdal.CreateSpatialReference("")
	if e := ref.FromEPSG(srid); e != nil {
		log.Error(g.logTag+"set ref srid failed", zap.Int("srid", srid), zap.Error(e))
		ref.Destroy()
		err = fmt.Errorf("%w: unknown or unsupported EPSG code %d", ErrCRSResolution, srid)
		return
	}
	// 数据轴次序固定为(经度,纬度)传统GIS坐标序，避免转换坐标系或转GeoJSON时次序倒置
	ref.SetAxisMappingStrategy(gdal.OAMS_TraditionalGisOrder)
	g.refMap[srid] = ref
	return
}

// 获取(源坐标系,目标坐标系)对应的坐标变换（可复用，故无需回收）。
// 并发下两个调用方同时解析同一未缓存的坐标系对时，变换对象的构造无副作用且幂等
func (g *GeoGenToolbox) getSridTrans(srid, tSrid int) (trans gdal.CoordinateTransform, err error) {
	key := sridPair{srid, tSrid}
	g.tLock.Lock()
	defer g.tLock.Unlock()
	trans, ok := g.transMap[key]
	if ok {
		return
	}
	sRef, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	tRef, err := g.getSridRef(tSrid)
	if err != nil {
		return
	}
	trans = gdal.CreateCoordinateTransform(sRef, tRef)
	g.transMap[key] = trans
	return
}

func (g *GeoGenToolbox) parseWKB(wkb GdalGeo, ref gdal.SpatialReference) (ret gdal.Geometry, err error) {
	ret, err = gdal.CreateFromWKB(wkb, ref, len(wkb))
	if err != nil {
		log.Error(g.logTag+"parse wkb failed", zap.Error(err))
	}
	return
}

func (g *GeoGenToolbox) parseWKT(wkt string, ref gdal.SpatialReference) (ret gdal.Geometry, err error) {
	ret, err = gdal.CreateFromWKT(wkt, ref)
	if err != nil {
		log.Error(g.logTag+"parse wkt failed", zap.Error(err))
		err = ErrInvalidWKT
	}
	return
}

// 将默认坐标系下的bbox变换至目标坐标系，返回变换后的外包络。
// 目标为Web Mercator时先夹紧纬度至±85°
func (g *GeoGenToolbox) transformSpan(span [4]float64, srid, tSrid int) (ret [4]float64, err error) {
	if srid == tSrid {
		ret = span
		return
	}
	if srid == UNIVERSAL_SRID && tSrid == WEB_MERC_SRID {
		span = ClampWebMercSpan(span)
	}
	trans, err := g.getSridTrans(srid, tSrid)
	if err != nil {
		return
	}
	ref, err := g.getSridRef(srid)
	if err != nil {
		return
	}
	geo, err := g.parseWKT(SpanToWkt(span), ref)
	if err != nil {
		return
	}
	defer geo.Destroy()
	if err = geo.Transform(trans); err != nil {
		log.Error(g.logTag+"span transform failed", zap.Error(err))
		err = fmt.Errorf("%w: EPSG:%d -> EPSG:%d: %v", ErrCRSResolution, srid, tSrid, err)
		return
	}
	envelop := geo.Envelope()
	ret[0] = envelop.MinX()
	ret[1] = envelop.MinY()
	ret[2] = envelop.MaxX()
	ret[3] = envelop.MaxY()
	return
}

// 默认坐标系下的全球范围
func WorldSpan() [4]float64 {
	return [4]float64{WorldMinX, WorldMinY, WorldMaxX, WorldMaxY}
}

// 夹紧bbox纬度至Web Mercator有效范围
func ClampWebMercSpan(span [4]float64) [4]float64 {
	if span[1] < -WebMercMaxLat {
		span[1] = -WebMercMaxLat
	}
	if span[3] > WebMercMaxLat {
		span[3] = WebMercMaxLat
	}
	return span
}

func PointsToWkt(minx, miny, maxx, maxy float64) string {
	return fmt.Sprintf("POLYGON((%[1]f %[2]f, %[1]f %[4]f, %[3]f %[4]f, %[3]f %[2]f, %[1]f %[2]f))",
		minx, miny, maxx, maxy)
}

func SpanToWkt(span [4]float64) string {
	return PointsToWkt(span[0], span[1], span[2], span[3])
}
