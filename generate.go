package geogen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/wgdzlh/geogen/log"

	"github.com/google/uuid"
	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 生成入口：校验请求 -> 解析坐标系并变换bbox -> 采样count次 -> 规整为要素。
// 任何一步失败即整体失败，不返回部分结果
func (g *GeoGenToolbox) Generate(family GeomFamily, opts ...GenOption) (res FeatureResult, err error) {
	req := newGenRequest(family, opts)
	reqId := uuid.NewString()
	log.Info(g.logTag+"start generation", zap.String("req", reqId),
		zap.String("family", string(family)), zap.Int("count", req.count), zap.Int("srid", req.srid))
	if err = validateRequest(req); err != nil {
		log.Error(g.logTag+"invalid request", zap.String("req", reqId), zap.Error(err))
		return
	}
	span, err := g.transformSpan(req.span(), UNIVERSAL_SRID, req.srid)
	if err != nil {
		log.Error(g.logTag+"span trans failed", zap.String("req", reqId), zap.Error(err))
		return
	}
	if req.family == FamilyCircle && req.radiusSet {
		if side := math.Min(span[2]-span[0], span[3]-span[1]); req.radius*2 >= side {
			err = fmt.Errorf("%w: radius (%v) leaves no room for a circle center in bbox (shorter side %v)",
				ErrValidation, req.radius, side)
			log.Error(g.logTag+"invalid request", zap.String("req", reqId), zap.Error(err))
			return
		}
	}
	var (
		rng  = newRand(req)
		geos = make([]gdal.Geometry, 0, req.count)
		geo  gdal.Geometry
		gc   []destroyable
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for i := 0; i < req.count; i++ {
		if geo, err = sampleOne(rng, span, req); err != nil {
			log.Error(g.logTag+"sampling failed", zap.String("req", reqId),
				zap.Int("idx", i), zap.Error(err))
			return
		}
		gc = append(gc, geo)
		geos = append(geos, geo)
	}
	if res, err = normalizeResult(geos, req.count == 1); err != nil {
		log.Error(g.logTag+"normalize failed", zap.String("req", reqId), zap.Error(err))
		return
	}
	log.Info(g.logTag+"generation done", zap.String("req", reqId),
		zap.Int("features", res.Len()), zap.Bool("single", res.IsSingle()))
	return
}

func newRand(req *genRequest) *rand.Rand {
	if req.seedSet {
		return rand.New(rand.NewSource(req.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// 生成随机点要素
func (g *GeoGenToolbox) Point(opts ...GenOption) (FeatureResult, error) {
	return g.Generate(FamilyPoint, opts...)
}

// 生成随机折线要素
func (g *GeoGenToolbox) LineString(opts ...GenOption) (FeatureResult, error) {
	return g.Generate(FamilyLineString, opts...)
}

// 生成随机多边形要素
func (g *GeoGenToolbox) Polygon(opts ...GenOption) (FeatureResult, error) {
	return g.Generate(FamilyPolygon, opts...)
}

// 生成随机圆要素（GeoJSON类型为Polygon）
func (g *GeoGenToolbox) Circle(opts ...GenOption) (FeatureResult, error) {
	return g.Generate(FamilyCircle, opts...)
}

// 生成随机多点要素
func (g *GeoGenToolbox) MultiPoint(opts ...GenOption) (FeatureResult, error) {
	return g.Generate(FamilyMultiPoint, opts...)
}

// 生成随机多线要素
func (g *GeoGenToolbox) MultiLineString(opts ...GenOption) (FeatureResult, error) {
	return g.Generate(FamilyMultiLineString, opts...)
}

// 生成随机多面要素
func (g *GeoGenToolbox) MultiPolygon(opts ...GenOption) (FeatureResult, error) {
	return g.Generate(FamilyMultiPolygon, opts...)
}
