package geogen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lukeroth/gdal"
)

// 采样器：在目标坐标系下的span内按族规则生成单个原始几何。
// 形状确定，数值随机；随机源由调用方传入（可用WithSeed固定）

func randIn(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randVertexNum(rng *rand.Rand, minV, maxV int) int {
	return minV + rng.Intn(maxV-minV+1)
}

func samplePoint(rng *rand.Rand, span [4]float64) gdal.Geometry {
	pt := gdal.Create(gdal.GT_Point)
	pt.AddPoint2D(randIn(rng, span[0], span[2]), randIn(rng, span[1], span[3]))
	return pt
}

// 顶点按生成次序连接，不排除自相交（已知简化）
func sampleLine(rng *rand.Rand, span [4]float64, minV, maxV int) gdal.Geometry {
	line := gdal.Create(gdal.GT_LineString)
	for i, n := 0, randVertexNum(rng, minV, maxV); i < n; i++ {
		line.AddPoint2D(randIn(rng, span[0], span[2]), randIn(rng, span[1], span[3]))
	}
	return line
}

// 以(cx,cy)为中心做单调角度扫掠生成闭合环。角度抖动有界，环保持星形
func buildRing(rng *rand.Rand, cx, cy float64, n int, rMin, rMax float64) gdal.Geometry {
	ring := gdal.Create(gdal.GT_LinearRing)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		angle := step*float64(i) + step*AngleJitterRatio*(2*rng.Float64()-1)
		radius := randIn(rng, rMin, rMax)
		ring.AddPoint2D(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
	if !ring.IsRing() {
		x, y, _ := ring.Point(0)
		ring.AddPoint2D(x, y)
	}
	return ring
}

// 生成简单多边形，hole为真时附带一个严格包含于外环的同心内环。
// 随机扰动下环仍可能自相交，有界重试后仍失败则返回ErrGeneration
func samplePolygon(rng *rand.Rand, span [4]float64, minV, maxV int, hole bool) (gdal.Geometry, error) {
	maxR := math.Min(span[2]-span[0], span[3]-span[1]) / 4
	for attempt := 0; attempt < MaxRingAttempts; attempt++ {
		cx := randIn(rng, span[0]+maxR, span[2]-maxR)
		cy := randIn(rng, span[1]+maxR, span[3]-maxR)
		n := randVertexNum(rng, minV, maxV)
		ring := buildRing(rng, cx, cy, n, RingRadiusMinRatio*maxR, maxR)
		poly := gdal.Create(gdal.GT_Polygon)
		if err := poly.AddGeometryDirectly(ring); err != nil {
			ring.Destroy()
			poly.Destroy()
			return emptyGeometry, err
		}
		if !poly.IsValid() {
			poly.Destroy()
			continue
		}
		if !hole {
			return poly, nil
		}
		hn := n / 2
		if hn < RingMinVertex {
			hn = RingMinVertex
		}
		holeRing := buildRing(rng, cx, cy, hn, HoleRadiusMinRatio*maxR, HoleRadiusMaxRatio*maxR)
		holeCopy := holeRing.Clone()
		holePoly := gdal.Create(gdal.GT_Polygon)
		if err := holePoly.AddGeometryDirectly(holeCopy); err != nil {
			holeCopy.Destroy()
			holeRing.Destroy()
			holePoly.Destroy()
			poly.Destroy()
			return emptyGeometry, err
		}
		contained := holePoly.IsValid() && poly.Contains(holePoly)
		holePoly.Destroy()
		if !contained {
			holeRing.Destroy()
			poly.Destroy()
			continue
		}
		if err := poly.AddGeometryDirectly(holeRing); err != nil {
			holeRing.Destroy()
			poly.Destroy()
			return emptyGeometry, err
		}
		if !poly.IsValid() {
			poly.Destroy()
			continue
		}
		return poly, nil
	}
	return emptyGeometry, fmt.Errorf("%w: no simple ring produced in %d attempts",
		ErrGeneration, MaxRingAttempts)
}

// 生成圆（以numPoints个顶点的多边形近似，圆形逼近委托给几何库的Buffer，
// 每象限numPoints/4段，故numPoints不为4的倍数时向下取整）。
// 圆心取自按半径内缩后的bbox，保证整圆落在bbox内
func sampleCircle(rng *rand.Rand, span [4]float64, radius float64, radiusSet bool, numPoints int) gdal.Geometry {
	r := radius
	if !radiusSet {
		r = math.Min(span[2]-span[0], span[3]-span[1]) * randIn(rng, AutoRadiusMinRatio, AutoRadiusMaxRatio)
	}
	center := gdal.Create(gdal.GT_Point)
	center.AddPoint2D(randIn(rng, span[0]+r, span[2]-r), randIn(rng, span[1]+r, span[3]-r))
	circle := center.Buffer(r, numPoints/4)
	center.Destroy()
	return circle
}

// Multi族：调用对应单族采样器members次，聚合为一个集合几何
func sampleMulti(rng *rand.Rand, span [4]float64, req *genRequest) (gdal.Geometry, error) {
	var multi gdal.Geometry
	switch req.family {
	case FamilyMultiPoint:
		multi = gdal.Create(gdal.GT_MultiPoint)
	case FamilyMultiLineString:
		multi = gdal.Create(gdal.GT_MultiLineString)
	case FamilyMultiPolygon:
		multi = gdal.Create(gdal.GT_MultiPolygon)
	default:
		return emptyGeometry, ErrGdalWrongGeoType
	}
	for i := 0; i < req.members; i++ {
		var (
			sub gdal.Geometry
			err error
		)
		switch req.family {
		case FamilyMultiPoint:
			sub = samplePoint(rng, span)
		case FamilyMultiLineString:
			sub = sampleLine(rng, span, req.minVertex, req.maxVertex)
		case FamilyMultiPolygon:
			sub, err = samplePolygon(rng, span, req.minVertex, req.maxVertex, req.hole)
		}
		if err != nil {
			multi.Destroy()
			return emptyGeometry, err
		}
		if err = multi.AddGeometryDirectly(sub); err != nil {
			sub.Destroy()
			multi.Destroy()
			return emptyGeometry, err
		}
	}
	return multi, nil
}

// 按请求生成一个原始几何
func sampleOne(rng *rand.Rand, span [4]float64, req *genRequest) (gdal.Geometry, error) {
	switch req.family {
	case FamilyPoint:
		return samplePoint(rng, span), nil
	case FamilyLineString:
		return sampleLine(rng, span, req.minVertex, req.maxVertex), nil
	case FamilyPolygon:
		return samplePolygon(rng, span, req.minVertex, req.maxVertex, req.hole)
	case FamilyCircle:
		return sampleCircle(rng, span, req.radius, req.radiusSet, req.numPoints), nil
	case FamilyMultiPoint, FamilyMultiLineString, FamilyMultiPolygon:
		return sampleMulti(rng, span, req)
	}
	return emptyGeometry, ErrGdalWrongGeoType
}
