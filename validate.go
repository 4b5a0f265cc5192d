package geogen

import "fmt"

// 一次生成请求。构造后不可变，采样开始前完成全部校验，请求间不保留状态
type genRequest struct {
	family    GeomFamily
	count     int
	srid      int
	bbox      []float64
	minVertex int
	maxVertex int
	hole      bool
	radius    float64
	radiusSet bool
	numPoints int
	members   int
	seed      int64
	seedSet   bool
}

type GenOption func(*genRequest)

// 输出要素个数（默认1）
func WithCount(n int) GenOption {
	return func(r *genRequest) { r.count = n }
}

// 目标坐标系EPSG编号（默认4326）
func WithSRID(srid int) GenOption {
	return func(r *genRequest) { r.srid = srid }
}

// 生成范围[minx, miny, maxx, maxy]，以默认坐标系（EPSG:4326）给出
func WithBBox(vals ...float64) GenOption {
	return func(r *genRequest) { r.bbox = vals }
}

// 线/面族的顶点数取值区间
func WithVertexRange(minV, maxV int) GenOption {
	return func(r *genRequest) {
		r.minVertex = minV
		r.maxVertex = maxV
	}
}

// 多边形附带一个内环（孔洞）
func WithHole() GenOption {
	return func(r *genRequest) { r.hole = true }
}

// 圆半径（目标坐标系单位）；未指定时按bbox短边的随机比例自动取值
func WithRadius(radius float64) GenOption {
	return func(r *genRequest) {
		r.radius = radius
		r.radiusSet = true
	}
}

// 圆的近似顶点数（默认64，最小8）。逼近由Buffer的象限分段实现，
// 实际顶点数为n向下取整至4的倍数
func WithNumPoints(n int) GenOption {
	return func(r *genRequest) { r.numPoints = n }
}

// Multi族中单个要素包含的成员几何个数（默认2）。
// 注意与WithCount的区别：后者控制输出要素个数
func WithMembers(n int) GenOption {
	return func(r *genRequest) { r.members = n }
}

// 固定随机种子，同一请求的生成结果跨平台可复现
func WithSeed(seed int64) GenOption {
	return func(r *genRequest) {
		r.seed = seed
		r.seedSet = true
	}
}

func newGenRequest(family GeomFamily, opts []GenOption) *genRequest {
	req := &genRequest{
		family:    family,
		count:     DefaultCount,
		srid:      UNIVERSAL_SRID,
		numPoints: DefaultNumPoints,
		members:   DefaultMembers,
	}
	switch family {
	case FamilyLineString, FamilyMultiLineString:
		req.minVertex = DefaultLineMinV
		req.maxVertex = DefaultLineMaxV
	case FamilyPolygon, FamilyMultiPolygon:
		req.minVertex = DefaultRingMinV
		req.maxVertex = DefaultRingMaxV
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

func isMultiFamily(family GeomFamily) bool {
	switch family {
	case FamilyMultiPoint, FamilyMultiLineString, FamilyMultiPolygon:
		return true
	}
	return false
}

// 校验请求参数。纯函数，无副作用，重复调用结论一致；任何校验失败都发生在采样开始之前
func validateRequest(req *genRequest) error {
	if req.count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrValidation, req.count)
	}
	if isMultiFamily(req.family) && req.members < 2 {
		return fmt.Errorf("%w: members must be at least 2 for %s, got %d",
			ErrValidation, req.family, req.members)
	}
	if req.bbox != nil {
		if len(req.bbox) != 4 {
			return fmt.Errorf("%w: bbox must have exactly 4 values [minx, miny, maxx, maxy], got %d",
				ErrValidation, len(req.bbox))
		}
		if req.bbox[0] >= req.bbox[2] {
			return fmt.Errorf("%w: bbox minx (%v) must be less than maxx (%v)",
				ErrValidation, req.bbox[0], req.bbox[2])
		}
		if req.bbox[1] >= req.bbox[3] {
			return fmt.Errorf("%w: bbox miny (%v) must be less than maxy (%v)",
				ErrValidation, req.bbox[1], req.bbox[3])
		}
	}
	switch req.family {
	case FamilyLineString, FamilyMultiLineString:
		if err := checkVertexRange(req, LineMinVertex, "LineString"); err != nil {
			return err
		}
	case FamilyPolygon, FamilyMultiPolygon:
		if err := checkVertexRange(req, RingMinVertex, "Polygon"); err != nil {
			return err
		}
	case FamilyCircle:
		if req.radiusSet && req.radius <= 0 {
			return fmt.Errorf("%w: radius must be positive, got %v", ErrValidation, req.radius)
		}
		if req.numPoints < MinNumPoints {
			return fmt.Errorf("%w: num_points must be at least %d for Circle, got %d",
				ErrValidation, MinNumPoints, req.numPoints)
		}
	}
	return nil
}

func checkVertexRange(req *genRequest, structuralMin int, kind string) error {
	if req.minVertex > req.maxVertex {
		return fmt.Errorf("%w: min_vertex (%d) cannot be greater than max_vertex (%d)",
			ErrValidation, req.minVertex, req.maxVertex)
	}
	if req.minVertex < structuralMin {
		return fmt.Errorf("%w: min_vertex must be at least %d for %s, got %d",
			ErrValidation, structuralMin, kind, req.minVertex)
	}
	return nil
}

// 请求的有效bbox：未指定时为全球范围
func (r *genRequest) span() [4]float64 {
	if r.bbox == nil {
		return WorldSpan()
	}
	return [4]float64{r.bbox[0], r.bbox[1], r.bbox[2], r.bbox[3]}
}
