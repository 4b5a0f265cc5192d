package geogen

const (
	UNIVERSAL_SRID = 4326
	WEB_MERC_SRID  = 3857

	// Web Mercator在±85°纬度以外无定义，正向变换前先夹紧
	WebMercMaxLat = 85.0

	WorldMinX = -180.0
	WorldMinY = -90.0
	WorldMaxX = 180.0
	WorldMaxY = 90.0

	DefaultCount   = 1
	DefaultMembers = 2

	LineMinVertex    = 2
	RingMinVertex    = 3
	DefaultLineMinV  = 2
	DefaultLineMaxV  = 5
	DefaultRingMinV  = 3
	DefaultRingMaxV  = 8
	DefaultNumPoints = 64
	MinNumPoints     = 8

	// 多边形环随机生成重试上限，超出则返回ErrGeneration
	MaxRingAttempts = 20

	// 自动半径取bbox短边的随机比例
	AutoRadiusMinRatio = 0.05
	AutoRadiusMaxRatio = 0.15

	// 外环半径相对于最大半径（bbox短边的1/4）的取值下限
	RingRadiusMinRatio = 0.6
	// 内环（孔洞）半径取值区间，上限须严格小于外环下限
	HoleRadiusMinRatio = 0.15
	HoleRadiusMaxRatio = 0.3
	// 角度抖动幅度（相对于均匀角步长）
	AngleJitterRatio = 0.25
)
