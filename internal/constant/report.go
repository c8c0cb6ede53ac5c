package constant

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusRejected   = "rejected"
)

const (
	RoleCitizen = "citizen"
	RoleAdmin   = "admin"
)

var (
	ReportCategories = []string{"pothole", "garbage", "streetlight", "water", "traffic", "other"}
	ReportUrgencies  = []string{"low", "medium", "high"}
	ReportPriorities = []string{"low", "medium", "high", "critical"}
	ReportStatuses   = []string{StatusPending, StatusInProgress, StatusResolved, StatusRejected}
)

const (
	// PublicListLimit caps the map view page size.
	PublicListLimit = 100

	// AdminDefaultPageSize is the dashboard page size when the caller does not set one.
	AdminDefaultPageSize = 50

	MaxPhotoCount    = 5
	MaxPhotoSize     = 5 << 20
	MaxUploadMemory  = 32 << 20
	StatsWindowDays  = 7
	BoundingBoxDelta = 0.1
)
