// Code generated by ent, DO NOT EDIT.

package report

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldPhotos holds the string denoting the photos field in the database.
	FieldPhotos = "photos"
	// FieldReportedBy holds the string denoting the reported_by field in the database.
	FieldReportedBy = "reported_by"
	// FieldReporterEmail holds the string denoting the reporter_email field in the database.
	FieldReporterEmail = "reporter_email"
	// FieldReporterName holds the string denoting the reporter_name field in the database.
	FieldReporterName = "reporter_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldUpvoteCount holds the string denoting the upvote_count field in the database.
	FieldUpvoteCount = "upvote_count"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// EdgeReporter holds the string denoting the reporter edge name in mutations.
	EdgeReporter = "reporter"
	// EdgeStatusChanges holds the string denoting the status_changes edge name in mutations.
	EdgeStatusChanges = "status_changes"
	// EdgeUpvotes holds the string denoting the upvotes edge name in mutations.
	EdgeUpvotes = "upvotes"
	// Table holds the table name of the report in the database.
	Table = "reports"
	// ReporterTable is the table that holds the reporter relation/edge.
	ReporterTable = "reports"
	// ReporterInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ReporterInverseTable = "users"
	// ReporterColumn is the table column denoting the reporter relation/edge.
	ReporterColumn = "reported_by"
	// StatusChangesTable is the table that holds the status_changes relation/edge.
	StatusChangesTable = "status_changes"
	// StatusChangesInverseTable is the table name for the StatusChange entity.
	// It exists in this package in order to avoid circular dependency with the "statuschange" package.
	StatusChangesInverseTable = "status_changes"
	// StatusChangesColumn is the table column denoting the status_changes relation/edge.
	StatusChangesColumn = "report_id"
	// UpvotesTable is the table that holds the upvotes relation/edge.
	UpvotesTable = "upvotes"
	// UpvotesInverseTable is the table name for the Upvote entity.
	// It exists in this package in order to avoid circular dependency with the "upvote" package.
	UpvotesInverseTable = "upvotes"
	// UpvotesColumn is the table column denoting the upvotes relation/edge.
	UpvotesColumn = "report_id"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTitle,
	FieldDescription,
	FieldCategory,
	FieldUrgency,
	FieldPriority,
	FieldLatitude,
	FieldLongitude,
	FieldAddress,
	FieldPhotos,
	FieldReportedBy,
	FieldReporterEmail,
	FieldReporterName,
	FieldStatus,
	FieldUpvoteCount,
	FieldUpdatedBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// ReporterEmailValidator is a validator for the "reporter_email" field. It is called by the builders before save.
	ReporterEmailValidator func(string) error
	// ReporterNameValidator is a validator for the "reporter_name" field. It is called by the builders before save.
	ReporterNameValidator func(string) error
	// DefaultUpvoteCount holds the default value on creation for the "upvote_count" field.
	DefaultUpvoteCount int
	// UpvoteCountValidator is a validator for the "upvote_count" field. It is called by the builders before save.
	UpvoteCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryOther is the default value of the Category enum.
const DefaultCategory = CategoryOther

// Category values.
const (
	CategoryPothole     Category = "pothole"
	CategoryGarbage     Category = "garbage"
	CategoryStreetlight Category = "streetlight"
	CategoryWater       Category = "water"
	CategoryTraffic     Category = "traffic"
	CategoryOther       Category = "other"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryPothole, CategoryGarbage, CategoryStreetlight, CategoryWater, CategoryTraffic, CategoryOther:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for category field: %q", c)
	}
}

// Urgency defines the type for the "urgency" enum field.
type Urgency string

// UrgencyMedium is the default value of the Urgency enum.
const DefaultUrgency = UrgencyMedium

// Urgency values.
const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) String() string {
	return string(u)
}

// UrgencyValidator is a validator for the "urgency" field enum values. It is called by the builders before save.
func UrgencyValidator(u Urgency) error {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for urgency field: %q", u)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
	StatusRejected   Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return nil
	default:
		return fmt.Errorf("report: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Report queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByReportedBy orders the results by the reported_by field.
func ByReportedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportedBy, opts...).ToFunc()
}

// ByReporterEmail orders the results by the reporter_email field.
func ByReporterEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReporterEmail, opts...).ToFunc()
}

// ByReporterName orders the results by the reporter_name field.
func ByReporterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReporterName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByUpvoteCount orders the results by the upvote_count field.
func ByUpvoteCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpvoteCount, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByReporterField orders the results by reporter field.
func ByReporterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReporterStep(), sql.OrderByField(field, opts...))
	}
}

// ByStatusChangesCount orders the results by status_changes count.
func ByStatusChangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusChangesStep(), opts...)
	}
}

// ByStatusChanges orders the results by status_changes terms.
func ByStatusChanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusChangesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByUpvotesCount orders the results by upvotes count.
func ByUpvotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUpvotesStep(), opts...)
	}
}

// ByUpvotes orders the results by upvotes terms.
func ByUpvotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUpvotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newReporterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReporterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReporterTable, ReporterColumn),
	)
}
func newStatusChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusChangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusChangesTable, StatusChangesColumn),
	)
}
func newUpvotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UpvotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UpvotesTable, UpvotesColumn),
	)
}
