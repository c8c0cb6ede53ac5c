// Code generated by ent, DO NOT EDIT.

package report

import (
	"CivicConnectAPI/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDescription, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLongitude, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAddress, v))
}

// ReportedBy applies equality check predicate on the "reported_by" field. It's identical to ReportedByEQ.
func ReportedBy(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportedBy, v))
}

// ReporterEmail applies equality check predicate on the "reporter_email" field. It's identical to ReporterEmailEQ.
func ReporterEmail(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReporterEmail, v))
}

// ReporterName applies equality check predicate on the "reporter_name" field. It's identical to ReporterNameEQ.
func ReporterName(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReporterName, v))
}

// UpvoteCount applies equality check predicate on the "upvote_count" field. It's identical to UpvoteCountEQ.
func UpvoteCount(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpvoteCount, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCategory, vs...))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v Urgency) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v Urgency) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...Urgency) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...Urgency) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUrgency, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldPriority, vs...))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLatitude, v))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLongitude, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldAddress, v))
}

// PhotosIsNil applies the IsNil predicate on the "photos" field.
func PhotosIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldPhotos))
}

// PhotosNotNil applies the NotNil predicate on the "photos" field.
func PhotosNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldPhotos))
}

// ReportedByEQ applies the EQ predicate on the "reported_by" field.
func ReportedByEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportedBy, v))
}

// ReportedByNEQ applies the NEQ predicate on the "reported_by" field.
func ReportedByNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReportedBy, v))
}

// ReportedByIn applies the In predicate on the "reported_by" field.
func ReportedByIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReportedBy, vs...))
}

// ReportedByNotIn applies the NotIn predicate on the "reported_by" field.
func ReportedByNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReportedBy, vs...))
}

// ReporterEmailEQ applies the EQ predicate on the "reporter_email" field.
func ReporterEmailEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReporterEmail, v))
}

// ReporterEmailNEQ applies the NEQ predicate on the "reporter_email" field.
func ReporterEmailNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReporterEmail, v))
}

// ReporterEmailIn applies the In predicate on the "reporter_email" field.
func ReporterEmailIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReporterEmail, vs...))
}

// ReporterEmailNotIn applies the NotIn predicate on the "reporter_email" field.
func ReporterEmailNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReporterEmail, vs...))
}

// ReporterEmailGT applies the GT predicate on the "reporter_email" field.
func ReporterEmailGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldReporterEmail, v))
}

// ReporterEmailGTE applies the GTE predicate on the "reporter_email" field.
func ReporterEmailGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldReporterEmail, v))
}

// ReporterEmailLT applies the LT predicate on the "reporter_email" field.
func ReporterEmailLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldReporterEmail, v))
}

// ReporterEmailLTE applies the LTE predicate on the "reporter_email" field.
func ReporterEmailLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldReporterEmail, v))
}

// ReporterEmailContains applies the Contains predicate on the "reporter_email" field.
func ReporterEmailContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldReporterEmail, v))
}

// ReporterEmailHasPrefix applies the HasPrefix predicate on the "reporter_email" field.
func ReporterEmailHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldReporterEmail, v))
}

// ReporterEmailHasSuffix applies the HasSuffix predicate on the "reporter_email" field.
func ReporterEmailHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldReporterEmail, v))
}

// ReporterEmailEqualFold applies the EqualFold predicate on the "reporter_email" field.
func ReporterEmailEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldReporterEmail, v))
}

// ReporterEmailContainsFold applies the ContainsFold predicate on the "reporter_email" field.
func ReporterEmailContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldReporterEmail, v))
}

// ReporterNameEQ applies the EQ predicate on the "reporter_name" field.
func ReporterNameEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReporterName, v))
}

// ReporterNameNEQ applies the NEQ predicate on the "reporter_name" field.
func ReporterNameNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReporterName, v))
}

// ReporterNameIn applies the In predicate on the "reporter_name" field.
func ReporterNameIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReporterName, vs...))
}

// ReporterNameNotIn applies the NotIn predicate on the "reporter_name" field.
func ReporterNameNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReporterName, vs...))
}

// ReporterNameGT applies the GT predicate on the "reporter_name" field.
func ReporterNameGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldReporterName, v))
}

// ReporterNameGTE applies the GTE predicate on the "reporter_name" field.
func ReporterNameGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldReporterName, v))
}

// ReporterNameLT applies the LT predicate on the "reporter_name" field.
func ReporterNameLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldReporterName, v))
}

// ReporterNameLTE applies the LTE predicate on the "reporter_name" field.
func ReporterNameLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldReporterName, v))
}

// ReporterNameContains applies the Contains predicate on the "reporter_name" field.
func ReporterNameContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldReporterName, v))
}

// ReporterNameHasPrefix applies the HasPrefix predicate on the "reporter_name" field.
func ReporterNameHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldReporterName, v))
}

// ReporterNameHasSuffix applies the HasSuffix predicate on the "reporter_name" field.
func ReporterNameHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldReporterName, v))
}

// ReporterNameEqualFold applies the EqualFold predicate on the "reporter_name" field.
func ReporterNameEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldReporterName, v))
}

// ReporterNameContainsFold applies the ContainsFold predicate on the "reporter_name" field.
func ReporterNameContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldReporterName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldStatus, vs...))
}

// UpvoteCountEQ applies the EQ predicate on the "upvote_count" field.
func UpvoteCountEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpvoteCount, v))
}

// UpvoteCountNEQ applies the NEQ predicate on the "upvote_count" field.
func UpvoteCountNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpvoteCount, v))
}

// UpvoteCountIn applies the In predicate on the "upvote_count" field.
func UpvoteCountIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpvoteCount, vs...))
}

// UpvoteCountNotIn applies the NotIn predicate on the "upvote_count" field.
func UpvoteCountNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpvoteCount, vs...))
}

// UpvoteCountGT applies the GT predicate on the "upvote_count" field.
func UpvoteCountGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpvoteCount, v))
}

// UpvoteCountGTE applies the GTE predicate on the "upvote_count" field.
func UpvoteCountGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpvoteCount, v))
}

// UpvoteCountLT applies the LT predicate on the "upvote_count" field.
func UpvoteCountLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpvoteCount, v))
}

// UpvoteCountLTE applies the LTE predicate on the "upvote_count" field.
func UpvoteCountLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpvoteCount, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldUpdatedBy))
}

// HasReporter applies the HasEdge predicate on the "reporter" edge.
func HasReporter() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReporterTable, ReporterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReporterWith applies the HasEdge predicate on the "reporter" edge with a given conditions (other predicates).
func HasReporterWith(preds ...predicate.User) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newReporterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatusChanges applies the HasEdge predicate on the "status_changes" edge.
func HasStatusChanges() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusChangesTable, StatusChangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusChangesWith applies the HasEdge predicate on the "status_changes" edge with a given conditions (other predicates).
func HasStatusChangesWith(preds ...predicate.StatusChange) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newStatusChangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUpvotes applies the HasEdge predicate on the "upvotes" edge.
func HasUpvotes() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UpvotesTable, UpvotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUpvotesWith applies the HasEdge predicate on the "upvotes" edge with a given conditions (other predicates).
func HasUpvotesWith(preds ...predicate.Upvote) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newUpvotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
