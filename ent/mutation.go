// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicConnectAPI/ent/predicate"
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/ent/statuschange"
	"CivicConnectAPI/ent/upvote"
	"CivicConnectAPI/ent/user"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeReport       = "Report"
	TypeStatusChange = "StatusChange"
	TypeUpvote       = "Upvote"
	TypeUser         = "User"
)

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	title                 *string
	description           *string
	category              *report.Category
	urgency               *report.Urgency
	priority              *report.Priority
	latitude              *float64
	addlatitude           *float64
	longitude             *float64
	addlongitude          *float64
	address               *string
	photos                *[]string
	appendphotos          []string
	reporter_email        *string
	reporter_name         *string
	status                *report.Status
	upvote_count          *int
	addupvote_count       *int
	updated_by            *uuid.UUID
	clearedFields         map[string]struct{}
	reporter              *uuid.UUID
	clearedreporter       bool
	status_changes        map[uuid.UUID]struct{}
	removedstatus_changes map[uuid.UUID]struct{}
	clearedstatus_changes bool
	upvotes               map[uuid.UUID]struct{}
	removedupvotes        map[uuid.UUID]struct{}
	clearedupvotes        bool
	done                  bool
	oldValue              func(context.Context) (*Report, error)
	predicates            []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id uuid.UUID) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *ReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ReportMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ReportMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ReportMutation) ResetDescription() {
	m.description = nil
}

// SetCategory sets the "category" field.
func (m *ReportMutation) SetCategory(r report.Category) {
	m.category = &r
}

// Category returns the value of the "category" field in the mutation.
func (m *ReportMutation) Category() (r report.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCategory(ctx context.Context) (v report.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ReportMutation) ResetCategory() {
	m.category = nil
}

// SetUrgency sets the "urgency" field.
func (m *ReportMutation) SetUrgency(r report.Urgency) {
	m.urgency = &r
}

// Urgency returns the value of the "urgency" field in the mutation.
func (m *ReportMutation) Urgency() (r report.Urgency, exists bool) {
	v := m.urgency
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgency returns the old "urgency" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUrgency(ctx context.Context) (v report.Urgency, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgency: %w", err)
	}
	return oldValue.Urgency, nil
}

// ResetUrgency resets all changes to the "urgency" field.
func (m *ReportMutation) ResetUrgency() {
	m.urgency = nil
}

// SetPriority sets the "priority" field.
func (m *ReportMutation) SetPriority(r report.Priority) {
	m.priority = &r
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ReportMutation) Priority() (r report.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldPriority(ctx context.Context) (v report.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *ReportMutation) ResetPriority() {
	m.priority = nil
}

// SetLatitude sets the "latitude" field.
func (m *ReportMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *ReportMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *ReportMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *ReportMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *ReportMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
}

// SetLongitude sets the "longitude" field.
func (m *ReportMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *ReportMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *ReportMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *ReportMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *ReportMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
}

// SetAddress sets the "address" field.
func (m *ReportMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ReportMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ReportMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[report.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ReportMutation) AddressCleared() bool {
	_, ok := m.clearedFields[report.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ReportMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, report.FieldAddress)
}

// SetPhotos sets the "photos" field.
func (m *ReportMutation) SetPhotos(s []string) {
	m.photos = &s
	m.appendphotos = nil
}

// Photos returns the value of the "photos" field in the mutation.
func (m *ReportMutation) Photos() (r []string, exists bool) {
	v := m.photos
	if v == nil {
		return
	}
	return *v, true
}

// OldPhotos returns the old "photos" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldPhotos(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhotos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhotos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhotos: %w", err)
	}
	return oldValue.Photos, nil
}

// AppendPhotos adds s to the "photos" field.
func (m *ReportMutation) AppendPhotos(s []string) {
	m.appendphotos = append(m.appendphotos, s...)
}

// AppendedPhotos returns the list of values that were appended to the "photos" field in this mutation.
func (m *ReportMutation) AppendedPhotos() ([]string, bool) {
	if len(m.appendphotos) == 0 {
		return nil, false
	}
	return m.appendphotos, true
}

// ClearPhotos clears the value of the "photos" field.
func (m *ReportMutation) ClearPhotos() {
	m.photos = nil
	m.appendphotos = nil
	m.clearedFields[report.FieldPhotos] = struct{}{}
}

// PhotosCleared returns if the "photos" field was cleared in this mutation.
func (m *ReportMutation) PhotosCleared() bool {
	_, ok := m.clearedFields[report.FieldPhotos]
	return ok
}

// ResetPhotos resets all changes to the "photos" field.
func (m *ReportMutation) ResetPhotos() {
	m.photos = nil
	m.appendphotos = nil
	delete(m.clearedFields, report.FieldPhotos)
}

// SetReportedBy sets the "reported_by" field.
func (m *ReportMutation) SetReportedBy(u uuid.UUID) {
	m.reporter = &u
}

// ReportedBy returns the value of the "reported_by" field in the mutation.
func (m *ReportMutation) ReportedBy() (r uuid.UUID, exists bool) {
	v := m.reporter
	if v == nil {
		return
	}
	return *v, true
}

// OldReportedBy returns the old "reported_by" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReportedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportedBy: %w", err)
	}
	return oldValue.ReportedBy, nil
}

// ResetReportedBy resets all changes to the "reported_by" field.
func (m *ReportMutation) ResetReportedBy() {
	m.reporter = nil
}

// SetReporterEmail sets the "reporter_email" field.
func (m *ReportMutation) SetReporterEmail(s string) {
	m.reporter_email = &s
}

// ReporterEmail returns the value of the "reporter_email" field in the mutation.
func (m *ReportMutation) ReporterEmail() (r string, exists bool) {
	v := m.reporter_email
	if v == nil {
		return
	}
	return *v, true
}

// OldReporterEmail returns the old "reporter_email" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReporterEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReporterEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReporterEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReporterEmail: %w", err)
	}
	return oldValue.ReporterEmail, nil
}

// ResetReporterEmail resets all changes to the "reporter_email" field.
func (m *ReportMutation) ResetReporterEmail() {
	m.reporter_email = nil
}

// SetReporterName sets the "reporter_name" field.
func (m *ReportMutation) SetReporterName(s string) {
	m.reporter_name = &s
}

// ReporterName returns the value of the "reporter_name" field in the mutation.
func (m *ReportMutation) ReporterName() (r string, exists bool) {
	v := m.reporter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldReporterName returns the old "reporter_name" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReporterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReporterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReporterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReporterName: %w", err)
	}
	return oldValue.ReporterName, nil
}

// ResetReporterName resets all changes to the "reporter_name" field.
func (m *ReportMutation) ResetReporterName() {
	m.reporter_name = nil
}

// SetStatus sets the "status" field.
func (m *ReportMutation) SetStatus(r report.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReportMutation) Status() (r report.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldStatus(ctx context.Context) (v report.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReportMutation) ResetStatus() {
	m.status = nil
}

// SetUpvoteCount sets the "upvote_count" field.
func (m *ReportMutation) SetUpvoteCount(i int) {
	m.upvote_count = &i
	m.addupvote_count = nil
}

// UpvoteCount returns the value of the "upvote_count" field in the mutation.
func (m *ReportMutation) UpvoteCount() (r int, exists bool) {
	v := m.upvote_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUpvoteCount returns the old "upvote_count" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpvoteCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpvoteCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpvoteCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpvoteCount: %w", err)
	}
	return oldValue.UpvoteCount, nil
}

// AddUpvoteCount adds i to the "upvote_count" field.
func (m *ReportMutation) AddUpvoteCount(i int) {
	if m.addupvote_count != nil {
		*m.addupvote_count += i
	} else {
		m.addupvote_count = &i
	}
}

// AddedUpvoteCount returns the value that was added to the "upvote_count" field in this mutation.
func (m *ReportMutation) AddedUpvoteCount() (r int, exists bool) {
	v := m.addupvote_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpvoteCount resets all changes to the "upvote_count" field.
func (m *ReportMutation) ResetUpvoteCount() {
	m.upvote_count = nil
	m.addupvote_count = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *ReportMutation) SetUpdatedBy(u uuid.UUID) {
	m.updated_by = &u
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *ReportMutation) UpdatedBy() (r uuid.UUID, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *ReportMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[report.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *ReportMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[report.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *ReportMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, report.FieldUpdatedBy)
}

// SetReporterID sets the "reporter" edge to the User entity by id.
func (m *ReportMutation) SetReporterID(id uuid.UUID) {
	m.reporter = &id
}

// ClearReporter clears the "reporter" edge to the User entity.
func (m *ReportMutation) ClearReporter() {
	m.clearedreporter = true
	m.clearedFields[report.FieldReportedBy] = struct{}{}
}

// ReporterCleared reports if the "reporter" edge to the User entity was cleared.
func (m *ReportMutation) ReporterCleared() bool {
	return m.clearedreporter
}

// ReporterID returns the "reporter" edge ID in the mutation.
func (m *ReportMutation) ReporterID() (id uuid.UUID, exists bool) {
	if m.reporter != nil {
		return *m.reporter, true
	}
	return
}

// ReporterIDs returns the "reporter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReporterID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) ReporterIDs() (ids []uuid.UUID) {
	if id := m.reporter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReporter resets all changes to the "reporter" edge.
func (m *ReportMutation) ResetReporter() {
	m.reporter = nil
	m.clearedreporter = false
}

// AddStatusChangeIDs adds the "status_changes" edge to the StatusChange entity by ids.
func (m *ReportMutation) AddStatusChangeIDs(ids ...uuid.UUID) {
	if m.status_changes == nil {
		m.status_changes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.status_changes[ids[i]] = struct{}{}
	}
}

// ClearStatusChanges clears the "status_changes" edge to the StatusChange entity.
func (m *ReportMutation) ClearStatusChanges() {
	m.clearedstatus_changes = true
}

// StatusChangesCleared reports if the "status_changes" edge to the StatusChange entity was cleared.
func (m *ReportMutation) StatusChangesCleared() bool {
	return m.clearedstatus_changes
}

// RemoveStatusChangeIDs removes the "status_changes" edge to the StatusChange entity by IDs.
func (m *ReportMutation) RemoveStatusChangeIDs(ids ...uuid.UUID) {
	if m.removedstatus_changes == nil {
		m.removedstatus_changes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.status_changes, ids[i])
		m.removedstatus_changes[ids[i]] = struct{}{}
	}
}

// RemovedStatusChanges returns the removed IDs of the "status_changes" edge to the StatusChange entity.
func (m *ReportMutation) RemovedStatusChangesIDs() (ids []uuid.UUID) {
	for id := range m.removedstatus_changes {
		ids = append(ids, id)
	}
	return
}

// StatusChangesIDs returns the "status_changes" edge IDs in the mutation.
func (m *ReportMutation) StatusChangesIDs() (ids []uuid.UUID) {
	for id := range m.status_changes {
		ids = append(ids, id)
	}
	return
}

// ResetStatusChanges resets all changes to the "status_changes" edge.
func (m *ReportMutation) ResetStatusChanges() {
	m.status_changes = nil
	m.clearedstatus_changes = false
	m.removedstatus_changes = nil
}

// AddUpvoteIDs adds the "upvotes" edge to the Upvote entity by ids.
func (m *ReportMutation) AddUpvoteIDs(ids ...uuid.UUID) {
	if m.upvotes == nil {
		m.upvotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.upvotes[ids[i]] = struct{}{}
	}
}

// ClearUpvotes clears the "upvotes" edge to the Upvote entity.
func (m *ReportMutation) ClearUpvotes() {
	m.clearedupvotes = true
}

// UpvotesCleared reports if the "upvotes" edge to the Upvote entity was cleared.
func (m *ReportMutation) UpvotesCleared() bool {
	return m.clearedupvotes
}

// RemoveUpvoteIDs removes the "upvotes" edge to the Upvote entity by IDs.
func (m *ReportMutation) RemoveUpvoteIDs(ids ...uuid.UUID) {
	if m.removedupvotes == nil {
		m.removedupvotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.upvotes, ids[i])
		m.removedupvotes[ids[i]] = struct{}{}
	}
}

// RemovedUpvotes returns the removed IDs of the "upvotes" edge to the Upvote entity.
func (m *ReportMutation) RemovedUpvotesIDs() (ids []uuid.UUID) {
	for id := range m.removedupvotes {
		ids = append(ids, id)
	}
	return
}

// UpvotesIDs returns the "upvotes" edge IDs in the mutation.
func (m *ReportMutation) UpvotesIDs() (ids []uuid.UUID) {
	for id := range m.upvotes {
		ids = append(ids, id)
	}
	return
}

// ResetUpvotes resets all changes to the "upvotes" edge.
func (m *ReportMutation) ResetUpvotes() {
	m.upvotes = nil
	m.clearedupvotes = false
	m.removedupvotes = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, report.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, report.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, report.FieldCategory)
	}
	if m.urgency != nil {
		fields = append(fields, report.FieldUrgency)
	}
	if m.priority != nil {
		fields = append(fields, report.FieldPriority)
	}
	if m.latitude != nil {
		fields = append(fields, report.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, report.FieldLongitude)
	}
	if m.address != nil {
		fields = append(fields, report.FieldAddress)
	}
	if m.photos != nil {
		fields = append(fields, report.FieldPhotos)
	}
	if m.reporter != nil {
		fields = append(fields, report.FieldReportedBy)
	}
	if m.reporter_email != nil {
		fields = append(fields, report.FieldReporterEmail)
	}
	if m.reporter_name != nil {
		fields = append(fields, report.FieldReporterName)
	}
	if m.status != nil {
		fields = append(fields, report.FieldStatus)
	}
	if m.upvote_count != nil {
		fields = append(fields, report.FieldUpvoteCount)
	}
	if m.updated_by != nil {
		fields = append(fields, report.FieldUpdatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	case report.FieldTitle:
		return m.Title()
	case report.FieldDescription:
		return m.Description()
	case report.FieldCategory:
		return m.Category()
	case report.FieldUrgency:
		return m.Urgency()
	case report.FieldPriority:
		return m.Priority()
	case report.FieldLatitude:
		return m.Latitude()
	case report.FieldLongitude:
		return m.Longitude()
	case report.FieldAddress:
		return m.Address()
	case report.FieldPhotos:
		return m.Photos()
	case report.FieldReportedBy:
		return m.ReportedBy()
	case report.FieldReporterEmail:
		return m.ReporterEmail()
	case report.FieldReporterName:
		return m.ReporterName()
	case report.FieldStatus:
		return m.Status()
	case report.FieldUpvoteCount:
		return m.UpvoteCount()
	case report.FieldUpdatedBy:
		return m.UpdatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case report.FieldTitle:
		return m.OldTitle(ctx)
	case report.FieldDescription:
		return m.OldDescription(ctx)
	case report.FieldCategory:
		return m.OldCategory(ctx)
	case report.FieldUrgency:
		return m.OldUrgency(ctx)
	case report.FieldPriority:
		return m.OldPriority(ctx)
	case report.FieldLatitude:
		return m.OldLatitude(ctx)
	case report.FieldLongitude:
		return m.OldLongitude(ctx)
	case report.FieldAddress:
		return m.OldAddress(ctx)
	case report.FieldPhotos:
		return m.OldPhotos(ctx)
	case report.FieldReportedBy:
		return m.OldReportedBy(ctx)
	case report.FieldReporterEmail:
		return m.OldReporterEmail(ctx)
	case report.FieldReporterName:
		return m.OldReporterName(ctx)
	case report.FieldStatus:
		return m.OldStatus(ctx)
	case report.FieldUpvoteCount:
		return m.OldUpvoteCount(ctx)
	case report.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case report.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case report.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case report.FieldCategory:
		v, ok := value.(report.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case report.FieldUrgency:
		v, ok := value.(report.Urgency)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgency(v)
		return nil
	case report.FieldPriority:
		v, ok := value.(report.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case report.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case report.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case report.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case report.FieldPhotos:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhotos(v)
		return nil
	case report.FieldReportedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportedBy(v)
		return nil
	case report.FieldReporterEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReporterEmail(v)
		return nil
	case report.FieldReporterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReporterName(v)
		return nil
	case report.FieldStatus:
		v, ok := value.(report.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case report.FieldUpvoteCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpvoteCount(v)
		return nil
	case report.FieldUpdatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, report.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, report.FieldLongitude)
	}
	if m.addupvote_count != nil {
		fields = append(fields, report.FieldUpvoteCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case report.FieldLatitude:
		return m.AddedLatitude()
	case report.FieldLongitude:
		return m.AddedLongitude()
	case report.FieldUpvoteCount:
		return m.AddedUpvoteCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case report.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case report.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case report.FieldUpvoteCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpvoteCount(v)
		return nil
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldAddress) {
		fields = append(fields, report.FieldAddress)
	}
	if m.FieldCleared(report.FieldPhotos) {
		fields = append(fields, report.FieldPhotos)
	}
	if m.FieldCleared(report.FieldUpdatedBy) {
		fields = append(fields, report.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldAddress:
		m.ClearAddress()
		return nil
	case report.FieldPhotos:
		m.ClearPhotos()
		return nil
	case report.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case report.FieldTitle:
		m.ResetTitle()
		return nil
	case report.FieldDescription:
		m.ResetDescription()
		return nil
	case report.FieldCategory:
		m.ResetCategory()
		return nil
	case report.FieldUrgency:
		m.ResetUrgency()
		return nil
	case report.FieldPriority:
		m.ResetPriority()
		return nil
	case report.FieldLatitude:
		m.ResetLatitude()
		return nil
	case report.FieldLongitude:
		m.ResetLongitude()
		return nil
	case report.FieldAddress:
		m.ResetAddress()
		return nil
	case report.FieldPhotos:
		m.ResetPhotos()
		return nil
	case report.FieldReportedBy:
		m.ResetReportedBy()
		return nil
	case report.FieldReporterEmail:
		m.ResetReporterEmail()
		return nil
	case report.FieldReporterName:
		m.ResetReporterName()
		return nil
	case report.FieldStatus:
		m.ResetStatus()
		return nil
	case report.FieldUpvoteCount:
		m.ResetUpvoteCount()
		return nil
	case report.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.reporter != nil {
		edges = append(edges, report.EdgeReporter)
	}
	if m.status_changes != nil {
		edges = append(edges, report.EdgeStatusChanges)
	}
	if m.upvotes != nil {
		edges = append(edges, report.EdgeUpvotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeReporter:
		if id := m.reporter; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeStatusChanges:
		ids := make([]ent.Value, 0, len(m.status_changes))
		for id := range m.status_changes {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeUpvotes:
		ids := make([]ent.Value, 0, len(m.upvotes))
		for id := range m.upvotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstatus_changes != nil {
		edges = append(edges, report.EdgeStatusChanges)
	}
	if m.removedupvotes != nil {
		edges = append(edges, report.EdgeUpvotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeStatusChanges:
		ids := make([]ent.Value, 0, len(m.removedstatus_changes))
		for id := range m.removedstatus_changes {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeUpvotes:
		ids := make([]ent.Value, 0, len(m.removedupvotes))
		for id := range m.removedupvotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreporter {
		edges = append(edges, report.EdgeReporter)
	}
	if m.clearedstatus_changes {
		edges = append(edges, report.EdgeStatusChanges)
	}
	if m.clearedupvotes {
		edges = append(edges, report.EdgeUpvotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeReporter:
		return m.clearedreporter
	case report.EdgeStatusChanges:
		return m.clearedstatus_changes
	case report.EdgeUpvotes:
		return m.clearedupvotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeReporter:
		m.ClearReporter()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeReporter:
		m.ResetReporter()
		return nil
	case report.EdgeStatusChanges:
		m.ResetStatusChanges()
		return nil
	case report.EdgeUpvotes:
		m.ResetUpvotes()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// StatusChangeMutation represents an operation that mutates the StatusChange nodes in the graph.
type StatusChangeMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	status        *statuschange.Status
	changed_by    *uuid.UUID
	notes         *string
	changed_at    *time.Time
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*StatusChange, error)
	predicates    []predicate.StatusChange
}

var _ ent.Mutation = (*StatusChangeMutation)(nil)

// statuschangeOption allows management of the mutation configuration using functional options.
type statuschangeOption func(*StatusChangeMutation)

// newStatusChangeMutation creates new mutation for the StatusChange entity.
func newStatusChangeMutation(c config, op Op, opts ...statuschangeOption) *StatusChangeMutation {
	m := &StatusChangeMutation{
		config:        c,
		op:            op,
		typ:           TypeStatusChange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatusChangeID sets the ID field of the mutation.
func withStatusChangeID(id uuid.UUID) statuschangeOption {
	return func(m *StatusChangeMutation) {
		var (
			err   error
			once  sync.Once
			value *StatusChange
		)
		m.oldValue = func(ctx context.Context) (*StatusChange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatusChange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatusChange sets the old StatusChange of the mutation.
func withStatusChange(node *StatusChange) statuschangeOption {
	return func(m *StatusChangeMutation) {
		m.oldValue = func(context.Context) (*StatusChange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatusChangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatusChangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StatusChange entities.
func (m *StatusChangeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatusChangeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatusChangeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatusChange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *StatusChangeMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *StatusChangeMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *StatusChangeMutation) ResetReportID() {
	m.report = nil
}

// SetStatus sets the "status" field.
func (m *StatusChangeMutation) SetStatus(s statuschange.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StatusChangeMutation) Status() (r statuschange.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldStatus(ctx context.Context) (v statuschange.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StatusChangeMutation) ResetStatus() {
	m.status = nil
}

// SetChangedBy sets the "changed_by" field.
func (m *StatusChangeMutation) SetChangedBy(u uuid.UUID) {
	m.changed_by = &u
}

// ChangedBy returns the value of the "changed_by" field in the mutation.
func (m *StatusChangeMutation) ChangedBy() (r uuid.UUID, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedBy returns the old "changed_by" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldChangedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedBy: %w", err)
	}
	return oldValue.ChangedBy, nil
}

// ResetChangedBy resets all changes to the "changed_by" field.
func (m *StatusChangeMutation) ResetChangedBy() {
	m.changed_by = nil
}

// SetNotes sets the "notes" field.
func (m *StatusChangeMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *StatusChangeMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *StatusChangeMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[statuschange.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *StatusChangeMutation) NotesCleared() bool {
	_, ok := m.clearedFields[statuschange.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *StatusChangeMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, statuschange.FieldNotes)
}

// SetChangedAt sets the "changed_at" field.
func (m *StatusChangeMutation) SetChangedAt(t time.Time) {
	m.changed_at = &t
}

// ChangedAt returns the value of the "changed_at" field in the mutation.
func (m *StatusChangeMutation) ChangedAt() (r time.Time, exists bool) {
	v := m.changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedAt returns the old "changed_at" field's value of the StatusChange entity.
// If the StatusChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusChangeMutation) OldChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedAt: %w", err)
	}
	return oldValue.ChangedAt, nil
}

// ResetChangedAt resets all changes to the "changed_at" field.
func (m *StatusChangeMutation) ResetChangedAt() {
	m.changed_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *StatusChangeMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[statuschange.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *StatusChangeMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *StatusChangeMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *StatusChangeMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the StatusChangeMutation builder.
func (m *StatusChangeMutation) Where(ps ...predicate.StatusChange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatusChangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatusChangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatusChange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatusChangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatusChangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatusChange).
func (m *StatusChangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatusChangeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.report != nil {
		fields = append(fields, statuschange.FieldReportID)
	}
	if m.status != nil {
		fields = append(fields, statuschange.FieldStatus)
	}
	if m.changed_by != nil {
		fields = append(fields, statuschange.FieldChangedBy)
	}
	if m.notes != nil {
		fields = append(fields, statuschange.FieldNotes)
	}
	if m.changed_at != nil {
		fields = append(fields, statuschange.FieldChangedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatusChangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statuschange.FieldReportID:
		return m.ReportID()
	case statuschange.FieldStatus:
		return m.Status()
	case statuschange.FieldChangedBy:
		return m.ChangedBy()
	case statuschange.FieldNotes:
		return m.Notes()
	case statuschange.FieldChangedAt:
		return m.ChangedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatusChangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statuschange.FieldReportID:
		return m.OldReportID(ctx)
	case statuschange.FieldStatus:
		return m.OldStatus(ctx)
	case statuschange.FieldChangedBy:
		return m.OldChangedBy(ctx)
	case statuschange.FieldNotes:
		return m.OldNotes(ctx)
	case statuschange.FieldChangedAt:
		return m.OldChangedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StatusChange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusChangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statuschange.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case statuschange.FieldStatus:
		v, ok := value.(statuschange.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case statuschange.FieldChangedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedBy(v)
		return nil
	case statuschange.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case statuschange.FieldChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StatusChange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatusChangeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatusChangeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusChangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StatusChange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatusChangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(statuschange.FieldNotes) {
		fields = append(fields, statuschange.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatusChangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatusChangeMutation) ClearField(name string) error {
	switch name {
	case statuschange.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown StatusChange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatusChangeMutation) ResetField(name string) error {
	switch name {
	case statuschange.FieldReportID:
		m.ResetReportID()
		return nil
	case statuschange.FieldStatus:
		m.ResetStatus()
		return nil
	case statuschange.FieldChangedBy:
		m.ResetChangedBy()
		return nil
	case statuschange.FieldNotes:
		m.ResetNotes()
		return nil
	case statuschange.FieldChangedAt:
		m.ResetChangedAt()
		return nil
	}
	return fmt.Errorf("unknown StatusChange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatusChangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, statuschange.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatusChangeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case statuschange.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatusChangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatusChangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatusChangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, statuschange.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatusChangeMutation) EdgeCleared(name string) bool {
	switch name {
	case statuschange.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatusChangeMutation) ClearEdge(name string) error {
	switch name {
	case statuschange.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown StatusChange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatusChangeMutation) ResetEdge(name string) error {
	switch name {
	case statuschange.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown StatusChange edge %s", name)
}

// UpvoteMutation represents an operation that mutates the Upvote nodes in the graph.
type UpvoteMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Upvote, error)
	predicates    []predicate.Upvote
}

var _ ent.Mutation = (*UpvoteMutation)(nil)

// upvoteOption allows management of the mutation configuration using functional options.
type upvoteOption func(*UpvoteMutation)

// newUpvoteMutation creates new mutation for the Upvote entity.
func newUpvoteMutation(c config, op Op, opts ...upvoteOption) *UpvoteMutation {
	m := &UpvoteMutation{
		config:        c,
		op:            op,
		typ:           TypeUpvote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUpvoteID sets the ID field of the mutation.
func withUpvoteID(id uuid.UUID) upvoteOption {
	return func(m *UpvoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Upvote
		)
		m.oldValue = func(ctx context.Context) (*Upvote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Upvote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpvote sets the old Upvote of the mutation.
func withUpvote(node *Upvote) upvoteOption {
	return func(m *UpvoteMutation) {
		m.oldValue = func(context.Context) (*Upvote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UpvoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UpvoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Upvote entities.
func (m *UpvoteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UpvoteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UpvoteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Upvote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *UpvoteMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *UpvoteMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Upvote entity.
// If the Upvote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpvoteMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *UpvoteMutation) ResetReportID() {
	m.report = nil
}

// SetUserID sets the "user_id" field.
func (m *UpvoteMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UpvoteMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Upvote entity.
// If the Upvote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpvoteMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UpvoteMutation) ResetUserID() {
	m.user = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UpvoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UpvoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Upvote entity.
// If the Upvote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpvoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UpvoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *UpvoteMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[upvote.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *UpvoteMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *UpvoteMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *UpvoteMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *UpvoteMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[upvote.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UpvoteMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UpvoteMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UpvoteMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UpvoteMutation builder.
func (m *UpvoteMutation) Where(ps ...predicate.Upvote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UpvoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UpvoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Upvote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UpvoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UpvoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Upvote).
func (m *UpvoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UpvoteMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.report != nil {
		fields = append(fields, upvote.FieldReportID)
	}
	if m.user != nil {
		fields = append(fields, upvote.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, upvote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UpvoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case upvote.FieldReportID:
		return m.ReportID()
	case upvote.FieldUserID:
		return m.UserID()
	case upvote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UpvoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case upvote.FieldReportID:
		return m.OldReportID(ctx)
	case upvote.FieldUserID:
		return m.OldUserID(ctx)
	case upvote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Upvote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpvoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case upvote.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case upvote.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case upvote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Upvote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UpvoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UpvoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpvoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Upvote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UpvoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UpvoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UpvoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Upvote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UpvoteMutation) ResetField(name string) error {
	switch name {
	case upvote.FieldReportID:
		m.ResetReportID()
		return nil
	case upvote.FieldUserID:
		m.ResetUserID()
		return nil
	case upvote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Upvote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UpvoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.report != nil {
		edges = append(edges, upvote.EdgeReport)
	}
	if m.user != nil {
		edges = append(edges, upvote.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UpvoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case upvote.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case upvote.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UpvoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UpvoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UpvoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreport {
		edges = append(edges, upvote.EdgeReport)
	}
	if m.cleareduser {
		edges = append(edges, upvote.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UpvoteMutation) EdgeCleared(name string) bool {
	switch name {
	case upvote.EdgeReport:
		return m.clearedreport
	case upvote.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UpvoteMutation) ClearEdge(name string) error {
	switch name {
	case upvote.EdgeReport:
		m.ClearReport()
		return nil
	case upvote.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Upvote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UpvoteMutation) ResetEdge(name string) error {
	switch name {
	case upvote.EdgeReport:
		m.ResetReport()
		return nil
	case upvote.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Upvote edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	google_id      *string
	email          *string
	name           *string
	picture        *string
	role           *user.Role
	created_at     *time.Time
	last_login     *time.Time
	clearedFields  map[string]struct{}
	reports        map[uuid.UUID]struct{}
	removedreports map[uuid.UUID]struct{}
	clearedreports bool
	upvotes        map[uuid.UUID]struct{}
	removedupvotes map[uuid.UUID]struct{}
	clearedupvotes bool
	done           bool
	oldValue       func(context.Context) (*User, error)
	predicates     []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGoogleID sets the "google_id" field.
func (m *UserMutation) SetGoogleID(s string) {
	m.google_id = &s
}

// GoogleID returns the value of the "google_id" field in the mutation.
func (m *UserMutation) GoogleID() (r string, exists bool) {
	v := m.google_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoogleID returns the old "google_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldGoogleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoogleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoogleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoogleID: %w", err)
	}
	return oldValue.GoogleID, nil
}

// ClearGoogleID clears the value of the "google_id" field.
func (m *UserMutation) ClearGoogleID() {
	m.google_id = nil
	m.clearedFields[user.FieldGoogleID] = struct{}{}
}

// GoogleIDCleared returns if the "google_id" field was cleared in this mutation.
func (m *UserMutation) GoogleIDCleared() bool {
	_, ok := m.clearedFields[user.FieldGoogleID]
	return ok
}

// ResetGoogleID resets all changes to the "google_id" field.
func (m *UserMutation) ResetGoogleID() {
	m.google_id = nil
	delete(m.clearedFields, user.FieldGoogleID)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetPicture sets the "picture" field.
func (m *UserMutation) SetPicture(s string) {
	m.picture = &s
}

// Picture returns the value of the "picture" field in the mutation.
func (m *UserMutation) Picture() (r string, exists bool) {
	v := m.picture
	if v == nil {
		return
	}
	return *v, true
}

// OldPicture returns the old "picture" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPicture(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPicture is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPicture requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPicture: %w", err)
	}
	return oldValue.Picture, nil
}

// ClearPicture clears the value of the "picture" field.
func (m *UserMutation) ClearPicture() {
	m.picture = nil
	m.clearedFields[user.FieldPicture] = struct{}{}
}

// PictureCleared returns if the "picture" field was cleared in this mutation.
func (m *UserMutation) PictureCleared() bool {
	_, ok := m.clearedFields[user.FieldPicture]
	return ok
}

// ResetPicture resets all changes to the "picture" field.
func (m *UserMutation) ResetPicture() {
	m.picture = nil
	delete(m.clearedFields, user.FieldPicture)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastLogin sets the "last_login" field.
func (m *UserMutation) SetLastLogin(t time.Time) {
	m.last_login = &t
}

// LastLogin returns the value of the "last_login" field in the mutation.
func (m *UserMutation) LastLogin() (r time.Time, exists bool) {
	v := m.last_login
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLogin returns the old "last_login" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLogin(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLogin: %w", err)
	}
	return oldValue.LastLogin, nil
}

// ResetLastLogin resets all changes to the "last_login" field.
func (m *UserMutation) ResetLastLogin() {
	m.last_login = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *UserMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *UserMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *UserMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *UserMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *UserMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *UserMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *UserMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// AddUpvoteIDs adds the "upvotes" edge to the Upvote entity by ids.
func (m *UserMutation) AddUpvoteIDs(ids ...uuid.UUID) {
	if m.upvotes == nil {
		m.upvotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.upvotes[ids[i]] = struct{}{}
	}
}

// ClearUpvotes clears the "upvotes" edge to the Upvote entity.
func (m *UserMutation) ClearUpvotes() {
	m.clearedupvotes = true
}

// UpvotesCleared reports if the "upvotes" edge to the Upvote entity was cleared.
func (m *UserMutation) UpvotesCleared() bool {
	return m.clearedupvotes
}

// RemoveUpvoteIDs removes the "upvotes" edge to the Upvote entity by IDs.
func (m *UserMutation) RemoveUpvoteIDs(ids ...uuid.UUID) {
	if m.removedupvotes == nil {
		m.removedupvotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.upvotes, ids[i])
		m.removedupvotes[ids[i]] = struct{}{}
	}
}

// RemovedUpvotes returns the removed IDs of the "upvotes" edge to the Upvote entity.
func (m *UserMutation) RemovedUpvotesIDs() (ids []uuid.UUID) {
	for id := range m.removedupvotes {
		ids = append(ids, id)
	}
	return
}

// UpvotesIDs returns the "upvotes" edge IDs in the mutation.
func (m *UserMutation) UpvotesIDs() (ids []uuid.UUID) {
	for id := range m.upvotes {
		ids = append(ids, id)
	}
	return
}

// ResetUpvotes resets all changes to the "upvotes" edge.
func (m *UserMutation) ResetUpvotes() {
	m.upvotes = nil
	m.clearedupvotes = false
	m.removedupvotes = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.google_id != nil {
		fields = append(fields, user.FieldGoogleID)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.picture != nil {
		fields = append(fields, user.FieldPicture)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.last_login != nil {
		fields = append(fields, user.FieldLastLogin)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldGoogleID:
		return m.GoogleID()
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldPicture:
		return m.Picture()
	case user.FieldRole:
		return m.Role()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldLastLogin:
		return m.LastLogin()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldGoogleID:
		return m.OldGoogleID(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldPicture:
		return m.OldPicture(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldLastLogin:
		return m.OldLastLogin(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldGoogleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoogleID(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldPicture:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPicture(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldLastLogin:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLogin(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldGoogleID) {
		fields = append(fields, user.FieldGoogleID)
	}
	if m.FieldCleared(user.FieldPicture) {
		fields = append(fields, user.FieldPicture)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldGoogleID:
		m.ClearGoogleID()
		return nil
	case user.FieldPicture:
		m.ClearPicture()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldGoogleID:
		m.ResetGoogleID()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldPicture:
		m.ResetPicture()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldLastLogin:
		m.ResetLastLogin()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.reports != nil {
		edges = append(edges, user.EdgeReports)
	}
	if m.upvotes != nil {
		edges = append(edges, user.EdgeUpvotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeUpvotes:
		ids := make([]ent.Value, 0, len(m.upvotes))
		for id := range m.upvotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreports != nil {
		edges = append(edges, user.EdgeReports)
	}
	if m.removedupvotes != nil {
		edges = append(edges, user.EdgeUpvotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeUpvotes:
		ids := make([]ent.Value, 0, len(m.removedupvotes))
		for id := range m.removedupvotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreports {
		edges = append(edges, user.EdgeReports)
	}
	if m.clearedupvotes {
		edges = append(edges, user.EdgeUpvotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeReports:
		return m.clearedreports
	case user.EdgeUpvotes:
		return m.clearedupvotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeReports:
		m.ResetReports()
		return nil
	case user.EdgeUpvotes:
		m.ResetUpvotes()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
