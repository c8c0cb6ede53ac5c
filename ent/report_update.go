// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicConnectAPI/ent/predicate"
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/ent/statuschange"
	"CivicConnectAPI/ent/upvote"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdate) SetTitle(v string) *ReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTitle(v *string) *ReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReportUpdate) SetDescription(v string) *ReportUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDescription(v *string) *ReportUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReportUpdate) SetCategory(v report.Category) *ReportUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCategory(v *report.Category) *ReportUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *ReportUpdate) SetUrgency(v report.Urgency) *ReportUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableUrgency(v *report.Urgency) *ReportUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReportUpdate) SetPriority(v report.Priority) *ReportUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePriority(v *report.Priority) *ReportUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ReportUpdate) SetLatitude(v float64) *ReportUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLatitude(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ReportUpdate) AddLatitude(v float64) *ReportUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ReportUpdate) SetLongitude(v float64) *ReportUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableLongitude(v *float64) *ReportUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ReportUpdate) AddLongitude(v float64) *ReportUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetAddress sets the "address" field.
func (_u *ReportUpdate) SetAddress(v string) *ReportUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableAddress(v *string) *ReportUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ReportUpdate) ClearAddress() *ReportUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetPhotos sets the "photos" field.
func (_u *ReportUpdate) SetPhotos(v []string) *ReportUpdate {
	_u.mutation.SetPhotos(v)
	return _u
}

// AppendPhotos appends value to the "photos" field.
func (_u *ReportUpdate) AppendPhotos(v []string) *ReportUpdate {
	_u.mutation.AppendPhotos(v)
	return _u
}

// ClearPhotos clears the value of the "photos" field.
func (_u *ReportUpdate) ClearPhotos() *ReportUpdate {
	_u.mutation.ClearPhotos()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v report.Status) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *report.Status) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpvoteCount sets the "upvote_count" field.
func (_u *ReportUpdate) SetUpvoteCount(v int) *ReportUpdate {
	_u.mutation.ResetUpvoteCount()
	_u.mutation.SetUpvoteCount(v)
	return _u
}

// SetNillableUpvoteCount sets the "upvote_count" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableUpvoteCount(v *int) *ReportUpdate {
	if v != nil {
		_u.SetUpvoteCount(*v)
	}
	return _u
}

// AddUpvoteCount adds value to the "upvote_count" field.
func (_u *ReportUpdate) AddUpvoteCount(v int) *ReportUpdate {
	_u.mutation.AddUpvoteCount(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ReportUpdate) SetUpdatedBy(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableUpdatedBy(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ReportUpdate) ClearUpdatedBy() *ReportUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// AddStatusChangeIDs adds the "status_changes" edge to the StatusChange entity by IDs.
func (_u *ReportUpdate) AddStatusChangeIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddStatusChangeIDs(ids...)
	return _u
}

// AddStatusChanges adds the "status_changes" edges to the StatusChange entity.
func (_u *ReportUpdate) AddStatusChanges(v ...*StatusChange) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusChangeIDs(ids...)
}

// AddUpvoteIDs adds the "upvotes" edge to the Upvote entity by IDs.
func (_u *ReportUpdate) AddUpvoteIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddUpvoteIDs(ids...)
	return _u
}

// AddUpvotes adds the "upvotes" edges to the Upvote entity.
func (_u *ReportUpdate) AddUpvotes(v ...*Upvote) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUpvoteIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearStatusChanges clears all "status_changes" edges to the StatusChange entity.
func (_u *ReportUpdate) ClearStatusChanges() *ReportUpdate {
	_u.mutation.ClearStatusChanges()
	return _u
}

// RemoveStatusChangeIDs removes the "status_changes" edge to StatusChange entities by IDs.
func (_u *ReportUpdate) RemoveStatusChangeIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveStatusChangeIDs(ids...)
	return _u
}

// RemoveStatusChanges removes "status_changes" edges to StatusChange entities.
func (_u *ReportUpdate) RemoveStatusChanges(v ...*StatusChange) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusChangeIDs(ids...)
}

// ClearUpvotes clears all "upvotes" edges to the Upvote entity.
func (_u *ReportUpdate) ClearUpvotes() *ReportUpdate {
	_u.mutation.ClearUpvotes()
	return _u
}

// RemoveUpvoteIDs removes the "upvotes" edge to Upvote entities by IDs.
func (_u *ReportUpdate) RemoveUpvoteIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveUpvoteIDs(ids...)
	return _u
}

// RemoveUpvotes removes "upvotes" edges to Upvote entities.
func (_u *ReportUpdate) RemoveUpvotes(v ...*Upvote) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUpvoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := report.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Report.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpvoteCount(); ok {
		if err := report.UpvoteCountValidator(v); err != nil {
			return &ValidationError{Name: "upvote_count", err: fmt.Errorf(`ent: validator failed for field "Report.upvote_count": %w`, err)}
		}
	}
	if _u.mutation.ReporterCleared() && len(_u.mutation.ReporterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.reporter"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(report.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(report.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(report.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Photos(); ok {
		_spec.SetField(report.FieldPhotos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhotos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldPhotos, value)
		})
	}
	if _u.mutation.PhotosCleared() {
		_spec.ClearField(report.FieldPhotos, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpvoteCount(); ok {
		_spec.SetField(report.FieldUpvoteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpvoteCount(); ok {
		_spec.AddField(report.FieldUpvoteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(report.FieldUpdatedBy, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(report.FieldUpdatedBy, field.TypeUUID)
	}
	if _u.mutation.StatusChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.StatusChangesTable,
			Columns: []string{report.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusChangesIDs(); len(nodes) > 0 && !_u.mutation.StatusChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.StatusChangesTable,
			Columns: []string{report.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.StatusChangesTable,
			Columns: []string{report.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UpvotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.UpvotesTable,
			Columns: []string{report.UpvotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upvote.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUpvotesIDs(); len(nodes) > 0 && !_u.mutation.UpvotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.UpvotesTable,
			Columns: []string{report.UpvotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upvote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UpvotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.UpvotesTable,
			Columns: []string{report.UpvotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upvote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdateOne) SetTitle(v string) *ReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTitle(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReportUpdateOne) SetDescription(v string) *ReportUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDescription(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReportUpdateOne) SetCategory(v report.Category) *ReportUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCategory(v *report.Category) *ReportUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *ReportUpdateOne) SetUrgency(v report.Urgency) *ReportUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableUrgency(v *report.Urgency) *ReportUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReportUpdateOne) SetPriority(v report.Priority) *ReportUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePriority(v *report.Priority) *ReportUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ReportUpdateOne) SetLatitude(v float64) *ReportUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLatitude(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ReportUpdateOne) AddLatitude(v float64) *ReportUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ReportUpdateOne) SetLongitude(v float64) *ReportUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableLongitude(v *float64) *ReportUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ReportUpdateOne) AddLongitude(v float64) *ReportUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetAddress sets the "address" field.
func (_u *ReportUpdateOne) SetAddress(v string) *ReportUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableAddress(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ReportUpdateOne) ClearAddress() *ReportUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetPhotos sets the "photos" field.
func (_u *ReportUpdateOne) SetPhotos(v []string) *ReportUpdateOne {
	_u.mutation.SetPhotos(v)
	return _u
}

// AppendPhotos appends value to the "photos" field.
func (_u *ReportUpdateOne) AppendPhotos(v []string) *ReportUpdateOne {
	_u.mutation.AppendPhotos(v)
	return _u
}

// ClearPhotos clears the value of the "photos" field.
func (_u *ReportUpdateOne) ClearPhotos() *ReportUpdateOne {
	_u.mutation.ClearPhotos()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v report.Status) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *report.Status) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpvoteCount sets the "upvote_count" field.
func (_u *ReportUpdateOne) SetUpvoteCount(v int) *ReportUpdateOne {
	_u.mutation.ResetUpvoteCount()
	_u.mutation.SetUpvoteCount(v)
	return _u
}

// SetNillableUpvoteCount sets the "upvote_count" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableUpvoteCount(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetUpvoteCount(*v)
	}
	return _u
}

// AddUpvoteCount adds value to the "upvote_count" field.
func (_u *ReportUpdateOne) AddUpvoteCount(v int) *ReportUpdateOne {
	_u.mutation.AddUpvoteCount(v)
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *ReportUpdateOne) SetUpdatedBy(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableUpdatedBy(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *ReportUpdateOne) ClearUpdatedBy() *ReportUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// AddStatusChangeIDs adds the "status_changes" edge to the StatusChange entity by IDs.
func (_u *ReportUpdateOne) AddStatusChangeIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddStatusChangeIDs(ids...)
	return _u
}

// AddStatusChanges adds the "status_changes" edges to the StatusChange entity.
func (_u *ReportUpdateOne) AddStatusChanges(v ...*StatusChange) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusChangeIDs(ids...)
}

// AddUpvoteIDs adds the "upvotes" edge to the Upvote entity by IDs.
func (_u *ReportUpdateOne) AddUpvoteIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddUpvoteIDs(ids...)
	return _u
}

// AddUpvotes adds the "upvotes" edges to the Upvote entity.
func (_u *ReportUpdateOne) AddUpvotes(v ...*Upvote) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUpvoteIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearStatusChanges clears all "status_changes" edges to the StatusChange entity.
func (_u *ReportUpdateOne) ClearStatusChanges() *ReportUpdateOne {
	_u.mutation.ClearStatusChanges()
	return _u
}

// RemoveStatusChangeIDs removes the "status_changes" edge to StatusChange entities by IDs.
func (_u *ReportUpdateOne) RemoveStatusChangeIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveStatusChangeIDs(ids...)
	return _u
}

// RemoveStatusChanges removes "status_changes" edges to StatusChange entities.
func (_u *ReportUpdateOne) RemoveStatusChanges(v ...*StatusChange) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusChangeIDs(ids...)
}

// ClearUpvotes clears all "upvotes" edges to the Upvote entity.
func (_u *ReportUpdateOne) ClearUpvotes() *ReportUpdateOne {
	_u.mutation.ClearUpvotes()
	return _u
}

// RemoveUpvoteIDs removes the "upvotes" edge to Upvote entities by IDs.
func (_u *ReportUpdateOne) RemoveUpvoteIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveUpvoteIDs(ids...)
	return _u
}

// RemoveUpvotes removes "upvotes" edges to Upvote entities.
func (_u *ReportUpdateOne) RemoveUpvotes(v ...*Upvote) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUpvoteIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := report.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Report.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UpvoteCount(); ok {
		if err := report.UpvoteCountValidator(v); err != nil {
			return &ValidationError{Name: "upvote_count", err: fmt.Errorf(`ent: validator failed for field "Report.upvote_count": %w`, err)}
		}
	}
	if _u.mutation.ReporterCleared() && len(_u.mutation.ReporterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.reporter"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(report.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(report.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(report.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(report.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(report.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Photos(); ok {
		_spec.SetField(report.FieldPhotos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhotos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldPhotos, value)
		})
	}
	if _u.mutation.PhotosCleared() {
		_spec.ClearField(report.FieldPhotos, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpvoteCount(); ok {
		_spec.SetField(report.FieldUpvoteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpvoteCount(); ok {
		_spec.AddField(report.FieldUpvoteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(report.FieldUpdatedBy, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(report.FieldUpdatedBy, field.TypeUUID)
	}
	if _u.mutation.StatusChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.StatusChangesTable,
			Columns: []string{report.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusChangesIDs(); len(nodes) > 0 && !_u.mutation.StatusChangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.StatusChangesTable,
			Columns: []string{report.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.StatusChangesTable,
			Columns: []string{report.StatusChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UpvotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.UpvotesTable,
			Columns: []string{report.UpvotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upvote.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUpvotesIDs(); len(nodes) > 0 && !_u.mutation.UpvotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.UpvotesTable,
			Columns: []string{report.UpvotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upvote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UpvotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.UpvotesTable,
			Columns: []string{report.UpvotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upvote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
