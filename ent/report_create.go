// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/ent/statuschange"
	"CivicConnectAPI/ent/upvote"
	"CivicConnectAPI/ent/user"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportCreate) SetUpdatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpdatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ReportCreate) SetTitle(v string) *ReportCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ReportCreate) SetDescription(v string) *ReportCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ReportCreate) SetCategory(v report.Category) *ReportCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCategory(v *report.Category) *ReportCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *ReportCreate) SetUrgency(v report.Urgency) *ReportCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUrgency(v *report.Urgency) *ReportCreate {
	if v != nil {
		_c.SetUrgency(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ReportCreate) SetPriority(v report.Priority) *ReportCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ReportCreate) SetNillablePriority(v *report.Priority) *ReportCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *ReportCreate) SetLatitude(v float64) *ReportCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *ReportCreate) SetLongitude(v float64) *ReportCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *ReportCreate) SetAddress(v string) *ReportCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ReportCreate) SetNillableAddress(v *string) *ReportCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetPhotos sets the "photos" field.
func (_c *ReportCreate) SetPhotos(v []string) *ReportCreate {
	_c.mutation.SetPhotos(v)
	return _c
}

// SetReportedBy sets the "reported_by" field.
func (_c *ReportCreate) SetReportedBy(v uuid.UUID) *ReportCreate {
	_c.mutation.SetReportedBy(v)
	return _c
}

// SetReporterEmail sets the "reporter_email" field.
func (_c *ReportCreate) SetReporterEmail(v string) *ReportCreate {
	_c.mutation.SetReporterEmail(v)
	return _c
}

// SetReporterName sets the "reporter_name" field.
func (_c *ReportCreate) SetReporterName(v string) *ReportCreate {
	_c.mutation.SetReporterName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReportCreate) SetStatus(v report.Status) *ReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReportCreate) SetNillableStatus(v *report.Status) *ReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUpvoteCount sets the "upvote_count" field.
func (_c *ReportCreate) SetUpvoteCount(v int) *ReportCreate {
	_c.mutation.SetUpvoteCount(v)
	return _c
}

// SetNillableUpvoteCount sets the "upvote_count" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpvoteCount(v *int) *ReportCreate {
	if v != nil {
		_c.SetUpvoteCount(*v)
	}
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *ReportCreate) SetUpdatedBy(v uuid.UUID) *ReportCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpdatedBy(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportCreate) SetID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReporterID sets the "reporter" edge to the User entity by ID.
func (_c *ReportCreate) SetReporterID(id uuid.UUID) *ReportCreate {
	_c.mutation.SetReporterID(id)
	return _c
}

// SetReporter sets the "reporter" edge to the User entity.
func (_c *ReportCreate) SetReporter(v *User) *ReportCreate {
	return _c.SetReporterID(v.ID)
}

// AddStatusChangeIDs adds the "status_changes" edge to the StatusChange entity by IDs.
func (_c *ReportCreate) AddStatusChangeIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddStatusChangeIDs(ids...)
	return _c
}

// AddStatusChanges adds the "status_changes" edges to the StatusChange entity.
func (_c *ReportCreate) AddStatusChanges(v ...*StatusChange) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusChangeIDs(ids...)
}

// AddUpvoteIDs adds the "upvotes" edge to the Upvote entity by IDs.
func (_c *ReportCreate) AddUpvoteIDs(ids ...uuid.UUID) *ReportCreate {
	_c.mutation.AddUpvoteIDs(ids...)
	return _c
}

// AddUpvotes adds the "upvotes" edges to the Upvote entity.
func (_c *ReportCreate) AddUpvotes(v ...*Upvote) *ReportCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUpvoteIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := report.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := report.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		v := report.DefaultUrgency
		_c.mutation.SetUrgency(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := report.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := report.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UpvoteCount(); !ok {
		v := report.DefaultUpvoteCount
		_c.mutation.SetUpvoteCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := report.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Report.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Report.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Report.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := report.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Report.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Report.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := report.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Report.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`ent: missing required field "Report.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := report.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "Report.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Report.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Latitude(); !ok {
		return &ValidationError{Name: "latitude", err: errors.New(`ent: missing required field "Report.latitude"`)}
	}
	if _, ok := _c.mutation.Longitude(); !ok {
		return &ValidationError{Name: "longitude", err: errors.New(`ent: missing required field "Report.longitude"`)}
	}
	if _, ok := _c.mutation.ReportedBy(); !ok {
		return &ValidationError{Name: "reported_by", err: errors.New(`ent: missing required field "Report.reported_by"`)}
	}
	if _, ok := _c.mutation.ReporterEmail(); !ok {
		return &ValidationError{Name: "reporter_email", err: errors.New(`ent: missing required field "Report.reporter_email"`)}
	}
	if v, ok := _c.mutation.ReporterEmail(); ok {
		if err := report.ReporterEmailValidator(v); err != nil {
			return &ValidationError{Name: "reporter_email", err: fmt.Errorf(`ent: validator failed for field "Report.reporter_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReporterName(); !ok {
		return &ValidationError{Name: "reporter_name", err: errors.New(`ent: missing required field "Report.reporter_name"`)}
	}
	if v, ok := _c.mutation.ReporterName(); ok {
		if err := report.ReporterNameValidator(v); err != nil {
			return &ValidationError{Name: "reporter_name", err: fmt.Errorf(`ent: validator failed for field "Report.reporter_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Report.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpvoteCount(); !ok {
		return &ValidationError{Name: "upvote_count", err: errors.New(`ent: missing required field "Report.upvote_count"`)}
	}
	if v, ok := _c.mutation.UpvoteCount(); ok {
		if err := report.UpvoteCountValidator(v); err != nil {
			return &ValidationError{Name: "upvote_count", err: fmt.Errorf(`ent: validator failed for field "Report.upvote_count": %w`, err)}
		}
	}
	if len(_c.mutation.ReporterIDs()) == 0 {
		return &ValidationError{Name: "reporter", err: errors.New(`ent: missing required edge "Report.reporter"`)}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(report.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(report.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(report.FieldUrgency, field.TypeEnum, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(report.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(report.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(report.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.Photos(); ok {
		_spec.SetField(report.FieldPhotos, field.TypeJSON, value)
		_node.Photos = value
	}
	if value, ok := _c.mutation.ReporterEmail(); ok {
		_spec.SetField(report.FieldReporterEmail, field.TypeString, value)
		_node.ReporterEmail = value
	}
	if value, ok := _c.mutation.ReporterName(); ok {
		_spec.SetField(report.FieldReporterName, field.TypeString, value)
		_node.ReporterName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UpvoteCount(); ok {
		_spec.SetField(report.FieldUpvoteCount, field.TypeInt, value)
		_node.UpvoteCount = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(report.FieldUpdatedBy, field.TypeUUID, value)
		_node.UpdatedBy = &value
	}
	if nodes := _c.mutation.ReporterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.ReporterTable,
			Columns: []string{report.ReporterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportedBy = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatusChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UpvotesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
