// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/ent/statuschange"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// StatusChangeCreate is the builder for creating a StatusChange entity.
type StatusChangeCreate struct {
	config
	mutation *StatusChangeMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *StatusChangeCreate) SetReportID(v uuid.UUID) *StatusChangeCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StatusChangeCreate) SetStatus(v statuschange.Status) *StatusChangeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetChangedBy sets the "changed_by" field.
func (_c *StatusChangeCreate) SetChangedBy(v uuid.UUID) *StatusChangeCreate {
	_c.mutation.SetChangedBy(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *StatusChangeCreate) SetNotes(v string) *StatusChangeCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *StatusChangeCreate) SetNillableNotes(v *string) *StatusChangeCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetChangedAt sets the "changed_at" field.
func (_c *StatusChangeCreate) SetChangedAt(v time.Time) *StatusChangeCreate {
	_c.mutation.SetChangedAt(v)
	return _c
}

// SetNillableChangedAt sets the "changed_at" field if the given value is not nil.
func (_c *StatusChangeCreate) SetNillableChangedAt(v *time.Time) *StatusChangeCreate {
	if v != nil {
		_c.SetChangedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StatusChangeCreate) SetID(v uuid.UUID) *StatusChangeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StatusChangeCreate) SetNillableID(v *uuid.UUID) *StatusChangeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *StatusChangeCreate) SetReport(v *Report) *StatusChangeCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the StatusChangeMutation object of the builder.
func (_c *StatusChangeCreate) Mutation() *StatusChangeMutation {
	return _c.mutation
}

// Save creates the StatusChange in the database.
func (_c *StatusChangeCreate) Save(ctx context.Context) (*StatusChange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatusChangeCreate) SaveX(ctx context.Context) *StatusChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusChangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusChangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatusChangeCreate) defaults() {
	if _, ok := _c.mutation.ChangedAt(); !ok {
		v := statuschange.DefaultChangedAt()
		_c.mutation.SetChangedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := statuschange.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatusChangeCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "StatusChange.report_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StatusChange.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := statuschange.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StatusChange.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChangedBy(); !ok {
		return &ValidationError{Name: "changed_by", err: errors.New(`ent: missing required field "StatusChange.changed_by"`)}
	}
	if _, ok := _c.mutation.ChangedAt(); !ok {
		return &ValidationError{Name: "changed_at", err: errors.New(`ent: missing required field "StatusChange.changed_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "StatusChange.report"`)}
	}
	return nil
}

func (_c *StatusChangeCreate) sqlSave(ctx context.Context) (*StatusChange, error) {
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

func (_c *StatusChangeCreate) createSpec() (*StatusChange, *sqlgraph.CreateSpec) {
	var (
		_node = &StatusChange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statuschange.Table, sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(statuschange.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ChangedBy(); ok {
		_spec.SetField(statuschange.FieldChangedBy, field.TypeUUID, value)
		_node.ChangedBy = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(statuschange.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.ChangedAt(); ok {
		_spec.SetField(statuschange.FieldChangedAt, field.TypeTime, value)
		_node.ChangedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   statuschange.ReportTable,
			Columns: []string{statuschange.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StatusChangeCreateBulk is the builder for creating many StatusChange entities in bulk.
type StatusChangeCreateBulk struct {
	config
	err      error
	builders []*StatusChangeCreate
}

// Save creates the StatusChange entities in the database.
func (_c *StatusChangeCreateBulk) Save(ctx context.Context) ([]*StatusChange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StatusChange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatusChangeMutation)
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
func (_c *StatusChangeCreateBulk) SaveX(ctx context.Context) []*StatusChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusChangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusChangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
