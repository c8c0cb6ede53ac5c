// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/ent/statuschange"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// StatusChange is the model entity for the StatusChange schema.
type StatusChange struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID uuid.UUID `json:"report_id,omitempty"`
	// Status holds the value of the "status" field.
	Status statuschange.Status `json:"status,omitempty"`
	// ChangedBy holds the value of the "changed_by" field.
	ChangedBy uuid.UUID `json:"changed_by,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// ChangedAt holds the value of the "changed_at" field.
	ChangedAt time.Time `json:"changed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StatusChangeQuery when eager-loading is set.
	Edges        StatusChangeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StatusChangeEdges holds the relations/edges for other nodes in the graph.
type StatusChangeEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StatusChangeEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StatusChange) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case statuschange.FieldStatus, statuschange.FieldNotes:
			values[i] = new(sql.NullString)
		case statuschange.FieldChangedAt:
			values[i] = new(sql.NullTime)
		case statuschange.FieldID, statuschange.FieldReportID, statuschange.FieldChangedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StatusChange fields.
func (_m *StatusChange) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case statuschange.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case statuschange.FieldReportID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value != nil {
				_m.ReportID = *value
			}
		case statuschange.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = statuschange.Status(value.String)
			}
		case statuschange.FieldChangedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field changed_by", values[i])
			} else if value != nil {
				_m.ChangedBy = *value
			}
		case statuschange.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case statuschange.FieldChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field changed_at", values[i])
			} else if value.Valid {
				_m.ChangedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StatusChange.
// This includes values selected through modifiers, order, etc.
func (_m *StatusChange) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the StatusChange entity.
func (_m *StatusChange) QueryReport() *ReportQuery {
	return NewStatusChangeClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this StatusChange.
// Note that you need to call StatusChange.Unwrap() before calling this method if this StatusChange
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StatusChange) Update() *StatusChangeUpdateOne {
	return NewStatusChangeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StatusChange entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StatusChange) Unwrap() *StatusChange {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StatusChange is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StatusChange) String() string {
	var builder strings.Builder
	builder.WriteString("StatusChange(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("changed_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangedBy))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("changed_at=")
	builder.WriteString(_m.ChangedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StatusChanges is a parsable slice of StatusChange.
type StatusChanges []*StatusChange
