// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"pothole", "garbage", "streetlight", "water", "traffic", "other"}, Default: "other"},
		{Name: "urgency", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "latitude", Type: field.TypeFloat64},
		{Name: "longitude", Type: field.TypeFloat64},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "photos", Type: field.TypeJSON, Nullable: true},
		{Name: "reporter_email", Type: field.TypeString, Size: 255},
		{Name: "reporter_name", Type: field.TypeString, Size: 100},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in-progress", "resolved", "rejected"}, Default: "pending"},
		{Name: "upvote_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_by", Type: field.TypeUUID, Nullable: true},
		{Name: "reported_by", Type: field.TypeUUID},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_users_reports",
				Columns:    []*schema.Column{ReportsColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_status",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[14]},
			},
			{
				Name:    "report_category",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[5]},
			},
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
			{
				Name:    "report_reported_by",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[17]},
			},
			{
				Name:    "report_latitude_longitude",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[8], ReportsColumns[9]},
			},
			{
				Name:    "report_upvote_count",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[15]},
			},
		},
	}
	// StatusChangesColumns holds the columns for the "status_changes" table.
	StatusChangesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in-progress", "resolved", "rejected"}},
		{Name: "changed_by", Type: field.TypeUUID},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "changed_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// StatusChangesTable holds the schema information for the "status_changes" table.
	StatusChangesTable = &schema.Table{
		Name:       "status_changes",
		Columns:    StatusChangesColumns,
		PrimaryKey: []*schema.Column{StatusChangesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "status_changes_reports_status_changes",
				Columns:    []*schema.Column{StatusChangesColumns[5]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "statuschange_report_id_changed_at",
				Unique:  false,
				Columns: []*schema.Column{StatusChangesColumns[5], StatusChangesColumns[4]},
			},
		},
	}
	// UpvotesColumns holds the columns for the "upvotes" table.
	UpvotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UpvotesTable holds the schema information for the "upvotes" table.
	UpvotesTable = &schema.Table{
		Name:       "upvotes",
		Columns:    UpvotesColumns,
		PrimaryKey: []*schema.Column{UpvotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "upvotes_reports_upvotes",
				Columns:    []*schema.Column{UpvotesColumns[2]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "upvotes_users_upvotes",
				Columns:    []*schema.Column{UpvotesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "upvote_report_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{UpvotesColumns[2], UpvotesColumns[3]},
			},
			{
				Name:    "upvote_user_id",
				Unique:  false,
				Columns: []*schema.Column{UpvotesColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "google_id", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "picture", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"citizen", "admin"}, Default: "citizen"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_login", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReportsTable,
		StatusChangesTable,
		UpvotesTable,
		UsersTable,
	}
)

func init() {
	ReportsTable.ForeignKeys[0].RefTable = UsersTable
	StatusChangesTable.ForeignKeys[0].RefTable = ReportsTable
	UpvotesTable.ForeignKeys[0].RefTable = ReportsTable
	UpvotesTable.ForeignKeys[1].RefTable = UsersTable
}
