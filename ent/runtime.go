// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/ent/schema"
	"CivicConnectAPI/ent/statuschange"
	"CivicConnectAPI/ent/upvote"
	"CivicConnectAPI/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	reportMixin := schema.Report{}.Mixin()
	reportMixinFields0 := reportMixin[0].Fields()
	_ = reportMixinFields0
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportMixinFields0[0].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportMixinFields0[1].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescTitle is the schema descriptor for title field.
	reportDescTitle := reportFields[1].Descriptor()
	// report.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	report.TitleValidator = func() func(string) error {
		validators := reportDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescDescription is the schema descriptor for description field.
	reportDescDescription := reportFields[2].Descriptor()
	// report.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	report.DescriptionValidator = reportDescDescription.Validators[0].(func(string) error)
	// reportDescReporterEmail is the schema descriptor for reporter_email field.
	reportDescReporterEmail := reportFields[11].Descriptor()
	// report.ReporterEmailValidator is a validator for the "reporter_email" field. It is called by the builders before save.
	report.ReporterEmailValidator = reportDescReporterEmail.Validators[0].(func(string) error)
	// reportDescReporterName is the schema descriptor for reporter_name field.
	reportDescReporterName := reportFields[12].Descriptor()
	// report.ReporterNameValidator is a validator for the "reporter_name" field. It is called by the builders before save.
	report.ReporterNameValidator = reportDescReporterName.Validators[0].(func(string) error)
	// reportDescUpvoteCount is the schema descriptor for upvote_count field.
	reportDescUpvoteCount := reportFields[14].Descriptor()
	// report.DefaultUpvoteCount holds the default value on creation for the upvote_count field.
	report.DefaultUpvoteCount = reportDescUpvoteCount.Default.(int)
	// report.UpvoteCountValidator is a validator for the "upvote_count" field. It is called by the builders before save.
	report.UpvoteCountValidator = reportDescUpvoteCount.Validators[0].(func(int) error)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	statuschangeFields := schema.StatusChange{}.Fields()
	_ = statuschangeFields
	// statuschangeDescChangedAt is the schema descriptor for changed_at field.
	statuschangeDescChangedAt := statuschangeFields[5].Descriptor()
	// statuschange.DefaultChangedAt holds the default value on creation for the changed_at field.
	statuschange.DefaultChangedAt = statuschangeDescChangedAt.Default.(func() time.Time)
	// statuschangeDescID is the schema descriptor for id field.
	statuschangeDescID := statuschangeFields[0].Descriptor()
	// statuschange.DefaultID holds the default value on creation for the id field.
	statuschange.DefaultID = statuschangeDescID.Default.(func() uuid.UUID)
	upvoteFields := schema.Upvote{}.Fields()
	_ = upvoteFields
	// upvoteDescCreatedAt is the schema descriptor for created_at field.
	upvoteDescCreatedAt := upvoteFields[3].Descriptor()
	// upvote.DefaultCreatedAt holds the default value on creation for the created_at field.
	upvote.DefaultCreatedAt = upvoteDescCreatedAt.Default.(func() time.Time)
	// upvoteDescID is the schema descriptor for id field.
	upvoteDescID := upvoteFields[0].Descriptor()
	// upvote.DefaultID holds the default value on creation for the id field.
	upvote.DefaultID = upvoteDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescGoogleID is the schema descriptor for google_id field.
	userDescGoogleID := userFields[1].Descriptor()
	// user.GoogleIDValidator is a validator for the "google_id" field. It is called by the builders before save.
	user.GoogleIDValidator = userDescGoogleID.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescLastLogin is the schema descriptor for last_login field.
	userDescLastLogin := userFields[7].Descriptor()
	// user.DefaultLastLogin holds the default value on creation for the last_login field.
	user.DefaultLastLogin = userDescLastLogin.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
