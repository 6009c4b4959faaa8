// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/openfinml/riskscore/db/ent/schema"
	"github.com/openfinml/riskscore/gen/ent/company"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/prediction"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescSymbol is the schema descriptor for symbol field.
	companyDescSymbol := companyFields[1].Descriptor()
	// company.SymbolValidator is a validator for the "symbol" field. It is called by the builders before save.
	company.SymbolValidator = companyDescSymbol.Validators[0].(func(string) error)
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[2].Descriptor()
	// company.DefaultName holds the default value on creation for the name field.
	company.DefaultName = companyDescName.Default.(string)
	// companyDescScopeTier is the schema descriptor for scope_tier field.
	companyDescScopeTier := companyFields[3].Descriptor()
	// company.ScopeTierValidator is a validator for the "scope_tier" field. It is called by the builders before save.
	company.ScopeTierValidator = func() func(string) error {
		validators := companyDescScopeTier.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(scope_tier string) error {
			for _, fn := range fns {
				if err := fn(scope_tier); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescScopeKey is the schema descriptor for scope_key field.
	companyDescScopeKey := companyFields[4].Descriptor()
	// company.ScopeKeyValidator is a validator for the "scope_key" field. It is called by the builders before save.
	company.ScopeKeyValidator = companyDescScopeKey.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[5].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	jobrowFields := schema.JobRow{}.Fields()
	_ = jobrowFields
	// jobrowDescID is the schema descriptor for id field.
	jobrowDescID := jobrowFields[0].Descriptor()
	// jobrow.DefaultID holds the default value on creation for the id field.
	jobrow.DefaultID = jobrowDescID.Default.(func() uuid.UUID)
	jobrowoutcomeFields := schema.JobRowOutcome{}.Fields()
	_ = jobrowoutcomeFields
	// jobrowoutcomeDescSymbol is the schema descriptor for symbol field.
	jobrowoutcomeDescSymbol := jobrowoutcomeFields[4].Descriptor()
	// jobrowoutcome.DefaultSymbol holds the default value on creation for the symbol field.
	jobrowoutcome.DefaultSymbol = jobrowoutcomeDescSymbol.Default.(string)
	// jobrowoutcomeDescMessage is the schema descriptor for message field.
	jobrowoutcomeDescMessage := jobrowoutcomeFields[5].Descriptor()
	// jobrowoutcome.DefaultMessage holds the default value on creation for the message field.
	jobrowoutcome.DefaultMessage = jobrowoutcomeDescMessage.Default.(string)
	// jobrowoutcomeDescID is the schema descriptor for id field.
	jobrowoutcomeDescID := jobrowoutcomeFields[0].Descriptor()
	// jobrowoutcome.DefaultID holds the default value on creation for the id field.
	jobrowoutcome.DefaultID = jobrowoutcomeDescID.Default.(func() uuid.UUID)
	predictionFields := schema.Prediction{}.Fields()
	_ = predictionFields
	// predictionDescPeriod is the schema descriptor for period field.
	predictionDescPeriod := predictionFields[2].Descriptor()
	// prediction.PeriodValidator is a validator for the "period" field. It is called by the builders before save.
	prediction.PeriodValidator = predictionDescPeriod.Validators[0].(func(string) error)
	// predictionDescScopeKey is the schema descriptor for scope_key field.
	predictionDescScopeKey := predictionFields[3].Descriptor()
	// prediction.ScopeKeyValidator is a validator for the "scope_key" field. It is called by the builders before save.
	prediction.ScopeKeyValidator = predictionDescScopeKey.Validators[0].(func(string) error)
	// predictionDescClassification is the schema descriptor for classification field.
	predictionDescClassification := predictionFields[6].Descriptor()
	// prediction.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	prediction.ClassificationValidator = predictionDescClassification.Validators[0].(func(string) error)
	// predictionDescCreatedAt is the schema descriptor for created_at field.
	predictionDescCreatedAt := predictionFields[8].Descriptor()
	// prediction.DefaultCreatedAt holds the default value on creation for the created_at field.
	prediction.DefaultCreatedAt = predictionDescCreatedAt.Default.(func() time.Time)
	// predictionDescUpdatedAt is the schema descriptor for updated_at field.
	predictionDescUpdatedAt := predictionFields[9].Descriptor()
	// prediction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prediction.DefaultUpdatedAt = predictionDescUpdatedAt.Default.(func() time.Time)
	// prediction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prediction.UpdateDefaultUpdatedAt = predictionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// predictionDescID is the schema descriptor for id field.
	predictionDescID := predictionFields[0].Descriptor()
	// prediction.DefaultID holds the default value on creation for the id field.
	prediction.DefaultID = predictionDescID.Default.(func() uuid.UUID)
	scorejobFields := schema.ScoreJob{}.Fields()
	_ = scorejobFields
	// scorejobDescKind is the schema descriptor for kind field.
	scorejobDescKind := scorejobFields[1].Descriptor()
	// scorejob.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	scorejob.KindValidator = func() func(string) error {
		validators := scorejobDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scorejobDescFileName is the schema descriptor for file_name field.
	scorejobDescFileName := scorejobFields[2].Descriptor()
	// scorejob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	scorejob.FileNameValidator = scorejobDescFileName.Validators[0].(func(string) error)
	// scorejobDescState is the schema descriptor for state field.
	scorejobDescState := scorejobFields[4].Descriptor()
	// scorejob.StateValidator is a validator for the "state" field. It is called by the builders before save.
	scorejob.StateValidator = scorejobDescState.Validators[0].(func(string) error)
	// scorejobDescProcessedRows is the schema descriptor for processed_rows field.
	scorejobDescProcessedRows := scorejobFields[6].Descriptor()
	// scorejob.DefaultProcessedRows holds the default value on creation for the processed_rows field.
	scorejob.DefaultProcessedRows = scorejobDescProcessedRows.Default.(int)
	// scorejobDescSuccessfulRows is the schema descriptor for successful_rows field.
	scorejobDescSuccessfulRows := scorejobFields[7].Descriptor()
	// scorejob.DefaultSuccessfulRows holds the default value on creation for the successful_rows field.
	scorejob.DefaultSuccessfulRows = scorejobDescSuccessfulRows.Default.(int)
	// scorejobDescFailedRows is the schema descriptor for failed_rows field.
	scorejobDescFailedRows := scorejobFields[8].Descriptor()
	// scorejob.DefaultFailedRows holds the default value on creation for the failed_rows field.
	scorejob.DefaultFailedRows = scorejobDescFailedRows.Default.(int)
	// scorejobDescCancelRequested is the schema descriptor for cancel_requested field.
	scorejobDescCancelRequested := scorejobFields[10].Descriptor()
	// scorejob.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	scorejob.DefaultCancelRequested = scorejobDescCancelRequested.Default.(bool)
	// scorejobDescOwnerRole is the schema descriptor for owner_role field.
	scorejobDescOwnerRole := scorejobFields[13].Descriptor()
	// scorejob.OwnerRoleValidator is a validator for the "owner_role" field. It is called by the builders before save.
	scorejob.OwnerRoleValidator = func() func(string) error {
		validators := scorejobDescOwnerRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(owner_role string) error {
			for _, fn := range fns {
				if err := fn(owner_role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scorejobDescSubmittedAt is the schema descriptor for submitted_at field.
	scorejobDescSubmittedAt := scorejobFields[14].Descriptor()
	// scorejob.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	scorejob.DefaultSubmittedAt = scorejobDescSubmittedAt.Default.(func() time.Time)
	// scorejobDescID is the schema descriptor for id field.
	scorejobDescID := scorejobFields[0].Descriptor()
	// scorejob.DefaultID holds the default value on creation for the id field.
	scorejob.DefaultID = scorejobDescID.Default.(func() uuid.UUID)
}
