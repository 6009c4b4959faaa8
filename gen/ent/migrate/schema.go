// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompanyColumns holds the columns for the "company" table.
	CompanyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "symbol", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "scope_tier", Type: field.TypeString},
		{Name: "scope_key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompanyTable holds the schema information for the "company" table.
	CompanyTable = &schema.Table{
		Name:       "company",
		Columns:    CompanyColumns,
		PrimaryKey: []*schema.Column{CompanyColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_symbol_scope_key",
				Unique:  true,
				Columns: []*schema.Column{CompanyColumns[1], CompanyColumns[4]},
			},
		},
	}
	// JobRowColumns holds the columns for the "job_row" table.
	JobRowColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "symbol", Type: field.TypeString},
		{Name: "period", Type: field.TypeString},
		{Name: "ratios", Type: field.TypeJSON},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobRowTable holds the schema information for the "job_row" table.
	JobRowTable = &schema.Table{
		Name:       "job_row",
		Columns:    JobRowColumns,
		PrimaryKey: []*schema.Column{JobRowColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_row_score_job_rows",
				Columns:    []*schema.Column{JobRowColumns[5]},
				RefColumns: []*schema.Column{ScoreJobColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobrow_job_id_row_index",
				Unique:  true,
				Columns: []*schema.Column{JobRowColumns[5], JobRowColumns[1]},
			},
		},
	}
	// JobRowOutcomeColumns holds the columns for the "job_row_outcome" table.
	JobRowOutcomeColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "ok", Type: field.TypeBool},
		{Name: "symbol", Type: field.TypeString, Default: ""},
		{Name: "message", Type: field.TypeString, Default: ""},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobRowOutcomeTable holds the schema information for the "job_row_outcome" table.
	JobRowOutcomeTable = &schema.Table{
		Name:       "job_row_outcome",
		Columns:    JobRowOutcomeColumns,
		PrimaryKey: []*schema.Column{JobRowOutcomeColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_row_outcome_score_job_outcomes",
				Columns:    []*schema.Column{JobRowOutcomeColumns[5]},
				RefColumns: []*schema.Column{ScoreJobColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobrowoutcome_job_id_row_index",
				Unique:  true,
				Columns: []*schema.Column{JobRowOutcomeColumns[5], JobRowOutcomeColumns[1]},
			},
			{
				Name:    "jobrowoutcome_job_id_ok",
				Unique:  false,
				Columns: []*schema.Column{JobRowOutcomeColumns[5], JobRowOutcomeColumns[2]},
			},
		},
	}
	// PredictionColumns holds the columns for the "prediction" table.
	PredictionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "period", Type: field.TypeString},
		{Name: "scope_key", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "probability", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "double precision"}},
		{Name: "classification", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "double precision"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// PredictionTable holds the schema information for the "prediction" table.
	PredictionTable = &schema.Table{
		Name:       "prediction",
		Columns:    PredictionColumns,
		PrimaryKey: []*schema.Column{PredictionColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prediction_company_predictions",
				Columns:    []*schema.Column{PredictionColumns[9]},
				RefColumns: []*schema.Column{CompanyColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prediction_company_id_period_scope_key",
				Unique:  true,
				Columns: []*schema.Column{PredictionColumns[9], PredictionColumns[1], PredictionColumns[2]},
			},
			{
				Name:    "prediction_job_id",
				Unique:  false,
				Columns: []*schema.Column{PredictionColumns[3]},
			},
		},
	}
	// ScoreJobColumns holds the columns for the "score_job" table.
	ScoreJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "lane", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString},
		{Name: "total_rows", Type: field.TypeInt},
		{Name: "processed_rows", Type: field.TypeInt, Default: 0},
		{Name: "successful_rows", Type: field.TypeInt, Default: 0},
		{Name: "failed_rows", Type: field.TypeInt, Default: 0},
		{Name: "fail_reason", Type: field.TypeString, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "owner_user_id", Type: field.TypeUUID},
		{Name: "owner_org_id", Type: field.TypeUUID, Nullable: true},
		{Name: "owner_role", Type: field.TypeString},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_progress_at", Type: field.TypeTime, Nullable: true},
	}
	// ScoreJobTable holds the schema information for the "score_job" table.
	ScoreJobTable = &schema.Table{
		Name:       "score_job",
		Columns:    ScoreJobColumns,
		PrimaryKey: []*schema.Column{ScoreJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scorejob_state_last_progress_at",
				Unique:  false,
				Columns: []*schema.Column{ScoreJobColumns[4], ScoreJobColumns[17]},
			},
			{
				Name:    "scorejob_owner_user_id_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{ScoreJobColumns[11], ScoreJobColumns[14]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompanyTable,
		JobRowTable,
		JobRowOutcomeTable,
		PredictionTable,
		ScoreJobTable,
	}
)

func init() {
	CompanyTable.Annotation = &entsql.Annotation{
		Table: "company",
	}
	JobRowTable.ForeignKeys[0].RefTable = ScoreJobTable
	JobRowTable.Annotation = &entsql.Annotation{
		Table: "job_row",
	}
	JobRowOutcomeTable.ForeignKeys[0].RefTable = ScoreJobTable
	JobRowOutcomeTable.Annotation = &entsql.Annotation{
		Table: "job_row_outcome",
	}
	PredictionTable.ForeignKeys[0].RefTable = CompanyTable
	PredictionTable.Annotation = &entsql.Annotation{
		Table: "prediction",
	}
	ScoreJobTable.Annotation = &entsql.Annotation{
		Table: "score_job",
	}
}
