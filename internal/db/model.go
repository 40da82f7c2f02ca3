// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	AdminSecret struct {
		ID, Passcode string
	}
	Category struct {
		ID, Name, SortOrder string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Question struct {
		ID, Question, Answer, CategoryID, CreatedAt, UpdatedAt string
	}
}{
	AdminSecret: struct {
		ID, Passcode string
	}{
		ID:       "id",
		Passcode: "passcode",
	},
	Category: struct {
		ID, Name, SortOrder string
	}{
		ID:        "id",
		Name:      "name",
		SortOrder: "sort_order",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Question: struct {
		ID, Question, Answer, CategoryID, CreatedAt, UpdatedAt string
	}{
		ID:         "id",
		Question:   "question",
		Answer:     "answer",
		CategoryID: "category_id",
		CreatedAt:  "created_at",
		UpdatedAt:  "updated_at",
	},
}

var Tables = struct {
	AdminSecret struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Question struct {
		Name, Alias string
	}
}{
	AdminSecret: struct {
		Name, Alias string
	}{
		Name:  "admin_secrets",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "question_categories",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Question: struct {
		Name, Alias string
	}{
		Name:  "questions",
		Alias: "t",
	},
}

type AdminSecret struct {
	tableName struct{} `pg:"admin_secrets,alias:t,discard_unknown_columns"`

	ID       string `pg:"id,pk"`
	Passcode string `pg:"passcode,use_zero"`
}

type Category struct {
	tableName struct{} `pg:"question_categories,alias:t,discard_unknown_columns"`

	ID        string `pg:"id,pk"`
	Name      string `pg:"name,use_zero"`
	SortOrder int    `pg:"sort_order,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Question struct {
	tableName struct{} `pg:"questions,alias:t,discard_unknown_columns"`

	ID         string     `pg:"id,pk"`
	Question   string     `pg:"question,use_zero"`
	Answer     string     `pg:"answer,use_zero"`
	CategoryID string     `pg:"category_id,use_zero"`
	CreatedAt  *time.Time `pg:"created_at"`
	UpdatedAt  *time.Time `pg:"updated_at"`
}
