// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Banner struct {
		ID, Status, Title, Description, Type, Position, LinkURL, ImagePath, Priority, StartDate, EndDate, CreatedBy, CreatedAt, UpdatedAt string
	}
	Faq struct {
		ID, Status, Question, Answer, Category, IsPopular, OrderNumber, ViewCount, CreatedBy, CreatedAt, UpdatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Notice struct {
		ID, Status, Title, Content, Category, IsImportant, ViewCount, StartDate, EndDate, CreatedBy, CreatedAt, UpdatedAt string
	}
	Setting struct {
		Key, Value, UpdatedAt string
	}
	Term struct {
		ID, Status, Title, Content, Category, Version, IsRequired, EffectiveDate, CreatedBy, CreatedAt, UpdatedAt string
	}
}{
	Banner: struct {
		ID, Status, Title, Description, Type, Position, LinkURL, ImagePath, Priority, StartDate, EndDate, CreatedBy, CreatedAt, UpdatedAt string
	}{
		ID:          "bannerId",
		Status:      "status",
		Title:       "title",
		Description: "description",
		Type:        "type",
		Position:    "position",
		LinkURL:     "linkUrl",
		ImagePath:   "imagePath",
		Priority:    "priority",
		StartDate:   "startDate",
		EndDate:     "endDate",
		CreatedBy:   "createdBy",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	Faq: struct {
		ID, Status, Question, Answer, Category, IsPopular, OrderNumber, ViewCount, CreatedBy, CreatedAt, UpdatedAt string
	}{
		ID:          "faqId",
		Status:      "status",
		Question:    "question",
		Answer:      "answer",
		Category:    "category",
		IsPopular:   "isPopular",
		OrderNumber: "orderNumber",
		ViewCount:   "viewCount",
		CreatedBy:   "createdBy",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Notice: struct {
		ID, Status, Title, Content, Category, IsImportant, ViewCount, StartDate, EndDate, CreatedBy, CreatedAt, UpdatedAt string
	}{
		ID:          "noticeId",
		Status:      "status",
		Title:       "title",
		Content:     "content",
		Category:    "category",
		IsImportant: "isImportant",
		ViewCount:   "viewCount",
		StartDate:   "startDate",
		EndDate:     "endDate",
		CreatedBy:   "createdBy",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
	},
	Setting: struct {
		Key, Value, UpdatedAt string
	}{
		Key:       "key",
		Value:     "value",
		UpdatedAt: "updatedAt",
	},
	Term: struct {
		ID, Status, Title, Content, Category, Version, IsRequired, EffectiveDate, CreatedBy, CreatedAt, UpdatedAt string
	}{
		ID:            "termId",
		Status:        "status",
		Title:         "title",
		Content:       "content",
		Category:      "category",
		Version:       "version",
		IsRequired:    "isRequired",
		EffectiveDate: "effectiveDate",
		CreatedBy:     "createdBy",
		CreatedAt:     "createdAt",
		UpdatedAt:     "updatedAt",
	},
}

var Tables = struct {
	Banner struct {
		Name, Alias string
	}
	Faq struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Notice struct {
		Name, Alias string
	}
	Setting struct {
		Name, Alias string
	}
	Term struct {
		Name, Alias string
	}
}{
	Banner: struct {
		Name, Alias string
	}{
		Name:  "banners",
		Alias: "t",
	},
	Faq: struct {
		Name, Alias string
	}{
		Name:  "faqs",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Notice: struct {
		Name, Alias string
	}{
		Name:  "notices",
		Alias: "t",
	},
	Setting: struct {
		Name, Alias string
	}{
		Name:  "settings",
		Alias: "t",
	},
	Term: struct {
		Name, Alias string
	}{
		Name:  "terms",
		Alias: "t",
	},
}

type Banner struct {
	tableName struct{} `pg:"banners,alias:t,discard_unknown_columns"`

	ID          string     `pg:"bannerId,pk"`
	Status      string     `pg:"status,use_zero"`
	Title       string     `pg:"title,use_zero"`
	Description string     `pg:"description,use_zero"`
	Type        string     `pg:"type,use_zero"`
	Position    string     `pg:"position,use_zero"`
	LinkURL     string     `pg:"linkUrl,use_zero"`
	ImagePath   string     `pg:"imagePath,use_zero"`
	Priority    int        `pg:"priority,use_zero"`
	StartDate   *time.Time `pg:"startDate"`
	EndDate     *time.Time `pg:"endDate"`
	CreatedBy   string     `pg:"createdBy,use_zero"`
	CreatedAt   time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time  `pg:"updatedAt,use_zero"`
}

type Faq struct {
	tableName struct{} `pg:"faqs,alias:t,discard_unknown_columns"`

	ID          string    `pg:"faqId,pk"`
	Status      string    `pg:"status,use_zero"`
	Question    string    `pg:"question,use_zero"`
	Answer      string    `pg:"answer,use_zero"`
	Category    string    `pg:"category,use_zero"`
	IsPopular   bool      `pg:"isPopular,use_zero"`
	OrderNumber int       `pg:"orderNumber,use_zero"`
	ViewCount   int       `pg:"viewCount,use_zero"`
	CreatedBy   string    `pg:"createdBy,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time `pg:"updatedAt,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type Notice struct {
	tableName struct{} `pg:"notices,alias:t,discard_unknown_columns"`

	ID          string     `pg:"noticeId,pk"`
	Status      string     `pg:"status,use_zero"`
	Title       string     `pg:"title,use_zero"`
	Content     string     `pg:"content,use_zero"`
	Category    string     `pg:"category,use_zero"`
	IsImportant bool       `pg:"isImportant,use_zero"`
	ViewCount   int        `pg:"viewCount,use_zero"`
	StartDate   *time.Time `pg:"startDate"`
	EndDate     *time.Time `pg:"endDate"`
	CreatedBy   string     `pg:"createdBy,use_zero"`
	CreatedAt   time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time  `pg:"updatedAt,use_zero"`
}

type Setting struct {
	tableName struct{} `pg:"settings,alias:t,discard_unknown_columns"`

	Key       string    `pg:"key,pk"`
	Value     string    `pg:"value,type:jsonb,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
}

type Term struct {
	tableName struct{} `pg:"terms,alias:t,discard_unknown_columns"`

	ID            string     `pg:"termId,pk"`
	Status        string     `pg:"status,use_zero"`
	Title         string     `pg:"title,use_zero"`
	Content       string     `pg:"content,use_zero"`
	Category      string     `pg:"category,use_zero"`
	Version       string     `pg:"version,use_zero"`
	IsRequired    bool       `pg:"isRequired,use_zero"`
	EffectiveDate *time.Time `pg:"effectiveDate"`
	CreatedBy     string     `pg:"createdBy,use_zero"`
	CreatedAt     time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt     time.Time  `pg:"updatedAt,use_zero"`
}
