package battles

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pokebattle/battle-api/internal/errors"
)

// battleRow is the battles table
type battleRow struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Pokemon1  string    `gorm:"size:128"`
	Pokemon2  string    `gorm:"size:128"`
	Winner    string    `gorm:"size:128"`
	Outcome   string    `gorm:"size:32"`
	BattleLog string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

func (battleRow) TableName() string {
	return "battles"
}

type sqlRepository struct {
	db *gorm.DB
}

// OpenSQLite opens the sqlite database at dsn and migrates the battles table
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", dsn)
	}

	if err := db.AutoMigrate(&battleRow{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate battles table")
	}

	return db, nil
}

// NewSQLRepository creates a gorm-backed battle repository. The schema must
// already be migrated, see OpenSQLite.
func NewSQLRepository(db *gorm.DB) Repository {
	return &sqlRepository{db: db}
}

func (r *sqlRepository) Record(ctx context.Context, input *RecordInput) (*RecordOutput, error) {
	if err := validateRecord(input); err != nil {
		return nil, err
	}

	logData, err := json.Marshal(input.Record.BattleLog)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle log")
	}

	row := &battleRow{
		ID:        input.Record.ID,
		Pokemon1:  input.Record.Pokemon1,
		Pokemon2:  input.Record.Pokemon2,
		Winner:    input.Record.Winner,
		Outcome:   input.Record.Outcome,
		BattleLog: string(logData),
		CreatedAt: input.Record.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to record battle")
	}

	return &RecordOutput{Record: cloneRecord(input.Record)}, nil
}

func (r *sqlRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	var rows []battleRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(listLimit(input)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battles")
	}

	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		var battleLog []string
		if err := json.Unmarshal([]byte(row.BattleLog), &battleLog); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal battle log %s", row.ID)
		}

		records = append(records, &Record{
			ID:        row.ID,
			Pokemon1:  row.Pokemon1,
			Pokemon2:  row.Pokemon2,
			Winner:    row.Winner,
			Outcome:   row.Outcome,
			BattleLog: battleLog,
			CreatedAt: row.CreatedAt,
		})
	}

	return &ListOutput{Records: records}, nil
}
