package quill

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

type Migration interface {
	Down() error
	Up() error
}

type MigrationLogs struct {
	CreatedAt     time.Time `db:"created_at"`
	Direction     string    `db:"direction" size:"10"`
	Id            int64     `db:"id" primary:"true"`
	MigrationType string    `db:"migration_type" size:"255"`
}

func MigrateDown(migrations []Migration) ([]string, error) {
	defer PurgeModels()
	logs, latestIndex, err := migrateSetup(migrations)
	if err != nil {
		return logs, err
	}

	for i := latestIndex; i > -1; i-- {
		PurgeModels()
		migrationType := reflect.TypeOf(migrations[i]).String()
		logs = append(logs, "Migrating down to "+migrationType+"...")
		if err := migrations[i].Down(); err != nil {
			return logs, errors.Join(fmt.Errorf("quill: migration %s: failed", migrationType), err)
		}
		err := Query[MigrationLogs]().Insert(&MigrationLogs{
			CreatedAt:     time.Now(),
			Direction:     "down",
			MigrationType: migrationType,
		}).Error
		if err != nil {
			return logs, errors.Join(fmt.Errorf("quill: migration %s: failed to insert migration logs", migrationType), err)
		}
	}

	return logs, nil
}

func migrateSetup(migrations []Migration) ([]string, int, error) {
	logs := make([]string, 0)

	err := Query[MigrationLogs]().TableCreate(TableCreateConfig{IfNotExists: true}).Error
	if err != nil {
		// Dialects without CREATE TABLE IF NOT EXISTS reject the flag before
		// reaching the database. Retry with a plain create and let an
		// existing table pass.
		Query[MigrationLogs]().TableCreate()
	}

	latest, err := Query[MigrationLogs]().Sort("-id").CollectFirst()
	latestIndex := -1
	if err != nil {
		if _, notFound := err.(ErrorNotFound); !notFound {
			return nil, -1, errors.Join(errors.New("quill: migrations setup: failed to get migrations list:"), err)
		}
	} else {
		for i, migration := range migrations {
			if latest.MigrationType == reflect.TypeOf(migration).String() {
				if latest.Direction == "down" {
					latestIndex = i - 1
				} else {
					latestIndex = i
				}
				break
			}
		}
	}

	return logs, latestIndex, nil
}

func MigrateUp(migrations []Migration) ([]string, error) {
	defer PurgeModels()
	logs, latestIndex, err := migrateSetup(migrations)
	if err != nil {
		return logs, err
	}

	for i := latestIndex + 1; i < len(migrations); i++ {
		PurgeModels()
		migrationType := reflect.TypeOf(migrations[i]).String()
		logs = append(logs, "Migrating up to "+migrationType+"...")
		if err := migrations[i].Up(); err != nil {
			return logs, errors.Join(fmt.Errorf("quill: migration %s: failed", migrationType), err)
		}
		err := Query[MigrationLogs]().Insert(&MigrationLogs{
			CreatedAt:     time.Now(),
			Direction:     "up",
			MigrationType: migrationType,
		}).Error
		if err != nil {
			return logs, errors.Join(fmt.Errorf("quill: migration %s: failed to insert migration logs", migrationType), err)
		}
	}

	return logs, nil
}
