package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/afitoip/portfolio-api/internal/models"
)

// Postgres-only DDL that AutoMigrate cannot express: the skill category
// enum, a proficiency range check, and triggers refreshing updated_at.
// Every statement is guarded by an existence check so the block is safe
// to run on every start and from concurrent instances.
const postgresEnumSQL = `
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'skill_category') THEN
    CREATE TYPE skill_category AS ENUM ('hard', 'soft');
  END IF;
END $$;
`

const postgresConstraintsAndTriggersSQL = `
DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM pg_constraint WHERE conname = 'skills_proficiency_range'
  ) THEN
    ALTER TABLE skills ADD CONSTRAINT skills_proficiency_range
      CHECK (proficiency IS NULL OR (proficiency >= 0 AND proficiency <= 100));
  END IF;
END $$;

CREATE OR REPLACE FUNCTION update_updated_at_column()
RETURNS TRIGGER AS $$
BEGIN
  NEW.updated_at = NOW();
  RETURN NEW;
END;
$$ LANGUAGE plpgsql;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'update_profiles_updated_at') THEN
    CREATE TRIGGER update_profiles_updated_at
      BEFORE UPDATE ON profiles
      FOR EACH ROW
      EXECUTE FUNCTION update_updated_at_column();
  END IF;
END $$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'update_education_updated_at') THEN
    CREATE TRIGGER update_education_updated_at
      BEFORE UPDATE ON education
      FOR EACH ROW
      EXECUTE FUNCTION update_updated_at_column();
  END IF;
END $$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'update_skills_updated_at') THEN
    CREATE TRIGGER update_skills_updated_at
      BEFORE UPDATE ON skills
      FOR EACH ROW
      EXECUTE FUNCTION update_updated_at_column();
  END IF;
END $$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'update_projects_updated_at') THEN
    CREATE TRIGGER update_projects_updated_at
      BEFORE UPDATE ON projects
      FOR EACH ROW
      EXECUTE FUNCTION update_updated_at_column();
  END IF;
END $$;
`

// Bootstrap ensures the schema exists and plants the one-time convenience
// seeds. It runs on every process start; every step is idempotent and the
// seeds are single insert-if-empty statements, so concurrent instances
// cannot duplicate data. A failure here is fatal for the caller: the
// server must not accept traffic without a usable schema.
func Bootstrap(db *gorm.DB) error {
	isPostgres := db.Dialector.Name() == "postgres"

	if isPostgres {
		if err := db.Exec(postgresEnumSQL).Error; err != nil {
			return fmt.Errorf("create enum type: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Education{},
		&models.Skill{},
		&models.Project{},
		&models.ContactMessage{},
	); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	if isPostgres {
		if err := db.Exec(postgresConstraintsAndTriggersSQL).Error; err != nil {
			return fmt.Errorf("create constraints and triggers: %w", err)
		}
	}

	if err := seedDefaults(db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	return nil
}

// seedDefaults inserts one Education and one Skill row, each only when
// its table is completely empty. The WHERE NOT EXISTS guard keeps the
// insert atomic under concurrent bootstrapping.
func seedDefaults(db *gorm.DB) error {
	now := time.Now()

	err := db.Exec(
		`INSERT INTO education (id, institution, degree, field_of_study, start_year, end_year, description, achievements, order_index, created_at, updated_at)
		 SELECT ?, 'Universitas Negeri Malang', 'S1', 'Informatika', 2021, NULL, 'Currently pursuing Bachelor degree in Informatics', NULL, 1, ?, ?
		 WHERE NOT EXISTS (SELECT 1 FROM education)`,
		uuid.New(), now, now,
	).Error
	if err != nil {
		return fmt.Errorf("seed education: %w", err)
	}

	err = db.Exec(
		`INSERT INTO skills (id, name, category, icon_name, proficiency, order_index, created_at, updated_at)
		 SELECT ?, 'Front-End Development', 'hard', 'Code', 90, 1, ?, ?
		 WHERE NOT EXISTS (SELECT 1 FROM skills)`,
		uuid.New(), now, now,
	).Error
	if err != nil {
		return fmt.Errorf("seed skill: %w", err)
	}

	return nil
}
