package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/types"
	"github.com/assurcompare/comparator-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Loading environment variables...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "comparator", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.ComparatorType{},
		&types.ComparatorItem{},
		&types.ComparatorField{},
		&types.ComparatorValue{},
		&types.FieldLongDescription{},
		&types.ComparisonPage{},
		&types.ComparisonPageMeta{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table, name, ddl string
	}{
		{"comparator_item", "fk_comparator_item_type_id",
			`FOREIGN KEY ("type_id") REFERENCES "comparator_type"("id") ON DELETE CASCADE`},
		{"comparator_field", "fk_comparator_field_type_id",
			`FOREIGN KEY ("type_id") REFERENCES "comparator_type"("id") ON DELETE CASCADE`},
		{"comparator_field", "fk_comparator_field_parent_category_id",
			`FOREIGN KEY ("parent_category_id") REFERENCES "comparator_field"("id") ON DELETE CASCADE`},
		{"comparator_value", "fk_comparator_value_item_id",
			`FOREIGN KEY ("item_id") REFERENCES "comparator_item"("id") ON DELETE CASCADE`},
		{"comparator_value", "fk_comparator_value_field_id",
			`FOREIGN KEY ("field_id") REFERENCES "comparator_field"("id") ON DELETE CASCADE`},
		{"comparator_field_description", "fk_comparator_field_description_item_id",
			`FOREIGN KEY ("item_id") REFERENCES "comparator_item"("id") ON DELETE CASCADE`},
		{"comparator_field_description", "fk_comparator_field_description_field_id",
			`FOREIGN KEY ("field_id") REFERENCES "comparator_field"("id") ON DELETE CASCADE`},
		{"comparison_page_meta", "fk_comparison_page_meta_page_id",
			`FOREIGN KEY ("page_id") REFERENCES "comparison_page"("id") ON DELETE CASCADE`},
	}
	for _, c := range constraints {
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, c.table, c.name)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", c.name, err)
		}
		add := fmt.Sprintf(`ALTER TABLE %q ADD CONSTRAINT %q %s`, c.table, c.name, c.ddl)
		if err := s.db.Exec(add).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
