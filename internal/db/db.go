package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lic-events/vbs-api/internal/config"
	"github.com/lic-events/vbs-api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=disable",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DB)

	return OpenPostgresWithURL(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(gormDB); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return gormDB, nil
}
