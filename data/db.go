package data

import (
	"fmt"
	"sync"
	"time"

	"dialeradmin/config"
	"dialeradmin/log"

	_ "github.com/go-sql-driver/mysql" // mysql dialect
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"    // mysql dialect
	_ "github.com/jinzhu/gorm/dialects/postgres" // psql dialect
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // sqlite dialect
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
)

var (
	db *gorm.DB
	mu sync.Mutex
	l  = log.GetLogger()
)

// DSN - connection string for the configured driver
func DSN(cg *viper.Viper) (string, error) {

	var (
		dbHost = cg.GetString("database.host")
		dbPort = cg.GetString("database.port")
		dbName = cg.GetString("database.dbname")
		dbUser = cg.GetString("database.user")
		dbPass = cg.GetString("database.pass")
	)

	switch cg.GetString("database.driver") {
	case "mysql":
		return dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName +
			"?charset=utf8&parseTime=True&loc=Local&allowNativePasswords=true", nil
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbName, dbPass), nil
	case "sqlite3":
		return dbName, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cg.GetString("database.driver"))
	}
}

// Open - opens and pings a database connection
func Open(cg *viper.Viper) (*gorm.DB, error) {

	dsn, err := DSN(cg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(cg.GetString("database.driver"), dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to db: %w", err)
	}

	conn.DB().SetMaxOpenConns(10)
	conn.DB().SetMaxIdleConns(20)
	conn.DB().SetConnMaxLifetime(5 * time.Minute)

	// sqlite memory databases live per connection
	if cg.GetString("database.driver") == "sqlite3" {
		conn.DB().SetMaxOpenConns(1)
	}

	if cg.GetString("app.environment") != "production" {
		conn.LogMode(true)
	}

	if err = conn.DB().Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("cannot ping db: %w", err)
	}

	return conn, nil
}

// GetDB - shared connection, retried for a while on startup
func GetDB() *gorm.DB {

	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		return db
	}

	var err error

	for range make([]int, 10) {

		if db, err = Open(config.GetConfig()); err == nil {
			return db
		}

		l.Errorf("[DB] %v", err)

		time.Sleep(2 * time.Second)
	}

	return nil
}
