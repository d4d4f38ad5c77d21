// cmd/creatorctl/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/creatorbasehq/creatorbase/internal/model"
	"github.com/creatorbasehq/creatorbase/internal/repository"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	dbConnString string
	verbose      bool
)

const version = "0.3.1"

// uniqueIndexes are the constraints gorm's tag syntax cannot express: the
// functional case-insensitive indexes and the single-owner partial index.
var uniqueIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_roles_org_lower_name ON roles (organization_id, lower(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_memberships_owner ON memberships (organization_id) WHERE is_owner`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "creatorctl",
	Short: "creatorctl manages the creatorbase database",
	Long:  `creatorctl runs schema migrations and seeds the permission catalog.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		db := openGorm()

		if err := db.AutoMigrate(
			&model.User{},
			&model.Organization{},
			&model.Role{},
			&model.Permission{},
			&model.RolePermission{},
			&model.Membership{},
			&model.ContentItem{},
			&model.Task{},
			&model.AuditLog{},
		); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		for _, stmt := range uniqueIndexes {
			if verbose {
				fmt.Println(stmt)
			}
			if err := db.Exec(stmt).Error; err != nil {
				log.Fatalf("Creating index failed: %v", err)
			}
		}

		fmt.Println("Migration complete")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed-permissions",
	Short: "Seed the permission catalog",
	Run: func(cmd *cobra.Command, args []string) {
		db := openGorm()

		repo := repository.NewPermissionRepository(db)
		if err := repo.Seed(context.Background(), model.PermissionCatalog); err != nil {
			log.Fatalf("Seeding permissions failed: %v", err)
		}

		fmt.Printf("Seeded %d permissions\n", len(model.PermissionCatalog))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("creatorctl %s\n", version)
	},
}

// openGorm verifies the connection string over database/sql first, then
// hands the connection to gorm.
func openGorm() *gorm.DB {
	if dbConnString == "" {
		log.Fatal("Database connection string is required (--db)")
	}

	sqlDB, err := sql.Open("postgres", dbConnString)
	if err != nil {
		log.Fatalf("Opening database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("Pinging database: %v", err)
	}
	sqlDB.Close()

	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{})
	if err != nil {
		log.Fatalf("Connecting with gorm: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
