// Command migrate applies or rolls back the SQL files in migrations/.
// It reads the same DB_* environment as the server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/Cheertaboi/shop-admin/internal/config"
)

func main() {
	if len(os.Args) < 2 || (os.Args[1] != "up" && os.Args[1] != "down") {
		log.Fatal("usage: migrate up|down [dir]")
	}
	cmd := os.Args[1]
	dir := "migrations"
	if len(os.Args) > 2 {
		dir = os.Args[2]
	}

	cfg := config.Load()
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	paths, err := migrationFiles(dir, cmd)
	if err != nil {
		log.Fatalf("read migrations: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("no %s migrations in %s", cmd, dir)
	}

	log.Printf("running migrations (%s)", cmd)
	for _, p := range paths {
		if err := runFile(ctx, conn, p); err != nil {
			log.Fatalf("migration %s: %v", p, err)
		}
	}
	log.Println("done")
}

// migrationFiles returns the *.up.sql files in name order, or the *.down.sql
// files in reverse order.
func migrationFiles(dir, cmd string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*."+cmd+".sql"))
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	if cmd == "down" {
		slices.Reverse(paths)
	}
	return paths, nil
}

func runFile(ctx context.Context, conn *pgx.Conn, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	log.Printf("-> %s", filepath.Base(path))
	if _, err := conn.Exec(ctx, string(data)); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}
