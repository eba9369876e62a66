// Command admin is the operator CLI for report triage. It talks straight
// to the Postgres report store; it has no access to live broker state.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"thecorner/backend/internal/report"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		fmt.Println("DATABASE_DSN must be set")
		os.Exit(1)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	store, err := report.NewStoreSink(db)
	if err != nil {
		log.Fatalf("failed to prepare report store: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list [limit] | show <report_id> | purge <days>")
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	switch command {
	case "list":
		limit := 50
		if len(os.Args) > 2 {
			limit, err = strconv.Atoi(os.Args[2])
			if err != nil || limit <= 0 {
				fmt.Println("Invalid limit. Please provide a positive integer.")
				os.Exit(1)
			}
		}
		if err := listReports(ctx, store, limit); err != nil {
			log.Fatalf("Error listing reports: %v", err)
		}
	case "show":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin show <report_id>")
			os.Exit(1)
		}
		if err := showReport(ctx, store, os.Args[2]); err != nil {
			log.Fatalf("Error showing report: %v", err)
		}
	case "purge":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin purge <days>")
			os.Exit(1)
		}
		days, err := strconv.Atoi(os.Args[2])
		if err != nil || days <= 0 {
			fmt.Println("Invalid day count. Please provide a positive integer.")
			os.Exit(1)
		}
		n, err := store.Purge(ctx, time.Duration(days)*24*time.Hour)
		if err != nil {
			log.Fatalf("Error purging reports: %v", err)
		}
		fmt.Printf("Purged %d reports older than %d days.\n", n, days)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func listReports(ctx context.Context, store *report.StoreSink, limit int) error {
	reports, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Reporter", "Partner", "Room", "Reason", "At"})
	for _, rep := range reports {
		table.Append([]string{
			rep.ID,
			rep.ReporterID,
			rep.PartnerID,
			rep.RoomID,
			clip(rep.Reason, 40),
			rep.Timestamp.Format(time.RFC3339),
		})
	}
	table.Render()
	fmt.Printf("%d reports.\n", len(reports))
	return nil
}

func showReport(ctx context.Context, store *report.StoreSink, id string) error {
	rep, err := store.Get(ctx, id)
	if err != nil {
		return err
	}
	if rep == nil {
		fmt.Printf("Report %s not found.\n", id)
		return nil
	}
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func clip(v string, n int) string {
	r := []rune(v)
	if len(r) <= n {
		return v
	}
	return string(r[:n-1]) + "…"
}
