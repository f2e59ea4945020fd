// Command view_candidates dumps the candidate store to stdout for debugging.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/jonathan/resume-screener/internal/db"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer database.Close()

	candidates, err := database.ListCandidates(ctx)
	if err != nil {
		log.Fatalf("failed to list candidates: %v", err)
	}

	fmt.Println("=== CANDIDATES ===")
	for i := range candidates {
		c, err := database.GetCandidate(ctx, candidates[i].ID)
		if err != nil {
			log.Fatalf("failed to load candidate %s: %v", candidates[i].ID, err)
		}
		if c == nil {
			continue
		}

		fmt.Printf("\nID: %s, Name: %s, Email: %s\n", c.ID, c.Name, c.Email)
		fmt.Printf("Phone: %s, Location: %s\n", c.Phone, c.Location)

		names := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			names = append(names, s.Name)
		}
		fmt.Printf("Skills: %v\n", names)

		fmt.Println("Education:")
		for _, e := range c.Education {
			fmt.Printf("  - %s at %s (%s)\n", e.Degree, e.Institution, e.Year)
		}
		fmt.Println("Experience:")
		for _, e := range c.Experiences {
			fmt.Printf("  - %s @ %s (%s)\n", e.JobTitle, e.Company, e.Duration)
		}
		fmt.Println("Projects:")
		for _, p := range c.Projects {
			fmt.Printf("  - %s | Tech: %s\n", p.Title, p.Technologies)
		}
		fmt.Println("---")
	}

	fmt.Printf("\nTotal Candidates: %d\n", len(candidates))
}
