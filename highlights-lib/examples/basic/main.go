// ABOUTME: Basic example showing fixture refresh and a spoiler-free highlight lookup
// ABOUTME: Demonstrates minimal configuration of the highlights library

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	highlightslib "highlights-app-api/highlights-lib"
)

func main() {
	client, err := highlightslib.NewClient(
		highlightslib.WithSQLitePath("example-fixtures.db"),
		highlightslib.WithSearchWindowPolicy("strict"),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := client.Refresh(ctx)
	if err != nil {
		log.Fatalf("Refresh failed: %v", err)
	}
	fmt.Printf("Stored %d fixtures\n", count)

	latest, err := client.Latest(ctx)
	if err != nil {
		log.Fatalf("Latest failed: %v", err)
	}
	if latest == nil {
		fmt.Println("No fixture has been played yet")
		return
	}

	fmt.Printf("Latest: %s (%s)\n", latest.Fixture.Title, latest.Fixture.Date.Format(time.RFC1123))
	if latest.Video == nil {
		fmt.Println("No highlight in the trusted feed yet, trying search")
		videos, err := client.Search(ctx, latest.Fixture.ID, "")
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}
		for _, v := range videos {
			fmt.Printf("- %s %s\n", v.SafeTitle, v.Link)
		}
		return
	}
	fmt.Printf("Watch: %s %s\n", latest.Video.SafeTitle, latest.Video.Link)
}
