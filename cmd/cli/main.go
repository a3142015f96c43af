package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"babylon/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type creatorsResponse struct {
	Creators []models.CreatorSummary `json:"creators"`
}

type searchResponse struct {
	Results []models.WorkRecord `json:"results"`
	Total   int                 `json:"total"`
}

func main() {
	global := flag.NewFlagSet("babylon", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch args[0] {
	case "creators":
		runCreators(client, *baseURL)
	case "works":
		if len(args) < 2 {
			log.Fatal("usage: babylon works <creator-id>")
		}
		runWorks(client, *baseURL, args[1])
	case "search":
		runSearch(client, *baseURL, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: babylon [-api URL] <command>

commands:
  creators                      list creators with work counts
  works <creator-id>            list a creator's works
  search [flags]                search the archive
      -q        free text query
      -type     work type (e.g. song)
      -creator  creator id substring
      -genre    genre substring
      -from     release date lower bound (YYYY-MM-DD)
      -to       release date upper bound (YYYY-MM-DD)`)
}

func runCreators(client *http.Client, baseURL string) {
	var resp creatorsResponse
	getJSON(client, baseURL+"/creators", &resp)

	for _, cr := range resp.Creators {
		fmt.Printf("%-30s %4d works  %5.1f%%\n", cr.DisplayName, cr.WorkCount, cr.Completeness*100)
	}
}

func runWorks(client *http.Client, baseURL, creatorID string) {
	var records []models.WorkRecord
	getJSON(client, baseURL+"/creators/"+url.PathEscape(creatorID)+"/works", &records)

	for _, r := range records {
		fmt.Printf("%-40s %-25s %s\n", r.Title, r.Artist, r.ReleaseDate)
	}
}

func runSearch(client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	q := fs.String("q", "", "free text query")
	typ := fs.String("type", "", "work type")
	creator := fs.String("creator", "", "creator id substring")
	genre := fs.String("genre", "", "genre substring")
	from := fs.String("from", "", "release date lower bound")
	to := fs.String("to", "", "release date upper bound")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse search flags: %v", err)
	}

	params := url.Values{}
	for k, v := range map[string]string{
		"q": *q, "type": *typ, "creator": *creator,
		"genre": *genre, "dateFrom": *from, "dateTo": *to,
	} {
		if v != "" {
			params.Set(k, v)
		}
	}

	var resp searchResponse
	getJSON(client, baseURL+"/search?"+params.Encode(), &resp)

	for _, r := range resp.Results {
		fmt.Printf("%-45s %-25s %-12s %s\n", r.ID, r.Title, r.ReleaseDate, r.Type)
	}
	fmt.Printf("%d result(s)\n", resp.Total)
}

func getJSON(client *http.Client, rawURL string, out any) {
	resp, err := client.Get(rawURL)
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("request failed: %s returned %s", rawURL, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("decode response: %v", err)
	}
}
