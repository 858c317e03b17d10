// Importer for the exported survey sheet. Replaces the whole dataset:
// parse, clear, reinsert in one transaction, then print a summary.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jirateep/thudong-survey/internal/db"
	"github.com/jirateep/thudong-survey/internal/importer"
)

func setDefaults() {
	viper.SetDefault("db_path", "db/thudong.db")
	viper.SetDefault("csv_path", "data/Post-Thudong-Eval/WatPaRoiPee-2025.csv")
	viper.SetEnvPrefix("survey")
	viper.AutomaticEnv()
}

func main() {
	_ = godotenv.Load()
	setDefaults()

	csvPath := flag.String("csv", viper.GetString("csv_path"), "path to the exported survey CSV")
	dbPath := flag.String("db", viper.GetString("db_path"), "path to the sqlite store")
	flag.Parse()

	log.Printf("importing %s into %s", *csvPath, *dbPath)

	records, err := importer.ParseFile(*csvPath)
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}
	log.Printf("parsed %d records", len(records))

	store, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Printf("close store: %v", cerr)
		}
	}()

	inserted, err := store.ReplaceAll(records)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	log.Printf("inserted %d records", inserted)

	ov, err := store.Overview()
	if err != nil {
		log.Fatalf("overview: %v", err)
	}
	log.Printf("total responses: %d", ov.TotalResponses)
	for _, rc := range ov.ByRespondentType {
		log.Printf("  %s: %d", rc.RespondentType, rc.Count)
	}
	log.Printf("with impressed text: %d", ov.WithImpressed)
	log.Printf("with suggestion text: %d", ov.WithSuggestion)
}
