package poService

import (
	"log"
	"time"

	"jnv-po/internal/cronjob"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()

	cronjob.RegisterJob("generate-po-daily", RunDailyGenerate, `0 7 * * *`)
}

// RunDailyGenerate is the scheduled entry point: generate and render today's
// purchase orders.
func RunDailyGenerate() {
	today := time.Now().Format("2006-01-02")

	docs, reason, err := GeneratePoDocs(today)
	if err != nil {
		log.Printf("[po-service] daily generate failed: %v", err)
		return
	}

	if len(docs) == 0 {
		log.Printf("[po-service] daily generate: %s", reason)
		return
	}

	if _, err := renderDocs(docs); err != nil {
		log.Printf("[po-service] daily render failed: %v", err)
	}
}
