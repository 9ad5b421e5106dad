package cronjob

import (
	"log"

	"github.com/robfig/cron/v3"
)

var scheduler = cron.New()

func RegisterJob(name string, job func(), spec string) {
	_, err := scheduler.AddFunc(spec, job)
	if err != nil {
		log.Printf("failed to register job %s: %v", name, err)
		return
	}

	log.Printf("registered job %s (%s)", name, spec)
}

func Start() {
	scheduler.Start()
}
