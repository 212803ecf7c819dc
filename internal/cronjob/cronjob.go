package cronjob

import (
	"log"

	"github.com/robfig/cron/v3"
)

var scheduler = cron.New()

// RegisterJob schedules a named job. Services register from their init(), so
// every job is in place before Start runs.
func RegisterJob(name string, job func(), spec string) {
	_, err := scheduler.AddFunc(spec, func() {
		log.Printf("cron job %s: started", name)
		job()
		log.Printf("cron job %s: finished", name)
	})
	if err != nil {
		log.Fatalf("cron job %s: bad spec %q: %v", name, spec, err)
	}
}

func Start() {
	scheduler.Start()
}
