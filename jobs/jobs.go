package jobs

import (
	"log"

	"curely/otp"

	"github.com/robfig/cron/v3"
)

/*
* Purge abandoned OTP records every few minutes so the store only
* ever holds codes inside their validity window
 */
func StartOTPSweeper(store *otp.Store) {
	c := cron.New()

	c.AddFunc("@every 5m", func() {
		removed := store.SweepExpired()
		if removed > 0 {
			log.Println("Removed expired OTP records:", removed)
		}
	})

	c.Start()
}
