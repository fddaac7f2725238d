package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"stockbook/config"
	"stockbook/service/asset"
)

// Start runs the background scheduler with the orphan-asset sweep registered
// at cfg.SweepSchedule. The sweep only reports; it never deletes files.
func Start(cfg *config.Config, db *gorm.DB) (*cron.Cron, error) {
	c := cron.New()
	linker := asset.NewLinker(cfg.AssetDir)
	_, err := c.AddFunc(cfg.SweepSchedule, func() {
		orphans, err := linker.FindOrphans(db)
		if err != nil {
			log.Printf("asset sweep failed: %v", err)
			return
		}
		if len(orphans) == 0 {
			log.Println("asset sweep: no orphans")
			return
		}
		for _, p := range orphans {
			log.Printf("asset sweep: orphaned file %s", p)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
