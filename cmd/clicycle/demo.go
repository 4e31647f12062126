package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/clicycle/pkg/render"
	"github.com/arthur-debert/clicycle/pkg/theme"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render every component kind once",
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := loadTheme()
		if err != nil {
			return err
		}

		c, err := render.New(os.Stdout, th)
		if err != nil {
			return err
		}

		if err := c.Header("clicycle", "terminal output composition"); err != nil {
			return err
		}

		_ = c.Info("Messages come in four flavors")
		_ = c.Success("This one went fine")
		_ = c.Warning("This one deserves a look")
		_ = c.Error("This one failed")

		_ = c.Section("tables")
		_ = c.Table("Servers",
			[]string{"Host", "Region", "Status"},
			[][]string{
				{"prod-01", "us-east", "online"},
				{"prod-02", "eu-west", "online"},
				{"canary-1", "us-east", "degraded"},
			})

		_ = c.Section("blocks")
		_ = c.KeyValue([]render.KV{
			{Key: "Uptime", Value: "14d 3h"},
			{Key: "Version", Value: "2.4.1"},
		}, "Status")
		_ = c.Panel("All systems operational.\nNext maintenance window: Sunday 02:00 UTC.", "Notice")

		_ = c.Section("transients")
		sp, err := c.StartSpinner("Contacting servers")
		if err == nil {
			time.Sleep(1200 * time.Millisecond)
			_ = sp.Stop("Servers contacted", theme.KindSuccess)
		}

		pr, err := c.StartProgress("Syncing", 40)
		if err == nil {
			for i := int64(0); i <= 40; i += 8 {
				_ = pr.Update(i, "")
				time.Sleep(200 * time.Millisecond)
			}
			_ = pr.Stop("Sync complete", theme.KindSuccess)
		}

		_ = c.Divider()
		return c.Text("Demo finished.")
	},
}
