package main

import (
	"flag"
	"fmt"
	"time"
)

// watchCmd polls CLIPBOARD and reports ownership changes: a read that
// differs from the last-seen value means some other process just took
// ownership, the Read-based case internal/notify's EventLost describes.
type watchCmd struct {
	r        *root
	fs       *flag.FlagSet
	interval time.Duration
}

func (c *watchCmd) Program() string        { return c.r.program }
func (c *watchCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseWatchCmd(args []string, r *root) (*watchCmd, error) {
	sub := r.subcommand("watch")
	cmd := &watchCmd{r: sub, fs: flag.NewFlagSet(sub.program, flag.ExitOnError)}
	cmd.fs.DurationVar(&cmd.interval, "interval", 500*time.Millisecond, "polling interval")
	cmd.fs.Usage = usageFunc(cmd)
	if err := cmd.fs.Parse(args); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (c *watchCmd) Run() error {
	last, err := c.r.clip.Read()
	if err != nil {
		return fmt.Errorf("watch: initial read: %w", err)
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for range ticker.C {
		cur, err := c.r.clip.Read()
		if err != nil {
			continue
		}
		if cur != last {
			last = cur
			c.r.notifyLost("CLIPBOARD")
			fmt.Println(cur)
		}
	}
	return nil
}
