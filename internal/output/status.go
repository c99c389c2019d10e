package output

import (
	"context"
	"fmt"
	"time"
)

func StatusBar(ctx context.Context, refreshRate time.Duration, printF func()) {
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			printF()
		case <-ctx.Done():
			return
		}
	}
}

func PrettyWatchStatus(regionSize, used, estimate int) string {
	headroom := 0.0
	if regionSize > 0 {
		headroom = float64(estimate) / float64(regionSize) * 100
	}
	return fmt.Sprintf("\r%-60s %-20s %-20s",
		fmt.Sprintf("Stack headroom: [%s] %6.2f%%", ProgressBar(int(headroom), 40), headroom),
		fmt.Sprintf("Used: %6d B", used),
		fmt.Sprintf("Never used: %6d B", estimate),
	)
}
