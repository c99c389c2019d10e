package simulate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WatermarkReport summarizes a session: how deep the simulated stack got
// and how much of the region the probe still reports as never used.
type WatermarkReport struct {
	RegionSize    int      `json:"region_size_bytes"`
	Steps         int      `json:"steps"`
	MaxUsed       int      `json:"max_used_bytes"`
	FinalEstimate int      `json:"final_estimated_unused_bytes"`
	HeadroomPct   float64  `json:"headroom_pct"`
	Samples       []Sample `json:"samples"`
}

type WatermarkReportOption func(*WatermarkReport)

func NewReport(opts ...WatermarkReportOption) *WatermarkReport {
	report := new(WatermarkReport)
	for _, opt := range opts {
		opt(report)
	}

	return report
}

func WithReportRegionSize(size int) WatermarkReportOption {
	return func(o *WatermarkReport) {
		o.RegionSize = size
	}
}

func WithReportSamples(samples []Sample) WatermarkReportOption {
	return func(o *WatermarkReport) {
		o.Samples = samples
		o.Steps = len(samples)
		if len(samples) == 0 {
			return
		}
		last := samples[len(samples)-1]
		o.MaxUsed = last.Used
		o.FinalEstimate = last.Estimate
		if o.RegionSize > 0 {
			o.HeadroomPct = float64(last.Estimate) / float64(o.RegionSize) * 100
		}
	}
}

func (r *WatermarkReport) WriteReport(w io.Writer) error {
	encoder := json.NewEncoder(w)
	return encoder.Encode(r)
}

// RenderTable writes the per-step samples and the session summary as a
// human-readable table.
func (r *WatermarkReport) RenderTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Step", "Used (B)", "Est. Unused (B)", "Headroom")

	for _, sample := range r.Samples {
		headroom := float64(sample.Estimate) / float64(r.RegionSize) * 100
		table.Append([]string{
			fmt.Sprintf("%d", sample.Step),
			fmt.Sprintf("%d", sample.Used),
			fmt.Sprintf("%d", sample.Estimate),
			fmt.Sprintf("%.1f%%", headroom),
		})
	}
	table.Footer("total", fmt.Sprintf("%d", r.MaxUsed),
		fmt.Sprintf("%d", r.FinalEstimate),
		fmt.Sprintf("%.1f%%", r.HeadroomPct))

	return table.Render()
}
