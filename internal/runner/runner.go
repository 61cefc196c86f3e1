package runner

import (
	"fmt"
	"path/filepath"

	"github.com/VOLLPilates/assetforge/internal/archive"
	"github.com/VOLLPilates/assetforge/internal/fetch"
	"github.com/VOLLPilates/assetforge/internal/manifest"
	"github.com/VOLLPilates/assetforge/internal/output"
	"github.com/VOLLPilates/assetforge/internal/transcode"
	"github.com/VOLLPilates/assetforge/internal/utils"
)

type Options struct {
	Root   string // joined onto the manifest's root dirs
	Client utils.HTTPDoer
}

// JobResult captures one job's outcome: the files it wrote, or the
// first error its pipeline hit. Outputs written before a failure are
// listed and left on disk.
type JobResult struct {
	Job     manifest.Job
	Outputs []string
	Err     error
}

// Run processes the manifest's jobs strictly in declaration order.
// A job's failure is logged, counted, and isolated; the batch always
// runs to the end. Returns every job's result plus the failure count.
func Run(m *manifest.Manifest, opts Options) ([]JobResult, int) {
	log := utils.GetLogger("runner")
	results := make([]JobResult, 0, len(m.Jobs))
	failures := 0
	for _, job := range m.Jobs {
		result := runJob(m, job, opts)
		if result.Err != nil {
			failures++
			log.Error().Err(result.Err).Str("job", job.ID).Str("url", job.URL).Msg("Job failed")
			output.PrintError(fmt.Sprintf("%s %s: %v", output.StyleSymbols["fail"], job.URL, result.Err))
		}
		results = append(results, result)
	}
	return results, failures
}

func runJob(m *manifest.Manifest, job manifest.Job, opts Options) JobResult {
	result := JobResult{Job: job}
	output.PrintPending(fmt.Sprintf("downloading: %s", job.URL))

	blob, err := fetch.Fetch(opts.Client, job.URL)
	if err != nil {
		result.Err = err
		return result
	}

	dir := filepath.Join(opts.Root, m.Dir(job))
	origPath, err := archive.SaveOriginal(dir, job.Name, job.URL, blob)
	if err != nil {
		result.Err = err
		return result
	}
	result.Outputs = append(result.Outputs, origPath)
	printOutput(opts.Root, origPath)

	derived, err := transcode.Process(dir, job, blob)
	result.Outputs = append(result.Outputs, derived...)
	for _, p := range derived {
		printOutput(opts.Root, p)
	}
	result.Err = err
	return result
}

func printOutput(root, outPath string) {
	rel, err := filepath.Rel(root, outPath)
	if err != nil {
		rel = outPath
	}
	output.PrintDetail(fmt.Sprintf("  %s %s", output.StyleSymbols["arrow"], rel))
}

// Summary renders the per-job result table shown after a run.
func Summary(results []JobResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := output.StyleSymbols["pass"]
		detail := fmt.Sprintf("%d file(s)", len(r.Outputs))
		if r.Err != nil {
			status = output.StyleSymbols["fail"]
			detail = r.Err.Error()
		}
		rows = append(rows, []string{status, r.Job.Name, r.Job.Root, detail})
	}
	return output.RenderTable([]string{"", "Name", "Root", "Result"}, rows)
}
