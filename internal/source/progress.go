package source

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

func newFetchProgress(out io.Writer, total int) (*mpb.Progress, *mpb.Bar) {
	if out == nil {
		out = io.Discard
	}

	progress := mpb.New(
		mpb.WithOutput(out),
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100*time.Millisecond),
	)

	bar := progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Fetching: ", decor.WC{W: 10, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.Name(" | "),
			decor.Elapsed(decor.ET_STYLE_GO, decor.WC{W: 6}),
		),
	)

	return progress, bar
}
