package cli

import (
	"fmt"
	"io"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// ProgressBars shows one byte progress bar per map pass.
type ProgressBars struct {
	out io.Writer
	bar *pb.ProgressBar
}

func NewProgressBars(out io.Writer) *ProgressBars {
	return &ProgressBars{out: out}
}

// Reader finishes the previous pass bar and starts a new one over r.
func (p *ProgressBars) Reader(r io.Reader, size int64, pass string) io.Reader {
	p.Finish()

	bar := pb.New64(size).SetUnits(pb.U_BYTES_DEC).SetWidth(79).Prefix(fmt.Sprintf("%-5s ", pass))
	bar.Output = p.out
	bar.Start()
	p.bar = bar

	return bar.NewProxyReader(r)
}

func (p *ProgressBars) Finish() {
	if p.bar == nil {
		return
	}
	// make sure newline is not printed by Finish()
	p.bar.Output = nil
	p.bar.NotPrint = true
	p.bar.Finish()
	fmt.Fprintf(p.out, "\033[2K\r") // clear status bar
	p.bar = nil
}
