package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// per sequence GC, ORF and homopolymer table

// flag
var (
	input = flag.String(
		"i",
		"",
		"input, two line for one Seq, format:\n\tName\n\tSeq",
	)
	output = flag.String(
		"o",
		"",
		"output, one line per Seq, format:\n\tName\tLength\tGC\tORFs\tLongestORF\tHomopolymers",
	)
	outputGC = flag.String(
		"gc",
		"",
		"output gc hist, format:\n\tGCcontent\tCount",
	)
	outputBed = flag.String(
		"bed",
		"",
		"output ORF and homopolymer features, format:\n\tName\tStart\tEnd\tFeature",
	)
	minORF = flag.Int(
		"minORF",
		util.MinORFLength,
		"minimum ORF length in nt",
	)
	cpuProfile = flag.String(
		"cpu",
		"",
		"write cpu profile to file",
	)
)

// Record of one input sequence
type Record struct {
	Name         string
	Seq          string
	GC           float64
	ORFs         []util.ORF
	Homopolymers []util.Homopolymer
}

func main() {
	t0 := time.Now()
	flag.Parse()
	if *input == "" || *output == "" {
		flag.PrintDefaults()
		return
	}
	if *cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(*cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		simpleUtil.CheckErr(pprof.StartCPUProfile(LogCPUProfile))
		defer pprof.StopCPUProfile()
	}

	var inF *os.File
	// open input
	if *input == "-" {
		inF = os.Stdin
	} else {
		inF = osUtil.Open(*input)
		defer simpleUtil.DeferClose(inF)
	}

	var records = simpleUtil.HandleError(ReadRecords(inF, *minORF))

	var outF = osUtil.Create(*output)
	defer simpleUtil.DeferClose(outF)
	var w = bufio.NewWriterSize(outF, 10*1024*1024)
	simpleUtil.CheckErr(WriteTable(records, w))

	if *outputGC != "" {
		var outGC = osUtil.Create(*outputGC)
		defer simpleUtil.DeferClose(outGC)
		simpleUtil.CheckErr(writeHist(GCHist(records), bufio.NewWriter(outGC)))
	}
	if *outputBed != "" {
		var bed = osUtil.Create(*outputBed)
		defer simpleUtil.DeferClose(bed)
		WriteBed(records, bed)
	}

	slog.Info("Done", "records", len(records), "elapsed", time.Since(t0))
}

// Round2 percent rounded to 2 decimal
func Round2(fraction float64) float64 {
	return math.Round(10000*fraction) / 100
}

// ReadRecords read Name/Seq line pairs and scan each Seq
func ReadRecords(in io.Reader, minORF int) (records []Record, err error) {
	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 1024*1024), 64*1024*1024)
	for scan.Scan() {
		name := strings.TrimSpace(scan.Text())
		if name == "" {
			continue
		}
		if !scan.Scan() {
			return records, fmt.Errorf("record %s: missing sequence line", name)
		}
		seq := strings.ToUpper(strings.TrimSpace(scan.Text()))
		records = append(records, Record{
			Name:         name,
			Seq:          seq,
			GC:           Round2(util.GCContent(seq)),
			ORFs:         util.FindORFs(seq, minORF),
			Homopolymers: util.FindHomopolymers(seq, util.MinHomopolymerRun),
		})
	}
	err = scan.Err()
	return
}

// WriteTable one tab separated line per record
func WriteTable(records []Record, w *bufio.Writer) (err error) {
	for _, r := range records {
		var longest int
		if orf, ok := util.LongestORF(r.ORFs); ok {
			longest = orf.Len()
		}
		var labels []string
		for _, h := range r.Homopolymers {
			labels = append(labels, h.Label())
		}
		if len(labels) == 0 {
			labels = append(labels, ".")
		}
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\t%d\t%s\n", r.Name, len(r.Seq), r.GC, len(r.ORFs), longest, strings.Join(labels, ","))
	}
	err = w.Flush()
	return
}

// WriteBed ORF then homopolymer features of each record
func WriteBed(records []Record, out *os.File) {
	for _, r := range records {
		for i := range r.ORFs {
			fmtUtil.Fprintf(out, "%s\t%s\n", r.Name, r.ORFs[i].String())
		}
		for i := range r.Homopolymers {
			fmtUtil.Fprintf(out, "%s\t%s\n", r.Name, r.Homopolymers[i].String())
		}
	}
}

// GCHist count of records per GC value
func GCHist(records []Record) map[float64]int {
	var hist = make(map[float64]int)
	for _, r := range records {
		hist[r.GC]++
	}
	return hist
}

// map2hist
func writeHist(hist map[float64]int, w *bufio.Writer) (err error) {
	var sortKey = make([]float64, 0, len(hist))
	for k := range hist {
		sortKey = append(sortKey, k)
	}
	sort.Float64s(sortKey)
	for _, k := range sortKey {
		fmt.Fprintf(w, "%.2f\t%d\n", k, hist[k])
	}
	err = w.Flush()
	return
}
