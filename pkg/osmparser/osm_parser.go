package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/osmrouter/pkg/datastructure"
	"github.com/lintang-b-s/osmrouter/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

type MapFormat uint8

const (
	FORMAT_PBF MapFormat = iota
	FORMAT_XML
	FORMAT_XML_BZ2
	FORMAT_JSONL
)

func (f MapFormat) String() string {
	switch f {
	case FORMAT_PBF:
		return "osm.pbf"
	case FORMAT_XML:
		return "osm"
	case FORMAT_XML_BZ2:
		return "osm.bz2"
	case FORMAT_JSONL:
		return "jsonl"
	default:
		return "unknown"
	}
}

// DetectMapFormat. by file name suffix.
func DetectMapFormat(mapFile string) (MapFormat, error) {
	name := strings.ToLower(mapFile)
	switch {
	case strings.HasSuffix(name, ".pbf"):
		return FORMAT_PBF, nil
	case strings.HasSuffix(name, ".osm.bz2"), strings.HasSuffix(name, ".xml.bz2"):
		return FORMAT_XML_BZ2, nil
	case strings.HasSuffix(name, ".osm"), strings.HasSuffix(name, ".xml"):
		return FORMAT_XML, nil
	case strings.HasSuffix(name, ".jsonl"), strings.HasSuffix(name, ".ndjson"):
		return FORMAT_JSONL, nil
	default:
		return 0, util.WrapErrorf(ErrUnsupportedFormat, util.ErrBadParamInput, "map file %s", mapFile)
	}
}

// ProgressReader wraps the raw map file reader of each pass, size is the file size in bytes.
type ProgressReader func(r io.Reader, size int64, pass string) io.Reader

type OsmParser struct {
	logger   *zap.Logger
	progress ProgressReader
	stats    BuildStats
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		logger: logger,
	}
}

func (p *OsmParser) SetProgressReader(progress ProgressReader) {
	p.progress = progress
}

func (p *OsmParser) GetStats() BuildStats {
	return p.stats
}

type recordHandler struct {
	onWay  func(WayRecord) error
	onNode func(NodeRecord)
}

// Parse reads mapFile twice: ways first, then the nodes those ways reference.
func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*datastructure.Graph, error) {
	format, err := DetectMapFormat(mapFile)
	if err != nil {
		return nil, err
	}

	builder := NewGraphBuilder(p.logger)

	countWays := 0
	err = p.scanPass(ctx, mapFile, format, "ways", recordHandler{
		onWay: func(w WayRecord) error {
			if (countWays+1)%100000 == 0 {
				p.logger.Sugar().Infof("processing openstreetmap ways: %d...", countWays+1)
			}
			countWays++
			return builder.AddWay(w)
		},
	})
	if err != nil {
		return nil, err
	}

	countNodes := 0
	err = p.scanPass(ctx, mapFile, format, "nodes", recordHandler{
		onNode: func(n NodeRecord) {
			if (countNodes+1)%500000 == 0 {
				p.logger.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes+1)
			}
			countNodes++
			builder.AddNode(n)
		},
	})
	if err != nil {
		return nil, err
	}

	graph, err := builder.Build()
	p.stats = builder.Stats()
	if err != nil {
		return nil, err
	}
	return graph, nil
}

func (p *OsmParser) scanPass(ctx context.Context, mapFile string, format MapFormat, pass string,
	h recordHandler) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return fmt.Errorf("cannot read file: %s, err: %w", mapFile, err)
	}
	defer f.Close()

	var r io.Reader = f
	if p.progress != nil {
		if info, err := f.Stat(); err == nil {
			r = p.progress(f, info.Size(), pass)
		}
	}

	switch format {
	case FORMAT_JSONL:
		return scanRecords(ctx, r, h)
	case FORMAT_PBF:
		scanner := osmpbf.New(ctx, r, 1)
		// must not be parallel, vertex ids follow the way order of the file
		scanner.SkipNodes = h.onNode == nil
		scanner.SkipWays = h.onWay == nil
		scanner.SkipRelations = true
		defer scanner.Close()
		return scanOsm(scanner, h)
	case FORMAT_XML:
		scanner := osmxml.New(ctx, r)
		defer scanner.Close()
		return scanOsm(scanner, h)
	case FORMAT_XML_BZ2:
		bz, err := bzip2.NewReader(r, nil)
		if err != nil {
			return err
		}
		defer bz.Close()
		scanner := osmxml.New(ctx, bz)
		defer scanner.Close()
		return scanOsm(scanner, h)
	default:
		return ErrUnsupportedFormat
	}
}

func scanOsm(scanner osm.Scanner, h recordHandler) error {
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Way:
			if h.onWay == nil {
				continue
			}
			if err := h.onWay(wayRecordFromOsm(o)); err != nil {
				return err
			}
		case *osm.Node:
			if h.onNode == nil {
				continue
			}
			h.onNode(NewNodeRecord(int64(o.ID), o.Lat, o.Lon))
		}
	}
	return scanner.Err()
}

func wayRecordFromOsm(way *osm.Way) WayRecord {
	nodes := make([]int64, len(way.Nodes))
	for i, wn := range way.Nodes {
		nodes[i] = int64(wn.ID)
	}
	return NewWayRecord(int64(way.ID), nodes, ParseOsmWayTags(way.Tags))
}
