package osmparser

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lintang-b-s/osmrouter/pkg/util"
)

// flatRecord. one line of a newline-delimited record stream:
//
//	{"type":"node","id":1,"lat":-7.76,"lon":110.37}
//	{"type":"way","id":9,"nodes":[1,2,3],"tags":{"highway":"primary","maxspeed_mph":40,"oneway":"yes"}}
type flatRecord struct {
	Type  string         `json:"type"`
	ID    int64          `json:"id"`
	Lat   float64        `json:"lat"`
	Lon   float64        `json:"lon"`
	Nodes []int64        `json:"nodes"`
	Tags  map[string]any `json:"tags"`
}

func scanRecords(ctx context.Context, r io.Reader, h recordHandler) error {
	br := bufio.NewReaderSize(r, 1<<16)
	lineNo := 0
	for {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		lineNo++

		if util.StopConcurrentOperation(ctx) {
			return ctx.Err()
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec flatRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "line %d: invalid record", lineNo)
		}

		switch rec.Type {
		case "way":
			if h.onWay == nil {
				continue
			}
			tags, err := parseRecordTags(rec.Tags)
			if err != nil {
				return util.WrapErrorf(err, util.ErrDataIntegrity, "line %d: way %d", lineNo, rec.ID)
			}
			if err := h.onWay(NewWayRecord(rec.ID, rec.Nodes, tags)); err != nil {
				return err
			}
		case "node":
			if h.onNode == nil {
				continue
			}
			h.onNode(NewNodeRecord(rec.ID, rec.Lat, rec.Lon))
		default:
			return util.WrapErrorf(fmt.Errorf("unknown record type %q", rec.Type), util.ErrBadParamInput,
				"line %d", lineNo)
		}
	}
}
